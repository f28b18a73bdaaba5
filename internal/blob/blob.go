// Package blob provides the object storage capability used by the pipeline.
package blob

import (
	"context"
	"fmt"
)

// Store is the minimal object storage surface the pipeline needs:
// whole-object reads and unconditional whole-object writes.
type Store interface {
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	Put(ctx context.Context, bucket, key string, body []byte) error
}

// NotFoundError indicates the requested object does not exist.
type NotFoundError struct {
	Bucket string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("object not found: s3://%s/%s", e.Bucket, e.Key)
}

// WriteError indicates a failed object write.
type WriteError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write s3://%s/%s: %v", e.Bucket, e.Key, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

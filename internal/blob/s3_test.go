package blob

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type fakeS3 struct {
	objects map[string][]byte
	getErr  error
	putErr  error
	puts    []string
}

func objKey(bucket, key string) string { return bucket + "/" + key }

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	body, ok := f.objects[objKey(*params.Bucket, *params.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	k := objKey(*params.Bucket, *params.Key)
	f.objects[k] = body
	f.puts = append(f.puts, k)
	return &s3.PutObjectOutput{}, nil
}

func TestGet(t *testing.T) {
	store := newS3StoreWithAPI(&fakeS3{
		objects: map[string][]byte{"in/doc.json": []byte(`{"text":"hi"}`)},
	})

	body, err := store.Get(context.Background(), "in", "doc.json")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if string(body) != `{"text":"hi"}` {
		t.Errorf("Get() = %q, want %q", body, `{"text":"hi"}`)
	}
}

func TestGet_NotFound(t *testing.T) {
	store := newS3StoreWithAPI(&fakeS3{})

	_, err := store.Get(context.Background(), "in", "missing.json")

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Get() error = %v, want *NotFoundError", err)
	}
	if notFound.Bucket != "in" || notFound.Key != "missing.json" {
		t.Errorf("NotFoundError = %+v, want bucket=in key=missing.json", notFound)
	}
}

func TestPut_Overwrites(t *testing.T) {
	fake := &fakeS3{}
	store := newS3StoreWithAPI(fake)

	ctx := context.Background()
	if err := store.Put(ctx, "out", "doc_translated.json", []byte("first")); err != nil {
		t.Fatalf("Put() unexpected error: %v", err)
	}
	if err := store.Put(ctx, "out", "doc_translated.json", []byte("second")); err != nil {
		t.Fatalf("Put() unexpected error: %v", err)
	}

	if got := string(fake.objects["out/doc_translated.json"]); got != "second" {
		t.Errorf("stored body = %q, want %q (last write wins)", got, "second")
	}
	if len(fake.puts) != 2 {
		t.Errorf("expected 2 writes, got %d", len(fake.puts))
	}
}

func TestPut_WriteError(t *testing.T) {
	store := newS3StoreWithAPI(&fakeS3{putErr: errors.New("access denied")})

	err := store.Put(context.Background(), "out", "doc.json", []byte("x"))

	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("Put() error = %v, want *WriteError", err)
	}
	if writeErr.Bucket != "out" {
		t.Errorf("WriteError.Bucket = %q, want %q", writeErr.Bucket, "out")
	}
}

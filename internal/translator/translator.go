// Package translator provides the translation capability used by the pipeline.
package translator

import (
	"context"
	"fmt"
)

// Service maps text between two languages. Implementations are expected to
// be deterministic for identical inputs so that re-processing an input
// object reproduces the same result.
type Service interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// UnsupportedPairError indicates the service cannot translate between the
// given languages.
type UnsupportedPairError struct {
	Source string
	Target string
}

func (e *UnsupportedPairError) Error() string {
	return fmt.Sprintf("unsupported language pair: %s-%s", e.Source, e.Target)
}

// UnavailableError indicates the translation service failed for reasons
// unrelated to the request content.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("translation service unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput signals that the caller supplied something other than text.
	ErrInvalidInput = errors.New("invalid input")
	// ErrMissingDependency signals that a required read-only dependency was not provided.
	ErrMissingDependency = errors.New("missing dependency")
	// ErrDictionaryUnavailable signals a spell-correction dictionary failure.
	ErrDictionaryUnavailable = errors.New("dictionary unavailable")
	// ErrWordNotFound signals that the word-vector lookup has no entry for a token.
	ErrWordNotFound = errors.New("word not found")
	// ErrVectorDimMismatch signals a vector dimension mismatch.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
	// ErrEmbeddingProviderError signals a remote word-vector provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrNotFound signals a missing resource (unknown symptom id, missing asset).
	ErrNotFound = errors.New("not found")
)

// DimMismatchError wraps ErrVectorDimMismatch with both dimensions.
type DimMismatchError struct {
	Want int
	Got  int
}

func (e *DimMismatchError) Error() string {
	return fmt.Sprintf("%s: want %d, got %d", ErrVectorDimMismatch.Error(), e.Want, e.Got)
}

func (e *DimMismatchError) Unwrap() error { return ErrVectorDimMismatch }

// NewDimMismatch creates a dimension mismatch error.
func NewDimMismatch(want, got int) error {
	return &DimMismatchError{Want: want, Got: got}
}

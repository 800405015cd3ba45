package symptomlog

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/symptomlog/internal/domain"
	"github.com/kailas-cloud/symptomlog/internal/domain/vector"
)

// WordVectorLookup resolves a vocabulary word to its embedding.
// Words without a vector return ErrWordNotFound (or an empty vector);
// such words are skipped rather than failing the call.
type WordVectorLookup interface {
	Lookup(ctx context.Context, word string) ([]float32, error)
}

// WordVectorLookupFunc adapts a function to WordVectorLookup.
type WordVectorLookupFunc func(ctx context.Context, word string) ([]float32, error)

// Lookup calls f.
func (f WordVectorLookupFunc) Lookup(ctx context.Context, word string) ([]float32, error) {
	return f(ctx, word)
}

// lookupAdapter wraps a public WordVectorLookup to satisfy the classifier.
type lookupAdapter struct {
	inner WordVectorLookup
}

func (a *lookupAdapter) Lookup(ctx context.Context, word string) (vector.Vector, error) {
	v, err := a.inner.Lookup(ctx, word)
	if errors.Is(err, domain.ErrWordNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", word, err)
	}
	if len(v) == 0 {
		return nil, fmt.Errorf("lookup %q: %w", word, domain.ErrWordNotFound)
	}
	return vector.Vector(v), nil
}

// HealthCheck forwards to the inner lookup when it supports health checks.
func (a *lookupAdapter) HealthCheck(ctx context.Context) error {
	hc, ok := a.inner.(interface{ HealthCheck(context.Context) error })
	if !ok {
		return nil
	}
	if err := hc.HealthCheck(ctx); err != nil {
		return fmt.Errorf("word vectors health check: %w", err)
	}
	return nil
}

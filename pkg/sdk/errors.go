package symptomlog

import "github.com/kailas-cloud/symptomlog/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidInput           = domain.ErrInvalidInput
	ErrMissingDependency      = domain.ErrMissingDependency
	ErrDictionaryUnavailable  = domain.ErrDictionaryUnavailable
	ErrWordNotFound           = domain.ErrWordNotFound
	ErrVectorDimMismatch      = domain.ErrVectorDimMismatch
	ErrEmbeddingProviderError = domain.ErrEmbeddingProviderError
)

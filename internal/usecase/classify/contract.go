package classify

import (
	"context"

	"github.com/kailas-cloud/symptomlog/internal/domain/vector"
)

// WordVectors resolves a vocabulary token to its embedding.
// A token without a vector returns domain.ErrWordNotFound.
type WordVectors interface {
	Lookup(ctx context.Context, word string) (vector.Vector, error)
}

// Speller corrects a single token. Tokens it cannot improve come back unchanged.
type Speller interface {
	Correct(ctx context.Context, word string) (string, error)
}

// Lemmatizer reduces a token to its base form.
type Lemmatizer interface {
	Lemmatize(word string) string
}

// Segmenter splits raw text into ordered, normalized sentences.
type Segmenter interface {
	Normalize(text string) []string
}

package classify

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/symptomlog/internal/domain"
	"github.com/kailas-cloud/symptomlog/internal/domain/classification"
	"github.com/kailas-cloud/symptomlog/internal/domain/vector"
	"github.com/kailas-cloud/symptomlog/internal/logger"
)

// Vectorizer turns a sentence record into the mean of its token vectors.
type Vectorizer struct {
	words WordVectors
	gaps  prometheus.Counter
}

// NewVectorizer creates a vectorizer. gaps counts tokens that have no vector
// and may be nil.
func NewVectorizer(words WordVectors, gaps prometheus.Counter) *Vectorizer {
	return &Vectorizer{words: words, gaps: gaps}
}

// Vectorize returns the sentence vector, or nil when none of the tokens
// resolve. Tokens without a vector are skipped; any other lookup failure
// is returned.
func (v *Vectorizer) Vectorize(ctx context.Context, rec classification.SentenceRecord) (vector.Vector, error) {
	vecs := make([]vector.Vector, 0, len(rec.Tokens))
	for _, tok := range rec.Tokens {
		vec, err := v.words.Lookup(ctx, tok)
		if errors.Is(err, domain.ErrWordNotFound) {
			logger.FromContext(ctx).Debug("no vector for token", zap.String("token", tok))
			if v.gaps != nil {
				v.gaps.Inc()
			}
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("lookup %q: %w", tok, err)
		}
		if vec.IsEmpty() {
			continue
		}
		vecs = append(vecs, vec)
	}

	mean, err := vector.Mean(vecs)
	if err != nil {
		return nil, fmt.Errorf("sentence %d: %w", rec.Index, err)
	}
	return mean, nil
}

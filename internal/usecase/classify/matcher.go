package classify

import (
	"fmt"
	"math"

	"github.com/kailas-cloud/symptomlog/internal/domain"
	"github.com/kailas-cloud/symptomlog/internal/domain/match"
	"github.com/kailas-cloud/symptomlog/internal/domain/symptom"
	"github.com/kailas-cloud/symptomlog/internal/domain/vector"
)

// Matcher scores a sentence vector against every symptom reference vector.
type Matcher struct {
	symptoms *symptom.Vectors
}

// NewMatcher creates a matcher over the symptom table.
func NewMatcher(symptoms *symptom.Vectors) *Matcher {
	return &Matcher{symptoms: symptoms}
}

// Rank returns the symptoms whose similarity to vec exceeds threshold,
// rounded to three decimals, best first. An empty vec yields an empty ranking.
func (m *Matcher) Rank(vec vector.Vector, threshold float64) (match.Ranking, error) {
	ranking := match.Ranking{}
	if vec.IsEmpty() {
		return ranking, nil
	}
	if vec.Dim() != m.symptoms.Dim() {
		return nil, fmt.Errorf("rank: %w", domain.NewDimMismatch(m.symptoms.Dim(), vec.Dim()))
	}

	err := m.symptoms.Each(func(id string, ref vector.Vector) error {
		sim, ok, err := vector.Cosine(vec, ref)
		if err != nil {
			return fmt.Errorf("symptom %q: %w", id, err)
		}
		if !ok || math.IsNaN(sim) || sim <= threshold {
			return nil
		}
		score := match.Round(math.Min(sim, 1))
		if score <= threshold {
			return nil
		}
		ranking = append(ranking, match.Match{Symptom: id, Score: score})
		return nil
	})
	if err != nil {
		return nil, err
	}

	ranking.Sort()
	return ranking, nil
}

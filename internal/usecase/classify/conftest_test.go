package classify

import (
	"context"
	"sync"
	"testing"

	"github.com/kailas-cloud/symptomlog/internal/domain"
	"github.com/kailas-cloud/symptomlog/internal/domain/corpus"
	"github.com/kailas-cloud/symptomlog/internal/domain/symptom"
	"github.com/kailas-cloud/symptomlog/internal/domain/vector"
	"github.com/kailas-cloud/symptomlog/internal/textproc"
)

// mapVectors is an in-memory WordVectors.
type mapVectors struct {
	mu      sync.Mutex
	vecs    map[string]vector.Vector
	err     error
	lookups []string
}

func (m *mapVectors) Lookup(_ context.Context, word string) (vector.Vector, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups = append(m.lookups, word)
	if m.err != nil {
		return nil, m.err
	}
	v, ok := m.vecs[word]
	if !ok {
		return nil, domain.ErrWordNotFound
	}
	return v, nil
}

// mapSpeller corrects from a fixed table.
type mapSpeller struct {
	fixes map[string]string
	err   error
}

func (m *mapSpeller) Correct(_ context.Context, word string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if f, ok := m.fixes[word]; ok {
		return f, nil
	}
	return word, nil
}

func newSegmenter(t *testing.T) *textproc.Normalizer {
	t.Helper()
	n, err := textproc.NewNormalizer(true)
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}
	return n
}

// scenarioA is the two-symptom fixture: freckle -> skin_spot, tired -> fatigue.
func scenarioA(t *testing.T) (Dependencies, *mapVectors) {
	t.Helper()
	c := corpus.New([]string{"freckle", "tired"})
	words := &mapVectors{vecs: map[string]vector.Vector{
		"freckle": {1, 0},
		"tired":   {0, 1},
	}}
	symptoms, err := symptom.NewVectors(map[string][]float32{
		"skin_spot": {1, 0},
		"fatigue":   {0, 1},
	})
	if err != nil {
		t.Fatalf("NewVectors: %v", err)
	}

	return Dependencies{
		Corpus:      c,
		Segmenter:   newSegmenter(t),
		WordVectors: words,
		Symptoms:    symptoms,
		Lemmatizer:  textproc.NewLemmatizer(c, c),
	}, words
}

func newService(t *testing.T, deps Dependencies) *Service {
	t.Helper()
	svc, err := New(DefaultConfig(), deps, Instruments{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc
}

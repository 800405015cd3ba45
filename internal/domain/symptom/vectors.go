// Package symptom holds the static symptom tables: reference vectors,
// display names and the symptom correlation matrix.
package symptom

import (
	"fmt"
	"sort"

	"github.com/kailas-cloud/symptomlog/internal/domain"
	"github.com/kailas-cloud/symptomlog/internal/domain/vector"
)

// Vectors is the immutable symptom-id -> reference-vector table.
type Vectors struct {
	ids  []string
	vecs map[string]vector.Vector
	dim  int
}

// NewVectors validates and copies the reference vectors.
// All vectors must be non-empty and share one dimension.
func NewVectors(in map[string][]float32) (*Vectors, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("symptom vectors: %w", domain.ErrMissingDependency)
	}
	v := &Vectors{
		ids:  make([]string, 0, len(in)),
		vecs: make(map[string]vector.Vector, len(in)),
	}
	for id, raw := range in {
		if id == "" {
			return nil, fmt.Errorf("symptom vectors: empty symptom id")
		}
		if len(raw) == 0 {
			return nil, fmt.Errorf("symptom vectors: %q has no components", id)
		}
		if v.dim == 0 {
			v.dim = len(raw)
		}
		if len(raw) != v.dim {
			return nil, fmt.Errorf("symptom vectors: %q: %w", id, domain.NewDimMismatch(v.dim, len(raw)))
		}
		cp := make(vector.Vector, len(raw))
		copy(cp, raw)
		v.ids = append(v.ids, id)
		v.vecs[id] = cp
	}
	sort.Strings(v.ids)
	return v, nil
}

// IDs returns the symptom ids in ascending order.
func (v *Vectors) IDs() []string {
	out := make([]string, len(v.ids))
	copy(out, v.ids)
	return out
}

// Get returns the reference vector for id.
func (v *Vectors) Get(id string) (vector.Vector, bool) {
	vec, ok := v.vecs[id]
	return vec, ok
}

// Dim returns the shared dimension.
func (v *Vectors) Dim() int { return v.dim }

// Len returns the number of symptoms.
func (v *Vectors) Len() int { return len(v.ids) }

// Each calls fn for every symptom in ascending id order.
func (v *Vectors) Each(fn func(id string, vec vector.Vector) error) error {
	for _, id := range v.ids {
		if err := fn(id, v.vecs[id]); err != nil {
			return err
		}
	}
	return nil
}

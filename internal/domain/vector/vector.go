// Package vector holds the dense embedding type shared by word vectors,
// sentence vectors and symptom reference vectors.
package vector

import (
	"math"

	"github.com/kailas-cloud/symptomlog/internal/domain"
)

// Vector is a dense embedding. A nil or empty Vector means "no vector".
type Vector []float32

// IsEmpty reports whether v carries no components.
func (v Vector) IsEmpty() bool { return len(v) == 0 }

// Dim returns the number of components.
func (v Vector) Dim() int { return len(v) }

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

// Mean returns the elementwise arithmetic mean of vs.
// An empty input yields a nil Vector; vectors of differing dimension are an error.
func Mean(vs []Vector) (Vector, error) {
	if len(vs) == 0 {
		return nil, nil
	}
	dim := len(vs[0])
	acc := make([]float64, dim)
	for _, v := range vs {
		if len(v) != dim {
			return nil, domain.NewDimMismatch(dim, len(v))
		}
		for i, x := range v {
			acc[i] += float64(x)
		}
	}
	out := make(Vector, dim)
	n := float64(len(vs))
	for i, s := range acc {
		out[i] = float32(s / n)
	}
	return out, nil
}

// Cosine returns the cosine similarity of a and b.
// ok is false when either vector has zero length, so callers can treat the
// pair as "no similarity" instead of propagating NaN.
func Cosine(a, b Vector) (sim float64, ok bool, err error) {
	if len(a) != len(b) {
		return 0, false, domain.NewDimMismatch(len(b), len(a))
	}
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0, false, nil
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot / (na * nb), true, nil
}

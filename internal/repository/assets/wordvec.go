package assets

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kailas-cloud/symptomlog/internal/domain"
	"github.com/kailas-cloud/symptomlog/internal/domain/vector"
)

// WordVectors is an immutable in-memory word -> vector table.
type WordVectors struct {
	vecs map[string]vector.Vector
	dim  int
}

// Lookup returns the vector for word or domain.ErrWordNotFound.
func (w *WordVectors) Lookup(_ context.Context, word string) (vector.Vector, error) {
	v, ok := w.vecs[word]
	if !ok {
		return nil, fmt.Errorf("%q: %w", word, domain.ErrWordNotFound)
	}
	return v, nil
}

// Contains reports whether word has a vector.
func (w *WordVectors) Contains(word string) bool {
	_, ok := w.vecs[word]
	return ok
}

// Dim returns the vector dimension.
func (w *WordVectors) Dim() int { return w.dim }

// Len returns the number of words.
func (w *WordVectors) Len() int { return len(w.vecs) }

// NewWordVectors copies in into a table. All vectors must share one dimension.
func NewWordVectors(in map[string][]float32) (*WordVectors, error) {
	w := &WordVectors{vecs: make(map[string]vector.Vector, len(in))}
	for word, raw := range in {
		if err := w.add(word, raw); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func (w *WordVectors) add(word string, raw []float32) error {
	if len(raw) == 0 {
		return fmt.Errorf("word %q has no components", word)
	}
	if w.dim == 0 {
		w.dim = len(raw)
	}
	if len(raw) != w.dim {
		return fmt.Errorf("word %q: %w", word, domain.NewDimMismatch(w.dim, len(raw)))
	}
	cp := make(vector.Vector, len(raw))
	copy(cp, raw)
	w.vecs[word] = cp
	return nil
}

// ReadWordVectors parses the word2vec text format: one "word v1 v2 ..." line
// per word, optionally preceded by a "count dim" header. When keep is non-nil
// only words it accepts are retained.
func ReadWordVectors(r io.Reader, keep func(word string) bool) (*WordVectors, error) {
	w := &WordVectors{vecs: make(map[string]vector.Vector)}
	first := true
	err := scanLines(r, func(n int, line string) error {
		fields := strings.Fields(line)
		if first {
			first = false
			if isHeader(fields) {
				return nil
			}
		}
		if len(fields) < 2 {
			return fmt.Errorf("line %d: expected word and components", n)
		}
		word := fields[0]
		if keep != nil && !keep(word) {
			return nil
		}
		raw := make([]float32, len(fields)-1)
		for i, f := range fields[1:] {
			x, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return fmt.Errorf("line %d: component %d: %w", n, i, err)
			}
			raw[i] = float32(x)
		}
		if err := w.add(word, raw); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read word vectors: %w", err)
	}
	return w, nil
}

func isHeader(fields []string) bool {
	if len(fields) != 2 {
		return false
	}
	_, errCount := strconv.Atoi(fields[0])
	_, errDim := strconv.Atoi(fields[1])
	return errCount == nil && errDim == nil
}

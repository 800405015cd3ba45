// Package spell implements dictionary-based spelling correction.
package spell

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/kailas-cloud/symptomlog/internal/domain"
)

// DefaultMaxDistance is the largest edit distance a correction may span.
const DefaultMaxDistance = 2

// Corrector replaces unknown words with the closest dictionary word.
// Closeness is the optimal-string-alignment distance (insert, delete,
// substitute, transpose); ties go to the more frequent word, then to the
// lexicographically smaller one.
type Corrector struct {
	freq        map[string]int
	byLen       map[int][]string
	maxDistance int
}

// NewCorrector builds a corrector over word -> frequency.
// maxDistance <= 0 selects DefaultMaxDistance.
func NewCorrector(freq map[string]int, maxDistance int) *Corrector {
	if maxDistance <= 0 {
		maxDistance = DefaultMaxDistance
	}
	c := &Corrector{
		freq:        make(map[string]int, len(freq)),
		byLen:       make(map[int][]string),
		maxDistance: maxDistance,
	}
	for w, n := range freq {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if n < 1 {
			n = 1
		}
		if _, dup := c.freq[w]; dup {
			c.freq[w] += n
			continue
		}
		c.freq[w] = n
		c.byLen[len(w)] = append(c.byLen[len(w)], w)
	}
	for l := range c.byLen {
		sort.Strings(c.byLen[l])
	}
	return c
}

// Merge adds words missing from freq with a frequency of one and returns freq.
// A nil freq is allocated.
func Merge(freq map[string]int, words []string) map[string]int {
	if freq == nil {
		freq = make(map[string]int, len(words))
	}
	for _, w := range words {
		if _, ok := freq[w]; !ok {
			freq[w] = 1
		}
	}
	return freq
}

// Contains reports whether word is a dictionary word.
func (c *Corrector) Contains(word string) bool {
	_, ok := c.freq[word]
	return ok
}

// Len returns the dictionary size.
func (c *Corrector) Len() int { return len(c.freq) }

// Correct returns the closest dictionary word, or word unchanged when it is
// already known or nothing lies within the maximum distance.
func (c *Corrector) Correct(ctx context.Context, word string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrDictionaryUnavailable, err)
	}
	if word == "" || c.Contains(word) {
		return word, nil
	}

	best, bestDist, bestFreq := word, c.maxDistance+1, 0
	for l := len(word) - c.maxDistance; l <= len(word)+c.maxDistance; l++ {
		for _, cand := range c.byLen[l] {
			d := edlib.OSADamerauLevenshteinDistance(word, cand)
			if d > c.maxDistance {
				continue
			}
			f := c.freq[cand]
			if d < bestDist || (d == bestDist && (f > bestFreq || (f == bestFreq && cand < best))) {
				best, bestDist, bestFreq = cand, d, f
			}
		}
	}
	return best, nil
}

// Package match holds per-sentence similarity rankings.
package match

import (
	"math"
	"sort"
)

// Match is a single symptom scored against one sentence.
type Match struct {
	Symptom string  `json:"symptom"`
	Score   float64 `json:"score"`
}

// Ranking is the ordered list of matches for one sentence:
// score descending, symptom id ascending on equal scores.
type Ranking []Match

// Sort orders r in place by score descending, then symptom id ascending.
func (r Ranking) Sort() {
	sort.SliceStable(r, func(i, j int) bool {
		if r[i].Score != r[j].Score {
			return r[i].Score > r[j].Score
		}
		return r[i].Symptom < r[j].Symptom
	})
}

// Top returns the best match.
func (r Ranking) Top() (Match, bool) {
	if len(r) == 0 {
		return Match{}, false
	}
	return r[0], true
}

// Runner returns the second-best match.
func (r Ranking) Runner() (Match, bool) {
	if len(r) < 2 {
		return Match{}, false
	}
	return r[1], true
}

// Symptoms returns the ranked symptom ids.
func (r Ranking) Symptoms() []string {
	out := make([]string, len(r))
	for i, m := range r {
		out[i] = m.Symptom
	}
	return out
}

// Round rounds a similarity to three decimal places.
func Round(score float64) float64 {
	return math.Round(score*1000) / 1000
}

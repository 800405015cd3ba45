// Package classification holds the per-call records and the document-level
// outcome of symptom identification.
package classification

import (
	"sort"

	"github.com/kailas-cloud/symptomlog/internal/domain/match"
)

// NoSymptomDetected is the display value hosts report when Detected is false.
const NoSymptomDetected = "No symptom detected"

// SentenceRecord is one normalized sentence and its filtered vocabulary tokens.
// Tokens are sorted and always a subset of the corpus.
type SentenceRecord struct {
	Index  int
	Text   string
	Tokens []string
}

// Sentence is the evidence kept for one sentence.
type Sentence struct {
	Index   int
	Text    string
	Tokens  []string
	Ranking match.Ranking
}

// Reference maps sentence index to its evidence. Every sentence has an entry,
// including sentences with an empty ranking.
type Reference map[int]Sentence

// Indices returns the sentence indices in ascending order.
func (r Reference) Indices() []int {
	out := make([]int, 0, len(r))
	for i := range r {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Result is the document-level classification outcome.
type Result struct {
	primary   []string
	secondary []string
	detected  bool
	reference Reference
}

// New creates a result with at least one detected symptom.
// primary and secondary are copied and sorted; an empty secondary is absent.
func New(primary, secondary []string, ref Reference) Result {
	r := Result{
		primary:   sortedCopy(primary),
		detected:  len(primary) > 0,
		reference: ref,
	}
	if len(secondary) > 0 {
		r.secondary = sortedCopy(secondary)
	}
	return r
}

// NoSymptom creates the "no symptom detected" outcome. It is a successful
// result, not an error; the reference is still reported in full.
func NoSymptom(ref Reference) Result {
	return Result{reference: ref}
}

// Detected reports whether any sentence matched a symptom.
func (r *Result) Detected() bool { return r.detected }

// Primary returns the symptoms that were the best match for at least one sentence.
func (r *Result) Primary() []string { return r.primary }

// Secondary returns the runner-up symptoms that never ranked first.
// ok is false when there is nothing to add beyond the primary set.
func (r *Result) Secondary() (ids []string, ok bool) {
	return r.secondary, r.secondary != nil
}

// Reference returns the per-sentence evidence.
func (r *Result) Reference() Reference { return r.reference }

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}

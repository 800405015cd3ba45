package textproc

import (
	"strings"

	"github.com/surgebase/porter2"
)

// Lexicon answers membership questions about known words.
type Lexicon interface {
	Contains(word string) bool
}

// Lexicons is a union of lexicons.
type Lexicons []Lexicon

// Contains reports whether any member lexicon knows word.
func (ls Lexicons) Contains(word string) bool {
	for _, l := range ls {
		if l != nil && l.Contains(word) {
			return true
		}
	}
	return false
}

// nounSuffixes are the WordNet noun detachment rules, tried in order.
var nounSuffixes = []struct{ from, to string }{
	{"s", ""},
	{"ses", "s"},
	{"ves", "f"},
	{"xes", "x"},
	{"zes", "z"},
	{"ches", "ch"},
	{"shes", "sh"},
	{"men", "man"},
	{"ies", "y"},
}

// nounExceptions covers irregular plurals the suffix rules cannot reach.
var nounExceptions = map[string][]string{
	"children":    {"child"},
	"feet":        {"foot"},
	"teeth":       {"tooth"},
	"geese":       {"goose"},
	"mice":        {"mouse"},
	"lice":        {"louse"},
	"men":         {"man"},
	"women":       {"woman"},
	"people":      {"person"},
	"knives":      {"knife"},
	"lives":       {"life"},
	"wives":       {"wife"},
	"diagnoses":   {"diagnosis"},
	"prognoses":   {"prognosis"},
	"analyses":    {"analysis"},
	"crises":      {"crisis"},
	"neuroses":    {"neurosis"},
	"scolioses":   {"scoliosis"},
	"bacteria":    {"bacterium"},
	"criteria":    {"criterion"},
	"phenomena":   {"phenomenon"},
	"vertebrae":   {"vertebra"},
	"nuclei":      {"nucleus"},
	"fungi":       {"fungus"},
	"stimuli":     {"stimulus"},
	"bronchi":     {"bronchus"},
	"foci":        {"focus"},
	"tumors":      {"tumor"},
	"data":        {"datum"},
	"indices":     {"index"},
	"appendices":  {"appendix"},
	"matrices":    {"matrix"},

	"neurofibromata": {"neurofibroma"},
}

// Lemmatizer reduces nouns to their dictionary form, WordNet style: the
// candidate forms that the lexicon knows are collected and the shortest wins.
// When nothing matches, a Porter2 stem is accepted only if the vocabulary
// contains it.
type Lemmatizer struct {
	lexicon    Lexicon
	vocabulary Lexicon
}

// NewLemmatizer creates a lemmatizer. lexicon validates morphological
// candidates; vocabulary gates the stemming fallback and may be nil.
func NewLemmatizer(lexicon, vocabulary Lexicon) *Lemmatizer {
	return &Lemmatizer{lexicon: lexicon, vocabulary: vocabulary}
}

// Lemmatize returns the base form of word, or word itself.
func (l *Lemmatizer) Lemmatize(word string) string {
	if word == "" {
		return word
	}

	var candidates []string
	if l.known(word) {
		candidates = append(candidates, word)
	}
	if exc, ok := nounExceptions[word]; ok {
		candidates = append(candidates, exc...)
	} else {
		for _, sfx := range nounSuffixes {
			if !strings.HasSuffix(word, sfx.from) {
				continue
			}
			form := strings.TrimSuffix(word, sfx.from) + sfx.to
			if form != "" && l.known(form) {
				candidates = append(candidates, form)
			}
		}
	}

	if len(candidates) > 0 {
		return shortest(candidates)
	}

	if l.vocabulary != nil {
		if stem := porter2.Stem(word); stem != word && l.vocabulary.Contains(stem) {
			return stem
		}
	}
	return word
}

func (l *Lemmatizer) known(word string) bool {
	return l.lexicon != nil && l.lexicon.Contains(word)
}

// shortest picks the shortest candidate; ties go to the lexicographically smaller.
func shortest(cands []string) string {
	best := cands[0]
	for _, c := range cands[1:] {
		if len(c) < len(best) || (len(c) == len(best) && c < best) {
			best = c
		}
	}
	return best
}

package textproc

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var (
	// A run of line breaks, the blanks around it and a period just before it
	// make one sentence break.
	newlineRe = regexp.MustCompile(`\.?[ \t]*\n\s*`)
	// A connective followed by at least one non-word character. The last of
	// those characters is carried over after the inserted sentence break.
	connectiveRe = regexp.MustCompile(`\W*(?:\band\b|\bor\b|[,&;])(\W)+`)
)

// printableASCII drops every rune outside printable ASCII. Newline and tab
// survive so that line breaks can still separate clauses.
var printableASCII = runes.Remove(runes.Predicate(func(r rune) bool {
	switch r {
	case '\n', '\t':
		return false
	}
	return r < 0x20 || r > 0x7e
}))

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Normalizer folds raw text into lowercase ASCII sentences.
type Normalizer struct {
	breakClauses bool

	mu        sync.Mutex // the Punkt tokenizer is not documented as goroutine-safe
	segmenter *sentences.DefaultSentenceTokenizer
}

// NewNormalizer creates a normalizer backed by the English Punkt model.
// breakClauses enables splitting compound clauses into separate sentences.
func NewNormalizer(breakClauses bool) (*Normalizer, error) {
	seg, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load sentence tokenizer: %w", err)
	}
	return &Normalizer{breakClauses: breakClauses, segmenter: seg}, nil
}

// Fold lowercases text, turns CRLF and lone CR into LF and strips every
// other non-printable-ASCII rune.
func Fold(text string) string {
	folded, _, err := transform.String(printableASCII, lineEndings.Replace(strings.ToLower(text)))
	if err != nil {
		// runes.Remove never fails on in-memory input.
		return ""
	}
	return folded
}

// BreakClauses rewrites newlines and conjunction/punctuation connectives into
// sentence breaks, so "freckles and headaches" becomes two sentences.
func BreakClauses(text string) string {
	text = newlineRe.ReplaceAllString(text, ". ")
	return connectiveRe.ReplaceAllString(text, ". ${1}")
}

// Normalize returns the ordered sentences of text.
func (n *Normalizer) Normalize(text string) []string {
	text = strings.TrimSpace(Fold(text))
	if n.breakClauses {
		text = BreakClauses(text)
	}
	return n.segment(text)
}

func (n *Normalizer) segment(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	n.mu.Lock()
	sents := n.segmenter.Tokenize(text)
	n.mu.Unlock()

	out := make([]string, 0, len(sents))
	for _, s := range sents {
		// Breaks at the start of the text leave ". " in front of the first words.
		t := strings.TrimLeft(strings.TrimSpace(s.Text), ". ")
		if hasWord(t) {
			out = append(out, t)
		}
	}
	return out
}

// hasWord reports whether s contains a letter or digit.
func hasWord(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}

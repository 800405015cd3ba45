// Package corpus defines the fixed vocabulary the classifier reasons about.
package corpus

import (
	"sort"
	"strings"
)

// Corpus is an immutable set of lowercase vocabulary tokens.
type Corpus struct {
	words map[string]struct{}
}

// New builds a Corpus from words. Entries are trimmed and lowercased;
// blanks are ignored and duplicates collapse.
func New(words []string) *Corpus {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return &Corpus{words: set}
}

// Contains reports whether word is part of the vocabulary.
func (c *Corpus) Contains(word string) bool {
	if c == nil {
		return false
	}
	_, ok := c.words[word]
	return ok
}

// Len returns the vocabulary size.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.words)
}

// Words returns a sorted copy of the vocabulary.
func (c *Corpus) Words() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.words))
	for w := range c.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Filter returns the members of tokens that belong to the vocabulary, in input order.
func (c *Corpus) Filter(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if c.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

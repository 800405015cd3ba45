package textproc

import "strings"

// punctuation is replaced by a single space each; digits count as punctuation.
const punctuation = "!\"#$%&'()*+,./:;<=>?@[\\]^_`{|}~�0123456789®"

var punctReplacer = func() *strings.Replacer {
	var pairs []string
	for _, r := range punctuation {
		pairs = append(pairs, string(r), " ")
	}
	return strings.NewReplacer(pairs...)
}()

// StripPunctuation replaces every punctuation rune and digit with one space.
// Runs of spaces are left as they are.
func StripPunctuation(s string) string {
	return punctReplacer.Replace(s)
}

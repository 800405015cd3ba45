package textproc

import "strings"

// Tokenize splits a cleaned sentence into word tokens. Hyphens inside a word
// are kept ("well-being"); stray leading or trailing hyphens are dropped.
func Tokenize(s string) []string {
	fields := strings.Fields(s)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.Trim(f, "-"); f != "" {
			out = append(out, f)
		}
	}
	return out
}

package textproc

import (
	"slices"
	"testing"
)

type setLexicon map[string]bool

func (s setLexicon) Contains(w string) bool { return s[w] }

func TestStripPunctuation(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"i have (2) freckles.", "i have     freckles "},
		{"don't", "don t"},
		{"well-being", "well-being"},
	}
	for _, tc := range tests {
		if got := StripPunctuation(tc.in); got != tc.want {
			t.Errorf("StripPunctuation(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"  i have   freckles ", []string{"i", "have", "freckles"}},
		{"well-being -- -", []string{"well-being"}},
		{"   ", []string{}},
	}
	for _, tc := range tests {
		if got := Tokenize(tc.in); !slices.Equal(got, tc.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsStopword(t *testing.T) {
	for _, w := range []string{"i", "the", "feel", "feels", "felt", "wouldn't"} {
		if !IsStopword(w) {
			t.Errorf("%q should be a stopword", w)
		}
	}
	for _, w := range []string{"freckle", "tired", "headache"} {
		if IsStopword(w) {
			t.Errorf("%q should not be a stopword", w)
		}
	}
}

func TestLemmatize(t *testing.T) {
	lex := setLexicon{
		"freckle": true, "freckles": true, "headache": true, "child": true,
		"tooth": true, "bruise": true, "tired": true, "rash": true, "box": true,
	}
	l := NewLemmatizer(lex, nil)

	tests := []struct {
		in, want string
	}{
		{"freckles", "freckle"},
		{"headaches", "headache"},
		{"children", "child"},
		{"teeth", "tooth"},
		{"bruises", "bruise"},
		{"rashes", "rash"},
		{"boxes", "box"},
		{"tired", "tired"},
		{"unknownwords", "unknownwords"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := l.Lemmatize(tc.in); got != tc.want {
			t.Errorf("Lemmatize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLemmatize_StemFallbackGatedByVocabulary(t *testing.T) {
	l := NewLemmatizer(setLexicon{}, setLexicon{"vomit": true})

	if got := l.Lemmatize("vomiting"); got != "vomit" {
		t.Errorf("vomiting: got %q, want vomit", got)
	}
	if got := l.Lemmatize("sneezing"); got != "sneezing" {
		t.Errorf("sneezing: got %q, want it unchanged", got)
	}
}

func TestLexicons(t *testing.T) {
	ls := Lexicons{setLexicon{"a": true}, nil, setLexicon{"b": true}}
	if !ls.Contains("a") || !ls.Contains("b") {
		t.Error("expected a and b to be found")
	}
	if ls.Contains("c") {
		t.Error("c should not be found")
	}
}

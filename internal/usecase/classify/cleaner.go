package classify

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kailas-cloud/symptomlog/internal/domain/corpus"
	"github.com/kailas-cloud/symptomlog/internal/textproc"
)

// Cleaner reduces a sentence to the sorted set of corpus tokens it mentions.
type Cleaner struct {
	corpus  *corpus.Corpus
	speller Speller
	lemma   Lemmatizer
}

// NewCleaner creates a cleaner. speller and lemma may be nil, which skips
// spelling correction or lemmatization respectively.
func NewCleaner(c *corpus.Corpus, speller Speller, lemma Lemmatizer) *Cleaner {
	return &Cleaner{corpus: c, speller: speller, lemma: lemma}
}

// Clean returns the corpus tokens of one normalized sentence, sorted and deduplicated.
// Spelling is corrected on the whitespace-separated words before tokenization.
func (c *Cleaner) Clean(ctx context.Context, sentence string) ([]string, error) {
	words, err := c.correct(ctx, strings.Fields(textproc.StripPunctuation(sentence)))
	if err != nil {
		return nil, err
	}

	tokens := textproc.Tokenize(strings.Join(words, " "))
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if textproc.IsStopword(tok) {
			continue
		}
		if c.lemma != nil {
			tok = c.lemma.Lemmatize(tok)
			if textproc.IsStopword(tok) {
				continue
			}
		}
		kept = append(kept, tok)
	}

	seen := make(map[string]struct{}, len(kept))
	out := make([]string, 0, len(kept))
	for _, tok := range c.corpus.Filter(kept) {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	sort.Strings(out)
	return out, nil
}

func (c *Cleaner) correct(ctx context.Context, words []string) ([]string, error) {
	if c.speller == nil {
		return words, nil
	}
	for i, w := range words {
		if c.corpus.Contains(w) {
			continue
		}
		fixed, err := c.speller.Correct(ctx, w)
		if err != nil {
			return nil, fmt.Errorf("correct %q: %w", w, err)
		}
		words[i] = fixed
	}
	return words, nil
}

package symptomlog

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	assetDir string

	corpus         []string
	wordVectors    map[string][]float32
	wordLookup     WordVectorLookup
	symptomVectors map[string][]float32
	dictionary     map[string]int

	threshold        *float64
	workers          int
	breakClauses     bool
	spellMaxDistance int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithAssetDir loads corpus.txt, symptom_vectors.json, word_vectors.txt and,
// when present, dictionary.txt, symptoms.csv and relations.csv from dir.
// Tables passed through other options take precedence over the files.
func WithAssetDir(dir string) Option {
	return optionFunc(func(c *clientConfig) {
		c.assetDir = dir
	})
}

// WithCorpus sets the vocabulary of symptom-relevant words.
func WithCorpus(words []string) Option {
	return optionFunc(func(c *clientConfig) {
		c.corpus = words
	})
}

// WithWordVectors sets an in-memory word -> vector table.
func WithWordVectors(vecs map[string][]float32) Option {
	return optionFunc(func(c *clientConfig) {
		c.wordVectors = vecs
	})
}

// WithWordVectorLookup sets a custom word-vector source. It replaces any
// table set by WithWordVectors or found in the asset directory.
func WithWordVectorLookup(l WordVectorLookup) Option {
	return optionFunc(func(c *clientConfig) {
		c.wordLookup = l
	})
}

// WithSymptomVectors sets the symptom id -> reference vector table.
func WithSymptomVectors(vecs map[string][]float32) Option {
	return optionFunc(func(c *clientConfig) {
		c.symptomVectors = vecs
	})
}

// WithDictionary enables spelling correction against word -> frequency.
// Corpus words are always added to the dictionary.
func WithDictionary(freq map[string]int) Option {
	return optionFunc(func(c *clientConfig) {
		c.dictionary = freq
	})
}

// WithSpellMaxDistance sets the largest edit distance a correction may span.
// Default: 2.
func WithSpellMaxDistance(d int) Option {
	return optionFunc(func(c *clientConfig) {
		c.spellMaxDistance = d
	})
}

// WithThreshold sets the similarity a symptom must exceed to match a sentence.
// Default: 0.5.
func WithThreshold(t float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.threshold = &t
	})
}

// WithWorkers bounds how many sentences are processed concurrently.
// Default: 4.
func WithWorkers(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.workers = n
	})
}

// WithoutSentenceBreak keeps compound clauses ("x and y") in one sentence.
func WithoutSentenceBreak() Option {
	return optionFunc(func(c *clientConfig) {
		c.breakClauses = false
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}

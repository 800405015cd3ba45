package classify

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/symptomlog/internal/domain"
	"github.com/kailas-cloud/symptomlog/internal/domain/classification"
	"github.com/kailas-cloud/symptomlog/internal/domain/corpus"
	"github.com/kailas-cloud/symptomlog/internal/domain/symptom"
	"github.com/kailas-cloud/symptomlog/internal/logger"
)

// Defaults.
const (
	DefaultThreshold = 0.5
	DefaultWorkers   = 4
)

// Outcome labels for Instruments.Classifications.
const (
	OutcomeDetected = "detected"
	OutcomeNone     = "none"
	OutcomeError    = "error"
)

// Config tunes the classifier.
type Config struct {
	Threshold float64
	Workers   int // <= 0 selects DefaultWorkers
}

// DefaultConfig returns the stock classifier settings.
func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold, Workers: DefaultWorkers}
}

// Dependencies are the collaborators a Service is built from.
// Corpus, Segmenter, WordVectors and Symptoms are required.
type Dependencies struct {
	Corpus      *corpus.Corpus
	Segmenter   Segmenter
	WordVectors WordVectors
	Symptoms    *symptom.Vectors
	Speller     Speller
	Lemmatizer  Lemmatizer
}

// Instruments are optional metrics. Nil fields are skipped.
type Instruments struct {
	Classifications *prometheus.CounterVec // label: outcome
	Duration        prometheus.Observer
	Sentences       prometheus.Counter
	Gaps            prometheus.Counter
}

// Request is a single classification call.
type Request struct {
	Text      string
	Threshold *float64 // nil uses the configured threshold
}

// Service identifies symptoms in free-text logs.
type Service struct {
	segmenter  Segmenter
	cleaner    *Cleaner
	vectorizer *Vectorizer
	matcher    *Matcher
	cfg        Config
	inst       Instruments
}

// New creates a classification service.
func New(cfg Config, deps Dependencies, inst Instruments) (*Service, error) {
	switch {
	case deps.Corpus == nil:
		return nil, fmt.Errorf("corpus: %w", domain.ErrMissingDependency)
	case deps.Segmenter == nil:
		return nil, fmt.Errorf("segmenter: %w", domain.ErrMissingDependency)
	case deps.WordVectors == nil:
		return nil, fmt.Errorf("word vectors: %w", domain.ErrMissingDependency)
	case deps.Symptoms == nil:
		return nil, fmt.Errorf("symptom vectors: %w", domain.ErrMissingDependency)
	}
	if err := validateThreshold(cfg.Threshold); err != nil {
		return nil, err
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}

	return &Service{
		segmenter:  deps.Segmenter,
		cleaner:    NewCleaner(deps.Corpus, deps.Speller, deps.Lemmatizer),
		vectorizer: NewVectorizer(deps.WordVectors, inst.Gaps),
		matcher:    NewMatcher(deps.Symptoms),
		cfg:        cfg,
		inst:       inst,
	}, nil
}

// Threshold returns the configured similarity threshold.
func (s *Service) Threshold() float64 { return s.cfg.Threshold }

// Classify runs the full pipeline over req.Text.
// Sentences are processed concurrently; the reference is keyed by sentence index.
func (s *Service) Classify(ctx context.Context, req Request) (classification.Result, error) {
	start := time.Now()

	res, err := s.classify(ctx, req)

	if s.inst.Duration != nil {
		s.inst.Duration.Observe(time.Since(start).Seconds())
	}
	s.recordOutcome(res, err)

	return res, err
}

func (s *Service) classify(ctx context.Context, req Request) (classification.Result, error) {
	threshold := s.cfg.Threshold
	if req.Threshold != nil {
		if err := validateThreshold(*req.Threshold); err != nil {
			return classification.Result{}, err
		}
		threshold = *req.Threshold
	}

	sentences := s.segmenter.Normalize(req.Text)
	if s.inst.Sentences != nil {
		s.inst.Sentences.Add(float64(len(sentences)))
	}

	out := make([]classification.Sentence, len(sentences))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for i, text := range sentences {
		g.Go(func() error {
			sent, err := s.sentence(gctx, i, text, threshold)
			if err != nil {
				return err
			}
			out[i] = sent
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return classification.Result{}, err
	}

	ref := make(classification.Reference, len(out))
	for _, sent := range out {
		ref[sent.Index] = sent
	}

	res := Aggregate(ref)
	logger.FromContext(ctx).Debug("classification complete",
		zap.Int("sentences", len(sentences)),
		zap.Float64("threshold", threshold),
		zap.Bool("detected", res.Detected()),
		zap.Strings("primary", res.Primary()),
	)
	return res, nil
}

func (s *Service) sentence(ctx context.Context, i int, text string, threshold float64) (classification.Sentence, error) {
	if err := ctx.Err(); err != nil {
		return classification.Sentence{}, fmt.Errorf("sentence %d: %w", i, err)
	}
	ctx = logger.With(ctx, zap.Int("sentence", i))

	tokens, err := s.cleaner.Clean(ctx, text)
	if err != nil {
		return classification.Sentence{}, fmt.Errorf("sentence %d: %w", i, err)
	}
	rec := classification.SentenceRecord{Index: i, Text: text, Tokens: tokens}

	vec, err := s.vectorizer.Vectorize(ctx, rec)
	if err != nil {
		return classification.Sentence{}, err
	}

	ranking, err := s.matcher.Rank(vec, threshold)
	if err != nil {
		return classification.Sentence{}, fmt.Errorf("sentence %d: %w", i, err)
	}
	logger.FromContext(ctx).Debug("sentence ranked",
		zap.Strings("tokens", tokens),
		zap.Strings("symptoms", ranking.Symptoms()),
	)

	return classification.Sentence{Index: i, Text: text, Tokens: tokens, Ranking: ranking}, nil
}

func (s *Service) recordOutcome(res classification.Result, err error) {
	if s.inst.Classifications == nil {
		return
	}
	outcome := OutcomeNone
	switch {
	case err != nil:
		outcome = OutcomeError
	case res.Detected():
		outcome = OutcomeDetected
	}
	s.inst.Classifications.WithLabelValues(outcome).Inc()
}

func validateThreshold(t float64) error {
	if math.IsNaN(t) || t < -1 || t > 1 {
		return fmt.Errorf("threshold %v outside [-1, 1]: %w", t, domain.ErrInvalidInput)
	}
	return nil
}

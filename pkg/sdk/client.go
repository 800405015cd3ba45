package symptomlog

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/symptomlog/internal/domain"
	"github.com/kailas-cloud/symptomlog/internal/domain/classification"
	"github.com/kailas-cloud/symptomlog/internal/domain/corpus"
	"github.com/kailas-cloud/symptomlog/internal/domain/symptom"
	"github.com/kailas-cloud/symptomlog/internal/repository/assets"
	"github.com/kailas-cloud/symptomlog/internal/spell"
	"github.com/kailas-cloud/symptomlog/internal/textproc"
	classifyuc "github.com/kailas-cloud/symptomlog/internal/usecase/classify"
	healthuc "github.com/kailas-cloud/symptomlog/internal/usecase/health"
	logresultuc "github.com/kailas-cloud/symptomlog/internal/usecase/logresult"
)

// Internal interfaces for substitution in tests.
type classifyUseCase interface {
	Classify(ctx context.Context, req classifyuc.Request) (classification.Result, error)
}

type analyzeUseCase interface {
	Analyze(ctx context.Context, text string) (logresultuc.Report, error)
}

// Client is the symptomlog SDK entry point. It is safe for concurrent use.
type Client struct {
	classifySvc classifyUseCase
	analyzeSvc  analyzeUseCase
	healthSvc   healthUseCase
	obs         *observer
}

// New builds a Client from an asset directory and/or in-memory tables.
// A corpus, symptom vectors and a word-vector source are required.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{breakClauses: true}
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	tables, err := loadTables(cfg)
	if err != nil {
		return nil, err
	}
	return wireClient(cfg, tables, obs)
}

// tables are the resolved read-only inputs of the pipeline.
type tables struct {
	corpus     *corpus.Corpus
	symptoms   *symptom.Vectors
	words      classifyuc.WordVectors
	dictionary map[string]int
	catalog    *symptom.Catalog
	relations  *symptom.Relations
}

func loadTables(cfg *clientConfig) (*tables, error) {
	var t tables

	if cfg.assetDir != "" {
		p := assets.DirPaths(cfg.assetDir).Optional()
		if cfg.wordLookup != nil || cfg.wordVectors != nil {
			p.WordVectors = ""
		}
		b, err := assets.Load(p)
		if err != nil {
			return nil, fmt.Errorf("symptomlog: load assets: %w", err)
		}
		t.corpus, t.symptoms, t.dictionary = b.Corpus, b.SymptomVectors, b.Dictionary
		t.catalog, t.relations = b.Catalog, b.Relations
		if b.WordVectors != nil {
			t.words = b.WordVectors
		}
	}

	if cfg.corpus != nil {
		t.corpus = corpus.New(cfg.corpus)
	}
	if cfg.symptomVectors != nil {
		sv, err := symptom.NewVectors(cfg.symptomVectors)
		if err != nil {
			return nil, fmt.Errorf("symptomlog: %w", err)
		}
		t.symptoms = sv
	}
	if cfg.dictionary != nil {
		t.dictionary = cfg.dictionary
	}

	switch {
	case cfg.wordLookup != nil:
		t.words = &lookupAdapter{inner: cfg.wordLookup}
	case cfg.wordVectors != nil:
		wv, err := assets.NewWordVectors(cfg.wordVectors)
		if err != nil {
			return nil, fmt.Errorf("symptomlog: word vectors: %w", err)
		}
		t.words = wv
	}

	switch {
	case t.corpus == nil:
		return nil, fmt.Errorf("symptomlog: corpus required (use WithCorpus or WithAssetDir): %w",
			domain.ErrMissingDependency)
	case t.symptoms == nil:
		return nil, fmt.Errorf("symptomlog: symptom vectors required (use WithSymptomVectors or WithAssetDir): %w",
			domain.ErrMissingDependency)
	case t.words == nil:
		return nil, fmt.Errorf("symptomlog: word vectors required (use WithWordVectors or WithWordVectorLookup): %w",
			domain.ErrMissingDependency)
	}
	return &t, nil
}

func wireClient(cfg *clientConfig, t *tables, obs *observer) (*Client, error) {
	normalizer, err := textproc.NewNormalizer(cfg.breakClauses)
	if err != nil {
		return nil, fmt.Errorf("symptomlog: %w", err)
	}

	deps := classifyuc.Dependencies{
		Corpus:      t.corpus,
		Segmenter:   normalizer,
		WordVectors: t.words,
		Symptoms:    t.symptoms,
		Lemmatizer:  textproc.NewLemmatizer(t.corpus, t.corpus),
	}
	// Spelling correction needs a real dictionary; the corpus alone would pull
	// ordinary words toward symptom vocabulary.
	if t.dictionary != nil {
		corrector := spell.NewCorrector(spell.Merge(copyFreq(t.dictionary), t.corpus.Words()), cfg.spellMaxDistance)
		deps.Speller = corrector
		deps.Lemmatizer = textproc.NewLemmatizer(textproc.Lexicons{t.corpus, corrector}, t.corpus)
	}

	ccfg := classifyuc.DefaultConfig()
	if cfg.threshold != nil {
		ccfg.Threshold = *cfg.threshold
	}
	ccfg.Workers = cfg.workers

	classifySvc, err := classifyuc.New(ccfg, deps, classifyuc.Instruments{})
	if err != nil {
		return nil, fmt.Errorf("symptomlog: %w", err)
	}

	var checker healthuc.WordVectorChecker
	if a, ok := t.words.(*lookupAdapter); ok {
		checker = a
	}

	return &Client{
		classifySvc: classifySvc,
		analyzeSvc:  logresultuc.New(classifySvc, t.catalog, t.relations, logresultuc.DefaultMinCorrelation),
		healthSvc:   healthuc.New(nil, checker),
		obs:         obs,
	}, nil
}

// Classify identifies the symptoms described in text.
// A text without any recognizable symptom is not an error: Detected is false.
func (c *Client) Classify(ctx context.Context, text string) (Result, error) {
	return c.classify(ctx, classifyuc.Request{Text: text})
}

// ClassifyWithThreshold is Classify with a per-call similarity threshold in [-1, 1].
func (c *Client) ClassifyWithThreshold(ctx context.Context, text string, threshold float64) (Result, error) {
	return c.classify(ctx, classifyuc.Request{Text: text, Threshold: &threshold})
}

// ClassifyValue accepts an untyped value such as a decoded JSON field.
// Anything other than a string fails with ErrInvalidInput.
func (c *Client) ClassifyValue(ctx context.Context, v any) (Result, error) {
	text, err := textproc.Input(v)
	if err != nil {
		c.obs.observe("classify", time.Now(), err)
		return Result{}, fmt.Errorf("classify: %w", err)
	}
	return c.Classify(ctx, text)
}

func (c *Client) classify(ctx context.Context, req classifyuc.Request) (res Result, err error) {
	start := time.Now()
	defer func() {
		c.obs.observe("classify", start, err, "sentences", len(res.Sentences))
		if err == nil {
			c.obs.outcome(res.Detected)
		}
	}()

	r, err := c.classifySvc.Classify(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("classify: %w", err)
	}
	return toResult(&r), nil
}

// Analyze classifies text and resolves symptom display names and correlated
// targets from symptoms.csv and relations.csv when the asset directory has them.
func (c *Client) Analyze(ctx context.Context, text string) (rep Report, err error) {
	start := time.Now()
	defer func() { c.obs.observe("analyze", start, err) }()

	r, err := c.analyzeSvc.Analyze(ctx, text)
	if err != nil {
		return Report{}, fmt.Errorf("analyze: %w", err)
	}
	return Report{
		Result:       toResult(&r.Result),
		Identified:   r.Identified,
		AlsoPossible: r.AlsoPossible,
		Targets:      r.TargetNames,
		TargetIDs:    r.Targets,
	}, nil
}

func toResult(r *classification.Result) Result {
	out := Result{
		Detected: r.Detected(),
		Primary:  append([]string{}, r.Primary()...),
	}
	if sec, ok := r.Secondary(); ok {
		out.Secondary = append([]string(nil), sec...)
	}

	ref := r.Reference()
	out.Sentences = make([]Sentence, 0, len(ref))
	for _, i := range ref.Indices() {
		s := ref[i]
		matches := make([]Match, len(s.Ranking))
		for j, m := range s.Ranking {
			matches[j] = Match{Symptom: m.Symptom, Score: m.Score}
		}
		out.Sentences = append(out.Sentences, Sentence{
			Index:   s.Index,
			Text:    s.Text,
			Tokens:  append([]string{}, s.Tokens...),
			Matches: matches,
		})
	}
	return out
}

func copyFreq(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

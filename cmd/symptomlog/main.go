package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/symptomlog/internal/config"
	"github.com/kailas-cloud/symptomlog/internal/db"
	dbRedis "github.com/kailas-cloud/symptomlog/internal/db/redis"
	logpkg "github.com/kailas-cloud/symptomlog/internal/logger"
	"github.com/kailas-cloud/symptomlog/internal/metrics"
	"github.com/kailas-cloud/symptomlog/internal/repository/assets"
	"github.com/kailas-cloud/symptomlog/internal/repository/spellcache"
	"github.com/kailas-cloud/symptomlog/internal/repository/vectorcache"
	"github.com/kailas-cloud/symptomlog/internal/spell"
	"github.com/kailas-cloud/symptomlog/internal/textproc"
	chiTransport "github.com/kailas-cloud/symptomlog/internal/transport/chi"
	openaiWV "github.com/kailas-cloud/symptomlog/internal/transport/openai"
	classifyuc "github.com/kailas-cloud/symptomlog/internal/usecase/classify"
	healthuc "github.com/kailas-cloud/symptomlog/internal/usecase/health"
	logresultuc "github.com/kailas-cloud/symptomlog/internal/usecase/logresult"
	"github.com/kailas-cloud/symptomlog/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting symptomlog API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("word_vectors", cfg.WordVectors.Source),
		zap.Bool("cache", cfg.Cache.Enabled),
	)

	// Static assets are loaded once; everything built from them is read-only.
	bundle, err := assets.Load(assetPaths(cfg))
	if err != nil {
		logger.Fatal("Failed to load assets", zap.Error(err))
	}
	logger.Info("Assets loaded",
		zap.Int("corpus", bundle.Corpus.Len()),
		zap.Int("symptoms", bundle.SymptomVectors.Len()),
		zap.Int("dictionary", len(bundle.Dictionary)),
	)

	// Optional Redis cache
	ctx := context.Background()
	var store db.Store
	if cfg.Cache.Enabled {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, time.Duration(cfg.Cache.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Cache not ready", zap.Error(err))
		}
		logger.Info("Connected to cache", zap.Strings("addrs", cfg.Cache.Addrs))
	}
	cacheTTL := time.Duration(cfg.Cache.TTLSec) * time.Second

	// Register metrics explicitly (no init())
	metrics.RegisterHTTPMetrics()
	metrics.RegisterEmbeddingMetrics()
	metrics.RegisterClassifierMetrics()

	speller, lexicon := buildSpeller(bundle, cfg.Classifier.SpellMaxDistance, store, cacheTTL, logger)

	wordVectors, wvHealth, err := buildWordVectors(cfg, bundle, store, cacheTTL, logger)
	if err != nil {
		logger.Fatal("Failed to create word vectors", zap.Error(err))
	}

	normalizer, err := textproc.NewNormalizer(*cfg.Classifier.SentenceBreak)
	if err != nil {
		logger.Fatal("Failed to create normalizer", zap.Error(err))
	}

	classifySvc, err := classifyuc.New(
		classifyuc.Config{
			Threshold: *cfg.Classifier.Threshold,
			Workers:   cfg.Classifier.Workers,
		},
		classifyuc.Dependencies{
			Corpus:      bundle.Corpus,
			Segmenter:   normalizer,
			WordVectors: wordVectors,
			Symptoms:    bundle.SymptomVectors,
			Speller:     speller,
			Lemmatizer:  textproc.NewLemmatizer(lexicon, bundle.Corpus),
		},
		classifyuc.Instruments{
			Classifications: metrics.ClassificationsTotal,
			Duration:        metrics.ClassificationDuration,
			Sentences:       metrics.SentencesTotal,
			Gaps:            metrics.VectorizationGapsTotal,
		},
	)
	if err != nil {
		logger.Fatal("Failed to create classifier", zap.Error(err))
	}

	logSvc := logresultuc.New(classifySvc, bundle.Catalog, bundle.Relations, *cfg.Targets.MinCorrelation)

	// Pass nil interfaces (not typed nil pointers) for absent dependencies.
	var cachePinger healthuc.CachePinger
	if store != nil {
		cachePinger = store
	}
	healthSvc := healthuc.New(cachePinger, wvHealth)

	server := chiTransport.NewServer(
		classifySvc, logSvc, healthSvc,
		time.Duration(cfg.HTTP.RequestTimeoutSec)*time.Second, logger,
	)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Router(cfg.Auth.APIKeys),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// assetPaths resolves the asset directory layout with per-file overrides.
func assetPaths(cfg config.Config) assets.Paths {
	var p assets.Paths
	if cfg.Assets.Dir != "" {
		p = assets.DirPaths(cfg.Assets.Dir).Optional()
	}
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&p.Corpus, cfg.Assets.Corpus)
	override(&p.Dictionary, cfg.Assets.Dictionary)
	override(&p.WordVectors, cfg.Assets.WordVectors)
	override(&p.SymptomVectors, cfg.Assets.SymptomVectors)
	override(&p.Catalog, cfg.Assets.Symptoms)
	override(&p.Relations, cfg.Assets.Relations)
	if cfg.WordVectors.Source != config.SourceFile {
		p.WordVectors = ""
	}
	return p
}

// buildSpeller assembles Corrector -> Cached. Without a dictionary spelling
// correction is disabled and only the corpus validates lemmas.
func buildSpeller(
	bundle *assets.Bundle,
	maxDistance int,
	store db.Store,
	ttl time.Duration,
	logger *zap.Logger,
) (classifyuc.Speller, textproc.Lexicon) {
	if bundle.Dictionary == nil {
		logger.Warn("No dictionary configured, spelling correction disabled")
		return nil, bundle.Corpus
	}

	corrector := spell.NewCorrector(spell.Merge(bundle.Dictionary, bundle.Corpus.Words()), maxDistance)
	lexicon := textproc.Lexicons{bundle.Corpus, corrector}
	if store == nil {
		return corrector, lexicon
	}
	return spellcache.New(corrector, store, ttl, metrics.SpellCacheTotal, logger), lexicon
}

// buildWordVectors returns the local table, or OpenAI -> Cached for the remote
// source. The second value is non-nil only for remote providers.
func buildWordVectors(
	cfg config.Config,
	bundle *assets.Bundle,
	store db.Store,
	ttl time.Duration,
	logger *zap.Logger,
) (classifyuc.WordVectors, healthuc.WordVectorChecker, error) {
	if cfg.WordVectors.Source == config.SourceFile {
		if bundle.WordVectors == nil {
			return nil, nil, fmt.Errorf("word vectors file not loaded")
		}
		logger.Info("Word vectors loaded",
			zap.Int("words", bundle.WordVectors.Len()),
			zap.Int("dim", bundle.WordVectors.Dim()),
		)
		return bundle.WordVectors, nil, nil
	}

	wv := cfg.WordVectors
	base := openaiWV.NewWordVectors(&openaiWV.Config{
		APIKey:     wv.APIKey,
		BaseURL:    wv.BaseURL,
		Model:      wv.Model,
		Dimensions: wv.Dimensions,
		Provider:   wv.Provider,
		Logger:     logger,
	})
	logger.Info("Remote word vectors configured",
		zap.String("provider", wv.Provider),
		zap.String("model", wv.Model),
		zap.Int("dimensions", wv.Dimensions),
	)

	if store == nil {
		return base, base, nil
	}
	namespace := fmt.Sprintf("%s:%s:%d", wv.Provider, wv.Model, wv.Dimensions)
	return vectorcache.New(base, store, namespace, ttl, metrics.EmbeddingCacheTotal, logger), base, nil
}

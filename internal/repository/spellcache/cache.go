// Package spellcache caches spelling corrections in Redis.
package spellcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/symptomlog/internal/db"
	"github.com/kailas-cloud/symptomlog/internal/domain"
)

var cacheKeyPrefix = domain.KeyPrefix + "spell:"

// store is the consumer interface for the correction cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Speller corrects a single word.
type Speller interface {
	Correct(ctx context.Context, word string) (string, error)
}

// Cached memoizes corrections of an inner speller.
type Cached struct {
	inner      Speller
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator. ttl <= 0 keeps entries forever.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner Speller,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *Cached {
	return &Cached{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Correct returns a cached correction or computes one with the inner speller.
// Cache failures are logged and treated as misses.
func (c *Cached) Correct(ctx context.Context, word string) (string, error) {
	if word == "" {
		return word, nil
	}
	key := cacheKeyPrefix + word

	data, err := c.store.Get(ctx, key)
	switch {
	case err == nil && len(data) > 0:
		c.incCache("hit")
		return string(data), nil
	case err != nil && !errors.Is(err, db.ErrKeyNotFound):
		c.logger.Warn("Failed to get cached correction", zap.String("key", key), zap.Error(err))
	}

	c.incCache("miss")

	fixed, err := c.inner.Correct(ctx, word)
	if err != nil {
		return "", fmt.Errorf("correct word: %w", err)
	}

	if err := c.store.SetWithTTL(ctx, key, []byte(fixed), c.ttl); err != nil {
		c.logger.Warn("Failed to cache correction", zap.String("key", key), zap.Error(err))
	}
	return fixed, nil
}

func (c *Cached) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// Package vectorcache caches word vectors from a remote provider in Redis.
package vectorcache

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/symptomlog/internal/db"
	"github.com/kailas-cloud/symptomlog/internal/domain"
	"github.com/kailas-cloud/symptomlog/internal/domain/vector"
)

var cacheKeyPrefix = domain.KeyPrefix + "wordvec:"

// noVector marks a word the provider has no vector for. Its length is not a
// multiple of four, so it can never be confused with an encoded vector.
var noVector = []byte{'-'}

// store is the consumer interface for the word-vector cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// WordVectors resolves a word to its vector.
type WordVectors interface {
	Lookup(ctx context.Context, word string) (vector.Vector, error)
}

// Cached caches word vectors, including "no vector" answers, in a key-value store.
type Cached struct {
	inner      WordVectors
	store      store
	namespace  string
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator. namespace separates vectors of different
// models; ttl <= 0 keeps entries forever.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner WordVectors,
	s store,
	namespace string,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *Cached {
	return &Cached{
		inner:      inner,
		store:      s,
		namespace:  namespace,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Lookup returns a cached vector or asks the inner provider.
// Cache failures are logged and treated as misses.
func (c *Cached) Lookup(ctx context.Context, word string) (vector.Vector, error) {
	key := c.cacheKey(word)

	if vec, ok, err := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return vec, err
	}

	c.incCache("miss")

	vec, err := c.inner.Lookup(ctx, word)
	if errors.Is(err, domain.ErrWordNotFound) {
		c.putToCache(ctx, key, noVector)
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("lookup word: %w", err)
	}

	c.putToCache(ctx, key, vectorToCacheBytes(vec))
	return vec, nil
}

func (c *Cached) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *Cached) cacheKey(word string) string {
	return cacheKeyPrefix + c.namespace + ":" + word
}

// getFromCache reports ok for any usable entry. A cached "no vector" answer
// is ok with domain.ErrWordNotFound.
func (c *Cached) getFromCache(ctx context.Context, key string) (vector.Vector, bool, error) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached word vector", zap.String("key", key), zap.Error(err))
		}
		return nil, false, nil
	}
	if len(data) == 0 {
		return nil, false, nil
	}
	if string(data) == string(noVector) {
		return nil, true, domain.ErrWordNotFound
	}

	vec, err := bytesToVector(data)
	if err != nil {
		c.logger.Warn("Failed to parse cached word vector", zap.String("key", key), zap.Error(err))
		return nil, false, nil
	}
	return vec, true, nil
}

func (c *Cached) putToCache(ctx context.Context, key string, data []byte) {
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache word vector", zap.String("key", key), zap.Error(err))
	}
}

func vectorToCacheBytes(v vector.Vector) []byte {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

func bytesToVector(data []byte) (vector.Vector, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("invalid word vector cache data: len=%d (not multiple of 4)", len(data))
	}
	vec := make(vector.Vector, len(data)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return vec, nil
}

package vectorcache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/symptomlog/internal/db"
	"github.com/kailas-cloud/symptomlog/internal/domain/vector"
)

type mockWordVectors struct {
	vec   vector.Vector
	err   error
	calls int
}

func (m *mockWordVectors) Lookup(_ context.Context, _ string) (vector.Vector, error) {
	m.calls++
	return m.vec, m.err
}

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKVStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

func newTestCached(t *testing.T, inner *mockWordVectors) (*Cached, *mockKVStore) {
	t.Helper()
	ms := &mockKVStore{}
	c := New(inner, ms, "text-embedding-3-small", time.Hour, nil, zap.NewNop())
	return c, ms
}

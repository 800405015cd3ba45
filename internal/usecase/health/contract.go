package health

import "context"

// CachePinger checks availability of the Redis cache.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// WordVectorChecker checks availability of a remote word-vector provider.
type WordVectorChecker interface {
	HealthCheck(ctx context.Context) error
}

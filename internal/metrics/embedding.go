package metrics

import "github.com/prometheus/client_golang/prometheus"

// Word-vector provider and cache Prometheus metrics.
var (
	EmbeddingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "symptomlog",
			Name:      "embedding_requests_total",
			Help:      "Total number of word embedding requests",
		},
		[]string{"provider", "model", "status"},
	)

	EmbeddingRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "symptomlog",
			Name:      "embedding_request_duration_seconds",
			Help:      "Word embedding request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "model"},
	)

	EmbeddingTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "symptomlog",
			Name:      "embedding_tokens_total",
			Help:      "Total embedding tokens consumed",
		},
		[]string{"provider", "model", "type"},
	)

	EmbeddingErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "symptomlog",
			Name:      "embedding_errors_total",
			Help:      "Total word embedding errors",
		},
		[]string{"provider", "model", "error_type"},
	)

	EmbeddingCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "symptomlog",
			Name:      "embedding_cache_total",
			Help:      "Word vector cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	SpellCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "symptomlog",
			Name:      "spell_cache_total",
			Help:      "Spelling correction cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var embMetricsRegistered bool

// RegisterEmbeddingMetrics registers word-vector and cache metrics. Must be called once from main.
func RegisterEmbeddingMetrics() {
	if embMetricsRegistered {
		return
	}
	prometheus.MustRegister(EmbeddingRequestsTotal)
	prometheus.MustRegister(EmbeddingRequestDuration)
	prometheus.MustRegister(EmbeddingTokensTotal)
	prometheus.MustRegister(EmbeddingErrorsTotal)
	prometheus.MustRegister(EmbeddingCacheTotal)
	prometheus.MustRegister(SpellCacheTotal)
	embMetricsRegistered = true
}

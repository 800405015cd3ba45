package metrics

import "github.com/prometheus/client_golang/prometheus"

// Classifier Prometheus metrics.
var (
	ClassificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "symptomlog",
			Name:      "classifications_total",
			Help:      "Classified documents by outcome",
		},
		[]string{"outcome"}, // "detected" / "none" / "error"
	)

	ClassificationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "symptomlog",
			Name:      "classification_duration_seconds",
			Help:      "End-to-end classification duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	SentencesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "symptomlog",
			Name:      "sentences_total",
			Help:      "Sentences processed by the classifier",
		},
	)

	VectorizationGapsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "symptomlog",
			Name:      "vectorization_gaps_total",
			Help:      "Corpus tokens with no word vector",
		},
	)
)

var classifierMetricsRegistered bool

// RegisterClassifierMetrics registers classifier metrics. Must be called once from main.
func RegisterClassifierMetrics() {
	if classifierMetricsRegistered {
		return
	}
	prometheus.MustRegister(ClassificationsTotal)
	prometheus.MustRegister(ClassificationDuration)
	prometheus.MustRegister(SentencesTotal)
	prometheus.MustRegister(VectorizationGapsTotal)
	classifierMetricsRegistered = true
}

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Recommendation Prometheus metrics.
var (
	RecommendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recodex",
			Name:      "recommend_requests_total",
			Help:      "Total number of recommendation requests",
		},
		[]string{"outcome"}, // "ok" / "empty" / "error"
	)

	RecommendDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "recodex",
			Name:      "recommend_duration_seconds",
			Help:      "Ranking duration in seconds, cache lookups included",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RecommendCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recodex",
			Name:      "recommend_cache_total",
			Help:      "Recommendation cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	DatasetRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "recodex",
			Name:      "dataset_rows",
			Help:      "Rows loaded per input table",
		},
		[]string{"table"},
	)

	DatasetLoadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "recodex",
			Name:      "dataset_load_duration_seconds",
			Help:      "Time spent reading and aligning the input tables",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)
)

// Recommendation outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

var registerOnce sync.Once

// RegisterRecommendMetrics registers the recommendation and dataset metrics. Safe to call more than once.
func RegisterRecommendMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RecommendRequestsTotal,
			RecommendDuration,
			RecommendCacheTotal,
			DatasetRows,
			DatasetLoadDuration,
		)
	})
}

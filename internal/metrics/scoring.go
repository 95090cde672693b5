package metrics

import "github.com/prometheus/client_golang/prometheus"

// Scoring and source-loading Prometheus metrics.
var (
	ScoringRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wordrank",
			Name:      "scoring_requests_total",
			Help:      "Total number of scoring provider requests",
		},
		[]string{"provider", "model", "status"},
	)

	ScoringRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wordrank",
			Name:      "scoring_request_duration_seconds",
			Help:      "Scoring provider request duration in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"provider", "model"},
	)

	ScoringTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wordrank",
			Name:      "scoring_tokens_total",
			Help:      "Total scoring tokens consumed",
		},
		[]string{"provider", "model", "type"},
	)

	ScoringBatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wordrank",
			Name:      "scoring_batches_total",
			Help:      "Scoring batches by outcome",
		},
		[]string{"outcome"}, // "scored" / "fallback" / "dropped"
	)

	SourceFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wordrank",
			Name:      "source_fetches_total",
			Help:      "Word-list source fetches by field tag and status",
		},
		[]string{"field", "status"}, // status: "ok" / "error"
	)

	WordlistCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wordrank",
			Name:      "wordlist_cache_total",
			Help:      "Word-list cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var scoringMetricsRegistered bool

// RegisterScoringMetrics registers Prometheus scoring metrics. Must be called once from main.
func RegisterScoringMetrics() {
	if scoringMetricsRegistered {
		return
	}
	prometheus.MustRegister(ScoringRequestsTotal)
	prometheus.MustRegister(ScoringRequestDuration)
	prometheus.MustRegister(ScoringTokensTotal)
	prometheus.MustRegister(ScoringBatchesTotal)
	prometheus.MustRegister(SourceFetchesTotal)
	prometheus.MustRegister(WordlistCacheTotal)
	scoringMetricsRegistered = true
}

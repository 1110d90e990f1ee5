package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation label values
const (
	OpSplit        = "split"
	OpThirty       = "thirty"
	OpTen          = "ten"
	OpDivisibility = "divisibility"
	OpBatch        = "batch"
)

var (
	// Split metrics
	Splits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "split_engine_splits_total",
			Help: "Total number of amounts processed, by operation",
		},
		[]string{"operation"},
	)

	DecomposedSplits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "split_engine_decomposed_total",
			Help: "Total number of amounts large enough to take the quotient/remainder path",
		},
		[]string{"operation"},
	)

	FastPathSplits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "split_engine_fast_path_total",
			Help: "Total number of amounts that fit in 64 bits and took the uint64 path",
		},
		[]string{"operation"},
	)

	ConservationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "split_engine_conservation_failures_total",
		Help: "Total number of split results whose parts did not sum to the input",
	})

	// Batch metrics
	BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "split_engine_batch_size",
		Help:    "Number of amounts per batch request",
		Buckets: []float64{1, 5, 10, 50, 100, 250, 500, 1000},
	})

	BatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "split_engine_batch_duration_seconds",
		Help:    "Batch split duration in seconds",
		Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	})

	BatchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "split_engine_batch_requests_total",
			Help: "Total number of batch split requests",
		},
		[]string{"status"},
	)

	// HTTP metrics
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "split_engine_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "split_engine_http_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "split_engine_rate_limited_total",
		Help: "Total number of requests rejected by the rate limiter",
	})
)

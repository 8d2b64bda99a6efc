package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// API client metrics track requests issued against the remote blog service
var (
	// APIRequestsTotal counts blog API requests by operation and outcome
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_api_requests_total",
			Help: "Total number of blog API requests",
		},
		[]string{"operation", "status"},
	)

	// APIRequestDuration measures blog API request duration in seconds
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "blog_api_request_duration_seconds",
			Help:    "Blog API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// APIPayloadSize measures the encoded multipart payload size in bytes
	APIPayloadSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "blog_api_payload_size_bytes",
			Help:    "Encoded multipart payload size in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
		[]string{"operation"},
	)
)

// Cache metrics track the canonical list cache
var (
	// CacheBlogsTotal tracks the number of blogs in the canonical list
	CacheBlogsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "blog_cache_blogs_total",
			Help: "Number of blogs currently held in the cache",
		},
	)

	// CacheFetchesTotal counts cache list fetches by outcome
	CacheFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_cache_fetches_total",
			Help: "Total number of cache list fetches",
		},
		[]string{"status"},
	)

	// CacheInvalidationsTotal counts invalidation requests, including those
	// collapsed into an already in-flight fetch
	CacheInvalidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_cache_invalidations_total",
			Help: "Total number of cache invalidation requests",
		},
		[]string{"collapsed"},
	)
)

// Mutation metrics track create/update/delete lifecycles
var (
	// MutationsTotal counts mutation invocations by kind and terminal phase
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_mutations_total",
			Help: "Total number of blog mutations by kind and outcome",
		},
		[]string{"kind", "phase"},
	)

	// MutationDuration measures the pending-to-settled duration of a mutation
	MutationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "blog_mutation_duration_seconds",
			Help:    "Mutation duration from pending to settled in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)
)

// RecordAPIRequest records one blog API request with its outcome and duration.
// Status should be "success" or "failure".
func RecordAPIRequest(operation string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	APIRequestsTotal.WithLabelValues(operation, status).Inc()
	APIRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordPayloadSize records the encoded multipart payload size for an operation.
func RecordPayloadSize(operation string, size int) {
	APIPayloadSize.WithLabelValues(operation).Observe(float64(size))
}

// RecordCacheFetch records one cache list fetch outcome and, on success,
// updates the cached list size gauge.
func RecordCacheFetch(success bool, blogs int) {
	status := "success"
	if !success {
		status = "failure"
	}
	CacheFetchesTotal.WithLabelValues(status).Inc()
	if success {
		CacheBlogsTotal.Set(float64(blogs))
	}
}

// RecordCacheInvalidation records an invalidation request. Collapsed is true
// when the request was absorbed by an already in-flight fetch.
func RecordCacheInvalidation(collapsed bool) {
	label := "false"
	if collapsed {
		label = "true"
	}
	CacheInvalidationsTotal.WithLabelValues(label).Inc()
}

// RecordMutation records a settled mutation with its terminal phase and duration.
func RecordMutation(kind, phase string, duration time.Duration) {
	MutationsTotal.WithLabelValues(kind, phase).Inc()
	MutationDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

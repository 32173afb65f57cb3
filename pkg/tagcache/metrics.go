package tagcache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LookupHits tracks lookups that returned a decoded payload.
	LookupHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tagcache_lookup_hits_total",
			Help: "Total number of cache lookups that produced a payload",
		},
	)

	// LookupMisses tracks misses by reason.
	LookupMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tagcache_lookup_misses_total",
			Help: "Total number of cache lookups that produced no value",
		},
		[]string{"reason"}, // "absent", "flagged", "stale", "checksum"
	)

	// StoreErrors tracks failed store round trips by operation.
	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tagcache_store_errors_total",
			Help: "Total number of failed store reads",
		},
		[]string{"operation"}, // "entry", "tags"
	)

	// DecodeErrors tracks entries whose payload could not be decoded.
	DecodeErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tagcache_decode_errors_total",
			Help: "Total number of cache entries with an undecodable payload",
		},
	)

	// LookupDuration tracks end-to-end lookup latency.
	LookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tagcache_lookup_duration_seconds",
			Help:    "Cache lookup duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)
)

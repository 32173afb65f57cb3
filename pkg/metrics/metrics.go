// Package metrics provides the centralized Prometheus metrics registry
// for the tagcache reader. All metrics are defined in pkg/tagcache to
// keep them next to the code paths that drive them.
//
// This package provides documentation and reference for all available
// metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the reader.
// All metrics are automatically registered via promauto in pkg/tagcache.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Lookup Metrics (pkg/tagcache):
//   - tagcache_lookup_hits_total (Counter): Lookups that produced a decoded payload
//   - tagcache_lookup_misses_total{reason} (Counter): Misses by reason
//     (absent, flagged, stale, checksum)
//   - tagcache_lookup_duration_seconds (Histogram): End-to-end lookup latency
//
// Failure Metrics (pkg/tagcache):
//   - tagcache_store_errors_total{operation} (Counter): Failed store reads
//     (entry, tags)
//   - tagcache_decode_errors_total (Counter): Entries whose payload did not decode
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(tagcache_lookup_hits_total[5m])) /
//   (sum(rate(tagcache_lookup_hits_total[5m])) + sum(rate(tagcache_lookup_misses_total[5m])))
//
//   # Misses Caused by Tag Invalidation
//   rate(tagcache_lookup_misses_total{reason="checksum"}[5m])
//
//   # Store Failure Rate
//   rate(tagcache_store_errors_total[5m])
//
//   # P95 Lookup Latency
//   histogram_quantile(0.95, rate(tagcache_lookup_duration_seconds_bucket[5m]))

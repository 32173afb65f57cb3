// Package tagcache implements the read side of a tag-based invalidation
// cache backed by Redis.
//
// A cache entry is stored as a flat hash of string fields and carries,
// besides its payload, an expiry timestamp, an explicit valid flag, a
// list of invalidation tags and a checksum over the tag counters taken
// at write time. Bumping a tag's counter invalidates every entry whose
// checksum was computed against the old value, without touching the
// entries themselves. This package only reads: it resolves keys,
// decides validity and unwraps payloads. Writing entries and bumping
// counters belong to an external writer.
//
// # Basic Usage
//
//	// Create Redis client
//	redisClient := redis.NewClient(&redis.Options{
//		Addr: "localhost:6379",
//	})
//
//	// Create a reader over the shared client
//	reader := tagcache.NewReader(tagcache.NewRedisStore(redisClient), tagcache.DefaultConfig())
//
//	// Look up a cached page
//	payload, err := reader.Lookup(ctx, "front")
//	if errors.Is(err, tagcache.ErrCacheMiss) {
//		// Nothing usable cached - render from scratch
//	}
//
// # Validity
//
// An entry is usable only if all of the following hold:
//
//   - its recorded cid is non-empty
//   - its valid flag is truthy
//   - its expiry is -1 (never expires) or has not passed
//   - the sum of its tags' current counters equals its stored checksum
//
// The first three checks are free; only entries passing them cost the
// batched tag-counter read. Counters absent from the store are excluded
// from the sum rather than counted as zero.
//
// # Errors
//
// Lookup distinguishes three outcomes besides a hit:
//
//   - ErrCacheMiss: key absent or entry failed validation
//   - ErrCorruptPayload: entry exists but its envelope does not decode
//   - anything else: a store failure, propagated unchanged
//
// The reader performs no retries and no logging; both belong to the
// caller.
//
// # Metrics
//
// The package exports Prometheus metrics:
//
//   - tagcache_lookup_hits_total - lookups that produced a payload
//   - tagcache_lookup_misses_total{reason} - misses by reason
//   - tagcache_store_errors_total{operation} - failed store reads
//   - tagcache_decode_errors_total - undecodable payloads
//   - tagcache_lookup_duration_seconds - end-to-end lookup latency
package tagcache

package tagcache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrCacheMiss indicates no usable entry exists for the identifier.
// An absent key and an entry that failed validation are
// indistinguishable to callers.
var ErrCacheMiss = errors.New("cache miss")

// Reader answers read-side lookups against a tag-invalidated cache.
// It never writes to the store and holds no mutable state, so a single
// Reader is safe for concurrent use.
type Reader struct {
	store  Store
	config Config
}

// NewReader creates a reader over an externally owned store handle.
func NewReader(store Store, config Config) *Reader {
	if store == nil {
		panic("store cannot be nil")
	}
	return &Reader{
		store:  store,
		config: config,
	}
}

// Lookup resolves the identifier to a store key, fetches the entry,
// validates it and decodes its payload.
// Returns ErrCacheMiss if the key is absent or the entry fails
// validation, ErrCorruptPayload if the entry exists but its payload
// cannot be decoded. Store failures propagate wrapped; no retries are
// attempted here.
func (r *Reader) Lookup(ctx context.Context, cid string) (any, error) {
	timer := prometheus.NewTimer(LookupDuration)
	defer timer.ObserveDuration()

	key := r.config.Key(r.config.PageBin, cid)

	fields, err := r.store.FetchFields(ctx, key)
	if err != nil {
		StoreErrors.WithLabelValues("entry").Inc()
		return nil, fmt.Errorf("fetch entry %s: %w", key, err)
	}
	if len(fields) == 0 {
		LookupMisses.WithLabelValues("absent").Inc()
		return nil, ErrCacheMiss
	}

	entry := EntryFromFields(fields)

	valid, err := r.validate(ctx, entry)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, ErrCacheMiss
	}

	payload, err := DecodePayload(entry.Data)
	if err != nil {
		DecodeErrors.Inc()
		return nil, err
	}

	LookupHits.Inc()
	return payload, nil
}

// validate decides whether the entry is still usable. The cheap
// structural and expiry checks run first; only entries that pass them
// cost the tag-counter round trip.
func (r *Reader) validate(ctx context.Context, entry Entry) (bool, error) {
	now := time.Now()
	if entry.Cid == "" || !truthyFlag(entry.Valid) {
		LookupMisses.WithLabelValues("flagged").Inc()
		return false, nil
	}
	if entry.Expired(now) {
		LookupMisses.WithLabelValues("stale").Inc()
		return false, nil
	}

	sum, ok, err := r.tagSum(ctx, entry.TagSet())
	if err != nil {
		return false, err
	}

	checksum, parseErr := strconv.ParseInt(strings.TrimSpace(entry.Checksum), 10, 64)
	if !ok || parseErr != nil || checksum != sum {
		LookupMisses.WithLabelValues("checksum").Inc()
		return false, nil
	}
	return true, nil
}

// tagSum fetches the current counters for all tags in one batched read
// and sums the ones present in the store. Absent counters are filtered
// out, not counted as zero; with every counter absent the sum is that
// of the empty sequence. ok is false when a present counter fails to
// parse, which must invalidate the entry rather than fail the lookup.
//
// An entry with no tags skips the round trip entirely: the sum over no
// tags is 0 with or without asking the store.
func (r *Reader) tagSum(ctx context.Context, tags []string) (sum int64, ok bool, err error) {
	if len(tags) == 0 {
		return 0, true, nil
	}

	keys := make([]string, len(tags))
	for i, tag := range tags {
		keys[i] = r.config.Key(r.config.TagBin, tag)
	}

	counters, err := r.store.FetchCounters(ctx, keys...)
	if err != nil {
		StoreErrors.WithLabelValues("tags").Inc()
		return 0, false, fmt.Errorf("fetch tag counters: %w", err)
	}

	for _, counter := range counters {
		if counter == nil {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(*counter), 10, 64)
		if err != nil {
			return 0, false, nil
		}
		sum += n
	}
	return sum, true, nil
}

// Package tagcache provides the read side of a tag-invalidated cache
// backed by a remote key-value store.
package tagcache

import (
	"strconv"
	"strings"
	"time"
)

// NeverExpires is the expiry sentinel for entries without a lifetime.
const NeverExpires = -1

// Entry is one cache record as stored in the store's flat field model.
// Numeric fields stay string-encoded; they are parsed defensively when
// evaluated so corrupt values invalidate the entry instead of failing.
type Entry struct {
	// Cid is the logical identifier recorded inside the entry.
	// An empty Cid marks the entry absent or corrupt.
	Cid string

	// Data is the payload wrapped in a serialization envelope.
	Data string

	// Expire is a unix timestamp in seconds, or NeverExpires.
	Expire string

	// Tags is the whitespace-separated list of invalidation tags the
	// entry was written against.
	Tags string

	// Checksum is the sum of the tag counters at write time.
	Checksum string

	// Valid is an explicit invalidation switch, independent of expiry
	// and tags.
	Valid string
}

// EntryFromFields builds an Entry from a fetched field mapping.
// Missing fields stay zero-valued, which the validity checks treat as
// absent or falsy.
func EntryFromFields(fields map[string]string) Entry {
	return Entry{
		Cid:      fields["cid"],
		Data:     fields["data"],
		Expire:   fields["expire"],
		Tags:     fields["tags"],
		Checksum: fields["checksum"],
		Valid:    fields["valid"],
	}
}

// Expired reports whether the entry's expiry lies strictly in the past.
// NeverExpires passes regardless of now. An unparsable expiry counts as
// expired.
func (e Entry) Expired(now time.Time) bool {
	expire, err := strconv.ParseInt(strings.TrimSpace(e.Expire), 10, 64)
	if err != nil {
		return true
	}
	return expire != NeverExpires && expire < now.Unix()
}

// Usable reports whether the entry passes the checks that need no store
// round trip: a non-empty cid, a truthy valid flag, and an expiry that
// has not passed.
func (e Entry) Usable(now time.Time) bool {
	return e.Cid != "" && truthyFlag(e.Valid) && !e.Expired(now)
}

// TagSet splits the entry's tag list on whitespace. An empty or
// all-whitespace list yields no tags.
func (e Entry) TagSet() []string {
	return strings.Fields(e.Tags)
}

// truthyFlag interprets a string-encoded boolean from the store.
// Empty, "0" and "false" are falsy; everything else is truthy.
func truthyFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false":
		return false
	}
	return true
}

package tagcache

import (
	"strings"
)

// Config holds the key-resolution settings for a Reader.
// All fields are fixed at construction time.
type Config struct {
	// KeyTemplate maps a bin plus cache identifier onto a physical store
	// key. It contains the placeholders {bin} and {cid}.
	// Example: "cache:{bin}:{cid}"
	KeyTemplate string

	// PageBin is the namespace for cached page entries.
	PageBin string

	// TagBin is the namespace for tag invalidation counters.
	TagBin string
}

// DefaultConfig returns the conventional template and bin names.
func DefaultConfig() Config {
	return Config{
		KeyTemplate: "cache:{bin}:{cid}",
		PageBin:     "page",
		TagBin:      "tags",
	}
}

// Key expands the template for the given bin and cache identifier.
// Substitution is literal: no escaping, no check that the placeholders
// are present. A template without {cid} simply collapses the identifier
// space, which is a caller error rather than a fault here.
func (c Config) Key(bin, cid string) string {
	key := strings.ReplaceAll(c.KeyTemplate, "{bin}", bin)
	return strings.ReplaceAll(key, "{cid}", cid)
}

package tagcache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store is the read-only view of the key-value store the reader needs.
// Implementations must be safe for concurrent use; the reader holds one
// long-lived handle and shares it across lookups.
type Store interface {
	// FetchFields returns the full field mapping stored under key.
	// An absent key yields an empty map, not an error.
	FetchFields(ctx context.Context, key string) (map[string]string, error)

	// FetchCounters returns one value per key in a single batched read.
	// A nil element marks a key absent from the store; absence must be
	// preserved rather than substituted with a default.
	FetchCounters(ctx context.Context, keys ...string) ([]*string, error)
}

// RedisStore adapts a go-redis client to the Store interface using
// HGETALL for entries and MGET for tag counters.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an externally owned Redis client. The caller keeps
// ownership of the client's lifecycle.
func NewRedisStore(client *redis.Client) *RedisStore {
	if client == nil {
		panic("redis client cannot be nil")
	}
	return &RedisStore{client: client}
}

// FetchFields retrieves the hash stored under key. Redis returns an
// empty map for missing keys, which matches the Store contract.
func (s *RedisStore) FetchFields(ctx context.Context, key string) (map[string]string, error) {
	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall: %w", err)
	}
	return fields, nil
}

// FetchCounters issues one MGET over all keys. Redis nils map to nil
// elements so absent counters stay distinguishable from zero values.
func (s *RedisStore) FetchCounters(ctx context.Context, keys ...string) ([]*string, error) {
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}

	counters := make([]*string, len(values))
	for i, value := range values {
		if value == nil {
			continue
		}
		str, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("redis mget: unexpected value type %T for key %s", value, keys[i])
		}
		counters[i] = &str
	}
	return counters, nil
}

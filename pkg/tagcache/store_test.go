package tagcache

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
)

// setupTestRedis creates a test Redis client. Unit tests skip when no
// local Redis is available; the integration suite covers the same paths
// against a containerized instance.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15, // Use a separate DB for tests
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for testing: %v", err)
	}

	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush test DB: %v", err)
	}

	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})

	return client
}

func TestNewRedisStore_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewRedisStore should panic with nil redis client")
		}
	}()
	NewRedisStore(nil)
}

func TestRedisStore_FetchFields(t *testing.T) {
	client := setupTestRedis(t)
	store := NewRedisStore(client)
	ctx := context.Background()

	fields := map[string]string{
		"cid":      "42",
		"data":     "payload",
		"expire":   "-1",
		"tags":     "node:1",
		"checksum": "0",
		"valid":    "1",
	}
	if err := client.HSet(ctx, "cache:page:42", fields).Err(); err != nil {
		t.Fatalf("Failed to seed hash: %v", err)
	}

	got, err := store.FetchFields(ctx, "cache:page:42")
	if err != nil {
		t.Fatalf("FetchFields() error = %v", err)
	}
	for k, want := range fields {
		if got[k] != want {
			t.Errorf("FetchFields()[%s] = %v, want %v", k, got[k], want)
		}
	}
}

func TestRedisStore_FetchFields_AbsentKey(t *testing.T) {
	client := setupTestRedis(t)
	store := NewRedisStore(client)

	got, err := store.FetchFields(context.Background(), "cache:page:missing")
	if err != nil {
		t.Fatalf("FetchFields() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("FetchFields() = %v, want empty map for absent key", got)
	}
}

func TestRedisStore_FetchCounters(t *testing.T) {
	client := setupTestRedis(t)
	store := NewRedisStore(client)
	ctx := context.Background()

	if err := client.Set(ctx, "cache:tags:node:1", "3", 0).Err(); err != nil {
		t.Fatalf("Failed to seed counter: %v", err)
	}
	if err := client.Set(ctx, "cache:tags:node:3", "0", 0).Err(); err != nil {
		t.Fatalf("Failed to seed counter: %v", err)
	}

	got, err := store.FetchCounters(ctx,
		"cache:tags:node:1", "cache:tags:node:2", "cache:tags:node:3")
	if err != nil {
		t.Fatalf("FetchCounters() error = %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("FetchCounters() returned %d values, want 3", len(got))
	}
	if got[0] == nil || *got[0] != "3" {
		t.Errorf("counter[0] = %v, want 3", got[0])
	}
	if got[1] != nil {
		// Absence must survive the batched read, not collapse to a
		// default value.
		t.Errorf("counter[1] = %q, want nil for absent key", *got[1])
	}
	if got[2] == nil || *got[2] != "0" {
		t.Errorf("counter[2] = %v, want present 0", got[2])
	}
}

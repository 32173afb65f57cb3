// Package testutil provides testing utilities for the tagcache reader.
package testutil

import (
	"context"
	"sync"
)

// FakeStore is an in-memory stand-in for the key-value store. It
// implements the reader's Store interface and records every read so
// tests can assert on round-trip counts and the exact keys requested.
type FakeStore struct {
	mu sync.Mutex

	hashes map[string]map[string]string
	values map[string]string

	// Errors to inject per operation. When set, the corresponding
	// fetch fails instead of returning data.
	FieldsErr   error
	CountersErr error

	// Tracking
	FieldsCalls     int
	CounterCalls    int
	LastCounterKeys []string
}

// NewFakeStore creates an empty fake store.
func NewFakeStore() *FakeStore {
	return &FakeStore{
		hashes: make(map[string]map[string]string),
		values: make(map[string]string),
	}
}

// SetEntry stores a field mapping under key, replacing any previous one.
func (s *FakeStore) SetEntry(key string, fields map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	s.hashes[key] = copied
}

// SetCounter stores a plain string value under key.
func (s *FakeStore) SetCounter(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// DeleteCounter removes a plain value, making the key absent again.
func (s *FakeStore) DeleteCounter(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// FetchFields returns the fields stored under key, or an empty map when
// the key is absent.
func (s *FakeStore) FetchFields(ctx context.Context, key string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.FieldsCalls++
	if s.FieldsErr != nil {
		return nil, s.FieldsErr
	}

	fields := make(map[string]string, len(s.hashes[key]))
	for k, v := range s.hashes[key] {
		fields[k] = v
	}
	return fields, nil
}

// FetchCounters returns one value per key, nil for absent keys.
func (s *FakeStore) FetchCounters(ctx context.Context, keys ...string) ([]*string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.CounterCalls++
	s.LastCounterKeys = append([]string(nil), keys...)
	if s.CountersErr != nil {
		return nil, s.CountersErr
	}

	counters := make([]*string, len(keys))
	for i, key := range keys {
		if value, ok := s.values[key]; ok {
			v := value
			counters[i] = &v
		}
	}
	return counters, nil
}

package ctxstore

import (
	"context"
	"sort"
	"sync"
	"time"
)

// entry pairs a value with its absolute expiry. Zero expiresAt = never.
type entry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore is the in-process backend. One mutex guards values and
// expiries together so lazy eviction can inspect and mutate both
// atomically with respect to a concurrent Set.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]entry)}
}

// Set stores value under ref, replacing any previous value and expiry.
// A ttl of 0 clears any existing expiry.
func (s *MemoryStore) Set(_ context.Context, ref, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	s.entries[ref] = e
	return nil
}

// Get returns the value for ref. An expired entry is evicted and reported
// as absent.
func (s *MemoryStore) Get(_ context.Context, ref string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[ref]
	if !ok {
		return "", false, nil
	}
	if s.expired(e) {
		delete(s.entries, ref)
		return "", false, nil
	}
	return e.value, true, nil
}

// Delete removes ref. Deleting an absent key is not an error.
func (s *MemoryStore) Delete(_ context.Context, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, ref)
	return nil
}

// Keys returns all live reference ids in sorted order, evicting any
// expired entries it encounters.
func (s *MemoryStore) Keys(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	refs := make([]string, 0, len(s.entries))
	for ref, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, ref)
			continue
		}
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs, nil
}

// Clear removes every entry.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry)
	return nil
}

// Close is a no-op for the in-process backend.
func (s *MemoryStore) Close() error {
	return nil
}

// expired reports whether e's expiry has passed. Callers hold s.mu.
func (s *MemoryStore) expired(e entry) bool {
	return !e.expiresAt.IsZero() && !time.Now().Before(e.expiresAt)
}

// Len returns the number of entries currently held, expired or not.
// Diagnostic only; the public contract goes through Keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

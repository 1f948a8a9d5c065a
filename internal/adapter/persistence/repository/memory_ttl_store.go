package repository

import (
	"context"
	"sync"
	"time"

	"vendor_registration/internal/usecase/interfaces"
)

type memoryEntry struct {
	value    string
	deadline time.Time
}

// MemoryTTLStore is a process-local TTL store for development and tests.
// Entries are evicted lazily on read and on every write.
type MemoryTTLStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

var _ interfaces.ITTLStore = (*MemoryTTLStore)(nil)

func NewMemoryTTLStore() *MemoryTTLStore {
	return NewMemoryTTLStoreWithClock(time.Now)
}

func NewMemoryTTLStoreWithClock(now func() time.Time) *MemoryTTLStore {
	return &MemoryTTLStore{entries: make(map[string]memoryEntry), now: now}
}

func (s *MemoryTTLStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return "", false, nil
	}
	if isExpired(s.now(), e.deadline) {
		delete(s.entries, key)
		return "", false, nil
	}
	return e.value, true, nil
}

func (s *MemoryTTLStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.entries[key] = memoryEntry{value: value, deadline: expiresAt(now, ttl)}
	s.evictExpired(now)
	return nil
}

func (s *MemoryTTLStore) Ping(context.Context) error {
	return nil
}

// evictExpired must be called with the lock held.
func (s *MemoryTTLStore) evictExpired(now time.Time) {
	for k, e := range s.entries {
		if isExpired(now, e.deadline) {
			delete(s.entries, k)
		}
	}
}

package storage

import (
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore is an in-process Store. Now can be swapped to drive
// expiry in tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	Now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		Now:     time.Now,
	}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return "", false
	}
	if !s.Now().Before(e.expiresAt) {
		delete(s.entries, key)
		return "", false
	}
	return e.value, true
}

func (s *MemoryStore) Set(key, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ttl <= 0 {
		delete(s.entries, key)
		return
	}
	s.entries[key] = memoryEntry{value: value, expiresAt: s.Now().Add(ttl)}
}

func (s *MemoryStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

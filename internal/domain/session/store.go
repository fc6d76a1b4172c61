package session

import (
	"context"
	"sync"
	"time"
)

// Store is the storage capability behind visitor sessions. The form
// used browser session storage; here the backend is injected so the
// submission logic stays testable without a real one.
type Store interface {
	Put(ctx context.Context, key string, info PersonalInfo, ttl time.Duration) error
	Get(ctx context.Context, key string) (PersonalInfo, bool, error)
	Delete(ctx context.Context, key string) error
}

type memoryEntry struct {
	info      PersonalInfo
	expiresAt time.Time
}

// MemoryStore is the in-process fallback used when no Redis address is
// configured. Expired entries are dropped lazily on read.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Put(_ context.Context, key string, info PersonalInfo, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := memoryEntry{info: info}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	s.entries[key] = entry
	return nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (PersonalInfo, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return PersonalInfo{}, false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return PersonalInfo{}, false, nil
	}
	return entry.info, true, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

package session

import (
	"context"
	"sync"
	"time"

	"github.com/terra-clan/paradigm-advisor/internal/page"
)

type memoryEntry struct {
	record    page.Record
	expiresAt time.Time
}

// MemoryStore implements Store in process memory.
// Expired entries are invisible to Load and removed by DeleteExpired.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an in-memory store with the given session TTL
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Load returns the state saved under id
func (s *MemoryStore) Load(_ context.Context, id string) (page.State, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok || !s.now().Before(entry.expiresAt) {
		return page.State{}, ErrSessionNotFound
	}
	return entry.record.State(), nil
}

// Save stores state under id
func (s *MemoryStore) Save(_ context.Context, id string, state page.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = memoryEntry{
		record:    state.Record(),
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

// Delete removes the session
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// DeleteExpired removes every expired session and returns how many were removed
func (s *MemoryStore) DeleteExpired(_ context.Context) (int, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored sessions, expired ones included
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Ping always succeeds
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}

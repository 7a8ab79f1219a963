package leaderboard

import (
	"context"
	"slices"
	"sync"
)

// memoryStore keeps entries for the life of the process
type memoryStore struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryStore creates a non-persistent store
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Load(ctx context.Context) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries), nil
}

func (s *memoryStore) Save(ctx context.Context, entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = slices.Clone(entries)
	return nil
}

func (s *memoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}

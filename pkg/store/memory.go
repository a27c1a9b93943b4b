package store

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps the list in memory. The zero value is ready to use.
type MemoryStore struct {
	mu     sync.Mutex
	spaces []string
	saves  int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.spaces), nil
}

func (s *MemoryStore) Save(ctx context.Context, spaces []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spaces = slices.Clone(spaces)
	s.saves++
	return nil
}

// Saves returns how many times Save was called.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)

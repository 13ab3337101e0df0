package prefs

import (
	"context"
	"sync"
)

// MemoryStore keeps the flag in process memory. Used as a fallback when
// Redis is not configured; the flag does not survive restarts.
type MemoryStore struct {
	mu   sync.Mutex
	dark bool
}

func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) DarkMode(context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark, nil
}

func (s *MemoryStore) SetDarkMode(_ context.Context, dark bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dark = dark
	return nil
}

func (s *MemoryStore) Close() error { return nil }

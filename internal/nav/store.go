package nav

import "sync"

// Store holds the selected product-showcase tab.
type Store interface {
	Current() string
	Set(tab string)
}

// MemoryStore is a Store kept in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	current string
}

func NewMemoryStore(initial string) *MemoryStore {
	return &MemoryStore{current: initial}
}

func (s *MemoryStore) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *MemoryStore) Set(tab string) {
	s.mu.Lock()
	s.current = tab
	s.mu.Unlock()
}

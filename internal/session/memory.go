package session

import "sync"

// MemStore is an in-memory Repository for tests.
type MemStore struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Current returns the stored snapshot or ErrNoSession.
func (s *MemStore) Current() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, ErrNoSession
	}
	copied := *s.snap
	return &copied, nil
}

// Save overwrites the stored snapshot.
func (s *MemStore) Save(snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *snap
	s.snap = &copied
	return nil
}

// Clear empties the store.
func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = nil
	return nil
}

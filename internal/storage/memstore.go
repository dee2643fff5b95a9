package storage

import "sync"

// MemoryStore is an in-memory implementation of the KV contract.
// It is safe for concurrent use. Data is lost on restart - tests and the
// -mem server mode use it in place of the file store.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get implements the KV interface.
func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}

	// Return a copy to avoid external modifications
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

// Put implements the KV interface.
func (s *MemoryStore) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	return nil
}

// Delete implements the KV interface.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Ensure MemoryStore implements the KV interface.
var _ KV = (*MemoryStore)(nil)

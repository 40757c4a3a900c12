package kvstore

import "sync"

// MemoryStore is a map-backed BlobStore. Values are copied on the way in and
// out so callers cannot alias stored bytes.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
	// FailSet, when non-nil, is returned from every Set. Tests use it to
	// exercise write failures.
	FailSet error
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get implements BlobStore.
func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set implements BlobStore.
func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSet != nil {
		return &StorageError{Backend: BackendMemory, Op: "set", Key: key, Err: s.FailSet}
	}
	v := make([]byte, len(value))
	copy(v, value)
	s.values[key] = v
	return nil
}

// Close implements BlobStore.
func (s *MemoryStore) Close() error {
	return nil
}

package kvstore

import (
	"context"
	"sync"
)

// MemoryStore keeps serialized values in a map. Values are stored as bytes
// so callers never share structure with what was persisted.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string, dest any) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}

	s.mu.RLock()
	data, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, decode(key, data, dest)
}

func (s *MemoryStore) Set(_ context.Context, key string, value any) error {
	data, err := encode(key, value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

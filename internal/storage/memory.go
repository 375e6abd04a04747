package storage

import (
	"sync"

	"github.com/theakshaypant/hackhub/internal/core"
)

// MemoryStore is a process-local store. Nothing survives a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return "", core.ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// Unavailable stands in when no durable store could be opened.
// Every call fails with core.ErrUnavailable.
type Unavailable struct{}

func (Unavailable) Get(string) (string, error) { return "", core.ErrUnavailable }
func (Unavailable) Set(string, string) error   { return core.ErrUnavailable }
func (Unavailable) Close() error               { return nil }

var (
	_ core.Storage = (*MemoryStore)(nil)
	_ core.Storage = Unavailable{}
)

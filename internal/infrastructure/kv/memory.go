package kv

import (
	"context"
	"sync"

	"github.com/dentalcare360/storefront/internal/domain/repository"
)

// MemoryStore is a process-local driver for the key-value port. It is the
// default in tests and usable as a storage driver when no external service
// is available; durability then lasts for the process lifetime only.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.records[key]
	return val, ok
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = value
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}

var _ repository.KVStore = (*MemoryStore)(nil)

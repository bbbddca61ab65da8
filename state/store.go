// Package state keeps small JSON values between requests: list view
// state and form drafts.
package state

import (
	"context"
	"encoding/json"
	"sync"
)

type Store interface {
	Get(ctx context.Context, key string, out any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

// MemoryStore keeps values for the lifetime of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string][]byte{}}
}

func (s *MemoryStore) Get(_ context.Context, key string, out any) (bool, error) {

	s.mu.RLock()
	raw, ok := s.values[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}

	return true, json.Unmarshal(raw, out)
}

func (s *MemoryStore) Set(_ context.Context, key string, value any) error {

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {

	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()

	return nil
}

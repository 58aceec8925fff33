package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"weather-planner/internal/domain/model"
)

// memoryStoreImpl is a process-local map of entries
type memoryStoreImpl struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemoryStore() Store {
	return &memoryStoreImpl{entries: make(map[string]Entry)}
}

func (s *memoryStoreImpl) Load(_ context.Context, key string) (*Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	return &entry, true, nil
}

func (s *memoryStoreImpl) Save(_ context.Context, key string, entry Entry, _ time.Duration) error {
	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()
	return nil
}

func (s *memoryStoreImpl) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

func (s *memoryStoreImpl) Health(_ context.Context) model.ComponentHealthStatus {
	s.mu.RLock()
	size := len(s.entries)
	s.mu.RUnlock()

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"backend": "memory",
			"entries": strconv.Itoa(size),
		},
	}
}

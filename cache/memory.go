package cache

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// MemoryStore keeps entries in process memory. It backs single-node runs and
// tests, and is the fallback when Redis is unreachable.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return Entry{}, false, nil
	}
	raw, ok := s.values[TimeKey(key)]
	if !ok {
		return Entry{}, false, nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Entry{}, false, nil
	}
	return Entry{Value: []byte(value), StoredAt: fromMillis(ms)}, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, storedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = string(value)
	s.values[TimeKey(key)] = strconv.FormatInt(toMillis(storedAt), 10)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	delete(s.values, TimeKey(key))
	return nil
}

// Raw returns the string stored under a single key, timestamp keys included.
func (s *MemoryStore) Raw(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

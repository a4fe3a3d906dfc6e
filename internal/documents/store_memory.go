package documents

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory implementation of TextStore. Entries are kept
// for the lifetime of the process and never evicted.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore constructs a MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]string),
	}
}

// Put stores text under token, refusing to overwrite an existing entry.
func (s *MemoryStore) Put(ctx context.Context, token, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[token]; ok {
		return ErrTokenExists
	}
	s.data[token] = text
	return nil
}

// Get returns the text stored under token.
func (s *MemoryStore) Get(ctx context.Context, token string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.data[token]
	if !ok {
		return "", ErrUnknownToken
	}
	return text, nil
}

// Len reports the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

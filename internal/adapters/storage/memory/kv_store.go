package memory

import (
	"context"
	"sync"

	"pet-adoption/internal/ports/kv"
)

type kvStore struct {
	mu    sync.RWMutex
	byKey map[string]string
}

// NewKVStore devuelve un kv.Store en memoria (modo dev / tests).
func NewKVStore() kv.Store {
	return &kvStore{
		byKey: make(map[string]string),
	}
}

func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byKey[key]
	return v, ok, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byKey[key] = value
	return nil
}

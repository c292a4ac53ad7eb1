package storage

import (
	"context"
	"slices"
	"sync"

	"github.com/arkasala/badmintongo-storefront/cart"
)

// MemoryStore keeps carts in process memory. Used for local development
// and tests; state does not survive a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]cart.Item
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]cart.Item)}
}

func (s *MemoryStore) Load(ctx context.Context, key string) ([]cart.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.carts[key]), nil
}

func (s *MemoryStore) Save(ctx context.Context, key string, items []cart.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[key] = slices.Clone(items)

	return nil
}

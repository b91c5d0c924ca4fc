package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MemStore holds an immutable product collection for the life of the process.
type MemStore struct {
	mu    sync.RWMutex
	order []Product
	byID  map[string]int
}

func NewMemStore(products []Product) (*MemStore, error) {
	s := &MemStore{
		order: make([]Product, 0, len(products)),
		byID:  make(map[string]int, len(products)),
	}
	for _, p := range products {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, fmt.Errorf("product %q: empty id", p.Name)
		}
		if _, dup := s.byID[id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		p.ID = id
		s.byID[id] = len(s.order)
		s.order = append(s.order, p.Clone())
	}
	return s, nil
}

// NewStore returns a store seeded with the built-in sample catalog.
func NewStore() *MemStore {
	s, err := NewMemStore(SeedProducts())
	if err != nil {
		panic(err)
	}
	return s
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func (s *MemStore) ListProducts(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.order), nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return Product{}, false, nil
	}
	return s.order[i].Clone(), true, nil
}

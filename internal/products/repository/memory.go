package repository

import (
	"context"
	"sync"
	"time"

	"shelfspot/internal/products"
)

// MemoryRepository keeps products in process memory, newest first.
// Everything is lost on restart.
type MemoryRepository struct {
	mu    sync.RWMutex
	items []products.Product
	now   func() time.Time
}

func NewMemory() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

func (r *MemoryRepository) Create(_ context.Context, p products.Product) (products.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.CreatedAt = r.now().UTC()
	r.items = append([]products.Product{p}, r.items...)
	return p, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return products.ErrNotFound
}

func (r *MemoryRepository) List(_ context.Context) ([]products.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]products.Product, len(r.items))
	copy(list, r.items)
	return list, nil
}

func (r *MemoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

func (r *MemoryRepository) Health() error { return nil }

package client

import (
	"context"
	"sync"
)

// API is the subset of Client the Catalog needs.
type API interface {
	ListProducts(ctx context.Context) ([]Product, error)
	CreateProduct(ctx context.Context, in NewProduct) (Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// Catalog is a local newest-first view of the remote catalog. Operations
// are serialized. A failed Load empties the view; failed mutations leave
// it as it was. The last failure is kept as a notice until cleared.
type Catalog struct {
	api API

	mu    sync.Mutex
	items []Product
	err   error
}

func NewCatalog(api API) *Catalog {
	return &Catalog{api: api, items: []Product{}}
}

func (c *Catalog) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.err = nil
	items, err := c.api.ListProducts(ctx)
	if err != nil {
		c.items = []Product{}
		c.err = err
		return err
	}
	c.items = items
	return nil
}

func (c *Catalog) Products() []Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Product, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Add(ctx context.Context, in NewProduct) (Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.api.CreateProduct(ctx, in)
	if err != nil {
		c.err = err
		return Product{}, err
	}

	items := make([]Product, 0, len(c.items)+1)
	items = append(items, p)
	c.items = append(items, c.items...)
	return p, nil
}

func (c *Catalog) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.api.DeleteProduct(ctx, id); err != nil {
		c.err = err
		return err
	}

	items := make([]Product, 0, len(c.items))
	for _, p := range c.items {
		if p.ID != id {
			items = append(items, p)
		}
	}
	c.items = items
	return nil
}

// Err returns the last failure notice, or nil.
func (c *Catalog) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Catalog) ClearErr() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = nil
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shelfspot/internal/products"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	listKey = "catalog:products"
	// genKey is bumped on every mutation. A fill only lands if it is unchanged
	// since before the store read, so a racing mutation cannot be overwritten
	// by the list it made stale.
	genKey = "catalog:products:gen"
)

// Store is the catalog store being cached.
type Store interface {
	Create(ctx context.Context, p products.Product) (products.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]products.Product, error)
	Health() error
}

// CachedStore is a read-through cache of the product list in Redis.
// Any mutation drops the cached list. Redis failures are logged and
// the underlying store is used directly.
type CachedStore struct {
	next   Store
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedStore(next Store, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedStore {
	return &CachedStore{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedStore) List(ctx context.Context) ([]products.Product, error) {
	list, err := c.get(ctx)
	if err == nil {
		return list, nil
	}
	if !errors.Is(err, redis.Nil) {
		c.logger.Warn("read product list cache failed", zap.Error(err))
	}

	gen, genErr := c.generation(ctx)
	list, err = c.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		c.logger.Warn("read product list generation failed", zap.Error(genErr))
		return list, nil
	}
	if err := c.fill(ctx, gen, list); err != nil {
		c.logger.Warn("write product list cache failed", zap.Error(err))
	}
	return list, nil
}

func (c *CachedStore) Create(ctx context.Context, p products.Product) (products.Product, error) {
	created, err := c.next.Create(ctx, p)
	if err != nil {
		return products.Product{}, err
	}
	c.invalidate(ctx)
	return created, nil
}

func (c *CachedStore) Delete(ctx context.Context, id string) error {
	if err := c.next.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedStore) Health() error {
	return c.next.Health()
}

func (c *CachedStore) get(ctx context.Context) ([]products.Product, error) {
	data, err := c.client.Get(ctx, listKey).Bytes()
	if err != nil {
		return nil, err
	}

	var list []products.Product
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("unmarshal product list: %w", err)
	}
	return list, nil
}

func (c *CachedStore) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, genKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// fill caches list unless a mutation happened since gen was read.
func (c *CachedStore) fill(ctx context.Context, gen int64, list []products.Product) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal product list: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, listKey, data, c.ttl)
			return nil
		})
		return err
	}, genKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *CachedStore) invalidate(ctx context.Context) {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Del(ctx, listKey)
		return nil
	})
	if err != nil {
		c.logger.Warn("invalidate product list cache failed", zap.Error(err))
	}
}

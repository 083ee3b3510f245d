// internal/domain/catalog/cache.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	listCacheKey   = "catalog:products"
	listVersionKey = "catalog:products:version"

	// lookupTimeout bounds a shared cache fill once its callers have gone
	lookupTimeout = 5 * time.Second
)

var errStaleRead = errors.New("catalog changed during read")

// CachedCatalog is a read-through Redis cache in front of a Store. Every
// write bumps a version key; a fill is only stored if the version it saw
// before reading the store is still current.
type CachedCatalog struct {
	next    Store
	client  *redis.Client
	baseTTL time.Duration
	logger  *logrus.Logger
	sfg     singleflight.Group // Prevents cache stampede
}

// NewCachedCatalog wraps next with a Redis cache
func NewCachedCatalog(next Store, client *redis.Client, ttl time.Duration, logger *logrus.Logger) *CachedCatalog {
	return &CachedCatalog{
		next:    next,
		client:  client,
		baseTTL: ttl,
		logger:  logger,
	}
}

func (c *CachedCatalog) GetProductByID(ctx context.Context, id string) (*Product, error) {
	key := productCacheKey(id)

	v, err := c.do(ctx, key, func(ctx context.Context) (interface{}, error) {
		var prod Product
		hit, err := c.get(ctx, key, &prod)
		if err != nil {
			c.logger.WithError(err).WithField("product_id", id).Warn("catalog cache read failed")
		}
		if hit {
			return &prod, nil
		}

		version, versionErr := c.version(ctx, productVersionKey(id))
		fresh, err := c.next.GetProductByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if versionErr == nil {
			c.setIfCurrent(ctx, key, productVersionKey(id), version, fresh)
		}
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Product).Clone(), nil
}

func (c *CachedCatalog) ListProducts(ctx context.Context) ([]Product, error) {
	v, err := c.do(ctx, listCacheKey, func(ctx context.Context) (interface{}, error) {
		var products []Product
		hit, err := c.get(ctx, listCacheKey, &products)
		if err != nil {
			c.logger.WithError(err).Warn("catalog cache read failed")
		}
		if hit {
			return products, nil
		}

		version, versionErr := c.version(ctx, listVersionKey)
		products, err = c.next.ListProducts(ctx)
		if err != nil {
			return nil, err
		}
		if versionErr == nil {
			c.setIfCurrent(ctx, listCacheKey, listVersionKey, version, products)
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}

	products := v.([]Product)
	out := make([]Product, len(products))
	for i := range products {
		out[i] = *products[i].Clone()
	}
	return out, nil
}

func (c *CachedCatalog) UpsertProduct(ctx context.Context, p *Product) error {
	if err := c.next.UpsertProduct(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx, p.ID)
	return nil
}

func (c *CachedCatalog) DeleteProduct(ctx context.Context, id string) error {
	if err := c.next.DeleteProduct(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

// do collapses concurrent lookups of key into one. The shared lookup is
// detached from any single caller's cancellation; each caller still returns
// as soon as its own ctx is done.
func (c *CachedCatalog) do(ctx context.Context, key string, fn func(context.Context) (interface{}, error)) (interface{}, error) {
	ch := c.sfg.DoChan(key, func() (interface{}, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lookupTimeout)
		defer cancel()
		return fn(lookupCtx)
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *CachedCatalog) get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get failed: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("unmarshal cached catalog entry failed: %w", err)
	}
	return true, nil
}

func (c *CachedCatalog) version(ctx context.Context, versionKey string) (int64, error) {
	v, err := c.client.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		c.logger.WithError(err).WithField("key", versionKey).Warn("catalog version read failed")
		return 0, err
	}
	return v, nil
}

// setIfCurrent stores value under key unless versionKey has moved past version
func (c *CachedCatalog) setIfCurrent(ctx context.Context, key, versionKey string, version int64, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("catalog cache marshal failed")
		return
	}
	jitter := time.Duration(rand.Int63n(int64(c.baseTTL/5) + 1))

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleRead
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, c.baseTTL+jitter)
			return nil
		})
		return err
	}, versionKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleRead), errors.Is(err, redis.TxFailedErr):
		c.logger.WithField("key", key).Debug("catalog changed during read, not caching")
	default:
		c.logger.WithError(err).WithField("key", key).Warn("catalog cache write failed")
	}
}

func (c *CachedCatalog) invalidate(ctx context.Context, id string) {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, productVersionKey(id))
		pipe.Incr(ctx, listVersionKey)
		pipe.Del(ctx, productCacheKey(id), listCacheKey)
		return nil
	})
	if err != nil {
		c.logger.WithError(err).WithField("product_id", id).Warn("catalog cache invalidate failed")
	}
}

func productCacheKey(id string) string {
	return fmt.Sprintf("catalog:product:%s", id)
}

func productVersionKey(id string) string {
	return fmt.Sprintf("catalog:version:%s", id)
}

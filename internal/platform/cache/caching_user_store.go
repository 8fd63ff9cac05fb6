// Package cache provides caching implementations for store interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"bookkeeping_backend/internal/feature/ledger/domain/entity"
)

// Store is the full surface of the user aggregate store that the decorator
// wraps: the union of what the ledger and auth usecases consume.
type Store interface {
	FindByID(ctx context.Context, uid string) (*entity.User, error)
	Mutate(ctx context.Context, uid string, fn func(u *entity.User) error) error
	Upsert(ctx context.Context, email string, fn func(u *entity.User) error) error
}

// CachingUserStore decorates a user aggregate Store with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying store. Reads are served from cache when possible;
// any committed write invalidates the cached aggregate.
type CachingUserStore struct {
	inner     Store
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingUserStore decorates a Store with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "users".
func NewCachingUserStore(rdb *redis.Client, ttl time.Duration, inner Store, namespace string) *CachingUserStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserStore{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindByID retrieves the aggregate, checking cache first then falling back
// to the database.
func (c *CachingUserStore) FindByID(ctx context.Context, uid string) (*entity.User, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByID(ctx, uid)
	}

	key := c.cacheKey(uid)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var u entity.User
		if err := json.Unmarshal(b, &u); err == nil {
			return &u, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	u, err := c.inner.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(u); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return u, nil
}

// Mutate runs the unit of work against the underlying store and invalidates
// the cached aggregate once the transaction commits.
func (c *CachingUserStore) Mutate(ctx context.Context, uid string, fn func(u *entity.User) error) error {
	if err := c.inner.Mutate(ctx, uid, fn); err != nil {
		return err
	}
	if c.rdb != nil {
		_ = c.rdb.Del(ctx, c.cacheKey(uid)).Err() // Best effort: don't fail if cache deletion fails
	}
	return nil
}

// Upsert runs the sign-in unit of work and invalidates the cached aggregate
// of whichever user it touched. The uid is only known after the inner store
// has loaded or created the row, so it is captured from the closure.
func (c *CachingUserStore) Upsert(ctx context.Context, email string, fn func(u *entity.User) error) error {
	var uid string
	err := c.inner.Upsert(ctx, email, func(u *entity.User) error {
		uid = u.ID
		return fn(u)
	})
	if err != nil {
		return err
	}
	if c.rdb != nil && uid != "" {
		_ = c.rdb.Del(ctx, c.cacheKey(uid)).Err()
	}
	return nil
}

// cacheKey generates the cache key for one user aggregate.
func (c *CachingUserStore) cacheKey(uid string) string {
	return c.namespace + ":" + uid
}

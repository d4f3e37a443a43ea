// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"twala_backend/internal/feature/assets/domain/entity"
	"twala_backend/internal/feature/assets/usecase"
)

// CachingAssetRepository decorates an AssetRepository with Redis caching.
// The whole catalog is cached under a single key since it is small and read as a unit.
type CachingAssetRepository struct {
	inner     usecase.AssetRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	now       func() time.Time
}

var _ usecase.AssetRepository = (*CachingAssetRepository)(nil)

// NewCachingAssetRepository decorates an AssetRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "assets".
func NewCachingAssetRepository(rdb *redis.Client, ttl time.Duration, inner usecase.AssetRepository, namespace string) *CachingAssetRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "assets"
	}
	return &CachingAssetRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
		now:       time.Now,
	}
}

// List retrieves the catalog, checking cache first then falling back to the inner repository.
func (c *CachingAssetRepository) List(ctx context.Context) ([]entity.Asset, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.cacheKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Asset
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the inner repository
	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.entryTTL()).Err()
	}

	return out, nil
}

// Invalidate drops the cached catalog so the next List reloads it.
func (c *CachingAssetRepository) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, c.cacheKey()).Err()
}

// entryTTL caps the TTL at the next trading session open so prices never outlive a session.
func (c *CachingAssetRepository) entryTTL() time.Duration {
	if until := TimeUntilNextSession(c.now()); until < c.ttl {
		return until
	}
	return c.ttl
}

// cacheKey generates the cache key for the catalog.
func (c *CachingAssetRepository) cacheKey() string {
	return fmt.Sprintf("%s:catalog", c.namespace)
}

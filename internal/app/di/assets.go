package di

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	assetadapters "twala_backend/internal/feature/assets/adapters"
	"twala_backend/internal/feature/assets/usecase"
	"twala_backend/internal/platform/cache"
	"twala_backend/internal/platform/config"
)

// NewAssetRepository creates the AssetRepository for the configured source.
// The embedded catalog is served as is; the table-backed one is wrapped with the Redis cache.
func NewAssetRepository(source string, db *gorm.DB, rdb *redis.Client, ttl time.Duration) (usecase.AssetRepository, error) {
	switch source {
	case config.AssetSourceStatic, "":
		catalog, err := assetadapters.NewStaticCatalog()
		if err != nil {
			return nil, err
		}
		return catalog, nil
	case config.AssetSourceDB:
		if db == nil {
			return nil, fmt.Errorf("asset source %q requires a database", source)
		}
		return cache.NewCachingAssetRepository(rdb, ttl, assetadapters.NewAssetRepository(db), "assets"), nil
	}
	return nil, fmt.Errorf("unsupported asset source %q", source)
}

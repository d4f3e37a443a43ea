package adapters

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"twala_backend/internal/feature/assets/domain/entity"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	// インメモリDBは接続ごとに別物になるため接続を1本に固定
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&AssetModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func testAsset(id uint, ticker, sector, price string) entity.Asset {
	return entity.Asset{
		ID:        id,
		Ticker:    ticker,
		Name:      ticker + " S.A.",
		Sector:    sector,
		LastPrice: decimal.RequireFromString(price),
		MarketCap: decimal.RequireFromString("1000000"),
	}
}

// TestAssetGorm_UpsertAndList はUpsertで登録した順序でListが返ることを検証します。
func TestAssetGorm_UpsertAndList(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewAssetRepository(db)
	ctx := context.Background()

	err := repo.Upsert(ctx, []entity.Asset{
		testAsset(3, "BFA", "Banca", "41000"),
		testAsset(1, "BAI", "Banca", "68000.25"),
		testAsset(2, "ENSA", "Seguros", "24500"),
	})
	require.NoError(t, err)

	assets, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, assets, 3)

	assert.Equal(t, "BFA", assets[0].Ticker)
	assert.Equal(t, "BAI", assets[1].Ticker)
	assert.Equal(t, "ENSA", assets[2].Ticker)
	assert.Equal(t, uint(1), assets[1].ID)
	assert.True(t, assets[1].LastPrice.Equal(decimal.RequireFromString("68000.25")),
		"got %s", assets[1].LastPrice)
}

// TestAssetGorm_UpsertUpdatesExisting は同じティッカーの再登録で値が更新されることを検証します。
func TestAssetGorm_UpsertUpdatesExisting(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewAssetRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, []entity.Asset{testAsset(1, "BAI", "Banca", "68000")}))
	require.NoError(t, repo.Upsert(ctx, []entity.Asset{testAsset(1, "BAI", "Banca", "69500")}))

	assets, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.True(t, assets[0].LastPrice.Equal(decimal.RequireFromString("69500")))
}

// TestAssetGorm_EmptyTable は空のテーブルで空スライスが返ることを検証します。
func TestAssetGorm_EmptyTable(t *testing.T) {
	t.Parallel()

	repo := NewAssetRepository(setupTestDB(t))

	assets, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, assets)
	assert.NoError(t, repo.Upsert(context.Background(), nil))
}

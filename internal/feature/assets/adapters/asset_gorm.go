package adapters

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"twala_backend/internal/feature/assets/domain/entity"
	"twala_backend/internal/feature/assets/usecase"
)

// AssetModel is the GORM model for the assets table.
type AssetModel struct {
	ID            uint            `gorm:"primaryKey"`
	Ticker        string          `gorm:"size:20;not null;uniqueIndex"`
	Name          string          `gorm:"size:255;not null"`
	Sector        string          `gorm:"size:100;not null;index"`
	LastPrice     decimal.Decimal `gorm:"type:numeric(24,4);not null"`
	Change        decimal.Decimal `gorm:"type:numeric(24,4);not null"`
	ChangePercent decimal.Decimal `gorm:"type:numeric(10,4);not null"`
	Volume        int64           `gorm:"not null;default:0"`
	MarketCap     decimal.Decimal `gorm:"type:numeric(24,2);not null"`
	PERatio       decimal.Decimal `gorm:"type:numeric(10,4)"`
	DividendYield decimal.Decimal `gorm:"type:numeric(10,4)"`
	Beta          decimal.Decimal `gorm:"type:numeric(10,4)"`
	SortKey       int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM.
func (AssetModel) TableName() string {
	return "assets"
}

// ToEntity converts the GORM model to a domain entity.
func (m *AssetModel) ToEntity() entity.Asset {
	return entity.Asset{
		ID:            m.ID,
		Ticker:        m.Ticker,
		Name:          m.Name,
		Sector:        m.Sector,
		LastPrice:     m.LastPrice,
		Change:        m.Change,
		ChangePercent: m.ChangePercent,
		Volume:        m.Volume,
		MarketCap:     m.MarketCap,
		PERatio:       m.PERatio,
		DividendYield: m.DividendYield,
		Beta:          m.Beta,
	}
}

// AssetModelFromEntity converts a domain entity to a GORM model at the given catalog position.
func AssetModelFromEntity(a entity.Asset, sortKey int) AssetModel {
	return AssetModel{
		ID:            a.ID,
		Ticker:        a.Ticker,
		Name:          a.Name,
		Sector:        a.Sector,
		LastPrice:     a.LastPrice,
		Change:        a.Change,
		ChangePercent: a.ChangePercent,
		Volume:        a.Volume,
		MarketCap:     a.MarketCap,
		PERatio:       a.PERatio,
		DividendYield: a.DividendYield,
		Beta:          a.Beta,
		SortKey:       sortKey,
	}
}

// assetGorm はAssetRepositoryインターフェースのGORM実装です。
type assetGorm struct {
	db *gorm.DB
}

var _ usecase.AssetRepository = (*assetGorm)(nil)

// NewAssetRepository は指定されたDB接続でassetGormリポジトリの新しいインスタンスを生成します。
func NewAssetRepository(db *gorm.DB) *assetGorm {
	return &assetGorm{db: db}
}

// List はsort_key順にすべての銘柄を返します。
func (r *assetGorm) List(ctx context.Context) ([]entity.Asset, error) {
	var rows []AssetModel
	if err := r.db.WithContext(ctx).
		Order("sort_key ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Asset, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToEntity())
	}
	return out, nil
}

// Upsert は銘柄をIDで一括挿入または更新します。スライスの順序がsort_keyになります。
func (r *assetGorm) Upsert(ctx context.Context, assets []entity.Asset) error {
	if len(assets) == 0 {
		return nil
	}
	ms := make([]AssetModel, 0, len(assets))
	for i, a := range assets {
		ms = append(ms, AssetModelFromEntity(a, i+1))
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"ticker", "name", "sector", "last_price", "change", "change_percent", "volume",
			"market_cap", "pe_ratio", "dividend_yield", "beta", "sort_key",
		}),
	}).Create(&ms).Error
}

// Package dto defines data transfer objects for the assets HTTP API.
package dto

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"twala_backend/internal/feature/assets/domain/entity"
)

// AssetItem は銘柄のレスポンスDTOです。
// Decimal values are serialized as JSON strings.
type AssetItem struct {
	ID            uint            `json:"id"`
	Ticker        string          `json:"ticker"`
	Name          string          `json:"name"`
	Sector        string          `json:"sector"`
	LastPrice     decimal.Decimal `json:"last_price"`
	PriceDisplay  string          `json:"price_display"` // e.g. "68,000.00Kz"
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"change_percent"`
	Volume        int64           `json:"volume"`
	MarketCap     decimal.Decimal `json:"market_cap"`
	PERatio       decimal.Decimal `json:"pe_ratio"`
	DividendYield decimal.Decimal `json:"dividend_yield"`
	Beta          decimal.Decimal `json:"beta"`
}

// SectorList は重複のないセクター一覧のレスポンスDTOです。
type SectorList struct {
	Sectors []string `json:"sectors"`
}

// FormatKwanza formats an amount in Kwanza using the AOA minor unit (cêntimos).
func FormatKwanza(amount decimal.Decimal) string {
	minor := amount.Shift(2).Round(0).IntPart()
	return money.New(minor, money.AOA).Display()
}

// FromEntity converts a domain asset to its response DTO.
func FromEntity(a entity.Asset) AssetItem {
	return AssetItem{
		ID:            a.ID,
		Ticker:        a.Ticker,
		Name:          a.Name,
		Sector:        a.Sector,
		LastPrice:     a.LastPrice,
		PriceDisplay:  FormatKwanza(a.LastPrice),
		Change:        a.Change,
		ChangePercent: a.ChangePercent,
		Volume:        a.Volume,
		MarketCap:     a.MarketCap,
		PERatio:       a.PERatio,
		DividendYield: a.DividendYield,
		Beta:          a.Beta,
	}
}

// FromEntities converts a slice of assets, never returning nil.
func FromEntities(assets []entity.Asset) []AssetItem {
	out := make([]AssetItem, 0, len(assets))
	for _, a := range assets {
		out = append(out, FromEntity(a))
	}
	return out
}

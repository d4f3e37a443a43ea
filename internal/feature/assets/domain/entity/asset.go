// Package entity defines the domain models for the assets feature.
package entity

import "github.com/shopspring/decimal"

// Asset represents an instrument listed on BODIVA.
// Assets are read-only for the lifetime of the process; the catalog order is
// the order in which they were loaded.
type Asset struct {
	ID            uint            `json:"id"`
	Ticker        string          `json:"ticker"` // Unique trading code (e.g., "BAI", "BCGA")
	Name          string          `json:"name"`
	Sector        string          `json:"sector"`
	LastPrice     decimal.Decimal `json:"last_price"` // Kwanza
	Change        decimal.Decimal `json:"change"`     // Absolute change vs previous close
	ChangePercent decimal.Decimal `json:"change_percent"`
	Volume        int64           `json:"volume"`
	MarketCap     decimal.Decimal `json:"market_cap"`
	PERatio       decimal.Decimal `json:"pe_ratio"`
	DividendYield decimal.Decimal `json:"dividend_yield"` // Percent
	Beta          decimal.Decimal `json:"beta"`
}

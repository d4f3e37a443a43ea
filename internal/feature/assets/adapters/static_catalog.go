// Package adapters provides the asset catalog sources for the assets feature.
package adapters

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"twala_backend/internal/feature/assets/domain/entity"
	"twala_backend/internal/feature/assets/usecase"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// catalogFile mirrors the layout of catalog.yaml.
// Decimal fields are kept as strings so no precision is lost while decoding.
type catalogFile struct {
	Assets []struct {
		ID            uint   `yaml:"id"`
		Ticker        string `yaml:"ticker"`
		Name          string `yaml:"name"`
		Sector        string `yaml:"sector"`
		LastPrice     string `yaml:"last_price"`
		Change        string `yaml:"change"`
		ChangePercent string `yaml:"change_percent"`
		Volume        int64  `yaml:"volume"`
		MarketCap     string `yaml:"market_cap"`
		PERatio       string `yaml:"pe_ratio"`
		DividendYield string `yaml:"dividend_yield"`
		Beta          string `yaml:"beta"`
	} `yaml:"assets"`
}

// staticCatalog は起動時に読み込んだ固定の銘柄リストを保持します。
type staticCatalog struct {
	assets []entity.Asset
}

var _ usecase.AssetRepository = (*staticCatalog)(nil)

// NewStaticCatalog はバイナリに埋め込まれたcatalog.yamlから銘柄カタログを生成します。
func NewStaticCatalog() (*staticCatalog, error) {
	return ParseCatalog(embeddedCatalog)
}

// ParseCatalog decodes a YAML catalog document.
// Tickers must be unique and every decimal field must parse.
func ParseCatalog(data []byte) (*staticCatalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Assets))
	assets := make([]entity.Asset, 0, len(f.Assets))
	for _, r := range f.Assets {
		if r.Ticker == "" {
			return nil, fmt.Errorf("catalog asset %d: ticker is required", r.ID)
		}
		if _, dup := seen[r.Ticker]; dup {
			return nil, fmt.Errorf("catalog asset %d: duplicate ticker %q", r.ID, r.Ticker)
		}
		seen[r.Ticker] = struct{}{}

		a := entity.Asset{
			ID:     r.ID,
			Ticker: r.Ticker,
			Name:   r.Name,
			Sector: r.Sector,
			Volume: r.Volume,
		}
		fields := []struct {
			name string
			raw  string
			dst  *decimal.Decimal
		}{
			{"last_price", r.LastPrice, &a.LastPrice},
			{"change", r.Change, &a.Change},
			{"change_percent", r.ChangePercent, &a.ChangePercent},
			{"market_cap", r.MarketCap, &a.MarketCap},
			{"pe_ratio", r.PERatio, &a.PERatio},
			{"dividend_yield", r.DividendYield, &a.DividendYield},
			{"beta", r.Beta, &a.Beta},
		}
		for _, fld := range fields {
			if fld.raw == "" {
				continue
			}
			d, err := decimal.NewFromString(fld.raw)
			if err != nil {
				return nil, fmt.Errorf("catalog asset %s: parse %s %q: %w", r.Ticker, fld.name, fld.raw, err)
			}
			*fld.dst = d
		}
		assets = append(assets, a)
	}
	return &staticCatalog{assets: assets}, nil
}

// List は登録順にすべての銘柄のコピーを返します。
func (s *staticCatalog) List(ctx context.Context) ([]entity.Asset, error) {
	out := make([]entity.Asset, len(s.assets))
	copy(out, s.assets)
	return out, nil
}

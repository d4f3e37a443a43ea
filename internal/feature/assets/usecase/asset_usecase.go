// Package usecase implements the read operations of the asset catalog.
package usecase

import (
	"context"
	"strings"

	"twala_backend/internal/feature/assets/domain/entity"
)

// AssetRepository abstracts the source of the asset catalog.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type AssetRepository interface {
	// List returns every asset in catalog order.
	List(ctx context.Context) ([]entity.Asset, error)
}

// AssetUsecase provides search and lookup over the catalog.
type AssetUsecase struct {
	repo AssetRepository
}

// NewAssetUsecase creates a new AssetUsecase with the given repository.
func NewAssetUsecase(r AssetRepository) *AssetUsecase {
	return &AssetUsecase{repo: r}
}

// Search はティッカー・名称・セクターに対して大文字小文字を区別しない部分一致検索を行います。
// 空のクエリはすべての銘柄に一致します。順序はカタログの登録順です。
func (u *AssetUsecase) Search(ctx context.Context, query string) ([]entity.Asset, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}
	out := make([]entity.Asset, 0, len(all))
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Ticker), q) ||
			strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Sector), q) {
			out = append(out, a)
		}
	}
	return out, nil
}

// GetByID はIDで銘柄を取得します。見つからない場合はfalseを返します（エラーではありません）。
func (u *AssetUsecase) GetByID(ctx context.Context, id uint) (entity.Asset, bool, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return entity.Asset{}, false, err
	}
	for _, a := range all {
		if a.ID == id {
			return a, true, nil
		}
	}
	return entity.Asset{}, false, nil
}

// BySector returns the assets whose sector matches exactly.
func (u *AssetUsecase) BySector(ctx context.Context, sector string) ([]entity.Asset, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Asset, 0)
	for _, a := range all {
		if a.Sector == sector {
			out = append(out, a)
		}
	}
	return out, nil
}

// UniqueSectors returns the distinct sectors in first-seen order.
func (u *AssetUsecase) UniqueSectors(ctx context.Context) ([]string, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(all))
	out := make([]string, 0)
	for _, a := range all {
		if _, ok := seen[a.Sector]; ok {
			continue
		}
		seen[a.Sector] = struct{}{}
		out = append(out, a.Sector)
	}
	return out, nil
}

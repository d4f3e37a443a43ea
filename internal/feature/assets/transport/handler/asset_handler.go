// Package handler はassetsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"twala_backend/internal/api"
	"twala_backend/internal/feature/assets/domain/entity"
	"twala_backend/internal/feature/assets/transport/http/dto"
)

// AssetUsecase は銘柄カタログのユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AssetUsecase interface {
	Search(ctx context.Context, query string) ([]entity.Asset, error)
	GetByID(ctx context.Context, id uint) (entity.Asset, bool, error)
	BySector(ctx context.Context, sector string) ([]entity.Asset, error)
	UniqueSectors(ctx context.Context) ([]string, error)
}

// AssetHandler は銘柄カタログに関するHTTPリクエストを処理します。
type AssetHandler struct {
	uc AssetUsecase
}

// NewAssetHandler は新しい AssetHandler を作成します。
func NewAssetHandler(uc AssetUsecase) *AssetHandler {
	return &AssetHandler{uc: uc}
}

// Search は銘柄を検索するAPIです。
//
// エンドポイント例:
// GET /assets?q=banca
func (h *AssetHandler) Search(c *gin.Context) {
	assets, err := h.uc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		slog.Error("asset search failed", "error", err, "query", c.Query("q"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(assets))
}

// Get はIDで1件の銘柄を返します。
// IDが数値でない場合は400、存在しない場合は404を返します。
func (h *AssetHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid asset id"})
		return
	}
	asset, found, err := h.uc.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		slog.Error("asset lookup failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "asset not found"})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(asset))
}

// Sectors はセクター一覧を初出順で返します。
func (h *AssetHandler) Sectors(c *gin.Context) {
	sectors, err := h.uc.UniqueSectors(c.Request.Context())
	if err != nil {
		slog.Error("sector listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.SectorList{Sectors: sectors})
}

// BySector は指定セクターの銘柄を返します。
//
// エンドポイント例:
// GET /sectors/Banca/assets
func (h *AssetHandler) BySector(c *gin.Context) {
	sector := c.Param("sector")
	assets, err := h.uc.BySector(c.Request.Context(), sector)
	if err != nil {
		slog.Error("sector lookup failed", "error", err, "sector", sector)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(assets))
}

// Package handler はonboardingフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"twala_backend/internal/api"
	"twala_backend/internal/feature/onboarding/domain"
	"twala_backend/internal/feature/onboarding/domain/entity"
	"twala_backend/internal/feature/onboarding/transport/http/dto"
	"twala_backend/internal/feature/onboarding/usecase"
	jwtmw "twala_backend/internal/platform/jwt"
)

// ViewportWidthHeader is the client hint used when the query parameter is absent.
const ViewportWidthHeader = "Sec-CH-Viewport-Width"

// GateUsecase はオンボーディングゲートのユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type GateUsecase interface {
	Evaluate(ctx context.Context, userID uint, route string, width int) (usecase.Decision, error)
	Dismiss(ctx context.Context, userID uint, k entity.Kind, reason entity.DismissReason) error
	Act(ctx context.Context, userID uint, k entity.Kind) (string, error)
	Reset(ctx context.Context, userID uint) error
	End(ctx context.Context, userID uint) error
}

// GateHandler はオンボーディングパネルに関するHTTPリクエストを処理します。
type GateHandler struct {
	gate GateUsecase
}

// NewGateHandler は新しい GateHandler を作成します。
func NewGateHandler(gate GateUsecase) *GateHandler {
	return &GateHandler{gate: gate}
}

// Evaluate は現在のページ描画でどのパネルを表示するかを返します。
//
// エンドポイント例:
// GET /onboarding?route=/portfolio&viewport_width=390
func (h *GateHandler) Evaluate(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	width, err := viewportWidth(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid viewport_width"})
		return
	}
	route := c.DefaultQuery("route", "/")

	decision, err := h.gate.Evaluate(c.Request.Context(), userID, route, width)
	if err != nil {
		slog.Error("onboarding evaluation failed", "error", err, "user_id", userID, "route", route)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromDecision(decision))
}

// Dismiss はパネルを閉じます（close または later）。
//
// エンドポイント例:
// POST /onboarding/prerequisites/custody/dismiss {"reason":"later"}
func (h *GateHandler) Dismiss(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	var req dto.DismissReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("dismiss validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.gate.Dismiss(c.Request.Context(), userID, kind, req.ToReason()); err != nil {
		if errors.Is(err, domain.ErrInvalidDismissReason) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
			return
		}
		slog.Error("onboarding dismiss failed", "error", err, "user_id", userID, "kind", kind.String())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// Act はパネルのアクションを実行し、遷移先を返します。
func (h *GateHandler) Act(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	dest, err := h.gate.Act(c.Request.Context(), userID, kind)
	if err != nil {
		slog.Error("onboarding action failed", "error", err, "user_id", userID, "kind", kind.String())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, api.RedirectResponse{Redirect: dest})
}

// Reset clears every dismissal of the session (manual QA).
func (h *GateHandler) Reset(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.gate.Reset(c.Request.Context(), userID); err != nil {
		slog.Error("onboarding reset failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// End drops the onboarding session, called by the client on logout.
func (h *GateHandler) End(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.gate.End(c.Request.Context(), userID); err != nil {
		slog.Error("onboarding session end failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

func requireUser(c *gin.Context) (uint, bool) {
	id, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
	}
	return id, ok
}

func kindParam(c *gin.Context) (entity.Kind, bool) {
	kind, err := entity.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "unknown prerequisite kind"})
		return 0, false
	}
	return kind, true
}

// viewportWidth reads viewport_width, falling back to the client hint header.
// 0 means not measured. A malformed header is ignored; a malformed query parameter is an error.
func viewportWidth(c *gin.Context) (int, error) {
	var width int
	if err := runtime.BindQueryParameter("form", true, false, "viewport_width", c.Request.URL.Query(), &width); err != nil {
		return 0, err
	}
	if width > 0 {
		return width, nil
	}
	if h := strings.TrimSpace(c.GetHeader(ViewportWidthHeader)); h != "" {
		if n, err := strconv.Atoi(h); err == nil && n > 0 {
			return n, nil
		}
	}
	return 0, nil
}

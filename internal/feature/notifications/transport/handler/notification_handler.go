// Package handler exposes the toast queue of the authenticated user.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"twala_backend/internal/api"
	jwtmw "twala_backend/internal/platform/jwt"
	"twala_backend/internal/shared/notify"
)

// ToastQueue is the subset of notify.Queue the handler needs.
type ToastQueue interface {
	List(userID uint) []notify.Toast
	Dismiss(userID uint, id string) bool
}

// ToastList は GET /notifications のレスポンスです。
type ToastList struct {
	Notifications []notify.Toast `json:"notifications"`
}

type NotificationHandler struct {
	queue ToastQueue
}

func NewNotificationHandler(queue ToastQueue) *NotificationHandler {
	return &NotificationHandler{queue: queue}
}

// List は有効な通知を古い順に返します。
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, ToastList{Notifications: h.queue.List(userID)})
}

// Dismiss は通知を期限前に閉じます。既に消えている場合は404を返します。
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	if !h.queue.Dismiss(userID, c.Param("id")) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "notification not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"roadworks-backend/internal/notify"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the active toast list
type NotificationHandler struct {
	toasts *notify.Channel
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(toasts *notify.Channel) *NotificationHandler {
	return &NotificationHandler{toasts: toasts}
}

// ListNotifications handles GET /notifications
// @Summary List active toasts
// @Description Get the toasts that have not yet expired or been dismissed, in insertion order
// @Tags notifications
// @Accept json
// @Produce json
// @Success 200 {array} notify.Toast "Successfully retrieved notifications"
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.toasts.Active())
}

// DismissNotification handles DELETE /notifications/:id
// @Summary Dismiss a toast
// @Description Remove a toast before its timer expires
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Toast ID"
// @Success 204 "Successfully dismissed"
// @Failure 404 {object} ErrorResponse "Toast not found or already expired"
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) DismissNotification(c *gin.Context) {
	if !h.toasts.Dismiss(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

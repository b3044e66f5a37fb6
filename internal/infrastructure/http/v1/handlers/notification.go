package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain/notification"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/http/v1/dto"
)

// NotificationHandler serves the current user's notification endpoints.
type NotificationHandler struct {
	*BaseHandler
	service *notification.Service
}

// NewNotificationHandler creates a notification handler.
func NewNotificationHandler(base *BaseHandler, svc *notification.Service) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler: base,
		service:     svc,
	}
}

// List handles GET /notifications. Results are scoped to the caller.
func (h *NotificationHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	unreadOnly := c.Query("unreadOnly") == "true"
	limit := h.ParseIntQuery(c, "limit", 50)
	offset := h.ParseIntQuery(c, "offset", 0)

	items, err := h.service.ListFor(ctx, h.GetUsername(c), unreadOnly, limit, offset)
	if err != nil {
		h.Error(c, err)
		return
	}

	responses := make([]dto.NotificationResponse, len(items))
	for i, item := range items {
		responses[i] = dto.FromNotification(item)
	}

	c.JSON(http.StatusOK, responses)
}

// UnreadCount handles GET /notifications/unread-count.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := h.service.CountUnreadFor(ctx, h.GetUsername(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}

// MarkRead handles POST /notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	notificationID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.MarkRead(ctx, notificationID, h.GetUsername(c)); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "notification marked as read")
}

// MarkAllRead handles POST /notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.service.MarkAllRead(ctx, h.GetUsername(c)); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "all notifications marked as read")
}

// Delete handles DELETE /notifications/:id.
func (h *NotificationHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	notificationID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, notificationID, h.GetUsername(c)); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

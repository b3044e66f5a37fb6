package dto

import (
	"time"

	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain/notification"
)

// NotificationResponse contains notification fields.
type NotificationResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Category      string    `json:"category"`
	ReferenceType string    `json:"referenceType,omitempty"`
	ReferenceID   string    `json:"referenceId,omitempty"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FromNotification creates NotificationResponse from the domain entity.
func FromNotification(n *notification.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:            n.ID.String(),
		Title:         n.Title,
		Message:       n.Message,
		Category:      string(n.Category),
		ReferenceType: n.ReferenceType,
		Read:          n.Read,
		CreatedAt:     n.CreatedAt,
	}
	if !id.IsNil(n.ReferenceID) {
		resp.ReferenceID = n.ReferenceID.String()
	}
	return resp
}

// UnreadCountResponse for the unread badge.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

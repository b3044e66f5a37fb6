package notification

import (
	"context"

	"github.com/Haarizz/inventory-registries/internal/core/id"
)

// ListFilter narrows notification listings.
type ListFilter struct {
	Recipient  string
	UnreadOnly bool
	Limit      int
	Offset     int
}

// Repository defines data access for notifications.
type Repository interface {
	// CreateBatch inserts several notifications in one round trip.
	CreateBatch(ctx context.Context, items []*Notification) error

	// GetByID returns a notification regardless of read state.
	GetByID(ctx context.Context, notificationID id.ID) (*Notification, error)

	// List returns a recipient's notifications newest first.
	List(ctx context.Context, filter ListFilter) ([]*Notification, error)

	// CountUnread returns the recipient's unread count.
	CountUnread(ctx context.Context, recipient string) (int64, error)

	// MarkRead flags one notification as read.
	MarkRead(ctx context.Context, notificationID id.ID) error

	// MarkAllRead flags every unread notification of a recipient.
	MarkAllRead(ctx context.Context, recipient string) error

	// SetActive soft-deletes or restores a notification.
	SetActive(ctx context.Context, notificationID id.ID, active bool) error
}

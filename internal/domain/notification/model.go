// Package notification provides in-app notifications delivered to named
// users. Notifications are persisted after the business transaction
// commits; delivery failures never fail the originating operation.
package notification

import (
	"context"
	"strings"
	"time"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/entity"
	"github.com/Haarizz/inventory-registries/internal/core/id"
)

// Category classifies a notification for client-side rendering.
type Category string

const (
	CategoryInfo     Category = "info"
	CategoryApproval Category = "approval"
	CategoryWarning  Category = "warning"
)

// Notification is a message addressed to one user. It is emitted by the
// system, not authored, so it carries timestamps but no creator.
type Notification struct {
	entity.BaseEntity

	// Recipient is the username the message is addressed to
	Recipient string `db:"recipient" json:"recipient"`

	Title    string   `db:"title" json:"title"`
	Message  string   `db:"message" json:"message"`
	Category Category `db:"category" json:"category"`

	// ReferenceType and ReferenceID link back to the originating record
	ReferenceType string `db:"reference_type" json:"referenceType,omitempty"`
	ReferenceID   id.ID  `db:"reference_id" json:"referenceId,omitempty"`

	// Read marks the notification as seen by the recipient
	Read bool `db:"read" json:"read"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// New creates an unread notification.
func New(recipient, title, message string, category Category) *Notification {
	now := time.Now().UTC()
	return &Notification{
		BaseEntity: entity.NewBaseEntity(),
		Recipient:  strings.TrimSpace(recipient),
		Title:      strings.TrimSpace(title),
		Message:    message,
		Category:   category,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// WithReference links the notification to a business record.
func (n *Notification) WithReference(refType string, refID id.ID) *Notification {
	n.ReferenceType = refType
	n.ReferenceID = refID
	return n
}

// Validate implements entity.Validatable interface.
func (n *Notification) Validate(ctx context.Context) error {
	if n.Recipient == "" {
		return apperror.NewValidation("recipient is required").
			WithDetail("field", "recipient")
	}
	if n.Title == "" {
		return apperror.NewValidation("title is required").
			WithDetail("field", "title")
	}
	return nil
}

// MarkRead flags the notification as seen.
func (n *Notification) MarkRead() {
	if !n.Read {
		n.Read = true
		n.UpdatedAt = time.Now().UTC()
		n.Touch()
	}
}

package notification

import (
	"context"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/pkg/logger"
)

// Service provides notification access for recipients.
type Service struct {
	repo Repository
}

// NewService creates a new notification service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListFor returns the user's notifications newest first.
func (s *Service) ListFor(ctx context.Context, username string, unreadOnly bool, limit, offset int) ([]*Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.List(ctx, ListFilter{
		Recipient:  username,
		UnreadOnly: unreadOnly,
		Limit:      limit,
		Offset:     offset,
	})
}

// CountUnreadFor returns the user's unread count.
func (s *Service) CountUnreadFor(ctx context.Context, username string) (int64, error) {
	return s.repo.CountUnread(ctx, username)
}

// MarkRead flags one notification as read. Only the recipient may do so.
func (s *Service) MarkRead(ctx context.Context, notificationID id.ID, username string) error {
	n, err := s.repo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.Recipient != username {
		return apperror.NewForbidden("notification belongs to another user")
	}
	if n.Read {
		return nil
	}
	return s.repo.MarkRead(ctx, notificationID)
}

// MarkAllRead flags every unread notification of the user.
func (s *Service) MarkAllRead(ctx context.Context, username string) error {
	return s.repo.MarkAllRead(ctx, username)
}

// Delete soft-removes a notification. Only the recipient may do so.
func (s *Service) Delete(ctx context.Context, notificationID id.ID, username string) error {
	n, err := s.repo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.Recipient != username {
		return apperror.NewForbidden("notification belongs to another user")
	}
	return s.repo.SetActive(ctx, notificationID, false)
}

// Dispatcher persists notification batches produced by business
// operations. It is invoked after the originating transaction commits,
// so failures are logged and never propagated back to the caller.
type Dispatcher struct {
	repo Repository
}

// NewDispatcher creates a new dispatcher.
func NewDispatcher(repo Repository) *Dispatcher {
	return &Dispatcher{repo: repo}
}

// Dispatch stores the batch, skipping invalid entries.
func (d *Dispatcher) Dispatch(ctx context.Context, items []*Notification) {
	valid := make([]*Notification, 0, len(items))
	for _, n := range items {
		if err := n.Validate(ctx); err != nil {
			logger.Warn(ctx, "skipping invalid notification", "error", err)
			continue
		}
		valid = append(valid, n)
	}
	if len(valid) == 0 {
		return
	}
	if err := d.repo.CreateBatch(ctx, valid); err != nil {
		logger.Error(ctx, "failed to deliver notifications",
			"count", len(valid),
			"error", err,
		)
	}
}

// Package notification_repo provides the PostgreSQL implementation of
// the notification repository.
package notification_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain/notification"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/storage/postgres"
)

const notificationTable = "notifications"

// Compile-time check.
var _ notification.Repository = (*NotificationRepo)(nil)

// NotificationRepo implements notification.Repository.
type NotificationRepo struct {
	txManager  *postgres.TxManager
	selectCols []string
}

// NewNotificationRepo creates a new notification repository.
func NewNotificationRepo(txManager *postgres.TxManager) *NotificationRepo {
	return &NotificationRepo{
		txManager:  txManager,
		selectCols: postgres.ExtractDBColumns[notification.Notification](),
	}
}

func (r *NotificationRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// CreateBatch inserts several notifications in one statement.
func (r *NotificationRepo) CreateBatch(ctx context.Context, items []*notification.Notification) error {
	if len(items) == 0 {
		return nil
	}

	q := r.builder().
		Insert(notificationTable).
		Columns(r.selectCols...)

	for _, n := range items {
		data := postgres.StructToMap(n)
		values := make([]any, len(r.selectCols))
		for i, col := range r.selectCols {
			values[i] = data[col]
		}
		q = q.Values(values...)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build batch insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert notifications: %w", err)
	}

	return nil
}

// GetByID returns a notification regardless of read state.
func (r *NotificationRepo) GetByID(ctx context.Context, notificationID id.ID) (*notification.Notification, error) {
	q := r.builder().
		Select(r.selectCols...).
		From(notificationTable).
		Where(squirrel.Eq{"id": notificationID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var n notification.Notification
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &n, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("notification", notificationID.String())
		}
		return nil, fmt.Errorf("get by id: %w", err)
	}

	return &n, nil
}

// List returns a recipient's notifications newest first.
func (r *NotificationRepo) List(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, error) {
	q := r.builder().
		Select(r.selectCols...).
		From(notificationTable).
		Where(squirrel.Eq{"recipient": filter.Recipient}).
		Where(squirrel.Eq{"active": true}).
		OrderBy("created_at DESC")

	if filter.UnreadOnly {
		q = q.Where(squirrel.Eq{"read": false})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*notification.Notification
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return items, nil
}

// CountUnread returns the recipient's unread count.
func (r *NotificationRepo) CountUnread(ctx context.Context, recipient string) (int64, error) {
	q := r.builder().
		Select("COUNT(*)").
		From(notificationTable).
		Where(squirrel.Eq{"recipient": recipient}).
		Where(squirrel.Eq{"read": false}).
		Where(squirrel.Eq{"active": true})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int64
	if err := r.txManager.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}

	return count, nil
}

// MarkRead flags one notification as read.
func (r *NotificationRepo) MarkRead(ctx context.Context, notificationID id.ID) error {
	q := r.builder().
		Update(notificationTable).
		Set("read", true).
		Set("updated_at", squirrel.Expr("now()")).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": notificationID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build mark read: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("execute mark read: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("notification", notificationID.String())
	}

	return nil
}

// MarkAllRead flags every unread notification of a recipient.
func (r *NotificationRepo) MarkAllRead(ctx context.Context, recipient string) error {
	q := r.builder().
		Update(notificationTable).
		Set("read", true).
		Set("updated_at", squirrel.Expr("now()")).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"recipient": recipient}).
		Where(squirrel.Eq{"read": false}).
		Where(squirrel.Eq{"active": true})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build mark all read: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("execute mark all read: %w", err)
	}

	return nil
}

// SetActive soft-deletes or restores a notification.
func (r *NotificationRepo) SetActive(ctx context.Context, notificationID id.ID, active bool) error {
	q := r.builder().
		Update(notificationTable).
		Set("active", active).
		Set("updated_at", squirrel.Expr("now()")).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": notificationID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build set active: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("execute set active: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("notification", notificationID.String())
	}

	return nil
}

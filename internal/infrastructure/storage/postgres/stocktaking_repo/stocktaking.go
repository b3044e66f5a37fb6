// Package stocktaking_repo provides the PostgreSQL implementation of
// the stock count repository.
package stocktaking_repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain"
	"github.com/Haarizz/inventory-registries/internal/domain/stocktaking"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/storage/postgres"
)

const stockTakingTable = "doc_stock_takings"

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// openDraftConstraint is the partial unique index backing the
// one-open-draft-per-product rule.
const openDraftConstraint = "uq_stock_takings_open_draft"

// Compile-time check.
var _ stocktaking.Repository = (*StockTakingRepo)(nil)

// StockTakingRepo implements stocktaking.Repository.
type StockTakingRepo struct {
	txManager  *postgres.TxManager
	selectCols []string
}

// NewStockTakingRepo creates a new stock count repository.
func NewStockTakingRepo(txManager *postgres.TxManager) *StockTakingRepo {
	return &StockTakingRepo{
		txManager:  txManager,
		selectCols: postgres.ExtractDBColumns[stocktaking.StockTaking](),
	}
}

func (r *StockTakingRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a draft. A concurrent insert for the same product
// trips the partial unique index and surfaces as ConflictingDraft.
func (r *StockTakingRepo) Create(ctx context.Context, record *stocktaking.StockTaking) error {
	data := postgres.StructToMap(record)

	q := r.builder().
		Insert(stockTakingTable).
		SetMap(data)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == openDraftConstraint {
			return apperror.NewConflictingDraft(record.ProductID.String()).WithCause(err)
		}
		return fmt.Errorf("insert stock count: %w", err)
	}

	return nil
}

// GetByID retrieves a record by ID.
func (r *StockTakingRepo) GetByID(ctx context.Context, recordID id.ID) (*stocktaking.StockTaking, error) {
	q := r.builder().
		Select(r.selectCols...).
		From(stockTakingTable).
		Where(squirrel.Eq{"id": recordID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var record stocktaking.StockTaking
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &record, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("stock count", recordID.String())
		}
		return nil, fmt.Errorf("get by id: %w", err)
	}

	return &record, nil
}

// Update persists a full record with optimistic locking.
func (r *StockTakingRepo) Update(ctx context.Context, record *stocktaking.StockTaking) error {
	data := postgres.StructToMap(record)

	version, ok := data["version"].(int)
	if !ok {
		return fmt.Errorf("record has no 'version' field or it is not an int")
	}

	// A touched record already carries the bumped version; the lock
	// compares against the version it was loaded with.
	delete(data, "id")
	delete(data, "version")

	q := r.builder().
		Update(stockTakingTable).
		SetMap(data).
		Set("version", version).
		Where(squirrel.Eq{"id": record.ID}).
		Where(squirrel.Eq{"version": version - 1})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update stock count: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("stock count", record.ID.String())
	}

	return nil
}

// TransitionStatus atomically moves a record between statuses. Exactly
// one of two concurrent callers observes the row in the expected
// status; the other receives false.
func (r *StockTakingRepo) TransitionStatus(ctx context.Context, recordID id.ID, from, to stocktaking.Status) (bool, error) {
	q := r.builder().
		Update(stockTakingTable).
		Set("status", to).
		Set("updated_at", squirrel.Expr("now()")).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": recordID}).
		Where(squirrel.Eq{"status": from}).
		Where(squirrel.Eq{"active": true})

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build transition: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("execute transition: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ExistsOpenDraft checks whether the product already has an active draft.
func (r *StockTakingRepo) ExistsOpenDraft(ctx context.Context, productID id.ID) (bool, error) {
	q := r.builder().
		Select("1").
		From(stockTakingTable).
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.Eq{"status": stocktaking.StatusDraft}).
		Where(squirrel.Eq{"active": true}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists int
	err = r.txManager.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists open draft: %w", err)
	}

	return true, nil
}

// List retrieves records with filtering and pagination.
func (r *StockTakingRepo) List(ctx context.Context, filter stocktaking.ListFilter) (domain.ListResult[*stocktaking.StockTaking], error) {
	result := domain.ListResult[*stocktaking.StockTaking]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.builder().
		Select(r.selectCols...).
		From(stockTakingTable)

	if !filter.IncludeInactive {
		q = q.Where(squirrel.Eq{"active": true})
	}
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"status": filter.Status})
	}
	if !id.IsNil(filter.ProductID) {
		q = q.Where(squirrel.Eq{"product_id": filter.ProductID})
	}
	if filter.CreatedBy != "" {
		q = q.Where(squirrel.Eq{"created_by": filter.CreatedBy})
	}

	countQ := r.builder().
		Select("COUNT(*)").
		FromSelect(q, "sub")

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return result, fmt.Errorf("build count query: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count: %w", err)
	}

	orderBy, err := r.parseOrderBy(filter.OrderBy)
	if err != nil {
		return result, err
	}
	q = q.OrderBy(orderBy)

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list: %w", err)
	}

	return result, nil
}

// DeleteDraft soft-deletes a record, guarded by its status so a draft
// reviewed by a concurrent caller cannot be removed. Zero rows affected
// means the record is gone or no longer a draft.
func (r *StockTakingRepo) DeleteDraft(ctx context.Context, recordID id.ID) (bool, error) {
	q := r.builder().
		Update(stockTakingTable).
		Set("active", false).
		Set("updated_at", squirrel.Expr("now()")).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{
			"id":     recordID,
			"status": stocktaking.StatusDraft,
			"active": true,
		})

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete draft: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("execute delete draft: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *StockTakingRepo) parseOrderBy(orderBy string) (string, error) {
	allowed := map[string]struct{}{
		"created_at": {}, "updated_at": {}, "status": {},
		"variance": {}, "product_id": {},
	}

	if orderBy == "" {
		return "created_at DESC", nil
	}

	direction := "ASC"
	field := orderBy
	if strings.HasPrefix(orderBy, "-") {
		direction = "DESC"
		field = strings.TrimPrefix(orderBy, "-")
	} else if strings.HasPrefix(orderBy, "+") {
		field = strings.TrimPrefix(orderBy, "+")
	}

	field = strings.TrimSpace(field)
	if _, ok := allowed[field]; !ok {
		return "", apperror.NewValidation("invalid orderBy").WithDetail("orderBy", orderBy)
	}

	return field + " " + direction, nil
}

package stocktaking

import (
	"context"
	"fmt"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/core/tx"
	"github.com/Haarizz/inventory-registries/internal/domain"
	"github.com/Haarizz/inventory-registries/internal/domain/audit"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/product"
	"github.com/Haarizz/inventory-registries/internal/domain/notification"
	"github.com/Haarizz/inventory-registries/pkg/logger"
)

// CreateInput carries the fields a counter submits for a new draft.
type CreateInput struct {
	ProductID     id.ID
	PhysicalStock int
	Remarks       *string
}

// Service orchestrates the stock count workflow. Every operation takes
// the acting username explicitly; nothing is read from ambient state.
type Service struct {
	repo        Repository
	productRepo product.Repository
	txManager   tx.Manager
	dispatcher  Dispatcher
	approvers   ApproverResolver
	auditor     audit.Recorder
}

// NewService creates a new workflow service.
func NewService(
	repo Repository,
	productRepo product.Repository,
	txManager tx.Manager,
	dispatcher Dispatcher,
	approvers ApproverResolver,
	auditor audit.Recorder,
) *Service {
	return &Service{
		repo:        repo,
		productRepo: productRepo,
		txManager:   txManager,
		dispatcher:  dispatcher,
		approvers:   approvers,
		auditor:     auditor,
	}
}

// Create opens a draft stock count for a product. The product's ledger
// value is snapshotted as the system stock; at most one open draft may
// exist per product, enforced both by a pre-check and by the storage
// layer for the concurrent case.
func (s *Service) Create(ctx context.Context, in CreateInput, actor string) (*StockTaking, error) {
	if in.PhysicalStock < 0 {
		return nil, apperror.NewValidation("physical stock cannot be negative").
			WithDetail("field", "physicalStock")
	}

	prod, err := s.productRepo.FindActiveByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}

	open, err := s.repo.ExistsOpenDraft(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, apperror.NewConflictingDraft(in.ProductID.String())
	}

	record := NewStockTaking(in.ProductID, prod.Stock, in.PhysicalStock, actor)
	record.Remarks = in.Remarks

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, record); err != nil {
			return fmt.Errorf("create stock count: %w", err)
		}
		return s.auditor.Record(ctx, audit.NewEntry(referenceType, record.ID, "create", actor, map[string]any{
			"product_id":     record.ProductID.String(),
			"system_stock":   record.SystemStock,
			"physical_stock": record.PhysicalStock,
			"variance":       record.Variance,
		}))
	})
	if err != nil {
		return nil, err
	}

	s.notifyDraftCreated(ctx, record, prod.Name)

	logger.Info(ctx, "stock count draft created",
		"id", record.ID.String(),
		"product_id", record.ProductID.String(),
		"variance", record.Variance,
	)
	return record, nil
}

// GetByID retrieves a stock count record.
func (s *Service) GetByID(ctx context.Context, recordID id.ID) (*StockTaking, error) {
	record, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("stock count", recordID.String())
		}
		return nil, err
	}
	return record, nil
}

// List retrieves stock count records with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*StockTaking], error) {
	return s.repo.List(ctx, filter)
}

// Approve moves a draft to approved and stamps the approver.
func (s *Service) Approve(ctx context.Context, recordID id.ID, actor string) (*StockTaking, error) {
	record, err := s.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if err := record.Approve(actor); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, record); err != nil {
			return fmt.Errorf("approve stock count: %w", err)
		}
		return s.auditor.Record(ctx, audit.NewEntry(referenceType, record.ID, "approve", actor, nil))
	})
	if err != nil {
		return nil, err
	}

	s.notifyReviewed(ctx, record, actor, true)

	logger.Info(ctx, "stock count approved", "id", record.ID.String(), "approved_by", actor)
	return record, nil
}

// Reject moves a draft to rejected. The record is kept for audit and
// the product's draft slot is freed for a recount.
func (s *Service) Reject(ctx context.Context, recordID id.ID, actor string) (*StockTaking, error) {
	record, err := s.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if err := record.Reject(); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, record); err != nil {
			return fmt.Errorf("reject stock count: %w", err)
		}
		return s.auditor.Record(ctx, audit.NewEntry(referenceType, record.ID, "reject", actor, nil))
	})
	if err != nil {
		return nil, err
	}

	s.notifyReviewed(ctx, record, actor, false)

	logger.Info(ctx, "stock count rejected", "id", record.ID.String(), "rejected_by", actor)
	return record, nil
}

// Apply writes the counted quantity into the product ledger and marks
// the record applied, atomically. The status change is a compare-and-set
// so that of two concurrent applies exactly one updates the ledger; the
// loser reloads the record to report the precise reason.
func (s *Service) Apply(ctx context.Context, recordID id.ID, actor string) (*StockTaking, error) {
	record, err := s.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	// Fail fast outside the transaction; the CAS below remains the
	// authoritative check under concurrency.
	if err := record.MarkApplied(); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		moved, err := s.repo.TransitionStatus(ctx, recordID, StatusApproved, StatusApplied)
		if err != nil {
			return fmt.Errorf("apply stock count: %w", err)
		}
		if !moved {
			current, err := s.repo.GetByID(ctx, recordID)
			if err != nil {
				return err
			}
			if current.Status == StatusApplied {
				return apperror.NewAlreadyApplied(recordID.String())
			}
			return apperror.NewNotApproved(recordID.String())
		}

		if err := s.productRepo.SetStock(ctx, record.ProductID, record.PhysicalStock); err != nil {
			return fmt.Errorf("write product ledger: %w", err)
		}

		return s.auditor.Record(ctx, audit.NewEntry(referenceType, record.ID, "apply", actor, map[string]any{
			"product_id": record.ProductID.String(),
			"stock":      record.PhysicalStock,
		}))
	})
	if err != nil {
		return nil, err
	}

	s.notifyApplied(ctx, record, actor)

	logger.Info(ctx, "stock count applied",
		"id", record.ID.String(),
		"product_id", record.ProductID.String(),
		"stock", record.PhysicalStock,
	)
	return record, nil
}

// Delete soft-removes a stock count. Only drafts may be deleted;
// reviewed records are part of the audit trail.
func (s *Service) Delete(ctx context.Context, recordID id.ID, actor string) error {
	record, err := s.GetByID(ctx, recordID)
	if err != nil {
		return err
	}

	// Fail fast outside the transaction; the guarded update below
	// remains the authoritative check under concurrency.
	if !record.CanDelete() {
		return apperror.NewInvalidTransition(string(record.Status), "delete")
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		removed, err := s.repo.DeleteDraft(ctx, recordID)
		if err != nil {
			return fmt.Errorf("delete stock count: %w", err)
		}
		if !removed {
			current, err := s.repo.GetByID(ctx, recordID)
			if err != nil {
				return err
			}
			return apperror.NewInvalidTransition(string(current.Status), "delete")
		}
		return s.auditor.Record(ctx, audit.NewEntry(referenceType, record.ID, "delete", actor, nil))
	})
}

func (s *Service) notifyDraftCreated(ctx context.Context, record *StockTaking, productName string) {
	usernames, err := s.approvers.ApproverUsernames(ctx)
	if err != nil {
		logger.Warn(ctx, "failed to resolve approvers for notification",
			"id", record.ID.String(),
			"error", err,
		)
		return
	}
	s.dispatcher.Dispatch(ctx, draftCreatedNotices(record, productName, usernames))
}

func (s *Service) notifyReviewed(ctx context.Context, record *StockTaking, reviewer string, approved bool) {
	if record.CreatedBy == reviewer {
		return
	}
	productName := s.productName(ctx, record.ProductID)
	s.dispatcher.Dispatch(ctx, []*notification.Notification{
		reviewedNotice(record, productName, reviewer, approved),
	})
}

func (s *Service) notifyApplied(ctx context.Context, record *StockTaking, applier string) {
	productName := s.productName(ctx, record.ProductID)
	s.dispatcher.Dispatch(ctx, appliedNotices(record, productName, applier))
}

func (s *Service) productName(ctx context.Context, productID id.ID) string {
	prod, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Warn(ctx, "failed to load product for notification",
			"product_id", productID.String(),
			"error", err,
		)
		return productID.String()
	}
	return prod.Name
}

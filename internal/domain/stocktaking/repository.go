package stocktaking

import (
	"context"

	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain"
)

// ListFilter narrows stock count listings.
type ListFilter struct {
	// Status filters by workflow state (empty for all)
	Status Status

	// ProductID filters to one product (zero for all)
	ProductID id.ID

	// CreatedBy filters by submitting username
	CreatedBy string

	// IncludeInactive includes soft-deleted records
	IncludeInactive bool

	OrderBy string
	Limit   int
	Offset  int
}

// DefaultListFilter returns newest-first paging defaults.
func DefaultListFilter() ListFilter {
	return ListFilter{
		Limit:   50,
		OrderBy: "-created_at",
	}
}

// Repository defines data access for stock count records.
type Repository interface {
	// Create inserts a draft. Implementations back the one-open-draft
	// rule with a uniqueness guarantee and return ConflictingDraft when
	// a concurrent insert wins the race.
	Create(ctx context.Context, record *StockTaking) error

	// GetByID retrieves a record by ID.
	GetByID(ctx context.Context, recordID id.ID) (*StockTaking, error)

	// Update persists a full record with optimistic locking.
	Update(ctx context.Context, record *StockTaking) error

	// TransitionStatus atomically moves a record from one status to
	// another. It reports false when the record was not in the expected
	// status, leaving the caller to reload and diagnose.
	TransitionStatus(ctx context.Context, recordID id.ID, from, to Status) (bool, error)

	// ExistsOpenDraft checks whether the product already has an active draft.
	ExistsOpenDraft(ctx context.Context, productID id.ID) (bool, error)

	// List retrieves records with filtering and pagination.
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*StockTaking], error)

	// DeleteDraft soft-deletes a record only while it is still an
	// active draft. It reports false when the record was concurrently
	// reviewed or already removed, leaving the caller to reload and
	// diagnose.
	DeleteDraft(ctx context.Context, recordID id.ID) (bool, error)
}

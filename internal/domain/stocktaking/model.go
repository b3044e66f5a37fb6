// Package stocktaking implements the stock count approval workflow.
// A stock count starts as a draft snapshot of a product's ledger stock
// versus a physically counted quantity, passes through manager approval
// and is finally applied, at which point the product ledger is
// overwritten with the counted value.
package stocktaking

import (
	"context"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/entity"
	"github.com/Haarizz/inventory-registries/internal/core/id"
)

// Status is the workflow state of a stock count record.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusApproved Status = "approved"
	StatusApplied  Status = "applied"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusApproved, StatusApplied, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusApplied || s == StatusRejected
}

// Event is a workflow action that moves a record between statuses.
type Event string

const (
	EventApprove Event = "approve"
	EventReject  Event = "reject"
	EventApply   Event = "apply"
)

// transitions is the single source of truth for the workflow.
// Any (status, event) pair absent from this table is invalid.
var transitions = map[Status]map[Event]Status{
	StatusDraft: {
		EventApprove: StatusApproved,
		EventReject:  StatusRejected,
	},
	StatusApproved: {
		EventApply: StatusApplied,
	},
}

// NextStatus resolves the target status for an event from the current
// status. Invalid pairs return InvalidTransition, except apply, which
// reports the domain-specific reason (already applied vs not approved).
func NextStatus(current Status, event Event) (Status, error) {
	if next, ok := transitions[current][event]; ok {
		return next, nil
	}
	if event == EventApply {
		if current == StatusApplied {
			return "", apperror.NewAlreadyApplied(nil)
		}
		return "", apperror.NewNotApproved(nil)
	}
	return "", apperror.NewInvalidTransition(string(current), string(event))
}

// StockTaking is a stock count record.
type StockTaking struct {
	entity.BaseRecord

	// ProductID references the counted product
	ProductID id.ID `db:"product_id" json:"productId"`

	// SystemStock is the ledger value snapshot taken at draft creation
	SystemStock int `db:"system_stock" json:"systemStock"`

	// PhysicalStock is the quantity counted on the floor
	PhysicalStock int `db:"physical_stock" json:"physicalStock"`

	// Variance is PhysicalStock - SystemStock, frozen at creation
	Variance int `db:"variance" json:"variance"`

	// Status is the workflow state
	Status Status `db:"status" json:"status"`

	// ApprovedBy is the username of the approver (set on approval)
	ApprovedBy *string `db:"approved_by" json:"approvedBy,omitempty"`

	// Remarks holds optional free-form notes from the counter
	Remarks *string `db:"remarks" json:"remarks,omitempty"`
}

// NewStockTaking creates a draft stock count. The system stock is
// snapshotted from the product at this moment and never refreshed.
func NewStockTaking(productID id.ID, systemStock, physicalStock int, createdBy string) *StockTaking {
	return &StockTaking{
		BaseRecord:    entity.NewBaseRecord(createdBy),
		ProductID:     productID,
		SystemStock:   systemStock,
		PhysicalStock: physicalStock,
		Variance:      Variance(systemStock, physicalStock),
		Status:        StatusDraft,
	}
}

// Validate implements entity.Validatable interface.
func (st *StockTaking) Validate(ctx context.Context) error {
	if id.IsNil(st.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}

	if st.PhysicalStock < 0 {
		return apperror.NewValidation("physical stock cannot be negative").
			WithDetail("field", "physicalStock")
	}

	if !st.Status.Valid() {
		return apperror.NewValidation("unknown status").
			WithDetail("status", string(st.Status))
	}

	if st.Variance != Variance(st.SystemStock, st.PhysicalStock) {
		return apperror.NewValidation("variance does not match recorded stocks")
	}

	return nil
}

// Approve transitions the record to approved and stamps the approver.
func (st *StockTaking) Approve(approver string) error {
	next, err := NextStatus(st.Status, EventApprove)
	if err != nil {
		return err
	}
	st.Status = next
	st.ApprovedBy = &approver
	st.Touch()
	return nil
}

// Reject transitions the record to rejected.
func (st *StockTaking) Reject() error {
	next, err := NextStatus(st.Status, EventReject)
	if err != nil {
		return err
	}
	st.Status = next
	st.Touch()
	return nil
}

// MarkApplied transitions the record to applied. The carried error from
// NextStatus distinguishes a double apply from an unapproved record.
func (st *StockTaking) MarkApplied() error {
	next, err := NextStatus(st.Status, EventApply)
	if err != nil {
		if appErr, ok := apperror.AsAppError(err); ok {
			return appErr.WithDetail("id", st.ID.String())
		}
		return err
	}
	st.Status = next
	st.Touch()
	return nil
}

// CanDelete reports whether the record may still be removed.
// Only drafts are deletable; everything past review is kept for audit.
func (st *StockTaking) CanDelete() bool {
	return st.Status == StatusDraft
}

// IsOpenDraft reports whether the record blocks new drafts for its product.
func (st *StockTaking) IsOpenDraft() bool {
	return st.Active && st.Status == StatusDraft
}

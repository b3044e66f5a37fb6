package stocktaking

import (
	"context"
	"fmt"

	"github.com/Haarizz/inventory-registries/internal/domain/notification"
)

// referenceType links notifications back to stock count records.
const referenceType = "stock_taking"

// Dispatcher delivers notification batches after the business
// transaction commits. Satisfied by notification.Dispatcher.
type Dispatcher interface {
	Dispatch(ctx context.Context, items []*notification.Notification)
}

// ApproverResolver lists usernames allowed to review drafts.
type ApproverResolver interface {
	ApproverUsernames(ctx context.Context) ([]string, error)
}

// draftCreatedNotices addresses every approver about a new draft.
func draftCreatedNotices(record *StockTaking, productName string, approvers []string) []*notification.Notification {
	msg := fmt.Sprintf(
		"%s submitted a stock count for %s (system %d, counted %d, variance %d)",
		record.CreatedBy, productName, record.SystemStock, record.PhysicalStock, record.Variance,
	)

	items := make([]*notification.Notification, 0, len(approvers))
	for _, username := range approvers {
		if username == record.CreatedBy {
			continue
		}
		items = append(items, notification.New(
			username,
			"Stock count awaiting approval",
			msg,
			notification.CategoryApproval,
		).WithReference(referenceType, record.ID))
	}
	return items
}

// reviewedNotice tells the submitter the outcome of the review.
func reviewedNotice(record *StockTaking, productName, reviewer string, approved bool) *notification.Notification {
	verdict := "approved"
	category := notification.CategoryInfo
	if !approved {
		verdict = "rejected"
		category = notification.CategoryWarning
	}
	return notification.New(
		record.CreatedBy,
		fmt.Sprintf("Stock count %s", verdict),
		fmt.Sprintf("%s %s your stock count for %s", reviewer, verdict, productName),
		category,
	).WithReference(referenceType, record.ID)
}

// appliedNotices tell the submitter and the approver that the ledger
// was updated.
func appliedNotices(record *StockTaking, productName, applier string) []*notification.Notification {
	msg := fmt.Sprintf(
		"%s applied the stock count for %s, stock is now %d",
		applier, productName, record.PhysicalStock,
	)

	recipients := []string{record.CreatedBy}
	if record.ApprovedBy != nil && *record.ApprovedBy != record.CreatedBy {
		recipients = append(recipients, *record.ApprovedBy)
	}

	items := make([]*notification.Notification, 0, len(recipients))
	for _, username := range recipients {
		if username == applier {
			continue
		}
		items = append(items, notification.New(
			username,
			"Stock count applied",
			msg,
			notification.CategoryInfo,
		).WithReference(referenceType, record.ID))
	}
	return items
}

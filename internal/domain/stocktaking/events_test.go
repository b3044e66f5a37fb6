package stocktaking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain/notification"
)

func TestDraftCreatedNotices(t *testing.T) {
	record := NewStockTaking(id.New(), 100, 90, "alice")

	t.Run("one notice per approver", func(t *testing.T) {
		notices := draftCreatedNotices(record, "Widget", []string{"manager", "boss"})
		require.Len(t, notices, 2)

		for _, n := range notices {
			assert.Equal(t, notification.CategoryApproval, n.Category)
			assert.Equal(t, "stock_taking", n.ReferenceType)
			assert.Equal(t, record.ID, n.ReferenceID)
			assert.Contains(t, n.Message, "Widget")
			assert.Contains(t, n.Message, "alice")
		}
	})

	t.Run("creator is skipped", func(t *testing.T) {
		notices := draftCreatedNotices(record, "Widget", []string{"alice", "manager"})
		require.Len(t, notices, 1)
		assert.Equal(t, "manager", notices[0].Recipient)
	})

	t.Run("no approvers", func(t *testing.T) {
		assert.Empty(t, draftCreatedNotices(record, "Widget", nil))
	})
}

func TestReviewedNotice(t *testing.T) {
	record := NewStockTaking(id.New(), 100, 90, "alice")

	t.Run("approved", func(t *testing.T) {
		n := reviewedNotice(record, "Widget", "manager", true)
		assert.Equal(t, "alice", n.Recipient)
		assert.Equal(t, notification.CategoryInfo, n.Category)
		assert.Contains(t, n.Message, "approved")
	})

	t.Run("rejected", func(t *testing.T) {
		n := reviewedNotice(record, "Widget", "manager", false)
		assert.Equal(t, "alice", n.Recipient)
		assert.Equal(t, notification.CategoryWarning, n.Category)
		assert.Contains(t, n.Message, "rejected")
	})
}

func TestAppliedNotices(t *testing.T) {
	newApproved := func(approver string) *StockTaking {
		record := NewStockTaking(id.New(), 100, 90, "alice")
		if approver != "" {
			if err := record.Approve(approver); err != nil {
				t.Fatal(err)
			}
		}
		return record
	}

	t.Run("submitter and approver notified", func(t *testing.T) {
		record := newApproved("manager")
		notices := appliedNotices(record, "Widget", "boss")
		require.Len(t, notices, 2)

		recipients := []string{notices[0].Recipient, notices[1].Recipient}
		assert.Contains(t, recipients, "alice")
		assert.Contains(t, recipients, "manager")
	})

	t.Run("applier does not notify themselves", func(t *testing.T) {
		record := newApproved("manager")
		notices := appliedNotices(record, "Widget", "manager")
		require.Len(t, notices, 1)
		assert.Equal(t, "alice", notices[0].Recipient)
	})

	t.Run("self approved self counted", func(t *testing.T) {
		record := newApproved("alice")
		notices := appliedNotices(record, "Widget", "alice")
		assert.Empty(t, notices)
	})
}

// Package audit records an append-only trail of business mutations.
// Entries capture who did what to which record; the change payload is
// stored compressed by the persistence layer.
package audit

import (
	"context"
	"time"

	"github.com/Haarizz/inventory-registries/internal/core/id"
)

// Entry is one audit trail record.
type Entry struct {
	ID         id.ID          `db:"id" json:"id"`
	RecordType string         `db:"record_type" json:"recordType"`
	RecordID   id.ID          `db:"record_id" json:"recordId"`
	Action     string         `db:"action" json:"action"`
	Actor      string         `db:"actor" json:"actor"`
	OccurredAt time.Time      `db:"occurred_at" json:"occurredAt"`
	Payload    map[string]any `db:"-" json:"payload,omitempty"`
}

// NewEntry creates an audit entry stamped with the current time.
func NewEntry(recordType string, recordID id.ID, action, actor string, payload map[string]any) *Entry {
	return &Entry{
		ID:         id.New(),
		RecordType: recordType,
		RecordID:   recordID,
		Action:     action,
		Actor:      actor,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Recorder persists audit entries. Implementations are expected to be
// called inside the transaction that performs the audited change.
type Recorder interface {
	Record(ctx context.Context, entry *Entry) error
}

// ListFilter narrows audit trail queries.
type ListFilter struct {
	RecordType string
	RecordID   id.ID
	Actor      string
	Limit      int
	Offset     int
}

// Reader retrieves audit entries for review endpoints.
type Reader interface {
	List(ctx context.Context, filter ListFilter) ([]*Entry, error)
}

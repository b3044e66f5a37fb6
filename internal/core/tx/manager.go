// Package tx abstracts transaction boundaries so domain services can
// group writes atomically without importing a database driver. The
// postgres implementation lives under infrastructure/storage.
package tx

import (
	"context"
)

// Manager runs functions inside a database transaction.
type Manager interface {
	// RunInTransaction commits if fn returns nil and rolls back
	// otherwise. A call made while a transaction is already open on
	// the context joins it instead of starting a new one.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReadOnlyManager adds read-only transactions for report-style queries
// that must see a consistent snapshot but never write.
type ReadOnlyManager interface {
	Manager

	// ReadOnly runs fn in a transaction that rejects writes.
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

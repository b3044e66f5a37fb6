package product

import (
	"context"

	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain"
)

// Repository defines data access for products. On top of the generic
// catalog contract it exposes code-based lookup and the stock ledger
// write used when an approved stock count is applied.
type Repository interface {
	domain.CatalogRepository[*Product]

	// FindActiveByID returns the product only if it exists and is active.
	FindActiveByID(ctx context.Context, productID id.ID) (*Product, error)

	// FindByCode returns the product with the given code (active only).
	FindByCode(ctx context.Context, code string) (*Product, error)

	// ExistsByCode checks code uniqueness among active products,
	// excluding the product with excludeID (zero value to exclude none).
	ExistsByCode(ctx context.Context, code string, excludeID id.ID) (bool, error)

	// SetStock overwrites the ledger value for a product. Callers are
	// expected to invoke it inside the same transaction as the business
	// document that justifies the write.
	SetStock(ctx context.Context, productID id.ID, stock int) error

	// ListBelowReorderLevel returns active products whose stock is below
	// their reorder level.
	ListBelowReorderLevel(ctx context.Context) ([]*Product, error)
}

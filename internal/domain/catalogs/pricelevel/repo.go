package pricelevel

import (
	"context"

	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain"
)

// Repository defines the interface for PriceLevel persistence.
type Repository interface {
	domain.CatalogRepository[*PriceLevel]

	// ExistsByNameForProduct checks tier name uniqueness within a product.
	ExistsByNameForProduct(ctx context.Context, name string, productID, excludeID id.ID) (bool, error)

	// ListByProduct retrieves active price levels of one product.
	ListByProduct(ctx context.Context, productID id.ID) ([]*PriceLevel, error)
}

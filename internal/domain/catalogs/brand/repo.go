package brand

import (
	"github.com/Haarizz/inventory-registries/internal/domain"
)

// Repository defines the interface for Brand persistence.
type Repository interface {
	domain.CatalogRepository[*Brand]
}

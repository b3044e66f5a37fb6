package department

import (
	"github.com/Haarizz/inventory-registries/internal/domain"
)

// Repository defines the interface for Department persistence.
type Repository interface {
	domain.CatalogRepository[*Department]
}

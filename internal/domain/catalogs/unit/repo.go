package unit

import (
	"github.com/Haarizz/inventory-registries/internal/domain"
)

// Repository defines the interface for Unit persistence.
type Repository interface {
	domain.CatalogRepository[*Unit]
}

// Package brand provides the Brand reference catalog.
package brand

import (
	"github.com/Haarizz/inventory-registries/internal/core/entity"
)

// Brand represents a product brand.
type Brand struct {
	entity.Catalog
}

// NewBrand creates a new Brand with required fields.
func NewBrand(name string) *Brand {
	return &Brand{
		Catalog: entity.NewCatalog(name),
	}
}

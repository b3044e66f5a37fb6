package entity

import (
	"context"
	"strings"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
)

// Catalog is the base type for reference data.
// Examples: Brand, Department, Unit, PriceLevel.
type Catalog struct {
	BaseEntity

	// Name is the display name (unique among active entries of a catalog)
	Name string `db:"name" json:"name"`

	// Description is an optional free-form note
	Description *string `db:"description" json:"description,omitempty"`
}

// NewCatalog creates a new Catalog with generated ID.
func NewCatalog(name string) Catalog {
	return Catalog{
		BaseEntity: NewBaseEntity(),
		Name:       strings.TrimSpace(name),
	}
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if strings.TrimSpace(c.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}

// Package unit provides the Unit reference catalog.
// Units represent measurement units for products (piece, kg, litre).
package unit

import (
	"github.com/Haarizz/inventory-registries/internal/core/entity"
)

// Unit represents a measurement unit.
type Unit struct {
	entity.Catalog

	// Abbreviation is the short form shown next to quantities (e.g. "kg", "pcs")
	Abbreviation *string `db:"abbreviation" json:"abbreviation,omitempty"`
}

// NewUnit creates a new Unit with required fields.
func NewUnit(name string) *Unit {
	return &Unit{
		Catalog: entity.NewCatalog(name),
	}
}

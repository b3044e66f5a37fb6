// Package pricelevel provides the PriceLevel catalog.
// A price level is a named selling price tier for one product
// (retail, wholesale, ...).
package pricelevel

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/entity"
	"github.com/Haarizz/inventory-registries/internal/core/id"
)

// PriceLevel represents a named price tier for a product.
type PriceLevel struct {
	entity.Catalog

	// ProductID is the product this tier prices (required)
	ProductID id.ID `db:"product_id" json:"productId"`

	// Price is the selling price at this tier
	Price decimal.Decimal `db:"price" json:"price"`
}

// NewPriceLevel creates a new PriceLevel with required fields.
func NewPriceLevel(name string, productID id.ID, price decimal.Decimal) *PriceLevel {
	return &PriceLevel{
		Catalog:   entity.NewCatalog(name),
		ProductID: productID,
		Price:     price,
	}
}

// Validate implements entity.Validatable interface.
func (p *PriceLevel) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(p.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}

	if p.Price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").
			WithDetail("field", "price")
	}

	return nil
}

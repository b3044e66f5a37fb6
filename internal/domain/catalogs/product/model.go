// Package product provides the Product catalog and the product stock ledger.
// A product's Stock field is the authoritative current-stock value; it is
// mutated only through ledger operations (goods movements and applied
// stock counts), never by plain catalog updates.
package product

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/entity"
	"github.com/Haarizz/inventory-registries/internal/core/id"
)

// Product represents a sellable item.
type Product struct {
	entity.Catalog

	// Code is a human-readable identifier (unique among active products)
	Code string `db:"code" json:"code"`

	// BrandID references the brand catalog (required)
	BrandID id.ID `db:"brand_id" json:"brandId"`

	// SubDepartmentID references the sub-department catalog (required)
	SubDepartmentID id.ID `db:"sub_department_id" json:"subDepartmentId"`

	// UnitID references the unit catalog (required)
	UnitID id.ID `db:"unit_id" json:"unitId"`

	// SellingPrice is the default selling price
	SellingPrice decimal.Decimal `db:"selling_price" json:"sellingPrice"`

	// CostPrice is the purchase cost
	CostPrice decimal.Decimal `db:"cost_price" json:"costPrice"`

	// Stock is the authoritative current stock quantity (ledger value)
	Stock int `db:"stock" json:"stock"`

	// ReorderLevel triggers low-stock reporting when Stock falls below it
	ReorderLevel *int `db:"reorder_level" json:"reorderLevel,omitempty"`
}

// NewProduct creates a new Product with required fields.
func NewProduct(code, name string, brandID, subDepartmentID, unitID id.ID) *Product {
	return &Product{
		Catalog:         entity.NewCatalog(name),
		Code:            strings.TrimSpace(code),
		BrandID:         brandID,
		SubDepartmentID: subDepartmentID,
		UnitID:          unitID,
		SellingPrice:    decimal.Zero,
		CostPrice:       decimal.Zero,
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if strings.TrimSpace(p.Code) == "" {
		return apperror.NewValidation("code is required").
			WithDetail("field", "code")
	}

	if id.IsNil(p.BrandID) {
		return apperror.NewValidation("brand is required").
			WithDetail("field", "brandId")
	}

	if id.IsNil(p.SubDepartmentID) {
		return apperror.NewValidation("sub-department is required").
			WithDetail("field", "subDepartmentId")
	}

	if id.IsNil(p.UnitID) {
		return apperror.NewValidation("unit is required").
			WithDetail("field", "unitId")
	}

	if p.SellingPrice.IsNegative() || p.CostPrice.IsNegative() {
		return apperror.NewValidation("prices cannot be negative").
			WithDetail("field", "sellingPrice/costPrice")
	}

	if p.Stock < 0 {
		return apperror.NewValidation("stock cannot be negative").
			WithDetail("field", "stock")
	}

	return nil
}

// IsBelowReorderLevel reports whether the product needs restocking.
func (p *Product) IsBelowReorderLevel() bool {
	return p.ReorderLevel != nil && p.Stock < *p.ReorderLevel
}

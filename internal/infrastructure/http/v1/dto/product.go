package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/product"
)

// ProductResponse contains product fields.
type ProductResponse struct {
	CatalogResponse
	Code            string          `json:"code"`
	BrandID         string          `json:"brandId"`
	SubDepartmentID string          `json:"subDepartmentId"`
	UnitID          string          `json:"unitId"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	Stock           int             `json:"stock"`
	ReorderLevel    *int            `json:"reorderLevel,omitempty"`
}

// FromProduct creates ProductResponse from the domain entity.
func FromProduct(p *product.Product) ProductResponse {
	return ProductResponse{
		CatalogResponse: fromCatalog(p.Catalog),
		Code:            p.Code,
		BrandID:         p.BrandID.String(),
		SubDepartmentID: p.SubDepartmentID.String(),
		UnitID:          p.UnitID.String(),
		SellingPrice:    p.SellingPrice,
		CostPrice:       p.CostPrice,
		Stock:           p.Stock,
		ReorderLevel:    p.ReorderLevel,
	}
}

// CreateProductRequest for creating products. The initial stock value
// seeds the ledger; afterwards stock changes only through applied
// stock counts.
type CreateProductRequest struct {
	Code            string          `json:"code" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	Description     *string         `json:"description"`
	BrandID         string          `json:"brandId" binding:"required,uuid"`
	SubDepartmentID string          `json:"subDepartmentId" binding:"required,uuid"`
	UnitID          string          `json:"unitId" binding:"required,uuid"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	InitialStock    int             `json:"initialStock" binding:"min=0"`
	ReorderLevel    *int            `json:"reorderLevel"`
}

// ToEntity maps the request to a domain product.
func (r CreateProductRequest) ToEntity() (*product.Product, error) {
	brandID, err := id.Parse(r.BrandID)
	if err != nil {
		return nil, err
	}
	subDepartmentID, err := id.Parse(r.SubDepartmentID)
	if err != nil {
		return nil, err
	}
	unitID, err := id.Parse(r.UnitID)
	if err != nil {
		return nil, err
	}

	p := product.NewProduct(r.Code, r.Name, brandID, subDepartmentID, unitID)
	p.Description = r.Description
	p.SellingPrice = r.SellingPrice
	p.CostPrice = r.CostPrice
	p.Stock = r.InitialStock
	p.ReorderLevel = r.ReorderLevel
	return p, nil
}

// UpdateProductRequest for updating products. Stock is deliberately
// absent: the ledger is only written through applied stock counts.
type UpdateProductRequest struct {
	Code            *string          `json:"code"`
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	BrandID         *string          `json:"brandId" binding:"omitempty,uuid"`
	SubDepartmentID *string          `json:"subDepartmentId" binding:"omitempty,uuid"`
	UnitID          *string          `json:"unitId" binding:"omitempty,uuid"`
	SellingPrice    *decimal.Decimal `json:"sellingPrice"`
	CostPrice       *decimal.Decimal `json:"costPrice"`
	ReorderLevel    *int             `json:"reorderLevel"`
}

// ApplyTo maps changed fields onto an existing product.
func (r UpdateProductRequest) ApplyTo(p *product.Product) error {
	if r.Code != nil {
		p.Code = *r.Code
	}
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = r.Description
	}
	if r.BrandID != nil {
		brandID, err := id.Parse(*r.BrandID)
		if err != nil {
			return err
		}
		p.BrandID = brandID
	}
	if r.SubDepartmentID != nil {
		subDepartmentID, err := id.Parse(*r.SubDepartmentID)
		if err != nil {
			return err
		}
		p.SubDepartmentID = subDepartmentID
	}
	if r.UnitID != nil {
		unitID, err := id.Parse(*r.UnitID)
		if err != nil {
			return err
		}
		p.UnitID = unitID
	}
	if r.SellingPrice != nil {
		p.SellingPrice = *r.SellingPrice
	}
	if r.CostPrice != nil {
		p.CostPrice = *r.CostPrice
	}
	if r.ReorderLevel != nil {
		p.ReorderLevel = r.ReorderLevel
	}
	return nil
}

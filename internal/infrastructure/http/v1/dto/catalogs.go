package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Haarizz/inventory-registries/internal/core/entity"
	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/brand"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/department"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/pricelevel"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/subdepartment"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/unit"
)

// CatalogResponse contains the fields shared by all reference catalogs.
type CatalogResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Active      bool    `json:"active"`
	Version     int     `json:"version"`
}

func fromCatalog(c entity.Catalog) CatalogResponse {
	return CatalogResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
		Version:     c.Version,
	}
}

// --- Brand ---

type CreateBrandRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func (r CreateBrandRequest) ToEntity() *brand.Brand {
	b := &brand.Brand{Catalog: entity.NewCatalog(r.Name)}
	b.Description = r.Description
	return b
}

type UpdateBrandRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r UpdateBrandRequest) ApplyTo(b *brand.Brand) {
	if r.Name != nil {
		b.Name = *r.Name
	}
	if r.Description != nil {
		b.Description = r.Description
	}
}

func FromBrand(b *brand.Brand) CatalogResponse {
	return fromCatalog(b.Catalog)
}

// --- Department ---

type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func (r CreateDepartmentRequest) ToEntity() *department.Department {
	d := &department.Department{Catalog: entity.NewCatalog(r.Name)}
	d.Description = r.Description
	return d
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r UpdateDepartmentRequest) ApplyTo(d *department.Department) {
	if r.Name != nil {
		d.Name = *r.Name
	}
	if r.Description != nil {
		d.Description = r.Description
	}
}

func FromDepartment(d *department.Department) CatalogResponse {
	return fromCatalog(d.Catalog)
}

// --- SubDepartment ---

type SubDepartmentResponse struct {
	CatalogResponse
	DepartmentID string `json:"departmentId"`
}

type CreateSubDepartmentRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description"`
	DepartmentID string  `json:"departmentId" binding:"required,uuid"`
}

func (r CreateSubDepartmentRequest) ToEntity() (*subdepartment.SubDepartment, error) {
	departmentID, err := id.Parse(r.DepartmentID)
	if err != nil {
		return nil, err
	}
	s := subdepartment.NewSubDepartment(r.Name, departmentID)
	s.Description = r.Description
	return s, nil
}

type UpdateSubDepartmentRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	DepartmentID *string `json:"departmentId" binding:"omitempty,uuid"`
}

func (r UpdateSubDepartmentRequest) ApplyTo(s *subdepartment.SubDepartment) error {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Description != nil {
		s.Description = r.Description
	}
	if r.DepartmentID != nil {
		departmentID, err := id.Parse(*r.DepartmentID)
		if err != nil {
			return err
		}
		s.DepartmentID = departmentID
	}
	return nil
}

func FromSubDepartment(s *subdepartment.SubDepartment) SubDepartmentResponse {
	return SubDepartmentResponse{
		CatalogResponse: fromCatalog(s.Catalog),
		DepartmentID:    s.DepartmentID.String(),
	}
}

// --- Unit ---

type UnitResponse struct {
	CatalogResponse
	Abbreviation *string `json:"abbreviation,omitempty"`
}

type CreateUnitRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description"`
	Abbreviation *string `json:"abbreviation"`
}

func (r CreateUnitRequest) ToEntity() *unit.Unit {
	u := &unit.Unit{Catalog: entity.NewCatalog(r.Name)}
	u.Description = r.Description
	u.Abbreviation = r.Abbreviation
	return u
}

type UpdateUnitRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Abbreviation *string `json:"abbreviation"`
}

func (r UpdateUnitRequest) ApplyTo(u *unit.Unit) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Description != nil {
		u.Description = r.Description
	}
	if r.Abbreviation != nil {
		u.Abbreviation = r.Abbreviation
	}
}

func FromUnit(u *unit.Unit) UnitResponse {
	return UnitResponse{
		CatalogResponse: fromCatalog(u.Catalog),
		Abbreviation:    u.Abbreviation,
	}
}

// --- PriceLevel ---

type PriceLevelResponse struct {
	CatalogResponse
	ProductID string          `json:"productId"`
	Price     decimal.Decimal `json:"price"`
}

type CreatePriceLevelRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description"`
	ProductID   string          `json:"productId" binding:"required,uuid"`
	Price       decimal.Decimal `json:"price"`
}

func (r CreatePriceLevelRequest) ToEntity() (*pricelevel.PriceLevel, error) {
	productID, err := id.Parse(r.ProductID)
	if err != nil {
		return nil, err
	}
	p := pricelevel.NewPriceLevel(r.Name, productID, r.Price)
	p.Description = r.Description
	return p, nil
}

type UpdatePriceLevelRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

func (r UpdatePriceLevelRequest) ApplyTo(p *pricelevel.PriceLevel) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = r.Description
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
}

func FromPriceLevel(p *pricelevel.PriceLevel) PriceLevelResponse {
	return PriceLevelResponse{
		CatalogResponse: fromCatalog(p.Catalog),
		ProductID:       p.ProductID.String(),
		Price:           p.Price,
	}
}

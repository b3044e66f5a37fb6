package handlers

import (
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/brand"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/http/v1/dto"
)

// BrandHandler serves the brand catalog endpoints.
type BrandHandler = CatalogHandler[*brand.Brand, dto.CreateBrandRequest, dto.UpdateBrandRequest]

// NewBrandHandler creates a brand handler.
func NewBrandHandler(base *BaseHandler, svc *brand.Service) *BrandHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*brand.Brand, dto.CreateBrandRequest, dto.UpdateBrandRequest]{
		Service:    svc.CatalogService,
		EntityName: "brand",
		MapCreateDTO: func(req dto.CreateBrandRequest) (*brand.Brand, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateBrandRequest, existing *brand.Brand) (*brand.Brand, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
		MapToDTO: func(b *brand.Brand) any {
			return dto.FromBrand(b)
		},
	})
}

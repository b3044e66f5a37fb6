package handlers

import (
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/unit"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/http/v1/dto"
)

// UnitHandler serves the measurement unit catalog endpoints.
type UnitHandler = CatalogHandler[*unit.Unit, dto.CreateUnitRequest, dto.UpdateUnitRequest]

// NewUnitHandler creates a unit handler.
func NewUnitHandler(base *BaseHandler, svc *unit.Service) *UnitHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*unit.Unit, dto.CreateUnitRequest, dto.UpdateUnitRequest]{
		Service:    svc.CatalogService,
		EntityName: "unit",
		MapCreateDTO: func(req dto.CreateUnitRequest) (*unit.Unit, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateUnitRequest, existing *unit.Unit) (*unit.Unit, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
		MapToDTO: func(u *unit.Unit) any {
			return dto.FromUnit(u)
		},
	})
}

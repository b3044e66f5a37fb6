package handlers

import (
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/department"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/http/v1/dto"
)

// DepartmentHandler serves the department catalog endpoints.
type DepartmentHandler = CatalogHandler[*department.Department, dto.CreateDepartmentRequest, dto.UpdateDepartmentRequest]

// NewDepartmentHandler creates a department handler.
func NewDepartmentHandler(base *BaseHandler, svc *department.Service) *DepartmentHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*department.Department, dto.CreateDepartmentRequest, dto.UpdateDepartmentRequest]{
		Service:    svc.CatalogService,
		EntityName: "department",
		MapCreateDTO: func(req dto.CreateDepartmentRequest) (*department.Department, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateDepartmentRequest, existing *department.Department) (*department.Department, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
		MapToDTO: func(d *department.Department) any {
			return dto.FromDepartment(d)
		},
	})
}

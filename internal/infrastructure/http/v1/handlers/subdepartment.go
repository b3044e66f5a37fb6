package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/subdepartment"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/http/v1/dto"
)

// SubDepartmentHandler serves the sub-department catalog endpoints.
type SubDepartmentHandler struct {
	*CatalogHandler[*subdepartment.SubDepartment, dto.CreateSubDepartmentRequest, dto.UpdateSubDepartmentRequest]
	service *subdepartment.Service
}

// NewSubDepartmentHandler creates a sub-department handler.
func NewSubDepartmentHandler(base *BaseHandler, svc *subdepartment.Service) *SubDepartmentHandler {
	generic := NewCatalogHandler(base, CatalogHandlerConfig[*subdepartment.SubDepartment, dto.CreateSubDepartmentRequest, dto.UpdateSubDepartmentRequest]{
		Service:    svc.CatalogService,
		EntityName: "sub-department",
		MapCreateDTO: func(req dto.CreateSubDepartmentRequest) (*subdepartment.SubDepartment, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateSubDepartmentRequest, existing *subdepartment.SubDepartment) (*subdepartment.SubDepartment, error) {
			if err := req.ApplyTo(existing); err != nil {
				return nil, err
			}
			return existing, nil
		},
		MapToDTO: func(s *subdepartment.SubDepartment) any {
			return dto.FromSubDepartment(s)
		},
	})

	return &SubDepartmentHandler{
		CatalogHandler: generic,
		service:        svc,
	}
}

// ListByDepartment handles GET /departments/:id/sub-departments.
func (h *SubDepartmentHandler) ListByDepartment(c *gin.Context) {
	ctx := c.Request.Context()

	departmentID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid department id format"))
		return
	}

	items, err := h.service.ListByDepartment(ctx, departmentID)
	if err != nil {
		h.Error(c, err)
		return
	}

	responses := make([]dto.SubDepartmentResponse, len(items))
	for i, item := range items {
		responses[i] = dto.FromSubDepartment(item)
	}

	c.JSON(http.StatusOK, responses)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/pricelevel"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/http/v1/dto"
)

// PriceLevelHandler serves the price level catalog endpoints.
type PriceLevelHandler struct {
	*CatalogHandler[*pricelevel.PriceLevel, dto.CreatePriceLevelRequest, dto.UpdatePriceLevelRequest]
	service *pricelevel.Service
}

// NewPriceLevelHandler creates a price level handler.
func NewPriceLevelHandler(base *BaseHandler, svc *pricelevel.Service) *PriceLevelHandler {
	generic := NewCatalogHandler(base, CatalogHandlerConfig[*pricelevel.PriceLevel, dto.CreatePriceLevelRequest, dto.UpdatePriceLevelRequest]{
		Service:    svc.CatalogService,
		EntityName: "price level",
		MapCreateDTO: func(req dto.CreatePriceLevelRequest) (*pricelevel.PriceLevel, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdatePriceLevelRequest, existing *pricelevel.PriceLevel) (*pricelevel.PriceLevel, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
		MapToDTO: func(p *pricelevel.PriceLevel) any {
			return dto.FromPriceLevel(p)
		},
	})

	return &PriceLevelHandler{
		CatalogHandler: generic,
		service:        svc,
	}
}

// ListByProduct handles GET /products/:id/price-levels.
func (h *PriceLevelHandler) ListByProduct(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid product id format"))
		return
	}

	items, err := h.service.ListByProduct(ctx, productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	responses := make([]dto.PriceLevelResponse, len(items))
	for i, item := range items {
		responses[i] = dto.FromPriceLevel(item)
	}

	c.JSON(http.StatusOK, responses)
}

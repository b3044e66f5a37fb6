package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/product"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/http/v1/dto"
)

// ProductHandler serves the product catalog endpoints.
type ProductHandler struct {
	*CatalogHandler[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]
	service *product.Service
}

// NewProductHandler creates a product handler.
func NewProductHandler(base *BaseHandler, svc *product.Service) *ProductHandler {
	generic := NewCatalogHandler(base, CatalogHandlerConfig[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]{
		Service:    svc.CatalogService,
		EntityName: "product",
		MapCreateDTO: func(req dto.CreateProductRequest) (*product.Product, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateProductRequest, existing *product.Product) (*product.Product, error) {
			if err := req.ApplyTo(existing); err != nil {
				return nil, err
			}
			return existing, nil
		},
		MapToDTO: func(p *product.Product) any {
			return dto.FromProduct(p)
		},
	})

	return &ProductHandler{
		CatalogHandler: generic,
		service:        svc,
	}
}

// GetByCode handles GET /products/by-code/:code.
func (h *ProductHandler) GetByCode(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Param("code")
	if code == "" {
		h.Error(c, apperror.NewValidation("product code is required"))
		return
	}

	p, err := h.service.GetByCode(ctx, code)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProduct(p))
}

// ListLowStock handles GET /products/low-stock. It returns active products
// whose stock is at or below their reorder level.
func (h *ProductHandler) ListLowStock(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.service.ListBelowReorderLevel(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	responses := make([]dto.ProductResponse, len(items))
	for i, item := range items {
		responses[i] = dto.FromProduct(item)
	}

	c.JSON(http.StatusOK, responses)
}

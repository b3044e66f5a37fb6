package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain/stocktaking"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/http/v1/dto"
)

// StockTakingHandler serves the stock count workflow endpoints.
type StockTakingHandler struct {
	*BaseHandler
	service *stocktaking.Service
}

// NewStockTakingHandler creates a stock taking handler.
func NewStockTakingHandler(base *BaseHandler, svc *stocktaking.Service) *StockTakingHandler {
	return &StockTakingHandler{
		BaseHandler: base,
		service:     svc,
	}
}

// Create handles POST /stock-takings. It opens a draft for the product
// with the current stock snapshot.
func (h *StockTakingHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateStockTakingRequest
	if !h.BindJSON(c, &req) {
		return
	}

	productID, err := id.Parse(req.ProductID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid product id format"))
		return
	}

	record, err := h.service.Create(ctx, stocktaking.CreateInput{
		ProductID:     productID,
		PhysicalStock: req.PhysicalStock,
		Remarks:       req.Remarks,
	}, h.GetUsername(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromStockTaking(record))
}

// Get handles GET /stock-takings/:id.
func (h *StockTakingHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	recordID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	record, err := h.service.GetByID(ctx, recordID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromStockTaking(record))
}

// List handles GET /stock-takings with status, product and pagination filters.
func (h *StockTakingHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := stocktaking.DefaultListFilter()
	filter.Status = stocktaking.Status(c.Query("status"))
	filter.CreatedBy = c.Query("createdBy")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	if orderBy := c.Query("orderBy"); orderBy != "" {
		filter.OrderBy = orderBy
	}
	filter.IncludeInactive = c.Query("includeInactive") == "true"

	if rawProductID := c.Query("productId"); rawProductID != "" {
		productID, err := id.Parse(rawProductID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid product id format"))
			return
		}
		filter.ProductID = productID
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, item := range result.Items {
		items[i] = dto.FromStockTaking(item)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Approve handles POST /stock-takings/:id/approve.
func (h *StockTakingHandler) Approve(c *gin.Context) {
	h.review(c, h.service.Approve)
}

// Reject handles POST /stock-takings/:id/reject.
func (h *StockTakingHandler) Reject(c *gin.Context) {
	h.review(c, h.service.Reject)
}

// Apply handles POST /stock-takings/:id/apply. The physical count becomes
// the product's stock.
func (h *StockTakingHandler) Apply(c *gin.Context) {
	h.review(c, h.service.Apply)
}

func (h *StockTakingHandler) review(
	c *gin.Context,
	op func(ctx context.Context, recordID id.ID, actor string) (*stocktaking.StockTaking, error),
) {
	ctx := c.Request.Context()

	recordID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	record, err := op(ctx, recordID, h.GetUsername(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromStockTaking(record))
}

// Delete handles DELETE /stock-takings/:id. Only drafts can be deleted.
func (h *StockTakingHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	recordID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, recordID, h.GetUsername(c)); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

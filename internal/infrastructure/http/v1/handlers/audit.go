package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain/audit"
)

// AuditHandler serves the audit trail review endpoint.
type AuditHandler struct {
	*BaseHandler
	reader audit.Reader
}

// NewAuditHandler creates an audit handler.
func NewAuditHandler(base *BaseHandler, reader audit.Reader) *AuditHandler {
	return &AuditHandler{
		BaseHandler: base,
		reader:      reader,
	}
}

// List handles GET /audit. Administrators only.
func (h *AuditHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := audit.ListFilter{
		RecordType: c.Query("recordType"),
		Actor:      c.Query("actor"),
		Limit:      h.ParseIntQuery(c, "limit", 50),
		Offset:     h.ParseIntQuery(c, "offset", 0),
	}

	if rawRecordID := c.Query("recordId"); rawRecordID != "" {
		recordID, err := id.Parse(rawRecordID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid record id format"))
			return
		}
		filter.RecordID = recordID
	}

	entries, err := h.reader.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

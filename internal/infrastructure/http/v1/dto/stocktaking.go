package dto

import (
	"time"

	"github.com/Haarizz/inventory-registries/internal/domain/stocktaking"
)

// CreateStockTakingRequest opens a draft stock count.
type CreateStockTakingRequest struct {
	ProductID     string  `json:"productId" binding:"required,uuid"`
	PhysicalStock int     `json:"physicalStock" binding:"min=0"`
	Remarks       *string `json:"remarks"`
}

// StockTakingResponse contains stock count record fields.
type StockTakingResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"productId"`
	SystemStock   int       `json:"systemStock"`
	PhysicalStock int       `json:"physicalStock"`
	Variance      int       `json:"variance"`
	Status        string    `json:"status"`
	CreatedBy     string    `json:"createdBy"`
	ApprovedBy    *string   `json:"approvedBy,omitempty"`
	Remarks       *string   `json:"remarks,omitempty"`
	Active        bool      `json:"active"`
	Version       int       `json:"version"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FromStockTaking creates StockTakingResponse from the domain record.
func FromStockTaking(st *stocktaking.StockTaking) StockTakingResponse {
	return StockTakingResponse{
		ID:            st.ID.String(),
		ProductID:     st.ProductID.String(),
		SystemStock:   st.SystemStock,
		PhysicalStock: st.PhysicalStock,
		Variance:      st.Variance,
		Status:        string(st.Status),
		CreatedBy:     st.CreatedBy,
		ApprovedBy:    st.ApprovedBy,
		Remarks:       st.Remarks,
		Active:        st.Active,
		Version:       st.Version,
		CreatedAt:     st.CreatedAt,
		UpdatedAt:     st.UpdatedAt,
	}
}

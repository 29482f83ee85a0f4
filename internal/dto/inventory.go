package dto

import (
	"time"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
)

// UpdateInventoryRequest adjusts a live inventory row. Quantity corrections
// are staff actions; normal stock movement happens via sales and publishes.
type UpdateInventoryRequest struct {
	Quantity          *int `json:"quantity" binding:"omitempty,gte=0"`
	LowStockThreshold *int `json:"lowStockThreshold" binding:"omitempty,gte=0"`
}

// InventoryResponse is the outward shape of a live inventory row.
type InventoryResponse struct {
	InventoryID       string    `json:"inventoryID"`
	ProductID         string    `json:"productID"`
	Quantity          int       `json:"quantity"`
	LowStockThreshold int       `json:"lowStockThreshold"`
	LowStock          bool      `json:"lowStock"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ToInventoryResponse converts a domain inventory row to its response DTO.
func ToInventoryResponse(r domain.InventoryRow) InventoryResponse {
	return InventoryResponse{
		InventoryID:       r.InventoryID,
		ProductID:         r.ProductID,
		Quantity:          r.Quantity,
		LowStockThreshold: r.LowStockThreshold,
		LowStock:          r.IsLowStock(),
		UpdatedAt:         r.UpdatedAt,
	}
}

// ToInventoryResponseSlice converts a slice of domain inventory rows.
func ToInventoryResponseSlice(rs []domain.InventoryRow) []InventoryResponse {
	out := make([]InventoryResponse, len(rs))
	for i, r := range rs {
		out[i] = ToInventoryResponse(r)
	}
	return out
}

package dto

import (
	"time"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ItemResponse is the legacy flat item shape: one object carrying both the
// catalog fields and the live inventory fields for a product.
type ItemResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Quantity          int             `json:"quantity"`
	Price             decimal.Decimal `json:"price"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ToItemResponse flattens a product and its inventory row into the legacy shape.
func ToItemResponse(p domain.Product, inv domain.InventoryRow) ItemResponse {
	return ItemResponse{
		ID:                p.ProductID,
		Name:              p.Name,
		Quantity:          inv.Quantity,
		Price:             p.SellingPrice,
		LowStockThreshold: inv.LowStockThreshold,
		UpdatedAt:         inv.UpdatedAt,
	}
}

// CreateItemRequest is the legacy create shape mapped onto the canonical
// product + inventory pair.
type CreateItemRequest struct {
	Name              string          `json:"name" binding:"required"`
	Quantity          int             `json:"quantity" binding:"gte=0"`
	Price             decimal.Decimal `json:"price" binding:"required"`
	LowStockThreshold int             `json:"low_stock_threshold" binding:"gte=0"`
}

// LegacyCreateSaleRequest is the legacy sale shape (item_id naming).
type LegacyCreateSaleRequest struct {
	ItemID        string `json:"item_id" binding:"required"`
	QuantitySold  int    `json:"quantity_sold" binding:"required,gt=0"`
	PaymentMethod string `json:"payment_method" binding:"required,paymentmethod"`
}

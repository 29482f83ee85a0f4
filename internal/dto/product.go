package dto

import (
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest adds a catalog item. Price is accepted as a decimal
// string to avoid float drift on currency values.
type CreateProductRequest struct {
	Name              string          `json:"name" binding:"required"`
	Category          string          `json:"category"`
	SellingPrice      decimal.Decimal `json:"sellingPrice" binding:"required"`
	InitialQuantity   int             `json:"initialQuantity" binding:"gte=0"`
	LowStockThreshold int             `json:"lowStockThreshold" binding:"gte=0"`
}

// UpdateProductRequest edits a catalog item; omitted fields are untouched.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	SellingPrice *decimal.Decimal `json:"sellingPrice"`
	Active       *bool            `json:"active"`
}

// ProductResponse is the outward shape of a catalog item.
type ProductResponse struct {
	ProductID    string          `json:"productID"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Active       bool            `json:"active"`
}

// ToProductResponse converts a domain product to its response DTO.
func ToProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:    p.ProductID,
		Name:         p.Name,
		Category:     p.Category,
		SellingPrice: p.SellingPrice,
		Active:       p.Active,
	}
}

// ToProductResponseSlice converts a slice of domain products.
func ToProductResponseSlice(ps []domain.Product) []ProductResponse {
	out := make([]ProductResponse, len(ps))
	for i, p := range ps {
		out[i] = ToProductResponse(p)
	}
	return out
}

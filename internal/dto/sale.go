package dto

import (
	"time"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest records one sale. Unit price is never client-supplied;
// it is snapshotted from the catalog at sale time.
type CreateSaleRequest struct {
	ProductID     string `json:"productID" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,gt=0"`
	PaymentMethod string `json:"paymentMethod" binding:"required,paymentmethod"`
}

// ListSalesParams defines query parameters for listing sales.
type ListSalesParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// SaleResponse is the outward shape of one sales ledger row.
type SaleResponse struct {
	SaleID        string          `json:"saleID"`
	ProductID     string          `json:"productID"`
	ProductName   string          `json:"productName"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	SoldBy        string          `json:"soldBy"`
	SoldAt        time.Time       `json:"soldAt"`
}

// ToSaleResponse converts a domain sale to its response DTO.
func ToSaleResponse(s domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:        s.SaleID,
		ProductID:     s.ProductID,
		ProductName:   s.ProductName,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		Total:         s.Total,
		PaymentMethod: string(s.PaymentMethod),
		SoldBy:        s.SoldBy,
		SoldAt:        s.SoldAt,
	}
}

// ToSaleResponseSlice converts a slice of domain sales.
func ToSaleResponseSlice(ss []domain.Sale) []SaleResponse {
	out := make([]SaleResponse, len(ss))
	for i, s := range ss {
		out[i] = ToSaleResponse(s)
	}
	return out
}

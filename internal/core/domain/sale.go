package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a sale was paid for.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "CASH"
	PaymentMpesa PaymentMethod = "MPESA" // mobile money
)

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCash || m == PaymentMpesa
}

// Sale is one completed, append-only sales transaction. ProductName and
// UnitPrice are snapshots taken at sale time; later catalog changes never
// retroactively alter historical sales.
type Sale struct {
	SaleID        string          `json:"saleID"`
	ProductID     string          `json:"productID"`
	ProductName   string          `json:"productName"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	SoldBy        string          `json:"soldBy"` // UserID reference
	SoldAt        time.Time       `json:"soldAt"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the database representation of one sales ledger row.
type Sale struct {
	SaleID        string          `db:"sale_id"`
	ProductID     string          `db:"product_id"`
	ProductName   string          `db:"product_name"`
	Quantity      int             `db:"quantity"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	Total         decimal.Decimal `db:"total"`
	PaymentMethod string          `db:"payment_method"`
	SoldBy        string          `db:"sold_by"`
	SoldAt        time.Time       `db:"sold_at"`
}

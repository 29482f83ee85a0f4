package models

import "github.com/shopspring/decimal"

// Product is the database representation of a catalog item.
type Product struct {
	ProductID    string          `db:"product_id"`
	Name         string          `db:"name"`
	Category     string          `db:"category"`
	SellingPrice decimal.Decimal `db:"selling_price"`
	Active       bool            `db:"active"`
	AuditFields
}

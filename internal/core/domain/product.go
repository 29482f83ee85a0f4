package domain

import "github.com/shopspring/decimal"

// Product is a sellable catalog item. SellingPrice is a non-negative currency
// amount; quantities live in the inventory table, not here.
type Product struct {
	ProductID    string          `json:"productID"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Active       bool            `json:"active"`
	AuditFields
}

package domain

import "time"

// InventoryRow is the current on-hand quantity for one product.
// Quantity never goes below zero: a sale that would drive it negative is
// rejected before any mutation.
type InventoryRow struct {
	InventoryID       string    `json:"inventoryID"`
	ProductID         string    `json:"productID"`
	Quantity          int       `json:"quantity"`
	LowStockThreshold int       `json:"lowStockThreshold"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// IsLowStock reports whether the row is at or below its threshold.
func (r InventoryRow) IsLowStock() bool {
	return r.Quantity <= r.LowStockThreshold
}

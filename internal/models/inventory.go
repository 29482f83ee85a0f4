package models

import "time"

// InventoryRow is the database representation of a live inventory row.
type InventoryRow struct {
	InventoryID       string    `db:"inventory_id"`
	ProductID         string    `db:"product_id"`
	Quantity          int       `db:"quantity"`
	LowStockThreshold int       `db:"low_stock_threshold"`
	UpdatedAt         time.Time `db:"updated_at"`
}

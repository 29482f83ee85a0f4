package repositories

import (
	"context"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
)

// InventoryReader defines read operations for live inventory.
type InventoryReader interface {
	// FindInventoryByProductID retrieves the stock row for one product.
	FindInventoryByProductID(ctx context.Context, productID string) (*domain.InventoryRow, error)

	// FindInventory retrieves all stock rows.
	FindInventory(ctx context.Context) ([]domain.InventoryRow, error)
}

// InventoryWriter defines write operations for live inventory.
// Sales and day publishes mutate inventory through their own transactional
// repositories; this writer covers manual corrections only.
type InventoryWriter interface {
	// UpdateInventory overwrites quantity and/or threshold for one product.
	UpdateInventory(ctx context.Context, row domain.InventoryRow) error
}

// InventoryRepositoryFacade combines the inventory repository interfaces.
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
}

package services

import (
	"context"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/dto"
)

// InventoryReaderSvc defines read operations on live inventory.
type InventoryReaderSvc interface {
	GetInventoryByProductID(ctx context.Context, productID string) (*domain.InventoryRow, error)
	ListInventory(ctx context.Context) ([]domain.InventoryRow, error)
	ListLowStock(ctx context.Context) ([]domain.InventoryRow, error)
}

// InventoryWriterSvc defines manual corrections; requires staff or admin.
type InventoryWriterSvc interface {
	UpdateInventory(ctx context.Context, requestingUserID, productID string, req dto.UpdateInventoryRequest) (*domain.InventoryRow, error)
}

// InventorySvcFacade combines the inventory service interfaces.
type InventorySvcFacade interface {
	InventoryReaderSvc
	InventoryWriterSvc
}

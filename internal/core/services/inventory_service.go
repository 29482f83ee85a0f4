package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/apperrors"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	portsrepo "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/repositories"
	portssvc "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/dto"
)

// InventoryService handles live inventory reads and manual corrections.
// Normal stock movement happens through the sale and publish transactions.
type InventoryService struct {
	inventoryRepo portsrepo.InventoryRepositoryFacade
	userService   portssvc.UserSvcFacade
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(inventoryRepo portsrepo.InventoryRepositoryFacade, userService portssvc.UserSvcFacade) portssvc.InventorySvcFacade {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		userService:   userService,
	}
}

var _ portssvc.InventorySvcFacade = (*InventoryService)(nil)

func (s *InventoryService) GetInventoryByProductID(ctx context.Context, productID string) (*domain.InventoryRow, error) {
	row, err := s.inventoryRepo.FindInventoryByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get inventory for product %s: %w", productID, err)
	}
	return row, nil
}

func (s *InventoryService) ListInventory(ctx context.Context) ([]domain.InventoryRow, error) {
	return s.inventoryRepo.FindInventory(ctx)
}

// ListLowStock returns only the rows at or below their threshold.
func (s *InventoryService) ListLowStock(ctx context.Context) ([]domain.InventoryRow, error) {
	rows, err := s.inventoryRepo.FindInventory(ctx)
	if err != nil {
		return nil, err
	}
	low := []domain.InventoryRow{}
	for _, row := range rows {
		if row.IsLowStock() {
			low = append(low, row)
		}
	}
	return low, nil
}

// UpdateInventory applies a manual correction. Requires staff or admin.
func (s *InventoryService) UpdateInventory(ctx context.Context, requestingUserID, productID string, req dto.UpdateInventoryRequest) (*domain.InventoryRow, error) {
	if _, err := s.userService.AuthorizeAction(ctx, requestingUserID, domain.ActionManageCatalog); err != nil {
		return nil, err
	}

	row, err := s.inventoryRepo.FindInventoryByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find inventory for product %s: %w", productID, err)
	}

	if req.Quantity != nil {
		row.Quantity = *req.Quantity
	}
	if req.LowStockThreshold != nil {
		row.LowStockThreshold = *req.LowStockThreshold
	}
	row.UpdatedAt = time.Now()

	if err := s.inventoryRepo.UpdateInventory(ctx, *row); err != nil {
		return nil, fmt.Errorf("failed to update inventory for product %s: %w", productID, err)
	}

	return row, nil
}

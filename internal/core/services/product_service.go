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
	"github.com/google/uuid"
)

// ProductService handles catalog management.
type ProductService struct {
	productRepo portsrepo.ProductRepositoryFacade
	userService portssvc.UserSvcFacade
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, userService portssvc.UserSvcFacade) portssvc.ProductSvcFacade {
	return &ProductService{
		productRepo: productRepo,
		userService: userService,
	}
}

var _ portssvc.ProductSvcFacade = (*ProductService)(nil)

func (s *ProductService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.FindProducts(ctx)
}

func (s *ProductService) ListActiveProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.FindActiveProducts(ctx)
}

// CreateProduct adds a catalog item together with its inventory row.
func (s *ProductService) CreateProduct(ctx context.Context, requestingUserID string, req dto.CreateProductRequest) (*domain.Product, error) {
	if _, err := s.userService.AuthorizeAction(ctx, requestingUserID, domain.ActionManageCatalog); err != nil {
		return nil, err
	}

	if req.SellingPrice.IsNegative() {
		return nil, fmt.Errorf("selling price cannot be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	product := domain.Product{
		ProductID:    uuid.NewString(),
		Name:         req.Name,
		Category:     req.Category,
		SellingPrice: req.SellingPrice,
		Active:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	inventory := domain.InventoryRow{
		InventoryID:       uuid.NewString(),
		ProductID:         product.ProductID,
		Quantity:          req.InitialQuantity,
		LowStockThreshold: req.LowStockThreshold,
		UpdatedAt:         now,
	}

	if err := s.productRepo.SaveProductWithInventory(ctx, product, inventory); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &product, nil
}

// UpdateProduct edits a catalog item; omitted fields are untouched.
func (s *ProductService) UpdateProduct(ctx context.Context, requestingUserID, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	if _, err := s.userService.AuthorizeAction(ctx, requestingUserID, domain.ActionManageCatalog); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find product %s for update: %w", productID, err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.SellingPrice != nil {
		if req.SellingPrice.IsNegative() {
			return nil, fmt.Errorf("selling price cannot be negative: %w", apperrors.ErrValidation)
		}
		product.SellingPrice = *req.SellingPrice
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = requestingUserID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", productID, err)
	}

	return product, nil
}

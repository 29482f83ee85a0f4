package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/apperrors"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	portsrepo "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/repositories"
	portssvc "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/dto"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/middleware"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/platform/cache"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleService records sales against the append-only ledger.
type SaleService struct {
	saleRepo    portsrepo.SaleRepositoryFacade
	productRepo portsrepo.ProductRepositoryFacade
	userService portssvc.UserSvcFacade
	reportCache cache.ReportCache
}

// NewSaleService creates a new SaleService.
func NewSaleService(
	saleRepo portsrepo.SaleRepositoryFacade,
	productRepo portsrepo.ProductRepositoryFacade,
	userService portssvc.UserSvcFacade,
	reportCache cache.ReportCache,
) portssvc.SaleSvcFacade {
	return &SaleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		userService: userService,
		reportCache: reportCache,
	}
}

var _ portssvc.SaleSvcFacade = (*SaleService)(nil)

func (s *SaleService) ListSales(ctx context.Context, limit, offset int) ([]domain.Sale, error) {
	return s.saleRepo.FindSales(ctx, limit, offset)
}

// RecordSale snapshots the product's name and price at sale time, then runs
// the stock check, decrement and insert as one transaction. The ledger row
// keeps its figures even if the product is later repriced or renamed.
func (s *SaleService) RecordSale(ctx context.Context, requestingUserID string, req dto.CreateSaleRequest) (*domain.Sale, error) {
	if _, err := s.userService.AuthorizeAction(ctx, requestingUserID, domain.ActionRecordSale); err != nil {
		return nil, err
	}

	method := domain.PaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		return nil, fmt.Errorf("unknown payment method %q: %w", req.PaymentMethod, apperrors.ErrValidation)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", apperrors.ErrValidation)
	}

	product, err := s.productRepo.FindProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("product %s: %w", req.ProductID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load product for sale: %w", err)
	}

	sale := domain.Sale{
		SaleID:        uuid.NewString(),
		ProductID:     product.ProductID,
		ProductName:   product.Name,
		Quantity:      req.Quantity,
		UnitPrice:     product.SellingPrice,
		Total:         product.SellingPrice.Mul(decimal.NewFromInt(int64(req.Quantity))),
		PaymentMethod: method,
		SoldBy:        requestingUserID,
		SoldAt:        time.Now(),
	}

	if err := s.saleRepo.SaveSaleAndDecrement(ctx, sale); err != nil {
		return nil, err
	}

	if err := s.reportCache.Delete(ctx, dashboardCacheKey); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to invalidate report cache", slog.String("error", err.Error()))
	}

	middleware.GetLoggerFromCtx(ctx).Info("Sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.String("product", sale.ProductName),
		slog.Int("quantity", sale.Quantity),
	)
	return &sale, nil
}

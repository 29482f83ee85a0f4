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
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/middleware"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/platform/cache"
	"github.com/google/uuid"
)

// DailyStockService drives the ledger state machine: empty -> draft -> published.
type DailyStockService struct {
	dailyStockRepo portsrepo.DailyStockRepositoryFacade
	productRepo    portsrepo.ProductRepositoryFacade
	inventoryRepo  portsrepo.InventoryRepositoryFacade
	userService    portssvc.UserSvcFacade
	reportCache    cache.ReportCache
}

// NewDailyStockService creates a new DailyStockService.
func NewDailyStockService(
	dailyStockRepo portsrepo.DailyStockRepositoryFacade,
	productRepo portsrepo.ProductRepositoryFacade,
	inventoryRepo portsrepo.InventoryRepositoryFacade,
	userService portssvc.UserSvcFacade,
	reportCache cache.ReportCache,
) portssvc.DailyStockSvcFacade {
	return &DailyStockService{
		dailyStockRepo: dailyStockRepo,
		productRepo:    productRepo,
		inventoryRepo:  inventoryRepo,
		userService:    userService,
		reportCache:    reportCache,
	}
}

var _ portssvc.DailyStockSvcFacade = (*DailyStockService)(nil)

// GetDay returns the date's status and its rows joined with products. An
// uninitialized date comes back as status empty with no rows; the status is
// always derived from the stored rows, never guessed.
func (s *DailyStockService) GetDay(ctx context.Context, date string) (domain.DayStatus, []domain.DailyStockRecord, map[string]domain.Product, error) {
	if err := validateDate(date); err != nil {
		return "", nil, nil, err
	}

	records, err := s.dailyStockRepo.FindRecordsByDate(ctx, date)
	if err != nil {
		return "", nil, nil, fmt.Errorf("failed to load day %s: %w", date, err)
	}
	if len(records) == 0 {
		return domain.DayStatusEmpty, nil, nil, nil
	}

	products, err := s.productRepo.FindProducts(ctx)
	if err != nil {
		return "", nil, nil, fmt.Errorf("failed to load products for day %s: %w", date, err)
	}
	productMap := make(map[string]domain.Product, len(products))
	for _, p := range products {
		productMap[p.ProductID] = p
	}

	return records[0].Status, records, productMap, nil
}

// InitializeDay creates one draft row per active product with opening stock
// seeded from live inventory. Re-initialization of an existing day is a state
// conflict, enforced by the unique date+product constraint in the store.
func (s *DailyStockService) InitializeDay(ctx context.Context, requestingUserID, date string) ([]domain.DailyStockRecord, error) {
	if _, err := s.userService.AuthorizeAction(ctx, requestingUserID, domain.ActionInitializeDay); err != nil {
		return nil, err
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindActiveProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active products: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("no active products to initialize: %w", apperrors.ErrValidation)
	}

	inventory, err := s.inventoryRepo.FindInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	onHand := make(map[string]int, len(inventory))
	for _, row := range inventory {
		onHand[row.ProductID] = row.Quantity
	}

	now := time.Now()
	records := make([]domain.DailyStockRecord, len(products))
	for i, p := range products {
		records[i] = domain.DailyStockRecord{
			RecordID:     uuid.NewString(),
			RecordDate:   date,
			ProductID:    p.ProductID,
			OpeningStock: onHand[p.ProductID],
			AddedStock:   0,
			ClosingStock: 0,
			Status:       domain.DayStatusDraft,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     requestingUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: requestingUserID,
			},
		}
	}

	if err := s.dailyStockRepo.InsertDayRecords(ctx, records); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("day %s already initialized: %w", date, apperrors.ErrStateConflict)
		}
		return nil, fmt.Errorf("failed to initialize day %s: %w", date, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Day initialized",
		slog.String("date", date),
		slog.Int("products", len(records)),
	)
	return records, nil
}

// UpdateCell overwrites one cell of a draft row. Published rows are rejected
// by the store, not just here.
func (s *DailyStockService) UpdateCell(ctx context.Context, requestingUserID, recordID string, field domain.StockField, value int) error {
	if _, err := s.userService.AuthorizeAction(ctx, requestingUserID, domain.ActionEditDraftCell); err != nil {
		return err
	}
	if !field.IsValid() {
		return fmt.Errorf("unknown stock field %q: %w", field, apperrors.ErrValidation)
	}
	if value < 0 {
		return fmt.Errorf("stock values cannot be negative: %w", apperrors.ErrValidation)
	}

	return s.dailyStockRepo.UpdateRecordField(ctx, recordID, field, value, requestingUserID, time.Now())
}

// PublishDay propagates closing stock into live inventory and locks the date,
// as one unit. Admin only. A failed publish leaves the day draft so it can be
// retried after the problem is fixed.
func (s *DailyStockService) PublishDay(ctx context.Context, requestingUserID, date string) error {
	if _, err := s.userService.AuthorizeAction(ctx, requestingUserID, domain.ActionPublishDay); err != nil {
		return err
	}
	if err := validateDate(date); err != nil {
		return err
	}

	records, err := s.dailyStockRepo.FindRecordsByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to load day %s for publish: %w", date, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("day %s is not initialized: %w", date, apperrors.ErrStateConflict)
	}
	if records[0].Status == domain.DayStatusPublished {
		return fmt.Errorf("day %s is already published: %w", date, apperrors.ErrStateConflict)
	}

	if err := s.dailyStockRepo.PublishDay(ctx, date, requestingUserID, time.Now()); err != nil {
		return err
	}

	if err := s.reportCache.Delete(ctx, dashboardCacheKey); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to invalidate report cache", slog.String("error", err.Error()))
	}

	middleware.GetLoggerFromCtx(ctx).Info("Day published", slog.String("date", date))
	return nil
}

// validateDate checks the YYYY-MM-DD ledger date format.
func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", date, apperrors.ErrValidation)
	}
	return nil
}

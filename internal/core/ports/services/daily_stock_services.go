package services

import (
	"context"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
)

// DailyStockReaderSvc defines read operations on the daily stock ledger.
type DailyStockReaderSvc interface {
	// GetDay returns the date's status and its rows joined with products.
	// An uninitialized date comes back as status empty with no rows.
	GetDay(ctx context.Context, date string) (domain.DayStatus, []domain.DailyStockRecord, map[string]domain.Product, error)
}

// DailyStockWriterSvc is the ledger state machine: empty -> draft -> published.
type DailyStockWriterSvc interface {
	// InitializeDay creates one draft row per active product with opening
	// stock seeded from live inventory. Requires staff or admin. Fails with
	// apperrors.ErrStateConflict when the date is already initialized and
	// apperrors.ErrValidation when the catalog has no active products.
	InitializeDay(ctx context.Context, requestingUserID, date string) ([]domain.DailyStockRecord, error)

	// UpdateCell overwrites one cell of a draft row. Requires staff or
	// admin. Published rows are rejected with apperrors.ErrStateConflict,
	// enforced in the store, not just the UI.
	UpdateCell(ctx context.Context, requestingUserID, recordID string, field domain.StockField, value int) error

	// PublishDay propagates closing stock into live inventory and locks the
	// date, as one unit. Admin only. A date is never left part published.
	PublishDay(ctx context.Context, requestingUserID, date string) error
}

// DailyStockSvcFacade combines the ledger service interfaces.
type DailyStockSvcFacade interface {
	DailyStockReaderSvc
	DailyStockWriterSvc
}

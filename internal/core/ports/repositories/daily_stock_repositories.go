package repositories

import (
	"context"
	"time"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
)

// DailyStockReader defines read operations for the daily stock ledger.
type DailyStockReader interface {
	// FindRecordByID retrieves one ledger row.
	FindRecordByID(ctx context.Context, recordID string) (*domain.DailyStockRecord, error)

	// FindRecordsByDate retrieves every ledger row for a date.
	FindRecordsByDate(ctx context.Context, date string) ([]domain.DailyStockRecord, error)

	// FindRecordsBetween retrieves ledger rows in a date range, for reports.
	FindRecordsBetween(ctx context.Context, fromDate, toDate string) ([]domain.DailyStockRecord, error)
}

// DailyStockWriter defines write operations for the daily stock ledger.
type DailyStockWriter interface {
	// InsertDayRecords inserts a full day's draft rows in one transaction.
	// Returns apperrors.ErrDuplicate if any row for the date already exists.
	InsertDayRecords(ctx context.Context, records []domain.DailyStockRecord) error

	// UpdateRecordField overwrites one cell of a draft row. Returns
	// apperrors.ErrStateConflict if the row is published and
	// apperrors.ErrNotFound if it does not exist.
	UpdateRecordField(ctx context.Context, recordID string, field domain.StockField, value int, updatedBy string, updatedAt time.Time) error

	// PublishDay overwrites each product's live inventory quantity with the
	// day's closing stock and flips every row of the date to published, all
	// in one transaction. A failed inventory write aborts the whole publish
	// and the returned error names the failing product.
	PublishDay(ctx context.Context, date string, publishedBy string, publishedAt time.Time) error
}

// DailyStockRepositoryFacade combines the ledger repository interfaces.
type DailyStockRepositoryFacade interface {
	DailyStockReader
	DailyStockWriter
}

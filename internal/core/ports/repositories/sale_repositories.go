package repositories

import (
	"context"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
)

// SaleReader defines read operations for the sales ledger.
type SaleReader interface {
	// FindSales retrieves a paginated list of sales, newest first.
	FindSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error)

	// FindAllSales retrieves the full ledger, newest first, for reports.
	FindAllSales(ctx context.Context) ([]domain.Sale, error)
}

// SaleWriter defines the one write operation on the append-only sales ledger.
type SaleWriter interface {
	// SaveSaleAndDecrement locks the product's inventory row, verifies
	// sufficient stock, decrements it and inserts the sale, all in one
	// transaction. Returns apperrors.ErrInsufficientStock before any
	// mutation when quantity exceeds on-hand stock.
	SaveSaleAndDecrement(ctx context.Context, sale domain.Sale) error
}

// SaleRepositoryFacade combines the sales ledger repository interfaces.
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}

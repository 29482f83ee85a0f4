package services

import (
	"context"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/dto"
)

// SaleReaderSvc defines read operations on the sales ledger.
type SaleReaderSvc interface {
	ListSales(ctx context.Context, limit, offset int) ([]domain.Sale, error)
}

// SaleWriterSvc records sales; requires staff or admin.
type SaleWriterSvc interface {
	// RecordSale snapshots the product price, checks stock, decrements
	// inventory and appends the sale as one atomic unit.
	RecordSale(ctx context.Context, requestingUserID string, req dto.CreateSaleRequest) (*domain.Sale, error)
}

// SaleSvcFacade combines the sales service interfaces.
type SaleSvcFacade interface {
	SaleReaderSvc
	SaleWriterSvc
}

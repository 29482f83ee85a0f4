package services

import (
	"context"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
)

// ReportingSvcFacade computes derived views over the ledgers. All outputs are
// deterministic functions of already-fetched rows; nothing is mutated.
type ReportingSvcFacade interface {
	// GetDashboard is the admin dashboard aggregate. Admin only.
	GetDashboard(ctx context.Context, requestingUserID string) (*domain.DashboardReport, error)

	// GetSalesReport mirrors the legacy sales report. Admin only.
	GetSalesReport(ctx context.Context, requestingUserID string) (*domain.SalesReport, error)

	// GetStockReport mirrors the legacy stock report. Admin only.
	GetStockReport(ctx context.Context, requestingUserID string) (*domain.StockReport, error)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	portsrepo "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/repositories"
	portssvc "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/middleware"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/platform/cache"
	"github.com/shopspring/decimal"
)

const (
	dashboardCacheKey = "reports:dashboard"
	dashboardCacheTTL = 5 * time.Minute

	// fastMoverUnits is the units-sold threshold separating fast from slow
	// movers on the dashboard.
	fastMoverUnits = 10

	// topProductCount caps the ranked product list on the dashboard.
	topProductCount = 5
)

// ReportingService computes derived views over the ledgers. Every figure is a
// deterministic function of the fetched rows; nothing here mutates state.
type ReportingService struct {
	saleRepo       portsrepo.SaleRepositoryFacade
	inventoryRepo  portsrepo.InventoryRepositoryFacade
	productRepo    portsrepo.ProductRepositoryFacade
	dailyStockRepo portsrepo.DailyStockRepositoryFacade
	userService    portssvc.UserSvcFacade
	reportCache    cache.ReportCache
}

// NewReportingService creates a new ReportingService.
func NewReportingService(
	saleRepo portsrepo.SaleRepositoryFacade,
	inventoryRepo portsrepo.InventoryRepositoryFacade,
	productRepo portsrepo.ProductRepositoryFacade,
	dailyStockRepo portsrepo.DailyStockRepositoryFacade,
	userService portssvc.UserSvcFacade,
	reportCache cache.ReportCache,
) portssvc.ReportingSvcFacade {
	return &ReportingService{
		saleRepo:       saleRepo,
		inventoryRepo:  inventoryRepo,
		productRepo:    productRepo,
		dailyStockRepo: dailyStockRepo,
		userService:    userService,
		reportCache:    reportCache,
	}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// GetDashboard is the admin dashboard aggregate.
func (s *ReportingService) GetDashboard(ctx context.Context, requestingUserID string) (*domain.DashboardReport, error) {
	if _, err := s.userService.AuthorizeAction(ctx, requestingUserID, domain.ActionViewReports); err != nil {
		return nil, err
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	if cached, ok, err := s.reportCache.Get(ctx, dashboardCacheKey); err != nil {
		logger.Warn("Report cache read failed", slog.String("error", err.Error()))
	} else if ok {
		return cached, nil
	}

	sales, err := s.saleRepo.FindAllSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales for dashboard: %w", err)
	}
	inventory, err := s.inventoryRepo.FindInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory for dashboard: %w", err)
	}
	records, err := s.dailyStockRepo.FindRecordsBetween(ctx, "1970-01-01", time.Now().Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to load stock records for dashboard: %w", err)
	}
	products, err := s.productRepo.FindProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products for dashboard: %w", err)
	}
	productNames := make(map[string]string, len(products))
	for _, p := range products {
		productNames[p.ProductID] = p.Name
	}

	report := buildDashboard(sales, inventory, records, productNames)

	if err := s.reportCache.Set(ctx, dashboardCacheKey, report, dashboardCacheTTL); err != nil {
		logger.Warn("Report cache write failed", slog.String("error", err.Error()))
	}
	return report, nil
}

// buildDashboard aggregates the fetched rows into the dashboard report.
func buildDashboard(sales []domain.Sale, inventory []domain.InventoryRow, records []domain.DailyStockRecord, productNames map[string]string) *domain.DashboardReport {
	report := &domain.DashboardReport{
		TotalRevenue:   decimal.Zero,
		SalesCount:     len(sales),
		RevenueByDate:  []domain.RevenueBucket{},
		TopProducts:    []domain.ProductSalesSummary{},
		Velocity:       []domain.ProductVelocity{},
		AverageMargins: []domain.ProductMargin{},
		PaymentSplit: domain.PaymentSplit{
			Cash:  decimal.Zero,
			Mpesa: decimal.Zero,
		},
	}

	byDate := map[string]decimal.Decimal{}
	type productAgg struct {
		name    string
		units   int
		revenue decimal.Decimal
	}
	byProduct := map[string]*productAgg{}

	for _, sale := range sales {
		report.TotalRevenue = report.TotalRevenue.Add(sale.Total)

		day := sale.SoldAt.Format("2006-01-02")
		byDate[day] = byDate[day].Add(sale.Total)

		agg, ok := byProduct[sale.ProductID]
		if !ok {
			agg = &productAgg{name: sale.ProductName, revenue: decimal.Zero}
			byProduct[sale.ProductID] = agg
		}
		agg.units += sale.Quantity
		agg.revenue = agg.revenue.Add(sale.Total)

		switch sale.PaymentMethod {
		case domain.PaymentCash:
			report.PaymentSplit.Cash = report.PaymentSplit.Cash.Add(sale.Total)
		case domain.PaymentMpesa:
			report.PaymentSplit.Mpesa = report.PaymentSplit.Mpesa.Add(sale.Total)
		}
	}

	for _, row := range inventory {
		if row.IsLowStock() {
			report.LowStockCount++
		}
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		report.RevenueByDate = append(report.RevenueByDate, domain.RevenueBucket{Date: d, Revenue: byDate[d]})
	}

	summaries := make([]domain.ProductSalesSummary, 0, len(byProduct))
	for _, agg := range byProduct {
		summaries = append(summaries, domain.ProductSalesSummary{
			ProductName: agg.name,
			UnitsSold:   agg.units,
			Revenue:     agg.revenue,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].UnitsSold != summaries[j].UnitsSold {
			return summaries[i].UnitsSold > summaries[j].UnitsSold
		}
		return summaries[i].ProductName < summaries[j].ProductName
	})

	for _, summary := range summaries {
		class := domain.SlowMover
		if summary.UnitsSold >= fastMoverUnits {
			class = domain.FastMover
		}
		report.Velocity = append(report.Velocity, domain.ProductVelocity{
			ProductName: summary.ProductName,
			UnitsSold:   summary.UnitsSold,
			Class:       class,
		})
	}

	if len(summaries) > topProductCount {
		summaries = summaries[:topProductCount]
	}
	report.TopProducts = summaries

	report.AverageMargins = averageMargins(records, productNames)

	return report
}

// averageMargins averages recorded profit margins per product across the
// ledger. Rows without a margin are skipped.
func averageMargins(records []domain.DailyStockRecord, productNames map[string]string) []domain.ProductMargin {
	type marginAgg struct {
		sum   decimal.Decimal
		count int64
	}
	byProduct := map[string]*marginAgg{}
	for _, rec := range records {
		if rec.ProfitMargin == nil {
			continue
		}
		agg, ok := byProduct[rec.ProductID]
		if !ok {
			agg = &marginAgg{sum: decimal.Zero}
			byProduct[rec.ProductID] = agg
		}
		agg.sum = agg.sum.Add(*rec.ProfitMargin)
		agg.count++
	}

	margins := make([]domain.ProductMargin, 0, len(byProduct))
	for productID, agg := range byProduct {
		name := productNames[productID]
		if name == "" {
			name = productID
		}
		margins = append(margins, domain.ProductMargin{
			ProductName:   name,
			AverageMargin: agg.sum.Div(decimal.NewFromInt(agg.count)),
		})
	}
	sort.Slice(margins, func(i, j int) bool { return margins[i].ProductName < margins[j].ProductName })
	return margins
}

// GetSalesReport mirrors the legacy sales report.
func (s *ReportingService) GetSalesReport(ctx context.Context, requestingUserID string) (*domain.SalesReport, error) {
	if _, err := s.userService.AuthorizeAction(ctx, requestingUserID, domain.ActionViewReports); err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.FindAllSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales for report: %w", err)
	}

	report := &domain.SalesReport{
		TotalSales:   len(sales),
		TotalRevenue: decimal.Zero,
		ByPayment: domain.PaymentSplit{
			Cash:  decimal.Zero,
			Mpesa: decimal.Zero,
		},
		Sales: sales,
	}
	for _, sale := range sales {
		report.TotalRevenue = report.TotalRevenue.Add(sale.Total)
		switch sale.PaymentMethod {
		case domain.PaymentCash:
			report.ByPayment.Cash = report.ByPayment.Cash.Add(sale.Total)
		case domain.PaymentMpesa:
			report.ByPayment.Mpesa = report.ByPayment.Mpesa.Add(sale.Total)
		}
	}
	return report, nil
}

// GetStockReport mirrors the legacy stock report: every inventory row joined
// with its product.
func (s *ReportingService) GetStockReport(ctx context.Context, requestingUserID string) (*domain.StockReport, error) {
	if _, err := s.userService.AuthorizeAction(ctx, requestingUserID, domain.ActionViewReports); err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products for stock report: %w", err)
	}
	inventory, err := s.inventoryRepo.FindInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory for stock report: %w", err)
	}
	byProduct := make(map[string]domain.InventoryRow, len(inventory))
	for _, row := range inventory {
		byProduct[row.ProductID] = row
	}

	report := &domain.StockReport{Items: make([]domain.StockReportItem, 0, len(products))}
	for _, p := range products {
		row, ok := byProduct[p.ProductID]
		if !ok {
			continue
		}
		report.Items = append(report.Items, domain.StockReportItem{
			Product:   p,
			Inventory: row,
			LowStock:  row.IsLowStock(),
		})
	}
	return report, nil
}

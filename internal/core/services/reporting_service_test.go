package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/apperrors"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	portssvc "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/platform/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockSaleRepo      *MockSaleRepository
	mockInventoryRepo *MockInventoryRepository
	mockProductRepo   *MockProductRepository
	mockStockRepo     *MockDailyStockRepository
	mockUserRepo      *MockUserRepository
	service           portssvc.ReportingSvcFacade
	ctx               context.Context
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockStockRepo = new(MockDailyStockRepository)
	suite.mockUserRepo = new(MockUserRepository)
	userService := services.NewUserService(suite.mockUserRepo)
	suite.service = services.NewReportingService(
		suite.mockSaleRepo,
		suite.mockInventoryRepo,
		suite.mockProductRepo,
		suite.mockStockRepo,
		userService,
		cache.NoopReportCache{},
	)
	suite.ctx = context.Background()
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (suite *ReportingServiceTestSuite) expectRole(userID string, role domain.Role) {
	suite.mockUserRepo.On("FindUserByID", suite.ctx, userID).
		Return(userWithRole(userID, role), nil).Once()
}

func (suite *ReportingServiceTestSuite) expectDashboardFetches(sales []domain.Sale, inventory []domain.InventoryRow, records []domain.DailyStockRecord, products []domain.Product) {
	suite.mockSaleRepo.On("FindAllSales", suite.ctx).Return(sales, nil).Once()
	suite.mockInventoryRepo.On("FindInventory", suite.ctx).Return(inventory, nil).Once()
	suite.mockStockRepo.On("FindRecordsBetween", suite.ctx, "1970-01-01", mock.Anything).
		Return(records, nil).Once()
	suite.mockProductRepo.On("FindProducts", suite.ctx).Return(products, nil).Once()
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_AdminOnly() {
	for _, role := range []domain.Role{domain.RoleViewer, domain.RoleStaff} {
		suite.Run(string(role), func() {
			suite.SetupTest()
			suite.expectRole("caller", role)

			_, err := suite.service.GetDashboard(suite.ctx, "caller")

			suite.ErrorIs(err, apperrors.ErrForbidden)
			suite.mockSaleRepo.AssertNotCalled(suite.T(), "FindAllSales", mock.Anything)
		})
	}
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_Aggregates() {
	suite.expectRole("admin-1", domain.RoleAdmin)

	day1 := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	sales := []domain.Sale{
		{SaleID: "s1", ProductID: "prod-1", ProductName: "Tusker Lager", Quantity: 12,
			Total: decimal.NewFromInt(1200), PaymentMethod: domain.PaymentCash, SoldAt: day1},
		{SaleID: "s2", ProductID: "prod-2", ProductName: "White Cap", Quantity: 4,
			Total: decimal.NewFromInt(800), PaymentMethod: domain.PaymentMpesa, SoldAt: day1},
		{SaleID: "s3", ProductID: "prod-1", ProductName: "Tusker Lager", Quantity: 3,
			Total: decimal.NewFromInt(300), PaymentMethod: domain.PaymentMpesa, SoldAt: day2},
	}
	inventory := []domain.InventoryRow{
		{ProductID: "prod-1", Quantity: 2, LowStockThreshold: 5},
		{ProductID: "prod-2", Quantity: 50, LowStockThreshold: 5},
	}
	margin := decimal.NewFromInt(30)
	records := []domain.DailyStockRecord{
		{ProductID: "prod-1", RecordDate: "2025-06-01", ProfitMargin: &margin},
		{ProductID: "prod-1", RecordDate: "2025-06-02", ProfitMargin: &margin},
		{ProductID: "prod-2", RecordDate: "2025-06-01"},
	}
	products := []domain.Product{
		{ProductID: "prod-1", Name: "Tusker Lager"},
		{ProductID: "prod-2", Name: "White Cap"},
	}
	suite.expectDashboardFetches(sales, inventory, records, products)

	report, err := suite.service.GetDashboard(suite.ctx, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(3, report.SalesCount)
	suite.Equal("2300", report.TotalRevenue.String())
	suite.Equal(1, report.LowStockCount)

	suite.Equal("1200", report.PaymentSplit.Cash.String())
	suite.Equal("1100", report.PaymentSplit.Mpesa.String())

	suite.Require().Len(report.RevenueByDate, 2)
	suite.Equal("2025-06-01", report.RevenueByDate[0].Date)
	suite.Equal("2000", report.RevenueByDate[0].Revenue.String())
	suite.Equal("2025-06-02", report.RevenueByDate[1].Date)
	suite.Equal("300", report.RevenueByDate[1].Revenue.String())

	suite.Require().Len(report.TopProducts, 2)
	suite.Equal("Tusker Lager", report.TopProducts[0].ProductName)
	suite.Equal(15, report.TopProducts[0].UnitsSold)
	suite.Equal("1500", report.TopProducts[0].Revenue.String())
	suite.Equal("White Cap", report.TopProducts[1].ProductName)

	suite.Require().Len(report.Velocity, 2)
	suite.Equal(domain.FastMover, report.Velocity[0].Class)
	suite.Equal(domain.SlowMover, report.Velocity[1].Class)

	suite.Require().Len(report.AverageMargins, 1)
	suite.Equal("Tusker Lager", report.AverageMargins[0].ProductName)
	suite.Equal("30", report.AverageMargins[0].AverageMargin.String())
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_EmptyLedgers() {
	suite.expectRole("admin-1", domain.RoleAdmin)
	suite.expectDashboardFetches(nil, nil, nil, nil)

	report, err := suite.service.GetDashboard(suite.ctx, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(0, report.SalesCount)
	suite.Equal("0", report.TotalRevenue.String())
	suite.Empty(report.RevenueByDate)
	suite.Empty(report.TopProducts)
	suite.Empty(report.Velocity)
	suite.Empty(report.AverageMargins)
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_ServesCachedReport() {
	mockCache := new(MockReportCache)
	userService := services.NewUserService(suite.mockUserRepo)
	service := services.NewReportingService(
		suite.mockSaleRepo, suite.mockInventoryRepo, suite.mockProductRepo,
		suite.mockStockRepo, userService, mockCache)

	suite.expectRole("admin-1", domain.RoleAdmin)
	cached := &domain.DashboardReport{SalesCount: 42}
	mockCache.On("Get", suite.ctx, "reports:dashboard").Return(cached, true, nil).Once()

	report, err := service.GetDashboard(suite.ctx, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(42, report.SalesCount)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "FindAllSales", mock.Anything)
	mockCache.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_CacheMissPopulatesCache() {
	mockCache := new(MockReportCache)
	userService := services.NewUserService(suite.mockUserRepo)
	service := services.NewReportingService(
		suite.mockSaleRepo, suite.mockInventoryRepo, suite.mockProductRepo,
		suite.mockStockRepo, userService, mockCache)

	suite.expectRole("admin-1", domain.RoleAdmin)
	suite.expectDashboardFetches(nil, nil, nil, nil)
	mockCache.On("Get", suite.ctx, "reports:dashboard").Return(nil, false, nil).Once()
	mockCache.On("Set", suite.ctx, "reports:dashboard", mock.Anything, 5*time.Minute).
		Return(nil).Once()

	_, err := service.GetDashboard(suite.ctx, "admin-1")

	suite.Require().NoError(err)
	mockCache.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetSalesReport_Totals() {
	suite.expectRole("admin-1", domain.RoleAdmin)
	sales := []domain.Sale{
		{SaleID: "s1", Total: decimal.NewFromInt(500), PaymentMethod: domain.PaymentCash},
		{SaleID: "s2", Total: decimal.NewFromInt(100), PaymentMethod: domain.PaymentMpesa},
	}
	suite.mockSaleRepo.On("FindAllSales", suite.ctx).Return(sales, nil).Once()

	report, err := suite.service.GetSalesReport(suite.ctx, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(2, report.TotalSales)
	suite.Equal("600", report.TotalRevenue.String())
	suite.Equal("500", report.ByPayment.Cash.String())
	suite.Equal("100", report.ByPayment.Mpesa.String())
	suite.Len(report.Sales, 2)
}

func (suite *ReportingServiceTestSuite) TestGetStockReport_JoinsInventory() {
	suite.expectRole("admin-1", domain.RoleAdmin)
	products := []domain.Product{
		{ProductID: "prod-1", Name: "Tusker Lager"},
		{ProductID: "prod-2", Name: "White Cap"},
	}
	inventory := []domain.InventoryRow{
		{ProductID: "prod-1", Quantity: 3, LowStockThreshold: 5},
		{ProductID: "prod-2", Quantity: 40, LowStockThreshold: 5},
	}
	suite.mockProductRepo.On("FindProducts", suite.ctx).Return(products, nil).Once()
	suite.mockInventoryRepo.On("FindInventory", suite.ctx).Return(inventory, nil).Once()

	report, err := suite.service.GetStockReport(suite.ctx, "admin-1")

	suite.Require().NoError(err)
	suite.Require().Len(report.Items, 2)
	suite.True(report.Items[0].LowStock)
	suite.False(report.Items[1].LowStock)
}

func (suite *ReportingServiceTestSuite) TestGetStockReport_StaffDenied() {
	suite.expectRole("staff-1", domain.RoleStaff)

	_, err := suite.service.GetStockReport(suite.ctx, "staff-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

package services_test

import (
	"context"
	"testing"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/apperrors"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	portssvc "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/platform/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DailyStockServiceTestSuite struct {
	suite.Suite
	mockStockRepo     *MockDailyStockRepository
	mockProductRepo   *MockProductRepository
	mockInventoryRepo *MockInventoryRepository
	mockUserRepo      *MockUserRepository
	service           portssvc.DailyStockSvcFacade
	ctx               context.Context
}

func (suite *DailyStockServiceTestSuite) SetupTest() {
	suite.mockStockRepo = new(MockDailyStockRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.mockUserRepo = new(MockUserRepository)
	userService := services.NewUserService(suite.mockUserRepo)
	suite.service = services.NewDailyStockService(
		suite.mockStockRepo,
		suite.mockProductRepo,
		suite.mockInventoryRepo,
		userService,
		cache.NoopReportCache{},
	)
	suite.ctx = context.Background()
}

func TestDailyStockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DailyStockServiceTestSuite))
}

func (suite *DailyStockServiceTestSuite) expectRole(userID string, role domain.Role) {
	suite.mockUserRepo.On("FindUserByID", suite.ctx, userID).
		Return(userWithRole(userID, role), nil).Once()
}

func (suite *DailyStockServiceTestSuite) TestGetDay_EmptyDate() {
	suite.mockStockRepo.On("FindRecordsByDate", suite.ctx, "2025-06-01").
		Return([]domain.DailyStockRecord{}, nil).Once()

	status, records, products, err := suite.service.GetDay(suite.ctx, "2025-06-01")

	suite.Require().NoError(err)
	suite.Equal(domain.DayStatusEmpty, status)
	suite.Empty(records)
	suite.Empty(products)
}

func (suite *DailyStockServiceTestSuite) TestGetDay_InvalidDate() {
	_, _, _, err := suite.service.GetDay(suite.ctx, "June 1st")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockStockRepo.AssertNotCalled(suite.T(), "FindRecordsByDate", mock.Anything, mock.Anything)
}

func (suite *DailyStockServiceTestSuite) TestGetDay_DraftWithProductJoin() {
	records := []domain.DailyStockRecord{
		{RecordID: "rec-1", RecordDate: "2025-06-01", ProductID: "prod-1", Status: domain.DayStatusDraft},
	}
	products := []domain.Product{
		{ProductID: "prod-1", Name: "Tusker Lager", SellingPrice: decimal.NewFromInt(250)},
	}
	suite.mockStockRepo.On("FindRecordsByDate", suite.ctx, "2025-06-01").Return(records, nil).Once()
	suite.mockProductRepo.On("FindProducts", suite.ctx).Return(products, nil).Once()

	status, got, productMap, err := suite.service.GetDay(suite.ctx, "2025-06-01")

	suite.Require().NoError(err)
	suite.Equal(domain.DayStatusDraft, status)
	suite.Len(got, 1)
	suite.Equal("Tusker Lager", productMap["prod-1"].Name)
}

func (suite *DailyStockServiceTestSuite) TestInitializeDay_SeedsOpeningFromInventory() {
	suite.expectRole("staff-1", domain.RoleStaff)
	products := []domain.Product{
		{ProductID: "prod-1", Name: "Tusker Lager", Active: true},
		{ProductID: "prod-2", Name: "White Cap", Active: true},
	}
	inventory := []domain.InventoryRow{
		{ProductID: "prod-1", Quantity: 20},
	}
	suite.mockProductRepo.On("FindActiveProducts", suite.ctx).Return(products, nil).Once()
	suite.mockInventoryRepo.On("FindInventory", suite.ctx).Return(inventory, nil).Once()
	suite.mockStockRepo.On("InsertDayRecords", suite.ctx, mock.MatchedBy(func(recs []domain.DailyStockRecord) bool {
		if len(recs) != 2 {
			return false
		}
		byProduct := map[string]domain.DailyStockRecord{}
		for _, r := range recs {
			byProduct[r.ProductID] = r
		}
		return byProduct["prod-1"].OpeningStock == 20 &&
			byProduct["prod-2"].OpeningStock == 0 &&
			byProduct["prod-1"].Status == domain.DayStatusDraft &&
			byProduct["prod-1"].RecordDate == "2025-06-01"
	})).Return(nil).Once()

	records, err := suite.service.InitializeDay(suite.ctx, "staff-1", "2025-06-01")

	suite.Require().NoError(err)
	suite.Len(records, 2)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *DailyStockServiceTestSuite) TestInitializeDay_ViewerDenied() {
	suite.expectRole("viewer-1", domain.RoleViewer)

	_, err := suite.service.InitializeDay(suite.ctx, "viewer-1", "2025-06-01")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockStockRepo.AssertNotCalled(suite.T(), "InsertDayRecords", mock.Anything, mock.Anything)
}

func (suite *DailyStockServiceTestSuite) TestInitializeDay_AlreadyInitialized() {
	suite.expectRole("staff-1", domain.RoleStaff)
	products := []domain.Product{{ProductID: "prod-1", Active: true}}
	suite.mockProductRepo.On("FindActiveProducts", suite.ctx).Return(products, nil).Once()
	suite.mockInventoryRepo.On("FindInventory", suite.ctx).Return([]domain.InventoryRow{}, nil).Once()
	suite.mockStockRepo.On("InsertDayRecords", suite.ctx, mock.Anything).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.InitializeDay(suite.ctx, "staff-1", "2025-06-01")

	suite.ErrorIs(err, apperrors.ErrStateConflict)
}

func (suite *DailyStockServiceTestSuite) TestInitializeDay_NoActiveProducts() {
	suite.expectRole("staff-1", domain.RoleStaff)
	suite.mockProductRepo.On("FindActiveProducts", suite.ctx).Return([]domain.Product{}, nil).Once()

	_, err := suite.service.InitializeDay(suite.ctx, "staff-1", "2025-06-01")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DailyStockServiceTestSuite) TestUpdateCell_Success() {
	suite.expectRole("staff-1", domain.RoleStaff)
	suite.mockStockRepo.On("UpdateRecordField", suite.ctx, "rec-1", domain.FieldClosingStock, 5, "staff-1", mock.Anything).
		Return(nil).Once()

	err := suite.service.UpdateCell(suite.ctx, "staff-1", "rec-1", domain.FieldClosingStock, 5)

	suite.Require().NoError(err)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *DailyStockServiceTestSuite) TestUpdateCell_UnknownField() {
	suite.expectRole("staff-1", domain.RoleStaff)

	err := suite.service.UpdateCell(suite.ctx, "staff-1", "rec-1", domain.StockField("stolen_stock"), 5)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockStockRepo.AssertNotCalled(suite.T(), "UpdateRecordField",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DailyStockServiceTestSuite) TestUpdateCell_NegativeValue() {
	suite.expectRole("staff-1", domain.RoleStaff)

	err := suite.service.UpdateCell(suite.ctx, "staff-1", "rec-1", domain.FieldOpeningStock, -1)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DailyStockServiceTestSuite) TestUpdateCell_ViewerDenied() {
	suite.expectRole("viewer-1", domain.RoleViewer)

	err := suite.service.UpdateCell(suite.ctx, "viewer-1", "rec-1", domain.FieldAddedStock, 10)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *DailyStockServiceTestSuite) TestUpdateCell_PublishedRowConflict() {
	suite.expectRole("staff-1", domain.RoleStaff)
	suite.mockStockRepo.On("UpdateRecordField", suite.ctx, "rec-1", domain.FieldClosingStock, 5, "staff-1", mock.Anything).
		Return(apperrors.ErrStateConflict).Once()

	err := suite.service.UpdateCell(suite.ctx, "staff-1", "rec-1", domain.FieldClosingStock, 5)

	suite.ErrorIs(err, apperrors.ErrStateConflict)
}

func (suite *DailyStockServiceTestSuite) TestPublishDay_AdminOnly() {
	for _, role := range []domain.Role{domain.RoleViewer, domain.RoleStaff} {
		suite.Run(string(role), func() {
			suite.SetupTest()
			suite.expectRole("caller", role)

			err := suite.service.PublishDay(suite.ctx, "caller", "2025-06-01")

			suite.ErrorIs(err, apperrors.ErrForbidden)
			suite.mockStockRepo.AssertNotCalled(suite.T(), "PublishDay",
				mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func (suite *DailyStockServiceTestSuite) TestPublishDay_Success() {
	suite.expectRole("admin-1", domain.RoleAdmin)
	records := []domain.DailyStockRecord{
		{RecordID: "rec-1", RecordDate: "2025-06-01", ProductID: "prod-1", Status: domain.DayStatusDraft},
	}
	suite.mockStockRepo.On("FindRecordsByDate", suite.ctx, "2025-06-01").Return(records, nil).Once()
	suite.mockStockRepo.On("PublishDay", suite.ctx, "2025-06-01", "admin-1", mock.Anything).
		Return(nil).Once()

	err := suite.service.PublishDay(suite.ctx, "admin-1", "2025-06-01")

	suite.Require().NoError(err)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *DailyStockServiceTestSuite) TestPublishDay_NotInitialized() {
	suite.expectRole("admin-1", domain.RoleAdmin)
	suite.mockStockRepo.On("FindRecordsByDate", suite.ctx, "2025-06-01").
		Return([]domain.DailyStockRecord{}, nil).Once()

	err := suite.service.PublishDay(suite.ctx, "admin-1", "2025-06-01")

	suite.ErrorIs(err, apperrors.ErrStateConflict)
}

func (suite *DailyStockServiceTestSuite) TestPublishDay_AlreadyPublished() {
	suite.expectRole("admin-1", domain.RoleAdmin)
	records := []domain.DailyStockRecord{
		{RecordID: "rec-1", RecordDate: "2025-06-01", Status: domain.DayStatusPublished},
	}
	suite.mockStockRepo.On("FindRecordsByDate", suite.ctx, "2025-06-01").Return(records, nil).Once()

	err := suite.service.PublishDay(suite.ctx, "admin-1", "2025-06-01")

	suite.ErrorIs(err, apperrors.ErrStateConflict)
	suite.mockStockRepo.AssertNotCalled(suite.T(), "PublishDay",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DailyStockServiceTestSuite) TestPublishDay_InvalidatesReportCache() {
	mockCache := new(MockReportCache)
	userService := services.NewUserService(suite.mockUserRepo)
	service := services.NewDailyStockService(
		suite.mockStockRepo, suite.mockProductRepo, suite.mockInventoryRepo, userService, mockCache)

	suite.expectRole("admin-1", domain.RoleAdmin)
	records := []domain.DailyStockRecord{
		{RecordID: "rec-1", RecordDate: "2025-06-01", Status: domain.DayStatusDraft},
	}
	suite.mockStockRepo.On("FindRecordsByDate", suite.ctx, "2025-06-01").Return(records, nil).Once()
	suite.mockStockRepo.On("PublishDay", suite.ctx, "2025-06-01", "admin-1", mock.Anything).
		Return(nil).Once()
	mockCache.On("Delete", suite.ctx, "reports:dashboard").Return(nil).Once()

	err := service.PublishDay(suite.ctx, "admin-1", "2025-06-01")

	suite.Require().NoError(err)
	mockCache.AssertExpectations(suite.T())
}

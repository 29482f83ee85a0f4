package services_test

import (
	"context"
	"testing"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/apperrors"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	portssvc "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo    *MockSaleRepository
	mockProductRepo *MockProductRepository
	mockUserRepo    *MockUserRepository
	mockCache       *MockReportCache
	service         portssvc.SaleSvcFacade
	ctx             context.Context
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCache = new(MockReportCache)
	userService := services.NewUserService(suite.mockUserRepo)
	suite.service = services.NewSaleService(
		suite.mockSaleRepo, suite.mockProductRepo, userService, suite.mockCache)
	suite.ctx = context.Background()
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}

func (suite *SaleServiceTestSuite) expectRole(userID string, role domain.Role) {
	suite.mockUserRepo.On("FindUserByID", suite.ctx, userID).
		Return(userWithRole(userID, role), nil).Once()
}

func (suite *SaleServiceTestSuite) TestRecordSale_SnapshotsPriceAndName() {
	suite.expectRole("staff-1", domain.RoleStaff)
	product := &domain.Product{
		ProductID:    "prod-1",
		Name:         "Tusker Lager",
		SellingPrice: decimal.NewFromInt(100),
		Active:       true,
	}
	suite.mockProductRepo.On("FindProductByID", suite.ctx, "prod-1").Return(product, nil).Once()
	suite.mockSaleRepo.On("SaveSaleAndDecrement", suite.ctx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.ProductID == "prod-1" &&
			s.ProductName == "Tusker Lager" &&
			s.Quantity == 3 &&
			s.UnitPrice.Equal(decimal.NewFromInt(100)) &&
			s.Total.Equal(decimal.NewFromInt(300)) &&
			s.PaymentMethod == domain.PaymentCash &&
			s.SoldBy == "staff-1"
	})).Return(nil).Once()
	suite.mockCache.On("Delete", suite.ctx, "reports:dashboard").Return(nil).Once()

	sale, err := suite.service.RecordSale(suite.ctx, "staff-1", dto.CreateSaleRequest{
		ProductID:     "prod-1",
		Quantity:      3,
		PaymentMethod: "CASH",
	})

	suite.Require().NoError(err)
	suite.Equal(decimal.NewFromInt(300).String(), sale.Total.String())
	suite.NotEmpty(sale.SaleID)
	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestRecordSale_ViewerDenied() {
	suite.expectRole("viewer-1", domain.RoleViewer)

	_, err := suite.service.RecordSale(suite.ctx, "viewer-1", dto.CreateSaleRequest{
		ProductID:     "prod-1",
		Quantity:      1,
		PaymentMethod: "CASH",
	})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSaleAndDecrement", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestRecordSale_UnknownPaymentMethod() {
	suite.expectRole("staff-1", domain.RoleStaff)

	_, err := suite.service.RecordSale(suite.ctx, "staff-1", dto.CreateSaleRequest{
		ProductID:     "prod-1",
		Quantity:      1,
		PaymentMethod: "BARTER",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "FindProductByID", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestRecordSale_NonPositiveQuantity() {
	suite.expectRole("staff-1", domain.RoleStaff)

	_, err := suite.service.RecordSale(suite.ctx, "staff-1", dto.CreateSaleRequest{
		ProductID:     "prod-1",
		Quantity:      0,
		PaymentMethod: "MPESA",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SaleServiceTestSuite) TestRecordSale_UnknownProduct() {
	suite.expectRole("staff-1", domain.RoleStaff)
	suite.mockProductRepo.On("FindProductByID", suite.ctx, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordSale(suite.ctx, "staff-1", dto.CreateSaleRequest{
		ProductID:     "missing",
		Quantity:      1,
		PaymentMethod: "CASH",
	})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SaleServiceTestSuite) TestRecordSale_InsufficientStock() {
	suite.expectRole("staff-1", domain.RoleStaff)
	product := &domain.Product{
		ProductID:    "prod-1",
		Name:         "Tusker Lager",
		SellingPrice: decimal.NewFromInt(100),
	}
	suite.mockProductRepo.On("FindProductByID", suite.ctx, "prod-1").Return(product, nil).Once()
	suite.mockSaleRepo.On("SaveSaleAndDecrement", suite.ctx, mock.Anything).
		Return(apperrors.ErrInsufficientStock).Once()

	_, err := suite.service.RecordSale(suite.ctx, "staff-1", dto.CreateSaleRequest{
		ProductID:     "prod-1",
		Quantity:      50,
		PaymentMethod: "CASH",
	})

	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.mockCache.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestRecordSale_CacheDeleteFailureDoesNotFailSale() {
	suite.expectRole("staff-1", domain.RoleStaff)
	product := &domain.Product{
		ProductID:    "prod-1",
		Name:         "Tusker Lager",
		SellingPrice: decimal.NewFromInt(100),
	}
	suite.mockProductRepo.On("FindProductByID", suite.ctx, "prod-1").Return(product, nil).Once()
	suite.mockSaleRepo.On("SaveSaleAndDecrement", suite.ctx, mock.Anything).Return(nil).Once()
	suite.mockCache.On("Delete", suite.ctx, "reports:dashboard").
		Return(apperrors.ErrNotFound).Once()

	sale, err := suite.service.RecordSale(suite.ctx, "staff-1", dto.CreateSaleRequest{
		ProductID:     "prod-1",
		Quantity:      1,
		PaymentMethod: "MPESA",
	})

	suite.Require().NoError(err)
	suite.NotNil(sale)
}

func (suite *SaleServiceTestSuite) TestListSales_Delegates() {
	sales := []domain.Sale{{SaleID: "sale-1"}}
	suite.mockSaleRepo.On("FindSales", suite.ctx, 50, 0).Return(sales, nil).Once()

	got, err := suite.service.ListSales(suite.ctx, 50, 0)

	suite.Require().NoError(err)
	suite.Len(got, 1)
}

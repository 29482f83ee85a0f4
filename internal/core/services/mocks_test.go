package services_test

import (
	"context"
	"time"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepositoryFacade ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

func (m *MockUserRepository) IsEmailAllowed(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AddAllowedEmail(ctx context.Context, entry domain.AllowedEmail) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockUserRepository) SaveLoginEvent(ctx context.Context, event domain.LoginEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockUserRepository) FindLoginEvents(ctx context.Context, limit int) ([]domain.LoginEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoginEvent), args.Error(1)
}

// --- Mock ProductRepositoryFacade ---

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindActiveProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProductWithInventory(ctx context.Context, product domain.Product, inventory domain.InventoryRow) error {
	args := m.Called(ctx, product, inventory)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// --- Mock InventoryRepositoryFacade ---

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindInventoryByProductID(ctx context.Context, productID string) (*domain.InventoryRow, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryRow), args.Error(1)
}

func (m *MockInventoryRepository) FindInventory(ctx context.Context) ([]domain.InventoryRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryRow), args.Error(1)
}

func (m *MockInventoryRepository) UpdateInventory(ctx context.Context, row domain.InventoryRow) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

// --- Mock DailyStockRepositoryFacade ---

type MockDailyStockRepository struct {
	mock.Mock
}

func (m *MockDailyStockRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.DailyStockRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyStockRecord), args.Error(1)
}

func (m *MockDailyStockRepository) FindRecordsByDate(ctx context.Context, date string) ([]domain.DailyStockRecord, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyStockRecord), args.Error(1)
}

func (m *MockDailyStockRepository) FindRecordsBetween(ctx context.Context, fromDate, toDate string) ([]domain.DailyStockRecord, error) {
	args := m.Called(ctx, fromDate, toDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyStockRecord), args.Error(1)
}

func (m *MockDailyStockRepository) InsertDayRecords(ctx context.Context, records []domain.DailyStockRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockDailyStockRepository) UpdateRecordField(ctx context.Context, recordID string, field domain.StockField, value int, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, recordID, field, value, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockDailyStockRepository) PublishDay(ctx context.Context, date string, publishedBy string, publishedAt time.Time) error {
	args := m.Called(ctx, date, publishedBy, publishedAt)
	return args.Error(0)
}

// --- Mock SaleRepositoryFacade ---

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindAllSales(ctx context.Context) ([]domain.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) SaveSaleAndDecrement(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

// --- Mock ReportCache ---

type MockReportCache struct {
	mock.Mock
}

func (m *MockReportCache) Get(ctx context.Context, key string) (*domain.DashboardReport, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.DashboardReport), args.Bool(1), args.Error(2)
}

func (m *MockReportCache) Set(ctx context.Context, key string, value *domain.DashboardReport, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockReportCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// --- Test helpers ---

// rolePtr returns a pointer to the given role, for building directory users.
func rolePtr(r domain.Role) *domain.Role {
	return &r
}

// userWithRole builds a directory entry holding the given role.
func userWithRole(userID string, role domain.Role) *domain.User {
	return &domain.User{
		UserID: userID,
		Email:  userID + "@example.com",
		Name:   "Test User",
		Role:   rolePtr(role),
	}
}

package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/sangkips/electrostore-api/internal/domain/enum"
	"github.com/sangkips/electrostore-api/internal/domain/report"
	"github.com/sangkips/electrostore-api/internal/domain/repository"
	"github.com/sangkips/electrostore-api/pkg/pagination"
	"github.com/stretchr/testify/mock"
)

// MockAnalyticsRepository is a mock implementation of repository.AnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) Aggregate(ctx context.Context, criteria report.Criteria) (*report.Aggregates, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Aggregates), args.Error(1)
}

func (m *MockAnalyticsRepository) DailySales(ctx context.Context, r report.DateRange) ([]report.DailySales, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.DailySales), args.Error(1)
}

// MockSalesReportRepository is a mock implementation of repository.SalesReportRepository
type MockSalesReportRepository struct {
	mock.Mock
}

func (m *MockSalesReportRepository) Create(ctx context.Context, r *entity.SalesReport) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockSalesReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SalesReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SalesReport), args.Error(1)
}

func (m *MockSalesReportRepository) Update(ctx context.Context, r *entity.SalesReport) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockSalesReportRepository) ListByAdmin(ctx context.Context, adminID uuid.UUID, params *pagination.PaginationParams) ([]entity.SalesReport, int64, error) {
	args := m.Called(ctx, adminID, params)
	return args.Get(0).([]entity.SalesReport), args.Get(1).(int64), args.Error(2)
}

// MockCustomerRepository is a mock implementation of repository.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) CreateWithCredential(ctx context.Context, customer *entity.Customer, credential *entity.Credential) error {
	args := m.Called(ctx, customer, credential)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// MockAdminRepository is a mock implementation of repository.AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) CreateWithCredential(ctx context.Context, admin *entity.Admin, credential *entity.Credential) error {
	args := m.Called(ctx, admin, credential)
	return args.Error(0)
}

func (m *MockAdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

// MockCredentialRepository is a mock implementation of repository.CredentialRepository
type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) GetByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Credential), args.Error(1)
}

func (m *MockCredentialRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockCredentialRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

func (m *MockCredentialRepository) TouchLogin(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of repository.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]entity.Product), args.Get(1).(int64), args.Error(2)
}

// MockOrderRepository is a mock implementation of repository.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) PlaceOrder(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.Order, int64, error) {
	args := m.Called(ctx, customerID, params)
	return args.Get(0).([]entity.Order), args.Get(1).(int64), args.Error(2)
}

// MockShipmentRepository is a mock implementation of repository.ShipmentRepository
type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) TrackByOrderID(ctx context.Context, orderID uuid.UUID) (*repository.TrackingResult, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TrackingResult), args.Error(1)
}

func (m *MockShipmentRepository) TrackByContact(ctx context.Context, query repository.ContactQuery) ([]repository.TrackingResult, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]repository.TrackingResult), args.Error(1)
}

func (m *MockShipmentRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]repository.TrackingResult, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]repository.TrackingResult), args.Error(1)
}

func (m *MockShipmentRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status enum.ShipmentStatus) (bool, error) {
	args := m.Called(ctx, orderID, status)
	return args.Bool(0), args.Error(1)
}

// MockNotificationRepository is a mock implementation of repository.NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.Notification, int64, error) {
	args := m.Called(ctx, customerID, params)
	return args.Get(0).([]entity.Notification), args.Get(1).(int64), args.Error(2)
}

// MockProductCache is a mock implementation of cache.ProductCache
type MockProductCache struct {
	mock.Mock
}

func (m *MockProductCache) Get(ctx context.Context, id uuid.UUID) (*entity.Product, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entity.Product), args.Bool(1), args.Error(2)
}

func (m *MockProductCache) Set(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

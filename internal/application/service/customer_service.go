package service

import (
	"context"
	"strings"

	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/sangkips/electrostore-api/internal/domain/repository"
	"github.com/sangkips/electrostore-api/internal/domain/session"
	"github.com/sangkips/electrostore-api/pkg/apperror"
	"github.com/sangkips/electrostore-api/pkg/pagination"
)

// CustomerService serves a signed-in customer's own data
type CustomerService struct {
	customerRepo     repository.CustomerRepository
	orderRepo        repository.OrderRepository
	shipmentRepo     repository.ShipmentRepository
	notificationRepo repository.NotificationRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	shipmentRepo repository.ShipmentRepository,
	notificationRepo repository.NotificationRepository,
) *CustomerService {
	return &CustomerService{
		customerRepo:     customerRepo,
		orderRepo:        orderRepo,
		shipmentRepo:     shipmentRepo,
		notificationRepo: notificationRepo,
	}
}

// GetProfile returns the session's customer
func (s *CustomerService) GetProfile(ctx context.Context, sess session.Session) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, sess.SubjectID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateProfileInput represents the editable profile fields
type UpdateProfileInput struct {
	Name    *string
	Phone   *string
	Address *string
}

// UpdateProfile changes the customer's contact details
func (s *CustomerService) UpdateProfile(ctx context.Context, sess session.Session, input *UpdateProfileInput) (*entity.Customer, error) {
	customer, err := s.GetProfile(ctx, sess)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewFieldError("name", "name must not be empty")
		}
		customer.Name = name
	}
	if input.Phone != nil {
		customer.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Address != nil {
		customer.Address = input.Address
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// ListOrders returns the customer's orders, newest first
func (s *CustomerService) ListOrders(ctx context.Context, sess session.Session, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Order], error) {
	params = validPage(params)
	orders, total, err := s.orderRepo.ListByCustomer(ctx, sess.SubjectID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(orders, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListShipments returns the tracking state of every order of the customer
func (s *CustomerService) ListShipments(ctx context.Context, sess session.Session) ([]repository.TrackingResult, error) {
	return s.shipmentRepo.ListByCustomer(ctx, sess.SubjectID)
}

// ListNotifications returns the customer's notifications, newest first
func (s *CustomerService) ListNotifications(ctx context.Context, sess session.Session, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Notification], error) {
	params = validPage(params)
	notifications, total, err := s.notificationRepo.ListByCustomer(ctx, sess.SubjectID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(notifications, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

func validPage(params *pagination.PaginationParams) *pagination.PaginationParams {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()
	return params
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/sangkips/electrostore-api/internal/domain/enum"
	"github.com/sangkips/electrostore-api/internal/domain/repository"
	"github.com/sangkips/electrostore-api/pkg/apperror"
	"go.uber.org/zap"
)

// TrackingService handles shipment lookups and status changes
type TrackingService struct {
	shipmentRepo     repository.ShipmentRepository
	notificationRepo repository.NotificationRepository
	logger           *zap.Logger
}

// NewTrackingService creates a new tracking service
func NewTrackingService(shipmentRepo repository.ShipmentRepository, notificationRepo repository.NotificationRepository, logger *zap.Logger) *TrackingService {
	return &TrackingService{
		shipmentRepo:     shipmentRepo,
		notificationRepo: notificationRepo,
		logger:           logger.Named("tracking"),
	}
}

// TrackByOrderID returns the shipment of an order
func (s *TrackingService) TrackByOrderID(ctx context.Context, orderID uuid.UUID) (*repository.TrackingResult, error) {
	result, err := s.shipmentRepo.TrackByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return result, nil
}

// TrackByContactInput identifies a customer without an order id
type TrackByContactInput struct {
	Name  string
	Email string
	Phone string
}

// TrackByContact finds every order of the customer matching name and email
// or phone, newest first
func (s *TrackingService) TrackByContact(ctx context.Context, input *TrackByContactInput) ([]repository.TrackingResult, error) {
	query := repository.ContactQuery{
		Name:  strings.TrimSpace(input.Name),
		Email: strings.TrimSpace(input.Email),
		Phone: strings.TrimSpace(input.Phone),
	}
	if query.Name == "" {
		return nil, apperror.NewFieldError("name", "name is required")
	}
	if query.Email == "" && query.Phone == "" {
		return nil, apperror.NewFieldError("email", "email or phone is required")
	}

	results, err := s.shipmentRepo.TrackByContact(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, apperror.NewNotFoundError("Order")
	}
	return results, nil
}

// UpdateShipmentStatus moves a shipment to a new status and notifies the
// customer
func (s *TrackingService) UpdateShipmentStatus(ctx context.Context, orderID uuid.UUID, status string) (*repository.TrackingResult, error) {
	parsed, err := enum.ParseShipmentStatus(status)
	if err != nil {
		return nil, apperror.NewFieldError("status", "status must be one of pending, shipped, out_for_delivery, delivered, cancelled")
	}

	updated, err := s.shipmentRepo.UpdateStatus(ctx, orderID, parsed)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperror.NewNotFoundError("Shipment")
	}

	result, err := s.shipmentRepo.TrackByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, apperror.NewNotFoundError("Shipment")
	}

	s.logger.Info("shipment status updated", zap.String("order_id", orderID.String()), zap.String("status", parsed.String()))

	if err := s.notificationRepo.Create(ctx, &entity.Notification{
		CustomerID: result.CustomerID,
		Type:       entity.NotificationShipmentUpdate,
		Content:    fmt.Sprintf("Your order %s is now %s", orderID, strings.ReplaceAll(parsed.String(), "_", " ")),
	}); err != nil {
		s.logger.Warn("failed to record shipment notification", zap.String("order_id", orderID.String()), zap.Error(err))
	}

	return result, nil
}

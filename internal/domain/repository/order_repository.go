package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/sangkips/electrostore-api/internal/domain/enum"
	"github.com/sangkips/electrostore-api/pkg/pagination"
)

// InsufficientStockError is returned when an order cannot be covered by stock
type InsufficientStockError struct {
	ProductIDs []uuid.UUID
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %d product(s)", len(e.ProductIDs))
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// PlaceOrder decrements stock for every item and persists the order with
	// its items, payment, shipment and invoice in one transaction.
	// Returns *InsufficientStockError when any item is short; nothing is written then.
	PlaceOrder(ctx context.Context, order *entity.Order) error
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.Order, int64, error)
}

// TrackingResult is the public view of an order's shipment
type TrackingResult struct {
	OrderID        uuid.UUID           `json:"order_id"`
	CustomerID     uuid.UUID           `json:"-"`
	OrderDate      time.Time           `json:"order_date"`
	TrackingNumber string              `json:"tracking_number"`
	Status         enum.ShipmentStatus `json:"status"`
}

// ContactQuery looks up orders by customer name plus email and/or phone
type ContactQuery struct {
	Name  string
	Email string
	Phone string
}

// ShipmentRepository defines the interface for shipment tracking operations
type ShipmentRepository interface {
	TrackByOrderID(ctx context.Context, orderID uuid.UUID) (*TrackingResult, error)
	// TrackByContact matches name AND (email OR phone), newest orders first
	TrackByContact(ctx context.Context, query ContactQuery) ([]TrackingResult, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]TrackingResult, error)
	// UpdateStatus returns false when the order has no shipment
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status enum.ShipmentStatus) (bool, error)
}

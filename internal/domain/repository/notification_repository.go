package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/sangkips/electrostore-api/pkg/pagination"
)

// NotificationRepository defines the interface for customer notifications
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.Notification, int64, error)
}

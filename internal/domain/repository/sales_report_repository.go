package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/sangkips/electrostore-api/pkg/pagination"
)

// SalesReportRepository defines the interface for saved sales reports
type SalesReportRepository interface {
	Create(ctx context.Context, report *entity.SalesReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SalesReport, error)
	Update(ctx context.Context, report *entity.SalesReport) error
	ListByAdmin(ctx context.Context, adminID uuid.UUID, params *pagination.PaginationParams) ([]entity.SalesReport, int64, error)
}

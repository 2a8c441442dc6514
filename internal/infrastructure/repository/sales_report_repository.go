package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
	domainRepo "github.com/sangkips/electrostore-api/internal/domain/repository"
	"github.com/sangkips/electrostore-api/pkg/pagination"
	"gorm.io/gorm"
)

type salesReportRepository struct {
	db *gorm.DB
}

// NewSalesReportRepository creates a new sales report repository
func NewSalesReportRepository(db *gorm.DB) domainRepo.SalesReportRepository {
	return &salesReportRepository{db: db}
}

func (r *salesReportRepository) Create(ctx context.Context, report *entity.SalesReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *salesReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SalesReport, error) {
	var report entity.SalesReport
	err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &report, err
}

func (r *salesReportRepository) Update(ctx context.Context, report *entity.SalesReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}

func (r *salesReportRepository) ListByAdmin(ctx context.Context, adminID uuid.UUID, params *pagination.PaginationParams) ([]entity.SalesReport, int64, error) {
	var reports []entity.SalesReport
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SalesReport{}).Where("admin_id = ?", adminID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("generated_at DESC").
		Find(&reports).Error

	return reports, total, err
}

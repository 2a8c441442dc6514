package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/sangkips/electrostore-api/internal/domain/enum"
	domainRepo "github.com/sangkips/electrostore-api/internal/domain/repository"
	"gorm.io/gorm"
)

const trackingColumns = "o.id AS order_id, o.customer_id AS customer_id, o.order_date AS order_date, " +
	"s.tracking_number AS tracking_number, s.status AS status"

type shipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository creates a new shipment repository
func NewShipmentRepository(db *gorm.DB) domainRepo.ShipmentRepository {
	return &shipmentRepository{db: db}
}

func (r *shipmentRepository) tracking(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("orders o").
		Joins("JOIN shipments s ON s.order_id = o.id").
		Where("o.deleted_at IS NULL").
		Select(trackingColumns)
}

func (r *shipmentRepository) TrackByOrderID(ctx context.Context, orderID uuid.UUID) (*domainRepo.TrackingResult, error) {
	var results []domainRepo.TrackingResult
	err := r.tracking(ctx).
		Where("o.id = ?", orderID).
		Limit(1).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

func (r *shipmentRepository) TrackByContact(ctx context.Context, q domainRepo.ContactQuery) ([]domainRepo.TrackingResult, error) {
	var contact []string
	var args []any
	if q.Email != "" {
		contact = append(contact, "LOWER(c.email) = ?")
		args = append(args, strings.ToLower(q.Email))
	}
	if q.Phone != "" {
		contact = append(contact, "c.phone = ?")
		args = append(args, q.Phone)
	}
	if len(contact) == 0 {
		return []domainRepo.TrackingResult{}, nil
	}

	results := []domainRepo.TrackingResult{}
	err := r.tracking(ctx).
		Joins("JOIN customers c ON c.id = o.customer_id").
		Where("LOWER(c.name) = ?", strings.ToLower(strings.TrimSpace(q.Name))).
		Where("("+strings.Join(contact, " OR ")+")", args...).
		Order("o.order_date DESC").
		Scan(&results).Error
	return results, err
}

func (r *shipmentRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domainRepo.TrackingResult, error) {
	results := []domainRepo.TrackingResult{}
	err := r.tracking(ctx).
		Where("o.customer_id = ?", customerID).
		Order("o.order_date DESC").
		Scan(&results).Error
	return results, err
}

func (r *shipmentRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status enum.ShipmentStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.Shipment{}).
		Where("order_id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}


package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Shipment tracks delivery of an order
type Shipment struct {
	ID             uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	OrderID        uuid.UUID           `gorm:"type:uuid;uniqueIndex;not null" json:"order_id"`
	TrackingNumber string              `gorm:"size:64;uniqueIndex;not null" json:"tracking_number"`
	Status         enum.ShipmentStatus `gorm:"default:0" json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new shipment
func (s *Shipment) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Shipment model
func (Shipment) TableName() string {
	return "shipments"
}

package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Payment statuses
const (
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment records how an order was paid
type Payment struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID          `gorm:"type:uuid;uniqueIndex;not null" json:"order_id"`
	Method    enum.PaymentMethod `gorm:"default:0" json:"method"`
	Amount    int64              `gorm:"not null" json:"-"` // Stored in cents
	Status    string             `gorm:"size:50;not null" json:"status"`
	PaidAt    time.Time          `gorm:"not null" json:"paid_at"`
	CreatedAt time.Time          `json:"created_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: DecimalFromCents(p.Amount),
	})
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

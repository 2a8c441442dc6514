package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice is the bill issued for an order
type Invoice struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"order_id"`
	InvoiceNo   string    `gorm:"size:100;uniqueIndex;not null" json:"invoice_no"`
	IssuedAt    time.Time `gorm:"not null" json:"issued_at"`
	SubTotal    int64     `gorm:"not null" json:"-"` // Stored in cents
	ShippingFee int64     `gorm:"not null" json:"-"` // Stored in cents
	Tax         int64     `gorm:"not null" json:"-"` // Stored in cents
	Total       int64     `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt   time.Time `json:"created_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i Invoice) MarshalJSON() ([]byte, error) {
	type Alias Invoice
	return json.Marshal(&struct {
		Alias
		SubTotal    float64 `json:"sub_total"`
		ShippingFee float64 `json:"shipping_fee"`
		Tax         float64 `json:"tax"`
		Total       float64 `json:"total"`
	}{
		Alias:       Alias(i),
		SubTotal:    DecimalFromCents(i.SubTotal),
		ShippingFee: DecimalFromCents(i.ShippingFee),
		Tax:         DecimalFromCents(i.Tax),
		Total:       DecimalFromCents(i.Total),
	})
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

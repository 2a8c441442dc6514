package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents an item in the storefront catalog
type Product struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Description  *string        `gorm:"type:text" json:"description,omitempty"`
	Category     string         `gorm:"size:100;index" json:"category"` // free text, bucketed by reports
	Price        int64          `gorm:"default:0" json:"price"`         // Stored in cents
	Stock        int            `gorm:"default:0" json:"stock"`
	Image        *string        `gorm:"size:255" json:"image,omitempty"`
	Barcode      *string        `gorm:"size:100" json:"barcode,omitempty"`
	SerialNumber *string        `gorm:"size:100" json:"serial_number,omitempty"`
	Manufacturer *string        `gorm:"size:255" json:"manufacturer,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetPriceDecimal returns the price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return DecimalFromCents(p.Price)
}

// SetPriceFromDecimal sets the price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.Price = CentsFromDecimal(price)
}

// InStock reports whether quantity units can be sold
func (p *Product) InStock(quantity int) bool {
	return p.Stock >= quantity
}

// MarshalJSON converts Product to JSON with a decimal price
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(p),
		Price: p.GetPriceDecimal(),
	})
}

// UnmarshalJSON reads a decimal price back into cents
func (p *Product) UnmarshalJSON(data []byte) error {
	type Alias Product
	aux := &struct {
		*Alias
		Price float64 `json:"price"`
	}{Alias: (*Alias)(p)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	p.SetPriceFromDecimal(aux.Price)
	return nil
}

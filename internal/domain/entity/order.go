package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order represents a customer order placed at checkout
type Order struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"customer_id"`
	OrderDate   time.Time      `gorm:"not null;index" json:"order_date"`
	TotalAmount int64          `gorm:"default:0" json:"-"` // Stored in cents, sum of line totals
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Payment  *Payment   `gorm:"foreignKey:OrderID" json:"payment,omitempty"`
	Shipment *Shipment  `gorm:"foreignKey:OrderID" json:"shipment,omitempty"`
	Invoice  *Invoice   `gorm:"foreignKey:OrderID" json:"invoice,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		TotalAmount float64 `json:"total_amount"`
	}{
		Alias:       Alias(o),
		TotalAmount: DecimalFromCents(o.TotalAmount),
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// LineTotal sums quantity times snapshot price over the items
func (o *Order) LineTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Total()
	}
	return total
}

// OrderItem is a line of an order. UnitPrice is the product price at the
// time the order was placed.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice int64     `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(oi),
		UnitPrice: DecimalFromCents(oi.UnitPrice),
		Total:     DecimalFromCents(oi.Total()),
	})
}

// Total returns quantity times unit price in cents
func (oi *OrderItem) Total() int64 {
	return oi.UnitPrice * int64(oi.Quantity)
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

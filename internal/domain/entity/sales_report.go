package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalesReport is a saved run of the sales analytics report
type SalesReport struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	AdminID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"admin_id"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	StartDate    time.Time      `gorm:"not null" json:"start_date"`
	EndDate      time.Time      `gorm:"not null" json:"end_date"`
	Category     string         `gorm:"size:50;not null;default:'all'" json:"category"`
	TotalRevenue int64          `gorm:"default:0" json:"-"` // Stored in cents
	TotalOrders  int64          `gorm:"default:0" json:"total_orders"`
	GeneratedAt  time.Time      `gorm:"not null" json:"generated_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON formats dates as YYYY-MM-DD and revenue as a decimal
func (r SalesReport) MarshalJSON() ([]byte, error) {
	type Alias SalesReport
	return json.Marshal(&struct {
		Alias
		StartDate    string  `json:"start_date"`
		EndDate      string  `json:"end_date"`
		TotalRevenue float64 `json:"total_revenue"`
	}{
		Alias:        Alias(r),
		StartDate:    r.StartDate.Format("2006-01-02"),
		EndDate:      r.EndDate.Format("2006-01-02"),
		TotalRevenue: DecimalFromCents(r.TotalRevenue),
	})
}

// BeforeCreate generates a UUID before creating a new report
func (r *SalesReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalesReport model
func (SalesReport) TableName() string {
	return "sales_reports"
}

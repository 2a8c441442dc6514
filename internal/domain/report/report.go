// Package report holds the sales analytics model: filter resolution, category
// bucketing and assembly of the dashboard payload. Nothing here performs I/O.
package report

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for report dates
const DateLayout = "2006-01-02"

// TopProductLimit caps the number of products in a report
const TopProductLimit = 5

// DateRange is an inclusive calendar range in UTC
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange truncates both ends to whole days
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: truncateDay(start), End: truncateDay(end)}
}

// EndExclusive returns the first instant after the range
func (r DateRange) EndExclusive() time.Time {
	return r.End.AddDate(0, 0, 1)
}

// StartDate returns the start formatted as YYYY-MM-DD
func (r DateRange) StartDate() string {
	return r.Start.Format(DateLayout)
}

// EndDate returns the end formatted as YYYY-MM-DD
func (r DateRange) EndDate() string {
	return r.End.Format(DateLayout)
}

// Days returns the number of calendar days covered
func (r DateRange) Days() int {
	return int(r.EndExclusive().Sub(r.Start).Hours() / 24)
}

// Criteria is a resolved filter ready for querying
type Criteria struct {
	Range DateRange
	// Bucket restricts the report to one category bucket; nil means all
	Bucket *Bucket
}

// ProductSales is one row of the per-product aggregate
type ProductSales struct {
	ProductID uuid.UUID
	Name      string
	Category  string
	Units     int64
	Revenue   int64 // cents
}

// Aggregates are the raw results of the four aggregate reads.
// All money values are in cents.
type Aggregates struct {
	TotalOrders     int64
	TotalRevenue    int64
	Monthly         [12]int64
	CategoryRevenue map[string]int64
	TopProducts     []ProductSales
}

// DailySales is the revenue of a single calendar day
type DailySales struct {
	Date    time.Time
	Orders  int64
	Revenue int64 // cents
}

// Stats is the headline block of a report
type Stats struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalOrders    int64   `json:"totalOrders"`
	AverageOrder   float64 `json:"averageOrder"`
	ConversionRate float64 `json:"conversionRate"`
}

// CategoryData holds bucket percentages
type CategoryData struct {
	Phone       int64 `json:"phone"`
	Tablet      int64 `json:"tablet"`
	Laptop      int64 `json:"laptop"`
	Watch       int64 `json:"watch"`
	Accessories int64 `json:"accessories"`
}

// TopProduct is one entry of the best sellers list
type TopProduct struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Units    int64   `json:"units"`
	Revenue  float64 `json:"revenue"`
}

// Result is the assembled report
type Result struct {
	Stats        Stats        `json:"stats"`
	MonthlySales []float64    `json:"monthlySales"`
	CategoryData CategoryData `json:"categoryData"`
	TopProducts  []TopProduct `json:"topProducts"`
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

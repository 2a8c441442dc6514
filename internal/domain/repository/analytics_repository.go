package repository

import (
	"context"

	"github.com/sangkips/electrostore-api/internal/domain/report"
)

// AnalyticsRepository defines the aggregate reads behind the sales report
type AnalyticsRepository interface {
	// Aggregate runs the summary, monthly, category and per-product reads
	// against one consistent snapshot. Either all four succeed or an error
	// is returned.
	Aggregate(ctx context.Context, criteria report.Criteria) (*report.Aggregates, error)

	// DailySales returns one zero-filled entry per day of the range
	DailySales(ctx context.Context, dateRange report.DateRange) ([]report.DailySales, error)
}

package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sangkips/electrostore-api/internal/domain/report"
	domainRepo "github.com/sangkips/electrostore-api/internal/domain/repository"
	"gorm.io/gorm"
)

const categoryExpr = "LOWER(COALESCE(p.category, ''))"

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) Aggregate(ctx context.Context, criteria report.Criteria) (*report.Aggregates, error) {
	agg := &report.Aggregates{CategoryRevenue: make(map[string]int64)}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.summary(tx, criteria, agg); err != nil {
			return err
		}
		if err := r.monthly(tx, criteria, agg); err != nil {
			return err
		}
		if err := r.categories(tx, criteria, agg); err != nil {
			return err
		}
		return r.topProducts(tx, criteria, agg)
	}, r.snapshotOptions())
	if err != nil {
		return nil, classifyError(err)
	}

	return agg, nil
}

func (r *analyticsRepository) DailySales(ctx context.Context, dateRange report.DateRange) ([]report.DailySales, error) {
	var rows []struct {
		Day     string
		Orders  int64
		Revenue int64
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return salesOrders(tx, dateRange).
			Select(r.dayExpr() + " AS day, COUNT(DISTINCT o.id) AS orders, " +
				"CAST(COALESCE(SUM(o.total_amount), 0) AS BIGINT) AS revenue").
			Group("day").
			Scan(&rows).Error
	}, r.snapshotOptions())
	if err != nil {
		return nil, classifyError(err)
	}

	byDay := make(map[string]int, len(rows))
	for i, row := range rows {
		byDay[row.Day] = i
	}

	results := make([]report.DailySales, 0, dateRange.Days())
	for d := dateRange.Start; d.Before(dateRange.EndExclusive()); d = d.AddDate(0, 0, 1) {
		entry := report.DailySales{Date: d}
		if i, ok := byDay[d.Format(report.DateLayout)]; ok {
			entry.Orders = rows[i].Orders
			entry.Revenue = rows[i].Revenue
		}
		results = append(results, entry)
	}

	return results, nil
}

// summary counts orders and revenue. Without a category filter it reads the
// order totals; with one it sums the matching lines so orders are not double counted.
func (r *analyticsRepository) summary(tx *gorm.DB, criteria report.Criteria, agg *report.Aggregates) error {
	var row struct {
		TotalOrders  int64
		TotalRevenue int64
	}

	var query *gorm.DB
	if criteria.Bucket == nil {
		query = salesOrders(tx, criteria.Range).
			Select("COUNT(DISTINCT o.id) AS total_orders, " +
				"CAST(COALESCE(SUM(o.total_amount), 0) AS BIGINT) AS total_revenue")
	} else {
		query = salesLines(tx, criteria).
			Select("COUNT(DISTINCT o.id) AS total_orders, " +
				"CAST(COALESCE(SUM(oi.unit_price * oi.quantity), 0) AS BIGINT) AS total_revenue")
	}
	if err := query.Scan(&row).Error; err != nil {
		return err
	}

	agg.TotalOrders = row.TotalOrders
	agg.TotalRevenue = row.TotalRevenue
	return nil
}

func (r *analyticsRepository) monthly(tx *gorm.DB, criteria report.Criteria, agg *report.Aggregates) error {
	var rows []struct {
		Month   int
		Revenue int64
	}

	var query *gorm.DB
	if criteria.Bucket == nil {
		query = salesOrders(tx, criteria.Range).
			Select(r.monthExpr() + " AS month, CAST(COALESCE(SUM(o.total_amount), 0) AS BIGINT) AS revenue")
	} else {
		query = salesLines(tx, criteria).
			Select(r.monthExpr() + " AS month, CAST(COALESCE(SUM(oi.unit_price * oi.quantity), 0) AS BIGINT) AS revenue")
	}
	if err := query.Group("month").Scan(&rows).Error; err != nil {
		return err
	}

	for _, row := range rows {
		if row.Month >= 1 && row.Month <= 12 {
			agg.Monthly[row.Month-1] += row.Revenue
		}
	}
	return nil
}

func (r *analyticsRepository) categories(tx *gorm.DB, criteria report.Criteria, agg *report.Aggregates) error {
	var rows []struct {
		Category string
		Revenue  int64
	}

	err := salesLines(tx, criteria).
		Select("COALESCE(p.category, '') AS category, " +
			"CAST(COALESCE(SUM(oi.unit_price * oi.quantity), 0) AS BIGINT) AS revenue").
		Group("p.category").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	for _, row := range rows {
		agg.CategoryRevenue[row.Category] += row.Revenue
	}
	return nil
}

func (r *analyticsRepository) topProducts(tx *gorm.DB, criteria report.Criteria, agg *report.Aggregates) error {
	var rows []report.ProductSales

	err := salesLines(tx, criteria).
		Select("p.id AS product_id, p.name AS name, COALESCE(p.category, '') AS category, " +
			"CAST(COALESCE(SUM(oi.quantity), 0) AS BIGINT) AS units, " +
			"CAST(COALESCE(SUM(oi.unit_price * oi.quantity), 0) AS BIGINT) AS revenue").
		Group("p.id, p.name, p.category").
		Order("revenue DESC, p.id ASC").
		Limit(report.TopProductLimit).
		Scan(&rows).Error
	if err != nil {
		return err
	}

	agg.TopProducts = rows
	return nil
}

// salesOrders selects live orders placed inside the range
func salesOrders(tx *gorm.DB, dateRange report.DateRange) *gorm.DB {
	return tx.Table("orders o").
		Where("o.deleted_at IS NULL").
		Where("o.order_date >= ? AND o.order_date < ?", dateRange.Start, dateRange.EndExclusive())
}

// salesLines selects order lines joined to their order and product,
// restricted to the criteria's range and bucket
func salesLines(tx *gorm.DB, criteria report.Criteria) *gorm.DB {
	query := tx.Table("order_items oi").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Joins("JOIN products p ON p.id = oi.product_id").
		Where("o.deleted_at IS NULL").
		Where("o.order_date >= ? AND o.order_date < ?", criteria.Range.Start, criteria.Range.EndExclusive())

	if criteria.Bucket != nil {
		cond, args := bucketCondition(*criteria.Bucket)
		query = query.Where(cond, args...)
	}
	return query
}

// bucketCondition matches product categories that classify into b. Earlier
// keywords take precedence, so a "phone" match excludes the category from
// every later bucket.
func bucketCondition(b report.Bucket) (string, []any) {
	var conds []string
	var args []any

	for _, kw := range report.KeywordBuckets {
		if kw == b {
			conds = append(conds, categoryExpr+" LIKE ?")
			args = append(args, "%"+string(kw)+"%")
			break
		}
		conds = append(conds, categoryExpr+" NOT LIKE ?")
		args = append(args, "%"+string(kw)+"%")
	}

	return "(" + strings.Join(conds, " AND ") + ")", args
}

func (r *analyticsRepository) snapshotOptions() *sql.TxOptions {
	if r.db.Dialector.Name() == "postgres" {
		return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	}
	return &sql.TxOptions{ReadOnly: true}
}

func (r *analyticsRepository) monthExpr() string {
	if r.db.Dialector.Name() == "postgres" {
		return "CAST(EXTRACT(MONTH FROM o.order_date AT TIME ZONE 'UTC') AS INTEGER)"
	}
	return "CAST(strftime('%m', o.order_date) AS INTEGER)"
}

func (r *analyticsRepository) dayExpr() string {
	if r.db.Dialector.Name() == "postgres" {
		return "TO_CHAR(o.order_date AT TIME ZONE 'UTC', 'YYYY-MM-DD')"
	}
	return "strftime('%Y-%m-%d', o.order_date)"
}

// classifyError separates an unreachable store from a failing query
func classifyError(err error) error {
	var rerr *report.Error
	if errors.As(err, &rerr) {
		return err
	}
	if isConnectionError(err) {
		return report.ConnectionFailure(err)
	}
	return report.QueryFailure(err)
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var timeoutErr interface{ Timeout() bool }
	return errors.As(err, &timeoutErr) && timeoutErr.Timeout()
}

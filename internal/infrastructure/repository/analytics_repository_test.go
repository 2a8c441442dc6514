package repository

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sangkips/electrostore-api/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func yearCriteria(year int, bucket *report.Bucket) report.Criteria {
	return report.Criteria{
		Range:  report.NewDateRange(date(year, time.January, 1), date(year, time.December, 31)),
		Bucket: bucket,
	}
}

func bucket(b report.Bucket) *report.Bucket {
	return &b
}

func TestAnalyticsRepository_Aggregate_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnalyticsRepository(db)

	agg, err := repo.Aggregate(context.Background(), yearCriteria(2024, nil))

	require.NoError(t, err)
	assert.Zero(t, agg.TotalOrders)
	assert.Zero(t, agg.TotalRevenue)
	assert.Equal(t, [12]int64{}, agg.Monthly)
	assert.Empty(t, agg.CategoryRevenue)
	assert.Empty(t, agg.TopProducts)
}

func TestAnalyticsRepository_Aggregate_SingleOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnalyticsRepository(db)

	customer := seedCustomer(t, db, "Ada", "ada@example.com", "0700")
	phone := seedProduct(t, db, "Galaxy", "Smartphone X", 10000, 10)
	seedOrder(t, db, customer, time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC), line{phone, 2})

	agg, err := repo.Aggregate(context.Background(), yearCriteria(2024, nil))

	require.NoError(t, err)
	assert.Equal(t, int64(1), agg.TotalOrders)
	assert.Equal(t, int64(20000), agg.TotalRevenue)
	assert.Equal(t, int64(20000), agg.Monthly[2])
	assert.Equal(t, map[string]int64{"Smartphone X": 20000}, agg.CategoryRevenue)
	require.Len(t, agg.TopProducts, 1)
	assert.Equal(t, phone.ID, agg.TopProducts[0].ProductID)
	assert.Equal(t, "Galaxy", agg.TopProducts[0].Name)
	assert.Equal(t, int64(2), agg.TopProducts[0].Units)
	assert.Equal(t, int64(20000), agg.TopProducts[0].Revenue)
}

func TestAnalyticsRepository_Aggregate_RepeatableWithoutWrites(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	ada := seedCustomer(t, db, "Ada", "ada@example.com", "0700")
	bob := seedCustomer(t, db, "Bob", "bob@example.com", "0711")
	phone := seedProduct(t, db, "Galaxy", "Smartphone", 10000, 50)
	tablet := seedProduct(t, db, "Tab S9", "Tablet", 8000, 50)
	case1 := seedProduct(t, db, "Case A", "Accessory", 1000, 50)
	case2 := seedProduct(t, db, "Case B", "Accessory", 1000, 50)
	seedOrder(t, db, ada, time.Date(2024, time.January, 3, 9, 0, 0, 0, time.UTC), line{phone, 1}, line{case1, 2})
	seedOrder(t, db, bob, time.Date(2024, time.May, 20, 18, 30, 0, 0, time.UTC), line{tablet, 2}, line{case2, 2})
	seedOrder(t, db, ada, time.Date(2024, time.November, 30, 23, 59, 0, 0, time.UTC), line{phone, 3})

	for _, criteria := range []report.Criteria{
		yearCriteria(2024, nil),
		yearCriteria(2024, bucket(report.BucketAccessories)),
	} {
		first, err := repo.Aggregate(ctx, criteria)
		require.NoError(t, err)
		second, err := repo.Aggregate(ctx, criteria)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, report.Assemble(*first, 3.2), report.Assemble(*second, 3.2))
	}
}

func TestAnalyticsRepository_Aggregate_RangeIsInclusive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnalyticsRepository(db)

	customer := seedCustomer(t, db, "Ada", "ada@example.com", "0700")
	p := seedProduct(t, db, "Cable", "USB", 500, 100)
	seedOrder(t, db, customer, time.Date(2023, time.December, 31, 23, 59, 0, 0, time.UTC), line{p, 1})
	seedOrder(t, db, customer, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), line{p, 1})
	seedOrder(t, db, customer, time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC), line{p, 1})
	seedOrder(t, db, customer, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), line{p, 1})

	agg, err := repo.Aggregate(context.Background(), yearCriteria(2024, nil))

	require.NoError(t, err)
	assert.Equal(t, int64(2), agg.TotalOrders)
	assert.Equal(t, int64(1000), agg.TotalRevenue)
	assert.Equal(t, int64(500), agg.Monthly[0])
	assert.Equal(t, int64(500), agg.Monthly[11])
}

func TestAnalyticsRepository_Aggregate_CategoryFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnalyticsRepository(db)

	customer := seedCustomer(t, db, "Ada", "ada@example.com", "0700")
	tablet := seedProduct(t, db, "Tab", "Tablet", 30000, 10)
	laptop := seedProduct(t, db, "Book", "Laptop", 70000, 10)
	at := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
	seedOrder(t, db, customer, at, line{tablet, 1})
	seedOrder(t, db, customer, at, line{laptop, 1}, line{tablet, 1})

	agg, err := repo.Aggregate(context.Background(), yearCriteria(2024, bucket(report.BucketTablet)))

	require.NoError(t, err)
	// Only tablet lines count, each order once
	assert.Equal(t, int64(2), agg.TotalOrders)
	assert.Equal(t, int64(60000), agg.TotalRevenue)
	assert.Equal(t, int64(60000), agg.Monthly[5])
	assert.Equal(t, map[string]int64{"Tablet": 60000}, agg.CategoryRevenue)
	require.Len(t, agg.TopProducts, 1)
	assert.Equal(t, tablet.ID, agg.TopProducts[0].ProductID)
}

func TestAnalyticsRepository_Aggregate_BucketPrecedence(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnalyticsRepository(db)

	customer := seedCustomer(t, db, "Ada", "ada@example.com", "0700")
	// Contains both "phone" and "watch"; phone wins
	combo := seedProduct(t, db, "Combo", "Phone Watch Kit", 1000, 10)
	case_ := seedProduct(t, db, "Case", "", 200, 10)
	seedOrder(t, db, customer, date(2024, time.May, 1), line{combo, 1}, line{case_, 1})

	ctx := context.Background()

	watch, err := repo.Aggregate(ctx, yearCriteria(2024, bucket(report.BucketWatch)))
	require.NoError(t, err)
	assert.Zero(t, watch.TotalRevenue)

	phone, err := repo.Aggregate(ctx, yearCriteria(2024, bucket(report.BucketPhone)))
	require.NoError(t, err)
	assert.Equal(t, int64(1000), phone.TotalRevenue)

	accessories, err := repo.Aggregate(ctx, yearCriteria(2024, bucket(report.BucketAccessories)))
	require.NoError(t, err)
	assert.Equal(t, int64(200), accessories.TotalRevenue)
	assert.Equal(t, map[string]int64{"": 200}, accessories.CategoryRevenue)
}

func TestAnalyticsRepository_Aggregate_UsesSnapshotPrice(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnalyticsRepository(db)

	customer := seedCustomer(t, db, "Ada", "ada@example.com", "0700")
	p := seedProduct(t, db, "Watch", "Smartwatch", 5000, 10)
	seedOrder(t, db, customer, date(2024, time.July, 1), line{p, 3})

	require.NoError(t, db.Model(p).Update("price", 9900).Error)

	agg, err := repo.Aggregate(context.Background(), yearCriteria(2024, nil))
	require.NoError(t, err)
	assert.Equal(t, int64(15000), agg.TotalRevenue)
	assert.Equal(t, int64(15000), agg.TopProducts[0].Revenue)
}

func TestAnalyticsRepository_Aggregate_TopProductsLimitedAndOrdered(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnalyticsRepository(db)

	customer := seedCustomer(t, db, "Ada", "ada@example.com", "0700")
	var lines []line
	for i := 1; i <= 7; i++ {
		p := seedProduct(t, db, "P", "Laptop", int64(i*1000), 10)
		lines = append(lines, line{p, 1})
	}
	seedOrder(t, db, customer, date(2024, time.August, 1), lines...)

	agg, err := repo.Aggregate(context.Background(), yearCriteria(2024, nil))

	require.NoError(t, err)
	require.Len(t, agg.TopProducts, report.TopProductLimit)
	for i := 1; i < len(agg.TopProducts); i++ {
		assert.GreaterOrEqual(t, agg.TopProducts[i-1].Revenue, agg.TopProducts[i].Revenue)
	}
	assert.Equal(t, int64(7000), agg.TopProducts[0].Revenue)
}

func TestAnalyticsRepository_DailySales(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnalyticsRepository(db)

	customer := seedCustomer(t, db, "Ada", "ada@example.com", "0700")
	p := seedProduct(t, db, "Pad", "Tablet", 1500, 10)
	seedOrder(t, db, customer, time.Date(2024, time.February, 2, 9, 0, 0, 0, time.UTC), line{p, 1})
	seedOrder(t, db, customer, time.Date(2024, time.February, 2, 18, 0, 0, 0, time.UTC), line{p, 2})

	days, err := repo.DailySales(context.Background(), report.NewDateRange(date(2024, time.February, 1), date(2024, time.February, 3)))

	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, date(2024, time.February, 1), days[0].Date)
	assert.Zero(t, days[0].Revenue)
	assert.Equal(t, int64(2), days[1].Orders)
	assert.Equal(t, int64(4500), days[1].Revenue)
	assert.Zero(t, days[2].Orders)
}

func newMockAnalyticsRepository(t *testing.T) (*analyticsRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return &analyticsRepository{db: gormDB}, mock, mockDB
}

func TestAnalyticsRepository_Aggregate_QueryFailure(t *testing.T) {
	repo, mock, mockDB := newMockAnalyticsRepository(t)
	defer mockDB.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(DISTINCT o.id\) AS total_orders`).
		WillReturnError(errors.New(`relation "orders" does not exist`))
	mock.ExpectRollback()

	agg, err := repo.Aggregate(context.Background(), yearCriteria(2024, nil))

	assert.Nil(t, agg)
	assert.Equal(t, report.KindQueryFailure, report.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_Aggregate_FailsWhole(t *testing.T) {
	repo, mock, mockDB := newMockAnalyticsRepository(t)
	defer mockDB.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(DISTINCT o.id\)`).
		WillReturnRows(sqlmock.NewRows([]string{"total_orders", "total_revenue"}).AddRow(3, 900))
	mock.ExpectQuery(`EXTRACT\(MONTH FROM o.order_date`).
		WillReturnError(errors.New("division by zero"))
	mock.ExpectRollback()

	agg, err := repo.Aggregate(context.Background(), yearCriteria(2024, nil))

	assert.Nil(t, agg)
	assert.Equal(t, report.KindQueryFailure, report.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_Aggregate_ConnectionFailure(t *testing.T) {
	repo, mock, mockDB := newMockAnalyticsRepository(t)
	defer mockDB.Close()

	mock.ExpectBegin().WillReturnError(&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")})

	agg, err := repo.Aggregate(context.Background(), yearCriteria(2024, nil))

	assert.Nil(t, agg)
	assert.Equal(t, report.KindConnectionFailure, report.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBucketCondition(t *testing.T) {
	cond, args := bucketCondition(report.BucketLaptop)
	assert.Equal(t, "(LOWER(COALESCE(p.category, '')) NOT LIKE ? AND LOWER(COALESCE(p.category, '')) NOT LIKE ? AND LOWER(COALESCE(p.category, '')) LIKE ?)", cond)
	assert.Equal(t, []any{"%phone%", "%tablet%", "%laptop%"}, args)

	_, args = bucketCondition(report.BucketAccessories)
	assert.Len(t, args, 4)
}

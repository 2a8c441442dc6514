package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/sangkips/electrostore-api/internal/infrastructure/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name, email, phone string) *entity.Customer {
	t.Helper()
	c := &entity.Customer{Name: name, Email: email, Phone: phone}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, name, category string, priceCents int64, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, Category: category, Price: priceCents, Stock: stock}
	require.NoError(t, db.Create(p).Error)
	return p
}

type line struct {
	product  *entity.Product
	quantity int
}

// seedOrder stores an order with snapshot prices and a pending shipment
func seedOrder(t *testing.T, db *gorm.DB, customer *entity.Customer, at time.Time, lines ...line) *entity.Order {
	t.Helper()
	order := &entity.Order{CustomerID: customer.ID, OrderDate: at.UTC()}
	for _, l := range lines {
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: l.product.ID,
			Quantity:  l.quantity,
			UnitPrice: l.product.Price,
		})
	}
	order.TotalAmount = order.LineTotal()
	order.Shipment = &entity.Shipment{TrackingNumber: "TRK-" + uuid.NewString()[:8]}
	require.NoError(t, db.Create(order).Error)
	return order
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

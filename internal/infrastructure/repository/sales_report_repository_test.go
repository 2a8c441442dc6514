package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/sangkips/electrostore-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesReportRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSalesReportRepository(db)
	ctx := context.Background()

	adminID := uuid.New()
	older := &entity.SalesReport{
		AdminID: adminID, Title: "Q1", Category: "all",
		StartDate: date(2024, time.January, 1), EndDate: date(2024, time.March, 31),
		GeneratedAt: time.Now().Add(-time.Hour),
	}
	newer := &entity.SalesReport{
		AdminID: adminID, Title: "Q2", Category: "phone",
		StartDate: date(2024, time.April, 1), EndDate: date(2024, time.June, 30),
		TotalRevenue: 12345, TotalOrders: 3,
		GeneratedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, &entity.SalesReport{
		AdminID: uuid.New(), Title: "Other", StartDate: date(2024, time.January, 1),
		EndDate: date(2024, time.January, 31), GeneratedAt: time.Now(),
	}))

	reports, total, err := repo.ListByAdmin(ctx, adminID, pagination.DefaultPagination())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, reports, 2)
	assert.Equal(t, "Q2", reports[0].Title)

	newer.Title = "Q2 final"
	require.NoError(t, repo.Update(ctx, newer))

	got, err := repo.GetByID(ctx, newer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Q2 final", got.Title)
	assert.Equal(t, int64(12345), got.TotalRevenue)

	missing, err := repo.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

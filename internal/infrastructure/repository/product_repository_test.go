package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	domainRepo "github.com/sangkips/electrostore-api/internal/domain/repository"
	"github.com/sangkips/electrostore-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "Galaxy S24", "Smartphone", 90000, 5)
	seedProduct(t, db, "iPad Air", "Tablet", 60000, 0)
	seedProduct(t, db, "Pixel 8", "Smartphone", 70000, 3)

	tests := []struct {
		name   string
		params domainRepo.ProductFilterParams
		want   []string
	}{
		{"search", domainRepo.ProductFilterParams{Search: "galaxy"}, []string{"Galaxy S24"}},
		{"category substring", domainRepo.ProductFilterParams{Category: "phone", SortBy: "price", SortOrder: "asc"}, []string{"Pixel 8", "Galaxy S24"}},
		{"in stock", domainRepo.ProductFilterParams{InStock: true, SortBy: "name", SortOrder: "asc"}, []string{"Galaxy S24", "Pixel 8"}},
		{"unknown sort column falls back", domainRepo.ProductFilterParams{SortBy: "price; DROP TABLE products", Category: "tablet"}, []string{"iPad Air"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Pagination = pagination.DefaultPagination()
			products, total, err := repo.List(ctx, &tt.params)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), total)
			var names []string
			for _, p := range products {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestProductRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := seedProduct(t, db, "Watch", "Smartwatch", 20000, 2)

	p.Stock = 7
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Stock)

	many, err := repo.GetByIDs(ctx, []uuid.UUID{p.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, many, 1)

	require.NoError(t, repo.Delete(ctx, p.ID))
	gone, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_Empty(t *testing.T) {
	got := Assemble(Aggregates{}, 3.2)

	assert.Equal(t, Stats{ConversionRate: 3.2}, got.Stats)
	assert.Len(t, got.MonthlySales, 12)
	for _, v := range got.MonthlySales {
		assert.Zero(t, v)
	}
	assert.Equal(t, CategoryData{}, got.CategoryData)
	require.NotNil(t, got.TopProducts)
	assert.Empty(t, got.TopProducts)
}

func TestAssemble_SingleOrder(t *testing.T) {
	agg := Aggregates{
		TotalOrders:     1,
		TotalRevenue:    20000,
		CategoryRevenue: map[string]int64{"Smartphone X": 20000},
		TopProducts: []ProductSales{
			{ProductID: uuid.New(), Name: "Pixel", Category: "Smartphone X", Units: 2, Revenue: 20000},
		},
	}
	agg.Monthly[4] = 20000

	got := Assemble(agg, 3.2)

	assert.Equal(t, 200.0, got.Stats.TotalRevenue)
	assert.Equal(t, int64(1), got.Stats.TotalOrders)
	assert.Equal(t, 200.0, got.Stats.AverageOrder)
	assert.Equal(t, 200.0, got.MonthlySales[4])
	assert.Equal(t, CategoryData{Phone: 100}, got.CategoryData)
	assert.Equal(t, []TopProduct{{Name: "Pixel", Category: "phone", Units: 2, Revenue: 200}}, got.TopProducts)
}

func TestAssemble_AverageRounding(t *testing.T) {
	got := Assemble(Aggregates{TotalOrders: 3, TotalRevenue: 10000}, 0)
	assert.Equal(t, 33.33, got.Stats.AverageOrder)
}

func TestAssemble_TopProductsSortedAndCapped(t *testing.T) {
	ids := make([]uuid.UUID, 7)
	for i := range ids {
		ids[i] = uuid.New()
	}

	var products []ProductSales
	for i, id := range ids {
		products = append(products, ProductSales{ProductID: id, Name: id.String(), Revenue: int64(i * 100)})
	}
	// tie with the best seller
	products = append(products, ProductSales{ProductID: uuid.Nil, Name: "nil", Revenue: 600})

	got := Assemble(Aggregates{TopProducts: products}, 0)

	require.Len(t, got.TopProducts, TopProductLimit)
	for i := 1; i < len(got.TopProducts); i++ {
		assert.GreaterOrEqual(t, got.TopProducts[i-1].Revenue, got.TopProducts[i].Revenue)
	}
	assert.Equal(t, "nil", got.TopProducts[0].Name)
}

func TestAssemble_MonthlyMatchesTotal(t *testing.T) {
	agg := Aggregates{TotalOrders: 4, TotalRevenue: 123456}
	agg.Monthly[0] = 100000
	agg.Monthly[11] = 23456

	got := Assemble(agg, 0)

	var sum float64
	for _, v := range got.MonthlySales {
		sum += v
	}
	assert.InDelta(t, got.Stats.TotalRevenue, sum, 0.01)
}

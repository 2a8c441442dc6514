package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Assemble composes the report payload from raw aggregates. It never fails:
// an empty aggregate yields an all-zero report.
func Assemble(agg Aggregates, conversionRate float64) Result {
	result := Result{
		Stats: Stats{
			TotalRevenue:   centsToFloat(agg.TotalRevenue),
			TotalOrders:    agg.TotalOrders,
			ConversionRate: decimal.NewFromFloat(conversionRate).Round(2).InexactFloat64(),
		},
		MonthlySales: make([]float64, len(agg.Monthly)),
		CategoryData: Normalize(agg.CategoryRevenue),
		TopProducts:  make([]TopProduct, 0, TopProductLimit),
	}

	if agg.TotalOrders > 0 {
		result.Stats.AverageOrder = decimal.New(agg.TotalRevenue, -2).
			Div(decimal.NewFromInt(agg.TotalOrders)).
			Round(2).
			InexactFloat64()
	}

	for i, cents := range agg.Monthly {
		result.MonthlySales[i] = centsToFloat(cents)
	}

	products := make([]ProductSales, len(agg.TopProducts))
	copy(products, agg.TopProducts)
	sort.SliceStable(products, func(i, j int) bool {
		if products[i].Revenue != products[j].Revenue {
			return products[i].Revenue > products[j].Revenue
		}
		return products[i].ProductID.String() < products[j].ProductID.String()
	})
	if len(products) > TopProductLimit {
		products = products[:TopProductLimit]
	}
	for _, p := range products {
		result.TopProducts = append(result.TopProducts, TopProduct{
			Name:     p.Name,
			Category: string(Classify(p.Category)),
			Units:    p.Units,
			Revenue:  centsToFloat(p.Revenue),
		})
	}

	return result
}

func centsToFloat(cents int64) float64 {
	return decimal.New(cents, -2).Round(2).InexactFloat64()
}

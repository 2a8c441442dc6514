package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDaily(t *testing.T) {
	r, err := ResolveDaily(DailyFilter{Start: "2024-02-01", End: "2024-02-29"})
	require.NoError(t, err)
	assert.Equal(t, 29, r.Days())
	assert.Equal(t, "2024-02-01", r.StartDate())
	assert.Equal(t, "2024-02-29", r.EndDate())

	single, err := ResolveDaily(DailyFilter{Start: "2024-05-05", End: "2024-05-05"})
	require.NoError(t, err)
	assert.Equal(t, 1, single.Days())
}

func TestResolveDaily_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		filter DailyFilter
		field  string
	}{
		{"missing start", DailyFilter{End: "2024-01-01"}, "start"},
		{"bad end", DailyFilter{Start: "2024-01-01", End: "01/02/2024"}, "end"},
		{"reversed", DailyFilter{Start: "2024-03-01", End: "2024-02-01"}, "end"},
		{"too long", DailyFilter{Start: "2023-01-01", End: "2024-12-31"}, "end"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveDaily(tt.filter)
			require.Error(t, err)
			var rerr *Error
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, KindInvalidFilter, rerr.Kind)
			assert.Equal(t, tt.field, rerr.Field)
		})
	}
}

func TestAssembleDaily(t *testing.T) {
	points := AssembleDaily([]DailySales{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Orders: 2, Revenue: 12345},
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	})
	require.Len(t, points, 2)
	assert.Equal(t, DailyPoint{Date: "2024-01-01", Orders: 2, Revenue: 123.45}, points[0])
	assert.Equal(t, 0.0, points[1].Revenue)

	assert.NotNil(t, AssembleDaily(nil))
}

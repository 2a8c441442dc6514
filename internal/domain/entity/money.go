package entity

import "github.com/shopspring/decimal"

// CentsFromDecimal converts a currency amount to integer cents, rounding
// half away from zero.
func CentsFromDecimal(amount float64) int64 {
	return decimal.NewFromFloat(amount).Shift(2).Round(0).IntPart()
}

// DecimalFromCents converts integer cents to a currency amount
func DecimalFromCents(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}

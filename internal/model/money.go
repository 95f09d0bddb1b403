package model

import "github.com/shopspring/decimal"

// RoundCents rounds a monetary amount half away from zero to two places.
func RoundCents(x float64) float64 {
	return Round(x, 2)
}

// Round rounds x to the given number of decimal places.
func Round(x float64, places int32) float64 {
	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}

// Clamp limits x to [lo,hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

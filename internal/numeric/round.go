// Package numeric holds the rounding rules shared by the valuation pipeline.
//
// Displayed figures follow half-up rounding towards positive infinity
// (-4.5 rounds to -4, 4.5 rounds to 5), which differs from
// decimal.Round's half-away-from-zero rule for negative values.
package numeric

import "github.com/shopspring/decimal"

var half = decimal.NewFromFloat(0.5)

// RoundHalfUp rounds d to the given number of decimal places, ties going up
func RoundHalfUp(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Shift(places).Add(half).Floor().Shift(-places)
}

// Round rounds to the nearest integer
func Round(d decimal.Decimal) decimal.Decimal {
	return RoundHalfUp(d, 0)
}

// Round1 rounds to one decimal place
func Round1(d decimal.Decimal) decimal.Decimal {
	return RoundHalfUp(d, 1)
}

// ClampInt restricts v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Percent returns part/whole*100, or zero when whole is zero
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100))
}

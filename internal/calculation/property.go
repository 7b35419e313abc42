package calculation

import (
	"github.com/rgehrsitz/viagerpro/internal/numeric"
	"github.com/shopspring/decimal"
)

// PropertyValues compares the asking price with the market reference
type PropertyValues struct {
	EstimatedValue   decimal.Decimal
	RealPriceM2      decimal.Decimal
	PriceDiffPercent decimal.Decimal
}

// CalculatePropertyValues derives the market estimate and the price gap.
// Without a usable market reference the asking price stands as the estimate.
func CalculatePropertyValues(price, surface, avgPriceM2 decimal.Decimal) PropertyValues {
	pv := PropertyValues{
		EstimatedValue:   price,
		RealPriceM2:      decimal.Zero,
		PriceDiffPercent: decimal.Zero,
	}

	if avgPriceM2.IsPositive() && surface.IsPositive() {
		pv.EstimatedValue = avgPriceM2.Mul(surface)
	}
	if surface.IsPositive() {
		pv.RealPriceM2 = numeric.Round(price.Div(surface))
	}
	if avgPriceM2.IsPositive() {
		ratio := pv.RealPriceM2.Div(avgPriceM2).Sub(decimal.NewFromInt(1))
		pv.PriceDiffPercent = numeric.Round(ratio.Mul(decimal.NewFromInt(100)))
	}

	return pv
}

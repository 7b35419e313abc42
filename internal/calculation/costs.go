package calculation

import (
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/rgehrsitz/viagerpro/internal/numeric"
	"github.com/shopspring/decimal"
)

// NotaryFeeRate approximates French notary fees on older properties
var NotaryFeeRate = decimal.NewFromFloat(0.08)

// CostBreakdown is the buyer's projected outlay over the occupancy duration
type CostBreakdown struct {
	TotalRentes         decimal.Decimal
	TotalTaxesFoncieres decimal.Decimal
	NotaryFees          decimal.Decimal
	TotalCost           decimal.Decimal
}

// AggregateCosts projects annuity, property tax and fees. durationYears is
// the one-decimal figure shown to the user, so the tax total matches it.
func AggregateCosts(deal *domain.Deal, durationMonths int, durationYears, bareOwnership decimal.Decimal) CostBreakdown {
	totalRentes := deal.Rente.Mul(decimal.NewFromInt(int64(durationMonths)))
	totalTaxes := numeric.Round(deal.TaxeFonciere.Mul(durationYears))
	notary := NotaryFees(bareOwnership)

	return CostBreakdown{
		TotalRentes:         totalRentes,
		TotalTaxesFoncieres: totalTaxes,
		NotaryFees:          notary,
		TotalCost:           deal.Bouquet.Add(totalRentes).Add(totalTaxes).Add(notary),
	}
}

// NotaryFees returns the rounded fee on amount
func NotaryFees(amount decimal.Decimal) decimal.Decimal {
	return numeric.Round(amount.Mul(NotaryFeeRate))
}

package calculation

import (
	"time"

	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/rgehrsitz/viagerpro/internal/numeric"
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// AnalyzeBreakEven finds the month at which cumulative annuity and tax
// payments exhaust the property value left after upfront costs. A deal with
// no monthly outlay breaks even at month 0.
func AnalyzeBreakEven(deal *domain.Deal, notaryFees decimal.Decimal, durationMonths int, now time.Time) domain.BreakEvenInfo {
	monthlyCost := deal.Rente.Add(deal.TaxeFonciere.Div(monthsPerYear))
	fixedCosts := deal.Bouquet.Add(notaryFees)
	margin := deal.PropertyPrice.Sub(fixedCosts)

	months := 0
	if monthlyCost.IsPositive() {
		months = int(margin.Div(monthlyCost).Floor().IntPart())
	}

	return domain.BreakEvenInfo{
		Months:       months,
		Years:        numeric.Round1(decimal.NewFromInt(int64(months)).Div(monthsPerYear)),
		Date:         now.AddDate(0, months, 0),
		MonthlyCost:  monthlyCost,
		Margin:       margin,
		IsProfitable: months > durationMonths,
	}
}

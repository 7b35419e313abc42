package calculation

import (
	"github.com/rgehrsitz/viagerpro/internal/numeric"
	"github.com/shopspring/decimal"
)

// Profitability contrasts the viager cost with buying outright
type Profitability struct {
	DirectPurchaseCost decimal.Decimal
	Savings            decimal.Decimal
	SavingsPercent     decimal.Decimal
	BouquetDiff        decimal.Decimal
	Label              string
	IsPositive         bool
}

// CompareWithDirectPurchase computes savings against paying the full price plus full notary fees
func CompareWithDirectPurchase(price, bouquet, bareOwnership, totalCost decimal.Decimal) Profitability {
	direct := price.Add(NotaryFees(price))
	savings := direct.Sub(totalCost)
	percent := numeric.Round1(numeric.Percent(savings, direct))

	return Profitability{
		DirectPurchaseCost: direct,
		Savings:            savings,
		SavingsPercent:     percent,
		BouquetDiff:        bouquet.Sub(bareOwnership),
		Label:              ProfitabilityLabel(savings, percent),
		IsPositive:         savings.IsPositive(),
	}
}

// ProfitabilityLabel renders the savings percentage, signed "+" only when the deal saves money
func ProfitabilityLabel(savings, percent decimal.Decimal) string {
	if savings.IsPositive() {
		return "+" + percent.StringFixed(1) + "%"
	}
	return percent.StringFixed(1) + "%"
}

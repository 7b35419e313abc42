package calculation

import (
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/rgehrsitz/viagerpro/internal/mortality"
	"github.com/rgehrsitz/viagerpro/internal/numeric"
	"github.com/shopspring/decimal"
)

// OccupancyRight is the value of the seller's retained right of use (DUH)
type OccupancyRight struct {
	Age           int
	Coefficient   decimal.Decimal
	Value         decimal.Decimal
	BareOwnership decimal.Decimal
}

// OccupancyAge returns the age the DUH is valued at: the seller's age, or the
// younger partner's age for a couple
func OccupancyAge(deal *domain.Deal) int {
	age := deal.Seller.Age
	if deal.Partner != nil && deal.Partner.Age < age {
		age = deal.Partner.Age
	}
	return age
}

// ValueOccupancyRight splits the property price into DUH and bare ownership
func ValueOccupancyRight(tables *mortality.Tables, deal *domain.Deal) OccupancyRight {
	age := OccupancyAge(deal)
	coef := tables.DUHCoefficient(age)
	value := numeric.Round(deal.PropertyPrice.Mul(coef))

	return OccupancyRight{
		Age:           age,
		Coefficient:   coef,
		Value:         value,
		BareOwnership: deal.PropertyPrice.Sub(value),
	}
}

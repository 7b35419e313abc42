package mortality

import (
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/rgehrsitz/viagerpro/internal/numeric"
	"github.com/shopspring/decimal"
)

// MinimumExpectancy is the floor applied to every adjusted life expectancy
var MinimumExpectancy = decimal.NewFromInt(1)

// Estimate is the life expectancy of one person after disease adjustment
type Estimate struct {
	Base          decimal.Decimal       // table value for age and gender
	Adjusted      decimal.Decimal       // after disease impact, unrounded
	Years         decimal.Decimal       // Adjusted rounded to one decimal
	Disease       domain.DiseaseProfile // resolved catalog entry
	Reduction     decimal.Decimal       // years removed before the multiplier
	ImpactPercent decimal.Decimal       // positive when expectancy shrinks
}

// BaseExpectancy returns the unmodified table value for age and gender. Ages
// are clamped to [50, 100]; an unknown gender or missing entry yields
// LifeExpectancyFallback.
func (t *Tables) BaseExpectancy(age int, gender domain.Gender) decimal.Decimal {
	switch gender {
	case domain.Male:
		return t.male.at(age, LifeExpectancyFallback)
	case domain.Female:
		return t.female.at(age, LifeExpectancyFallback)
	default:
		return LifeExpectancyFallback
	}
}

// AdjustForDisease applies (base - reduction) * multiplier, floored at one year
func (t *Tables) AdjustForDisease(base decimal.Decimal, code domain.DiseaseCode) Estimate {
	disease := t.Disease(code)

	adjusted := base.Sub(disease.LifeReductionYears).Mul(disease.SurvivalMultiplier)
	adjusted = decimal.Max(adjusted, MinimumExpectancy)

	impact := decimal.Zero
	if base.IsPositive() {
		impact = numeric.Round(decimal.NewFromInt(1).Sub(adjusted.Div(base)).Mul(decimal.NewFromInt(100)))
	}

	return Estimate{
		Base:          base,
		Adjusted:      adjusted,
		Years:         numeric.Round1(adjusted),
		Disease:       disease,
		Reduction:     disease.LifeReductionYears,
		ImpactPercent: impact,
	}
}

// Estimate runs the table lookup and disease adjustment for one person
func (t *Tables) Estimate(p domain.Person) Estimate {
	return t.AdjustForDisease(t.BaseExpectancy(p.Age, p.Gender), p.Disease)
}

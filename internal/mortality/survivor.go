package mortality

import (
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/rgehrsitz/viagerpro/internal/numeric"
	"github.com/shopspring/decimal"
)

var (
	// CoupleBonus is the longevity factor applied to each partner of a couple
	CoupleBonus = decimal.NewFromFloat(1.10)

	// CoupleBonusPercent is CoupleBonus expressed for display
	CoupleBonusPercent = 10
)

// SurvivorEstimate is the last-survivor duration of a couple
type SurvivorEstimate struct {
	Person1          Estimate
	Person2          Estimate
	Person1WithBonus decimal.Decimal // unrounded
	Person2WithBonus decimal.Decimal // unrounded
	LastSurvivor     decimal.Decimal // max of the two, unrounded
	Years            decimal.Decimal // LastSurvivor rounded to one decimal
}

// LastSurvivor combines two independently adjusted expectancies. Both receive
// the cohabitation bonus and the longer one sizes the deal.
func (t *Tables) LastSurvivor(p1, p2 domain.Person) SurvivorEstimate {
	e1 := t.Estimate(p1)
	e2 := t.Estimate(p2)

	b1 := e1.Adjusted.Mul(CoupleBonus)
	b2 := e2.Adjusted.Mul(CoupleBonus)
	last := decimal.Max(b1, b2)

	return SurvivorEstimate{
		Person1:          e1,
		Person2:          e2,
		Person1WithBonus: b1,
		Person2WithBonus: b2,
		LastSurvivor:     last,
		Years:            numeric.Round1(last),
	}
}

// CoupleInfo converts the estimate to its displayed form
func (s SurvivorEstimate) CoupleInfo() *domain.CoupleInfo {
	return &domain.CoupleInfo{
		Person1Base:      s.Person1.Years,
		Person2Base:      s.Person2.Years,
		Person1WithBonus: numeric.Round1(s.Person1WithBonus),
		Person2WithBonus: numeric.Round1(s.Person2WithBonus),
		BonusPercent:     CoupleBonusPercent,
		LastSurvivor:     s.LastSurvivor,
		Person2Disease:   s.Person2.Disease,
	}
}

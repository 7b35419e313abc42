package transform

import (
	"fmt"

	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Adjustment changes an amount either by a fixed delta or by a percentage of
// its current value
type Adjustment struct {
	Delta   decimal.Decimal
	Percent bool
}

func (a Adjustment) apply(value decimal.Decimal) decimal.Decimal {
	if a.Percent {
		return value.Add(value.Mul(a.Delta).Div(hundred))
	}
	return value.Add(a.Delta)
}

func (a Adjustment) String() string {
	sign := ""
	if !a.Delta.IsNegative() {
		sign = "+"
	}
	if a.Percent {
		return fmt.Sprintf("%s%s%%", sign, a.Delta.String())
	}
	return fmt.Sprintf("%s%s €", sign, a.Delta.String())
}

// AdjustBouquet changes the upfront payment
type AdjustBouquet struct {
	Adjustment
}

func (ab *AdjustBouquet) Name() string {
	return "adjust_bouquet"
}

func (ab *AdjustBouquet) Description() string {
	return fmt.Sprintf("Adjust bouquet by %s", ab.Adjustment)
}

func (ab *AdjustBouquet) Validate(base *domain.Deal) error {
	if err := requireBase(ab.Name(), base); err != nil {
		return err
	}
	if next := ab.apply(base.Bouquet); !next.IsPositive() {
		return NewTransformError(ab.Name(), "validate", fmt.Sprintf("resulting bouquet must be positive, got %s", next), nil)
	}
	return nil
}

func (ab *AdjustBouquet) Apply(base *domain.Deal) (*domain.Deal, error) {
	modified := base.Clone()
	modified.Bouquet = ab.apply(base.Bouquet)
	return modified, nil
}

// AdjustRente changes the monthly annuity
type AdjustRente struct {
	Adjustment
}

func (ar *AdjustRente) Name() string {
	return "adjust_rente"
}

func (ar *AdjustRente) Description() string {
	return fmt.Sprintf("Adjust monthly rente by %s", ar.Adjustment)
}

func (ar *AdjustRente) Validate(base *domain.Deal) error {
	if err := requireBase(ar.Name(), base); err != nil {
		return err
	}
	if next := ar.apply(base.Rente); !next.IsPositive() {
		return NewTransformError(ar.Name(), "validate", fmt.Sprintf("resulting rente must be positive, got %s", next), nil)
	}
	return nil
}

func (ar *AdjustRente) Apply(base *domain.Deal) (*domain.Deal, error) {
	modified := base.Clone()
	modified.Rente = ar.apply(base.Rente)
	return modified, nil
}

// SetTaxeFonciere replaces the annual property tax
type SetTaxeFonciere struct {
	Amount decimal.Decimal
}

func (st *SetTaxeFonciere) Name() string {
	return "set_taxe_fonciere"
}

func (st *SetTaxeFonciere) Description() string {
	return fmt.Sprintf("Set annual taxe foncière to %s €", st.Amount)
}

func (st *SetTaxeFonciere) Validate(base *domain.Deal) error {
	if err := requireBase(st.Name(), base); err != nil {
		return err
	}
	if st.Amount.IsNegative() {
		return NewTransformError(st.Name(), "validate", fmt.Sprintf("amount must be non-negative, got %s", st.Amount), nil)
	}
	return nil
}

func (st *SetTaxeFonciere) Apply(base *domain.Deal) (*domain.Deal, error) {
	modified := base.Clone()
	modified.TaxeFonciere = st.Amount
	return modified, nil
}

// SetPrice replaces the declared property price
type SetPrice struct {
	Price decimal.Decimal
}

func (sp *SetPrice) Name() string {
	return "set_price"
}

func (sp *SetPrice) Description() string {
	return fmt.Sprintf("Set property price to %s €", sp.Price)
}

func (sp *SetPrice) Validate(base *domain.Deal) error {
	if err := requireBase(sp.Name(), base); err != nil {
		return err
	}
	if !sp.Price.IsPositive() {
		return NewTransformError(sp.Name(), "validate", fmt.Sprintf("price must be positive, got %s", sp.Price), nil)
	}
	return nil
}

func (sp *SetPrice) Apply(base *domain.Deal) (*domain.Deal, error) {
	modified := base.Clone()
	modified.PropertyPrice = sp.Price
	return modified, nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/viagerpro/internal/domain"
)

// Age bounds accepted for occupants. The engine itself only clamps to its
// table domain; rejecting out-of-range ages happens here.
const (
	MinOccupantAge = 50
	MaxOccupantAge = 110
)

// FieldError is a single validation problem
type FieldError struct {
	Field   string
	Message string
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("%s %s", fe.Field, fe.Message)
}

// ValidationError collects every problem found in a deal
type ValidationError struct {
	Deal     string
	Problems []FieldError
}

func (ve *ValidationError) Error() string {
	msgs := make([]string, len(ve.Problems))
	for i, p := range ve.Problems {
		msgs[i] = p.Error()
	}
	if ve.Deal != "" {
		return fmt.Sprintf("deal %q: %s", ve.Deal, strings.Join(msgs, "; "))
	}
	return strings.Join(msgs, "; ")
}

func (ve *ValidationError) add(field, format string, args ...interface{}) {
	ve.Problems = append(ve.Problems, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// ValidateDeal enforces the caller-side contract of the engine: required
// amounts present and positive, non-negative optional amounts, seller age
// within [50, 110] and a known gender.
func ValidateDeal(deal *domain.Deal) error {
	ve := &ValidationError{Deal: deal.Name}

	if !deal.PropertyPrice.IsPositive() {
		ve.add("property_price", "must be greater than 0")
	}
	if !deal.Surface.IsPositive() {
		ve.add("surface", "must be greater than 0")
	}
	if !deal.Bouquet.IsPositive() {
		ve.add("bouquet", "must be greater than 0")
	}
	if !deal.Rente.IsPositive() {
		ve.add("rente", "must be greater than 0")
	}
	if deal.TaxeFonciere.IsNegative() {
		ve.add("taxe_fonciere", "cannot be negative")
	}
	if deal.AvgPriceM2.IsNegative() {
		ve.add("avg_price_m2", "cannot be negative")
	}
	validatePerson(ve, "seller", deal.Seller)
	if deal.Partner != nil {
		validatePerson(ve, "partner", *deal.Partner)
	}

	if len(ve.Problems) > 0 {
		return ve
	}
	return nil
}

func validatePerson(ve *ValidationError, prefix string, p domain.Person) {
	if p.Age < MinOccupantAge || p.Age > MaxOccupantAge {
		ve.add(prefix+".age", "must be between %d and %d, got %d", MinOccupantAge, MaxOccupantAge, p.Age)
	}
	if !p.Gender.Valid() {
		ve.add(prefix+".gender", "must be male or female, got %q", p.Gender)
	}
}

// NormalizePartner drops a partner whose age is outside the accepted range,
// turning the deal into a single-occupant deal. It reports whether the
// partner was dropped.
func NormalizePartner(deal *domain.Deal) bool {
	if deal.Partner == nil {
		return false
	}
	if deal.Partner.Age < MinOccupantAge || deal.Partner.Age > MaxOccupantAge {
		deal.Partner = nil
		return true
	}
	return false
}

// DealWarnings lists non-fatal issues, such as disease codes the catalog
// does not know (they are evaluated as "none")
func DealWarnings(deal *domain.Deal) []string {
	var warnings []string
	check := func(who string, p domain.Person) {
		if p.Disease != "" && !p.Disease.Known() {
			warnings = append(warnings, fmt.Sprintf("%s: unknown disease code %q, evaluated as %q", who, p.Disease, domain.DiseaseNone))
		}
	}
	check("seller", deal.Seller)
	if deal.Partner != nil {
		check("partner", *deal.Partner)
	}
	if deal.AvgPriceM2.IsZero() {
		warnings = append(warnings, "avg_price_m2 not set: estimated value falls back to the property price")
	}
	return warnings
}

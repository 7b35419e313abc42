// Package mortality holds the actuarial reference tables and the survival
// models built on them: the life-expectancy estimator, the disease impact
// adjuster and the couple last-survivor model.
package mortality

import (
	"fmt"
	"sync"

	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/rgehrsitz/viagerpro/internal/numeric"
	"github.com/shopspring/decimal"
)

const (
	// MinTableAge and MaxTableAge bound every age-indexed table
	MinTableAge = 50
	MaxTableAge = 100

	tableSize = MaxTableAge - MinTableAge + 1
)

var (
	// LifeExpectancyFallback is returned when a life-expectancy entry is missing
	LifeExpectancyFallback = decimal.NewFromInt(5)

	// DUHFallback is returned when a coefficient entry is missing
	DUHFallback = decimal.NewFromFloat(0.20)

	minDUH = decimal.NewFromFloat(0.10)
	maxDUH = decimal.NewFromFloat(0.60)

	maxMultiplier = decimal.NewFromFloat(1.1)
)

type ageTable [tableSize]decimal.NullDecimal

// at clamps age to the table domain and returns the entry, or fallback when
// the entry is not populated
func (t *ageTable) at(age int, fallback decimal.Decimal) decimal.Decimal {
	entry := t[numeric.ClampInt(age, MinTableAge, MaxTableAge)-MinTableAge]
	if !entry.Valid {
		return fallback
	}
	return entry.Decimal
}

func newAgeTable(values []decimal.Decimal) ageTable {
	var t ageTable
	for i, v := range values {
		if i >= tableSize {
			break
		}
		t[i] = decimal.NullDecimal{Decimal: v, Valid: true}
	}
	return t
}

// Tables is an immutable set of reference tables. A new version replaces the
// whole set; there is no way to edit a table in place.
type Tables struct {
	version  string
	male     ageTable
	female   ageTable
	duh      ageTable
	diseases map[domain.DiseaseCode]domain.DiseaseProfile
}

// TableSpec is the raw form of a table set, as read from a reference file.
// Age-indexed slices start at age 50 and must hold 51 entries.
type TableSpec struct {
	Version         string                  `yaml:"version" json:"version"`
	LifeExpectancy  LifeExpectancySpec      `yaml:"life_expectancy" json:"life_expectancy"`
	DUHCoefficients []decimal.Decimal       `yaml:"duh_coefficients" json:"duh_coefficients"`
	Diseases        []domain.DiseaseProfile `yaml:"diseases" json:"diseases"`
}

// LifeExpectancySpec holds the per-gender columns of a life-expectancy table
type LifeExpectancySpec struct {
	Male   []decimal.Decimal `yaml:"male" json:"male"`
	Female []decimal.Decimal `yaml:"female" json:"female"`
}

// NewTables validates spec and builds a table set from it. Any problem rejects
// the whole set.
func NewTables(spec TableSpec) (*Tables, error) {
	if err := validateColumn("male life expectancy", spec.LifeExpectancy.Male); err != nil {
		return nil, err
	}
	if err := validateColumn("female life expectancy", spec.LifeExpectancy.Female); err != nil {
		return nil, err
	}
	if err := validateDUH(spec.DUHCoefficients); err != nil {
		return nil, err
	}

	diseases := make(map[domain.DiseaseCode]domain.DiseaseProfile, len(spec.Diseases))
	for _, d := range spec.Diseases {
		if !d.Code.Known() {
			return nil, fmt.Errorf("disease catalog: unknown code %q", d.Code)
		}
		if d.LifeReductionYears.IsNegative() {
			return nil, fmt.Errorf("disease catalog: %s has a negative life reduction", d.Code)
		}
		if !d.SurvivalMultiplier.IsPositive() || d.SurvivalMultiplier.GreaterThan(maxMultiplier) {
			return nil, fmt.Errorf("disease catalog: %s multiplier %s outside (0, 1.1]", d.Code, d.SurvivalMultiplier)
		}
		diseases[d.Code] = d
	}
	if _, ok := diseases[domain.DiseaseNone]; !ok {
		return nil, fmt.Errorf("disease catalog: missing the %q baseline", domain.DiseaseNone)
	}

	version := spec.Version
	if version == "" {
		version = "custom"
	}

	return &Tables{
		version:  version,
		male:     newAgeTable(spec.LifeExpectancy.Male),
		female:   newAgeTable(spec.LifeExpectancy.Female),
		duh:      newAgeTable(spec.DUHCoefficients),
		diseases: diseases,
	}, nil
}

func validateColumn(name string, values []decimal.Decimal) error {
	if len(values) != tableSize {
		return fmt.Errorf("%s: expected %d entries (ages %d-%d), got %d", name, tableSize, MinTableAge, MaxTableAge, len(values))
	}
	for i := 1; i < len(values); i++ {
		if !values[i].LessThan(values[i-1]) {
			return fmt.Errorf("%s: value at age %d is not below age %d", name, MinTableAge+i, MinTableAge+i-1)
		}
	}
	if !values[len(values)-1].IsPositive() {
		return fmt.Errorf("%s: values must be positive", name)
	}
	return nil
}

func validateDUH(values []decimal.Decimal) error {
	if len(values) != tableSize {
		return fmt.Errorf("duh coefficients: expected %d entries, got %d", tableSize, len(values))
	}
	for i, v := range values {
		if v.LessThan(minDUH) || v.GreaterThan(maxDUH) {
			return fmt.Errorf("duh coefficients: %s at age %d outside [0.10, 0.60]", v, MinTableAge+i)
		}
		if i > 0 && v.GreaterThan(values[i-1]) {
			return fmt.Errorf("duh coefficients: increase at age %d", MinTableAge+i)
		}
	}
	return nil
}

// Version identifies the table set
func (t *Tables) Version() string {
	return t.version
}

// Spec returns the raw form of the table set
func (t *Tables) Spec() TableSpec {
	spec := TableSpec{Version: t.version}
	for i := 0; i < tableSize; i++ {
		spec.LifeExpectancy.Male = append(spec.LifeExpectancy.Male, t.male[i].Decimal)
		spec.LifeExpectancy.Female = append(spec.LifeExpectancy.Female, t.female[i].Decimal)
		spec.DUHCoefficients = append(spec.DUHCoefficients, t.duh[i].Decimal)
	}
	spec.Diseases = t.Diseases()
	return spec
}

// Disease returns the catalog profile for code; unknown codes resolve to "none"
func (t *Tables) Disease(code domain.DiseaseCode) domain.DiseaseProfile {
	if d, ok := t.diseases[code]; ok {
		return d
	}
	return t.diseases[domain.DiseaseNone]
}

// Diseases lists the catalog in display order
func (t *Tables) Diseases() []domain.DiseaseProfile {
	out := make([]domain.DiseaseProfile, 0, len(t.diseases))
	for _, code := range domain.DiseaseCodes {
		if d, ok := t.diseases[code]; ok {
			out = append(out, d)
		}
	}
	return out
}

// DUHCoefficient returns the occupancy-right fraction for age, clamped to the table domain
func (t *Tables) DUHCoefficient(age int) decimal.Decimal {
	return t.duh.at(age, DUHFallback)
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the built-in reference tables
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := NewTables(defaultSpec())
		if err != nil {
			panic(fmt.Sprintf("mortality: built-in tables are invalid: %v", err))
		}
		defaultTables = t
	})
	return defaultTables
}

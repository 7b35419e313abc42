package breakeven

import (
	"errors"
	"testing"

	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/shopspring/decimal"
)

func dptr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestDefaultConstraints(t *testing.T) {
	deal := &domain.Deal{PropertyPrice: decimal.NewFromInt(300000)}
	c := DefaultConstraints(deal)

	if c.MinRente == nil || !c.MinRente.Equal(decimal.NewFromInt(1)) {
		t.Errorf("Expected MinRente 1, got %v", c.MinRente)
	}
	if c.MaxRente == nil || !c.MaxRente.Equal(decimal.NewFromInt(300000)) {
		t.Errorf("Expected MaxRente 300000, got %v", c.MaxRente)
	}
	if c.MaxBouquet == nil || !c.MaxBouquet.Equal(deal.PropertyPrice) {
		t.Errorf("Expected MaxBouquet to equal the property price, got %v", c.MaxBouquet)
	}
}

func TestConstraints_Validate(t *testing.T) {
	tests := []struct {
		name    string
		c       Constraints
		wantErr bool
	}{
		{"empty", Constraints{}, false},
		{"valid rente range", Constraints{MinRente: dptr(100), MaxRente: dptr(2000)}, false},
		{"inverted rente range", Constraints{MinRente: dptr(2000), MaxRente: dptr(100)}, true},
		{"zero min bouquet", Constraints{MinBouquet: dptr(0)}, true},
		{"inverted bouquet range", Constraints{MinBouquet: dptr(50000), MaxBouquet: dptr(1000)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if _, ok := err.(*BreakEvenError); !ok {
					t.Errorf("Expected BreakEvenError, got %T", err)
				}
			}
		})
	}
}

func TestConstraints_WithDefaults(t *testing.T) {
	deal := &domain.Deal{PropertyPrice: decimal.NewFromInt(200000)}
	c := Constraints{MaxRente: dptr(1500)}.withDefaults(deal)

	if !c.MaxRente.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("Expected explicit MaxRente to be kept, got %s", c.MaxRente)
	}
	if !c.MaxBouquet.Equal(decimal.NewFromInt(200000)) {
		t.Errorf("Expected default MaxBouquet, got %s", c.MaxBouquet)
	}
}

func TestParseTarget(t *testing.T) {
	for _, s := range []string{"max_rente", "MAX_BOUQUET", " fair_rente ", "all"} {
		if _, err := ParseTarget(s); err != nil {
			t.Errorf("ParseTarget(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseTarget("retirement_date"); err == nil {
		t.Error("Expected error for unknown target")
	}
}

func TestDefaultSolverOptions(t *testing.T) {
	opts := DefaultSolverOptions()

	if !opts.Tolerance.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Expected tolerance 50, got %s", opts.Tolerance)
	}
	if opts.MaxIterations != 60 {
		t.Errorf("Expected 60 iterations, got %d", opts.MaxIterations)
	}
}

func TestBreakEvenError(t *testing.T) {
	err := &BreakEvenError{Operation: "test_op", Message: "test message"}
	if err.Error() != "test_op: test message" {
		t.Errorf("Unexpected error string: %s", err.Error())
	}
	if err.Unwrap() != nil {
		t.Error("Expected nil cause")
	}

	cause := errors.New("underlying error")
	wrapped := &BreakEvenError{Operation: "test_op", Message: "test message", Cause: cause}
	if wrapped.Error() != "test_op: test message: underlying error" {
		t.Errorf("Unexpected error string: %s", wrapped.Error())
	}
	if !errors.Is(wrapped, cause) {
		t.Error("Expected errors.Is to find the cause")
	}
}

package breakeven

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/shopspring/decimal"
)

// OptimizationTarget defines which payment the solver searches for
type OptimizationTarget string

const (
	TargetMaxRente   OptimizationTarget = "max_rente"   // Largest rente that keeps the deal profitable
	TargetMaxBouquet OptimizationTarget = "max_bouquet" // Largest bouquet that keeps the deal profitable
	TargetFairRente  OptimizationTarget = "fair_rente"  // Rente at which savings reach zero
	TargetAll        OptimizationTarget = "all"
)

// Targets lists the single-payment targets in evaluation order
var Targets = []OptimizationTarget{TargetMaxRente, TargetMaxBouquet, TargetFairRente}

// ParseTarget maps a CLI value to a target
func ParseTarget(s string) (OptimizationTarget, error) {
	t := OptimizationTarget(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TargetMaxRente, TargetMaxBouquet, TargetFairRente, TargetAll:
		return t, nil
	}
	return "", fmt.Errorf("unknown target %q (want max_rente, max_bouquet, fair_rente or all)", s)
}

// Constraints define search bounds, in euros
type Constraints struct {
	MinRente   *decimal.Decimal `json:"min_rente,omitempty"`
	MaxRente   *decimal.Decimal `json:"max_rente,omitempty"`
	MinBouquet *decimal.Decimal `json:"min_bouquet,omitempty"`
	MaxBouquet *decimal.Decimal `json:"max_bouquet,omitempty"`
}

// DefaultConstraints bounds both payments between 1 € and the property price
func DefaultConstraints(deal *domain.Deal) Constraints {
	one := decimal.NewFromInt(1)
	minRente, minBouquet := one, one
	maxRente, maxBouquet := deal.PropertyPrice, deal.PropertyPrice

	return Constraints{
		MinRente:   &minRente,
		MaxRente:   &maxRente,
		MinBouquet: &minBouquet,
		MaxBouquet: &maxBouquet,
	}
}

// OptimizationRequest defines the parameters for an optimization run
type OptimizationRequest struct {
	Deal          *domain.Deal       `json:"-"`
	Target        OptimizationTarget `json:"target"`
	Constraints   Constraints        `json:"constraints"`
	MaxIterations int                `json:"max_iterations"`
	Tolerance     decimal.Decimal    `json:"tolerance"` // Savings tolerance for fair_rente, in euros
}

// OptimizationResult contains the results of an optimization run
type OptimizationResult struct {
	Request         OptimizationRequest `json:"request"`
	Success         bool                `json:"success"`
	Iterations      int                 `json:"iterations"`
	ConvergenceInfo string              `json:"convergence_info"`

	OptimalRente   *decimal.Decimal `json:"optimal_rente,omitempty"`
	OptimalBouquet *decimal.Decimal `json:"optimal_bouquet,omitempty"`

	// Results at the optimal payment
	Valuation       *domain.ValuationResult `json:"valuation"`
	TotalCost       decimal.Decimal         `json:"total_cost"`
	Savings         decimal.Decimal         `json:"savings"`
	BreakEvenMonths int                     `json:"break_even_months"`
	DurationMonths  int                     `json:"duration_months"`

	// Comparison to the deal as submitted
	BaseValuation     *domain.ValuationResult `json:"base_valuation,omitempty"`
	PaymentDiff       decimal.Decimal         `json:"payment_diff"`
	SavingsDiffToBase decimal.Decimal         `json:"savings_diff_to_base"`
}

// MultiTargetResult contains results when solving every target for one deal
type MultiTargetResult struct {
	DealName        string               `json:"deal_name"`
	Results         []OptimizationResult `json:"results"`
	Failures        map[string]string    `json:"failures,omitempty"`
	Recommendations []string             `json:"recommendations"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance     decimal.Decimal // Savings tolerance for fair_rente
	MaxIterations int             // Maximum iterations
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromInt(50), // 50 € of savings
		MaxIterations: 60,
	}
}

// Validate checks if constraints are internally consistent
func (c *Constraints) Validate() error {
	check := func(name string, lo, hi *decimal.Decimal) error {
		if lo != nil && !lo.IsPositive() {
			return &BreakEvenError{
				Operation: "validate_constraints",
				Message:   fmt.Sprintf("min_%s must be positive", name),
			}
		}
		if lo != nil && hi != nil && lo.GreaterThan(*hi) {
			return &BreakEvenError{
				Operation: "validate_constraints",
				Message:   fmt.Sprintf("min_%s cannot be greater than max_%s", name, name),
			}
		}
		return nil
	}

	if err := check("rente", c.MinRente, c.MaxRente); err != nil {
		return err
	}
	return check("bouquet", c.MinBouquet, c.MaxBouquet)
}

// withDefaults fills unset bounds from DefaultConstraints
func (c Constraints) withDefaults(deal *domain.Deal) Constraints {
	d := DefaultConstraints(deal)
	if c.MinRente == nil {
		c.MinRente = d.MinRente
	}
	if c.MaxRente == nil {
		c.MaxRente = d.MaxRente
	}
	if c.MinBouquet == nil {
		c.MinBouquet = d.MinBouquet
	}
	if c.MaxBouquet == nil {
		c.MaxBouquet = d.MaxBouquet
	}
	return c
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}

package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/viagerpro/internal/calculation"
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/rgehrsitz/viagerpro/internal/transform"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Solver searches the payment values at which a deal changes character
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Optimize performs optimization based on the request
func (s *Solver) Optimize(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	if req.Deal == nil {
		return nil, &BreakEvenError{
			Operation: "optimize",
			Message:   "deal is required",
		}
	}
	if err := req.Constraints.Validate(); err != nil {
		return nil, err
	}

	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}
	req.Constraints = req.Constraints.withDefaults(req.Deal)

	switch req.Target {
	case TargetMaxRente:
		return s.searchMaxProfitable(ctx, req, "optimize_max_rente", *req.Constraints.MinRente, *req.Constraints.MaxRente, s.withRente)
	case TargetMaxBouquet:
		return s.searchMaxProfitable(ctx, req, "optimize_max_bouquet", *req.Constraints.MinBouquet, *req.Constraints.MaxBouquet, s.withBouquet)
	case TargetFairRente:
		return s.searchFairRente(ctx, req)
	default:
		return nil, &BreakEvenError{
			Operation: "optimize",
			Message:   fmt.Sprintf("unsupported optimization target: %s", req.Target),
		}
	}
}

type dealBuilder func(base *domain.Deal, value decimal.Decimal) (*domain.Deal, error)

func (s *Solver) withRente(base *domain.Deal, value decimal.Decimal) (*domain.Deal, error) {
	return transform.ApplyTransforms(base, []transform.DealTransform{
		&transform.AdjustRente{Adjustment: transform.Adjustment{Delta: value.Sub(base.Rente)}},
	})
}

func (s *Solver) withBouquet(base *domain.Deal, value decimal.Decimal) (*domain.Deal, error) {
	return transform.ApplyTransforms(base, []transform.DealTransform{
		&transform.AdjustBouquet{Adjustment: transform.Adjustment{Delta: value.Sub(base.Bouquet)}},
	})
}

func (s *Solver) engine() *calculation.CalculationEngine {
	if s.CalcEngine == nil {
		s.CalcEngine = calculation.NewCalculationEngine()
	}
	return s.CalcEngine
}

// searchMaxProfitable finds the largest whole-euro value in [min, max] that keeps
// the break-even point beyond the expected duration. Profitability only falls
// as either payment rises, so a bisection over euros applies.
func (s *Solver) searchMaxProfitable(ctx context.Context, req OptimizationRequest, op string, min, max decimal.Decimal, build dealBuilder) (*OptimizationResult, error) {
	lo := min.Ceil()
	hi := max.Floor()
	if lo.GreaterThan(hi) {
		return nil, &BreakEvenError{Operation: op, Message: "search range holds no whole euro value"}
	}

	iterations := 0
	evaluate := func(v decimal.Decimal) (*domain.ValuationResult, error) {
		iterations++
		deal, err := build(req.Deal, v)
		if err != nil {
			return nil, &BreakEvenError{Operation: op, Message: "failed to apply payment transform", Cause: err}
		}
		return s.engine().Calculate(deal), nil
	}

	loResult, err := evaluate(lo)
	if err != nil {
		return nil, err
	}
	if !loResult.BreakEven.IsProfitable {
		return nil, &BreakEvenError{
			Operation: op,
			Message:   fmt.Sprintf("deal is not profitable even at %s €", lo.String()),
		}
	}

	hiResult, err := evaluate(hi)
	if err != nil {
		return nil, err
	}
	if hiResult.BreakEven.IsProfitable {
		result := s.evaluateResult(req, hi, hiResult, iterations)
		result.Success = true
		result.ConvergenceInfo = "Upper bound is still profitable"
		return result, nil
	}

	for hi.Sub(lo).GreaterThan(decimal.NewFromInt(1)) {
		if iterations >= req.MaxIterations {
			result := s.evaluateResult(req, lo, loResult, iterations)
			result.ConvergenceInfo = fmt.Sprintf("Max iterations (%d) reached", req.MaxIterations)
			return result, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid := lo.Add(hi).Div(two).Floor()
		midResult, err := evaluate(mid)
		if err != nil {
			return nil, err
		}
		if midResult.BreakEven.IsProfitable {
			lo, loResult = mid, midResult
		} else {
			hi = mid
		}
	}

	result := s.evaluateResult(req, lo, loResult, iterations)
	result.Success = true
	result.ConvergenceInfo = "Binary search converged to the euro"
	return result, nil
}

// searchFairRente finds the rente at which the viager costs the same as a
// direct purchase, within the savings tolerance
func (s *Solver) searchFairRente(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	const op = "optimize_fair_rente"
	lo := *req.Constraints.MinRente
	hi := *req.Constraints.MaxRente
	cent := decimal.New(1, -2)

	iterations := 0
	evaluate := func(v decimal.Decimal) (*domain.ValuationResult, error) {
		iterations++
		deal, err := s.withRente(req.Deal, v)
		if err != nil {
			return nil, &BreakEvenError{Operation: op, Message: "failed to apply rente transform", Cause: err}
		}
		return s.engine().Calculate(deal), nil
	}

	loResult, err := evaluate(lo)
	if err != nil {
		return nil, err
	}
	if loResult.Savings.LessThan(req.Tolerance.Neg()) {
		return nil, &BreakEvenError{
			Operation: op,
			Message:   fmt.Sprintf("deal costs more than a direct purchase even at %s € per month", lo.String()),
		}
	}

	hiResult, err := evaluate(hi)
	if err != nil {
		return nil, err
	}
	if hiResult.Savings.GreaterThan(req.Tolerance) {
		return nil, &BreakEvenError{
			Operation: op,
			Message:   fmt.Sprintf("deal still saves money at %s € per month", hi.String()),
		}
	}

	var best *domain.ValuationResult
	bestRente := lo
	for hi.Sub(lo).GreaterThanOrEqual(cent) && iterations < req.MaxIterations {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid := lo.Add(hi).Div(two).Round(2)
		midResult, err := evaluate(mid)
		if err != nil {
			return nil, err
		}
		best, bestRente = midResult, mid

		if midResult.Savings.Abs().LessThanOrEqual(req.Tolerance) {
			result := s.evaluateResult(req, mid, midResult, iterations)
			result.Success = true
			result.ConvergenceInfo = fmt.Sprintf("Savings within %s € of zero", req.Tolerance.StringFixed(0))
			return result, nil
		}

		if midResult.Savings.IsPositive() {
			lo = mid
		} else {
			hi = mid
		}
	}

	if best == nil {
		best = loResult
	}
	result := s.evaluateResult(req, bestRente, best, iterations)
	result.ConvergenceInfo = fmt.Sprintf("Stopped after %d iterations without reaching the tolerance", iterations)
	return result, nil
}

// evaluateResult builds an optimization result for the payment found
func (s *Solver) evaluateResult(req OptimizationRequest, value decimal.Decimal, valuation *domain.ValuationResult, iterations int) *OptimizationResult {
	result := &OptimizationResult{
		Request:         req,
		Iterations:      iterations,
		Valuation:       valuation,
		TotalCost:       valuation.TotalCost,
		Savings:         valuation.Savings,
		BreakEvenMonths: valuation.BreakEven.Months,
		DurationMonths:  valuation.DurationMonths,
	}

	optimal := value
	current := req.Deal.Rente
	if req.Target == TargetMaxBouquet {
		result.OptimalBouquet = &optimal
		current = req.Deal.Bouquet
	} else {
		result.OptimalRente = &optimal
	}

	base := s.engine().Calculate(req.Deal)
	result.BaseValuation = base
	result.PaymentDiff = value.Sub(current)
	result.SavingsDiffToBase = valuation.Savings.Sub(base.Savings)

	return result
}

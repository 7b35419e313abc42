package breakeven

import (
	"context"
	"strings"
	"testing"

	"github.com/rgehrsitz/viagerpro/internal/calculation"
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parisDeal() *domain.Deal {
	return &domain.Deal{
		Name:          "paris",
		PropertyPrice: decimal.NewFromInt(300000),
		Surface:       decimal.NewFromInt(60),
		Bouquet:       decimal.NewFromInt(50000),
		Rente:         decimal.NewFromInt(800),
		TaxeFonciere:  decimal.NewFromInt(1200),
		AvgPriceM2:    decimal.NewFromInt(5000),
		Seller:        domain.Person{Age: 65, Gender: domain.Male, Disease: domain.DiseaseNone},
	}
}

func TestNewSolver(t *testing.T) {
	calcEngine := calculation.NewCalculationEngine()
	options := DefaultSolverOptions()

	solver := NewSolver(calcEngine, options)

	if solver == nil {
		t.Fatal("Expected solver to be created, got nil")
	}
	if solver.CalcEngine != calcEngine {
		t.Error("Expected CalcEngine to match input")
	}
	if solver.Options != options {
		t.Error("Expected Options to match input")
	}
}

func TestSolver_Optimize_InvalidRequests(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())

	_, err := solver.Optimize(context.Background(), OptimizationRequest{Target: TargetMaxRente})
	assert.Error(t, err, "missing deal")

	_, err = solver.Optimize(context.Background(), OptimizationRequest{
		Deal:        parisDeal(),
		Target:      TargetMaxRente,
		Constraints: Constraints{MinRente: dptr(900), MaxRente: dptr(100)},
	})
	assert.Error(t, err, "inverted range")

	result, err := solver.Optimize(context.Background(), OptimizationRequest{
		Deal:   parisDeal(),
		Target: "retirement_date",
	})
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestSolver_MaxRente(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())

	result, err := solver.Optimize(context.Background(), OptimizationRequest{
		Deal:   parisDeal(),
		Target: TargetMaxRente,
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	require.NotNil(t, result.OptimalRente)
	assert.True(t, result.OptimalRente.Equal(decimal.NewFromInt(916)), "optimal rente %s", result.OptimalRente)
	assert.Nil(t, result.OptimalBouquet)
	assert.Equal(t, 233, result.BreakEvenMonths)
	assert.Equal(t, 232, result.DurationMonths)
	assert.True(t, result.PaymentDiff.Equal(decimal.NewFromInt(116)))
	assert.True(t, result.SavingsDiffToBase.Equal(decimal.NewFromInt(-26912)), "savings diff %s", result.SavingsDiffToBase)
	assert.LessOrEqual(t, result.Iterations, DefaultSolverOptions().MaxIterations)
}

func TestSolver_MaxBouquet(t *testing.T) {
	solver := NewDefaultSolver(nil)

	result, err := solver.Optimize(context.Background(), OptimizationRequest{
		Deal:   parisDeal(),
		Target: TargetMaxBouquet,
	})
	require.NoError(t, err)

	require.NotNil(t, result.OptimalBouquet)
	assert.True(t, result.OptimalBouquet.Equal(decimal.NewFromInt(77100)), "optimal bouquet %s", result.OptimalBouquet)
	assert.True(t, result.PaymentDiff.Equal(decimal.NewFromInt(27100)))
	assert.True(t, result.Valuation.BreakEven.IsProfitable)
}

func TestSolver_MaxRente_UpperBoundProfitable(t *testing.T) {
	solver := NewDefaultSolver(nil)

	result, err := solver.Optimize(context.Background(), OptimizationRequest{
		Deal:        parisDeal(),
		Target:      TargetMaxRente,
		Constraints: Constraints{MaxRente: dptr(850)},
	})
	require.NoError(t, err)
	assert.True(t, result.OptimalRente.Equal(decimal.NewFromInt(850)))
	assert.Equal(t, "Upper bound is still profitable", result.ConvergenceInfo)
}

func TestSolver_MaxRente_NeverProfitable(t *testing.T) {
	solver := NewDefaultSolver(nil)

	_, err := solver.Optimize(context.Background(), OptimizationRequest{
		Deal:        parisDeal(),
		Target:      TargetMaxRente,
		Constraints: Constraints{MinRente: dptr(1200), MaxRente: dptr(2000)},
	})
	require.Error(t, err)

	var bee *BreakEvenError
	require.ErrorAs(t, err, &bee)
	assert.Equal(t, "optimize_max_rente", bee.Operation)
}

func TestSolver_FairRente(t *testing.T) {
	solver := NewDefaultSolver(nil)

	result, err := solver.Optimize(context.Background(), OptimizationRequest{
		Deal:   parisDeal(),
		Target: TargetFairRente,
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	require.NotNil(t, result.OptimalRente)
	// savings = 237640 - 232 × rente
	assert.True(t, result.OptimalRente.GreaterThan(decimal.NewFromFloat(1024.09)), "rente %s", result.OptimalRente)
	assert.True(t, result.OptimalRente.LessThan(decimal.NewFromFloat(1024.53)), "rente %s", result.OptimalRente)
	assert.True(t, result.Savings.Abs().LessThanOrEqual(decimal.NewFromInt(50)), "savings %s", result.Savings)
}

func TestSolver_FairRente_BouquetTooHigh(t *testing.T) {
	deal := parisDeal()
	deal.Bouquet = decimal.NewFromInt(320000)

	_, err := NewDefaultSolver(nil).Optimize(context.Background(), OptimizationRequest{
		Deal:   deal,
		Target: TargetFairRente,
	})
	assert.Error(t, err)
}

func TestSolver_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDefaultSolver(nil).Optimize(ctx, OptimizationRequest{
		Deal:   parisDeal(),
		Target: TargetMaxRente,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolver_MaxIterations(t *testing.T) {
	result, err := NewDefaultSolver(nil).Optimize(context.Background(), OptimizationRequest{
		Deal:          parisDeal(),
		Target:        TargetMaxRente,
		MaxIterations: 4,
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.ConvergenceInfo, "Max iterations")
	assert.True(t, result.Valuation.BreakEven.IsProfitable, "best-so-far value stays profitable")
}

func TestSolver_OptimizeAll(t *testing.T) {
	solver := NewDefaultSolver(nil)

	multi, err := solver.OptimizeAll(context.Background(), parisDeal(), Constraints{})
	require.NoError(t, err)

	assert.Equal(t, "paris", multi.DealName)
	require.Len(t, multi.Results, 3)
	assert.Empty(t, multi.Failures)
	assert.Equal(t, []string{
		"The rente can rise to 916 € per month (+116 €) before the deal stops being profitable",
		"The bouquet can rise to 77100 € (+27100 €) before the deal stops being profitable",
	}, multi.Recommendations[:2])
	assert.True(t, strings.HasPrefix(multi.Recommendations[2], "At 1024."))
}

func TestSolver_OptimizeAll_NegotiateDown(t *testing.T) {
	deal := parisDeal()
	deal.Rente = decimal.NewFromInt(1500)

	multi, err := NewDefaultSolver(nil).OptimizeAll(context.Background(), deal, Constraints{})
	require.NoError(t, err)

	assert.Contains(t, multi.Recommendations[0], "Negotiate the rente down to 916")
	assert.Contains(t, multi.Failures, string(TargetMaxBouquet), "no bouquet makes a 1500 € rente profitable")
}

func TestTableFormatter(t *testing.T) {
	solver := NewDefaultSolver(nil)
	result, err := solver.Optimize(context.Background(), OptimizationRequest{Deal: parisDeal(), Target: TargetMaxRente})
	require.NoError(t, err)

	out := (&TableFormatter{}).Format(result)
	assert.Contains(t, out, "BREAK-EVEN SOLVER RESULTS")
	assert.Contains(t, out, "Deal:         paris")
	assert.Contains(t, out, "Monthly Rente: 916.00 € (+116.00 € vs. current)")
	assert.Contains(t, out, "✓ Converged")

	multi, err := solver.OptimizeAll(context.Background(), parisDeal(), Constraints{})
	require.NoError(t, err)
	out = (&TableFormatter{}).FormatMulti(multi)
	assert.Contains(t, out, "max_bouquet")
	assert.Contains(t, out, "RECOMMENDATIONS")

	js, err := (&JSONFormatter{Pretty: true}).FormatMulti(multi)
	require.NoError(t, err)
	assert.Contains(t, js, `"deal_name": "paris"`)
}

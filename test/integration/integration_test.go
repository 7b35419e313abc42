package integration

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rgehrsitz/viagerpro/internal/breakeven"
	"github.com/rgehrsitz/viagerpro/internal/calculation"
	"github.com/rgehrsitz/viagerpro/internal/compare"
	"github.com/rgehrsitz/viagerpro/internal/config"
	"github.com/rgehrsitz/viagerpro/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dealsFile = "../testdata/deals.yaml"

func newEngine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.Clock = func() time.Time { return time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC) }
	return engine
}

func TestEndToEndCalculation(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile(dealsFile)
	require.NoError(t, err)
	require.Len(t, cfg.Deals, 2)

	results := newEngine().CalculateAll(cfg)
	require.Len(t, results, 2)

	paris := results[0]
	assert.Equal(t, "paris", paris.DealName)
	assert.Equal(t, 232, paris.DurationMonths)
	assert.True(t, paris.TotalCost.Equal(decimal.NewFromInt(271960)), "total cost %s", paris.TotalCost)
	assert.True(t, paris.Savings.Equal(decimal.NewFromInt(52040)), "savings %s", paris.Savings)
	assert.Equal(t, 263, paris.BreakEven.Months)
	assert.True(t, paris.BreakEven.IsProfitable)

	lyon := results[1]
	assert.True(t, lyon.IsCouple)
	require.NotNil(t, lyon.CoupleInfo)
}

func TestOutputGeneration(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile(dealsFile)
	require.NoError(t, err)
	results := newEngine().CalculateAll(cfg)

	for _, format := range output.FormatterNames() {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, output.GenerateReport(&buf, results, format))
			assert.Contains(t, buf.String(), "paris")
		})
	}
}

func TestCompareAndSolveAgree(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile(dealsFile)
	require.NoError(t, err)
	engine := newEngine()

	set, err := compare.NewCompareEngine(engine).Compare(context.Background(), cfg, compare.CompareOptions{
		BaseDealName: "paris",
		Templates:    []string{"rente_plus_10pct"},
		Deals:        []string{"lyon"},
	})
	require.NoError(t, err)
	require.Len(t, set.AlternativeResults, 2)
	assert.True(t, set.AlternativeResults[0].TotalCost.GreaterThan(set.BaseResult.TotalCost))

	deal, err := cfg.FindDeal("paris")
	require.NoError(t, err)
	result, err := breakeven.NewDefaultSolver(engine).Optimize(context.Background(), breakeven.OptimizationRequest{
		Deal:   deal,
		Target: breakeven.TargetMaxRente,
	})
	require.NoError(t, err)
	require.NotNil(t, result.OptimalRente)

	// The rente the solver accepts must be at least the one compare found profitable
	assert.True(t, result.OptimalRente.GreaterThanOrEqual(deal.Rente))
	assert.True(t, result.Valuation.BreakEven.IsProfitable)
}

func TestCalculationConsistency(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile(dealsFile)
	require.NoError(t, err)
	engine := newEngine()

	first := engine.CalculateAll(cfg)
	second := engine.CalculateAll(cfg)
	for i := range first {
		assert.True(t, first[i].TotalCost.Equal(second[i].TotalCost))
		assert.Equal(t, first[i].BreakEven.Months, second[i].BreakEven.Months)
		assert.True(t, first[i].BreakEven.Margin.Equal(second[i].BreakEven.Margin))
	}
}

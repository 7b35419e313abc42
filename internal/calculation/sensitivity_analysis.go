package calculation

import (
	"fmt"

	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/shopspring/decimal"
)

// SensitivityAnalyzer performs parameter sweep analysis over a deal
type SensitivityAnalyzer struct {
	calculationEngine *CalculationEngine
}

// NewSensitivityAnalyzer creates a new sensitivity analyzer
func NewSensitivityAnalyzer(engine *CalculationEngine) *SensitivityAnalyzer {
	if engine == nil {
		engine = NewCalculationEngine()
	}
	return &SensitivityAnalyzer{
		calculationEngine: engine,
	}
}

// AnalyzeSingleParameter sweeps one parameter of the deal between its bounds
func (sa *SensitivityAnalyzer) AnalyzeSingleParameter(
	deal *domain.Deal,
	parameter domain.SensitivityParameter,
) (*domain.ParameterSensitivityAnalysis, error) {
	if parameter.MaxValue.LessThan(parameter.MinValue) {
		return nil, fmt.Errorf("parameter %s: max %s is below min %s", parameter.Name, parameter.MaxValue, parameter.MinValue)
	}

	base, err := ParameterValue(deal, parameter.Name)
	if err != nil {
		return nil, err
	}
	parameter.BaseValue = base
	baseResult := sa.calculationEngine.Calculate(deal)

	values := sa.generateParameterValues(parameter)
	results := make([]domain.SensitivityResult, 0, len(values))

	for _, value := range values {
		modified, err := ApplyParameter(deal, parameter.Name, value)
		if err != nil {
			return nil, fmt.Errorf("failed to apply %s=%s: %w", parameter.Name, value, err)
		}

		r := sa.calculationEngine.Calculate(modified)
		results = append(results, domain.SensitivityResult{
			ParameterValue: value,
			KeyMetrics: domain.SensitivityMetrics{
				TotalCost:       r.TotalCost,
				Savings:         r.Savings,
				SavingsPercent:  r.SavingsPercent,
				DurationMonths:  r.DurationMonths,
				BreakEvenMonths: r.BreakEven.Months,
				IsProfitable:    r.BreakEven.IsProfitable,
				SavingsChange:   r.Savings.Sub(baseResult.Savings),
			},
		})
	}

	return &domain.ParameterSensitivityAnalysis{
		BaseDealName: deal.Name,
		Parameter:    parameter,
		Results:      results,
		Summary:      sa.calculateSensitivitySummary(results, parameter),
	}, nil
}

func (sa *SensitivityAnalyzer) generateParameterValues(param domain.SensitivityParameter) []decimal.Decimal {
	if param.Steps <= 1 {
		return []decimal.Decimal{param.BaseValue}
	}

	values := make([]decimal.Decimal, 0, param.Steps)
	stepSize := param.MaxValue.Sub(param.MinValue).Div(decimal.NewFromInt(int64(param.Steps - 1)))

	for i := 0; i < param.Steps; i++ {
		values = append(values, param.MinValue.Add(stepSize.Mul(decimal.NewFromInt(int64(i)))))
	}

	return values
}

func (sa *SensitivityAnalyzer) calculateSensitivitySummary(results []domain.SensitivityResult, parameter domain.SensitivityParameter) domain.SensitivitySummary {
	if len(results) == 0 {
		return domain.SensitivitySummary{}
	}

	summary := domain.SensitivitySummary{
		MinSavings: results[0].KeyMetrics.Savings,
		MaxSavings: results[0].KeyMetrics.Savings,
	}

	for i, r := range results {
		if r.KeyMetrics.Savings.LessThan(summary.MinSavings) {
			summary.MinSavings = r.KeyMetrics.Savings
		}
		if r.KeyMetrics.Savings.GreaterThan(summary.MaxSavings) {
			summary.MaxSavings = r.KeyMetrics.Savings
		}
		if r.KeyMetrics.IsProfitable {
			summary.ProfitableSteps++
		}
		if i > 0 && summary.ProfitabilityFlip == nil && r.KeyMetrics.IsProfitable != results[i-1].KeyMetrics.IsProfitable {
			flip := r.ParameterValue
			summary.ProfitabilityFlip = &flip
		}
	}
	summary.SavingsRange = summary.MaxSavings.Sub(summary.MinSavings)

	switch {
	case summary.ProfitableSteps == len(results):
		summary.RiskLevel = "LOW"
	case summary.ProfitableSteps*2 >= len(results):
		summary.RiskLevel = "MEDIUM"
	default:
		summary.RiskLevel = "HIGH"
	}

	switch summary.RiskLevel {
	case "LOW":
		summary.Recommendations = append(summary.Recommendations,
			fmt.Sprintf("Break-even stays beyond the expected duration across the whole %s range", parameter.Name))
	case "MEDIUM":
		summary.Recommendations = append(summary.Recommendations,
			fmt.Sprintf("Moderate sensitivity to %s: the deal loses its margin at the edge of the range", parameter.Name))
	default:
		summary.Recommendations = append(summary.Recommendations,
			fmt.Sprintf("⚠️ High sensitivity to %s: most of the range breaks even before the expected duration", parameter.Name))
	}
	if summary.ProfitabilityFlip != nil {
		summary.Recommendations = append(summary.Recommendations,
			fmt.Sprintf("Profitability changes at %s = %s", parameter.Name, summary.ProfitabilityFlip.StringFixed(0)))
	}

	return summary
}

// ParameterValue reads a sweepable parameter from the deal
func ParameterValue(deal *domain.Deal, name string) (decimal.Decimal, error) {
	switch name {
	case "rente":
		return deal.Rente, nil
	case "bouquet":
		return deal.Bouquet, nil
	case "age":
		return decimal.NewFromInt(int64(deal.Seller.Age)), nil
	case "taxe_fonciere":
		return deal.TaxeFonciere, nil
	case "property_price":
		return deal.PropertyPrice, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown sensitivity parameter: %s", name)
	}
}

// ApplyParameter returns a copy of the deal with one parameter replaced
func ApplyParameter(deal *domain.Deal, name string, value decimal.Decimal) (*domain.Deal, error) {
	modified := deal.Clone()
	switch name {
	case "rente":
		modified.Rente = value
	case "bouquet":
		modified.Bouquet = value
	case "age":
		modified.Seller.Age = int(value.Round(0).IntPart())
	case "taxe_fonciere":
		modified.TaxeFonciere = value
	case "property_price":
		modified.PropertyPrice = value
	default:
		return nil, fmt.Errorf("unknown sensitivity parameter: %s", name)
	}
	return modified, nil
}

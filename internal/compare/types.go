package compare

import (
	"fmt"

	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single deal evaluation with its deltas to the base deal
type ComparisonResult struct {
	DealName    string                  `json:"dealName"`
	Description string                  `json:"description,omitempty"`
	Valuation   *domain.ValuationResult `json:"valuation"`

	// Key Metrics
	TotalCost       decimal.Decimal `json:"totalCost"`
	Savings         decimal.Decimal `json:"savings"`
	SavingsPercent  decimal.Decimal `json:"savingsPercent"`
	DurationMonths  int             `json:"durationMonths"`
	BreakEvenMonths int             `json:"breakEvenMonths"`
	SafetyMargin    int             `json:"safetyMarginMonths"` // break-even months minus expected duration
	IsProfitable    bool            `json:"isProfitable"`
	Profitability   string          `json:"profitability"`

	// Comparison to Base
	TotalCostDiff      decimal.Decimal `json:"totalCostDiff"`
	SavingsDiff        decimal.Decimal `json:"savingsDiff"`
	DurationMonthsDiff int             `json:"durationMonthsDiff"`
	BreakEvenDiff      int             `json:"breakEvenMonthsDiff"`
}

// ComparisonSet represents a collection of deal comparisons
type ComparisonSet struct {
	BaseDealName       string             `json:"baseDealName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath,omitempty"`
}

// MetricsCalculator extracts key metrics from valuation results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the comparison metrics for a valuation
func (mc *MetricsCalculator) CalculateMetrics(name string, result *domain.ValuationResult) ComparisonResult {
	return ComparisonResult{
		DealName:        name,
		Valuation:       result,
		TotalCost:       result.TotalCost,
		Savings:         result.Savings,
		SavingsPercent:  result.SavingsPercent,
		DurationMonths:  result.DurationMonths,
		BreakEvenMonths: result.BreakEven.Months,
		SafetyMargin:    result.BreakEven.Months - result.DurationMonths,
		IsProfitable:    result.BreakEven.IsProfitable,
		Profitability:   result.Profitability,
	}
}

// CalculateComparison computes the deltas between a deal and the base
func (mc *MetricsCalculator) CalculateComparison(alt, base ComparisonResult) ComparisonResult {
	alt.TotalCostDiff = alt.TotalCost.Sub(base.TotalCost)
	alt.SavingsDiff = alt.Savings.Sub(base.Savings)
	alt.DurationMonthsDiff = alt.DurationMonths - base.DurationMonths
	alt.BreakEvenDiff = alt.BreakEvenMonths - base.BreakEvenMonths
	return alt
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	// Find best deal by savings
	bestSavings := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.Savings.GreaterThan(bestSavings.Savings) {
			bestSavings = alt
		}
	}

	if bestSavings != base {
		diff := bestSavings.Savings.Sub(base.Savings)
		recommendations = append(recommendations,
			fmt.Sprintf("Best Savings: %s saves %s € more than %s", bestSavings.DealName, diff.StringFixed(0), base.DealName))
	}

	// Find widest safety margin
	safest := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.SafetyMargin > safest.SafetyMargin {
			safest = alt
		}
	}

	if safest != base {
		recommendations = append(recommendations,
			fmt.Sprintf("Widest Margin: %s breaks even %d months after the expected end of payments (base: %d)",
				safest.DealName, safest.SafetyMargin, base.SafetyMargin))
	}

	// Flag profitability flips
	for _, alt := range compSet.AlternativeResults {
		switch {
		case base.IsProfitable && !alt.IsProfitable:
			recommendations = append(recommendations,
				fmt.Sprintf("Warning: %s breaks even before the expected end of payments", alt.DealName))
		case !base.IsProfitable && alt.IsProfitable:
			recommendations = append(recommendations,
				fmt.Sprintf("Turnaround: %s breaks even after the expected end of payments", alt.DealName))
		}
	}

	return recommendations
}

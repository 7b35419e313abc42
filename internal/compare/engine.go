package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/viagerpro/internal/calculation"
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/rgehrsitz/viagerpro/internal/transform"
)

// CompareEngine orchestrates deal comparison
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewCalculationEngine()
	}
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseDealName string   // Name of the base deal; empty selects the first deal
	Templates    []string // Template variants of the base deal
	Deals        []string // Other deals of the same file
}

// Compare evaluates the base deal, each template variant of it, and each
// other named deal, in that order
func (ce *CompareEngine) Compare(
	ctx context.Context,
	config *domain.Configuration,
	options CompareOptions,
) (*ComparisonSet, error) {

	baseDeal, err := config.FindDeal(options.BaseDealName)
	if err != nil {
		return nil, fmt.Errorf("base deal: %w", err)
	}

	baseResult := ce.MetricsCalculator.CalculateMetrics(baseDeal.Name, ce.CalcEngine.Calculate(baseDeal))

	alternatives := []ComparisonResult{}

	for _, templateName := range options.Templates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}

		modified, err := transform.ApplyTemplate(baseDeal, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}
		modified.Name = baseDeal.Name + "_" + template.Name

		altResult := ce.MetricsCalculator.CalculateMetrics(modified.Name, ce.CalcEngine.Calculate(modified))
		altResult.Description = template.Description
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
	}

	for _, dealName := range options.Deals {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if dealName == "" {
			return nil, fmt.Errorf("alternative deal name cannot be empty")
		}

		deal, err := config.FindDeal(dealName)
		if err != nil {
			return nil, fmt.Errorf("alternative deal: %w", err)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(deal.Name, ce.CalcEngine.Calculate(deal))
		altResult.Description = deal.Description
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
	}

	compSet := &ComparisonSet{
		BaseDealName:       baseDeal.Name,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

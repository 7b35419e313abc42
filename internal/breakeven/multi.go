package breakeven

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/viagerpro/internal/domain"
)

// OptimizeAll solves every target for one deal. A target that has no answer
// for this deal is recorded in Failures; the call fails only when none succeeds.
func (s *Solver) OptimizeAll(ctx context.Context, deal *domain.Deal, constraints Constraints) (*MultiTargetResult, error) {
	if err := constraints.Validate(); err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, &BreakEvenError{Operation: "optimize_all", Message: "deal is required"}
	}

	multi := &MultiTargetResult{DealName: deal.Name}

	for _, target := range Targets {
		result, err := s.Optimize(ctx, OptimizationRequest{
			Deal:        deal,
			Target:      target,
			Constraints: constraints,
		})
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			if multi.Failures == nil {
				multi.Failures = make(map[string]string)
			}
			multi.Failures[string(target)] = err.Error()
			continue
		}
		multi.Results = append(multi.Results, *result)
	}

	if len(multi.Results) == 0 {
		return nil, &BreakEvenError{
			Operation: "optimize_all",
			Message:   "no target could be solved for this deal",
		}
	}

	multi.Recommendations = generateRecommendations(multi)
	return multi, nil
}

// generateRecommendations turns solved targets into negotiation advice
func generateRecommendations(multi *MultiTargetResult) []string {
	var recommendations []string

	for _, res := range multi.Results {
		switch res.Request.Target {
		case TargetMaxRente:
			if res.PaymentDiff.IsNegative() {
				recommendations = append(recommendations,
					fmt.Sprintf("Negotiate the rente down to %s € per month (%s €) for the deal to break even after the expected duration",
						res.OptimalRente.StringFixed(0), res.PaymentDiff.StringFixed(0)))
			} else {
				recommendations = append(recommendations,
					fmt.Sprintf("The rente can rise to %s € per month (+%s €) before the deal stops being profitable",
						res.OptimalRente.StringFixed(0), res.PaymentDiff.StringFixed(0)))
			}
		case TargetMaxBouquet:
			if res.PaymentDiff.IsNegative() {
				recommendations = append(recommendations,
					fmt.Sprintf("Negotiate the bouquet down to %s € (%s €) for the deal to stay profitable",
						res.OptimalBouquet.StringFixed(0), res.PaymentDiff.StringFixed(0)))
			} else {
				recommendations = append(recommendations,
					fmt.Sprintf("The bouquet can rise to %s € (+%s €) before the deal stops being profitable",
						res.OptimalBouquet.StringFixed(0), res.PaymentDiff.StringFixed(0)))
			}
		case TargetFairRente:
			recommendations = append(recommendations,
				fmt.Sprintf("At %s € per month the viager costs the same as a direct purchase",
					res.OptimalRente.StringFixed(2)))
		}
	}

	return recommendations
}

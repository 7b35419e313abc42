package breakeven

import (
	"fmt"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// TableFormatter formats optimization results as a console table
type TableFormatter struct{}

// Format generates a formatted table for optimization result
func (tf *TableFormatter) Format(result *OptimizationResult) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN SOLVER RESULTS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	dealName := ""
	if result.Request.Deal != nil {
		dealName = result.Request.Deal.Name
	}
	sb.WriteString(fmt.Sprintf("Target:       %s\n", result.Request.Target))
	sb.WriteString(fmt.Sprintf("Deal:         %s\n", dealName))
	sb.WriteString(fmt.Sprintf("Status:       %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:   %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:  %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("OPTIMAL PAYMENT\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	if result.OptimalRente != nil {
		sb.WriteString(fmt.Sprintf("Monthly Rente: %s € (%s%s € vs. current)\n",
			tf.formatCurrency(*result.OptimalRente),
			tf.deltaSymbol(result.PaymentDiff),
			tf.formatCurrency(result.PaymentDiff)))
	}
	if result.OptimalBouquet != nil {
		sb.WriteString(fmt.Sprintf("Bouquet:       %s € (%s%s € vs. current)\n",
			tf.formatCurrency(*result.OptimalBouquet),
			tf.deltaSymbol(result.PaymentDiff),
			tf.formatCurrency(result.PaymentDiff)))
	}
	sb.WriteString("\n")

	sb.WriteString("PROJECTED RESULTS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Total Cost:       %s €\n", tf.formatCurrency(result.TotalCost)))
	sb.WriteString(fmt.Sprintf("Savings:          %s €\n", tf.formatCurrency(result.Savings)))
	sb.WriteString(fmt.Sprintf("Expected Duration: %d months\n", result.DurationMonths))
	sb.WriteString(fmt.Sprintf("Break-even:       %d months\n", result.BreakEvenMonths))
	sb.WriteString("\n")

	if result.BaseValuation != nil && !result.SavingsDiffToBase.IsZero() {
		sb.WriteString("COMPARISON TO SUBMITTED DEAL\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		sb.WriteString(fmt.Sprintf("Savings Change:   %s%s €\n",
			tf.deltaSymbol(result.SavingsDiffToBase),
			tf.formatCurrency(result.SavingsDiffToBase)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatMulti formats the results of solving every target
func (tf *TableFormatter) FormatMulti(result *MultiTargetResult) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN SOLVER: ALL TARGETS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Deal: %s\n\n", result.DealName))

	sb.WriteString(fmt.Sprintf("%-14s %14s %12s %12s %12s\n",
		"Target", "Payment", "Total Cost", "Savings", "Break-even"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for _, res := range result.Results {
		payment := "-"
		if res.OptimalRente != nil {
			payment = tf.formatCurrency(*res.OptimalRente) + " €/mo"
		}
		if res.OptimalBouquet != nil {
			payment = tf.formatShort(*res.OptimalBouquet) + " €"
		}
		sb.WriteString(fmt.Sprintf("%-14s %14s %12s %12s %12s\n",
			tf.truncate(string(res.Request.Target), 14),
			payment,
			tf.formatShort(res.TotalCost)+" €",
			tf.formatShort(res.Savings)+" €",
			fmt.Sprintf("%d mo", res.BreakEvenMonths)))
	}
	sb.WriteString("\n")

	if len(result.Failures) > 0 {
		sb.WriteString("UNSOLVED TARGETS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		targets := make([]string, 0, len(result.Failures))
		for target := range result.Failures {
			targets = append(targets, target)
		}
		sort.Strings(targets)
		for _, target := range targets {
			sb.WriteString(fmt.Sprintf("%-14s %s\n", target, result.Failures[target]))
		}
		sb.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *OptimizationResult) (string, error) {
	return jf.marshal(result)
}

// FormatMulti formats all-target results as JSON
func (jf *JSONFormatter) FormatMulti(result *MultiTargetResult) (string, error) {
	return jf.marshal(result)
}

func (jf *JSONFormatter) marshal(v interface{}) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Helper methods

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func (tf *TableFormatter) formatCurrency(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func (tf *TableFormatter) formatShort(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		return d.Div(decimal.NewFromInt(1000000)).StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		return d.Div(decimal.NewFromInt(1000)).StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

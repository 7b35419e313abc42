package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing deals
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("VIAGER DEAL COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Deal: %s\n", compSet.BaseDealName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 28
	numWidth := 12

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Deal",
		numWidth, "Total Cost",
		numWidth, "Savings",
		numWidth, "Duration",
		numWidth, "Break-even"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.DealName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}

			sb.WriteString(fmt.Sprintf("  Savings:     %s%s € (%s)\n",
				tf.deltaSymbol(alt.SavingsDiff),
				tf.formatDecimal(alt.SavingsDiff),
				alt.Profitability))

			if !alt.TotalCostDiff.IsZero() {
				sb.WriteString(fmt.Sprintf("  Total Cost:  %s%s €\n",
					tf.deltaSymbol(alt.TotalCostDiff),
					tf.formatDecimal(alt.TotalCostDiff)))
			}

			if alt.DurationMonthsDiff != 0 {
				sb.WriteString(fmt.Sprintf("  Duration:    %+d months\n", alt.DurationMonthsDiff))
			}

			if alt.BreakEvenDiff != 0 {
				sb.WriteString(fmt.Sprintf("  Break-even:  %+d months\n", alt.BreakEvenDiff))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single deal row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.DealName
	if isBase {
		name += " (base)"
	}

	breakEven := fmt.Sprintf("%d mo", result.BreakEvenMonths)
	if !result.IsProfitable {
		breakEven += " !"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, tf.formatDecimal(result.TotalCost)+" €",
		numWidth, tf.formatDecimal(result.Savings)+" €",
		numWidth, fmt.Sprintf("%d mo", result.DurationMonths),
		numWidth, breakEven)
}

// formatDecimal formats an amount for display, in thousands above 1000
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		return d.Div(decimal.NewFromInt(1000000)).StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		return d.Div(decimal.NewFromInt(1000)).StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns the sign prefix for positive deltas; negative values carry their own
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each alternative
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseDealName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if !alt.SavingsDiff.IsZero() {
			change = tf.deltaSymbol(alt.SavingsDiff) + tf.formatDecimal(alt.SavingsDiff) + " €"
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.DealName, change))
	}

	return sb.String()
}

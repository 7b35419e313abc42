package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Deal",
		"Type",
		"Total Cost",
		"Savings",
		"Savings %",
		"Duration (Months)",
		"Break-even (Months)",
		"Safety Margin (Months)",
		"Profitable",
		"Total Cost Diff",
		"Savings Diff",
		"Duration Diff",
		"Break-even Diff",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, dealType string) []string {
	return []string{
		result.DealName,
		dealType,
		result.TotalCost.StringFixed(2),
		result.Savings.StringFixed(2),
		result.SavingsPercent.StringFixed(1),
		strconv.Itoa(result.DurationMonths),
		strconv.Itoa(result.BreakEvenMonths),
		strconv.Itoa(result.SafetyMargin),
		strconv.FormatBool(result.IsProfitable),
		result.TotalCostDiff.StringFixed(2),
		result.SavingsDiff.StringFixed(2),
		strconv.Itoa(result.DurationMonthsDiff),
		strconv.Itoa(result.BreakEvenDiff),
	}
}

package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/shopspring/decimal"
)

// SensitivityFormatter defines a formatter for sensitivity analysis
type SensitivityFormatter interface {
	FormatSensitivityAnalysis(analysis *domain.ParameterSensitivityAnalysis) (string, error)
	Name() string
}

// GetSensitivityFormatter returns the sensitivity formatter for a format name
func GetSensitivityFormatter(name string) (SensitivityFormatter, error) {
	switch strings.ToLower(name) {
	case "", "console", "table":
		return SensitivityConsoleFormatter{}, nil
	case "csv":
		return SensitivityCSVFormatter{}, nil
	case "json":
		return SensitivityJSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported sensitivity format: %s", name)
	}
}

// SensitivityConsoleFormatter formats sensitivity analysis output for console
type SensitivityConsoleFormatter struct{}

func (scf SensitivityConsoleFormatter) Name() string { return "console" }

func (scf SensitivityConsoleFormatter) FormatSensitivityAnalysis(analysis *domain.ParameterSensitivityAnalysis) (string, error) {
	if analysis == nil || len(analysis.Results) == 0 {
		return "", fmt.Errorf("no results in analysis")
	}
	param := analysis.Parameter

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "SENSITIVITY ANALYSIS: %s\n", strings.ToUpper(strings.ReplaceAll(param.Name, "_", " ")))
	fmt.Fprintf(&buf, "=================================================================\n")
	if analysis.BaseDealName != "" {
		fmt.Fprintf(&buf, "Deal: %s\n", analysis.BaseDealName)
	}
	fmt.Fprintf(&buf, "Base Case: %s = %s\n", param.Name, formatParameter(param.BaseValue, param.Unit))
	fmt.Fprintf(&buf, "Range: %s to %s (%d steps)\n",
		formatParameter(param.MinValue, param.Unit), formatParameter(param.MaxValue, param.Unit), param.Steps)
	fmt.Fprintf(&buf, "Description: %s\n\n", param.Description)

	fmt.Fprintf(&buf, "%-16s %14s %14s %10s %10s %12s\n", "Value", "Total Cost", "Savings", "Savings %", "Break-even", "vs. Base")
	fmt.Fprintln(&buf, strings.Repeat("-", 81))
	for _, r := range analysis.Results {
		m := r.KeyMetrics
		marker := ""
		if r.ParameterValue.Equal(param.BaseValue) {
			marker = " ←"
		}
		if !m.IsProfitable {
			marker += " ✗"
		}
		fmt.Fprintf(&buf, "%-16s %14s %14s %10s %10s %12s%s\n",
			formatParameter(r.ParameterValue, param.Unit),
			FormatCurrency(m.TotalCost),
			FormatCurrency(m.Savings),
			m.SavingsPercent.StringFixed(1)+"%",
			strconv.Itoa(m.BreakEvenMonths)+" mo",
			signedCurrency(m.SavingsChange),
			marker)
	}
	fmt.Fprintln(&buf)

	s := analysis.Summary
	fmt.Fprintln(&buf, "SUMMARY")
	fmt.Fprintln(&buf, "-------")
	fmt.Fprintf(&buf, "Savings Range: %s to %s (spread %s)\n", FormatCurrency(s.MinSavings), FormatCurrency(s.MaxSavings), FormatCurrency(s.SavingsRange))
	fmt.Fprintf(&buf, "Profitable Steps: %d of %d\n", s.ProfitableSteps, len(analysis.Results))
	fmt.Fprintf(&buf, "Risk Level: %s\n", s.RiskLevel)
	for _, rec := range s.Recommendations {
		fmt.Fprintf(&buf, "  • %s\n", rec)
	}
	return buf.String(), nil
}

// SensitivityCSVFormatter formats one row per sweep step
type SensitivityCSVFormatter struct{}

func (scf SensitivityCSVFormatter) Name() string { return "csv" }

func (scf SensitivityCSVFormatter) FormatSensitivityAnalysis(analysis *domain.ParameterSensitivityAnalysis) (string, error) {
	if analysis == nil {
		return "", fmt.Errorf("no analysis to format")
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"Parameter", "Value", "TotalCost", "Savings", "SavingsPercent", "DurationMonths", "BreakEvenMonths", "IsProfitable", "SavingsChange"}
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, r := range analysis.Results {
		m := r.KeyMetrics
		row := []string{
			analysis.Parameter.Name,
			r.ParameterValue.String(),
			m.TotalCost.StringFixed(2),
			m.Savings.StringFixed(2),
			m.SavingsPercent.StringFixed(1),
			strconv.Itoa(m.DurationMonths),
			strconv.Itoa(m.BreakEvenMonths),
			strconv.FormatBool(m.IsProfitable),
			m.SavingsChange.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

// SensitivityJSONFormatter formats the full analysis as JSON
type SensitivityJSONFormatter struct{}

func (sjf SensitivityJSONFormatter) Name() string { return "json" }

func (sjf SensitivityJSONFormatter) FormatSensitivityAnalysis(analysis *domain.ParameterSensitivityAnalysis) (string, error) {
	if analysis == nil {
		return "", fmt.Errorf("no analysis to format")
	}
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func formatParameter(v decimal.Decimal, unit string) string {
	switch unit {
	case "euros":
		return FormatCurrency(v)
	case "euros/month":
		return FormatCurrency(v) + "/mois"
	case "euros/year":
		return FormatCurrency(v) + "/an"
	case "years":
		return v.StringFixed(0) + " ans"
	default:
		return v.String()
	}
}

func signedCurrency(v decimal.Decimal) string {
	if v.IsPositive() {
		return "+" + FormatCurrency(v)
	}
	return FormatCurrency(v)
}

// Package tuistyles holds the palette and lipgloss styles shared by the TUI and its components.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/viagerpro/internal/output"
	"github.com/shopspring/decimal"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#2563eb")
	ColorSecondary = lipgloss.Color("#7c3aed")
	ColorAccent    = lipgloss.Color("#f59e0b")
	ColorSuccess   = lipgloss.Color("#22c55e")
	ColorDanger    = lipgloss.Color("#ef4444")
	ColorInfo      = lipgloss.Color("#06b6d4")

	ColorForeground = lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#e5e7eb"}
	ColorMuted      = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	ColorBorder     = lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#4b5563"}
)

var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)

	SectionStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).MarginTop(1)

	StatusBarStyle = lipgloss.NewStyle().Foreground(ColorMuted).MarginTop(1)
	StatusKeyStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)

	FieldLabelStyle   = lipgloss.NewStyle().Foreground(ColorForeground).Width(22)
	FocusedLabelStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Width(22)

	MetricLabelStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle    = lipgloss.NewStyle().Foreground(ColorForeground).Bold(true)
	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger)
	InfoStyle  = lipgloss.NewStyle().Foreground(ColorInfo)
)

// MetricTrendStyle returns the style of a favourable or unfavourable figure
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns an arrow for the direction of a figure
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "▲"
	}
	return "▼"
}

// FormatCurrency renders euros the way reports do
func FormatCurrency(amount decimal.Decimal) string {
	return output.FormatCurrency(amount)
}

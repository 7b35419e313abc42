package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/viagerpro/internal/tui/tuistyles"
)

// MarginGauge compares the expected payment duration with the break-even month.
// The bar fills with the duration; past the break-even marker the deal turns unprofitable.
type MarginGauge struct {
	DurationMonths  int
	BreakEvenMonths int
	Width           int
}

// NewMarginGauge creates a gauge for a valuation
func NewMarginGauge(durationMonths, breakEvenMonths int) *MarginGauge {
	return &MarginGauge{
		DurationMonths:  durationMonths,
		BreakEvenMonths: breakEvenMonths,
		Width:           40,
	}
}

// WithWidth sets the bar width
func (g *MarginGauge) WithWidth(width int) *MarginGauge {
	g.Width = width
	return g
}

// Ratio returns duration over break-even
func (g *MarginGauge) Ratio() float64 {
	if g.BreakEvenMonths <= 0 {
		return 1
	}
	return float64(g.DurationMonths) / float64(g.BreakEvenMonths)
}

// IsProfitable reports whether payments end before break-even
func (g *MarginGauge) IsProfitable() bool {
	return g.DurationMonths < g.BreakEvenMonths
}

// Render returns the styled gauge
func (g *MarginGauge) Render() string {
	filled := int(float64(g.Width) * g.Ratio())
	if filled > g.Width {
		filled = g.Width
	}
	if filled < 0 {
		filled = 0
	}

	fill := tuistyles.ColorSuccess
	if !g.IsProfitable() {
		fill = tuistyles.ColorDanger
	}
	barStyle := lipgloss.NewStyle().Foreground(fill)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", g.Width-filled)))
	b.WriteString("]")

	margin := g.BreakEvenMonths - g.DurationMonths
	label := fmt.Sprintf(" %d / %d mois", g.DurationMonths, g.BreakEvenMonths)
	if margin > 0 {
		label += fmt.Sprintf(" (marge %d mois)", margin)
	}
	b.WriteString(tuistyles.MetricLabelStyle.Render(label))
	return b.String()
}

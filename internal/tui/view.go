package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/viagerpro/internal/output"
	"github.com/rgehrsitz/viagerpro/internal/tui/components"
)

// View renders the form beside the latest valuation
func (m Model) View() string {
	title := TitleStyle.Render("VIAGERPRO - Estimation en viager")
	subtitle := SubtitleStyle.Render("Tables " + m.tables.Version())

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(44).Render(m.renderForm()),
		m.renderResults(),
	)

	return AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		body,
		m.renderStatusBar(),
	))
}

func (m Model) renderForm() string {
	var b strings.Builder
	section := ""
	for i, f := range m.fields {
		if !m.visible(i) {
			continue
		}
		if f.section != section {
			section = f.section
			b.WriteString(SectionStyle.Render(section) + "\n")
		}
		label := FieldLabelStyle.Render(f.label)
		if i == m.focus {
			label = FocusedLabelStyle.Render(f.label)
		}
		b.WriteString(label + f.view() + "\n")
	}
	return b.String()
}

func (m Model) renderResults() string {
	if len(m.problems) > 0 {
		lines := []string{ErrorStyle.Render("Saisie incomplète:")}
		for _, p := range m.problems {
			lines = append(lines, ErrorStyle.Render("  • "+p))
		}
		return strings.Join(lines, "\n")
	}
	r := m.result
	if r == nil {
		return InfoStyle.Render("Calcul en cours...")
	}

	savings := components.NewMetricCard("Économie", FormatCurrency(r.Savings)).
		WithTrend(r.IsPositive, r.Profitability).
		WithDescription("achat direct " + FormatCurrency(r.DirectPurchaseCost))
	breakEven := components.NewMetricCard("Point mort", fmt.Sprintf("%d mois", r.BreakEven.Months)).
		WithDescription(output.FormatMonthYear(r.BreakEven.Date))
	cards := []*components.MetricCard{
		components.NewMetricCard("Espérance de vie", output.FormatYears(r.LifeExpectancy)).
			WithDescription(fmt.Sprintf("%d mois de rente", r.DurationMonths)),
		components.NewMetricCard("Coût total", FormatCurrency(r.TotalCost)).
			WithDescription("notaire " + FormatCurrency(r.NotaryFees)),
		savings,
		breakEven,
		components.NewMetricCard("Valeur du DUH", FormatCurrency(r.DUHValue)).
			WithDescription("coefficient " + output.FormatPercentage(r.DUHCoef.Shift(2))),
		components.NewMetricCard("Nue-propriété", FormatCurrency(r.BareOwnership)),
	}

	parts := []string{
		components.MetricGrid(cards, 2),
		components.NewMarginGauge(r.DurationMonths, r.BreakEven.Months).WithWidth(30).Render(),
	}
	if r.MarketBand != nil {
		band := lipgloss.NewStyle().Foreground(lipgloss.Color(r.MarketBand.Color)).Render("■")
		parts = append(parts, fmt.Sprintf("%s Prix %s/m², niveau %s (%s)",
			band, FormatCurrency(r.RealPriceM2), output.BandLabel(r.MarketBand.Band), r.MarketBand.Department))
	}
	if m.department != "" {
		parts = append(parts, InfoStyle.Render("Prix moyen: moyenne du département "+m.department))
	}
	for _, w := range m.warnings {
		parts = append(parts, InfoStyle.Render("ⓘ "+w))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderStatusBar() string {
	bindings := []struct{ keys, desc string }{
		{m.keys.Next.Help().Key, m.keys.Next.Help().Desc},
		{m.keys.Prev.Help().Key, m.keys.Prev.Help().Desc},
		{"←/→", "choisir"},
		{m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc},
	}
	items := make([]string, len(bindings))
	for i, b := range bindings {
		items[i] = StatusKeyStyle.Render(b.keys) + " " + b.desc
	}
	return StatusBarStyle.Render(strings.Join(items, " • "))
}

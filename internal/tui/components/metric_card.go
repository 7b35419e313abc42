package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/viagerpro/internal/tui/tuistyles"
)

// MetricCard displays a single valuation figure with label, value, and optional trend
type MetricCard struct {
	Label       string
	Value       string
	Trend       *Trend
	Description string
	Width       int
}

// Trend marks a figure as favourable or not for the buyer
type Trend struct {
	IsPositive bool
	Change     string // e.g. "+16.1%"
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 26,
	}
}

// WithTrend adds a trend indicator to the metric card
func (m *MetricCard) WithTrend(isPositive bool, change string) *MetricCard {
	m.Trend = &Trend{
		IsPositive: isPositive,
		Change:     change,
	}
	return m
}

// WithDescription adds a subtitle
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render returns the bordered card
func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" + tuistyles.MetricValueStyle.Render(m.Value)
	if m.Trend != nil {
		content += "\n" + m.renderTrend()
	}
	if m.Description != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(m.Description)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width).
		Render(content)
}

// RenderCompact returns a single line without border
func (m *MetricCard) RenderCompact() string {
	line := tuistyles.MetricLabelStyle.Render(m.Label+":") + " " + tuistyles.MetricValueStyle.Render(m.Value)
	if m.Trend != nil {
		line += " " + m.renderTrend()
	}
	return line
}

func (m *MetricCard) renderTrend() string {
	arrow := tuistyles.TrendIndicator(m.Trend.IsPositive)
	return tuistyles.MetricTrendStyle(m.Trend.IsPositive).Render(fmt.Sprintf("%s %s", arrow, m.Trend.Change))
}

// MetricGrid lays cards out in rows of columns
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	var rows, current []string
	for i, card := range cards {
		current = append(current, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

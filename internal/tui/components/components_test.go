package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	s := NewSelect(Option{"male", "Homme"}, Option{"female", "Femme"})
	assert.Equal(t, "male", s.Value())

	s.Next()
	assert.Equal(t, "female", s.Value())
	s.Next()
	assert.Equal(t, "male", s.Value())
	s.Prev()
	assert.Equal(t, "female", s.Value())

	assert.True(t, s.SetValue("male"))
	assert.False(t, s.SetValue("other"))
	assert.Equal(t, "male", s.Value())

	assert.Contains(t, s.View(), "Homme")
	s.SetFocused(true)
	assert.Contains(t, s.View(), "‹")

	assert.Equal(t, "", NewSelect().Value())
}

func TestMarginGauge(t *testing.T) {
	g := NewMarginGauge(232, 263).WithWidth(20)
	assert.True(t, g.IsProfitable())
	assert.InDelta(t, 0.882, g.Ratio(), 0.001)
	out := g.Render()
	assert.Contains(t, out, "232 / 263 mois")
	assert.Contains(t, out, "marge 31 mois")

	over := NewMarginGauge(232, 148)
	assert.False(t, over.IsProfitable())
	assert.NotContains(t, over.Render(), "marge")
	assert.Equal(t, 40, strings.Count(over.Render(), "█"))

	assert.Equal(t, float64(1), NewMarginGauge(10, 0).Ratio())
}

func TestMetricCard(t *testing.T) {
	card := NewMetricCard("Économie", "52 040 €").WithTrend(true, "+16.1%").WithDescription("vs achat direct")
	out := card.Render()
	assert.Contains(t, out, "Économie")
	assert.Contains(t, out, "52 040 €")
	assert.Contains(t, out, "▲ +16.1%")
	assert.Contains(t, out, "vs achat direct")

	compact := NewMetricCard("Coût total", "271 960 €").RenderCompact()
	assert.Contains(t, compact, "Coût total: ")

	assert.Empty(t, MetricGrid(nil, 2))
	grid := MetricGrid([]*MetricCard{NewMetricCard("a", "1"), NewMetricCard("b", "2"), NewMetricCard("c", "3")}, 2)
	assert.Contains(t, grid, "c")
}

package numeric

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		places int32
		want   string
	}{
		{"positive tie goes up", "4.5", 0, "5"},
		{"negative tie goes towards zero", "-4.5", 0, "-4"},
		{"negative below tie", "-4.51", 0, "-5"},
		{"one decimal", "19.32", 1, "19.3"},
		{"one decimal tie", "2.25", 1, "2.3"},
		{"already rounded", "3.6", 1, "3.6"},
		{"integer", "300000", 0, "300000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundHalfUp(decimal.RequireFromString(tt.value), tt.places)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 50, ClampInt(49, 50, 100))
	assert.Equal(t, 100, ClampInt(150, 50, 100))
	assert.Equal(t, 75, ClampInt(75, 50, 100))
}

func TestPercent(t *testing.T) {
	assert.True(t, Percent(decimal.NewFromInt(25), decimal.NewFromInt(200)).Equal(decimal.NewFromFloat(12.5)))
	assert.True(t, Percent(decimal.NewFromInt(25), decimal.Zero).IsZero())
}

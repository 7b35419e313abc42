package compare

import (
	"encoding/csv"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleComparisonSet() *ComparisonSet {
	mc := NewMetricsCalculator()
	base := mc.CalculateMetrics("paris", sampleValuation(271960, 52040, 232, 263))
	alt := mc.CalculateComparison(mc.CalculateMetrics("paris_rente_minus_10pct", sampleValuation(253400, 70600, 232, 288)), base)
	alt.Description = "Lower the monthly rente by 10%"

	compSet := &ComparisonSet{
		BaseDealName:       "paris",
		ConfigPath:         "/path/to/deals.yaml",
		BaseResult:         &base,
		AlternativeResults: []ComparisonResult{alt},
	}
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{}
	result := formatter.Format(sampleComparisonSet())

	if result == "" {
		t.Fatal("Expected formatted output, got empty string")
	}

	for _, want := range []string{
		"VIAGER DEAL COMPARISON",
		"Base Deal: paris",
		"Configuration: /path/to/deals.yaml",
		"paris (base)",
		"272.0K €",
		"COMPARISON TO BASE",
		"Savings:     +18.6K €",
		"Total Cost:  -18.6K €",
		"Break-even:  +25 months",
		"RECOMMENDATIONS",
		"• Best Savings",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in output:\n%s", want, result)
		}
	}
	assert.NotContains(t, result, "Duration:", "unchanged duration is not listed")
}

func TestTableFormatter_Format_EmptyAlternatives(t *testing.T) {
	compSet := sampleComparisonSet()
	compSet.AlternativeResults = nil
	compSet.Recommendations = nil

	result := (&TableFormatter{}).Format(compSet)

	assert.Contains(t, result, "paris (base)")
	assert.NotContains(t, result, "COMPARISON TO BASE")
	assert.NotContains(t, result, "RECOMMENDATIONS")
}

func TestTableFormatter_Helpers(t *testing.T) {
	tf := &TableFormatter{}

	assert.Equal(t, "1.25M", tf.formatDecimal(decimal.NewFromInt(1250000)))
	assert.Equal(t, "-18.4K", tf.formatDecimal(decimal.NewFromInt(-18440)))
	assert.Equal(t, "950", tf.formatDecimal(decimal.NewFromInt(950)))
	assert.Equal(t, "abcde...", tf.truncate("abcdefghijkl", 8))
	assert.Equal(t, "short", tf.truncate("short", 8))
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	result := (&TableFormatter{}).FormatCompact(sampleComparisonSet())
	assert.Equal(t, "Base: paris | paris_rente_minus_10pct: +18.6K €", result)
}

func TestCSVFormatter_Format(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(sampleComparisonSet())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Deal", records[0][0])
	assert.Equal(t, []string{"paris", "base", "271960.00", "52040.00"}, records[1][:4])
	assert.Equal(t, "alternative", records[2][1])
	assert.Equal(t, "288", records[2][6])
	assert.Equal(t, "25", records[2][12])
}

func TestJSONFormatter_Format(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		out, err := (&JSONFormatter{Pretty: pretty}).Format(sampleComparisonSet())
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, "paris", decoded["baseDealName"])
		alts := decoded["alternativeResults"].([]interface{})
		assert.Len(t, alts, 1)
		assert.Equal(t, pretty, strings.Contains(out, "\n  "))
	}
}

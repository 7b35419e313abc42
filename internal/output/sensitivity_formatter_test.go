package output

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/viagerpro/internal/calculation"
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renteAnalysis(t *testing.T) *domain.ParameterSensitivityAnalysis {
	t.Helper()
	deal := parisDeal()
	analysis, err := calculation.NewSensitivityAnalyzer(testEngine()).AnalyzeSingleParameter(&deal, domain.RenteParam)
	require.NoError(t, err)
	return analysis
}

func TestGetSensitivityFormatter(t *testing.T) {
	for _, name := range []string{"", "console", "table", "csv", "json"} {
		f, err := GetSensitivityFormatter(name)
		require.NoError(t, err, name)
		assert.NotNil(t, f)
	}
	_, err := GetSensitivityFormatter("xml")
	assert.Error(t, err)
}

func TestSensitivityConsoleFormatter(t *testing.T) {
	out, err := SensitivityConsoleFormatter{}.FormatSensitivityAnalysis(renteAnalysis(t))
	require.NoError(t, err)

	assert.Contains(t, out, "SENSITIVITY ANALYSIS: RENTE")
	assert.Contains(t, out, "Deal: paris")
	assert.Contains(t, out, "Base Case: rente = 800 €/mois")
	assert.Contains(t, out, "Range: 200 €/mois to 2 000 €/mois (10 steps)")
	assert.Contains(t, out, "Risk Level:")
	assert.Contains(t, out, "✗")

	_, err = SensitivityConsoleFormatter{}.FormatSensitivityAnalysis(&domain.ParameterSensitivityAnalysis{})
	assert.Error(t, err)
}

func TestSensitivityCSVFormatter(t *testing.T) {
	analysis := renteAnalysis(t)
	out, err := SensitivityCSVFormatter{}.FormatSensitivityAnalysis(analysis)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, len(analysis.Results)+1)
	assert.Equal(t, "rente", records[1][0])
}

func TestSensitivityJSONFormatter(t *testing.T) {
	out, err := SensitivityJSONFormatter{}.FormatSensitivityAnalysis(renteAnalysis(t))
	require.NoError(t, err)

	var decoded domain.ParameterSensitivityAnalysis
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "rente", decoded.Parameter.Name)
	assert.Equal(t, "paris", decoded.BaseDealName)
}

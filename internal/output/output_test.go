package output

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/viagerpro/internal/calculation"
	"github.com/rgehrsitz/viagerpro/internal/config"
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parisDeal() domain.Deal {
	return domain.Deal{
		Name:          "paris",
		PostalCode:    "75011",
		PropertyPrice: decimal.NewFromInt(300000),
		Surface:       decimal.NewFromInt(60),
		Bouquet:       decimal.NewFromInt(50000),
		Rente:         decimal.NewFromInt(800),
		TaxeFonciere:  decimal.NewFromInt(1200),
		AvgPriceM2:    decimal.NewFromInt(5000),
		Seller:        domain.Person{Age: 65, Gender: domain.Male, Disease: domain.DiseaseNone},
	}
}

func testEngine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.Clock = func() time.Time { return time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC) }
	return engine
}

func parisResults(t *testing.T) []*domain.ValuationResult {
	t.Helper()
	deal := parisDeal()
	return []*domain.ValuationResult{testEngine().Calculate(&deal)}
}

func TestFrenchFormatting(t *testing.T) {
	assert.Equal(t, "300 000 €", FormatCurrency(decimal.NewFromInt(300000)))
	assert.Equal(t, "1 234 568 €", FormatCurrency(decimal.NewFromFloat(1234567.5)))
	assert.Equal(t, "800 €", FormatCurrency(decimal.NewFromInt(800)))
	assert.Equal(t, "19,3 ans", FormatYears(decimal.NewFromFloat(19.32)))
	assert.Equal(t, "16,1 %", FormatPercentage(decimal.NewFromFloat(16.06)))
	assert.Equal(t, "décembre 2047", FormatMonthYear(time.Date(2047, time.December, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "août 2030", FormatMonthYear(time.Date(2030, time.August, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "très élevé", BandLabel("very_high"))
	assert.Equal(t, "unknown", BandLabel("unknown"))
	assert.Equal(t, "Décembre 2047", Title("décembre 2047"))
}

func TestFormatterRegistry(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "html", "json"}, FormatterNames())
	for _, name := range FormatterNames() {
		f := GetFormatterByName(name)
		require.NotNil(t, f, name)
		assert.Equal(t, name, f.Name())
	}
	assert.NotNil(t, GetFormatterByName("JSON"))
	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{ShowAssumptions: true}.Format(parisResults(t))
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "ESTIMATION VIAGER: paris")
	assert.Contains(t, out, "Prix affiché:            300 000 €")
	assert.Contains(t, out, "Espérance retenue:       19,3 ans (232 mois)")
	assert.Contains(t, out, "Valeur du DUH:           135 000 €")
	assert.Contains(t, out, "Nue-propriété:           165 000 €")
	assert.Contains(t, out, "Rentes (800 €/mois):     185 600 €")
	assert.Contains(t, out, "TOTAL:                   271 960 €")
	assert.Contains(t, out, "Économie:                52 040 € (+16.1%)")
	assert.Contains(t, out, "Point mort:              263 mois (décembre 2047)")
	assert.Contains(t, out, "RENTABLE")
	assert.NotContains(t, out, "NON RENTABLE")
	assert.Contains(t, out, "HYPOTHÈSES")
}

func TestConsoleFormatter_Errors(t *testing.T) {
	_, err := ConsoleFormatter{}.Format(nil)
	assert.Error(t, err)

	_, err = ConsoleFormatter{}.Format([]*domain.ValuationResult{nil})
	assert.Error(t, err)
}

func TestConsoleFormatter_Couple(t *testing.T) {
	deal := parisDeal()
	deal.Partner = &domain.Person{Age: 70, Gender: domain.Female, Disease: domain.DiseaseNone}

	data, err := ConsoleFormatter{}.Format([]*domain.ValuationResult{testEngine().Calculate(&deal)})
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "OCCUPANTS")
	assert.Contains(t, out, "Dernier survivant")
}

func TestJSONFormatter(t *testing.T) {
	results := parisResults(t)

	data, err := JSONFormatter{}.Format(results)
	require.NoError(t, err)
	var single map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &single))
	assert.Equal(t, "paris", single["dealName"])
	assert.Equal(t, float64(232), single["durationMonths"])

	two := append(results, results[0])
	data, err = JSONFormatter{Pretty: true}.Format(two)
	require.NoError(t, err)
	var many []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &many))
	assert.Len(t, many, 2)
}

func TestCSVSummarizer(t *testing.T) {
	data, err := CSVSummarizer{}.Format(parisResults(t))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, csvHeader, records[0])

	row := map[string]string{}
	for i, h := range records[0] {
		row[h] = records[1][i]
	}
	assert.Equal(t, "paris", row["Deal"])
	assert.Equal(t, "271960.00", row["TotalCost"])
	assert.Equal(t, "52040.00", row["Savings"])
	assert.Equal(t, "263", row["BreakEvenMonths"])
	assert.Equal(t, "true", row["IsProfitable"])
}

func TestHTMLFormatter(t *testing.T) {
	data, err := HTMLFormatter{}.Format(parisResults(t))
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<h2>paris</h2>")
	assert.Contains(t, out, "271 960 €")
	assert.Contains(t, out, "Décembre 2047")
	assert.Contains(t, out, "Rentable")
}

func TestGenerateReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GenerateReport(&buf, parisResults(t), "csv"))
	assert.True(t, strings.HasPrefix(buf.String(), "Deal,PropertyPrice"))

	buf.Reset()
	require.NoError(t, GenerateReport(&buf, parisResults(t), "json"))
	assert.True(t, strings.HasSuffix(buf.String(), "}\n"))

	assert.Error(t, GenerateReport(&buf, parisResults(t), "pdf"))
	assert.Error(t, GenerateReport(&buf, nil, "console"))
}

func TestSaveConfiguration(t *testing.T) {
	cfg := &domain.Configuration{Deals: []domain.Deal{parisDeal()}}
	path := filepath.Join(t.TempDir(), "deals.yaml")

	require.NoError(t, SaveConfiguration(cfg, path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "postal_code")
	assert.Contains(t, string(raw), "rente: 800\n")

	loaded, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, loaded.Deals, 1)
	assert.Equal(t, "paris", loaded.Deals[0].Name)
	assert.True(t, loaded.Deals[0].Rente.Equal(decimal.NewFromInt(800)))
}

package market

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupDepartment(t *testing.T) {
	paris := LookupDepartment("75011")
	assert.Equal(t, "75", paris.Code)
	assert.Equal(t, "Paris", paris.Name)
	assert.Equal(t, int64(10500), paris.Avg)

	nice := LookupDepartment("06000")
	assert.Equal(t, "Alpes-Maritimes (Nice)", nice.Name)

	for _, code := range []string{"", "2", "23000"} {
		p := LookupDepartment(code)
		assert.Equal(t, DefaultDepartment, p.Code, code)
		assert.Equal(t, "France", p.Name)
		assert.Equal(t, int64(2500), p.Avg)
	}
}

func TestFindDepartment(t *testing.T) {
	p, ok := FindDepartment("69003")
	require.True(t, ok)
	assert.Equal(t, "69", p.Code)

	for _, code := range []string{"", "2", "23000", "default"} {
		_, ok := FindDepartment(code)
		assert.False(t, ok, code)
	}
}

func TestDepartments(t *testing.T) {
	list := Departments()
	require.Len(t, list, 19)
	assert.Equal(t, "06", list[0].Code)
	assert.Equal(t, DefaultDepartment, list[len(list)-1].Code)
	for _, p := range list {
		assert.True(t, p.Low < p.MedLow && p.MedLow <= p.Med && p.Med < p.MedHigh && p.MedHigh < p.High, p.Name)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		price int64
		color string
	}{
		{7999, ColorVeryLow},
		{8000, ColorLow},
		{9500, ColorAverage},
		{10500, ColorHigh},
		{12000, ColorVeryHigh},
	}
	for _, tt := range tests {
		band := Classify(decimal.NewFromInt(tt.price), "75001")
		assert.Equal(t, tt.color, band.Color, "price %d", tt.price)
		assert.Equal(t, "Paris", band.Department)
	}
}

func TestFormatK(t *testing.T) {
	assert.Equal(t, "12k", FormatK(12000))
	assert.Equal(t, "12.5k", FormatK(12500))
	assert.Equal(t, "1k", FormatK(1000))
	assert.Equal(t, "950", FormatK(950))
}

func TestDepartmentLegend(t *testing.T) {
	legend := DepartmentLegend(LookupDepartment("75"))
	require.Len(t, legend, 5)
	assert.Equal(t, "< 8k €", legend[0].Range)
	assert.Equal(t, "8k - 9.5k €", legend[1].Range)
	assert.Equal(t, "> 12k €", legend[4].Range)
	assert.Equal(t, ColorVeryHigh, legend[4].Color)
}

func tx(price, surface int64) Transaction {
	return Transaction{
		ValeurFonciere:    decimal.NewFromInt(price),
		SurfaceReelleBati: decimal.NewFromInt(surface),
	}
}

func TestTransaction_Surface(t *testing.T) {
	misspelled := Transaction{ValeurFonciere: decimal.NewFromInt(200000), SurfaceRelleBati: decimal.NewFromInt(50)}
	assert.True(t, misspelled.Surface().Equal(decimal.NewFromInt(50)))

	land := Transaction{ValeurFonciere: decimal.NewFromInt(200000), SurfaceTerrain: decimal.NewFromInt(400)}
	assert.True(t, land.Surface().Equal(decimal.NewFromInt(400)))

	assert.False(t, Transaction{ValeurFonciere: decimal.NewFromInt(9000), SurfaceReelleBati: decimal.NewFromInt(10)}.Valid())
	assert.False(t, Transaction{ValeurFonciere: decimal.NewFromInt(90000)}.Valid())
}

func TestSummarize(t *testing.T) {
	txs := []Transaction{
		tx(200000, 50),  // 4000
		tx(300000, 60),  // 5000
		tx(180000, 60),  // 3000
		tx(420000, 70),  // 6000
		tx(140000, 70),  // 2000
		tx(100000, 500), // 200, outlier
		tx(5000, 10),    // invalid price
	}

	s := Summarize(txs)

	assert.Equal(t, 7, s.Transactions)
	assert.Equal(t, 6, s.Valid)
	assert.Equal(t, 5, s.Count)
	assert.Equal(t, int64(4000), s.AveragePriceM2)
	require.NotNil(t, s.Percentiles)
	assert.Equal(t, Percentiles{P10: 2000, P25: 3000, P50: 4000, P75: 5000, P90: 6000}, *s.Percentiles)
}

func TestSummarize_SmallSample(t *testing.T) {
	s := Summarize([]Transaction{tx(200000, 50), tx(300000, 60)})
	assert.Equal(t, int64(4500), s.AveragePriceM2)
	assert.Nil(t, s.Percentiles)
	assert.True(t, s.Available())

	empty := Summarize(nil)
	assert.False(t, empty.Available())
}

func TestDecodeTransactions(t *testing.T) {
	envelope := `{"resultats":[{"valeur_fonciere":250000,"surface_reelle_bati":50,"surface_terrain":null,"code_postal":"75011"}]}`
	txs, err := DecodeTransactions(strings.NewReader(envelope))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].PriceM2().Equal(decimal.NewFromInt(5000)))

	bare := `[{"valeur_fonciere":120000,"surface_relle_bati":40}]`
	txs, err = DecodeTransactions(strings.NewReader(bare))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].Surface().Equal(decimal.NewFromInt(40)))

	_, err = DecodeTransactions(strings.NewReader("{not json"))
	assert.Error(t, err)
}

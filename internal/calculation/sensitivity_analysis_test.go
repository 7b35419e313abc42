package calculation

import (
	"testing"

	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParameterValues(t *testing.T) {
	sa := NewSensitivityAnalyzer(nil)

	values := sa.generateParameterValues(domain.SensitivityParameter{
		MinValue: dec("400"),
		MaxValue: dec("1200"),
		Steps:    5,
	})

	require.Len(t, values, 5)
	for i, want := range []string{"400", "600", "800", "1000", "1200"} {
		assertDecimal(t, want, values[i], "value")
	}

	single := sa.generateParameterValues(domain.SensitivityParameter{Steps: 1, BaseValue: dec("7")})
	require.Len(t, single, 1)
	assertDecimal(t, "7", single[0], "value")
}

func TestAnalyzeSingleParameter_Rente(t *testing.T) {
	sa := NewSensitivityAnalyzer(newTestEngine())
	param := domain.RenteParam
	param.MinValue = dec("400")
	param.MaxValue = dec("1600")
	param.Steps = 4

	analysis, err := sa.AnalyzeSingleParameter(parisDeal(), param)
	require.NoError(t, err)

	assert.Equal(t, "paris", analysis.BaseDealName)
	assertDecimal(t, "800", analysis.Parameter.BaseValue, "baseValue")
	require.Len(t, analysis.Results, 4)

	// Savings fall as the annuity rises
	for i := 1; i < len(analysis.Results); i++ {
		assert.True(t, analysis.Results[i].KeyMetrics.Savings.LessThan(analysis.Results[i-1].KeyMetrics.Savings))
	}

	// 400 and 800 keep the deal profitable, 1200 and 1600 do not
	assert.True(t, analysis.Results[0].KeyMetrics.IsProfitable)
	assert.False(t, analysis.Results[3].KeyMetrics.IsProfitable)
	assert.Equal(t, 2, analysis.Summary.ProfitableSteps)
	assert.Equal(t, "MEDIUM", analysis.Summary.RiskLevel)
	require.NotNil(t, analysis.Summary.ProfitabilityFlip)
	assertDecimal(t, "1200", *analysis.Summary.ProfitabilityFlip, "flip")
	assert.True(t, analysis.Summary.SavingsRange.IsPositive())
	assert.NotEmpty(t, analysis.Summary.Recommendations)
}

func TestAnalyzeSingleParameter_Errors(t *testing.T) {
	sa := NewSensitivityAnalyzer(newTestEngine())

	_, err := sa.AnalyzeSingleParameter(parisDeal(), domain.SensitivityParameter{Name: "colour", MinValue: dec("1"), MaxValue: dec("2"), Steps: 2})
	assert.Error(t, err)

	_, err = sa.AnalyzeSingleParameter(parisDeal(), domain.SensitivityParameter{Name: "rente", MinValue: dec("2"), MaxValue: dec("1"), Steps: 2})
	assert.Error(t, err)
}

func TestApplyParameter(t *testing.T) {
	deal := parisDeal()

	modified, err := ApplyParameter(deal, "age", dec("72"))
	require.NoError(t, err)
	assert.Equal(t, 72, modified.Seller.Age)
	assert.Equal(t, 65, deal.Seller.Age, "original deal untouched")

	for _, name := range []string{"rente", "bouquet", "taxe_fonciere", "property_price"} {
		modified, err := ApplyParameter(deal, name, decimal.NewFromInt(1234))
		require.NoError(t, err)
		got, err := ParameterValue(modified, name)
		require.NoError(t, err)
		assertDecimal(t, "1234", got, name)
	}
}

package domain

import (
	"github.com/shopspring/decimal"
)

// SensitivityParameter represents a deal parameter to sweep in sensitivity analysis
type SensitivityParameter struct {
	Name        string          `yaml:"name" json:"name"`
	MinValue    decimal.Decimal `yaml:"min_value" json:"minValue"`
	MaxValue    decimal.Decimal `yaml:"max_value" json:"maxValue"`
	Steps       int             `yaml:"steps" json:"steps"`
	BaseValue   decimal.Decimal `yaml:"base_value" json:"baseValue"`
	Unit        string          `yaml:"unit" json:"unit"` // "euros", "euros/month", "years"
	Description string          `yaml:"description" json:"description"`
}

// ParameterSensitivityAnalysis represents a complete single-parameter sweep
type ParameterSensitivityAnalysis struct {
	BaseDealName string               `json:"baseDealName"`
	Parameter    SensitivityParameter `json:"parameter"`
	Results      []SensitivityResult  `json:"results"`
	Summary      SensitivitySummary   `json:"summary"`
}

// SensitivityResult represents the outcome of one step of the sweep
type SensitivityResult struct {
	ParameterValue decimal.Decimal    `json:"parameterValue"`
	KeyMetrics     SensitivityMetrics `json:"keyMetrics"`
}

// SensitivityMetrics represents key metrics for sensitivity analysis
type SensitivityMetrics struct {
	TotalCost       decimal.Decimal `json:"totalCost"`
	Savings         decimal.Decimal `json:"savings"`
	SavingsPercent  decimal.Decimal `json:"savingsPercent"`
	DurationMonths  int             `json:"durationMonths"`
	BreakEvenMonths int             `json:"breakEvenMonths"`
	IsProfitable    bool            `json:"isProfitable"`
	SavingsChange   decimal.Decimal `json:"savingsChange"`
}

// SensitivitySummary provides overall analysis summary
type SensitivitySummary struct {
	MinSavings        decimal.Decimal  `json:"minSavings"`
	MaxSavings        decimal.Decimal  `json:"maxSavings"`
	SavingsRange      decimal.Decimal  `json:"savingsRange"`
	ProfitableSteps   int              `json:"profitableSteps"`
	ProfitabilityFlip *decimal.Decimal `json:"profitabilityFlip,omitempty"`
	RiskLevel         string           `json:"riskLevel"` // "LOW", "MEDIUM", "HIGH"
	Recommendations   []string         `json:"recommendations"`
}

// Common sensitivity parameters
var (
	RenteParam = SensitivityParameter{
		Name:        "rente",
		MinValue:    decimal.NewFromInt(200),
		MaxValue:    decimal.NewFromInt(2000),
		Steps:       10,
		Unit:        "euros/month",
		Description: "Monthly annuity paid to the seller",
	}

	BouquetParam = SensitivityParameter{
		Name:        "bouquet",
		MinValue:    decimal.NewFromInt(10000),
		MaxValue:    decimal.NewFromInt(150000),
		Steps:       8,
		Unit:        "euros",
		Description: "Upfront payment at signature",
	}

	SellerAgeParam = SensitivityParameter{
		Name:        "age",
		MinValue:    decimal.NewFromInt(60),
		MaxValue:    decimal.NewFromInt(95),
		Steps:       8,
		Unit:        "years",
		Description: "Age of the seller",
	}

	TaxeFonciereParam = SensitivityParameter{
		Name:        "taxe_fonciere",
		MinValue:    decimal.Zero,
		MaxValue:    decimal.NewFromInt(4000),
		Steps:       9,
		Unit:        "euros/year",
		Description: "Annual property tax paid by the buyer",
	}

	PropertyPriceParam = SensitivityParameter{
		Name:        "property_price",
		MinValue:    decimal.NewFromInt(100000),
		MaxValue:    decimal.NewFromInt(600000),
		Steps:       6,
		Unit:        "euros",
		Description: "Market value of the property",
	}
)

// SensitivityParameters returns the built-in parameters keyed by name
func SensitivityParameters() map[string]SensitivityParameter {
	return map[string]SensitivityParameter{
		RenteParam.Name:         RenteParam,
		BouquetParam.Name:       BouquetParam,
		SellerAgeParam.Name:     SellerAgeParam,
		TaxeFonciereParam.Name:  TaxeFonciereParam,
		PropertyPriceParam.Name: PropertyPriceParam,
	}
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiseaseProfile is one entry of the disease catalog
type DiseaseProfile struct {
	Code               DiseaseCode     `yaml:"code" json:"code"`
	Name               string          `yaml:"name" json:"name"`
	LifeReductionYears decimal.Decimal `yaml:"life_reduction_years" json:"lifeReductionYears"`
	SurvivalMultiplier decimal.Decimal `yaml:"survival_multiplier" json:"survivalMultiplier"`
	Description        string          `yaml:"description" json:"description"`
}

// CoupleInfo details the last-survivor computation of a couple deal
type CoupleInfo struct {
	Person1Base      decimal.Decimal `json:"person1Base"`
	Person2Base      decimal.Decimal `json:"person2Base"`
	Person1WithBonus decimal.Decimal `json:"person1WithBonus"`
	Person2WithBonus decimal.Decimal `json:"person2WithBonus"`
	BonusPercent     int             `json:"bonusPercent"`
	LastSurvivor     decimal.Decimal `json:"lastSurvivor"`
	Person2Disease   DiseaseProfile  `json:"person2Disease"`
}

// BreakEvenInfo is the point estimate of when cumulative outlay reaches the property value
type BreakEvenInfo struct {
	Months       int             `json:"months"`
	Years        decimal.Decimal `json:"years"`
	Date         time.Time       `json:"date"`
	MonthlyCost  decimal.Decimal `json:"monthlyCost"`
	Margin       decimal.Decimal `json:"margin"`
	IsProfitable bool            `json:"isProfitable"`
}

// MarketBand places the deal's price per m² in its department's legend
type MarketBand struct {
	Department string `json:"department"`
	Band       string `json:"band"`
	Color      string `json:"color"`
}

// ValuationResult holds every metric derived from a single deal.
// Amounts are in euros, durations in years unless the field name says months.
type ValuationResult struct {
	DealName string `json:"dealName,omitempty"`

	// Property values
	EstimatedValue   decimal.Decimal `json:"estimatedValue"`
	PropertyPrice    decimal.Decimal `json:"propertyPrice"`
	RealPriceM2      decimal.Decimal `json:"realPriceM2"`
	AvgPriceM2       decimal.Decimal `json:"avgPriceM2"`
	PriceDiffPercent decimal.Decimal `json:"priceDiffPercent"`
	Surface          decimal.Decimal `json:"surface"`
	MarketBand       *MarketBand     `json:"marketBand,omitempty"`

	// Duration and disease
	LifeExpectancy decimal.Decimal `json:"lifeExpectancy"`
	BaseExpectancy decimal.Decimal `json:"baseExpectancy"`
	DurationMonths int             `json:"durationMonths"`
	DurationYears  decimal.Decimal `json:"durationYears"`
	DiseaseInfo    DiseaseProfile  `json:"diseaseInfo"`
	DiseaseImpact  decimal.Decimal `json:"diseaseImpact"`
	LifeReduction  decimal.Decimal `json:"lifeReduction"`

	IsCouple   bool        `json:"isCouple"`
	CoupleInfo *CoupleInfo `json:"coupleInfo,omitempty"`

	// Occupancy right
	DUHCoef       decimal.Decimal `json:"duhCoef"`
	DUHValue      decimal.Decimal `json:"duhValue"`
	BareOwnership decimal.Decimal `json:"bareOwnership"`

	// Costs
	Bouquet             decimal.Decimal `json:"bouquet"`
	Rente               decimal.Decimal `json:"rente"`
	TotalRentes         decimal.Decimal `json:"totalRentes"`
	TotalTaxesFoncieres decimal.Decimal `json:"totalTaxesFoncieres"`
	TaxeFonciere        decimal.Decimal `json:"taxeFonciereAnnuelle"`
	NotaryFees          decimal.Decimal `json:"notaryFees"`
	TotalCost           decimal.Decimal `json:"totalCost"`

	// Comparison with a direct purchase
	BouquetDiff        decimal.Decimal `json:"bouquetDiff"`
	DirectPurchaseCost decimal.Decimal `json:"directPurchaseCost"`
	Savings            decimal.Decimal `json:"savings"`
	SavingsPercent     decimal.Decimal `json:"savingsPercent"`
	Profitability      string          `json:"profitability"`
	IsPositive         bool            `json:"isPositive"`

	BreakEven BreakEvenInfo `json:"breakEvenInfo"`
}

package calculation

import (
	"time"

	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/rgehrsitz/viagerpro/internal/market"
	"github.com/rgehrsitz/viagerpro/internal/mortality"
	"github.com/rgehrsitz/viagerpro/internal/numeric"
	"github.com/shopspring/decimal"
)

// CalculationEngine turns a deal into a ValuationResult. It holds no state
// between calls and may be shared between goroutines.
type CalculationEngine struct {
	Tables *mortality.Tables
	Clock  func() time.Time // anchors the break-even date
	Logger Logger
	Debug  bool // log every intermediate figure
}

// NewCalculationEngine creates an engine over the built-in reference tables
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithTables(mortality.Default())
}

// NewCalculationEngineWithTables creates an engine over a specific table set
func NewCalculationEngineWithTables(tables *mortality.Tables) *CalculationEngine {
	return &CalculationEngine{
		Tables: tables,
		Clock:  time.Now,
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger, falling back to a no-op logger for nil
func (ce *CalculationEngine) SetLogger(logger Logger) {
	if logger == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = logger
}

// Duration is the occupancy duration the financial projection is sized to
type Duration struct {
	LifeExpectancy decimal.Decimal
	Months         int
	Years          decimal.Decimal
	Seller         mortality.Estimate
	Couple         *mortality.SurvivorEstimate
}

// EstimateDuration runs the estimator and adjuster, and the survivor model
// when the deal has a partner
func (ce *CalculationEngine) EstimateDuration(deal *domain.Deal) Duration {
	tables := ce.tables()
	seller := tables.Estimate(deal.Seller)
	dur := Duration{
		LifeExpectancy: seller.Years,
		Seller:         seller,
	}

	if deal.Partner != nil {
		survivor := tables.LastSurvivor(deal.Seller, *deal.Partner)
		dur.Couple = &survivor
		dur.LifeExpectancy = survivor.Years
	}

	dur.Months = int(numeric.Round(dur.LifeExpectancy.Mul(monthsPerYear)).IntPart())
	dur.Years = numeric.Round1(decimal.NewFromInt(int64(dur.Months)).Div(monthsPerYear))
	return dur
}

// Calculate evaluates a single deal
func (ce *CalculationEngine) Calculate(deal *domain.Deal) *domain.ValuationResult {
	property := CalculatePropertyValues(deal.PropertyPrice, deal.Surface, deal.AvgPriceM2)
	dur := ce.EstimateDuration(deal)
	duh := ValueOccupancyRight(ce.tables(), deal)
	costs := AggregateCosts(deal, dur.Months, dur.Years, duh.BareOwnership)
	profit := CompareWithDirectPurchase(deal.PropertyPrice, deal.Bouquet, duh.BareOwnership, costs.TotalCost)
	breakEven := AnalyzeBreakEven(deal, costs.NotaryFees, dur.Months, ce.now())

	if ce.Debug {
		logger := ce.logger()
		logger.Debugf("deal %q: base %s, adjusted %s, duration %d months (%s years)",
			deal.Name, dur.Seller.Base, dur.LifeExpectancy, dur.Months, dur.Years)
		logger.Debugf("deal %q: DUH age %d coef %s value %s, bare ownership %s",
			deal.Name, duh.Age, duh.Coefficient, duh.Value, duh.BareOwnership)
		logger.Debugf("deal %q: total cost %s, direct %s, break-even %d months",
			deal.Name, costs.TotalCost, profit.DirectPurchaseCost, breakEven.Months)
	}

	result := &domain.ValuationResult{
		DealName: deal.Name,

		EstimatedValue:   property.EstimatedValue,
		PropertyPrice:    deal.PropertyPrice,
		RealPriceM2:      property.RealPriceM2,
		AvgPriceM2:       deal.AvgPriceM2,
		PriceDiffPercent: property.PriceDiffPercent,
		Surface:          deal.Surface,

		LifeExpectancy: dur.LifeExpectancy,
		BaseExpectancy: dur.Seller.Base,
		DurationMonths: dur.Months,
		DurationYears:  dur.Years,
		DiseaseInfo:    dur.Seller.Disease,
		DiseaseImpact:  dur.Seller.ImpactPercent,
		LifeReduction:  dur.Seller.Reduction,

		IsCouple: dur.Couple != nil,

		DUHCoef:       duh.Coefficient,
		DUHValue:      duh.Value,
		BareOwnership: duh.BareOwnership,

		Bouquet:             deal.Bouquet,
		Rente:               deal.Rente,
		TotalRentes:         costs.TotalRentes,
		TotalTaxesFoncieres: costs.TotalTaxesFoncieres,
		TaxeFonciere:        deal.TaxeFonciere,
		NotaryFees:          costs.NotaryFees,
		TotalCost:           costs.TotalCost,

		BouquetDiff:        profit.BouquetDiff,
		DirectPurchaseCost: profit.DirectPurchaseCost,
		Savings:            profit.Savings,
		SavingsPercent:     profit.SavingsPercent,
		Profitability:      profit.Label,
		IsPositive:         profit.IsPositive,

		BreakEven: breakEven,
	}

	if dur.Couple != nil {
		result.CoupleInfo = dur.Couple.CoupleInfo()
	}
	if deal.PostalCode != "" && property.RealPriceM2.IsPositive() {
		band := market.Classify(property.RealPriceM2, deal.PostalCode)
		result.MarketBand = &domain.MarketBand{
			Department: band.Department,
			Band:       band.Label,
			Color:      band.Color,
		}
	}

	return result
}

// CalculateAll evaluates every deal of a configuration in file order
func (ce *CalculationEngine) CalculateAll(config *domain.Configuration) []*domain.ValuationResult {
	results := make([]*domain.ValuationResult, 0, len(config.Deals))
	for i := range config.Deals {
		results = append(results, ce.Calculate(&config.Deals[i]))
	}
	ce.logger().Infof("evaluated %d deals", len(results))
	return results
}

func (ce *CalculationEngine) tables() *mortality.Tables {
	if ce.Tables == nil {
		return mortality.Default()
	}
	return ce.Tables
}

func (ce *CalculationEngine) now() time.Time {
	if ce.Clock == nil {
		return time.Now()
	}
	return ce.Clock()
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

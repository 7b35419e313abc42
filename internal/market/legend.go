package market

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Legend colours, cheapest first
const (
	ColorVeryLow  = "#22c55e"
	ColorLow      = "#84cc16"
	ColorAverage  = "#eab308"
	ColorHigh     = "#f97316"
	ColorVeryHigh = "#ef4444"
)

// Band positions a price per m² within a legend
type Band struct {
	Department string
	Label      string
	Color      string
}

// LegendEntry is one line of a price legend
type LegendEntry struct {
	Range string `json:"range"`
	Color string `json:"color"`
}

// Classify returns the legend band of priceM2 for the department of postalCode
func Classify(priceM2 decimal.Decimal, postalCode string) Band {
	p := LookupDepartment(postalCode)
	band := Band{Department: p.Name}

	switch {
	case priceM2.LessThan(decimal.NewFromInt(p.Low)):
		band.Label, band.Color = "very_low", ColorVeryLow
	case priceM2.LessThan(decimal.NewFromInt(p.MedLow)):
		band.Label, band.Color = "low", ColorLow
	case priceM2.LessThan(decimal.NewFromInt(p.Med)):
		band.Label, band.Color = "average", ColorAverage
	case priceM2.LessThan(decimal.NewFromInt(p.MedHigh)):
		band.Label, band.Color = "high", ColorHigh
	default:
		band.Label, band.Color = "very_high", ColorVeryHigh
	}
	return band
}

// DepartmentLegend builds the five-band legend of a department
func DepartmentLegend(p DepartmentPrices) []LegendEntry {
	return buildLegend(p.Low, p.MedLow, p.Med, p.MedHigh)
}

// PercentileLegend builds the legend from observed transaction percentiles
func PercentileLegend(p Percentiles) []LegendEntry {
	return buildLegend(p.P10, p.P25, p.P75, p.P90)
}

func buildLegend(b1, b2, b3, b4 int64) []LegendEntry {
	return []LegendEntry{
		{Range: fmt.Sprintf("< %s €", FormatK(b1)), Color: ColorVeryLow},
		{Range: fmt.Sprintf("%s - %s €", FormatK(b1), FormatK(b2)), Color: ColorLow},
		{Range: fmt.Sprintf("%s - %s €", FormatK(b2), FormatK(b3)), Color: ColorAverage},
		{Range: fmt.Sprintf("%s - %s €", FormatK(b3), FormatK(b4)), Color: ColorHigh},
		{Range: fmt.Sprintf("> %s €", FormatK(b4)), Color: ColorVeryHigh},
	}
}

// FormatK abbreviates thousands: 12000 → "12k", 12500 → "12.5k"
func FormatK(n int64) string {
	if n >= 1000 {
		k := decimal.NewFromInt(n).Div(decimal.NewFromInt(1000))
		if k.Equal(k.Truncate(0)) {
			return k.String() + "k"
		}
		return k.StringFixed(1) + "k"
	}
	return strconv.FormatInt(n, 10)
}

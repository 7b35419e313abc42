package output

import (
	"strings"
	"time"

	"github.com/rgehrsitz/viagerpro/internal/numeric"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	frPrinter = message.NewPrinter(language.French)
	frTitle   = cases.Title(language.French)
)

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// CLDR uses no-break spaces as French group separators; terminals get plain ones
var spaceNormalizer = strings.NewReplacer("\u00a0", " ", "\u202f", " ")

// FormatNumber renders a rounded integer with French digit grouping: 1 234 567
func FormatNumber(amount decimal.Decimal) string {
	return spaceNormalizer.Replace(frPrinter.Sprintf("%d", numeric.Round(amount).IntPart()))
}

// FormatCurrency renders whole euros: 271 960 €
func FormatCurrency(amount decimal.Decimal) string {
	return FormatNumber(amount) + " €"
}

// FormatDecimal1 renders one decimal place with a decimal comma: 19,3
func FormatDecimal1(d decimal.Decimal) string {
	return spaceNormalizer.Replace(frPrinter.Sprintf("%.1f", numeric.Round1(d).InexactFloat64()))
}

// FormatPercentage renders a percentage with one decimal: 16,1 %
func FormatPercentage(pct decimal.Decimal) string {
	return FormatDecimal1(pct) + " %"
}

// FormatYears renders a duration in years: 19,3 ans
func FormatYears(years decimal.Decimal) string {
	return FormatDecimal1(years) + " ans"
}

// FormatMonthYear renders a date as its French month and year: décembre 2047
func FormatMonthYear(t time.Time) string {
	return frenchMonths[t.Month()-1] + " " + t.Format("2006")
}

// Title capitalises a French label
func Title(s string) string {
	return frTitle.String(s)
}

var bandLabels = map[string]string{
	"very_low":  "très bas",
	"low":       "bas",
	"average":   "moyen",
	"high":      "élevé",
	"very_high": "très élevé",
}

// BandLabel translates a market band identifier
func BandLabel(band string) string {
	if label, ok := bandLabels[band]; ok {
		return label
	}
	return band
}

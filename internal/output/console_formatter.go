package output

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders a detailed French text report, one section per deal
type ConsoleFormatter struct {
	ShowAssumptions bool
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results []*domain.ValuationResult) ([]byte, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("no valuation results to format")
	}

	var buf bytes.Buffer
	for i, r := range results {
		if r == nil {
			return nil, fmt.Errorf("valuation result %d is nil", i)
		}
		if i > 0 {
			buf.WriteString("\n")
		}
		writeConsoleResult(&buf, r)
	}

	if c.ShowAssumptions {
		buf.WriteString("\nHYPOTHÈSES\n")
		buf.WriteString(strings.Repeat("-", 40) + "\n")
		for _, a := range DefaultAssumptions {
			fmt.Fprintf(&buf, "  • %s\n", a)
		}
	}
	return buf.Bytes(), nil
}

func writeConsoleResult(buf *bytes.Buffer, r *domain.ValuationResult) {
	title := "ESTIMATION VIAGER"
	if r.DealName != "" {
		title += ": " + r.DealName
	}
	fmt.Fprintln(buf, strings.Repeat("=", 65))
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", 65))

	fmt.Fprintln(buf, "BIEN")
	fmt.Fprintf(buf, "  Prix affiché:            %s\n", FormatCurrency(r.PropertyPrice))
	fmt.Fprintf(buf, "  Surface:                 %s m²\n", FormatNumber(r.Surface))
	fmt.Fprintf(buf, "  Prix au m²:              %s (marché: %s, écart %s)\n",
		FormatCurrency(r.RealPriceM2), FormatCurrency(r.AvgPriceM2), signedPercent(r.PriceDiffPercent))
	if r.MarketBand != nil {
		fmt.Fprintf(buf, "  Niveau de prix:          %s (%s)\n", BandLabel(r.MarketBand.Band), r.MarketBand.Department)
	}
	fmt.Fprintln(buf)

	if r.IsCouple && r.CoupleInfo != nil {
		ci := r.CoupleInfo
		fmt.Fprintln(buf, "OCCUPANTS")
		fmt.Fprintf(buf, "  Occupant 1:              %s (%s avec bonus couple)\n", FormatYears(ci.Person1Base), FormatYears(ci.Person1WithBonus))
		fmt.Fprintf(buf, "  Occupant 2:              %s (%s avec bonus couple)\n", FormatYears(ci.Person2Base), FormatYears(ci.Person2WithBonus))
		fmt.Fprintf(buf, "  Dernier survivant:       %s\n", FormatYears(ci.LastSurvivor))
	} else {
		fmt.Fprintln(buf, "OCCUPANT")
		fmt.Fprintf(buf, "  Espérance de base:       %s\n", FormatYears(r.BaseExpectancy))
	}
	fmt.Fprintf(buf, "  État de santé:           %s\n", r.DiseaseInfo.Name)
	if r.LifeReduction.IsPositive() {
		fmt.Fprintf(buf, "  Réduction estimée:       %s\n", FormatYears(r.LifeReduction))
	}
	fmt.Fprintf(buf, "  Espérance retenue:       %s (%d mois)\n", FormatYears(r.LifeExpectancy), r.DurationMonths)
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "DROIT D'USAGE ET D'HABITATION")
	fmt.Fprintf(buf, "  Coefficient:             %s %%\n", FormatNumber(r.DUHCoef.Shift(2)))
	fmt.Fprintf(buf, "  Valeur du DUH:           %s\n", FormatCurrency(r.DUHValue))
	fmt.Fprintf(buf, "  Nue-propriété:           %s\n", FormatCurrency(r.BareOwnership))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "COÛT TOTAL")
	fmt.Fprintf(buf, "  Bouquet:                 %s\n", FormatCurrency(r.Bouquet))
	fmt.Fprintf(buf, "  Rentes (%s/mois):%s%s\n", FormatCurrency(r.Rente), pad(r.Rente), FormatCurrency(r.TotalRentes))
	fmt.Fprintf(buf, "  Taxes foncières:         %s\n", FormatCurrency(r.TotalTaxesFoncieres))
	fmt.Fprintf(buf, "  Frais de notaire:        %s\n", FormatCurrency(r.NotaryFees))
	fmt.Fprintf(buf, "  TOTAL:                   %s\n", FormatCurrency(r.TotalCost))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "RENTABILITÉ")
	fmt.Fprintf(buf, "  Achat direct:            %s\n", FormatCurrency(r.DirectPurchaseCost))
	fmt.Fprintf(buf, "  Économie:                %s (%s)\n", FormatCurrency(r.Savings), r.Profitability)
	be := r.BreakEven
	if be.Months > 0 {
		fmt.Fprintf(buf, "  Point mort:              %d mois (%s)\n", be.Months, FormatMonthYear(be.Date))
	} else {
		fmt.Fprintln(buf, "  Point mort:              atteint dès la signature")
	}
	if be.IsProfitable {
		fmt.Fprintln(buf, "  Verdict:                 RENTABLE")
	} else {
		fmt.Fprintln(buf, "  Verdict:                 NON RENTABLE")
	}
}

// pad aligns the rentes line, whose label width depends on the amount
func pad(rente decimal.Decimal) string {
	const width = 27
	used := utf8.RuneCountInString("  Rentes (/mois):" + FormatCurrency(rente))
	if used >= width {
		return " "
	}
	return strings.Repeat(" ", width-used)
}

func signedPercent(pct decimal.Decimal) string {
	if pct.IsPositive() {
		return "+" + FormatPercentage(pct)
	}
	return FormatPercentage(pct)
}

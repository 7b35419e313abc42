package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/viagerpro/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per deal).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

var csvHeader = []string{
	"Deal", "PropertyPrice", "Surface", "RealPriceM2", "LifeExpectancy", "DurationMonths",
	"DUHCoef", "DUHValue", "BareOwnership", "Bouquet", "Rente", "TotalRentes",
	"TotalTaxesFoncieres", "NotaryFees", "TotalCost", "DirectPurchaseCost", "Savings",
	"SavingsPercent", "BreakEvenMonths", "IsProfitable",
}

func (c CSVSummarizer) Format(results []*domain.ValuationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range results {
		row := []string{
			r.DealName,
			r.PropertyPrice.StringFixed(2),
			r.Surface.StringFixed(2),
			r.RealPriceM2.StringFixed(2),
			r.LifeExpectancy.StringFixed(1),
			strconv.Itoa(r.DurationMonths),
			r.DUHCoef.StringFixed(2),
			r.DUHValue.StringFixed(2),
			r.BareOwnership.StringFixed(2),
			r.Bouquet.StringFixed(2),
			r.Rente.StringFixed(2),
			r.TotalRentes.StringFixed(2),
			r.TotalTaxesFoncieres.StringFixed(2),
			r.NotaryFees.StringFixed(2),
			r.TotalCost.StringFixed(2),
			r.DirectPurchaseCost.StringFixed(2),
			r.Savings.StringFixed(2),
			r.SavingsPercent.StringFixed(1),
			strconv.Itoa(r.BreakEven.Months),
			strconv.FormatBool(r.BreakEven.IsProfitable),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

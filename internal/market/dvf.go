package market

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/viagerpro/internal/numeric"
	"github.com/shopspring/decimal"
)

// Filters applied to public transaction records (DVF)
var (
	MinTransactionPrice = decimal.NewFromInt(10000)
	MinPriceM2          = decimal.NewFromInt(500)
	MaxPriceM2          = decimal.NewFromInt(25000)
)

// MinPercentileSample is the number of prices needed before percentiles are reported
const MinPercentileSample = 5

// Transaction is one DVF sale record. Older exports misspell the built
// surface column, so both spellings are read.
type Transaction struct {
	DateMutation      string          `json:"date_mutation,omitempty"`
	ValeurFonciere    decimal.Decimal `json:"valeur_fonciere"`
	SurfaceReelleBati decimal.Decimal `json:"surface_reelle_bati"`
	SurfaceRelleBati  decimal.Decimal `json:"surface_relle_bati"`
	SurfaceTerrain    decimal.Decimal `json:"surface_terrain"`
	TypeLocal         string          `json:"type_local,omitempty"`
	CodePostal        string          `json:"code_postal,omitempty"`
	Latitude          *float64        `json:"latitude,omitempty"`
	Longitude         *float64        `json:"longitude,omitempty"`
}

// Surface returns the first non-zero surface column
func (t Transaction) Surface() decimal.Decimal {
	switch {
	case t.SurfaceReelleBati.IsPositive():
		return t.SurfaceReelleBati
	case t.SurfaceRelleBati.IsPositive():
		return t.SurfaceRelleBati
	default:
		return t.SurfaceTerrain
	}
}

// Valid reports whether the record can yield a price per m²
func (t Transaction) Valid() bool {
	return t.Surface().IsPositive() && t.ValeurFonciere.GreaterThan(MinTransactionPrice)
}

// PriceM2 returns the sale price per m²; callers check Valid first
func (t Transaction) PriceM2() decimal.Decimal {
	return t.ValeurFonciere.Div(t.Surface())
}

// Percentiles of the observed price per m², rounded to the euro
type Percentiles struct {
	P10 int64 `json:"p10"`
	P25 int64 `json:"p25"`
	P50 int64 `json:"p50"`
	P75 int64 `json:"p75"`
	P90 int64 `json:"p90"`
}

// Summary aggregates a set of transactions into a market reference
type Summary struct {
	Transactions   int          `json:"transactions"`
	Valid          int          `json:"valid"`
	Count          int          `json:"count"`
	AveragePriceM2 int64        `json:"averagePriceM2"`
	Percentiles    *Percentiles `json:"percentiles,omitempty"`
}

// Available reports whether an average could be computed
func (s Summary) Available() bool {
	return s.Count > 0
}

// Summarize filters transactions and computes the average and percentiles of
// their price per m². Prices outside (500, 25000) are treated as outliers.
func Summarize(transactions []Transaction) Summary {
	summary := Summary{Transactions: len(transactions)}

	var prices []decimal.Decimal
	total := decimal.Zero
	for _, t := range transactions {
		if !t.Valid() {
			continue
		}
		summary.Valid++

		p := t.PriceM2()
		if p.GreaterThan(MinPriceM2) && p.LessThan(MaxPriceM2) {
			prices = append(prices, p)
			total = total.Add(p)
		}
	}

	summary.Count = len(prices)
	if summary.Count == 0 {
		return summary
	}
	summary.AveragePriceM2 = numeric.Round(total.Div(decimal.NewFromInt(int64(summary.Count)))).IntPart()

	if len(prices) >= MinPercentileSample {
		sort.Slice(prices, func(i, j int) bool { return prices[i].LessThan(prices[j]) })
		summary.Percentiles = &Percentiles{
			P10: percentile(prices, 10),
			P25: percentile(prices, 25),
			P50: percentile(prices, 50),
			P75: percentile(prices, 75),
			P90: percentile(prices, 90),
		}
	}

	return summary
}

// percentile picks sorted[floor(n*q/100)] without interpolation
func percentile(sorted []decimal.Decimal, q int) int64 {
	idx := len(sorted) * q / 100
	return numeric.Round(sorted[idx]).IntPart()
}

type dvfEnvelope struct {
	Resultats []Transaction `json:"resultats"`
}

// DecodeTransactions reads a DVF export, either the API envelope
// {"resultats": [...]} or a bare array of records
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var txs []Transaction
		if err := json.Unmarshal(trimmed, &txs); err != nil {
			return nil, fmt.Errorf("failed to parse transactions: %w", err)
		}
		return txs, nil
	}

	var env dvfEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("failed to parse transactions: %w", err)
	}
	return env.Resultats, nil
}

// Package market holds the price-per-m² references used to position a
// property against its local market.
package market

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// PricesLastUpdate stamps the department reference table
const PricesLastUpdate = "Janvier 2026"

// DefaultDepartment keys the national fallback entry
const DefaultDepartment = "default"

// DepartmentPrices are the €/m² legend thresholds for one department
type DepartmentPrices struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Avg     int64  `json:"avg"`
	Low     int64  `json:"low"`
	MedLow  int64  `json:"medLow"`
	Med     int64  `json:"med"`
	MedHigh int64  `json:"medHigh"`
	High    int64  `json:"high"`
}

var departments = map[string]DepartmentPrices{
	// Île-de-France
	"75": {Name: "Paris", Avg: 10500, Low: 8000, MedLow: 9500, Med: 10500, MedHigh: 12000, High: 15000},
	"92": {Name: "Hauts-de-Seine", Avg: 7200, Low: 5000, MedLow: 6000, Med: 7200, MedHigh: 8500, High: 10000},
	"93": {Name: "Seine-Saint-Denis", Avg: 4100, Low: 3000, MedLow: 3500, Med: 4100, MedHigh: 5000, High: 6000},
	"94": {Name: "Val-de-Marne", Avg: 5200, Low: 3500, MedLow: 4500, Med: 5200, MedHigh: 6500, High: 8000},
	"78": {Name: "Yvelines", Avg: 4500, Low: 3000, MedLow: 3800, Med: 4500, MedHigh: 5500, High: 7000},
	"91": {Name: "Essonne", Avg: 3200, Low: 2200, MedLow: 2800, Med: 3200, MedHigh: 4000, High: 5000},
	"95": {Name: "Val-d'Oise", Avg: 3400, Low: 2300, MedLow: 2900, Med: 3400, MedHigh: 4200, High: 5200},
	"77": {Name: "Seine-et-Marne", Avg: 2800, Low: 1800, MedLow: 2300, Med: 2800, MedHigh: 3500, High: 4500},

	// Large cities
	"69": {Name: "Rhône (Lyon)", Avg: 4800, Low: 3000, MedLow: 4000, Med: 4800, MedHigh: 6000, High: 7500},
	"13": {Name: "Bouches-du-Rhône", Avg: 3800, Low: 2500, MedLow: 3200, Med: 3800, MedHigh: 4800, High: 6000},
	"31": {Name: "Haute-Garonne (Toulouse)", Avg: 3500, Low: 2200, MedLow: 2900, Med: 3500, MedHigh: 4300, High: 5500},
	"33": {Name: "Gironde (Bordeaux)", Avg: 4200, Low: 2800, MedLow: 3500, Med: 4200, MedHigh: 5200, High: 6500},
	"44": {Name: "Loire-Atlantique (Nantes)", Avg: 3900, Low: 2600, MedLow: 3300, Med: 3900, MedHigh: 4800, High: 6000},
	"59": {Name: "Nord (Lille)", Avg: 3000, Low: 1800, MedLow: 2400, Med: 3000, MedHigh: 3800, High: 5000},
	"67": {Name: "Bas-Rhin (Strasbourg)", Avg: 3200, Low: 2000, MedLow: 2600, Med: 3200, MedHigh: 4000, High: 5000},
	"34": {Name: "Hérault (Montpellier)", Avg: 3400, Low: 2200, MedLow: 2800, Med: 3400, MedHigh: 4200, High: 5500},

	// Côte d'Azur
	"06": {Name: "Alpes-Maritimes (Nice)", Avg: 5200, Low: 3500, MedLow: 4300, Med: 5200, MedHigh: 6500, High: 8500},
	"83": {Name: "Var (Toulon)", Avg: 3800, Low: 2500, MedLow: 3200, Med: 3800, MedHigh: 4800, High: 6200},

	DefaultDepartment: {Name: "France", Avg: 2500, Low: 1500, MedLow: 2000, Med: 2500, MedHigh: 3500, High: 5000},
}

// DepartmentCode extracts the department from a postal code
func DepartmentCode(postalCode string) string {
	postalCode = strings.TrimSpace(postalCode)
	if len(postalCode) < 2 {
		return ""
	}
	return postalCode[:2]
}

// LookupDepartment returns the price references for a postal code, falling
// back to the national averages for unknown or empty codes
func LookupDepartment(postalCode string) DepartmentPrices {
	if p, ok := FindDepartment(postalCode); ok {
		return p
	}
	p := departments[DefaultDepartment]
	p.Code = DefaultDepartment
	return p
}

// FindDepartment returns the price references of a known department only
func FindDepartment(postalCode string) (DepartmentPrices, bool) {
	code := DepartmentCode(postalCode)
	p, ok := departments[code]
	if !ok || code == DefaultDepartment {
		return DepartmentPrices{}, false
	}
	p.Code = code
	return p, true
}

// Departments lists every known department, sorted by code, national fallback last
func Departments() []DepartmentPrices {
	out := make([]DepartmentPrices, 0, len(departments))
	for code, p := range departments {
		if code == DefaultDepartment {
			continue
		}
		p.Code = code
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	fallback := departments[DefaultDepartment]
	fallback.Code = DefaultDepartment
	return append(out, fallback)
}

// AveragePriceM2 returns the department average as a decimal
func (p DepartmentPrices) AveragePriceM2() decimal.Decimal {
	return decimal.NewFromInt(p.Avg)
}

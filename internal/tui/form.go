package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/rgehrsitz/viagerpro/internal/mortality"
	"github.com/rgehrsitz/viagerpro/internal/tui/components"
	"github.com/shopspring/decimal"
)

// Field keys
const (
	fieldPrice          = "property_price"
	fieldSurface        = "surface"
	fieldPostalCode     = "postal_code"
	fieldAvgPriceM2     = "avg_price_m2"
	fieldBouquet        = "bouquet"
	fieldRente          = "rente"
	fieldTaxeFonciere   = "taxe_fonciere"
	fieldSellerAge      = "seller.age"
	fieldSellerGender   = "seller.gender"
	fieldSellerDisease  = "seller.disease"
	fieldCouple         = "couple"
	fieldPartnerAge     = "partner.age"
	fieldPartnerGender  = "partner.gender"
	fieldPartnerDisease = "partner.disease"
)

// field is one row of the form, either free text or a select
type field struct {
	key     string
	label   string
	section string
	input   *textinput.Model
	sel     *components.Select
	partner bool
}

func (f *field) value() string {
	if f.sel != nil {
		return f.sel.Value()
	}
	return strings.TrimSpace(f.input.Value())
}

func (f *field) setValue(v string) {
	if f.sel != nil {
		f.sel.SetValue(v)
		return
	}
	f.input.SetValue(v)
}

func (f *field) focus() {
	if f.sel != nil {
		f.sel.SetFocused(true)
		return
	}
	f.input.Focus()
}

func (f *field) blur() {
	if f.sel != nil {
		f.sel.SetFocused(false)
		return
	}
	f.input.Blur()
}

func (f *field) view() string {
	if f.sel != nil {
		return f.sel.View()
	}
	return f.input.View()
}

func newTextField(key, label, section, placeholder string, partner bool) *field {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = 12
	in.Width = 14
	return &field{key: key, label: label, section: section, input: &in, partner: partner}
}

func newSelectField(key, label, section string, partner bool, options ...components.Option) *field {
	return &field{key: key, label: label, section: section, sel: components.NewSelect(options...), partner: partner}
}

func genderOptions() []components.Option {
	return []components.Option{
		{Value: string(domain.Male), Label: domain.Male.Label()},
		{Value: string(domain.Female), Label: domain.Female.Label()},
	}
}

func diseaseOptions(tables *mortality.Tables) []components.Option {
	diseases := tables.Diseases()
	options := make([]components.Option, 0, len(diseases))
	for _, d := range diseases {
		options = append(options, components.Option{Value: string(d.Code), Label: d.Name})
	}
	return options
}

func newFields(tables *mortality.Tables) []*field {
	return []*field{
		newTextField(fieldPrice, "Prix du bien (€)", "Bien", "300000", false),
		newTextField(fieldSurface, "Surface (m²)", "Bien", "60", false),
		newTextField(fieldPostalCode, "Code postal", "Bien", "75011", false),
		newTextField(fieldAvgPriceM2, "Prix moyen (€/m²)", "Bien", "département", false),
		newTextField(fieldBouquet, "Bouquet (€)", "Paiement", "50000", false),
		newTextField(fieldRente, "Rente (€/mois)", "Paiement", "800", false),
		newTextField(fieldTaxeFonciere, "Taxe foncière (€/an)", "Paiement", "1200", false),
		newTextField(fieldSellerAge, "Âge", "Vendeur", "65", false),
		newSelectField(fieldSellerGender, "Sexe", "Vendeur", false, genderOptions()...),
		newSelectField(fieldSellerDisease, "Santé", "Vendeur", false, diseaseOptions(tables)...),
		newSelectField(fieldCouple, "Couple", "Vendeur", false,
			components.Option{Value: "no", Label: "Non"},
			components.Option{Value: "yes", Label: "Oui"}),
		newTextField(fieldPartnerAge, "Âge", "Conjoint", "70", true),
		newSelectField(fieldPartnerGender, "Sexe", "Conjoint", true, genderOptions()...),
		newSelectField(fieldPartnerDisease, "Santé", "Conjoint", true, diseaseOptions(tables)...),
	}
}

// fillFields copies a deal into the form
func fillFields(fields []*field, deal *domain.Deal) {
	values := map[string]string{
		fieldPrice:         amountText(deal.PropertyPrice),
		fieldSurface:       amountText(deal.Surface),
		fieldPostalCode:    deal.PostalCode,
		fieldAvgPriceM2:    amountText(deal.AvgPriceM2),
		fieldBouquet:       amountText(deal.Bouquet),
		fieldRente:         amountText(deal.Rente),
		fieldTaxeFonciere:  amountText(deal.TaxeFonciere),
		fieldSellerAge:     ageText(deal.Seller.Age),
		fieldSellerGender:  string(deal.Seller.Gender),
		fieldSellerDisease: string(deal.Seller.Disease.Resolve()),
		fieldCouple:        "no",
	}
	if deal.Partner != nil {
		values[fieldCouple] = "yes"
		values[fieldPartnerAge] = ageText(deal.Partner.Age)
		values[fieldPartnerGender] = string(deal.Partner.Gender)
		values[fieldPartnerDisease] = string(deal.Partner.Disease.Resolve())
	}
	for _, f := range fields {
		if v, ok := values[f.key]; ok {
			f.setValue(v)
		}
	}
}

func amountText(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func ageText(age int) string {
	if age == 0 {
		return ""
	}
	return strconv.Itoa(age)
}

// parseAmount accepts "300000", "300 000", "1 234,5" and a trailing €
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "", "€", "", ",", ".").Replace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func parseAge(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// formDeal reads the form into a deal; parse failures are reported per field
func formDeal(fields []*field) (*domain.Deal, []string) {
	values := make(map[string]string, len(fields))
	labels := make(map[string]string, len(fields))
	for _, f := range fields {
		values[f.key] = f.value()
		labels[f.key] = f.section + " / " + f.label
	}

	var problems []string
	amount := func(key string) decimal.Decimal {
		d, err := parseAmount(values[key])
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: montant invalide %q", labels[key], values[key]))
		}
		return d
	}
	age := func(key string) int {
		a, err := parseAge(values[key])
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: âge invalide %q", labels[key], values[key]))
		}
		return a
	}

	deal := &domain.Deal{
		Name:          "live",
		PostalCode:    values[fieldPostalCode],
		PropertyPrice: amount(fieldPrice),
		Surface:       amount(fieldSurface),
		AvgPriceM2:    amount(fieldAvgPriceM2),
		Bouquet:       amount(fieldBouquet),
		Rente:         amount(fieldRente),
		TaxeFonciere:  amount(fieldTaxeFonciere),
		Seller: domain.Person{
			Age:     age(fieldSellerAge),
			Gender:  domain.Gender(values[fieldSellerGender]),
			Disease: domain.DiseaseCode(values[fieldSellerDisease]),
		},
	}
	if values[fieldCouple] == "yes" {
		deal.Partner = &domain.Person{
			Age:     age(fieldPartnerAge),
			Gender:  domain.Gender(values[fieldPartnerGender]),
			Disease: domain.DiseaseCode(values[fieldPartnerDisease]),
		}
	}
	return deal, problems
}

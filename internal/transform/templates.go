package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in deal templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []DealTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func percent(v int64) Adjustment {
	return Adjustment{Delta: decimal.NewFromInt(v), Percent: true}
}

// CreateBuiltInTemplates creates a template registry with the common negotiation variants
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	// Payment structure
	registry.Register(Template{
		Name:        "bouquet_plus_10pct",
		Description: "Raise the bouquet by 10%",
		Transforms:  []DealTransform{&AdjustBouquet{Adjustment: percent(10)}},
	})
	registry.Register(Template{
		Name:        "bouquet_minus_10pct",
		Description: "Lower the bouquet by 10%",
		Transforms:  []DealTransform{&AdjustBouquet{Adjustment: percent(-10)}},
	})
	registry.Register(Template{
		Name:        "rente_plus_10pct",
		Description: "Raise the monthly rente by 10%",
		Transforms:  []DealTransform{&AdjustRente{Adjustment: percent(10)}},
	})
	registry.Register(Template{
		Name:        "rente_minus_10pct",
		Description: "Lower the monthly rente by 10%",
		Transforms:  []DealTransform{&AdjustRente{Adjustment: percent(-10)}},
	})

	// Occupants
	registry.Register(Template{
		Name:        "seller_plus_5yr",
		Description: "Same deal with a seller 5 years older",
		Transforms:  []DealTransform{&SetAge{Occupant: Seller, Years: 5}},
	})
	registry.Register(Template{
		Name:        "healthy_seller",
		Description: "Seller without any declared condition",
		Transforms:  []DealTransform{&SetDisease{Occupant: Seller, Disease: domain.DiseaseNone}},
	})
	registry.Register(Template{
		Name:        "single_occupant",
		Description: "Drop the partner from a couple deal",
		Transforms:  []DealTransform{&RemovePartner{}},
	})

	// Charges
	registry.Register(Template{
		Name:        "no_property_tax",
		Description: "Ignore the taxe foncière",
		Transforms:  []DealTransform{&SetTaxeFonciere{Amount: decimal.Zero}},
	})

	return registry
}

// ApplyTemplate applies a template to a base deal
func ApplyTemplate(base *domain.Deal, template Template) (*domain.Deal, error) {
	if base == nil {
		return nil, fmt.Errorf("base deal cannot be nil")
	}
	if len(template.Transforms) == 0 {
		return base.Clone(), nil
	}
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	categories := map[string][]Template{}
	order := []string{"Payment Structure", "Occupants", "Charges"}
	for _, name := range registry.List() {
		template := registry.templates[name]
		switch {
		case strings.HasPrefix(name, "bouquet_"), strings.HasPrefix(name, "rente_"):
			categories["Payment Structure"] = append(categories["Payment Structure"], template)
		case strings.Contains(name, "seller"), strings.Contains(name, "occupant"):
			categories["Occupants"] = append(categories["Occupants"], template)
		default:
			categories["Charges"] = append(categories["Charges"], template)
		}
	}

	for _, category := range order {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-22s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  viager compare deals.yaml --base paris --with rente_minus_10pct,seller_plus_5yr\n")

	return sb.String()
}

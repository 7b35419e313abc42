package transform

import (
	"strings"
	"testing"

	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRegistry_RegisterAndGet(t *testing.T) {
	registry := NewTemplateRegistry()

	template := Template{
		Name:        "test_template",
		Description: "A test template",
		Transforms:  []DealTransform{},
	}

	registry.Register(template)

	retrieved, ok := registry.Get("test_template")
	if !ok {
		t.Fatal("Expected to find template")
	}
	if retrieved.Name != template.Name {
		t.Errorf("Expected name %s, got %s", template.Name, retrieved.Name)
	}

	if _, ok = registry.Get("TEST_TEMPLATE"); !ok {
		t.Fatal("Expected case-insensitive lookup to work")
	}

	if _, ok = registry.Get("nonexistent"); ok {
		t.Error("Expected not to find nonexistent template")
	}
}

func TestCreateBuiltInTemplates(t *testing.T) {
	registry := CreateBuiltInTemplates()

	assert.Equal(t, []string{
		"bouquet_minus_10pct", "bouquet_plus_10pct", "healthy_seller", "no_property_tax",
		"rente_minus_10pct", "rente_plus_10pct", "seller_plus_5yr", "single_occupant",
	}, registry.List())
}

func TestApplyTemplate_BuiltIns(t *testing.T) {
	registry := CreateBuiltInTemplates()

	tests := []struct {
		template string
		check    func(t *testing.T, d *domain.Deal)
	}{
		{"bouquet_plus_10pct", func(t *testing.T, d *domain.Deal) {
			assert.True(t, d.Bouquet.Equal(decimal.NewFromInt(55000)))
		}},
		{"bouquet_minus_10pct", func(t *testing.T, d *domain.Deal) {
			assert.True(t, d.Bouquet.Equal(decimal.NewFromInt(45000)))
		}},
		{"rente_plus_10pct", func(t *testing.T, d *domain.Deal) {
			assert.True(t, d.Rente.Equal(decimal.NewFromInt(880)))
		}},
		{"rente_minus_10pct", func(t *testing.T, d *domain.Deal) {
			assert.True(t, d.Rente.Equal(decimal.NewFromInt(720)))
		}},
		{"seller_plus_5yr", func(t *testing.T, d *domain.Deal) {
			assert.Equal(t, 80, d.Seller.Age)
		}},
		{"healthy_seller", func(t *testing.T, d *domain.Deal) {
			assert.Equal(t, domain.DiseaseNone, d.Seller.Disease)
		}},
		{"single_occupant", func(t *testing.T, d *domain.Deal) {
			assert.Nil(t, d.Partner)
		}},
		{"no_property_tax", func(t *testing.T, d *domain.Deal) {
			assert.True(t, d.TaxeFonciere.IsZero())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			template, ok := registry.Get(tt.template)
			require.True(t, ok)

			result, err := ApplyTemplate(createTestDeal(), template)
			require.NoError(t, err)
			tt.check(t, result)
		})
	}
}

func TestApplyTemplate_SingleOccupantRequiresCouple(t *testing.T) {
	template, _ := CreateBuiltInTemplates().Get("single_occupant")
	base := createTestDeal()
	base.Partner = nil

	_, err := ApplyTemplate(base, template)
	assert.Error(t, err)
}

func TestApplyTemplate_Empty(t *testing.T) {
	base := createTestDeal()
	result, err := ApplyTemplate(base, Template{Name: "noop"})
	require.NoError(t, err)
	assert.NotSame(t, base, result)

	_, err = ApplyTemplate(nil, Template{Name: "noop"})
	assert.Error(t, err)
}

func TestParseTemplateList(t *testing.T) {
	assert.Nil(t, ParseTemplateList(""))
	assert.Equal(t, []string{"a", "b"}, ParseTemplateList(" a, ,b "))
}

func TestGetTemplateHelp(t *testing.T) {
	help := GetTemplateHelp(CreateBuiltInTemplates())

	for _, want := range []string{"Payment Structure:", "Occupants:", "Charges:", "rente_minus_10pct", "no_property_tax"} {
		if !strings.Contains(help, want) {
			t.Errorf("help text missing %q", want)
		}
	}
	assert.Equal(t, "No templates registered", GetTemplateHelp(NewTemplateRegistry()))
}

package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (DealTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("adjust_bouquet", createAdjustBouquet)
	registry.Register("adjust_rente", createAdjustRente)
	registry.Register("set_taxe_fonciere", createSetTaxeFonciere)
	registry.Register("set_price", createSetPrice)
	registry.Register("set_age", createSetAge)
	registry.Register("set_disease", createSetDisease)
	registry.Register("set_partner", createSetPartner)
	registry.Register("remove_partner", createRemovePartner)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (DealTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms, sorted.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "adjust_rente:percent=-10"
func (r *TransformRegistry) ParseTransformSpec(spec string) (DealTransform, error) {
	name, paramsStr, _ := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	paramsStr = strings.TrimSpace(paramsStr)
	if name == "" {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// Factory functions for each transform

func parseAdjustment(name string, params map[string]string) (Adjustment, error) {
	amountStr, hasAmount := params["amount"]
	percentStr, hasPercent := params["percent"]
	if hasAmount == hasPercent {
		return Adjustment{}, fmt.Errorf("%s requires exactly one of 'amount' or 'percent'", name)
	}

	if hasPercent {
		pct, err := decimal.NewFromString(percentStr)
		if err != nil {
			return Adjustment{}, fmt.Errorf("invalid percent value: %w", err)
		}
		return Adjustment{Delta: pct, Percent: true}, nil
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return Adjustment{}, fmt.Errorf("invalid amount value: %w", err)
	}
	return Adjustment{Delta: amount}, nil
}

func requireDecimal(name, key string, params map[string]string) (decimal.Decimal, error) {
	raw, ok := params[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s requires '%s' parameter", name, key)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

func occupantParam(params map[string]string) string {
	if who, ok := params["occupant"]; ok && who != "" {
		return who
	}
	return Seller
}

func createAdjustBouquet(params map[string]string) (DealTransform, error) {
	adj, err := parseAdjustment("adjust_bouquet", params)
	if err != nil {
		return nil, err
	}
	return &AdjustBouquet{Adjustment: adj}, nil
}

func createAdjustRente(params map[string]string) (DealTransform, error) {
	adj, err := parseAdjustment("adjust_rente", params)
	if err != nil {
		return nil, err
	}
	return &AdjustRente{Adjustment: adj}, nil
}

func createSetTaxeFonciere(params map[string]string) (DealTransform, error) {
	amount, err := requireDecimal("set_taxe_fonciere", "amount", params)
	if err != nil {
		return nil, err
	}
	return &SetTaxeFonciere{Amount: amount}, nil
}

func createSetPrice(params map[string]string) (DealTransform, error) {
	price, err := requireDecimal("set_price", "price", params)
	if err != nil {
		return nil, err
	}
	return &SetPrice{Price: price}, nil
}

func createSetAge(params map[string]string) (DealTransform, error) {
	t := &SetAge{Occupant: occupantParam(params)}

	ageStr, hasAge := params["age"]
	yearsStr, hasYears := params["years"]
	if hasAge == hasYears {
		return nil, fmt.Errorf("set_age requires exactly one of 'age' or 'years'")
	}

	var err error
	if hasAge {
		t.Age, err = strconv.Atoi(ageStr)
		if err != nil {
			return nil, fmt.Errorf("invalid age value: %w", err)
		}
	} else {
		t.Years, err = strconv.Atoi(yearsStr)
		if err != nil {
			return nil, fmt.Errorf("invalid years value: %w", err)
		}
	}
	return t, nil
}

func createSetDisease(params map[string]string) (DealTransform, error) {
	code, ok := params["disease"]
	if !ok {
		return nil, fmt.Errorf("set_disease requires 'disease' parameter")
	}
	return &SetDisease{Occupant: occupantParam(params), Disease: domain.DiseaseCode(code)}, nil
}

func createSetPartner(params map[string]string) (DealTransform, error) {
	ageStr, ok := params["age"]
	if !ok {
		return nil, fmt.Errorf("set_partner requires 'age' parameter")
	}
	age, err := strconv.Atoi(ageStr)
	if err != nil {
		return nil, fmt.Errorf("invalid age value: %w", err)
	}

	genderStr, ok := params["gender"]
	if !ok {
		return nil, fmt.Errorf("set_partner requires 'gender' parameter")
	}
	gender, err := domain.ParseGender(genderStr)
	if err != nil {
		return nil, err
	}

	disease := domain.DiseaseNone
	if code, ok := params["disease"]; ok && code != "" {
		disease = domain.DiseaseCode(code)
	}

	return &SetPartner{Person: domain.Person{Age: age, Gender: gender, Disease: disease}}, nil
}

func createRemovePartner(params map[string]string) (DealTransform, error) {
	return &RemovePartner{}, nil
}

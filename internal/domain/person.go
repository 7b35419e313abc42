package domain

import (
	"fmt"
	"strings"
)

// Gender selects the life-expectancy column used for a person
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender accepts the English and French spellings used in deal files
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "homme", "h":
		return Male, nil
	case "female", "f", "femme":
		return Female, nil
	default:
		return "", fmt.Errorf("unknown gender %q (expected male or female)", s)
	}
}

// Valid reports whether g is one of the two supported genders
func (g Gender) Valid() bool {
	return g == Male || g == Female
}

// Label returns the French display label
func (g Gender) Label() string {
	if g == Female {
		return "Femme"
	}
	return "Homme"
}

// Person is an occupant of the property (the seller, or the seller's partner)
type Person struct {
	Age     int         `yaml:"age" json:"age"`
	Gender  Gender      `yaml:"gender" json:"gender"`
	Disease DiseaseCode `yaml:"disease,omitempty" json:"disease,omitempty"`
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of deal files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a deal file; .json files are read as JSON, anything else as YAML
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	format := "yaml"
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		format = "json"
	}

	return ip.Parse(data, format)
}

// Parse decodes and validates a deal document
func (ip *InputParser) Parse(data []byte, format string) (*domain.Configuration, error) {
	var raw interface{}
	var config domain.Configuration

	switch format {
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		if err := ValidateDocument(ConfigurationSchema, raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if err := ValidateDocument(ConfigurationSchema, raw); err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ParseDeal decodes a single JSON deal, as received by the HTTP API
func (ip *InputParser) ParseDeal(body []byte) (*domain.Deal, error) {
	if err := ValidateJSON(DealSchema, body); err != nil {
		return nil, err
	}

	var deal domain.Deal
	if err := json.Unmarshal(body, &deal); err != nil {
		return nil, fmt.Errorf("failed to parse deal: %w", err)
	}
	NormalizePartner(&deal)
	if err := ValidateDeal(&deal); err != nil {
		return nil, err
	}
	return &deal, nil
}

// ValidateConfiguration validates every deal and drops out-of-range partners
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Deals) == 0 {
		return fmt.Errorf("at least one deal is required")
	}

	seen := make(map[string]bool)
	for i := range config.Deals {
		deal := &config.Deals[i]
		if deal.Name == "" {
			deal.Name = fmt.Sprintf("deal_%d", i+1)
		}
		if seen[deal.Name] {
			return fmt.Errorf("duplicate deal name %q", deal.Name)
		}
		seen[deal.Name] = true

		NormalizePartner(deal)
		if err := ValidateDeal(deal); err != nil {
			return err
		}
	}
	return nil
}

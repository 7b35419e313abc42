package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rgehrsitz/viagerpro/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport writes results to w in the named format
func GenerateReport(w io.Writer, results []*domain.ValuationResult, format string) error {
	formatter := GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unsupported format: %s", format)
	}
	data, err := formatter.Format(results)
	if err != nil {
		return fmt.Errorf("failed to format %s report: %w", format, err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

var decimalKeys = map[string]bool{
	"property_price": true,
	"surface":        true,
	"bouquet":        true,
	"rente":          true,
	"taxe_fonciere":  true,
	"avg_price_m2":   true,
}

// SaveConfiguration saves a deal configuration to a YAML file
func SaveConfiguration(config *domain.Configuration, filename string) error {
	var doc yaml.Node
	if err := doc.Encode(config); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	unquoteDecimals(&doc)

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}

// unquoteDecimals turns decimal amounts, which encode as text, back into plain YAML numbers
func unquoteDecimals(n *yaml.Node) {
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			if value.Kind == yaml.ScalarNode && decimalKeys[key.Value] {
				value.Tag = "!!int"
				if strings.ContainsAny(value.Value, ".eE") {
					value.Tag = "!!float"
				}
				value.Style = 0
			}
		}
	}
	for _, child := range n.Content {
		unquoteDecimals(child)
	}
}

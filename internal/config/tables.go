package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/viagerpro/internal/mortality"
	"gopkg.in/yaml.v3"
)

// LoadTables reads a reference-table file. The file replaces the built-in
// tables as a whole: a file that fails validation is rejected entirely.
func LoadTables(filename string) (*mortality.Tables, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file %s: %w", filename, err)
	}

	var spec mortality.TableSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse tables file %s: %w", filename, err)
	}

	tables, err := mortality.NewTables(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid tables file %s: %w", filename, err)
	}
	return tables, nil
}

// ResolveTables returns the tables from filename, or the built-in tables when
// filename is empty
func ResolveTables(filename string) (*mortality.Tables, error) {
	if filename == "" {
		return mortality.Default(), nil
	}
	return LoadTables(filename)
}

// MarshalTables renders a table set in the file format read by LoadTables
func MarshalTables(tables *mortality.Tables) ([]byte, error) {
	data, err := yaml.Marshal(tables.Spec())
	if err != nil {
		return nil, fmt.Errorf("failed to encode tables: %w", err)
	}
	return data, nil
}

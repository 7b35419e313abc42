package config

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const schemaBaseURL = "https://viagerpro.local/schemas/"

// Schema names accepted by ValidateDocument
const (
	DealSchema          = "deal.json"
	ConfigurationSchema = "configuration.json"
)

var (
	schemaOnce sync.Once
	schemas    map[string]*jsonschema.Schema
	schemaErr  error
)

func compileSchemas() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		schemaErr = fmt.Errorf("failed to list schemas: %w", err)
		return
	}
	for _, e := range entries {
		data, err := schemaFS.ReadFile(path.Join("schemas", e.Name()))
		if err != nil {
			schemaErr = fmt.Errorf("failed to read schema %s: %w", e.Name(), err)
			return
		}
		if err := compiler.AddResource(schemaBaseURL+e.Name(), bytes.NewReader(data)); err != nil {
			schemaErr = fmt.Errorf("failed to add schema %s: %w", e.Name(), err)
			return
		}
	}

	schemas = make(map[string]*jsonschema.Schema)
	for _, name := range []string{DealSchema, ConfigurationSchema} {
		s, err := compiler.Compile(schemaBaseURL + name)
		if err != nil {
			schemaErr = fmt.Errorf("failed to compile schema %s: %w", name, err)
			return
		}
		schemas[name] = s
	}
}

// ValidateDocument checks a decoded JSON or YAML document against one of the
// embedded schemas. The document is normalised through JSON first so YAML
// scalars validate the same way as JSON ones.
func ValidateDocument(schemaName string, doc interface{}) error {
	schemaOnce.Do(compileSchemas)
	if schemaErr != nil {
		return schemaErr
	}
	schema, ok := schemas[schemaName]
	if !ok {
		return fmt.Errorf("unknown schema %q", schemaName)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("document is not representable as JSON: %w", err)
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("document is not valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// ValidateJSON validates raw JSON bytes against a schema
func ValidateJSON(schemaName string, body []byte) error {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("body is not valid JSON: %w", err)
	}
	return ValidateDocument(schemaName, v)
}

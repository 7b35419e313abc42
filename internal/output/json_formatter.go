package output

import (
	"github.com/goccy/go-json"
	"github.com/rgehrsitz/viagerpro/internal/domain"
)

// JSONFormatter renders results as a JSON array, or a single object for one deal
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results []*domain.ValuationResult) ([]byte, error) {
	var payload interface{} = results
	if len(results) == 1 {
		payload = results[0]
	}
	if j.Pretty {
		return json.MarshalIndent(payload, "", "  ")
	}
	return json.Marshal(payload)
}

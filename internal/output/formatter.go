package output

import (
	"sort"
	"strings"

	"github.com/rgehrsitz/viagerpro/internal/domain"
)

// Formatter renders valuation results in one output format
type Formatter interface {
	Name() string
	Format(results []*domain.ValuationResult) ([]byte, error)
}

var formatters = map[string]Formatter{}

func register(f Formatter) {
	formatters[f.Name()] = f
}

func init() {
	register(ConsoleFormatter{})
	register(JSONFormatter{Pretty: true})
	register(CSVSummarizer{})
	register(HTMLFormatter{})
}

// GetFormatterByName returns the formatter registered under name, or nil
func GetFormatterByName(name string) Formatter {
	return formatters[strings.ToLower(name)]
}

// FormatterNames lists the registered format names
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"time"

	"github.com/rgehrsitz/viagerpro/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":      FormatCurrency,
	"pct":       FormatPercentage,
	"years":     FormatYears,
	"monthYear": func(t time.Time) string { return Title(FormatMonthYear(t)) },
	"band":      BandLabel,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results []*domain.ValuationResult) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Results     []*domain.ValuationResult
		Assumptions []string
	}{results, DefaultAssumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/viagerpro/internal/calculation"
	"github.com/rgehrsitz/viagerpro/internal/config"
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/rgehrsitz/viagerpro/internal/market"
	"github.com/rgehrsitz/viagerpro/internal/mortality"
)

const debounceDelay = 150 * time.Millisecond

// Model is the live valuation form: every edit schedules a recomputation once
// typing pauses for debounceDelay.
type Model struct {
	engine *calculation.CalculationEngine
	tables *mortality.Tables
	keys   keyMap

	fields []*field
	focus  int

	// seq counts edits; only the recalcMsg carrying the latest value recomputes
	seq int

	result     *domain.ValuationResult
	problems   []string
	warnings   []string
	department string

	width  int
	height int
}

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:  key.NewBinding(key.WithKeys("tab", "down", "enter"), key.WithHelp("tab", "suivant")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "précédent")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "option précédente")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "option suivante")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quitter")),
	}
}

// NewModel creates the form, pre-filled from deal when it is not nil
func NewModel(engine *calculation.CalculationEngine, deal *domain.Deal) Model {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	tables := engine.Tables
	if tables == nil {
		tables = mortality.Default()
	}

	m := Model{
		engine: engine,
		tables: tables,
		keys:   defaultKeyMap(),
		fields: newFields(tables),
		width:  100,
		height: 30,
	}
	if deal != nil {
		fillFields(m.fields, deal)
	}
	m.fields[0].focus()
	return m
}

// Init starts the cursor blink and evaluates the initial form
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, debounce(m.seq))
}

func debounce(seq int) tea.Cmd {
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return recalcMsg{seq: seq}
	})
}

func (m Model) fieldByKey(k string) *field {
	for _, f := range m.fields {
		if f.key == k {
			return f
		}
	}
	return nil
}

func (m Model) isCouple() bool {
	return m.fieldByKey(fieldCouple).value() == "yes"
}

// visible reports whether field i is shown; partner rows hide for single occupants
func (m Model) visible(i int) bool {
	return !m.fields[i].partner || m.isCouple()
}

// evaluateCmd snapshots the form and runs the engine outside the update loop
func (m Model) evaluateCmd() tea.Cmd {
	deal, problems := formDeal(m.fields)
	if len(problems) > 0 {
		return func() tea.Msg { return ResultMsg{Problems: problems} }
	}

	department := ""
	if deal.AvgPriceM2.IsZero() && deal.PostalCode != "" {
		if p, ok := market.FindDepartment(deal.PostalCode); ok {
			deal.AvgPriceM2 = p.AveragePriceM2()
			department = p.Name
		}
	}

	config.NormalizePartner(deal)
	if err := config.ValidateDeal(deal); err != nil {
		var ve *config.ValidationError
		if errors.As(err, &ve) {
			for _, p := range ve.Problems {
				problems = append(problems, p.Error())
			}
		} else {
			problems = append(problems, err.Error())
		}
		return func() tea.Msg { return ResultMsg{Problems: problems} }
	}

	engine := m.engine
	return func() tea.Msg {
		return ResultMsg{
			Result:     engine.Calculate(deal),
			Warnings:   config.DealWarnings(deal),
			Department: department,
		}
	}
}

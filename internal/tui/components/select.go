package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/viagerpro/internal/tui/tuistyles"
)

// Option is one choice of a Select
type Option struct {
	Value string
	Label string
}

// Select is a single-line field cycling through a fixed set of options
type Select struct {
	Options  []Option
	selected int
	focused  bool
}

// NewSelect creates a select positioned on its first option
func NewSelect(options ...Option) *Select {
	return &Select{Options: options}
}

// Value returns the selected option value
func (s *Select) Value() string {
	if len(s.Options) == 0 {
		return ""
	}
	return s.Options[s.selected].Value
}

// SetValue selects the option with value v and reports whether it exists
func (s *Select) SetValue(v string) bool {
	for i, o := range s.Options {
		if o.Value == v {
			s.selected = i
			return true
		}
	}
	return false
}

// Next moves to the following option, wrapping around
func (s *Select) Next() {
	if len(s.Options) > 0 {
		s.selected = (s.selected + 1) % len(s.Options)
	}
}

// Prev moves to the preceding option, wrapping around
func (s *Select) Prev() {
	if len(s.Options) > 0 {
		s.selected = (s.selected - 1 + len(s.Options)) % len(s.Options)
	}
}

// SetFocused toggles the focus marker
func (s *Select) SetFocused(focused bool) {
	s.focused = focused
}

// View renders the selected option between arrows when focused
func (s *Select) View() string {
	if len(s.Options) == 0 {
		return ""
	}
	label := s.Options[s.selected].Label
	if !s.focused {
		return lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(label)
	}
	arrows := lipgloss.NewStyle().Foreground(tuistyles.ColorAccent)
	return arrows.Render("‹ ") + lipgloss.NewStyle().Bold(true).Render(label) + arrows.Render(" ›")
}

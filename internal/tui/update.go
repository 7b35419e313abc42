package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case recalcMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		return m, m.evaluateCmd()

	case ResultMsg:
		m.problems = msg.Problems
		m.warnings = msg.Warnings
		m.department = msg.Department
		if len(msg.Problems) > 0 {
			m.result = nil
		} else {
			m.result = msg.Result
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil
	}

	f := m.fields[m.focus]
	if f.sel != nil {
		switch {
		case key.Matches(msg, m.keys.Left):
			f.sel.Prev()
		case key.Matches(msg, m.keys.Right):
			f.sel.Next()
		default:
			return m, nil
		}
		return m.edited(nil)
	}

	before := f.input.Value()
	input, cmd := f.input.Update(msg)
	*f.input = input
	if f.input.Value() == before {
		return m, cmd
	}
	return m.edited(cmd)
}

// edited bumps the edit sequence and schedules a debounced recomputation
func (m Model) edited(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.seq++
	return m, tea.Batch(cmd, debounce(m.seq))
}

func (m *Model) moveFocus(delta int) {
	m.fields[m.focus].blur()
	n := len(m.fields)
	next := m.focus
	for i := 0; i < n; i++ {
		next = (next + delta + n) % n
		if m.visible(next) {
			break
		}
	}
	m.focus = next
	m.fields[m.focus].focus()
}

// Package tui runs the interactive selector: one line on the terminal,
// redrawn between input events until the user confirms or quits.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pd/internal/keymap"
	"pd/internal/log"
	"pd/internal/selection"
	"pd/internal/tui/styles"
)

// Outcome is how the interactive session ended.
type Outcome int

const (
	// OutcomeNone means the session is still running.
	OutcomeNone Outcome = iota
	// OutcomeConfirm means a path was selected.
	OutcomeConfirm
	// OutcomeQuit means the user aborted without a selection.
	OutcomeQuit
	// OutcomeInterrupt means the session ended on an interrupt.
	OutcomeInterrupt
)

type Model struct {
	sel      *selection.Model
	dispatch *keymap.Dispatcher

	outcome  Outcome
	path     string
	quitting bool
}

// New builds the session model over the decomposed segments.
func New(segments []string, km keymap.Keymap) *Model {
	return &Model{
		sel:      selection.New(segments),
		dispatch: keymap.NewDispatcher(km),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.dispatch.HandleKey(msg, m.sel))
	case tea.MouseMsg:
		return m.apply(m.dispatch.HandleMouse(msg, m.sel))
	case tea.InterruptMsg:
		// SIGINT arrives as a message; treat it like ctrl+c.
		return m.apply(keymap.Action{Kind: keymap.ActionInterrupt})
	}
	return m, nil
}

// apply maps a dispatch result onto the running program. Suspension
// must leave the selection untouched so the resumed render matches.
func (m *Model) apply(act keymap.Action) (tea.Model, tea.Cmd) {
	switch act.Kind {
	case keymap.ActionConfirm:
		log.Debugf("confirmed %q", act.Path)
		m.outcome = OutcomeConfirm
		m.path = act.Path
		m.quitting = true
		return m, tea.Quit
	case keymap.ActionQuit:
		m.outcome = OutcomeQuit
		m.quitting = true
		return m, tea.Quit
	case keymap.ActionInterrupt:
		m.outcome = OutcomeInterrupt
		m.quitting = true
		return m, tea.Quit
	case keymap.ActionSuspend:
		return m, tea.Suspend
	}
	return m, nil
}

// View implements tea.Model. Segments render side by side with the
// selected one inverted. Once the session is over the view collapses to
// nothing, which makes the driver clear the line on its way out.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	for _, part := range m.sel.Parts() {
		if part.Selected {
			b.WriteString(styles.Selected.Render(part.Text))
		} else {
			b.WriteString(styles.Unselected.Render(part.Text))
		}
	}
	return b.String()
}

// Outcome reports how the session ended.
func (m *Model) Outcome() Outcome { return m.outcome }

// Path returns the confirmed selection; meaningful for OutcomeConfirm.
func (m *Model) Path() string { return m.path }

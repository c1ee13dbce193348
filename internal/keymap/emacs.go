package keymap

import (
	tea "github.com/charmbracelet/bubbletea"

	"pd/internal/selection"
)

// handleEmacsKeys mutates the selection for Emacs-scheme keys. The
// scheme has no digit counts and only a forward character jump.
func (d *Dispatcher) handleEmacsKeys(msg tea.KeyMsg, sel *selection.Model) {
	switch msg.String() {
	case "ctrl+]":
		d.pending.armJump(selection.Forward, sel.TakeCount())
	case "ctrl+b", "alt+b":
		sel.MoveBy(-1)
	case "ctrl+f", "alt+f":
		sel.MoveBy(1)
	case "ctrl+a":
		sel.MoveToStart()
	case "ctrl+e":
		sel.MoveToEnd()
	}
}

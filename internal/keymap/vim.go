package keymap

import (
	tea "github.com/charmbracelet/bubbletea"

	"pd/internal/selection"
)

// handleVimKeys mutates the selection for Vim-scheme keys. Unknown keys
// fall through to the shared layer.
func (d *Dispatcher) handleVimKeys(msg tea.KeyMsg, sel *selection.Model) {
	switch msg.String() {
	case "f":
		d.pending.armJump(selection.Forward, sel.TakeCount())
	case "F":
		d.pending.armJump(selection.Backward, sel.TakeCount())
	case ";":
		sel.RepeatJump(false)
	case ",":
		sel.RepeatJump(true)
	case "h", "k", "b":
		sel.MoveBy(-1)
	case "l", "j", "w":
		sel.MoveBy(1)
	case "^", "H":
		sel.MoveToStart()
	case "$", "L":
		sel.MoveToEnd()
	case "M":
		sel.MoveToMiddle()
	case "0":
		// A leading 0 is a motion; inside a count it is a digit.
		if sel.HasCount() {
			sel.PushDigit('0')
		} else {
			sel.MoveToStart()
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		sel.PushDigit(rune(msg.String()[0]))
	}
}

package keymap

import (
	tea "github.com/charmbracelet/bubbletea"

	"pd/internal/selection"
)

// HandleMouse dispatches one mouse event. Pointer motion tracks the
// column under the cursor, the primary button confirms, the secondary
// button quits and the wheel steps the selection. Any mouse event
// cancels an armed follow-up and ends there.
func (d *Dispatcher) HandleMouse(msg tea.MouseMsg, sel *selection.Model) Action {
	if _, ok := d.pending.take(); ok {
		return Action{Kind: ActionContinue}
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		sel.SelectAtColumn(msg.X)
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return Action{Kind: ActionConfirm, Path: sel.SelectedPath()}
		case tea.MouseButtonRight:
			return Action{Kind: ActionQuit}
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			sel.MoveBy(-1)
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			sel.MoveBy(1)
		}
	}
	return Action{Kind: ActionContinue}
}

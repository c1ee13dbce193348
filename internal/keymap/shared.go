package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pd/internal/selection"
)

// SharedKeyMap is the scheme-independent layer, active under both Vim
// and Emacs.
type SharedKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Confirm   key.Binding
	Quit      key.Binding
	Interrupt key.Binding
	Suspend   key.Binding
}

// DefaultSharedKeyMap returns the shared bindings.
func DefaultSharedKeyMap() SharedKeyMap {
	return SharedKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "move right"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first segment"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last segment"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "interrupt"),
		),
		Suspend: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "suspend"),
		),
	}
}

// handleSharedKeys runs after the scheme handler for every key press.
func (d *Dispatcher) handleSharedKeys(msg tea.KeyMsg, sel *selection.Model) Action {
	switch {
	case key.Matches(msg, d.shared.Left):
		sel.MoveBy(-1)
	case key.Matches(msg, d.shared.Right):
		sel.MoveBy(1)
	case key.Matches(msg, d.shared.Home):
		sel.MoveToStart()
	case key.Matches(msg, d.shared.End):
		sel.MoveToEnd()
	case key.Matches(msg, d.shared.Confirm):
		return Action{Kind: ActionConfirm, Path: sel.SelectedPath()}
	case key.Matches(msg, d.shared.Quit):
		return Action{Kind: ActionQuit}
	case key.Matches(msg, d.shared.Interrupt):
		return Action{Kind: ActionInterrupt}
	case key.Matches(msg, d.shared.Suspend):
		return Action{Kind: ActionSuspend}
	}
	return Action{Kind: ActionContinue}
}

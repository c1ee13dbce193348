// Package keymap translates raw terminal input into selection operations.
// A session runs one fixed scheme (Vim or Emacs) plus a shared layer that
// is always active; two-key commands park a one-shot pending action that
// the very next event consumes.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"

	"pd/internal/selection"
)

// Keymap selects the keybinding scheme for the session.
type Keymap int

const (
	Vim Keymap = iota
	Emacs
)

func (k Keymap) String() string {
	if k == Emacs {
		return "emacs"
	}
	return "vim"
}

// Parse maps a configuration value to a Keymap. Only the exact names
// "vim" and "emacs" are recognized; anything else reports false and the
// caller decides how loudly to fall back.
func Parse(s string) (Keymap, bool) {
	switch s {
	case "vim":
		return Vim, true
	case "emacs":
		return Emacs, true
	}
	return Vim, false
}

// Dispatcher routes key and mouse events for one session.
type Dispatcher struct {
	keymap  Keymap
	shared  SharedKeyMap
	pending pending
}

// NewDispatcher builds a dispatcher for the chosen scheme.
func NewDispatcher(k Keymap) *Dispatcher {
	return &Dispatcher{
		keymap: k,
		shared: DefaultSharedKeyMap(),
	}
}

// Keymap reports the active scheme.
func (d *Dispatcher) Keymap() Keymap { return d.keymap }

// HandleKey dispatches one key press. An armed follow-up consumes the
// event outright. Otherwise the scheme handler runs first and the shared
// layer always runs after it; their key sets are disjoint, so at most
// one of them acts.
func (d *Dispatcher) HandleKey(msg tea.KeyMsg, sel *selection.Model) Action {
	if armed, ok := d.pending.take(); ok {
		armed.consume(msg, sel)
		return Action{Kind: ActionContinue}
	}

	switch d.keymap {
	case Emacs:
		d.handleEmacsKeys(msg, sel)
	default:
		d.handleVimKeys(msg, sel)
	}
	return d.handleSharedKeys(msg, sel)
}

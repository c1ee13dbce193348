package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"pd/internal/selection"
)

func testModel() *selection.Model {
	return selection.New([]string{"/", "home/", "user/", "project"})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func altKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true}
}

// press feeds each rune of keys as its own key press.
func press(d *Dispatcher, sel *selection.Model, keys string) Action {
	var act Action
	for _, r := range keys {
		act = d.HandleKey(keyRunes(string(r)), sel)
	}
	return act
}

func TestParse(t *testing.T) {
	tests := []struct {
		value string
		want  Keymap
		ok    bool
	}{
		{"vim", Vim, true},
		{"emacs", Emacs, true},
		{"", Vim, false},
		{"nano", Vim, false},
		{"VIM", Vim, false}, // exact match only
	}
	for _, tt := range tests {
		got, ok := Parse(tt.value)
		assert.Equal(t, tt.want, got, "value %q", tt.value)
		assert.Equal(t, tt.ok, ok, "value %q", tt.value)
	}
}

func TestKeymapString(t *testing.T) {
	assert.Equal(t, "vim", Vim.String())
	assert.Equal(t, "emacs", Emacs.String())
}

func TestVimMotions(t *testing.T) {
	tests := []struct {
		name string
		keys string
		want int
	}{
		{"h moves left", "h", 2},
		{"k moves left", "k", 2},
		{"b moves left", "b", 2},
		{"l clamps right at end", "l", 3},
		{"hl round trip", "hl", 3},
		{"j moves right", "hhj", 2},
		{"w moves right", "hhw", 2},
		{"caret to start", "^", 0},
		{"H to start", "H", 0},
		{"dollar to end", "^$", 3},
		{"L to end", "^L", 3},
		{"M to middle", "M", 2},
		{"count scales motion", "^3l", 3},
		{"multi digit count clamps", "12h", 0},
		{"leading zero is start", "0", 0},
		{"zero inside count", "^10l", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcher(Vim)
			sel := testModel()
			act := press(d, sel, tt.keys)
			assert.Equal(t, ActionContinue, act.Kind)
			assert.Equal(t, tt.want, sel.Index())
		})
	}
}

func TestVimCharacterJump(t *testing.T) {
	t.Run("f jumps forward to follow-up char", func(t *testing.T) {
		d := NewDispatcher(Vim)
		sel := testModel()
		press(d, sel, "^fr")
		assert.Equal(t, 2, sel.Index(), `first r match after the root is "user/"`)
	})

	t.Run("count captured at arm time", func(t *testing.T) {
		d := NewDispatcher(Vim)
		sel := testModel()
		press(d, sel, "^2f")
		assert.False(t, sel.HasCount(), "the count belongs to the armed jump now")
		press(d, sel, "r")
		assert.Equal(t, 3, sel.Index())
	})

	t.Run("F jumps backward", func(t *testing.T) {
		d := NewDispatcher(Vim)
		sel := testModel()
		press(d, sel, "Fh")
		assert.Equal(t, 1, sel.Index())
	})

	t.Run("semicolon repeats comma reverses", func(t *testing.T) {
		d := NewDispatcher(Vim)
		sel := testModel()
		press(d, sel, "^fr")
		assert.Equal(t, 2, sel.Index())
		press(d, sel, ";")
		assert.Equal(t, 3, sel.Index())
		press(d, sel, ";")
		assert.Equal(t, 3, sel.Index(), "no further match, selection stays")
		press(d, sel, ",")
		assert.Equal(t, 2, sel.Index())
	})

	t.Run("digit works as jump target", func(t *testing.T) {
		d := NewDispatcher(Vim)
		sel := selection.New([]string{"/", "v2/", "src"})
		sel.MoveToStart()
		press(d, sel, "f2")
		assert.Equal(t, 1, sel.Index(), "the follow-up digit is a target, not a count")
	})
}

func TestPendingFollowup(t *testing.T) {
	t.Run("escape cancels without quitting", func(t *testing.T) {
		d := NewDispatcher(Vim)
		sel := testModel()
		press(d, sel, "^f")

		act := d.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, sel)
		assert.Equal(t, ActionContinue, act.Kind, "a cancelling escape must not quit")
		assert.Equal(t, 0, sel.Index())

		// The machine is idle again: this escape quits.
		act = d.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, sel)
		assert.Equal(t, ActionQuit, act.Kind)
	})

	t.Run("consumed key does not re-dispatch", func(t *testing.T) {
		d := NewDispatcher(Vim)
		sel := testModel()
		press(d, sel, "^f")

		// q is the follow-up target here, not the shared quit key
		act := press(d, sel, "q")
		assert.Equal(t, ActionContinue, act.Kind)
	})

	t.Run("one shot", func(t *testing.T) {
		d := NewDispatcher(Vim)
		sel := testModel()
		press(d, sel, "^frr")
		// First r fired the jump; the second is an ordinary key again.
		assert.Equal(t, 2, sel.Index())
	})

	t.Run("mouse event cancels and is swallowed", func(t *testing.T) {
		d := NewDispatcher(Vim)
		sel := testModel()
		press(d, sel, "^f")

		motion := tea.MouseMsg{X: 11, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
		act := d.HandleMouse(motion, sel)
		assert.Equal(t, ActionContinue, act.Kind)
		assert.Equal(t, 0, sel.Index(), "the cancelling event must not also select")

		// Machine is idle: motion tracks the pointer again
		d.HandleMouse(motion, sel)
		assert.Equal(t, 3, sel.Index())
	})

	t.Run("space is a valid target", func(t *testing.T) {
		d := NewDispatcher(Vim)
		sel := selection.New([]string{"/", "my docs/", "notes"})
		sel.MoveToStart()
		press(d, sel, "f")
		d.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, sel)
		assert.Equal(t, 1, sel.Index())
	})
}

func TestEmacsKeys(t *testing.T) {
	newEmacs := func() (*Dispatcher, *selection.Model) {
		return NewDispatcher(Emacs), testModel()
	}

	t.Run("ctrl+b and ctrl+f step", func(t *testing.T) {
		d, sel := newEmacs()
		d.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlB}, sel)
		assert.Equal(t, 2, sel.Index())
		d.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlF}, sel)
		assert.Equal(t, 3, sel.Index())
	})

	t.Run("alt+b and alt+f step", func(t *testing.T) {
		d, sel := newEmacs()
		d.HandleKey(altKey("b"), sel)
		assert.Equal(t, 2, sel.Index())
		d.HandleKey(altKey("f"), sel)
		assert.Equal(t, 3, sel.Index())
	})

	t.Run("ctrl+a and ctrl+e jump to edges", func(t *testing.T) {
		d, sel := newEmacs()
		d.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlA}, sel)
		assert.Equal(t, 0, sel.Index())
		d.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlE}, sel)
		assert.Equal(t, 3, sel.Index())
	})

	t.Run("ctrl+] arms a forward jump", func(t *testing.T) {
		d, sel := newEmacs()
		d.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlA}, sel)
		d.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlCloseBracket}, sel)
		act := d.HandleKey(keyRunes("r"), sel)
		assert.Equal(t, ActionContinue, act.Kind)
		assert.Equal(t, 2, sel.Index())
	})

	t.Run("digits do not accumulate", func(t *testing.T) {
		d, sel := newEmacs()
		d.HandleKey(keyRunes("3"), sel)
		assert.False(t, sel.HasCount())
		d.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlB}, sel)
		assert.Equal(t, 2, sel.Index(), "no count to scale the step")
	})

	t.Run("vim letters are inert", func(t *testing.T) {
		d, sel := newEmacs()
		d.HandleKey(keyRunes("h"), sel)
		d.HandleKey(keyRunes("l"), sel)
		assert.Equal(t, 3, sel.Index())
	})
}

func TestSharedKeys(t *testing.T) {
	for _, km := range []Keymap{Vim, Emacs} {
		t.Run(km.String(), func(t *testing.T) {
			d := NewDispatcher(km)
			sel := testModel()

			act := d.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, sel)
			assert.Equal(t, ActionContinue, act.Kind)
			assert.Equal(t, 2, sel.Index())

			d.HandleKey(tea.KeyMsg{Type: tea.KeyRight}, sel)
			assert.Equal(t, 3, sel.Index())

			d.HandleKey(tea.KeyMsg{Type: tea.KeyHome}, sel)
			assert.Equal(t, 0, sel.Index())

			d.HandleKey(tea.KeyMsg{Type: tea.KeyEnd}, sel)
			assert.Equal(t, 3, sel.Index())

			d.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, sel)
			act = d.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, sel)
			assert.Equal(t, ActionConfirm, act.Kind)
			assert.Equal(t, "/home/user/", act.Path)

			act = d.HandleKey(keyRunes("q"), sel)
			assert.Equal(t, ActionQuit, act.Kind)

			act = d.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, sel)
			assert.Equal(t, ActionQuit, act.Kind)

			act = d.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, sel)
			assert.Equal(t, ActionInterrupt, act.Kind)

			act = d.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlZ}, sel)
			assert.Equal(t, ActionSuspend, act.Kind)
		})
	}
}

func TestSharedArrowsTakeCount(t *testing.T) {
	// A vim count prefixes shared motions too
	d := NewDispatcher(Vim)
	sel := testModel()
	press(d, sel, "3")
	d.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, sel)
	assert.Equal(t, 0, sel.Index())
}

func TestMouse(t *testing.T) {
	t.Run("motion selects the column", func(t *testing.T) {
		d := NewDispatcher(Vim)
		sel := testModel()
		act := d.HandleMouse(tea.MouseMsg{X: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, sel)
		assert.Equal(t, ActionContinue, act.Kind)
		assert.Equal(t, 1, sel.Index())
	})

	t.Run("left press confirms the hovered selection", func(t *testing.T) {
		d := NewDispatcher(Vim)
		sel := testModel()
		d.HandleMouse(tea.MouseMsg{X: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, sel)
		act := d.HandleMouse(tea.MouseMsg{X: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, sel)
		assert.Equal(t, ActionConfirm, act.Kind)
		assert.Equal(t, "/home/", act.Path)
	})

	t.Run("right press quits", func(t *testing.T) {
		d := NewDispatcher(Vim)
		sel := testModel()
		act := d.HandleMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, sel)
		assert.Equal(t, ActionQuit, act.Kind)
	})

	t.Run("wheel steps the selection", func(t *testing.T) {
		d := NewDispatcher(Vim)
		sel := testModel()
		d.HandleMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, sel)
		assert.Equal(t, 2, sel.Index())
		d.HandleMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, sel)
		assert.Equal(t, 3, sel.Index())
	})

	t.Run("wheel honors a pending count", func(t *testing.T) {
		d := NewDispatcher(Vim)
		sel := testModel()
		press(d, sel, "3")
		d.HandleMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, sel)
		assert.Equal(t, 0, sel.Index())
	})

	t.Run("releases and middle button are ignored", func(t *testing.T) {
		d := NewDispatcher(Vim)
		sel := testModel()
		act := d.HandleMouse(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, sel)
		assert.Equal(t, ActionContinue, act.Kind)
		act = d.HandleMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonMiddle}, sel)
		assert.Equal(t, ActionContinue, act.Kind)
		assert.Equal(t, 3, sel.Index())
	})
}

package keymap

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"pd/internal/log"
	"pd/internal/selection"
)

type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingJump
)

// pending is the one-shot wait-for-next-key state. At most one command
// is ever armed; arming replaces the state wholesale.
type pending struct {
	kind  pendingKind
	dir   selection.Direction
	count string
}

// armJump parks a character jump until the next event. The count is
// captured now: for "3f" + "x" the 3 belongs to the jump even though it
// was typed before the f.
func (p *pending) armJump(dir selection.Direction, count string) {
	*p = pending{kind: pendingJump, dir: dir, count: count}
	log.Debugf("armed %s jump, count %q", dir, count)
}

// take returns the armed state and resets to idle.
func (p *pending) take() (pending, bool) {
	armed := *p
	*p = pending{}
	return armed, armed.kind != pendingNone
}

// consume feeds the follow-up event to the armed command. Only a key
// carrying exactly one printable rune fires the jump; anything else
// cancels it. Either way the event ends here and never reaches the
// scheme or shared layers.
func (p pending) consume(msg tea.KeyMsg, sel *selection.Model) {
	switch p.kind {
	case pendingJump:
		target, ok := printableRune(msg)
		if !ok {
			log.Debugf("pending jump cancelled by %q", msg.String())
			return
		}
		sel.SetCount(p.count)
		sel.JumpTo(p.dir, target)
	}
}

// printableRune extracts the single printable rune of a key press.
// Space counts: paths contain spaces.
func printableRune(msg tea.KeyMsg) (rune, bool) {
	if msg.Alt {
		return 0, false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && unicode.IsPrint(msg.Runes[0]) {
			return msg.Runes[0], true
		}
	case tea.KeySpace:
		return ' ', true
	}
	return 0, false
}

// Package selection owns the state of one interactive picking session:
// the segment list, the selected index, the pending count digits and the
// remembered character jump.
package selection

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Direction of a character jump relative to the current selection.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

func (d Direction) opposite() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// Jump remembers one character jump so it can be repeated.
type Jump struct {
	Char rune
	Dir  Direction
}

// Pending counts are capped at four digits; further digits are dropped.
const maxCountDigits = 4

// Model holds the selection state. Segments are fixed at construction and
// the index always stays within them.
type Model struct {
	segments []string
	index    int
	count    string
	lastJump *Jump
}

// New builds a model over segments with the deepest component selected.
func New(segments []string) *Model {
	if len(segments) == 0 {
		segments = []string{"."}
	}
	return &Model{
		segments: segments,
		index:    len(segments) - 1,
	}
}

// Index returns the selected segment's position.
func (m *Model) Index() int { return m.index }

// Len returns the number of segments.
func (m *Model) Len() int { return len(m.segments) }

// Segments returns the segment list. Callers must not mutate it.
func (m *Model) Segments() []string { return m.segments }

// LastJump returns the remembered jump, if any.
func (m *Model) LastJump() (Jump, bool) {
	if m.lastJump == nil {
		return Jump{}, false
	}
	return *m.lastJump, true
}

// MoveBy moves the selection by step scaled by the pending count,
// clamped to the segment range. The count is consumed.
func (m *Model) MoveBy(step int) {
	m.index = clamp(m.index+step*m.takeCount(), 0, len(m.segments)-1)
}

// MoveToStart selects the first segment.
func (m *Model) MoveToStart() {
	m.count = ""
	m.index = 0
}

// MoveToEnd selects the last segment.
func (m *Model) MoveToEnd() {
	m.count = ""
	m.index = len(m.segments) - 1
}

// MoveToMiddle selects the middle segment.
func (m *Model) MoveToMiddle() {
	m.count = ""
	m.index = len(m.segments) / 2
}

// PushDigit appends one digit to the pending count.
func (m *Model) PushDigit(d rune) {
	if d < '0' || d > '9' || len(m.count) >= maxCountDigits {
		return
	}
	m.count += string(d)
}

// HasCount reports whether count digits are pending.
func (m *Model) HasCount() bool { return m.count != "" }

// TakeCount returns the pending digits and clears them. Two-key commands
// capture the count when they arm, not when the follow-up key arrives.
func (m *Model) TakeCount() string {
	c := m.count
	m.count = ""
	return c
}

// SetCount restores previously captured digits.
func (m *Model) SetCount(c string) { m.count = c }

// takeCount parses and clears the pending count; empty or unparsable is 1.
func (m *Model) takeCount() int {
	n, err := strconv.Atoi(m.count)
	m.count = ""
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// FindAndSelect selects the n-th segment strictly after (Forward) or
// before (Backward) the current one whose text contains target, where n
// is the consumed pending count. With fewer than n matches the selection
// stays put. Pure search: jump memory is not touched.
func (m *Model) FindAndSelect(dir Direction, target rune) {
	n := m.takeCount()
	found := 0
	switch dir {
	case Forward:
		for i := m.index + 1; i < len(m.segments); i++ {
			if strings.ContainsRune(m.segments[i], target) {
				found++
				if found == n {
					m.index = i
					return
				}
			}
		}
	case Backward:
		for i := m.index - 1; i >= 0; i-- {
			if strings.ContainsRune(m.segments[i], target) {
				found++
				if found == n {
					m.index = i
					return
				}
			}
		}
	}
}

// JumpTo runs a character jump and remembers it, hit or miss.
func (m *Model) JumpTo(dir Direction, target rune) {
	m.lastJump = &Jump{Char: target, Dir: dir}
	m.FindAndSelect(dir, target)
}

// RepeatJump reruns the remembered jump, in the remembered direction or
// its opposite. The current pending count applies, so "3;" skips three
// matches ahead. No-op without a remembered jump; never modifies it.
func (m *Model) RepeatJump(reverse bool) {
	if m.lastJump == nil {
		return
	}
	dir := m.lastJump.Dir
	if reverse {
		dir = dir.opposite()
	}
	m.FindAndSelect(dir, m.lastJump.Char)
}

// SelectAtColumn selects the segment whose display cells cover the
// 0-based terminal column: the last segment whose start offset is at or
// left of it. Columns past the row select the last segment, columns
// before it the first. The pending count is left alone; it has no
// meaning for pointer selection.
func (m *Model) SelectAtColumn(col int) {
	selected := 0
	offset := 0
	for i, seg := range m.segments {
		if offset <= col {
			selected = i
		}
		offset += runewidth.StringWidth(seg)
	}
	m.index = selected
}

// SelectedPath reconstructs the ancestor path for the selection: segments
// 0 through index concatenated. Interior segments keep their separators,
// so the result is a valid path.
func (m *Model) SelectedPath() string {
	return strings.Join(m.segments[:m.index+1], "")
}

// Part is one renderable chunk of the selector line.
type Part struct {
	Text     string
	Selected bool
}

// Parts projects the state for rendering; exactly one part is selected.
func (m *Model) Parts() []Part {
	parts := make([]Part, len(m.segments))
	for i, seg := range m.segments {
		parts[i] = Part{Text: seg, Selected: i == m.index}
	}
	return parts
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

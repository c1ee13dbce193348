package keymap

// ActionKind classifies what the event loop should do after dispatching
// one input event.
type ActionKind int

const (
	// ActionContinue keeps the session running.
	ActionContinue ActionKind = iota
	// ActionConfirm ends the session with a selected path.
	ActionConfirm
	// ActionQuit ends the session without a selection.
	ActionQuit
	// ActionInterrupt ends the session as if interrupted by the terminal.
	ActionInterrupt
	// ActionSuspend hands the terminal back to the shell (job control).
	ActionSuspend
)

// Action is the dispatch result for one input event. Path is set only
// for ActionConfirm.
type Action struct {
	Kind ActionKind
	Path string
}

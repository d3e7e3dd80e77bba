package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Up arrow - move cursor up / raise intercept
	ActionDown             // Down arrow - move cursor down / lower intercept
	ActionLeft             // Left arrow - move cursor left / lower slope
	ActionRight            // Right arrow - move cursor right / raise slope
	ActionPlace            // Space - place a point at the cursor
	ActionSubmit           // Enter - check the answer
	ActionNextField        // Tab - focus the next text field
	ActionErase            // Backspace - delete last character or last placed point
	ActionBack             // Escape in menus - go back
	ActionRestart          // R key after the session ended
	ActionQuit             // Ctrl+C - exit game/session
	ActionPause            // Escape - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPlace:
		return "Place"
	case ActionSubmit:
		return "Submit"
	case ActionNextField:
		return "NextField"
	case ActionErase:
		return "Erase"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Pointer is a mouse click in screen cell coordinates.
type Pointer struct {
	X, Y int
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions, typed characters and the last click of the frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Typed holds printable runes in the order they were typed.
	// The game decides whether a rune is field input or a command key.
	Typed []rune

	// Click is the last pointer press of the frame, or nil.
	Click *Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Type appends printable runes to the frame.
func (f *InputFrame) Type(rs ...rune) {
	f.Typed = append(f.Typed, rs...)
}

// ClickAt records a pointer press at the given cell.
func (f *InputFrame) ClickAt(x, y int) {
	f.Click = &Pointer{X: x, Y: y}
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Typed) == 0 && f.Click == nil
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Typed = f.Typed[:0]
	f.Click = nil
}

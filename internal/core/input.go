package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move the cursor up
	ActionDown           // S, J, Down arrow - move the cursor down
	ActionLeft           // A, H, Left arrow - move the cursor left
	ActionRight          // D, L, Right arrow - move the cursor right
	ActionFlip           // Space, Enter - flip the card under the cursor
	ActionNext           // N - continue to the next level
	ActionBack           // B, Escape - go back to the level menu
	ActionRestart        // R - start the campaign again once it is complete
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
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
	case ActionFlip:
		return "Flip"
	case ActionNext:
		return "Next"
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

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Click is the screen cell of a left mouse press, valid when Clicked is set.
	Click   Point
	Clicked bool
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

// SetClick records a mouse press at (x, y). A later press in the same
// frame replaces an earlier one.
func (f *InputFrame) SetClick(x, y int) {
	f.Click = Point{X: x, Y: y}
	f.Clicked = true
}

// Clear resets all actions and the click for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = Point{}
	f.Clicked = false
}

package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, K, Up arrow - move cursor up
	ActionDown               // S, J, Down arrow - move cursor down
	ActionLeft               // A, H, Left arrow - move cursor left
	ActionRight              // D, L, Right arrow - move cursor right
	ActionPlace              // Enter, Space - place a mark at the cursor
	ActionNewGame            // N, R - start a new match
	ActionResetScores        // C - clear the score tally
	ActionQuit               // Q, Ctrl+C - exit game/session
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
	case ActionNewGame:
		return "NewGame"
	case ActionResetScores:
		return "ResetScores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Point is a screen coordinate.
type Point struct {
	X, Y int
}

// InputFrame represents the input delivered to a game for one step.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Cell is a directly selected cell index (e.g. number keys).
	// Only meaningful when HasCell is set.
	Cell    int
	HasCell bool

	// Click is the screen position of a pointer press, if any.
	Click *Point
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

// SelectCell records a direct cell selection.
func (f *InputFrame) SelectCell(index int) {
	f.Cell = index
	f.HasCell = true
}

// SelectedCell returns the directly selected cell, if any.
func (f InputFrame) SelectedCell() (int, bool) {
	return f.Cell, f.HasCell
}

// SetClick records a pointer press at (x, y).
func (f *InputFrame) SetClick(x, y int) {
	f.Click = &Point{X: x, Y: y}
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && !f.HasCell && f.Click == nil
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Cell = 0
	f.HasCell = false
	f.Click = nil
}

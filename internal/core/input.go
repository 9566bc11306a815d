package core

// Action is a semantic player intent, abstracted from physical keys and
// mouse events.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - push the paddle left
	ActionRight          // D, Right arrow - push the paddle right
	ActionStop           // key released or hold timeout expired
	ActionAdvance        // Space, Enter, mouse click - the advance signal
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStop:
		return "Stop"
	case ActionAdvance:
		return "Advance"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the player did during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool

	// Pointer is the horizontal mouse position in screen cells, or nil when
	// the mouse did not move this tick.
	Pointer *int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// PointAt records the mouse column for this frame.
func (f *InputFrame) PointAt(x int) {
	f.Pointer = &x
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = nil
}

// Clone creates an independent copy of the frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Pointer != nil {
		clone.PointAt(*f.Pointer)
	}
	return clone
}

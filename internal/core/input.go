package core

// Action is a logical input event, abstracted from physical key presses.
// Several keys (or a click, or a tap) may map to the same action.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter - leave the menu and begin a run
	ActionJump           // Space, Up, W - flap; climb in the flight simulator
	ActionReset          // R - return to the menu after a game over
	ActionForward        // W - flight: throttle forward
	ActionBack           // S - flight: throttle back
	ActionLeft           // A, Left - flight: turn left
	ActionRight          // D, Right - flight: turn right
	ActionDown           // X, Down - flight: descend
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionJump:
		return "Jump"
	case ActionReset:
		return "Reset"
	case ActionForward:
		return "Forward"
	case ActionBack:
		return "Back"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// InputQueue latches actions delivered by the host between ticks.
// Actions are applied only when the next tick drains the queue, in the
// order they arrived.
type InputQueue struct {
	pending []Action
}

// Push latches an action for the next tick. ActionNone is dropped.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.pending = append(q.pending, a)
}

// Drain returns the latched actions and empties the queue.
func (q *InputQueue) Drain() []Action {
	if len(q.pending) == 0 {
		return nil
	}
	out := make([]Action, len(q.pending))
	copy(out, q.pending)
	q.pending = q.pending[:0]
	return out
}

// Len returns the number of latched actions.
func (q *InputQueue) Len() int {
	return len(q.pending)
}

// InputFrame is the set of actions applied during one tick.
// Games that react to held controls (the flight simulator) consult it
// instead of individual events.
type InputFrame struct {
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

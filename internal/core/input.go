package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionThrust             // Up arrow, W - fire main engine
	ActionRotateLeft         // Left arrow, A - rotate counter-clockwise
	ActionRotateRight        // Right arrow, D - rotate clockwise
	ActionRestart            // R - start a fresh run after game over
	ActionQuit               // Q, Ctrl+C - exit
	ActionPause              // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrust:
		return "Thrust"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
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

// InputFrame is everything a game sees for one frame: the actions held or
// triggered during it and the wall-clock time since the previous frame.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool

	// Dt is elapsed seconds since the previous frame, unclamped.
	Dt float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the elapsed time for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Dt = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Dt = f.Dt
	return clone
}

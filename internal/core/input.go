package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the kernel to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionClimb            // Space, Up, E - upward impulse; also starts a game from the menu
	ActionConfirm          // Enter - confirm name entry / start game
	ActionBackspace        // Backspace - delete last character of the name
	ActionPause            // P - pause/unpause game
	ActionQuit             // Esc, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionClimb:
		return "Climb"
	case ActionConfirm:
		return "Confirm"
	case ActionBackspace:
		return "Backspace"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the batch of input observed during one simulation tick.
// Discrete actions and typed text are edge-triggered; held actions report
// controls that are currently down. Everything is consumed within the tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Held maps action types to whether the control is currently held.
	Held map[Action]bool

	// Text holds printable characters typed this frame, in order.
	Text []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
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

// SetHeld marks a control as held for this frame.
func (f *InputFrame) SetHeld(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the control is held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Type appends typed characters to the frame.
func (f *InputFrame) Type(r ...rune) {
	f.Text = append(f.Text, r...)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Text = f.Text[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.Text = append([]rune(nil), f.Text...)
	return clone
}

package core

// Action represents a semantic game action, abstracted from physical key presses.
// Input sources (terminal, window, SSH) translate their events into actions.
type Action int

const (
	ActionNone        Action = iota
	ActionFlap               // Space, Up, W, mouse click
	ActionPause              // Enter Paused from Running
	ActionResume             // Leave Paused
	ActionTogglePause        // Esc/P: pause or resume depending on state
	ActionStart              // Enter/R: start or restart a session
	ActionDifficulty         // Select difficulty; value carried in InputFrame.Difficulty
	ActionQuit               // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionTogglePause:
		return "TogglePause"
	case ActionStart:
		return "Start"
	case ActionDifficulty:
		return "Difficulty"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool

	// Difficulty is the preset name requested with ActionDifficulty.
	Difficulty string
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

// SelectDifficulty records a difficulty selection for this frame.
func (f *InputFrame) SelectDifficulty(name string) {
	f.Set(ActionDifficulty)
	f.Difficulty = name
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Difficulty = ""
}

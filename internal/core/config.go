package core

// RuntimeConfig contains platform configuration passed to the game.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle    Phase = iota // not running, no session yet
	PhaseRunning              // running, not paused
	PhasePaused               // running, paused
	PhaseEnded                // terminal for the session, stats flushed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndCause records why a session ended.
type EndCause string

const (
	CauseNone EndCause = ""
	CauseFall EndCause = "fall" // boundary collision
	CausePipe EndCause = "pipe" // obstacle collision
)

// EventKind identifies a discrete event emitted by the simulation.
type EventKind int

const (
	EventStart EventKind = iota
	EventFlap
	EventScore
	EventFall
	EventCollision
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventFlap:
		return "flap"
	case EventScore:
		return "score"
	case EventFall:
		return "fall"
	case EventCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Event is a discrete occurrence during a tick or input handler.
type Event struct {
	Kind  EventKind
	Score int // Score at the time of the event
}

// GameState is the read-only summary handed to platforms each tick.
type GameState struct {
	Score      int
	HighScore  int
	Phase      Phase
	Cause      EndCause
	Difficulty string
}

// Running reports whether a session is in progress (paused or not).
func (s GameState) Running() bool {
	return s.Phase == PhaseRunning || s.Phase == PhasePaused
}

// GameOver reports whether the last session ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseEnded
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

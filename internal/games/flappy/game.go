// Package flappy implements the flappy simulation: a bird pushed by discrete
// flaps against gravity through a stream of gap obstacles, with a
// score-driven difficulty multiplier.
//
// Game owns all session state. Renderers read it through accessors after
// each Tick; persistence and audio are injected through Store and Sound.
package flappy

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Game is one player's simulation and session state machine.
// It is not safe for concurrent use; drive it from a single loop.
type Game struct {
	cfg    config.FlappyConfig
	curve  config.Curve
	store  Store
	sound  Sound
	logger *log.Logger
	seed   int64

	bird    Bird
	stream  *ObstacleStream
	score   int
	phase   core.Phase
	cause   core.EndCause
	ticks   int // cosmetic, advances only while running and unpaused
	pending []core.Event

	record     Record
	volume     int
	track      string
	difficulty config.Difficulty
}

// Option configures a Game.
type Option func(*Game)

// WithStore sets the persistent record. Defaults to an in-memory store.
func WithStore(s Store) Option {
	return func(g *Game) { g.store = s }
}

// WithSound sets the audio sink. Defaults to silence.
func WithSound(s Sound) Option {
	return func(g *Game) { g.sound = s }
}

// WithLogger sets the logger for collaborator failures.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithSeed fixes the obstacle RNG seed. Zero picks a time-based seed.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// New validates cfg, loads the persisted record and preferences, and returns
// an idle game.
func New(cfg config.FlappyConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	g := &Game{
		cfg:   cfg,
		curve: cfg.Curve(),
		phase: core.PhaseIdle,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.store == nil {
		g.store = storage.NewMemoryStore()
	}
	if g.sound == nil {
		g.sound = silent{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}

	stream, err := NewObstacleStream(cfg, g.seed)
	if err != nil {
		return nil, err
	}
	g.stream = stream
	g.bird = newBird(cfg.Bird)

	g.loadRecord()
	g.loadPrefs()
	g.sound.SetVolume(g.volume)
	return g, nil
}

// Start begins a new session from any phase. Score, obstacles, bird and
// timers are reset. Restarting a running session does not count it as played.
func (g *Game) Start() {
	g.sound.StopTrack()

	g.bird = newBird(g.cfg.Bird)
	g.stream.Reset()
	g.score = 0
	g.ticks = 0
	g.cause = core.CauseNone
	g.phase = core.PhaseRunning

	g.emit(core.EventStart)
	g.startMusic()
}

// Flap sets the bird velocity to the flap impulse. No-op unless running.
func (g *Game) Flap() bool {
	if g.phase != core.PhaseRunning {
		return false
	}
	g.bird.flap(g.cfg.Bird.FlapImpulse)
	g.emit(core.EventFlap)
	return true
}

// Pause suspends a running session.
func (g *Game) Pause() bool {
	if g.phase != core.PhaseRunning {
		return false
	}
	g.phase = core.PhasePaused
	g.sound.StopTrack()
	return true
}

// Resume continues a paused session.
func (g *Game) Resume() bool {
	if g.phase != core.PhasePaused {
		return false
	}
	g.phase = core.PhaseRunning
	g.startMusic()
	return true
}

// TogglePause pauses a running session or resumes a paused one.
func (g *Game) TogglePause() bool {
	if g.phase == core.PhasePaused {
		return g.Resume()
	}
	return g.Pause()
}

// SelectDifficulty switches the preset and persists it. Only allowed between
// sessions; returns false when a session is in progress or d is unknown.
func (g *Game) SelectDifficulty(d config.Difficulty) bool {
	if g.phase == core.PhaseRunning || g.phase == core.PhasePaused {
		return false
	}
	if _, ok := g.cfg.Preset(d); !ok {
		return false
	}
	g.difficulty = d
	g.write(KeyDifficulty, string(d))
	return true
}

// Step applies the input frame, then runs one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionDifficulty) {
		if d, err := config.ParseDifficulty(in.Difficulty); err == nil {
			g.SelectDifficulty(d)
		}
	}
	if in.Has(core.ActionStart) {
		g.Start()
	}
	if in.Has(core.ActionTogglePause) {
		g.TogglePause()
	}
	if in.Has(core.ActionPause) {
		g.Pause()
	}
	if in.Has(core.ActionResume) {
		g.Resume()
	}
	if in.Has(core.ActionFlap) {
		g.Flap()
	}
	return g.Tick()
}

// Tick advances the simulation by one step. Outside the running phase it
// only reports state and any events raised by handlers since the last tick.
func (g *Game) Tick() core.StepResult {
	if g.phase == core.PhaseRunning {
		g.advance()
	}
	return g.result()
}

// advance is the tick body. Order matters: the bird moves and is checked
// against the boundary first, then the spawn timer runs, then every obstacle
// is moved before it is tested for collision and scoring.
func (g *Game) advance() {
	g.ticks++

	g.bird.fall(g.Gravity())
	if g.bird.outOfBounds(g.cfg.Playfield.Height) {
		g.end(core.CauseFall)
		return
	}

	g.stream.advanceTimer(g.SpawnInterval())

	obstacles := g.stream.obstacles
	for i := len(obstacles) - 1; i >= 0; i-- {
		o := &obstacles[i]
		o.X -= g.ObstacleSpeed()

		if Collides(g.bird, *o, g.cfg) {
			g.end(core.CausePipe)
			return
		}

		if !o.Scored && o.Right() < g.bird.X {
			o.Scored = true
			g.score++
			g.emit(core.EventScore)
		}

		if o.Right() < 0 {
			g.stream.remove(i)
		}
	}
}

// end moves the session to Ended and flushes statistics.
func (g *Game) end(cause core.EndCause) {
	g.phase = core.PhaseEnded
	g.cause = cause
	g.sound.StopTrack()

	if cause == core.CauseFall {
		g.emit(core.EventFall)
	} else {
		g.emit(core.EventCollision)
	}

	g.flushRecord()
	g.logger.Debug("session ended",
		"cause", string(cause),
		"score", g.score,
		"difficulty", string(g.difficulty),
		"ticks", g.ticks)
}

// emit queues ev for the next StepResult and forwards it to the sound sink.
func (g *Game) emit(kind core.EventKind) {
	ev := core.Event{Kind: kind, Score: g.score}
	g.pending = append(g.pending, ev)
	g.sound.Play(ev)
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State(), Events: g.pending}
	g.pending = nil
	return res
}

// State returns the summary handed to platforms.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		HighScore:  g.record.HighScore,
		Phase:      g.phase,
		Cause:      g.cause,
		Difficulty: string(g.difficulty),
	}
}

// preset returns the active preset. The difficulty is always validated
// before it is stored, so the lookup cannot miss.
func (g *Game) preset() config.Preset {
	p, _ := g.cfg.Preset(g.difficulty)
	return p
}

// Multiplier returns the difficulty multiplier for the current score.
func (g *Game) Multiplier() float64 { return g.curve.Multiplier(g.score) }

// Gravity returns the current per-tick gravity.
func (g *Game) Gravity() float64 { return g.curve.Gravity(g.preset(), g.score) }

// ObstacleSpeed returns the current per-tick obstacle speed.
func (g *Game) ObstacleSpeed() float64 { return g.curve.Speed(g.preset(), g.score) }

// SpawnInterval returns the current number of ticks between spawns.
func (g *Game) SpawnInterval() float64 { return g.curve.SpawnInterval(g.preset(), g.score) }

// Bird returns a copy of the bird.
func (g *Game) Bird() Bird { return g.bird }

// Obstacles returns a copy of the live obstacles, oldest first.
func (g *Game) Obstacles() []Obstacle {
	return slices.Clone(g.stream.Obstacles())
}

// Score returns the current session score.
func (g *Game) Score() int { return g.score }

// Phase returns the session phase.
func (g *Game) Phase() core.Phase { return g.phase }

// Cause returns why the last session ended, or CauseNone.
func (g *Game) Cause() core.EndCause { return g.cause }

// Record returns the cumulative statistics.
func (g *Game) Record() Record { return g.record }

// Difficulty returns the selected preset.
func (g *Game) Difficulty() config.Difficulty { return g.difficulty }

// Ticks returns the cosmetic tick counter of the current session.
func (g *Game) Ticks() int { return g.ticks }

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig { return g.cfg }

package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/loop"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// screen identifies the active view.
type screen int

const (
	screenHome screen = iota
	screenSettings
	screenHighScore
	screenScores
	screenPlaying
	screenGameOver
)

// Home menu entries
const (
	homePlay = iota
	homeSettings
	homeHighScore
	homeScores
	homeQuit
)

var homeItems = []string{"Play", "Settings", "High Score", "Scores", "Quit"}

// Settings rows
const (
	settingDifficulty = iota
	settingVolume
	settingTrack
	settingCount
)

const volumeStep = 5

// Model is the Bubble Tea model for one player. It owns no game state of
// its own: the flappy.Game is driven by key handlers and by the fixed-step
// loop on every frame.
type Model struct {
	game   *flappy.Game
	store  storage.Store
	logger *log.Logger
	loop   *loop.Loop
	config core.RuntimeConfig

	keys   KeyMap
	help   help.Model
	canvas *core.Screen
	scores ScoreboardModel

	screen         screen
	homeCursor     int
	settingsCursor int
	bestBefore     int // high score when the current session started
	quitting       bool
}

// NewModel creates the model. store may be nil, in which case the score
// history screen stays empty; the game keeps its own store.
func NewModel(game *flappy.Game, store storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		store:  store,
		logger: logger,
		loop:   loop.New(loop.SystemClock{}, cfg.TickRate),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		canvas: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		screen: screenHome,
	}
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.screen == screenPlaying &&
			msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.game.Flap()
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleResize processes window resize events. The playfield is scaled, so
// a running session is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.canvas.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	if m.screen == screenScores {
		m.scores = m.scores.resize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick runs the simulation ticks due since the last frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.screen != screenPlaying || m.game.Phase() != core.PhaseRunning {
		m.loop.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	for n := m.loop.Advance(); n > 0; n-- {
		res := m.game.Tick()
		if res.State.GameOver() {
			m.finishSession(res.State)
			break
		}
	}
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) startSession() {
	m.bestBefore = m.game.Record().HighScore
	m.game.Start()
	m.loop.Reset()
	m.screen = screenPlaying
}

func (m *Model) finishSession(state core.GameState) {
	m.screen = screenGameOver
	m.logger.Info("session ended",
		"score", state.Score,
		"cause", string(state.Cause),
		"difficulty", state.Difficulty,
		"best", state.HighScore)
}

// handleKey dispatches a key press to the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screen == screenScores {
		return m.updateScores(msg)
	}

	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenHome:
		m.updateHome(msg)
	case screenSettings:
		m.updateSettings(msg)
	case screenHighScore:
		if key.Matches(msg, m.keys.Back, m.keys.Select) {
			m.screen = screenHome
		}
	case screenPlaying:
		m.updatePlaying(msg)
	case screenGameOver:
		switch {
		case key.Matches(msg, m.keys.Restart):
			m.startSession()
		case key.Matches(msg, m.keys.Back):
			m.screen = screenHome
		}
	}
	if m.quitting {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateHome(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.homeCursor > 0 {
			m.homeCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.homeCursor < len(homeItems)-1 {
			m.homeCursor++
		}
	case key.Matches(msg, m.keys.Select):
		switch m.homeCursor {
		case homePlay:
			m.startSession()
		case homeSettings:
			m.screen = screenSettings
		case homeHighScore:
			m.screen = screenHighScore
		case homeScores:
			m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
			m.screen = screenScores
		case homeQuit:
			m.quitting = true
		}
	}
}

func (m *Model) updateSettings(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = screenHome
	case key.Matches(msg, m.keys.Up):
		m.settingsCursor = (m.settingsCursor + settingCount - 1) % settingCount
	case key.Matches(msg, m.keys.Down):
		m.settingsCursor = (m.settingsCursor + 1) % settingCount
	case key.Matches(msg, m.keys.Left):
		m.adjustSetting(-1)
	case key.Matches(msg, m.keys.Right):
		m.adjustSetting(+1)
	}
}

func (m *Model) adjustSetting(dir int) {
	prefs := m.game.Prefs()
	switch m.settingsCursor {
	case settingDifficulty:
		all := config.Difficulties()
		i := 0
		for j, d := range all {
			if d == prefs.Difficulty {
				i = j
			}
		}
		m.game.SelectDifficulty(all[(i+dir+len(all))%len(all)])
	case settingVolume:
		m.game.SetVolume(prefs.Volume + dir*volumeStep)
	case settingTrack:
		if dir > 0 {
			m.game.NextTrack()
		} else {
			m.game.PrevTrack()
		}
	}
}

func (m *Model) updatePlaying(msg tea.KeyMsg) {
	paused := m.game.Phase() == core.PhasePaused
	switch {
	case key.Matches(msg, m.keys.Pause):
		m.game.TogglePause()
		m.loop.Reset()
	case paused && key.Matches(msg, m.keys.Restart):
		m.startSession()
	case key.Matches(msg, m.keys.Flap):
		m.game.Flap()
	}
}

func (m Model) updateScores(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.scores, cmd = m.scores.Update(msg)
	if m.scores.Done() {
		m.screen = screenHome
	}
	return m, cmd
}

// String returns the screen name.
func (s screen) String() string {
	switch s {
	case screenHome:
		return "home"
	case screenSettings:
		return "settings"
	case screenHighScore:
		return "high-score"
	case screenScores:
		return "scores"
	case screenPlaying:
		return "playing"
	case screenGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Run starts the Bubble Tea program for a local player.
func Run(game *flappy.Game, store storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

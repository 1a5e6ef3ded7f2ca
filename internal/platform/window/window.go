// Package window runs flappy in a desktop window with Ebiten, at the native
// 700x900 playfield resolution.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	skyColor    = color.RGBA{0x1b, 0x1f, 0x3b, 0xff}
	cloudColor  = color.RGBA{0x3a, 0x40, 0x6b, 0xff}
	pillarColor = color.RGBA{0x5c, 0x13, 0x0f, 0xff}
	flameColor  = color.RGBA{0xff, 0x8c, 0x1a, 0xff}
	emberColor  = color.RGBA{0xff, 0x3d, 0x00, 0xff}
	birdColor   = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	beakColor   = color.RGBA{0xff, 0x66, 0x99, 0xff}
	shadeColor  = color.RGBA{0x00, 0x00, 0x00, 0xa0}
)

const flameDepth = 18

// Window is an ebiten.Game driving one flappy.Game.
type Window struct {
	game   *flappy.Game
	cfg    config.FlappyConfig
	logger *log.Logger
	input  core.InputFrame
}

// New wraps game for windowed play.
func New(game *flappy.Game, logger *log.Logger) *Window {
	return &Window{
		game:   game,
		cfg:    game.Config(),
		logger: logger,
		input:  core.NewInputFrame(),
	}
}

// Window scale bounds relative to the playfield size.
const (
	minScale = 0.25
	maxScale = 2.0
)

// Run opens the window and blocks until it is closed. Ebiten calls Update
// tickRate times per second, one simulation tick each.
func Run(game *flappy.Game, tickRate int, scale float64, logger *log.Logger) error {
	w := New(game, logger)
	cfg := game.Config()

	scale = core.ClampF(scale, minScale, maxScale)

	ebiten.SetTPS(tickRate)
	ebiten.SetWindowTitle("Flappy")
	ebiten.SetWindowSize(int(cfg.Playfield.Width*scale), int(cfg.Playfield.Height*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

var difficultyKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3}

// Update translates input into a frame and advances the game one tick.
func (w *Window) Update() error {
	if anyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	w.input.Clear()
	flap := anyJustPressed(ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	pause := anyJustPressed(ebiten.KeyP, ebiten.KeyEscape)

	switch w.game.Phase() {
	case core.PhaseIdle, core.PhaseEnded:
		for i, d := range config.Difficulties() {
			if i < len(difficultyKeys) && inpututil.IsKeyJustPressed(difficultyKeys[i]) {
				w.input.SelectDifficulty(string(d))
			}
		}
		if flap || anyJustPressed(ebiten.KeyEnter) {
			w.input.Set(core.ActionStart)
		}
	case core.PhaseRunning:
		if pause {
			w.input.Set(core.ActionPause)
		}
		if flap {
			w.input.Set(core.ActionFlap)
		}
	case core.PhasePaused:
		if pause || anyJustPressed(ebiten.KeyEnter) {
			w.input.Set(core.ActionResume)
		}
		if anyJustPressed(ebiten.KeyR) {
			w.input.Set(core.ActionStart)
		}
	}

	w.handlePrefs()

	res := w.game.Step(w.input)
	if res.State.GameOver() && hasEnd(res.Events) {
		w.logger.Info("session ended",
			"score", res.State.Score,
			"cause", string(res.State.Cause),
			"difficulty", res.State.Difficulty)
	}
	return nil
}

// handlePrefs applies volume and music keys, available on every screen.
func (w *Window) handlePrefs() {
	prefs := w.game.Prefs()
	switch {
	case anyJustPressed(ebiten.KeyEqual, ebiten.KeyNumpadAdd):
		w.game.SetVolume(prefs.Volume + 10)
	case anyJustPressed(ebiten.KeyMinus, ebiten.KeyNumpadSubtract):
		w.game.SetVolume(prefs.Volume - 10)
	case anyJustPressed(ebiten.KeyM, ebiten.KeyBracketRight):
		w.game.NextTrack()
	case anyJustPressed(ebiten.KeyBracketLeft):
		w.game.PrevTrack()
	}
}

func hasEnd(events []core.Event) bool {
	for _, ev := range events {
		if ev.Kind == core.EventFall || ev.Kind == core.EventCollision {
			return true
		}
	}
	return false
}

// Layout keeps the logical screen at playfield size; ebiten scales it.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.cfg.Playfield.Width), int(w.cfg.Playfield.Height)
}

// Draw renders the playfield and the overlay for the current phase.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	w.drawClouds(screen)

	for _, o := range w.game.Obstacles() {
		w.drawObstacle(screen, o)
	}
	w.drawBird(screen)
	w.drawHUD(screen)

	switch w.game.Phase() {
	case core.PhaseIdle:
		w.drawPanel(screen, w.introLines())
	case core.PhasePaused:
		w.drawPanel(screen, []string{"PAUSED", "", "P / ESC / ENTER  resume", "R  restart"})
	case core.PhaseEnded:
		w.drawPanel(screen, w.gameOverLines())
	}
}

func (w *Window) drawClouds(screen *ebiten.Image) {
	width := float32(w.cfg.Playfield.Width)
	shift := float32(w.game.Ticks()) * 0.5
	for i, c := range [][3]float32{{80, 120, 34}, {320, 240, 26}, {540, 90, 40}, {210, 520, 30}} {
		x := c[0] - shift*float32(1+i%2)
		for x < -c[2]*2 {
			x += width + c[2]*4
		}
		vector.DrawFilledCircle(screen, x, c[1], c[2], cloudColor, true)
		vector.DrawFilledCircle(screen, x+c[2], c[1]+6, c[2]*0.8, cloudColor, true)
	}
}

func (w *Window) drawObstacle(screen *ebiten.Image, o flappy.Obstacle) {
	x, width := float32(o.X), float32(o.Width)
	top, bottom := float32(o.GapTop), float32(o.GapBottom())
	floor := float32(w.cfg.Playfield.Height)

	vector.DrawFilledRect(screen, x, 0, width, top, pillarColor, false)
	vector.DrawFilledRect(screen, x, bottom, width, floor-bottom, pillarColor, false)

	flame := flameColor
	if (w.game.Ticks()/6)%2 == 0 {
		flame = emberColor
	}
	vector.DrawFilledRect(screen, x-4, top-flameDepth, width+8, flameDepth, flame, false)
	vector.DrawFilledRect(screen, x-4, bottom, width+8, flameDepth, flame, false)
}

func (w *Window) drawBird(screen *ebiten.Image) {
	b := w.game.Bird()
	vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), birdColor, true)
	vector.DrawFilledRect(screen, float32(b.X+b.Radius-2), float32(b.Y-3), 10, 6, beakColor, false)
}

func (w *Window) drawHUD(screen *ebiten.Image) {
	st := w.game.State()
	prefs := w.game.Prefs()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", st.Score), 12, 10)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("BEST %d  %s  VOL %d  %s", st.HighScore, prefs.Difficulty.Label(), prefs.Volume, prefs.TrackTitle()),
		12, 28)
}

func (w *Window) introLines() []string {
	rec := w.game.Record()
	return []string{
		"F L A P P Y",
		"",
		fmt.Sprintf("Best %d   Games %d   Total %d", rec.HighScore, rec.GamesPlayed, rec.TotalScore),
		fmt.Sprintf("Difficulty %s  (1 easy  2 medium  3 hard)", w.game.Difficulty().Label()),
		"",
		"SPACE / CLICK  start and flap",
		"P  pause    +/-  volume    M  music    Q  quit",
	}
}

func (w *Window) gameOverLines() []string {
	score := w.game.Score()
	medal := flappy.MedalFor(score)
	cause := "You flew into the flames"
	if w.game.Cause() == core.CauseFall {
		cause = "You fell out of the sky"
	}
	return []string{
		"GAME OVER",
		cause,
		"",
		fmt.Sprintf("Score %d   Best %d", score, w.game.Record().HighScore),
		fmt.Sprintf("Medal: %s", medal),
		"",
		"SPACE  play again    1/2/3  difficulty",
	}
}

// drawPanel shades the playfield and prints lines centered vertically.
func (w *Window) drawPanel(screen *ebiten.Image, lines []string) {
	width := float32(w.cfg.Playfield.Width)
	height := float32(w.cfg.Playfield.Height)
	panelH := float32(len(lines)*18 + 40)
	y := (height - panelH) / 2

	vector.DrawFilledRect(screen, 60, y, width-120, panelH, shadeColor, false)
	for i, line := range lines {
		// debug font glyphs are 6px wide
		x := int(width)/2 - len(line)*3
		ebitenutil.DebugPrintAt(screen, line, x, int(y)+20+i*18)
	}
}

package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdChar    = '●'
	BeakChar    = '▶'
	PillarChar  = '█'
	FlameTop    = '▼'
	FlameBottom = '▲'
	GroundChar  = '═'
	CloudChar   = '░'
)

// clouds are drifting decorations: start column as a fraction of the width,
// row as a fraction of the playfield, length in cells.
var clouds = []struct {
	x, y float64
	w    int
}{
	{0.10, 0.12, 7},
	{0.45, 0.25, 5},
	{0.75, 0.08, 9},
	{0.30, 0.55, 6},
}

// viewport maps playfield units onto screen cells. Row 0 holds the HUD and
// the last row the ground.
type viewport struct {
	sx, sy float64
	rows   int
}

func newViewport(g *Game, dst *core.Screen) viewport {
	rows := dst.Height() - 2
	if rows < 1 {
		rows = 1
	}
	return viewport{
		sx:   float64(dst.Width()) / g.cfg.Playfield.Width,
		sy:   float64(rows) / g.cfg.Playfield.Height,
		rows: rows,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return 1 + core.Clamp(int(math.Floor(y*v.sy)), 0, v.rows-1)
}

// Render draws the playfield, HUD and pause/game-over overlays to dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := newViewport(g, dst)

	g.drawClouds(dst, v)
	for _, o := range g.stream.obstacles {
		g.drawObstacle(dst, v, o)
	}
	g.drawBird(dst, v)

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGround)
	g.drawHUD(dst)

	switch g.phase {
	case core.PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case core.PhaseEnded:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

func (g *Game) drawClouds(dst *core.Screen, v viewport) {
	w := dst.Width()
	if w == 0 {
		return
	}
	shift := g.ticks / 8
	for _, c := range clouds {
		x := int(c.x*float64(w)) - shift
		x = ((x % w) + w) % w
		y := 1 + int(c.y*float64(v.rows))
		for i := 0; i < c.w; i++ {
			dst.SetColored((x+i)%w, y, CloudChar, core.ColorCloud)
		}
	}
}

// drawObstacle renders both barriers as pillars with flames at the gap edges.
func (g *Game) drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	left := v.col(o.X)
	right := int(math.Ceil(o.Right() * v.sx))
	gapTop := v.row(o.GapTop)
	gapBottom := v.row(o.GapBottom())
	floor := dst.Height() - 1

	for x := left; x < right; x++ {
		for y := 1; y < gapTop; y++ {
			dst.SetColored(x, y, PillarChar, core.ColorPipe)
		}
		for y := gapBottom + 1; y < floor; y++ {
			dst.SetColored(x, y, PillarChar, core.ColorPipe)
		}
		// flicker between flame colors with the tick counter
		flame := core.ColorFlame
		if (x+g.ticks/6)%2 == 0 {
			flame = core.ColorEmber
		}
		if gapTop > 1 {
			dst.SetColored(x, gapTop-1, FlameTop, flame)
		}
		if gapBottom < floor {
			dst.SetColored(x, gapBottom, FlameBottom, flame)
		}
	}
}

func (g *Game) drawBird(dst *core.Screen, v viewport) {
	x := v.col(g.bird.X)
	y := v.row(g.bird.Y)
	dst.SetColored(x, y, BirdChar, core.ColorBird)
	dst.SetColored(x+1, y, BeakChar, core.ColorAccent)
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorHUD)
	right := fmt.Sprintf(" Best: %d  %s ", g.record.HighScore, g.difficulty.Label())
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorLabel)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorAccent)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorAccent)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorMuted)
}

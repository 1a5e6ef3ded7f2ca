package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// autopilotMargin keeps the hitbox this far above the lower barrier before
// the autopilot flaps.
const autopilotMargin = 40

// ShouldFlap is a simple autopilot: flap while falling once the bird sinks
// toward the bottom of the next gap (or below mid-field when none is ahead).
// Used by headless simulation runs.
func ShouldFlap(g *Game) bool {
	if g.Phase() != core.PhaseRunning {
		return false
	}
	bird := g.Bird()
	if bird.Velocity < 0 {
		return false
	}

	floor := g.cfg.Playfield.Height/2 + g.cfg.Obstacles.GapHeight/2
	for _, o := range g.stream.obstacles {
		if o.Right() >= bird.X-bird.Width/2 {
			floor = o.GapBottom()
			break
		}
	}
	return bird.Y+bird.Height/2+autopilotMargin > floor
}

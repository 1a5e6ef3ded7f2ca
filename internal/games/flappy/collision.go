package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// segments returns the upper and lower barrier boxes of o.
func segments(o Obstacle, floor float64) (top, bottom core.Box) {
	top = core.Box{Left: o.X, Top: 0, Right: o.Right(), Bottom: o.GapTop}
	bottom = core.Box{Left: o.X, Top: o.GapBottom(), Right: o.Right(), Bottom: floor}
	return top, bottom
}

// Collides reports whether the bird hitbox overlaps either barrier of o.
// The test is discrete: an obstacle moving further than its width plus the
// bird width in one tick can pass through unnoticed.
func Collides(bird Bird, o Obstacle, cfg config.FlappyConfig) bool {
	b := bird.Box()
	top, bottom := segments(o, cfg.Playfield.Height)
	if !b.OverlapsX(top) {
		return false
	}
	return b.OverlapsY(top) || b.OverlapsY(bottom)
}

package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player body. X never changes after a session starts; Y is not
// clamped, leaving the playfield ends the session instead.
type Bird struct {
	X, Y     float64 // center
	Velocity float64 // units per tick, positive = down
	Radius   float64 // boundary check extent
	Width    float64 // obstacle hitbox
	Height   float64
}

func newBird(cfg config.BirdConfig) Bird {
	return Bird{
		X:      cfg.X,
		Y:      cfg.StartY,
		Radius: cfg.Radius,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}

// Box returns the bird hitbox used against obstacles.
func (b Bird) Box() core.Box {
	return core.BoxAround(b.X, b.Y, b.Width, b.Height)
}

// fall integrates one tick of gravity: velocity first, then position.
func (b *Bird) fall(gravity float64) {
	b.Velocity += gravity
	b.Y += b.Velocity
}

// flap replaces the current velocity with the impulse.
func (b *Bird) flap(impulse float64) {
	b.Velocity = impulse
}

// outOfBounds reports whether the bird touched past the ceiling (y=0) or the floor.
func (b Bird) outOfBounds(floor float64) bool {
	return b.Y+b.Radius > floor || b.Y-b.Radius < 0
}

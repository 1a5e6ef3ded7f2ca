package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestCollides(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	// gap spans [100, 420]
	obstacle := Obstacle{X: 80, GapTop: 100, GapHeight: 320, Width: 80}

	tests := []struct {
		name string
		bird Bird
		want bool
	}{
		{"inside gap", Bird{X: 100, Y: 260, Width: 70, Height: 70}, false},
		{"above gap", Bird{X: 100, Y: 50, Width: 70, Height: 70}, true},
		{"below gap", Bird{X: 100, Y: 600, Width: 70, Height: 70}, true},
		{"clipping gap top", Bird{X: 100, Y: 130, Width: 70, Height: 70}, true},
		{"clipping gap bottom", Bird{X: 100, Y: 390, Width: 70, Height: 70}, true},
		{"touching gap top", Bird{X: 100, Y: 135, Width: 70, Height: 70}, false},
		{"no horizontal overlap", Bird{X: 300, Y: 50, Width: 70, Height: 70}, false},
		{"touching left edge", Bird{X: 45, Y: 50, Width: 70, Height: 70}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.bird, obstacle, cfg); got != tt.want {
				t.Errorf("Collides() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Scenarios B and C from the gameplay notes: a gap at 100..420 with the
// bird overlapping the obstacle horizontally.
func TestCollidesGapScenarios(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	o := Obstacle{X: 90, GapTop: 100, GapHeight: 320, Width: cfg.Obstacles.Width}

	inside := newBird(cfg.Bird)
	inside.Y = 260
	if Collides(inside, o, cfg) {
		t.Error("bird inside the gap should not collide")
	}

	above := newBird(cfg.Bird)
	above.Y = 50
	if !Collides(above, o, cfg) {
		t.Error("bird above the gap should collide")
	}
}

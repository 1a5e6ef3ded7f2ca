package flappy

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestSpawnedGapWithinBounds(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	for seed := int64(1); seed <= 20; seed++ {
		s, err := NewObstacleStream(cfg, seed)
		if err != nil {
			t.Fatalf("NewObstacleStream() error = %v", err)
		}
		for i := 0; i < 100; i++ {
			s.spawn()
		}
		for _, o := range s.Obstacles() {
			if o.GapTop < cfg.Obstacles.MinHeight {
				t.Fatalf("seed %d: gap top %.2f below min height", seed, o.GapTop)
			}
			if o.GapBottom() > cfg.Playfield.Height-cfg.Obstacles.MinHeight {
				t.Fatalf("seed %d: gap bottom %.2f leaves less than min height", seed, o.GapBottom())
			}
			if o.X != cfg.Playfield.Width {
				t.Fatalf("seed %d: spawned at x=%.2f, expected right edge", seed, o.X)
			}
			if o.Scored {
				t.Fatalf("seed %d: new obstacle already scored", seed)
			}
		}
	}
}

func TestSpawnTimer(t *testing.T) {
	s, err := NewObstacleStream(config.DefaultFlappyConfig(), 1)
	if err != nil {
		t.Fatal(err)
	}

	for tick := 1; tick <= 250; tick++ {
		if s.advanceTimer(250) {
			t.Fatalf("spawned at tick %d, timer must exceed the interval", tick)
		}
	}
	if !s.advanceTimer(250) {
		t.Fatal("expected a spawn at tick 251")
	}
	if s.Len() != 1 || s.timer != 0 {
		t.Errorf("after spawn: len=%d timer=%d", s.Len(), s.timer)
	}

	// Fractional intervals: 125.5 spawns on the 126th tick
	for tick := 1; tick <= 125; tick++ {
		s.advanceTimer(125.5)
	}
	if !s.advanceTimer(125.5) {
		t.Error("expected a spawn once the timer exceeds 125.5")
	}
}

func TestEmptyGapRange(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Obstacles.GapHeight = 850

	_, err := NewObstacleStream(cfg, 1)
	if !errors.Is(err, ErrEmptyGapRange) {
		t.Errorf("NewObstacleStream() error = %v, want ErrEmptyGapRange", err)
	}
}

func TestStreamReset(t *testing.T) {
	s, _ := NewObstacleStream(config.DefaultFlappyConfig(), 1)
	s.spawn()
	s.spawn()
	s.timer = 40

	s.Reset()
	if s.Len() != 0 || s.timer != 0 {
		t.Errorf("Reset() left len=%d timer=%d", s.Len(), s.timer)
	}
}

package flappy

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// ErrEmptyGapRange is returned when the configured geometry leaves no room
// for a gap with min_height of body above and below it.
var ErrEmptyGapRange = errors.New("obstacle gap range is empty")

// Obstacle is a pair of barriers with a gap between them.
// GapTop is fixed at spawn; X decreases every tick.
type Obstacle struct {
	X         float64
	GapTop    float64
	GapHeight float64
	Width     float64
	Scored    bool
}

// Right returns the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// GapBottom returns the top of the lower barrier.
func (o Obstacle) GapBottom() float64 {
	return o.GapTop + o.GapHeight
}

// ObstacleStream spawns, advances and prunes obstacles.
type ObstacleStream struct {
	cfg       config.FlappyConfig
	rng       *rand.Rand
	obstacles []Obstacle
	timer     int // ticks since last spawn
}

// NewObstacleStream creates an empty stream. It fails when the gap-top range
// [min_height, height-gap_height-min_height) is empty.
func NewObstacleStream(cfg config.FlappyConfig, seed int64) (*ObstacleStream, error) {
	if cfg.MinGapTop() > cfg.MaxGapTop() {
		return nil, fmt.Errorf("flappy: %w: min %.0f > max %.0f",
			ErrEmptyGapRange, cfg.MinGapTop(), cfg.MaxGapTop())
	}
	return &ObstacleStream{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}, nil
}

// Reset drops all obstacles and the spawn timer. The RNG keeps its sequence.
func (s *ObstacleStream) Reset() {
	s.obstacles = s.obstacles[:0]
	s.timer = 0
}

// Obstacles returns the live obstacles, oldest first.
func (s *ObstacleStream) Obstacles() []Obstacle {
	return s.obstacles
}

// Len returns the number of live obstacles.
func (s *ObstacleStream) Len() int {
	return len(s.obstacles)
}

// advanceTimer counts one tick and spawns when the timer exceeds interval.
// Returns true when an obstacle was spawned.
func (s *ObstacleStream) advanceTimer(interval float64) bool {
	s.timer++
	if float64(s.timer) > interval {
		s.spawn()
		s.timer = 0
		return true
	}
	return false
}

// spawn adds an obstacle at the right edge with a uniformly drawn gap top.
func (s *ObstacleStream) spawn() {
	lo, hi := s.cfg.MinGapTop(), s.cfg.MaxGapTop()
	s.obstacles = append(s.obstacles, Obstacle{
		X:         s.cfg.Playfield.Width,
		GapTop:    lo + s.rng.Float64()*(hi-lo),
		GapHeight: s.cfg.Obstacles.GapHeight,
		Width:     s.cfg.Obstacles.Width,
	})
}

// push inserts a prepared obstacle. Used by tests and replays.
func (s *ObstacleStream) push(o Obstacle) {
	s.obstacles = append(s.obstacles, o)
}

// remove deletes the obstacle at i.
func (s *ObstacleStream) remove(i int) {
	s.obstacles = slices.Delete(s.obstacles, i, i+1)
}

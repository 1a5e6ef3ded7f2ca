// Package config provides YAML-based game configuration loading, validation
// and the difficulty curve for the flappy game.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// FlappyConfig contains all tunable constants of the simulation.
// Distances are in playfield units, velocities in units per tick.
type FlappyConfig struct {
	Playfield  Playfield        `yaml:"playfield"`
	Bird       BirdConfig       `yaml:"bird"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Playfield defines the simulated area. The ceiling is y=0 and the floor is y=Height.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BirdConfig defines the bird body and its flap impulse.
type BirdConfig struct {
	X           float64 `yaml:"x"`            // fixed horizontal position (center)
	StartY      float64 `yaml:"start_y"`      // vertical position on session start
	Radius      float64 `yaml:"radius"`       // boundary check extent
	Width       float64 `yaml:"width"`        // obstacle hitbox width
	Height      float64 `yaml:"height"`       // obstacle hitbox height
	FlapImpulse float64 `yaml:"flap_impulse"` // velocity set by a flap, negative = up
}

// ObstacleConfig defines obstacle geometry.
type ObstacleConfig struct {
	Width     float64 `yaml:"width"`
	GapHeight float64 `yaml:"gap_height"`
	MinHeight float64 `yaml:"min_height"` // minimum body above and below the gap
}

// DifficultyConfig defines the presets and the score-driven curve.
type DifficultyConfig struct {
	ScoreStep     float64               `yaml:"score_step"`     // score at which the multiplier has grown by 1.0
	MaxMultiplier float64               `yaml:"max_multiplier"` // clamp for the multiplier
	Default       Difficulty            `yaml:"default"`
	Presets       map[Difficulty]Preset `yaml:"presets"`
}

// Preset holds the base constants scaled by the difficulty multiplier.
type Preset struct {
	SpawnInterval float64 `yaml:"spawn_interval"` // ticks between spawns at multiplier 1.0
	Speed         float64 `yaml:"speed"`          // obstacle speed at multiplier 1.0
	Gravity       float64 `yaml:"gravity"`        // gravity at multiplier 1.0
}

// Difficulty names a preset.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the presets in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a user-supplied name into a Difficulty.
func ParseDifficulty(name string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Difficulties() {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", name)
}

// Label returns the upper-case display label.
func (d Difficulty) Label() string {
	return strings.ToUpper(string(d))
}

// Preset returns the preset for d.
func (c FlappyConfig) Preset(d Difficulty) (Preset, bool) {
	p, ok := c.Difficulty.Presets[d]
	return p, ok
}

// Curve returns the difficulty curve described by the config.
func (c FlappyConfig) Curve() Curve {
	return Curve{Step: c.Difficulty.ScoreStep, Max: c.Difficulty.MaxMultiplier}
}

// MinGapTop is the smallest gap-top offset an obstacle may get.
func (c FlappyConfig) MinGapTop() float64 {
	return c.Obstacles.MinHeight
}

// MaxGapTop is the exclusive upper bound for gap-top offsets.
func (c FlappyConfig) MaxGapTop() float64 {
	return c.Playfield.Height - c.Obstacles.GapHeight - c.Obstacles.MinHeight
}

// Validate checks that the configuration can produce a playable session.
func (c FlappyConfig) Validate() error {
	var problems []string

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		problems = append(problems, "playfield dimensions must be positive")
	}
	if c.Bird.Radius <= 0 || c.Bird.Width <= 0 || c.Bird.Height <= 0 {
		problems = append(problems, "bird dimensions must be positive")
	}
	if c.Bird.StartY-c.Bird.Radius < 0 || c.Bird.StartY+c.Bird.Radius > c.Playfield.Height {
		problems = append(problems, "bird start_y must keep the bird inside the playfield")
	}
	if c.Bird.FlapImpulse >= 0 {
		problems = append(problems, "bird flap_impulse must be negative (upward)")
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.GapHeight <= 0 {
		problems = append(problems, "obstacle width and gap_height must be positive")
	}
	if c.Obstacles.MinHeight < 0 {
		problems = append(problems, "obstacle min_height must not be negative")
	}
	if c.MinGapTop() > c.MaxGapTop() {
		problems = append(problems, fmt.Sprintf(
			"obstacle gap-top range is empty: min_height %.0f exceeds max height %.0f",
			c.MinGapTop(), c.MaxGapTop()))
	}
	if c.Difficulty.ScoreStep <= 0 {
		problems = append(problems, "difficulty score_step must be positive")
	}
	if c.Difficulty.MaxMultiplier < 1 {
		problems = append(problems, "difficulty max_multiplier must be at least 1")
	}
	for _, d := range Difficulties() {
		p, ok := c.Difficulty.Presets[d]
		if !ok {
			problems = append(problems, fmt.Sprintf("difficulty preset %q missing", d))
			continue
		}
		if p.SpawnInterval <= 0 || p.Speed <= 0 || p.Gravity <= 0 {
			problems = append(problems, fmt.Sprintf("difficulty preset %q needs positive spawn_interval, speed and gravity", d))
		}
	}
	if _, err := ParseDifficulty(string(c.Difficulty.Default)); err != nil {
		problems = append(problems, fmt.Sprintf("difficulty default %q is not a preset", c.Difficulty.Default))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// TunnelingRisk returns the presets whose peak per-tick obstacle travel can
// skip past the bird without an overlapping tick.
func (c FlappyConfig) TunnelingRisk() []Difficulty {
	var risky []Difficulty
	window := c.Obstacles.Width + c.Bird.Width
	for _, d := range Difficulties() {
		p, ok := c.Difficulty.Presets[d]
		if !ok {
			continue
		}
		if p.Speed*c.Difficulty.MaxMultiplier > window {
			risky = append(risky, d)
		}
	}
	return risky
}

package config

// Curve is the score-driven difficulty multiplier:
//
//	multiplier(score) = min(1 + score/Step, Max)
//
// It scales gravity and obstacle speed, and divides the spawn interval.
type Curve struct {
	Step float64
	Max  float64
}

// Multiplier returns the difficulty multiplier for score.
func (c Curve) Multiplier(score int) float64 {
	if c.Step <= 0 {
		return 1.0
	}
	m := 1.0 + float64(score)/c.Step
	if m > c.Max {
		return c.Max
	}
	return m
}

// Gravity returns the scaled gravity for a preset.
func (c Curve) Gravity(p Preset, score int) float64 {
	return p.Gravity * c.Multiplier(score)
}

// Speed returns the scaled obstacle speed for a preset.
func (c Curve) Speed(p Preset, score int) float64 {
	return p.Speed * c.Multiplier(score)
}

// SpawnInterval returns the scaled spawn interval (in ticks) for a preset.
func (c Curve) SpawnInterval(p Preset, score int) float64 {
	return p.SpawnInterval / c.Multiplier(score)
}

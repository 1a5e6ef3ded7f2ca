package loop

import (
	"context"
	"time"
)

// maxFrame caps how much elapsed time one Advance may convert into ticks,
// so a stalled frame cannot trigger a burst of catch-up steps.
const maxFrame = 250 * time.Millisecond

// Loop converts elapsed clock time into a whole number of fixed ticks.
type Loop struct {
	clock       Clock
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// New creates a loop running tickRate ticks per second.
func New(clock Clock, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	l := &Loop{
		clock: clock,
		step:  time.Second / time.Duration(tickRate),
	}
	l.Reset()
	return l
}

// Step returns the fixed tick duration.
func (l *Loop) Step() time.Duration {
	return l.step
}

// Reset drops accumulated time and restarts measuring from now.
// Call it after the simulation was suspended (menus, pause screens).
func (l *Loop) Reset() {
	l.accumulator = 0
	l.last = l.clock.Now()
}

// Advance reads the clock and returns how many ticks are due.
func (l *Loop) Advance() int {
	now := l.clock.Now()
	frame := now.Sub(l.last)
	l.last = now

	if frame < 0 {
		frame = 0
	}
	if frame > maxFrame {
		frame = maxFrame
	}

	l.accumulator += frame
	ticks := int(l.accumulator / l.step)
	l.accumulator -= time.Duration(ticks) * l.step
	return ticks
}

// Run calls tick once per due step until tick returns false or ctx is done.
// It waits on the clock between frames, one step at a time.
func (l *Loop) Run(ctx context.Context, tick func() bool) error {
	l.Reset()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.clock.After(l.step):
		}

		for n := l.Advance(); n > 0; n-- {
			if !tick() {
				return nil
			}
		}
	}
}

package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestAutopilotKeepsBirdAirborne(t *testing.T) {
	g := newTestGame(t)
	g.Start()

	// Before the first obstacle arrives the autopilot only has to avoid
	// the floor and the ceiling.
	for i := 0; i < 250; i++ {
		if ShouldFlap(g) {
			g.Flap()
		}
		g.Tick()
	}
	if g.Phase() != core.PhaseRunning {
		t.Fatalf("autopilot crashed before any obstacle: cause=%q", g.Cause())
	}
}

func TestAutopilotIdleWhenNotRunning(t *testing.T) {
	g := newTestGame(t)
	if ShouldFlap(g) {
		t.Error("autopilot should not flap while idle")
	}

	g.Start()
	g.bird.Y = 800
	g.bird.Velocity = -1
	if ShouldFlap(g) {
		t.Error("autopilot should not flap while rising")
	}
	g.bird.Velocity = 1
	if !ShouldFlap(g) {
		t.Error("autopilot should flap when sinking low")
	}
}

func TestAutopilotTargetsNextGap(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	g.bird.Velocity = 1
	g.bird.Y = 310

	// Gap [60, 380]: 310 + 35 + 40 > 380, time to flap
	g.stream.push(Obstacle{X: 200, GapTop: 60, GapHeight: 320, Width: 80})
	if !ShouldFlap(g) {
		t.Error("expected a flap near the bottom of the gap")
	}

	// A passed obstacle is ignored; the next gap [500, 820] is far below
	g.stream.obstacles[0].X = -100
	g.stream.push(Obstacle{X: 400, GapTop: 500, GapHeight: 320, Width: 80})
	if ShouldFlap(g) {
		t.Error("bird is well above the next gap bottom")
	}
}

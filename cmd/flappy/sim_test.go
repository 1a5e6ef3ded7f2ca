package main

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/loop"
)

func TestCheckSimFlags(t *testing.T) {
	tests := []struct {
		name     string
		sessions int
		maxTicks int
		wantErr  bool
	}{
		{"defaults", 10, 36000, false},
		{"single session", 1, 1, false},
		{"zero sessions", 0, 100, true},
		{"negative sessions", -1, 100, true},
		{"zero ticks", 5, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := checkSimFlags(tc.sessions, tc.maxTicks)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSimulateStopsAtMaxTicks(t *testing.T) {
	game, err := flappy.New(config.DefaultFlappyConfig(),
		flappy.WithSeed(42), flappy.WithLogger(log.New(io.Discard)))
	require.NoError(t, err)

	l := loop.New(loop.NewManualClock(time.Unix(0, 0)), 60)
	res, err := simulate(context.Background(), game, l, 100)
	require.NoError(t, err)
	require.Equal(t, 100, res.ticks)
	require.Equal(t, core.CauseNone, res.cause)
}

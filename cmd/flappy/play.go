package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/Click - Flap
  P/Esc          - Pause / resume
  R/Enter        - Play again
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - slow obstacles, gentle gravity
  medium - faster obstacles, tighter spawning
  hard   - fastest obstacles, strongest gravity

The difficulty is remembered between runs. Every preset speeds up as the
score grows, doubling at 100 points.

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --config ./my-flappy.yaml
  flappy play --db :memory: --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := newFileLogger()
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		fail("%v", err)
	}

	store := openStore(logger)
	defer store.Close()

	game, err := newGame(cfg, flagDifficulty, logger,
		flappy.WithStore(store),
		flappy.WithSound(openSound(logger, flagMute)))
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	if err := tui.Run(game, store, rt, logger); err != nil {
		fail("%v", err)
	}
}

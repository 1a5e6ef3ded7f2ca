package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window at the native 700x900 playfield.

Controls:
  Space/Up/Click - Start, flap
  P/Esc          - Pause / resume
  R              - Restart while paused
  1/2/3          - Difficulty (between sessions)
  +/-            - Volume
  M, [ ]         - Background music
  Q              - Quit

Examples:
  flappy window
  flappy window --scale 0.7 --difficulty medium`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0.8, "Window scale relative to 700x900")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

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

	if err := window.Run(game, flagFPS, flagScale, logger); err != nil {
		fail("%v", err)
	}
}

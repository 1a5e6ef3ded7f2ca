package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newFileLogger logs to the --log file so the alt screen stays clean.
// Falls back to discarding output when the file cannot be opened.
func newFileLogger() (*log.Logger, func()) {
	path := expandHome(flagLogPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// loadConfig loads the game config and warns about presets that can skip
// collisions at peak speed.
func loadConfig(logger *log.Logger) (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, err
	}
	for _, d := range cfg.TunnelingRisk() {
		logger.Warn("obstacles may pass through the bird at peak speed", "difficulty", string(d))
	}
	return cfg, nil
}

// openStore opens --db, falling back to an in-memory store so the game is
// always playable. Writes go through a background queue so a slow database
// never holds up a tick.
func openStore(logger *log.Logger) storage.Store {
	store, err := storage.Open(flagDB)
	if err != nil {
		logger.Warn("could not open database, records will not persist", "db", flagDB, "error", err)
		return storage.NewMemoryStore()
	}
	return storage.NewAsync(store, logger)
}

// newGame creates a game with the global seed and an optional difficulty override.
func newGame(cfg config.FlappyConfig, difficulty string, logger *log.Logger, opts ...flappy.Option) (*flappy.Game, error) {
	opts = append([]flappy.Option{
		flappy.WithLogger(logger),
		flappy.WithSeed(flagSeed),
	}, opts...)

	game, err := flappy.New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	if difficulty != "" {
		d, err := config.ParseDifficulty(difficulty)
		if err != nil {
			return nil, err
		}
		game.SelectDifficulty(d)
	}
	return game, nil
}

// openSound opens the audio device, or returns a silent sink when muted.
// The game applies the stored volume on creation.
func openSound(logger *log.Logger, mute bool) flappy.Sound {
	if mute {
		return audio.Nop{}
	}
	return audio.Open(logger, flappy.DefaultVolume)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

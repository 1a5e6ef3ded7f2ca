// flappy is a flap-through-the-gaps arcade game for the terminal, a desktop
// window, or SSH.
//
// Usage:
//
//	flappy play            - Play in the terminal
//	flappy window          - Play in a desktop window
//	flappy serve           - Start SSH server for remote play
//	flappy stats           - Show the persisted record and settings
//	flappy scores          - Show the top 10 sessions
//	flappy sim             - Run headless sessions with an autopilot
//	flappy config          - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible obstacles
//	--db <dsn>      - SQLite path or postgres:// URL (default: ~/.flappy/flappy.db)
//	--config <path> - Custom game config YAML
//	--log <path>    - Log file for terminal modes (default: ~/.flappy/flappy.log)
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDB      string
	flagConfig  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	// A missing .env is normal; real environment variables still apply.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly between the flames",
	Long: `Flappy is an arcade game: flap to stay airborne and pass through the
gaps between burning pillars. The game speeds up as your score grows.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  stats    - Show your record and settings
  scores   - View the score history
  sim      - Run headless autopilot sessions
  config   - Print the effective game configuration

Environment (also read from .env):
  FLAPPY_DB      default for --db
  FLAPPY_CONFIG  default for --config
  FLAPPY_LOG     default for --log

Examples:
  flappy play
  flappy play --difficulty hard
  flappy window --scale 0.8
  flappy serve --ssh :2222 --db postgres://flappy@localhost/flappy
  flappy scores --difficulty medium
  flappy sim --sessions 20 --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", envOr("FLAPPY_DB", "~/.flappy/flappy.db"), "SQLite path, postgres:// URL or :memory:")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", envOr("FLAPPY_CONFIG", ""), "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", envOr("FLAPPY_LOG", "~/.flappy/flappy.log"), "Log file used by terminal modes")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// envOr returns the environment variable or def when it is unset or empty.
func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

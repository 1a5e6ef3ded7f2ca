package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/loop"
)

var (
	flagSimSessions   int
	flagSimMaxTicks   int
	flagSimDifficulty string
	flagSimRealtime   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot sessions",
	Long: `Run sessions without a display. A simple autopilot flaps toward the next
gap. By default the loop runs on a manual clock as fast as possible; use
--realtime to pace it with the wall clock.

Records are kept in memory and never written to --db.

Examples:
  flappy sim
  flappy sim --sessions 50 --seed 42 --difficulty hard
  flappy sim --max-ticks 5000`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimSessions, "sessions", 10, "Number of sessions to run")
	simCmd.Flags().IntVar(&flagSimMaxTicks, "max-ticks", 36000, "Stop a session after this many ticks")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace the loop with the wall clock")
}

// simResult is the outcome of one headless session.
type simResult struct {
	ticks int
	score int
	cause core.EndCause
}

func runSim(cmd *cobra.Command, _ []string) {
	if err := checkSimFlags(flagSimSessions, flagSimMaxTicks); err != nil {
		fail("%v", err)
	}
	logger := newLogger(cmd.ErrOrStderr())

	cfg, err := loadConfig(logger)
	if err != nil {
		fail("%v", err)
	}
	difficulty := flagSimDifficulty
	if difficulty == "" {
		difficulty = string(cfg.Difficulty.Default)
	}

	game, err := newGame(cfg, difficulty, logger)
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var clock loop.Clock = loop.NewManualClock(time.Unix(0, 0))
	if flagSimRealtime {
		clock = loop.SystemClock{}
	}

	results := make([]simResult, 0, flagSimSessions)
	for i := 0; i < flagSimSessions && ctx.Err() == nil; i++ {
		res, err := simulate(ctx, game, loop.New(clock, flagFPS), flagSimMaxTicks)
		if err != nil {
			logger.Warn("simulation interrupted", "session", i+1, "error", err)
		}
		results = append(results, res)
	}

	printSim(cmd.OutOrStdout(), game.Difficulty(), results, game.Record())
}

// checkSimFlags rejects session and tick counts below one.
func checkSimFlags(sessions, maxTicks int) error {
	if sessions < 1 {
		return fmt.Errorf("--sessions must be at least 1, got %d", sessions)
	}
	if maxTicks < 1 {
		return fmt.Errorf("--max-ticks must be at least 1, got %d", maxTicks)
	}
	return nil
}

// simulate plays one session on the autopilot until it ends or maxTicks
// is reached.
func simulate(ctx context.Context, game *flappy.Game, l *loop.Loop, maxTicks int) (simResult, error) {
	game.Start()

	var res simResult
	err := l.Run(ctx, func() bool {
		if flappy.ShouldFlap(game) {
			game.Flap()
		}
		game.Tick()
		res.ticks++
		return game.Phase() == core.PhaseRunning && res.ticks < maxTicks
	})

	res.score = game.Score()
	res.cause = game.Cause()
	return res, err
}

func printSim(w io.Writer, d config.Difficulty, results []simResult, rec flappy.Record) {
	fmt.Fprintln(w, headStyle.Render("Simulation - "+d.Label()))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "Ticks", "Score", "End")

	for i, r := range results {
		cause := string(r.cause)
		if cause == "" {
			cause = "max ticks"
		}
		t.Row(strconv.Itoa(i+1), strconv.Itoa(r.ticks), strconv.Itoa(r.score), cause)
	}
	fmt.Fprintln(w, t.Render())

	fmt.Fprintf(w, "best %d  games %d  total %d\n", rec.HighScore, rec.GamesPlayed, rec.TotalScore)
}

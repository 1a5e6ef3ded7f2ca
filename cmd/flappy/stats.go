package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagPlayer string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your record and settings",
	Long: `Display the persisted record: best score, games played, total score,
plus the stored volume, music and difficulty.

Use --player to read the record of an SSH user on a server database.

Examples:
  flappy stats
  flappy stats --player alice --db postgres://flappy@db/flappy`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&flagPlayer, "player", "", "SSH user whose record to show")
}

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle = lipgloss.NewStyle().Bold(true)
	headStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

func runStats(cmd *cobra.Command, _ []string) {
	logger := newLogger(cmd.ErrOrStderr())

	cfg, err := loadConfig(logger)
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(flagDB)
	if err != nil {
		fail("opening database: %v", err)
	}
	defer store.Close()

	game, err := flappy.New(cfg,
		flappy.WithStore(storage.Namespace(store, flagPlayer)),
		flappy.WithLogger(logger))
	if err != nil {
		fail("%v", err)
	}

	printStats(cmd.OutOrStdout(), game.Record(), game.Prefs())
}

func printStats(w io.Writer, rec flappy.Record, prefs flappy.Prefs) {
	row := func(label, value string) {
		fmt.Fprintln(w, labelStyle.Render(label)+valueStyle.Render(value))
	}

	medal := flappy.MedalFor(rec.HighScore)
	fmt.Fprintln(w, headStyle.Render("Record"))
	row("Best", fmt.Sprintf("%d %s", rec.HighScore, medal.Glyph()))
	row("Games played", fmt.Sprintf("%d", rec.GamesPlayed))
	row("Total score", fmt.Sprintf("%d", rec.TotalScore))
	if rec.GamesPlayed > 0 {
		row("Average", fmt.Sprintf("%.1f", float64(rec.TotalScore)/float64(rec.GamesPlayed)))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headStyle.Render("Settings"))
	row("Difficulty", prefs.Difficulty.Label())
	row("Volume", fmt.Sprintf("%d", prefs.Volume))
	row("Music", prefs.TrackTitle())
}

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresLimit      int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best sessions",
	Long: `Display the top sessions from the score history.

Examples:
  flappy scores
  flappy scores --difficulty hard
  flappy scores --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show one difficulty: easy, medium, hard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
}

func runScores(cmd *cobra.Command, _ []string) {
	filter := ""
	if flagScoresDifficulty != "" {
		d, err := config.ParseDifficulty(flagScoresDifficulty)
		if err != nil {
			fail("%v", err)
		}
		filter = string(d)
	}

	store, err := storage.Open(flagDB)
	if err != nil {
		fail("opening database: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores(filter, flagScoresLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	printScores(cmd.OutOrStdout(), scores)
}

func printScores(w io.Writer, scores []storage.ScoreEntry) {
	fmt.Fprintln(w, headStyle.Render("High Scores"))
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'flappy play' to set the first high score!")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Rank", "Score", "Level", "Player", "Date")

	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(e.Score),
			e.Difficulty,
			player,
			e.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Fprintln(w, t.Render())
}

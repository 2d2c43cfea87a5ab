package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/younwookim/tilerun/internal/infrastructure/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded runs.

Examples:
  platformer scores
  platformer scores --limit 20`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("failed to open scores database: %w", err)
	}
	defer func() { _ = store.Close() }()

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		return fmt.Errorf("failed to retrieve scores: %w", err)
	}

	fmt.Print(formatScores(scores))
	return nil
}

func formatScores(scores []storage.ScoreEntry) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("High Scores") + "\n\n")

	if len(scores) == 0 {
		b.WriteString("No scores recorded yet.\n\n")
		b.WriteString("Play 'platformer play' to set the first high score!\n")
		return b.String()
	}

	rows := make([][]string, 0, len(scores))
	for i, e := range scores {
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			fmt.Sprint(e.Score),
			e.Difficulty,
			fmt.Sprint(e.Level),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	b.WriteString(renderTable([]string{"Rank", "Score", "Difficulty", "Level", "Date"}, rows))
	b.WriteString(fmt.Sprintf("\nBest: %d\n", scores[0].Score))
	return b.String()
}

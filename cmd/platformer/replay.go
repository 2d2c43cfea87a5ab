package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/younwookim/tilerun/internal/application/replay"
	"github.com/younwookim/tilerun/internal/application/session"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Replay a recording without a window",
	Long: `Feed a recorded input file through the simulation and print where
the run ended. Replays are deterministic for the same configs.

Examples:
  platformer replay replay.json
  platformer replay --configs ./configs replay.json`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	rec, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}

	loader, err := newLoader(flagConfigs)
	if err != nil {
		return err
	}
	data, err := loadGame(loader)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	res := playback(data, rec, session.WithLogger(logger))
	fmt.Print(formatResult(args[0], rec, res))
	return nil
}

// playback runs a recording against a fresh session
func playback(data *gameData, rec *replay.ReplayData, opts ...session.Option) replay.Result {
	opts = append([]session.Option{session.WithDifficulty(rec.Difficulty)}, opts...)
	sess := session.New(data.physics, data.levels, opts...)
	return replay.Run(sess, replay.NewReplayer(*rec))
}

func formatResult(file string, rec *replay.ReplayData, res replay.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Replay - "+file) + "\n\n")
	b.WriteString(renderTable(
		[]string{"Frames", "Difficulty", "State", "Level", "Score", "Lives", "Coins", "Enemies left"},
		[][]string{{
			fmt.Sprint(res.Frames),
			rec.Difficulty,
			res.State.String(),
			fmt.Sprint(res.Level),
			fmt.Sprint(res.Counters.Score),
			fmt.Sprint(res.Counters.Lives),
			fmt.Sprintf("%d/%d", res.Counters.Coins, res.Counters.TotalCoins),
			fmt.Sprint(res.Enemies),
		}},
	))
	if rec.StartTime != "" {
		b.WriteString("\n" + dimStyle.Render("Recorded "+rec.StartTime) + "\n")
	}
	return b.String()
}

// platformer is a side-scrolling tile platformer.
//
// Usage:
//
//	platformer play            - Play from level 1
//	platformer replay <file>   - Run a recorded replay headless and print the result
//	platformer scores          - Show the best recorded runs
//	platformer levels          - List the level sequence
//
// Global flags:
//
//	--configs <dir>  - Load configs from a directory instead of the built-in set
//	--db <path>      - Set database path (default: ~/.tilerun/scores.db)
//	--debug          - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfigs string
	flagDBPath  string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A side-scrolling tile platformer",
	Long: `Run, jump and stomp through a sequence of tile levels.

Available commands:
  play     - Play the game
  replay   - Replay a recording without a window
  scores   - View high scores
  levels   - List the level sequence

Examples:
  platformer play --difficulty hard
  platformer play --configs ./configs --watch
  platformer replay replay_20250101_120000.json
  platformer scores`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigs, "configs", "", "Config directory (default: built-in configs)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilerun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/younwookim/tilerun/internal/domain/entity"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level sequence",
	Long:  `Shows every level in play order with its size and contents.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	loader, err := newLoader(flagConfigs)
	if err != nil {
		return err
	}
	data, err := loadGame(loader)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Print(formatLevels(data))
	return nil
}

func formatLevels(data *gameData) string {
	rows := make([][]string, 0, len(data.levels))
	for i, lvl := range data.levels {
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			data.names[i],
			lvl.Name,
			string(lvl.Theme),
			fmt.Sprint(lvl.Grid.Cols),
			fmt.Sprint(lvl.Grid.Count(entity.TileCoin)),
			fmt.Sprint(len(lvl.Enemies)),
			fmt.Sprintf("x%g", lvl.ScoreMultiplier()),
		})
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Levels") + "\n\n")
	b.WriteString(renderTable([]string{"#", "ID", "Name", "Theme", "Width", "Coins", "Enemies", "Coin x"}, rows))
	b.WriteString("\nRun 'platformer play' to start from level 1.\n")
	return b.String()
}

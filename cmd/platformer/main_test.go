package main

import (
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilerun/internal/application/replay"
	"github.com/younwookim/tilerun/internal/application/state"
	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
	"github.com/younwookim/tilerun/internal/infrastructure/storage"
)

func loadBuiltin(t *testing.T) *gameData {
	t.Helper()
	loader, err := newLoader("")
	require.NoError(t, err)
	data, err := loadGame(loader)
	require.NoError(t, err)
	return data
}

func TestLoadGame_Builtin(t *testing.T) {
	data := loadBuiltin(t)

	assert.Equal(t, []string{"level1", "desert", "volcano"}, data.names)
	require.Len(t, data.levels, 3)

	first := data.levels[0]
	assert.Equal(t, "Green Hills", first.Name)
	assert.Equal(t, 100, first.Grid.Cols)
	assert.Equal(t, 12, first.Grid.Count(entity.TileCoin))
	assert.Len(t, first.Enemies, 10)

	assert.Equal(t, 1.5, data.levels[1].ScoreMultiplier())
	assert.Equal(t, entity.ThemeVolcano, data.levels[2].Theme)
}

func TestGameData_IndexOf(t *testing.T) {
	data := loadBuiltin(t)
	assert.Equal(t, 1, data.indexOf("level1"))
	assert.Equal(t, 3, data.indexOf("volcano"))
	assert.Equal(t, 0, data.indexOf("missing"))
}

func TestReloadLevel(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)
	data, err := loadGame(loader)
	require.NoError(t, err)

	index, level, err := reloadLevel(loader, data, "desert")
	require.NoError(t, err)
	assert.Equal(t, 2, index)
	assert.Equal(t, "Dune Run", level.Name)

	index, level, err = reloadLevel(loader, data, "unlisted")
	require.NoError(t, err)
	assert.Equal(t, 0, index)
	assert.Nil(t, level)
}

// levelJSON is a minimal 14-row level whose id is unrelated to its file name
func levelJSON(id, name string) string {
	rows := make([]string, config.LevelRows)
	for i := range rows {
		rows[i] = `"....."`
	}
	rows[config.LevelRows-1] = `"#####"`
	return `{"id": "` + id + `", "name": "` + name + `", "theme": "grassland",
  "layers": {"collision": [` + strings.Join(rows, ",") + `]},
  "tileMapping": {"#": {"type": "ground"}}}`
}

func TestReloadLevel_KeyedByFileName(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.json":       {Data: []byte(`{}`)},
		"levels/index.json":  {Data: []byte(`{"levels": ["cave"]}`)},
		"levels/cave.json":   {Data: []byte(levelJSON("underground", "Deep Cave"))},
		"levels/orphan.json": {Data: []byte(levelJSON("cave", "Orphan"))},
	}
	loader := config.NewFSLoader(fsys, "configs")
	data, err := loadGame(loader)
	require.NoError(t, err)
	assert.Equal(t, []string{"cave"}, data.names)

	index, level, err := reloadLevel(loader, data, "cave")
	require.NoError(t, err)
	assert.Equal(t, 1, index)
	require.NotNil(t, level)
	assert.Equal(t, "Deep Cave", level.Name)

	index, level, err = reloadLevel(loader, data, "underground")
	require.NoError(t, err)
	assert.Equal(t, 0, index)
	assert.Nil(t, level)

	index, _, err = reloadLevel(loader, data, "orphan")
	require.NoError(t, err)
	assert.Equal(t, 0, index)
}

func TestPickDifficulty(t *testing.T) {
	got, err := pickDifficulty("easy", "")
	require.NoError(t, err)
	assert.Equal(t, "easy", got)

	got, err = pickDifficulty("easy", "hard")
	require.NoError(t, err)
	assert.Equal(t, "hard", got)

	_, err = pickDifficulty("normal", "nightmare")
	assert.ErrorContains(t, err, `unknown difficulty "nightmare"`)
}

func TestPlayback_Idle(t *testing.T) {
	data := loadBuiltin(t)
	rec := replay.CreateTestReplayData(60)

	res := playback(data, &rec)

	assert.Equal(t, 60, res.Frames)
	assert.Equal(t, state.StatePlaying, res.State)
	assert.Equal(t, 1, res.Level)
	assert.Equal(t, 3, res.Counters.Lives)
	assert.Equal(t, 12, res.Counters.TotalCoins)
}

func TestPlayback_Difficulty(t *testing.T) {
	data := loadBuiltin(t)
	rec := replay.CreateTestReplayData(1)
	rec.Difficulty = "easy"

	res := playback(data, &rec)

	assert.Equal(t, 5, res.Counters.Lives)
}

func TestFormatResult(t *testing.T) {
	rec := replay.CreateTestReplayData(1)
	res := replay.Result{Frames: 120, State: state.StateGameOver, Level: 2}
	res.Counters.Score = 4300

	out := formatResult("run.json", &rec, res)

	assert.Contains(t, out, "run.json")
	assert.Contains(t, out, "GameOver")
	assert.Contains(t, out, "4300")
}

func TestFormatLevels(t *testing.T) {
	out := formatLevels(loadBuiltin(t))

	assert.Contains(t, out, "Green Hills")
	assert.Contains(t, out, "Dune Run")
	assert.Contains(t, out, "Magma Core")
	assert.Contains(t, out, "x1.5")
}

func TestFormatScores(t *testing.T) {
	assert.Contains(t, formatScores(nil), "No scores recorded yet.")

	out := formatScores([]storage.ScoreEntry{
		{Score: 5000, Difficulty: "hard", Level: 3, CreatedAt: time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC)},
		{Score: 1200, Difficulty: "easy", Level: 1, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	})
	assert.Contains(t, out, "2025-01-02 03:04")
	assert.Contains(t, out, "Best: 5000")
	assert.Contains(t, out, "hard")
}

func TestRenderTable_PadsColumns(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"long cell", "x"}})
	assert.Contains(t, out, "long cell")
	assert.Contains(t, out, "A        ")
}

func TestPlayback_CountsEnemies(t *testing.T) {
	data := loadBuiltin(t)
	rec := replay.CreateTestReplayData(10)

	res := playback(data, &rec)

	assert.Equal(t, 10, res.Enemies)
}

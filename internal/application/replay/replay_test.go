package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilerun/internal/application/session"
	"github.com/younwookim/tilerun/internal/application/state"
	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

// testLevel is 30 columns of ground; the player lands on cells (1..2, 11..12)
func testLevel(name string, edit func(g *entity.TileGrid)) *entity.Level {
	grid := entity.NewTileGrid(30)
	for x := 0; x < 30; x++ {
		grid.Set(x, entity.GroundRow, entity.TileGround)
	}
	if edit != nil {
		edit(grid)
	}
	return &entity.Level{
		Name:   name,
		Theme:  entity.ThemeGrassland,
		Grid:   grid,
		StartX: entity.DefaultStartX,
		StartY: entity.DefaultStartY,
	}
}

func newSession(levels ...*entity.Level) *session.Session {
	return session.New(config.DefaultPhysicsConfig(), levels)
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Frames: []FrameInput{
			{F: 0, R: true},
			{F: 1, L: true, J: true},
			{F: 2, C: CmdPause},
		},
	}
	r := NewReplayer(data)
	assert.Equal(t, 3, r.TotalFrames())

	in, ok := r.GetInput()
	require.True(t, ok)
	assert.True(t, in.Right)
	assert.False(t, in.Left)

	in, ok = r.GetInput()
	require.True(t, ok)
	assert.True(t, in.Left)
	assert.True(t, in.Jump)

	in, ok = r.GetInput()
	require.True(t, ok)
	assert.Equal(t, CmdPause, in.Command)
	assert.Equal(t, 3, r.CurrentFrame())

	_, ok = r.GetInput()
	assert.False(t, ok)

	r.Reset()
	assert.Equal(t, 0, r.CurrentFrame())
}

func TestFrameInput_OmitsEmptyFields(t *testing.T) {
	raw, err := json.Marshal(FrameInput{F: 7})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":7}`, string(raw))

	raw, err = json.Marshal(FrameInput{F: 8, R: true, C: CmdNext})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":8,"r":true,"c":"next"}`, string(raw))
}

func TestLoadReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	data := CreateTestReplayData(5)
	data.Difficulty = "hard"
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "hard", loaded.Difficulty)
	assert.Len(t, loaded.Frames, 5)
	assert.Equal(t, 4, loaded.Frames[4].F)
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadReplay(path)
	assert.Error(t, err)
}

func TestRun_IdleCollectsCoin(t *testing.T) {
	level := testLevel("one", func(g *entity.TileGrid) { g.Set(1, 12, entity.TileCoin) })
	sess := newSession(level)

	res := Run(sess, NewReplayer(CreateTestReplayData(60)))

	assert.Equal(t, 60, res.Frames)
	assert.Equal(t, state.StatePlaying, res.State)
	assert.Equal(t, 1, res.Counters.Coins)
	assert.Equal(t, 100, res.Counters.Score)
	assert.Equal(t, 1, res.Counters.Seconds)
	assert.Equal(t, 0, res.Enemies)
}

func TestRun_NextLevelCommand(t *testing.T) {
	goal := testLevel("one", func(g *entity.TileGrid) { g.Set(1, 12, entity.TileFlag) })
	second := testLevel("two", nil)
	sess := newSession(goal, second)

	data := CreateTestReplayData(60)
	data.Frames[40].C = CmdNext

	res := Run(sess, NewReplayer(data))

	assert.Equal(t, state.StatePlaying, res.State)
	assert.Equal(t, 2, res.Level)
	assert.Equal(t, 1000, res.Counters.Score)
}

func TestRun_PauseStopsSimulation(t *testing.T) {
	goal := testLevel("one", func(g *entity.TileGrid) { g.Set(1, 12, entity.TileFlag) })
	sess := newSession(goal)

	data := CreateTestReplayData(60)
	data.Frames[0].C = CmdPause

	res := Run(sess, NewReplayer(data))

	assert.Equal(t, state.StatePaused, res.State)
	assert.Equal(t, 0, res.Counters.Score)
	assert.Equal(t, float64(entity.DefaultStartY), sess.World().Player.Y)
}

func TestRun_Deterministic(t *testing.T) {
	data := CreateTestReplayData(180)
	for i := 10; i < 120; i++ {
		data.Frames[i].R = true
	}
	for i := 30; i < 35; i++ {
		data.Frames[i].J = true
	}
	build := func() *entity.Level {
		return testLevel("one", func(g *entity.TileGrid) {
			g.Set(6, 12, entity.TileCoin)
			g.Set(10, 10, entity.TileCoin)
			g.Set(15, 12, entity.TileBrick)
		})
	}

	s1 := newSession(build())
	s2 := newSession(build())
	r1 := Run(s1, NewReplayer(data))
	r2 := Run(s2, NewReplayer(data))

	assert.Equal(t, r1, r2)
	assert.Equal(t, s1.World().Player.X, s2.World().Player.X)
	assert.Equal(t, s1.World().Player.Y, s2.World().Player.Y)
}

package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

const groundedEnemyY = 13*32 - 32

func updateEnemies(grid *entity.TileGrid, player *entity.Player, enemies ...*entity.Enemy) *Frame {
	f := newTestFrame(grid, player, 3)
	NewEnemySystem(config.DefaultPhysicsConfig()).Update(f, enemies)
	return f
}

// farPlayer is out of reach of every enemy in these tests
func farPlayer() *entity.Player {
	return entity.NewPlayer(2000, 0)
}

func TestEnemy_WalkerPatrols(t *testing.T) {
	e := entity.NewEnemy(1, 100, groundedEnemyY, entity.EnemyWalker)

	updateEnemies(flatGrid(20), farPlayer(), e)

	assert.Equal(t, 101.0, e.X)
	assert.Equal(t, 1.0, e.VX)
	assert.Equal(t, float64(groundedEnemyY), e.Y)
	assert.Equal(t, 0.0, e.VY)
}

func TestEnemy_WalkerTurnsAtWall(t *testing.T) {
	grid := flatGrid(20)
	grid.Set(11, 12, entity.TileBrick)
	e := entity.NewEnemy(1, 320, groundedEnemyY, entity.EnemyWalker)

	updateEnemies(grid, farPlayer(), e)

	assert.Equal(t, -1, e.Direction)
	assert.Equal(t, -1.0, e.VX)
}

func TestEnemy_WalkerTurnsAtLedge(t *testing.T) {
	grid := flatGrid(20)
	grid.Set(11, entity.GroundRow, entity.TileAir)
	e := entity.NewEnemy(1, 340, groundedEnemyY, entity.EnemyWalker)

	updateEnemies(grid, farPlayer(), e)

	assert.Equal(t, -1, e.Direction)
	assert.Equal(t, -1.0, e.VX)
}

func TestEnemy_GravityUnclamped(t *testing.T) {
	e := entity.NewEnemy(1, 100, 0, entity.EnemyWalker)
	e.VY = 20

	updateEnemies(entity.NewTileGrid(20), farPlayer(), e)

	assert.Equal(t, 20.5, e.VY)
	assert.Equal(t, 20.5, e.Y)
}

func TestEnemy_StompTieBreak(t *testing.T) {
	t.Run("falling player stomps", func(t *testing.T) {
		e := entity.NewEnemy(7, 100, groundedEnemyY, entity.EnemyWalker)
		p := entity.NewPlayer(100, 350)
		p.VY = 5

		f := updateEnemies(flatGrid(20), p, e)

		assert.True(t, e.Defeated)
		assert.Equal(t, -8.0, p.VY)
		assert.Equal(t, []Event{EnemyDefeated{ID: 7}}, f.Events())
		assert.False(t, p.Invulnerable)
	})

	t.Run("rising player is hurt", func(t *testing.T) {
		e := entity.NewEnemy(7, 100, groundedEnemyY, entity.EnemyWalker)
		p := entity.NewPlayer(100, 350)
		p.VY = -3

		f := updateEnemies(flatGrid(20), p, e)

		assert.False(t, e.Defeated)
		require.Len(t, f.Events(), 1)
		assert.Equal(t, HazardHit{Cause: CauseEnemy, Tile: entity.TileAir, LivesLeft: 2}, f.Events()[0])
		assert.True(t, p.Invulnerable)
	})

	t.Run("falling player below enemy top is hurt", func(t *testing.T) {
		e := entity.NewEnemy(7, 100, groundedEnemyY, entity.EnemyWalker)
		p := entity.NewPlayer(100, 390)
		p.VY = 5

		f := updateEnemies(flatGrid(20), p, e)

		assert.False(t, e.Defeated)
		require.Len(t, f.Events(), 1)
		assert.IsType(t, HazardHit{}, f.Events()[0])
	})

	t.Run("invulnerable player passes through", func(t *testing.T) {
		e := entity.NewEnemy(7, 100, groundedEnemyY, entity.EnemyWalker)
		p := entity.NewPlayer(100, 350)
		p.VY = 5
		p.Invincible = true

		f := updateEnemies(flatGrid(20), p, e)

		assert.False(t, e.Defeated)
		assert.Empty(t, f.Events())
	})
}

func TestEnemy_DefeatedSkipped(t *testing.T) {
	e := entity.NewEnemy(1, 100, groundedEnemyY, entity.EnemyWalker)
	e.Defeat()

	updateEnemies(flatGrid(20), entity.NewPlayer(100, 350), e)

	assert.Equal(t, 100.0, e.X)
}

package system

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/tilerun/internal/domain/entity"
)

func overlapsSolid(b *entity.Body, grid *entity.TileGrid) bool {
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			if grid.TileAt(col, row).IsSolid() && b.Bounds().Overlaps(grid.CellRect(col, row)) {
				return true
			}
		}
	}
	return false
}

func TestResolveTiles_Landing(t *testing.T) {
	grid := flatGrid(10)
	body := &entity.Body{X: 50, Y: 370, VY: 8, Width: 32, Height: 48}

	c := ResolveTiles(body, grid)

	assert.True(t, c.Grounded)
	assert.Equal(t, 368.0, body.Y)
	assert.Equal(t, 0.0, body.VY)
	assert.Equal(t, 50.0, body.X)
}

func TestResolveTiles_NoTunneling(t *testing.T) {
	grid := flatGrid(10)
	for _, x := range []float64{32, 50, 64, 90} {
		for vy := 0.5; vy <= 15; vy += 0.5 {
			t.Run(fmt.Sprintf("x=%v vy=%v", x, vy), func(t *testing.T) {
				body := &entity.Body{X: x, Y: 360, VY: vy, Width: 32, Height: 48}
				body.ApplyVelocity()

				ResolveTiles(body, grid)

				assert.False(t, overlapsSolid(body, grid))
				assert.LessOrEqual(t, body.Bounds().Bottom(), 416.0)
			})
		}
	}
}

func TestResolveTiles_Wall(t *testing.T) {
	grid := flatGrid(10)
	grid.Set(4, 11, entity.TileBrick)
	grid.Set(4, 12, entity.TileBrick)

	body := &entity.Body{X: 100, Y: 368, VX: 5, Width: 32, Height: 48}
	c := ResolveTiles(body, grid)

	assert.True(t, c.Wall)
	assert.False(t, c.Grounded)
	assert.Equal(t, 96.0, body.X)
	assert.Equal(t, 0.0, body.VX)
	assert.False(t, overlapsSolid(body, grid))
}

func TestResolveTiles_WallFromRight(t *testing.T) {
	grid := flatGrid(10)
	grid.Set(4, 12, entity.TileBrick)

	body := &entity.Body{X: 155, Y: 368, VX: -5, Width: 32, Height: 48}
	ResolveTiles(body, grid)

	assert.Equal(t, 160.0, body.X)
	assert.Equal(t, 0.0, body.VX)
}

func TestResolveTiles_Ceiling(t *testing.T) {
	grid := entity.NewTileGrid(10)
	grid.Set(2, 5, entity.TileBrick)

	body := &entity.Body{X: 64, Y: 180, VY: -5, Width: 32, Height: 48}
	c := ResolveTiles(body, grid)

	assert.True(t, c.Ceiling)
	assert.Equal(t, 192.0, body.Y)
	assert.Equal(t, 0.0, body.VY)
}

func TestResolveTiles_TieResolvesVertically(t *testing.T) {
	grid := entity.NewTileGrid(10)
	grid.Set(2, 12, entity.TileBrick)

	// overlapX = 24, overlapY = 24
	body := &entity.Body{X: 56, Y: 360, VX: 2, VY: 3, Width: 32, Height: 48}
	c := ResolveTiles(body, grid)

	assert.True(t, c.Grounded)
	assert.Equal(t, 336.0, body.Y)
	assert.Equal(t, 56.0, body.X)
	assert.Equal(t, 2.0, body.VX)
}

func TestResolveTiles_TouchingIsNotOverlap(t *testing.T) {
	grid := flatGrid(10)
	body := &entity.Body{X: 64, Y: 368, VY: 0, Width: 32, Height: 48}

	c := ResolveTiles(body, grid)

	assert.False(t, c.Grounded)
	assert.Equal(t, 368.0, body.Y)
}

func TestResolvePlayer(t *testing.T) {
	t.Run("landing ends jump", func(t *testing.T) {
		p := entity.NewPlayer(64, 372)
		p.State = entity.PlayerJump
		p.VY = 4

		ResolvePlayer(p, flatGrid(10))

		assert.True(t, p.Grounded)
		assert.Equal(t, entity.PlayerIdle, p.State)
	})

	t.Run("landing keeps run", func(t *testing.T) {
		p := entity.NewPlayer(64, 372)
		p.State = entity.PlayerRun

		ResolvePlayer(p, flatGrid(10))

		assert.Equal(t, entity.PlayerRun, p.State)
	})

	t.Run("grounded cleared in the air", func(t *testing.T) {
		p := entity.NewPlayer(64, 100)
		p.Grounded = true

		ResolvePlayer(p, flatGrid(10))

		assert.False(t, p.Grounded)
	})
}

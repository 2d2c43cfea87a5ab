package system

import (
	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

// flatGrid returns a grid with solid ground along the bottom row
func flatGrid(cols int) *entity.TileGrid {
	grid := entity.NewTileGrid(cols)
	for x := 0; x < cols; x++ {
		grid.Set(x, entity.GroundRow, entity.TileGround)
	}
	return grid
}

func flatLevel(cols int) *entity.Level {
	return &entity.Level{
		Name:   "flat",
		Theme:  entity.ThemeGrassland,
		Grid:   flatGrid(cols),
		StartX: entity.DefaultStartX,
		StartY: entity.DefaultStartY,
	}
}

func newTestFrame(grid *entity.TileGrid, player *entity.Player, lives int) *Frame {
	return &Frame{
		Grid:     grid,
		Player:   player,
		Powerups: NewPowerupSystem(config.DefaultPhysicsConfig()),
		lives:    lives,
		startX:   entity.DefaultStartX,
		startY:   entity.DefaultStartY,
	}
}

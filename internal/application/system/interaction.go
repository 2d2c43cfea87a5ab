package system

import "github.com/younwookim/tilerun/internal/domain/entity"

// InteractionSystem handles the player touching non-solid tiles
type InteractionSystem struct {
	worldHeight float64
	duration    int
}

// NewInteractionSystem creates a new interaction system. Falling below
// worldHeight counts as a hazard.
func NewInteractionSystem(worldHeight float64, powerupDuration int) *InteractionSystem {
	return &InteractionSystem{worldHeight: worldHeight, duration: powerupDuration}
}

// Update scans the grid in row-major order and applies every tile the
// player overlaps. Consumed tiles are cleared before the scan moves on.
func (s *InteractionSystem) Update(f *Frame) {
	grid := f.Grid
	player := f.Player

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			tile := grid.TileAt(col, row)
			traits := tile.Traits()
			if traits.Solid || traits.Category == entity.CategoryNone {
				continue
			}
			if !player.Bounds().Overlaps(grid.CellRect(col, row)) {
				continue
			}

			if traits.Consumable {
				grid.Set(col, row, entity.TileAir)
			}

			switch traits.Category {
			case entity.CategoryCoin:
				f.Emit(CoinCollected{Col: col, Row: row})
			case entity.CategoryGoal:
				f.Emit(GoalReached{Col: col, Row: row})
			case entity.CategoryHazard:
				f.HurtPlayer(CauseTile, tile)
			case entity.CategoryPowerup:
				f.Emit(f.Powerups.Activate(player, traits.Powerup, s.duration)...)
				f.Emit(PowerupCollected{Type: traits.Powerup, Duration: s.duration, Col: col, Row: row})
			}
		}
	}

	if player.Y > s.worldHeight {
		f.HurtPlayer(CauseFall, entity.TileAir)
	}
}

package system

import (
	"math"

	"github.com/younwookim/tilerun/internal/domain/entity"
)

// Contact reports what a body touched while being resolved
type Contact struct {
	Grounded bool // landed on top of a solid tile
	Wall     bool
	Ceiling  bool
}

// ResolveTiles pushes the body out of every solid tile it overlaps.
// Tiles are visited in row-major order and each overlap is resolved on the
// axis of least penetration (ties resolve vertically).
func ResolveTiles(body *entity.Body, grid *entity.TileGrid) Contact {
	var c Contact
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			if !grid.TileAt(col, row).IsSolid() {
				continue
			}
			tile := grid.CellRect(col, row)
			b := body.Bounds()
			if !b.Overlaps(tile) {
				continue
			}

			overlapX := math.Min(b.Right()-tile.X, tile.Right()-b.X)
			overlapY := math.Min(b.Bottom()-tile.Y, tile.Bottom()-b.Y)

			if overlapX < overlapY {
				if body.X < tile.X {
					body.X = tile.X - body.Width
				} else {
					body.X = tile.Right()
				}
				body.VX = 0
				c.Wall = true
				continue
			}

			if body.Y < tile.Y {
				body.Y = tile.Y - body.Height
				c.Grounded = true
			} else {
				body.Y = tile.Bottom()
				c.Ceiling = true
			}
			body.VY = 0
		}
	}
	return c
}

// ResolvePlayer runs tile resolution for the player and updates its
// grounded flag and state
func ResolvePlayer(player *entity.Player, grid *entity.TileGrid) Contact {
	player.Grounded = false
	c := ResolveTiles(&player.Body, grid)
	if c.Grounded {
		player.Grounded = true
		if player.State == entity.PlayerJump {
			player.State = entity.PlayerIdle
		}
	}
	return c
}

package entity

import "math"

// TileSize is the edge length of a tile in pixels, shared by all levels
const TileSize = 32

// GridRows is the fixed number of rows in every level
const GridRows = 14

// TileGrid holds one level's tile codes, row-major
type TileGrid struct {
	Cols     int
	Rows     int
	TileSize int
	Tiles    [][]TileType
}

// NewTileGrid creates an all-air grid with the given number of columns
func NewTileGrid(cols int) *TileGrid {
	tiles := make([][]TileType, GridRows)
	for y := range tiles {
		tiles[y] = make([]TileType, cols)
	}
	return &TileGrid{
		Cols:     cols,
		Rows:     GridRows,
		TileSize: TileSize,
		Tiles:    tiles,
	}
}

// TileAt returns the tile at the given tile coordinates.
// Coordinates outside the grid read as air.
func (g *TileGrid) TileAt(col, row int) TileType {
	if row < 0 || row >= len(g.Tiles) || col < 0 || col >= len(g.Tiles[row]) {
		return TileAir
	}
	return g.Tiles[row][col]
}

// TileAtPixel returns the tile containing the given pixel coordinates
func (g *TileGrid) TileAtPixel(px, py float64) TileType {
	col, row := g.CellAt(px, py)
	return g.TileAt(col, row)
}

// CellAt converts pixel coordinates to tile coordinates using floor division
func (g *TileGrid) CellAt(px, py float64) (col, row int) {
	ts := float64(g.TileSize)
	return floorDiv(px, ts), floorDiv(py, ts)
}

// Set writes a tile. Writes outside the grid are ignored.
func (g *TileGrid) Set(col, row int, t TileType) {
	if row < 0 || row >= len(g.Tiles) || col < 0 || col >= len(g.Tiles[row]) {
		return
	}
	g.Tiles[row][col] = t
}

// IsSolidAt checks if the tile at pixel coordinates is solid
func (g *TileGrid) IsSolidAt(px, py float64) bool {
	return g.TileAtPixel(px, py).IsSolid()
}

// CellRect returns the pixel rectangle covered by a cell
func (g *TileGrid) CellRect(col, row int) Rect {
	ts := float64(g.TileSize)
	return Rect{X: float64(col) * ts, Y: float64(row) * ts, W: ts, H: ts}
}

// PixelWidth returns the grid width in pixels
func (g *TileGrid) PixelWidth() float64 { return float64(g.Cols * g.TileSize) }

// PixelHeight returns the grid height in pixels
func (g *TileGrid) PixelHeight() float64 { return float64(g.Rows * g.TileSize) }

// Count returns how many cells hold the given tile type
func (g *TileGrid) Count(t TileType) int {
	n := 0
	for _, row := range g.Tiles {
		for _, tile := range row {
			if tile == t {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the grid
func (g *TileGrid) Clone() *TileGrid {
	tiles := make([][]TileType, len(g.Tiles))
	for y, row := range g.Tiles {
		tiles[y] = append([]TileType(nil), row...)
	}
	return &TileGrid{
		Cols:     g.Cols,
		Rows:     g.Rows,
		TileSize: g.TileSize,
		Tiles:    tiles,
	}
}

func floorDiv(v, size float64) int {
	return int(math.Floor(v / size))
}

package entity

// Theme is a cosmetic level tag
type Theme string

const (
	ThemeGrassland Theme = "grassland"
	ThemeForest    Theme = "forest"
	ThemeDesert    Theme = "desert"
	ThemeIce       Theme = "ice"
	ThemeVolcano   Theme = "volcano"
	ThemeSpace     Theme = "space"
)

// Default player start position
const (
	DefaultStartX = 50
	DefaultStartY = 300
)

// EnemySpawn describes an enemy placed in a level template
type EnemySpawn struct {
	X, Y float64
	Type EnemyType
}

// Level is an immutable level template
type Level struct {
	Name           string
	Theme          Theme
	Grid           *TileGrid
	Enemies        []EnemySpawn
	StartX, StartY float64
	CoinMultiplier float64
}

// Instantiate returns a fresh copy of the template's grid and live enemies.
// The template itself is never modified.
func (l *Level) Instantiate() (*TileGrid, []*Enemy) {
	enemies := make([]*Enemy, 0, len(l.Enemies))
	for i, spawn := range l.Enemies {
		enemies = append(enemies, NewEnemy(EntityID(i+1), spawn.X, spawn.Y, spawn.Type))
	}
	return l.Grid.Clone(), enemies
}

// ScoreMultiplier returns the coin score multiplier, defaulting to 1
func (l *Level) ScoreMultiplier() float64 {
	if l.CoinMultiplier <= 0 {
		return 1
	}
	return l.CoinMultiplier
}

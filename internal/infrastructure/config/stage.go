package config

// LevelConfig is the root config for levels/*.json
type LevelConfig struct {
	ID             string                       `json:"id"`
	Name           string                       `json:"name"`
	Theme          string                       `json:"theme"`
	CoinMultiplier float64                      `json:"coinMultiplier,omitempty"`
	PlayerStart    *PositionConfig              `json:"playerStart,omitempty"`
	Layers         LayersConfig                 `json:"layers"`
	TileMapping    map[string]TileMappingConfig `json:"tileMapping"`
	Enemies        []EnemySpawnConfig           `json:"enemies"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayersConfig holds one string per grid row, one glyph per column
type LayersConfig struct {
	Collision []string `json:"collision"`
}

type TileMappingConfig struct {
	Type string `json:"type"`
}

type EnemySpawnConfig struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// LevelIndex lists level files in play order
type LevelIndex struct {
	Levels []string `json:"levels"`
}

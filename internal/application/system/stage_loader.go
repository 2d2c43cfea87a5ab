package system

import (
	"fmt"

	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

// LoadLevel converts a LevelConfig into a Level template
func LoadLevel(cfg *config.LevelConfig) (*entity.Level, error) {
	if err := config.ValidateLevel(cfg); err != nil {
		return nil, err
	}

	cols := len(cfg.Layers.Collision[0])
	grid := entity.NewTileGrid(cols)
	for y, row := range cfg.Layers.Collision {
		for x, char := range row {
			grid.Set(x, y, glyphTile(cfg, string(char)))
		}
	}

	enemies := make([]entity.EnemySpawn, 0, len(cfg.Enemies))
	for _, e := range cfg.Enemies {
		enemies = append(enemies, entity.EnemySpawn{X: e.X, Y: e.Y, Type: entity.EnemyType(e.Type)})
	}

	startX, startY := float64(entity.DefaultStartX), float64(entity.DefaultStartY)
	if cfg.PlayerStart != nil {
		startX, startY = cfg.PlayerStart.X, cfg.PlayerStart.Y
	}

	theme := entity.Theme(cfg.Theme)
	if theme == "" {
		theme = entity.ThemeGrassland
	}

	name := cfg.Name
	if name == "" {
		name = cfg.ID
	}

	return &entity.Level{
		Name:           name,
		Theme:          theme,
		Grid:           grid,
		Enemies:        enemies,
		StartX:         startX,
		StartY:         startY,
		CoinMultiplier: cfg.CoinMultiplier,
	}, nil
}

// LoadLevels converts configs in order, failing on the first bad level
func LoadLevels(cfgs []*config.LevelConfig) ([]*entity.Level, error) {
	levels := make([]*entity.Level, 0, len(cfgs))
	for _, cfg := range cfgs {
		level, err := LoadLevel(cfg)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", cfg.ID, err)
		}
		levels = append(levels, level)
	}
	return levels, nil
}

func glyphTile(cfg *config.LevelConfig, glyph string) entity.TileType {
	mapping, ok := cfg.TileMapping[glyph]
	if !ok {
		return entity.TileAir
	}
	t, _ := entity.ParseTileType(mapping.Type)
	return t
}

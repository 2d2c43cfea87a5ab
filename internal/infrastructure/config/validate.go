package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/tilerun/internal/domain/entity"
)

// LevelRows is the row count every level must have
const LevelRows = 14

// Glyphs that read as air without a mapping entry
const (
	GlyphAir   = "."
	GlyphSpace = " "
)

var knownEnemies = map[string]bool{"walker": true}

var ErrEmptyLevel = errors.New("level has no collision layer")

// ValidateLevel rejects levels that would not load as a full grid
func ValidateLevel(cfg *LevelConfig) error {
	rows := cfg.Layers.Collision
	if len(rows) == 0 {
		return ErrEmptyLevel
	}
	if len(rows) != LevelRows {
		return fmt.Errorf("collision layer has %d rows, want %d", len(rows), LevelRows)
	}

	cols := len(rows[0])
	if cols == 0 {
		return ErrEmptyLevel
	}

	for glyph, m := range cfg.TileMapping {
		if len(glyph) != 1 {
			return fmt.Errorf("tile mapping glyph %q must be one character", glyph)
		}
		if _, ok := entity.ParseTileType(m.Type); !ok {
			return fmt.Errorf("tile mapping %q has unknown type %q", glyph, m.Type)
		}
	}

	for y, row := range rows {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d columns, want %d", y, len(row), cols)
		}
		for x := 0; x < len(row); x++ {
			glyph := row[x : x+1]
			if glyph == GlyphAir || glyph == GlyphSpace {
				continue
			}
			if _, ok := cfg.TileMapping[glyph]; !ok {
				return fmt.Errorf("row %d column %d: unmapped glyph %q", y, x, glyph)
			}
		}
	}

	for i, e := range cfg.Enemies {
		if !knownEnemies[e.Type] {
			return fmt.Errorf("enemy %d has unknown type %q", i, e.Type)
		}
	}

	if cfg.CoinMultiplier < 0 {
		return fmt.Errorf("coin multiplier must not be negative")
	}

	return nil
}

package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/younwookim/tilerun/internal/application/system"
	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

// gameData is everything a session needs from the config files
type gameData struct {
	physics *config.PhysicsConfig
	names   []string // level file names, in index order
	levels  []*entity.Level
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newLoader returns a loader for dir, or for the built-in configs when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadGame reads physics and every indexed level and builds level templates
func loadGame(loader *config.Loader) (*gameData, error) {
	idx, err := loader.LoadLevelIndex()
	if err != nil {
		return nil, err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}

	levels, err := system.LoadLevels(cfg.Levels)
	if err != nil {
		return nil, err
	}

	return &gameData{
		physics: cfg.Physics,
		names:   idx.Levels,
		levels:  levels,
	}, nil
}

// indexOf returns the 1-based position of a level file name, 0 if absent
func (g *gameData) indexOf(name string) int {
	for i, n := range g.names {
		if n == name {
			return i + 1
		}
	}
	return 0
}

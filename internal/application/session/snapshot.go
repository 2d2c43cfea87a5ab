package session

import (
	"github.com/younwookim/tilerun/internal/application/state"
	"github.com/younwookim/tilerun/internal/application/system"
	"github.com/younwookim/tilerun/internal/domain/entity"
)

// Snapshot is a read-only view of the session for rendering.
// Grid is shared with the live world and must not be modified.
type Snapshot struct {
	State     state.GameState
	Grid      *entity.TileGrid
	Player    entity.Player
	Enemies   []entity.Enemy
	CameraX   float64
	Counters  Counters
	Powerup   *system.ActivePowerup
	LevelName string
	Theme     entity.Theme
}

// Snapshot copies the current session state
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:    s.state,
		CameraX:  s.cameraX,
		Counters: s.counters(),
	}
	if s.world == nil {
		return snap
	}

	snap.Grid = s.world.Grid
	snap.Player = *s.world.Player
	snap.Enemies = make([]entity.Enemy, 0, len(s.world.Enemies))
	for _, e := range s.world.Enemies {
		if e.IsActive() {
			snap.Enemies = append(snap.Enemies, *e)
		}
	}
	if p, ok := s.world.Powerups.Active(); ok {
		snap.Powerup = &p
	}
	lvl := s.currentLevel()
	snap.LevelName = lvl.Name
	snap.Theme = lvl.Theme
	return snap
}

// State returns the current game state
func (s *Session) State() state.GameState {
	return s.state
}

// Counters returns the current counters
func (s *Session) Counters() Counters {
	return s.counters()
}

// Level returns the 1-based index of the current level
func (s *Session) Level() int {
	return s.level
}

// LevelCount returns the number of levels in the sequence
func (s *Session) LevelCount() int {
	return len(s.levels)
}

// World exposes the live world for tests and tooling
func (s *Session) World() *system.World {
	return s.world
}

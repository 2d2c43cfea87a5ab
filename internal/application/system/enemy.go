package system

import (
	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

// EnemySystem updates enemy movement and player contact
type EnemySystem struct {
	config *config.PhysicsConfig
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(cfg *config.PhysicsConfig) *EnemySystem {
	return &EnemySystem{config: cfg}
}

// Update advances every active enemy in list order
func (s *EnemySystem) Update(f *Frame, enemies []*entity.Enemy) {
	for _, e := range enemies {
		if !e.IsActive() {
			continue
		}
		if e.Type == entity.EnemyWalker {
			s.updateWalker(e, f.Grid)
		}
		s.applyGravity(e, f.Grid)
		s.checkPlayer(f, e)
	}
}

// updateWalker patrols and turns at ledges and walls
func (s *EnemySystem) updateWalker(e *entity.Enemy, grid *entity.TileGrid) {
	e.X += e.VX

	below := grid.TileAtPixel(e.X+e.Width/2, e.Y+e.Height+1)
	aheadX := e.X
	if e.Direction > 0 {
		aheadX += e.Width
	}
	ahead := grid.TileAtPixel(aheadX, e.Y+e.Height/2)

	if below == entity.TileAir || ahead.IsSolid() {
		e.Direction *= -1
		e.VX *= -1
	}
}

// applyGravity pulls the enemy down onto the ground row
func (s *EnemySystem) applyGravity(e *entity.Enemy, grid *entity.TileGrid) {
	e.VY += s.config.Physics.Gravity
	e.Y += e.VY

	groundY := float64(entity.GroundRow*grid.TileSize) - e.Height
	if e.Y >= groundY {
		e.Y = groundY
		e.VY = 0
	}
}

// checkPlayer resolves contact: a falling player above the enemy stomps
// it, any other contact hurts the player
func (s *EnemySystem) checkPlayer(f *Frame, e *entity.Enemy) {
	player := f.Player
	if player.IsInvulnerable() || !player.Bounds().Overlaps(e.Bounds()) {
		return
	}

	if player.VY > 0 && player.Y < e.Y {
		e.Defeat()
		player.VY = s.config.Physics.StompBounce
		f.Emit(EnemyDefeated{ID: e.ID})
		return
	}
	f.HurtPlayer(CauseEnemy, entity.TileAir)
}

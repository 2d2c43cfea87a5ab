package system

import (
	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

// PhysicsSystem integrates player motion for one frame
type PhysicsSystem struct {
	config *config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// UpdatePlayer applies input, gravity and velocity.
// Returns true if the player jumped this frame.
func (s *PhysicsSystem) UpdatePlayer(player *entity.Player, input InputState) bool {
	s.handleMovement(player, input)
	jumped := s.handleJump(player, input)

	player.VY += s.config.Physics.Gravity
	if player.VY > s.config.Physics.MaxFallSpeed {
		player.VY = s.config.Physics.MaxFallSpeed
	}

	player.ApplyVelocity()
	return jumped
}

// handleMovement handles horizontal movement; left wins when both are held
func (s *PhysicsSystem) handleMovement(player *entity.Player, input InputState) {
	switch {
	case input.Left:
		player.VX = -player.Speed
		player.Direction = -1
		player.State = entity.PlayerRun
	case input.Right:
		player.VX = player.Speed
		player.Direction = 1
		player.State = entity.PlayerRun
	default:
		player.VX *= s.config.Physics.Friction
		player.State = entity.PlayerIdle
	}
}

func (s *PhysicsSystem) handleJump(player *entity.Player, input InputState) bool {
	if !input.Jump || !player.Grounded {
		return false
	}
	player.VY = -player.JumpPower
	player.Grounded = false
	player.State = entity.PlayerJump
	return true
}

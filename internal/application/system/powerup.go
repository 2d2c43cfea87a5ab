package system

import (
	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

// ActivePowerup is the powerup currently applied to the player
type ActivePowerup struct {
	Type      entity.PowerupType
	Duration  int
	Remaining int
}

// PowerupSystem applies and reverts timed player powerups.
// At most one powerup is active; activating another first expires the
// current one so stat changes never stack.
type PowerupSystem struct {
	config *config.PhysicsConfig
	active *ActivePowerup
}

// NewPowerupSystem creates a new powerup system
func NewPowerupSystem(cfg *config.PhysicsConfig) *PowerupSystem {
	return &PowerupSystem{config: cfg}
}

// Active returns the active powerup, if any
func (s *PowerupSystem) Active() (ActivePowerup, bool) {
	if s.active == nil {
		return ActivePowerup{}, false
	}
	return *s.active, true
}

// Activate applies a powerup for duration frames
func (s *PowerupSystem) Activate(player *entity.Player, t entity.PowerupType, duration int) []Event {
	if t == entity.PowerupNone {
		return nil
	}
	events := s.Expire(player)

	switch t {
	case entity.PowerupSpeed:
		player.Speed *= s.config.Powerups.SpeedMultiplier
	case entity.PowerupJump:
		player.JumpPower *= s.config.Powerups.JumpMultiplier
	case entity.PowerupInvincible:
		player.Invincible = true
	}
	s.active = &ActivePowerup{Type: t, Duration: duration, Remaining: duration}
	return events
}

// Tick counts the active powerup down and reverts it at zero
func (s *PowerupSystem) Tick(player *entity.Player) []Event {
	if s.active == nil {
		return nil
	}
	s.active.Remaining--
	if s.active.Remaining > 0 {
		return nil
	}
	return s.Expire(player)
}

// Expire reverts the active powerup immediately
func (s *PowerupSystem) Expire(player *entity.Player) []Event {
	if s.active == nil {
		return nil
	}
	t := s.active.Type
	switch t {
	case entity.PowerupSpeed:
		player.Speed /= s.config.Powerups.SpeedMultiplier
	case entity.PowerupJump:
		player.JumpPower /= s.config.Powerups.JumpMultiplier
	case entity.PowerupInvincible:
		player.Invincible = false
	}
	s.active = nil
	return []Event{PowerupExpired{Type: t}}
}

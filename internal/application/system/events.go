package system

import "github.com/younwookim/tilerun/internal/domain/entity"

// Event is a discrete outcome of one simulation step, consumed by the session
type Event interface {
	isEvent()
}

// DamageCause identifies what hurt the player
type DamageCause int

const (
	CauseTile DamageCause = iota
	CauseFall
	CauseEnemy
)

// String returns the string representation of the damage cause
func (c DamageCause) String() string {
	switch c {
	case CauseTile:
		return "tile"
	case CauseFall:
		return "fall"
	case CauseEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Jumped is emitted when the player leaves the ground
type Jumped struct{}

func (Jumped) isEvent() {}

// CoinCollected is emitted once per coin tile
type CoinCollected struct {
	Col, Row int
}

func (CoinCollected) isEvent() {}

// GoalReached is emitted while the player overlaps a flag
type GoalReached struct {
	Col, Row int
}

func (GoalReached) isEvent() {}

// HazardHit is emitted when damage was applied and a life was lost
type HazardHit struct {
	Cause     DamageCause
	Tile      entity.TileType // set when Cause is CauseTile
	LivesLeft int
}

func (HazardHit) isEvent() {}

// PowerupCollected is emitted when a powerup tile is consumed
type PowerupCollected struct {
	Type     entity.PowerupType
	Duration int
	Col, Row int
}

func (PowerupCollected) isEvent() {}

// PowerupExpired is emitted when an active powerup ends, naturally or forced
type PowerupExpired struct {
	Type entity.PowerupType
}

func (PowerupExpired) isEvent() {}

// EnemyDefeated is emitted when the player stomps an enemy
type EnemyDefeated struct {
	ID entity.EntityID
}

func (EnemyDefeated) isEvent() {}

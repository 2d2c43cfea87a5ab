package entity

// Enemy dimensions and base stats
const (
	EnemyWidth      = 32
	EnemyHeight     = 32
	WalkerBaseSpeed = 1.0

	// GroundRow is the row enemies treat as flat ground
	GroundRow = 13
)

// EnemyType identifies an enemy behavior
type EnemyType string

const (
	EnemyWalker EnemyType = "walker"
)

// Enemy represents an enemy entity
type Enemy struct {
	Body
	ID       EntityID
	Type     EnemyType
	Defeated bool
}

// NewEnemy creates a new enemy. Walkers start moving right at the base speed.
func NewEnemy(id EntityID, x, y float64, enemyType EnemyType) *Enemy {
	e := &Enemy{
		Body: Body{
			X:         x,
			Y:         y,
			Width:     EnemyWidth,
			Height:    EnemyHeight,
			Direction: 1,
		},
		ID:   id,
		Type: enemyType,
	}
	if enemyType == EnemyWalker {
		e.VX = WalkerBaseSpeed
	}
	return e
}

// IsActive returns true while the enemy takes part in the simulation
func (e *Enemy) IsActive() bool {
	return !e.Defeated
}

// Defeat marks the enemy as permanently out of play
func (e *Enemy) Defeat() {
	e.Defeated = true
}

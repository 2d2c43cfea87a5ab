package entity

// Player dimensions and base stats
const (
	PlayerWidth     = 32
	PlayerHeight    = 48
	PlayerSpeed     = 5.0
	PlayerJumpPower = 15.0

	// InvulnerableFrames is the damage grace window (2 seconds at 60fps)
	InvulnerableFrames = 120
)

// PlayerState is the player's behavior state
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerRun
	PlayerJump
)

// String returns the string representation of the player state
func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "idle"
	case PlayerRun:
		return "run"
	case PlayerJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Player represents the player entity
type Player struct {
	Body

	Speed     float64
	JumpPower float64
	Grounded  bool
	State     PlayerState

	// Damage grace window
	Invulnerable     bool
	InvulnerableTime int

	// Set while an invincible powerup is active
	Invincible bool
}

// NewPlayer creates a new player with default values at pixel position x, y
func NewPlayer(x, y float64) *Player {
	return &Player{
		Body: Body{
			X:         x,
			Y:         y,
			Width:     PlayerWidth,
			Height:    PlayerHeight,
			Direction: 1,
		},
		Speed:     PlayerSpeed,
		JumpPower: PlayerJumpPower,
		State:     PlayerIdle,
	}
}

// IsInvulnerable returns true if damage should be ignored
func (p *Player) IsInvulnerable() bool {
	return p.Invulnerable || p.Invincible
}

// TickInvulnerability counts down the damage grace window
func (p *Player) TickInvulnerability() {
	if p.Invulnerable && p.InvulnerableTime > 0 {
		p.InvulnerableTime--
		if p.InvulnerableTime <= 0 {
			p.Invulnerable = false
		}
	}
}

// Hurt starts the grace window. When respawn is true the player is moved
// back to (spawnX, spawnY) and stopped. Returns false without effect if the
// player is currently invulnerable.
func (p *Player) Hurt(respawn bool, spawnX, spawnY float64) bool {
	if p.IsInvulnerable() {
		return false
	}
	p.Invulnerable = true
	p.InvulnerableTime = InvulnerableFrames
	if respawn {
		p.SetPos(spawnX, spawnY)
	}
	return true
}

package system

import (
	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

// Frame carries the per-step state shared by the systems of one World.Step
type Frame struct {
	Grid     *entity.TileGrid
	Player   *entity.Player
	Powerups *PowerupSystem

	lives          int
	startX, startY float64
	events         []Event
}

// Emit appends events in order
func (f *Frame) Emit(events ...Event) {
	f.events = append(f.events, events...)
}

// HurtPlayer applies damage unless the player is invulnerable. The player
// respawns at the level start unless this hit takes the last life.
// Returns true if a life was lost.
func (f *Frame) HurtPlayer(cause DamageCause, tile entity.TileType) bool {
	if f.lives <= 0 {
		return false
	}
	respawn := f.lives > 1
	if !f.Player.Hurt(respawn, f.startX, f.startY) {
		return false
	}
	f.lives--
	f.Emit(HazardHit{Cause: cause, Tile: tile, LivesLeft: f.lives})
	return true
}

// Events returns the events emitted so far
func (f *Frame) Events() []Event {
	return f.events
}

// World is one live level: its mutable grid, the player and the enemies
type World struct {
	config *config.PhysicsConfig

	Grid     *entity.TileGrid
	Player   *entity.Player
	Enemies  []*entity.Enemy
	Powerups *PowerupSystem

	StartX, StartY float64

	physics     *PhysicsSystem
	interaction *InteractionSystem
	enemies     *EnemySystem
}

// NewWorld instantiates a level with the given difficulty applied
func NewWorld(cfg *config.PhysicsConfig, level *entity.Level, diff config.DifficultyConfig) *World {
	grid, enemies := level.Instantiate()

	player := entity.NewPlayer(level.StartX, level.StartY)
	if diff.Speed > 0 {
		player.Speed = diff.Speed
	}
	if diff.JumpPower > 0 {
		player.JumpPower = diff.JumpPower
	}
	if diff.EnemySpeed > 0 {
		for _, e := range enemies {
			e.VX *= diff.EnemySpeed
		}
	}

	return &World{
		config:      cfg,
		Grid:        grid,
		Player:      player,
		Enemies:     enemies,
		Powerups:    NewPowerupSystem(cfg),
		StartX:      level.StartX,
		StartY:      level.StartY,
		physics:     NewPhysicsSystem(cfg),
		interaction: NewInteractionSystem(float64(cfg.Display.ScreenHeight), cfg.Powerups.Duration),
		enemies:     NewEnemySystem(cfg),
	}
}

// Step advances the world by one frame and returns the emitted events in
// order. lives is the session's life count entering the frame; it decides
// whether damage respawns the player.
func (w *World) Step(input InputState, lives int) []Event {
	f := &Frame{
		Grid:     w.Grid,
		Player:   w.Player,
		Powerups: w.Powerups,
		lives:    lives,
		startX:   w.StartX,
		startY:   w.StartY,
	}

	if w.physics.UpdatePlayer(w.Player, input) {
		f.Emit(Jumped{})
	}
	w.Player.TickInvulnerability()
	ResolvePlayer(w.Player, w.Grid)
	w.interaction.Update(f)
	f.Emit(w.Powerups.Tick(w.Player)...)

	w.enemies.Update(f, w.Enemies)

	return f.events
}

// ActiveEnemies returns the number of enemies still in play
func (w *World) ActiveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.IsActive() {
			n++
		}
	}
	return n
}

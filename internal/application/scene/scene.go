// Package scene defines the Scene interface driven by game.Game.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. game.Game forwards ebiten's Update and
// Draw to the current scene and switches scenes when Update returns one.
type Scene interface {
	// Update advances the scene by dt seconds. A non-nil next scene replaces
	// this one. Returning ebiten.Termination ends the game cleanly; any
	// other error aborts it.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced or the game stops.
	OnExit()
}

package system

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSystem polls the keyboard
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the logical actions for one frame
type InputState struct {
	Left  bool
	Right bool
	Jump  bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Jump:  anyPressed(ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

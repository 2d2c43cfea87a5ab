package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateMenu, "Menu"},
		{StateLoading, "Loading"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateGameOver, "GameOver"},
		{StateLevelComplete, "LevelComplete"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameState_IsTerminal(t *testing.T) {
	assert.True(t, StateGameOver.IsTerminal())
	assert.True(t, StateLevelComplete.IsTerminal())
	assert.False(t, StatePlaying.IsTerminal())
	assert.False(t, StatePaused.IsTerminal())
	assert.False(t, StateMenu.IsTerminal())
}

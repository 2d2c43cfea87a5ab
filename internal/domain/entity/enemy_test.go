package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnemy(t *testing.T) {
	enemy := NewEnemy(1, 300, 350, EnemyWalker)

	require.NotNil(t, enemy)
	assert.Equal(t, EntityID(1), enemy.ID)
	assert.Equal(t, 300.0, enemy.X)
	assert.Equal(t, 350.0, enemy.Y)
	assert.Equal(t, EnemyWalker, enemy.Type)
	assert.Equal(t, WalkerBaseSpeed, enemy.VX)
	assert.Equal(t, 1, enemy.Direction)
	assert.True(t, enemy.IsActive())
}

func TestEnemy_UnknownTypeStandsStill(t *testing.T) {
	enemy := NewEnemy(2, 0, 0, EnemyType("statue"))
	assert.Zero(t, enemy.VX)
}

func TestEnemy_DefeatIsTerminal(t *testing.T) {
	enemy := NewEnemy(1, 0, 0, EnemyWalker)
	enemy.Defeat()

	assert.True(t, enemy.Defeated)
	assert.False(t, enemy.IsActive())
}

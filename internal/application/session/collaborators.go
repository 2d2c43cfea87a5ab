package session

import "github.com/younwookim/tilerun/internal/domain/entity"

// Cue names a sound effect
type Cue string

const (
	CueJump          Cue = "jump"
	CueCoin          Cue = "coin"
	CueHurt          Cue = "hurt"
	CueStomp         Cue = "stomp"
	CueLevelComplete Cue = "levelComplete"
	CuePowerup       Cue = "powerup"
	CueGameOver      Cue = "gameOver"
)

// AudioSink plays cues without blocking the tick
type AudioSink interface {
	Play(cue Cue, volume float64)
}

// Counters is the HUD state pushed to the notifier on change
type Counters struct {
	Score      int
	Lives      int
	Level      int
	Coins      int
	TotalCoins int
	Seconds    int
}

// LevelStats summarizes a completed level
type LevelStats struct {
	Score      int
	Coins      int
	TotalCoins int
	Seconds    int
}

// Notifier receives UI-facing session updates
type Notifier interface {
	OnCounters(c Counters)
	OnPowerup(t entity.PowerupType, remaining int)
	OnPowerupExpired(t entity.PowerupType)
	OnGameOver(score, highScore int)
	OnLevelComplete(stats LevelStats)
}

// HighScoreStore persists the best score
type HighScoreStore interface {
	HighScore() (int, error)
	SaveHighScore(score int) error
}

type nopAudio struct{}

func (nopAudio) Play(Cue, float64) {}

type nopNotifier struct{}

func (nopNotifier) OnCounters(Counters) {}
func (nopNotifier) OnPowerup(entity.PowerupType, int) {}
func (nopNotifier) OnPowerupExpired(entity.PowerupType) {}
func (nopNotifier) OnGameOver(int, int) {}
func (nopNotifier) OnLevelComplete(LevelStats) {}

// MemoryHighScore keeps the high score in memory
type MemoryHighScore struct {
	Best int
}

func (m *MemoryHighScore) HighScore() (int, error) { return m.Best, nil }

func (m *MemoryHighScore) SaveHighScore(score int) error {
	m.Best = score
	return nil
}

package playing

import (
	"fmt"
	"sync"

	"github.com/younwookim/tilerun/internal/application/session"
	"github.com/younwookim/tilerun/internal/domain/entity"
)

// bannerFrames is how long a powerup banner stays up
const bannerFrames = 90

// HUD collects session notifications for drawing. It is handed to the
// session as its Notifier and read back by the playing scene.
type HUD struct {
	mu sync.Mutex

	counters   session.Counters
	banner     string
	bannerLeft int
	finalScore int
	highScore  int
	stats      session.LevelStats
}

// NewHUD creates an empty HUD
func NewHUD() *HUD {
	return &HUD{}
}

func (h *HUD) OnCounters(c session.Counters) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.counters = c
}

func (h *HUD) OnPowerup(t entity.PowerupType, remaining int) {
	h.show(fmt.Sprintf("%s! (%ds)", t, remaining/60))
}

func (h *HUD) OnPowerupExpired(t entity.PowerupType) {
	h.show(fmt.Sprintf("%s wore off", t))
}

func (h *HUD) OnGameOver(score, highScore int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.finalScore = score
	h.highScore = highScore
}

func (h *HUD) OnLevelComplete(stats session.LevelStats) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stats = stats
}

func (h *HUD) show(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.banner = text
	h.bannerLeft = bannerFrames
}

// Tick ages the banner by one frame
func (h *HUD) Tick() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.bannerLeft > 0 {
		h.bannerLeft--
		if h.bannerLeft == 0 {
			h.banner = ""
		}
	}
}

// Banner returns the current banner text, empty when none
func (h *HUD) Banner() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.banner
}

// Counters returns the last pushed counters
func (h *HUD) Counters() session.Counters {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.counters
}

// StatusLine is the top-left HUD text
func (h *HUD) StatusLine() string {
	c := h.Counters()
	return fmt.Sprintf("Score: %d  Lives: %d  Level: %d  Coins: %d/%d  Time: %ds",
		c.Score, c.Lives, c.Level, c.Coins, c.TotalCoins, c.Seconds)
}

// GameOverText is shown on the game over overlay
func (h *HUD) GameOverText() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return fmt.Sprintf("GAME OVER\n\nScore: %d\nHigh score: %d\n\nPress Enter to restart", h.finalScore, h.highScore)
}

// LevelCompleteText is shown on the level complete overlay
func (h *HUD) LevelCompleteText() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := h.stats
	return fmt.Sprintf("LEVEL COMPLETE\n\nScore: %d\nCoins: %d/%d\nTime: %ds\n\nPress Enter to continue",
		s.Score, s.Coins, s.TotalCoins, s.Seconds)
}

// Package session owns a play session: the level sequence, counters and
// the game state machine around the per-frame world step.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/younwookim/tilerun/internal/application/state"
	"github.com/younwookim/tilerun/internal/application/system"
	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

// Option configures a Session
type Option func(*Session)

// WithAudio sets the audio sink
func WithAudio(a AudioSink) Option {
	return func(s *Session) { s.audio = a }
}

// WithNotifier sets the UI notifier
func WithNotifier(n Notifier) Option {
	return func(s *Session) { s.notifier = n }
}

// WithHighScoreStore sets the high score store
func WithHighScoreStore(h HighScoreStore) Option {
	return func(s *Session) { s.scores = h }
}

// WithLogger sets the logger
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithDifficulty selects the difficulty by name
func WithDifficulty(name string) Option {
	return func(s *Session) { s.difficulty = name }
}

// WithVolume sets the cue volume
func WithVolume(v float64) Option {
	return func(s *Session) { s.volume = v }
}

type reload struct {
	index int
	level *entity.Level
}

// Session drives a sequence of levels
type Session struct {
	cfg        *config.PhysicsConfig
	levels     []*entity.Level
	difficulty string
	volume     float64

	state state.GameState
	world *system.World

	score      int
	lives      int
	level      int // 1-based
	coins      int
	totalCoins int
	frames     int
	cameraX    float64

	audio    AudioSink
	notifier Notifier
	scores   HighScoreStore
	logger   *log.Logger

	reloads  chan reload
	notified Counters
}

// New creates a session in the loading state. levels must not be empty.
func New(cfg *config.PhysicsConfig, levels []*entity.Level, opts ...Option) *Session {
	s := &Session{
		cfg:        cfg,
		levels:     levels,
		difficulty: "normal",
		volume:     0.5,
		state:      state.StateLoading,
		audio:      nopAudio{},
		notifier:   nopNotifier{},
		scores:     &MemoryHighScore{},
		logger:     log.New(io.Discard),
		reloads:    make(chan reload, 8),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start resets counters to the difficulty's initial values and begins level 1
func (s *Session) Start() {
	s.score = 0
	s.lives = s.cfg.DifficultyFor(s.difficulty).Lives
	s.loadLevel(1)
	s.setState(state.StatePlaying)
	s.pushCounters(true)
}

// Restart is Start after a game over or at any point during play
func (s *Session) Restart() {
	if s.state == state.StateMenu {
		return
	}
	s.Start()
}

// NextLevel advances past a completed level
func (s *Session) NextLevel() {
	if s.state != state.StateLevelComplete {
		return
	}
	s.loadLevel(s.level + 1)
	s.setState(state.StatePlaying)
	s.pushCounters(true)
}

// Pause stops ticking while playing
func (s *Session) Pause() {
	if s.state == state.StatePlaying {
		s.setState(state.StatePaused)
	}
}

// Resume continues a paused session
func (s *Session) Resume() {
	if s.state == state.StatePaused {
		s.setState(state.StatePlaying)
	}
}

// TogglePause switches between playing and paused
func (s *Session) TogglePause() {
	switch s.state {
	case state.StatePlaying:
		s.Pause()
	case state.StatePaused:
		s.Resume()
	}
}

// Quit returns to the menu
func (s *Session) Quit() {
	s.setState(state.StateMenu)
}

// SetDifficulty changes the difficulty used by the next Start
func (s *Session) SetDifficulty(name string) {
	s.difficulty = name
}

// QueueReload hands a rebuilt level template to the session. It is applied
// at the start of the next tick and is safe to call from another goroutine.
func (s *Session) QueueReload(index int, level *entity.Level) {
	select {
	case s.reloads <- reload{index: index, level: level}:
	default:
		s.logger.Warn("dropping level reload, queue full", "level", index)
	}
}

// Tick advances one frame. Nothing happens unless the session is playing.
func (s *Session) Tick(input system.InputState) {
	s.applyReloads()
	if s.state != state.StatePlaying {
		return
	}

	s.frames++
	events := s.world.Step(input, s.lives)
	for _, ev := range events {
		if s.state != state.StatePlaying && !scoreOnly(ev) {
			// Tiles consumed after the transition still pay out
			continue
		}
		s.handle(ev)
	}

	switch s.state {
	case state.StateLevelComplete:
		s.finishLevel()
	case state.StateGameOver:
		s.finishGame()
	}

	s.updateCamera()
	s.pushCounters(false)
}

// scoreOnly reports events that only add to the score and never change state
func scoreOnly(ev system.Event) bool {
	switch ev.(type) {
	case system.CoinCollected, system.EnemyDefeated:
		return true
	}
	return false
}

func (s *Session) handle(ev system.Event) {
	scoring := s.cfg.Scoring
	switch e := ev.(type) {
	case system.Jumped:
		s.play(CueJump)
	case system.CoinCollected:
		s.coins++
		s.score += int(float64(scoring.Coin) * s.currentLevel().ScoreMultiplier())
		s.play(CueCoin)
	case system.EnemyDefeated:
		s.score += scoring.Stomp
		s.play(CueStomp)
		s.logger.Debug("enemy defeated", "id", e.ID)
	case system.PowerupCollected:
		s.play(CuePowerup)
		s.notifier.OnPowerup(e.Type, e.Duration)
	case system.PowerupExpired:
		s.notifier.OnPowerupExpired(e.Type)
	case system.HazardHit:
		s.loseLife(e)
	case system.GoalReached:
		s.score += scoring.Flag
		s.completeLevel()
	}
}

func (s *Session) loseLife(e system.HazardHit) {
	if s.lives > 0 {
		s.lives--
	}
	s.play(CueHurt)
	s.logger.Debug("life lost", "cause", e.Cause, "tile", e.Tile, "lives", s.lives)
	if s.lives == 0 {
		s.gameOver()
	}
}

func (s *Session) completeLevel() {
	s.setState(state.StateLevelComplete)
	s.play(CueLevelComplete)
}

// finishLevel reports the completed level once the tick's events are applied
func (s *Session) finishLevel() {
	s.pushCounters(false)
	s.notifier.OnLevelComplete(LevelStats{
		Score:      s.score,
		Coins:      s.coins,
		TotalCoins: s.totalCoins,
		Seconds:    s.seconds(),
	})
}

func (s *Session) gameOver() {
	s.setState(state.StateGameOver)
	s.play(CueGameOver)
}

// finishGame settles the high score once the tick's events are applied
func (s *Session) finishGame() {
	high, err := s.scores.HighScore()
	if err != nil {
		s.logger.Error("failed to read high score", "err", err)
	}
	if s.score > high {
		if err := s.scores.SaveHighScore(s.score); err != nil {
			s.logger.Error("failed to save high score", "err", err)
		}
		high = s.score
	}

	s.pushCounters(false)
	s.notifier.OnGameOver(s.score, high)
}

// loadLevel instantiates level n, wrapping to 1 past the last level
func (s *Session) loadLevel(n int) {
	if n < 1 || n > len(s.levels) {
		n = 1
	}
	s.level = n
	lvl := s.currentLevel()

	s.world = system.NewWorld(s.cfg, lvl, s.cfg.DifficultyFor(s.difficulty))
	s.coins = 0
	s.totalCoins = s.world.Grid.Count(entity.TileCoin)
	s.frames = 0
	s.updateCamera()

	s.logger.Info("level loaded", "level", n, "name", lvl.Name, "theme", lvl.Theme, "coins", s.totalCoins)
}

func (s *Session) applyReloads() {
	for {
		select {
		case r := <-s.reloads:
			if r.index < 1 || r.index > len(s.levels) || r.level == nil {
				continue
			}
			s.levels[r.index-1] = r.level
			s.logger.Info("level reloaded", "level", r.index, "name", r.level.Name)
			if r.index == s.level && s.state == state.StatePlaying {
				s.loadLevel(r.index)
				s.pushCounters(true)
			}
		default:
			return
		}
	}
}

func (s *Session) currentLevel() *entity.Level {
	return s.levels[s.level-1]
}

func (s *Session) updateCamera() {
	screenW := float64(s.cfg.Display.ScreenWidth)
	x := s.world.Player.X - screenW/2
	maxX := s.world.Grid.PixelWidth() - screenW
	if x > maxX {
		x = maxX
	}
	if x < 0 {
		x = 0
	}
	s.cameraX = x
}

func (s *Session) seconds() int {
	fps := s.cfg.Display.Framerate
	if fps <= 0 {
		fps = 60
	}
	return s.frames / fps
}

func (s *Session) counters() Counters {
	return Counters{
		Score:      s.score,
		Lives:      s.lives,
		Level:      s.level,
		Coins:      s.coins,
		TotalCoins: s.totalCoins,
		Seconds:    s.seconds(),
	}
}

func (s *Session) pushCounters(force bool) {
	c := s.counters()
	if !force && c == s.notified {
		return
	}
	s.notified = c
	s.notifier.OnCounters(c)
}

func (s *Session) play(cue Cue) {
	s.audio.Play(cue, s.volume)
}

func (s *Session) setState(next state.GameState) {
	if s.state == next {
		return
	}
	s.logger.Info("state change", "from", s.state, "to", next)
	s.state = next
}

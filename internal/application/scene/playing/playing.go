// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/tilerun/internal/application/replay"
	"github.com/younwookim/tilerun/internal/application/scene"
	"github.com/younwookim/tilerun/internal/application/session"
	"github.com/younwookim/tilerun/internal/application/state"
	"github.com/younwookim/tilerun/internal/application/system"
	"github.com/younwookim/tilerun/internal/domain/entity"
)

// Colors for rendering
var (
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorInvincible = color.RGBA{255, 230, 120, 255}
	colorEnemy      = color.RGBA{200, 100, 100, 255}
	colorPowerupBar = color.RGBA{120, 180, 255, 255}
	colorBarBG      = color.RGBA{60, 60, 60, 255}
)

var themeBackgrounds = map[entity.Theme]color.RGBA{
	entity.ThemeGrassland: {110, 170, 230, 255},
	entity.ThemeForest:    {60, 110, 80, 255},
	entity.ThemeDesert:    {230, 200, 140, 255},
	entity.ThemeIce:       {190, 220, 240, 255},
	entity.ThemeVolcano:   {70, 30, 30, 255},
	entity.ThemeSpace:     {15, 15, 35, 255},
}

var tileColors = map[entity.TileType]color.RGBA{
	entity.TileGround:            {120, 80, 40, 255},
	entity.TileBrick:             {170, 90, 60, 255},
	entity.TileCoin:              {255, 215, 0, 255},
	entity.TileFlag:              {240, 240, 240, 255},
	entity.TileSpike:             {200, 50, 50, 255},
	entity.TilePowerupSpeed:      {80, 200, 255, 255},
	entity.TilePowerupJump:       {120, 255, 120, 255},
	entity.TilePowerupInvincible: {255, 150, 255, 255},
	entity.TileQuicksand:         {200, 170, 100, 255},
	entity.TileCactus:            {40, 140, 60, 255},
	entity.TileWater:             {50, 100, 220, 180},
	entity.TileIce:               {170, 220, 255, 255},
	entity.TileLava:              {255, 90, 0, 255},
	entity.TileBreakable:         {150, 110, 80, 255},
	entity.TileCheckpoint:        {100, 100, 255, 255},
}

// Playing is the main gameplay scene. It feeds keyboard input to the
// session and draws the session snapshot.
type Playing struct {
	sess    *session.Session
	hud     *HUD
	input   *system.InputSystem
	logger  *log.Logger
	screenW int
	screenH int

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// Option configures the scene
type Option func(*Playing)

// WithLogger sets the scene logger
func WithLogger(l *log.Logger) Option {
	return func(p *Playing) { p.logger = l }
}

// WithRecording records every frame and writes it to path on exit.
// An empty path picks a timestamped filename.
func WithRecording(path, difficulty string) Option {
	return func(p *Playing) {
		p.recorder = NewRecorder(difficulty)
		p.recordFilename = path
	}
}

// New creates a new Playing scene. hud must be the session's notifier.
func New(sess *session.Session, hud *HUD, screenW, screenH int, opts ...Option) *Playing {
	p := &Playing{
		sess:    sess,
		hud:     hud,
		input:   system.NewInputSystem(),
		logger:  log.New(io.Discard),
		screenW: screenW,
		screenH: screenH,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.recorder != nil {
		p.logger.Info("recording enabled", "path", p.recordFilename)
	}
	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	cmd := commandFor(p.sess.State(), inpututil.IsKeyJustPressed)
	input := p.input.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input, cmd)
	}

	p.step(input, cmd)
	if p.sess.State() == state.StateMenu {
		// game.Game exits the scene, which saves the recording
		return nil, ebiten.Termination
	}
	return nil, nil // nil = stay on this scene
}

// step applies a command and advances the session by one frame
func (p *Playing) step(input system.InputState, cmd replay.Command) {
	before := p.sess.State()
	replay.Apply(p.sess, cmd)
	p.sess.Tick(input)
	p.hud.Tick()

	after := p.sess.State()
	if before.IsTerminal() || !after.IsTerminal() {
		return
	}
	c := p.sess.Counters()
	p.logger.Info("run paused for command", "state", after, "level", c.Level, "score", c.Score)
	if after == state.StateGameOver {
		// Auto-save recording on game over
		p.saveRecording()
	}
}

// commandFor maps the keys pressed this frame to a session command
func commandFor(st state.GameState, pressed func(ebiten.Key) bool) replay.Command {
	if pressed(ebiten.KeyQ) {
		return replay.CmdQuit
	}
	switch st {
	case state.StatePlaying, state.StatePaused:
		if pressed(ebiten.KeyEscape) {
			return replay.CmdPause
		}
	case state.StateLevelComplete:
		if pressed(ebiten.KeyEnter) || pressed(ebiten.KeySpace) {
			return replay.CmdNext
		}
	case state.StateGameOver:
		if pressed(ebiten.KeyEnter) || pressed(ebiten.KeyR) {
			return replay.CmdRestart
		}
	}
	return replay.CmdNone
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "err", err)
	} else {
		p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
	}
}

// Draw renders the game (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	snap := p.sess.Snapshot()
	if snap.Grid == nil {
		return
	}

	bg, ok := themeBackgrounds[snap.Theme]
	if !ok {
		bg = themeBackgrounds[entity.ThemeGrassland]
	}
	screen.Fill(bg)

	p.drawTiles(screen, snap)
	p.drawEnemies(screen, snap)
	p.drawPlayer(screen, snap)
	p.drawUI(screen, snap)

	switch snap.State {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180}, p.hud.GameOverText())
	case state.StateLevelComplete:
		p.drawOverlay(screen, color.RGBA{0, 60, 0, 160}, p.hud.LevelCompleteText())
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, snap session.Snapshot) {
	ts := snap.Grid.TileSize
	startCol := int(snap.CameraX) / ts
	endCol := startCol + p.screenW/ts + 2

	for row := 0; row < snap.Grid.Rows; row++ {
		for col := startCol; col < endCol; col++ {
			c, ok := tileColors[snap.Grid.TileAt(col, row)]
			if !ok {
				continue
			}
			r := snap.Grid.CellRect(col, row)
			ebitenutil.DrawRect(screen, r.X-snap.CameraX, r.Y, r.W, r.H, c)
		}
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, snap session.Snapshot) {
	pl := snap.Player
	// Blink during the damage grace window
	if pl.Invulnerable && (pl.InvulnerableTime/4)%2 == 1 {
		return
	}
	c := colorPlayer
	if pl.Invincible {
		c = colorInvincible
	}
	ebitenutil.DrawRect(screen, pl.X-snap.CameraX, pl.Y, pl.Width, pl.Height, c)
}

func (p *Playing) drawEnemies(screen *ebiten.Image, snap session.Snapshot) {
	for _, e := range snap.Enemies {
		ebitenutil.DrawRect(screen, e.X-snap.CameraX, e.Y, e.Width, e.Height, colorEnemy)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image, snap session.Snapshot) {
	ebitenutil.DebugPrint(screen, p.hud.StatusLine())
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %d/%d", snap.LevelName, p.sess.Level(), p.sess.LevelCount()), 10, 18)

	if banner := p.hud.Banner(); banner != "" {
		ebitenutil.DebugPrintAt(screen, banner, p.screenW/2-60, 40)
	}

	// Powerup timer bar
	if pw := snap.Powerup; pw != nil && pw.Duration > 0 {
		barX := 10.0
		barY := float64(p.screenH - 20)
		barW := 100.0
		ebitenutil.DrawRect(screen, barX, barY, barW, 10, colorBarBG)
		ebitenutil.DrawRect(screen, barX, barY, barW*float64(pw.Remaining)/float64(pw.Duration), 10, colorPowerupBar)
		ebitenutil.DebugPrintAt(screen, pw.Type.String(), int(barX+barW+10), int(barY)-3)
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.RGBA, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-70, p.screenH/2-40)
}

// OnEnter starts the session
func (p *Playing) OnEnter() {
	if p.sess.State() == state.StateLoading {
		p.sess.Start()
	}
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/tilerun/internal/application/game"
	"github.com/younwookim/tilerun/internal/application/scene/playing"
	"github.com/younwookim/tilerun/internal/application/session"
	"github.com/younwookim/tilerun/internal/application/system"
	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/audio"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
	"github.com/younwookim/tilerun/internal/infrastructure/storage"
	"github.com/younwookim/tilerun/internal/infrastructure/watch"
)

var (
	flagDifficulty string
	flagRecord     string
	flagWatch      bool
	flagOptions    string
	flagMute       bool
	flagRemember   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Open the game window and play from level 1.

Controls:
  Left/Right or A/D   Move
  Space/Up/W          Jump
  Esc                 Pause
  Enter               Next level / restart after game over
  Q                   Quit
  F5                  Save recording (with --record)`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "easy, normal or hard (default: from options)")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload level files from --configs when they change")
	playCmd.Flags().StringVar(&flagOptions, "options", "", "Options file (default: ~/.tilerun/options.yaml)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().BoolVar(&flagRemember, "remember", false, "Save --difficulty to the options file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	opts, err := config.LoadOptions(flagOptions)
	if err != nil {
		logger.Warn("using default options", "err", err)
	}
	difficulty, err := pickDifficulty(opts.Difficulty, flagDifficulty)
	if err != nil {
		return err
	}
	if flagDifficulty != "" && flagRemember {
		opts.Difficulty = difficulty
		if err := config.SaveOptions(flagOptions, opts); err != nil {
			logger.Warn("failed to save options", "err", err)
		}
	}

	loader, err := newLoader(flagConfigs)
	if err != nil {
		return err
	}
	data, err := loadGame(loader)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("failed to open scores database: %w", err)
	}
	defer func() { _ = store.Close() }()

	var sink session.AudioSink
	if !flagMute {
		player := audio.NewPlayer(logger)
		if err := player.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer player.Close()
			sink = player
		}
	}

	hud := playing.NewHUD()
	var sess *session.Session
	sessOpts := []session.Option{
		session.WithNotifier(hud),
		session.WithLogger(logger),
		session.WithDifficulty(difficulty),
		session.WithVolume(opts.SoundVolume),
		session.WithHighScoreStore(store.Board(difficulty, func() int { return sess.Level() })),
	}
	if sink != nil {
		sessOpts = append(sessOpts, session.WithAudio(sink))
	}
	sess = session.New(data.physics, data.levels, sessOpts...)

	if flagWatch {
		if flagConfigs == "" {
			return fmt.Errorf("--watch needs --configs pointing at a config directory")
		}
		w, err := watch.NewWatcher(filepath.Join(loader.BasePath(), "levels"))
		if err != nil {
			return fmt.Errorf("failed to watch levels: %w", err)
		}
		defer func() { _ = w.Close() }()
		go reloadLoop(w, loader, data, sess, logger)
		logger.Info("watching levels", "dir", filepath.Join(loader.BasePath(), "levels"))
	}

	display := data.physics.Display
	sceneOpts := []playing.Option{playing.WithLogger(logger)}
	if flagRecord != "" {
		sceneOpts = append(sceneOpts, playing.WithRecording(flagRecord, difficulty))
	}
	scene := playing.New(sess, hud, display.ScreenWidth, display.ScreenHeight, sceneOpts...)
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, game.WithFPSCounter(opts.ShowFPS))
	g.SetDT(1.0 / float64(display.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Tilerun")
	ebiten.SetTPS(display.Framerate)

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// pickDifficulty returns the --difficulty value when set, the saved one otherwise
func pickDifficulty(saved, flag string) (string, error) {
	if flag == "" {
		return saved, nil
	}
	if !config.ValidDifficulty(flag) {
		return "", fmt.Errorf("unknown difficulty %q, want easy, normal or hard", flag)
	}
	return flag, nil
}

// reloadLoop rebuilds changed levels and queues them on the session
func reloadLoop(w *watch.Watcher, loader *config.Loader, data *gameData, sess *session.Session, logger *log.Logger) {
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			index, level, err := reloadLevel(loader, data, name)
			if err != nil {
				logger.Error("level reload failed", "level", name, "err", err)
				continue
			}
			if index == 0 {
				logger.Debug("ignoring level outside the index", "level", name)
				continue
			}
			sess.QueueReload(index, level)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Error("watch error", "err", err)
		}
	}
}

// reloadLevel loads one level file and returns its 1-based index in the sequence
func reloadLevel(loader *config.Loader, data *gameData, name string) (int, *entity.Level, error) {
	index := data.indexOf(name)
	if index == 0 {
		return 0, nil, nil
	}
	cfg, err := loader.LoadLevel(name)
	if err != nil {
		return 0, nil, err
	}
	level, err := system.LoadLevel(cfg)
	if err != nil {
		return 0, nil, err
	}
	return index, level, nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Options are the player's persisted settings
type Options struct {
	Difficulty  string  `yaml:"difficulty"`
	SoundVolume float64 `yaml:"sound_volume"`
	ShowFPS     bool    `yaml:"show_fps"`
}

// DefaultOptions returns the settings used when nothing is saved
func DefaultOptions() Options {
	return Options{
		Difficulty:  "normal",
		SoundVolume: 0.5,
	}
}

// LoadOptions loads the player's settings.
// Search order: customPath -> ~/.tilerun/options.yaml -> defaults
func LoadOptions(customPath string) (Options, error) {
	opts := DefaultOptions()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			if os.IsNotExist(err) {
				return opts, nil
			}
			return opts, fmt.Errorf("failed to read options %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return DefaultOptions(), fmt.Errorf("failed to parse options %s: %w", customPath, err)
		}
		return opts.normalized(), nil
	}

	if path := UserOptionsPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, &opts); err == nil {
				return opts.normalized(), nil
			}
			opts = DefaultOptions()
		}
	}

	return opts, nil
}

// SaveOptions writes the settings as YAML, creating parent directories
func SaveOptions(path string, opts Options) error {
	if path == "" {
		path = UserOptionsPath()
		if path == "" {
			return fmt.Errorf("no options path available")
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create options directory: %w", err)
	}

	data, err := yaml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write options %s: %w", path, err)
	}
	return nil
}

// UserOptionsPath returns ~/.tilerun/options.yaml, or empty if home is unavailable
func UserOptionsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilerun", "options.yaml")
}

// ValidDifficulty reports whether name is a selectable difficulty
func ValidDifficulty(name string) bool {
	switch name {
	case "easy", "normal", "hard":
		return true
	}
	return false
}

func (o Options) normalized() Options {
	if !ValidDifficulty(o.Difficulty) {
		o.Difficulty = "normal"
	}
	o.SoundVolume = clamp01(o.SoundVolume)
	return o
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

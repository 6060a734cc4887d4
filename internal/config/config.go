// Package config loads game settings from an optional YAML file and
// command-line flags.
//
// Flags override the file only when they are set explicitly, so a file can
// carry the baseline and the command line the exceptions.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"snake/internal/domain"
)

const (
	DefaultDataPath = "snake-save.pb"
	DefaultWidth    = 800
	DefaultHeight   = 600
)

// Settings is everything needed to start the binary.
type Settings struct {
	Difficulty string `yaml:"difficulty"`
	Mode       string `yaml:"mode"`

	// Walls is "wrap" or "solid".
	Walls string `yaml:"walls"`

	GridSize      int `yaml:"grid_size"`
	InitialLength int `yaml:"initial_length"`

	// DataPath is where scores and preferences are saved.
	DataPath string `yaml:"data_path"`

	ShowGrid bool `yaml:"show_grid"`

	Window WindowSettings `yaml:"window"`
	Audio  AudioSettings  `yaml:"audio"`
}

type WindowSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type AudioSettings struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

func Defaults() Settings {
	sim := domain.DefaultConfig()
	return Settings{
		Difficulty:    string(domain.DifficultyNormal),
		Mode:          string(domain.ModeClassic),
		Walls:         "wrap",
		GridSize:      sim.GridSize,
		InitialLength: sim.InitialLength,
		DataPath:      DefaultDataPath,
		ShowGrid:      true,
		Window: WindowSettings{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Audio: AudioSettings{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// LoadFile reads path over the defaults. An empty path yields the defaults.
func LoadFile(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return s, nil
}

// SimulationConfig translates the settings into an engine configuration.
func (s Settings) SimulationConfig() (domain.Config, error) {
	difficulty, err := domain.ParseDifficulty(s.Difficulty)
	if err != nil {
		return domain.Config{}, err
	}
	mode, err := domain.ParseMode(s.Mode)
	if err != nil {
		return domain.Config{}, err
	}
	walls, err := domain.ParseBoundary(s.Walls)
	if err != nil {
		return domain.Config{}, err
	}

	cfg := mode.Apply(difficulty.Apply(domain.DefaultConfig()))
	cfg.Boundary = walls
	if s.GridSize > 0 {
		cfg.GridSize = s.GridSize
	}
	if s.InitialLength > 0 {
		cfg.InitialLength = s.InitialLength
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func (s Settings) Validate() error {
	if _, err := s.SimulationConfig(); err != nil {
		return err
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height)
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %.2f out of range [0, 1]", s.Audio.Volume)
	}
	if s.DataPath == "" {
		return errors.New("data path is empty")
	}
	return nil
}

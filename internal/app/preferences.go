package app

import (
	"fmt"
	"log"

	"snake/internal/config"
	"snake/internal/domain"
	"snake/internal/storage"
)

const (
	keyBestScore  = "best_score"
	keySound      = "sound"
	keyVolume     = "sfx_volume"
	keyShowGrid   = "grid"
	keyWalls      = "walls"
	keyDifficulty = "difficulty"
	keyMode       = "mode"
)

// Preferences are the choices a player makes in the settings screen. They
// are saved on every change and override the startup settings.
type Preferences struct {
	SoundOn    bool
	Volume     float64
	ShowGrid   bool
	Walls      domain.BoundaryPolicy
	Difficulty domain.Difficulty
	Mode       domain.Mode
}

// PreferencesFromSettings takes the defaults from startup settings, which
// have already been validated.
func PreferencesFromSettings(s config.Settings) Preferences {
	p := Preferences{
		SoundOn:    s.Audio.Enabled,
		Volume:     s.Audio.Volume,
		ShowGrid:   s.ShowGrid,
		Difficulty: domain.DifficultyNormal,
		Mode:       domain.ModeClassic,
	}
	if d, err := domain.ParseDifficulty(s.Difficulty); err == nil {
		p.Difficulty = d
	}
	if m, err := domain.ParseMode(s.Mode); err == nil {
		p.Mode = m
	}
	if w, err := domain.ParseBoundary(s.Walls); err == nil {
		p.Walls = w
	}
	return p
}

// LoadPreferences overlays whatever store holds on defaults. Unreadable
// values are logged and skipped.
func LoadPreferences(store storage.Store, defaults Preferences) Preferences {
	p := defaults

	if v, ok := storage.GetBool(store, keySound); ok {
		p.SoundOn = v
	}
	if v, ok := storage.GetFloat(store, keyVolume); ok && v >= 0 && v <= 1 {
		p.Volume = v
	}
	if v, ok := storage.GetBool(store, keyShowGrid); ok {
		p.ShowGrid = v
	}
	if v, ok := storage.GetString(store, keyWalls); ok {
		if w, err := domain.ParseBoundary(v); err == nil {
			p.Walls = w
		} else {
			log.Printf("Ignoring saved walls: %v", err)
		}
	}
	if v, ok := storage.GetString(store, keyDifficulty); ok {
		if d, err := domain.ParseDifficulty(v); err == nil {
			p.Difficulty = d
		} else {
			log.Printf("Ignoring saved difficulty: %v", err)
		}
	}
	if v, ok := storage.GetString(store, keyMode); ok {
		if m, err := domain.ParseMode(v); err == nil {
			p.Mode = m
		} else {
			log.Printf("Ignoring saved mode: %v", err)
		}
	}
	return p
}

func SavePreferences(store storage.Store, p Preferences) error {
	writes := []func() error{
		func() error { return storage.SetBool(store, keySound, p.SoundOn) },
		func() error { return storage.SetFloat(store, keyVolume, p.Volume) },
		func() error { return storage.SetBool(store, keyShowGrid, p.ShowGrid) },
		func() error { return storage.SetString(store, keyWalls, p.Walls.String()) },
		func() error { return storage.SetString(store, keyDifficulty, string(p.Difficulty)) },
		func() error { return storage.SetString(store, keyMode, string(p.Mode)) },
	}
	for _, write := range writes {
		if err := write(); err != nil {
			return fmt.Errorf("failed to save preferences: %w", err)
		}
	}
	return nil
}

// SessionConfig applies the chosen difficulty, mode and walls to base.
func (p Preferences) SessionConfig(base domain.Config) domain.Config {
	cfg := p.Mode.Apply(p.Difficulty.Apply(base))
	cfg.Boundary = p.Walls
	return cfg
}

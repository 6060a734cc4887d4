package config

import (
	"github.com/spf13/pflag"
)

// Flags holds the values of the command-line flags registered by AddFlags.
type Flags struct {
	ConfigPath string
	DataPath   string
	Difficulty string
	Mode       string
	Walls      string
	Grid       int
	Length     int
	Mute       bool
	Width      int
	Height     int

	set *pflag.FlagSet
}

func AddFlags(flagSet *pflag.FlagSet) *Flags {
	d := Defaults()
	f := &Flags{set: flagSet}

	flagSet.StringVar(&f.ConfigPath, "config", "", "path to a YAML settings file")
	flagSet.StringVar(&f.DataPath, "data", d.DataPath, "path to the save file")
	flagSet.StringVar(&f.Difficulty, "difficulty", d.Difficulty, "easy, normal or hard")
	flagSet.StringVar(&f.Mode, "mode", d.Mode, "classic, timed or survival")
	flagSet.StringVar(&f.Walls, "walls", d.Walls, "wrap or solid")
	flagSet.IntVar(&f.Grid, "grid", d.GridSize, "cells per side")
	flagSet.IntVar(&f.Length, "length", d.InitialLength, "initial snake length")
	flagSet.BoolVar(&f.Mute, "mute", false, "disable sound")
	flagSet.IntVar(&f.Width, "width", d.Window.Width, "window width")
	flagSet.IntVar(&f.Height, "height", d.Window.Height, "window height")
	return f
}

// Apply copies every flag the user set explicitly onto s.
func (f *Flags) Apply(s *Settings) {
	changed := func(name string) bool {
		return f.set != nil && f.set.Changed(name)
	}

	if changed("data") {
		s.DataPath = f.DataPath
	}
	if changed("difficulty") {
		s.Difficulty = f.Difficulty
	}
	if changed("mode") {
		s.Mode = f.Mode
	}
	if changed("walls") {
		s.Walls = f.Walls
	}
	if changed("grid") {
		s.GridSize = f.Grid
	}
	if changed("length") {
		s.InitialLength = f.Length
	}
	if changed("mute") {
		s.Audio.Enabled = !f.Mute
	}
	if changed("width") {
		s.Window.Width = f.Width
	}
	if changed("height") {
		s.Window.Height = f.Height
	}
}

// Parse parses args, loads the settings file named by --config and applies
// the explicit flags on top. pflag.ErrHelp is returned unchanged.
func Parse(name string, args []string) (Settings, error) {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags := AddFlags(flagSet)
	if err := flagSet.Parse(args); err != nil {
		return Settings{}, err
	}

	s, err := LoadFile(flags.ConfigPath)
	if err != nil {
		return Settings{}, err
	}
	flags.Apply(&s)

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

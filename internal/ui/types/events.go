package types

import (
	"snake/internal/app"
	"snake/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventStartGame
	UIEventTogglePause
	UIEventRestart
	UIEventSteer
	UIEventSavePreferences
	UIEventQuit
	UIEventShowSettings
	UIEventShowMenu
)

type SteerData struct {
	Direction domain.Direction
}

type PreferencesData struct {
	Preferences app.Preferences
}

// GameView is what the game screen needs to draw one frame.
type GameView struct {
	Snapshot domain.Snapshot
	Paused   bool
	Over     bool
	Best     int
	NewBest  bool
	ShowGrid bool
}

package screens

import (
	"strconv"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var (
	difficultyOptions = []string{string(domain.DifficultyEasy), string(domain.DifficultyNormal), string(domain.DifficultyHard)}
	modeOptions       = []string{string(domain.ModeClassic), string(domain.ModeTimed), string(domain.ModeSurvival)}
	wallOptions       = []string{domain.BoundaryWrap.String(), domain.BoundarySolid.String()}
	onOffOptions      = []string{"on", "off"}
)

type SettingsScreen struct {
	ctx types.ScreenContext

	prefs app.Preferences

	cycleDifficulty *components.CycleButton
	cycleMode       *components.CycleButton
	cycleWalls      *components.CycleButton
	cycleSound      *components.CycleButton
	cycleGrid       *components.CycleButton
	inputVolume     *components.TextInput

	btnSave *components.Button
	btnBack *components.Button

	errorMsg string
}

func NewSettingsScreen(ctx types.ScreenContext) *SettingsScreen {
	s := &SettingsScreen{
		ctx:             ctx,
		cycleDifficulty: components.NewCycleButton(300, 35, "Difficulty", difficultyOptions),
		cycleMode:       components.NewCycleButton(300, 35, "Mode", modeOptions),
		cycleWalls:      components.NewCycleButton(300, 35, "Walls", wallOptions),
		cycleSound:      components.NewCycleButton(145, 35, "Sound", onOffOptions),
		cycleGrid:       components.NewCycleButton(145, 35, "Grid", onOffOptions),
		inputVolume:     components.NewTextInput(0, 0, 140, 35, "60"),
		btnSave:         components.NewButton(0, 0, 140, 45, "Save"),
		btnBack:         components.NewButton(0, 0, 140, 45, "Back"),
	}
	s.inputVolume.Numeric = true
	s.inputVolume.MaxLength = 3
	return s
}

// SetPreferences loads p into the controls.
func (s *SettingsScreen) SetPreferences(p app.Preferences) {
	s.prefs = p
	s.cycleDifficulty.Select(string(p.Difficulty))
	s.cycleMode.Select(string(p.Mode))
	s.cycleWalls.Select(p.Walls.String())
	s.cycleSound.Select(onOff(p.SoundOn))
	s.cycleGrid.Select(onOff(p.ShowGrid))
	s.inputVolume.Text = strconv.Itoa(int(p.Volume*100 + 0.5))
}

func (s *SettingsScreen) Update() types.UIEvent {
	w, _ := s.ctx.Size()
	centerX := w / 2
	startY := 120

	s.cycleDifficulty.SetPosition(centerX-150, startY)
	s.cycleMode.SetPosition(centerX-150, startY+50)
	s.cycleWalls.SetPosition(centerX-150, startY+100)
	s.cycleSound.SetPosition(centerX-150, startY+150)
	s.cycleGrid.SetPosition(centerX+5, startY+150)
	s.inputVolume.SetPosition(centerX+10, startY+200)
	s.btnBack.SetPosition(centerX-150, startY+270)
	s.btnSave.SetPosition(centerX+10, startY+270)

	for _, c := range []*components.CycleButton{s.cycleDifficulty, s.cycleMode, s.cycleWalls, s.cycleSound, s.cycleGrid} {
		c.Update()
	}
	s.inputVolume.Update()

	if input.IsTabPressed() {
		s.inputVolume.Focused = !s.inputVolume.Focused
	}

	if s.btnBack.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventShowMenu}
	}

	if s.btnSave.Update() || input.IsEnterPressed() {
		return s.save()
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *SettingsScreen) save() types.UIEvent {
	volume, ok := s.inputVolume.Int(0, 100)
	if !ok {
		s.errorMsg = "Volume must be 0-100"
		return types.UIEvent{Type: types.UIEventNone}
	}

	p := s.prefs
	p.Difficulty = domain.Difficulty(s.cycleDifficulty.Value())
	p.Mode = domain.Mode(s.cycleMode.Value())
	walls, err := domain.ParseBoundary(s.cycleWalls.Value())
	if err != nil {
		s.errorMsg = err.Error()
		return types.UIEvent{Type: types.UIEventNone}
	}
	p.Walls = walls
	p.SoundOn = s.cycleSound.Value() == "on"
	p.ShowGrid = s.cycleGrid.Value() == "on"
	p.Volume = float64(volume) / 100

	s.prefs = p
	return types.UIEvent{
		Type:    types.UIEventSavePreferences,
		Payload: types.PreferencesData{Preferences: p},
	}
}

func (s *SettingsScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()
	centerX := w / 2
	startY := 120

	types.DrawCentered(screen, "SETTINGS", fonts.Normal, centerX, 60, types.ColorTextHighlight)

	s.cycleDifficulty.Draw(screen)
	s.cycleMode.Draw(screen)
	s.cycleWalls.Draw(screen)
	s.cycleSound.Draw(screen)
	s.cycleGrid.Draw(screen)

	text.Draw(screen, "Volume (0-100):", fonts.Normal, centerX-150, startY+222, types.ColorText)
	s.inputVolume.Draw(screen)

	s.btnBack.Draw(screen)
	s.btnSave.Draw(screen)

	if s.errorMsg != "" {
		types.DrawCentered(screen, s.errorMsg, fonts.Normal, centerX, startY+340, types.ColorError)
	}

	types.DrawCentered(screen, "Click to change  |  ENTER to save  |  ESC to go back", fonts.Small, centerX, h-30, types.ColorTextDim)
}

func (s *SettingsScreen) OnEnter() {
	s.errorMsg = ""
}

func (s *SettingsScreen) OnExit() {
	s.inputVolume.Focused = false
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

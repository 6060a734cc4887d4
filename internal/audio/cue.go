package audio

// Cue is a short fire-and-forget sound tied to a game event.
type Cue int

const (
	CueEat Cue = iota
	CueDie
	CueLevel
	CuePowerUp
	CueLifeLost
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueDie:
		return "die"
	case CueLevel:
		return "level"
	case CuePowerUp:
		return "power-up"
	case CueLifeLost:
		return "life-lost"
	}
	return "unknown"
}

type note struct {
	freqs []float64
	ms    int
}

// Melodies are sequences of notes; a note with several frequencies is a chord.
var melodies = [cueCount][]note{
	CueEat:      {{[]float64{880}, 50}, {[]float64{1320}, 60}},
	CueDie:      {{[]float64{440}, 120}, {[]float64{330}, 120}, {[]float64{220}, 220}},
	CueLevel:    {{[]float64{660}, 80}, {[]float64{880}, 80}, {[]float64{1100}, 140}},
	CuePowerUp:  {{[]float64{1000, 1500}, 90}, {[]float64{1250, 1875}, 160}},
	CueLifeLost: {{[]float64{300}, 140}, {[]float64{240}, 180}},
}

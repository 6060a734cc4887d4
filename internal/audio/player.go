package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

const DefaultSampleRate = 48000

type Config struct {
	Enabled    bool
	Volume     float64
	SampleRate int
}

func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.6,
		SampleRate: DefaultSampleRate,
	}
}

// Player renders every cue once and plays it through ebiten's audio
// context. Play never blocks; a disabled or muted player drops cues.
type Player struct {
	ctx    *ebitenaudio.Context
	pcm    [cueCount][]byte
	volume float64
	muted  bool

	active []*ebitenaudio.Player
}

var (
	contextOnce sync.Once
	sharedCtx   *ebitenaudio.Context
)

// ebiten allows a single audio context per process.
func audioContext(rate int) *ebitenaudio.Context {
	contextOnce.Do(func() {
		sharedCtx = ebitenaudio.NewContext(rate)
	})
	return sharedCtx
}

func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}

	p := &Player{
		volume: clampVolume(cfg.Volume),
		muted:  !cfg.Enabled,
	}

	rate := beep.SampleRate(cfg.SampleRate)
	for c := Cue(0); c < cueCount; c++ {
		p.pcm[c] = Render(Synthesize(c, rate))
	}

	if cfg.Enabled {
		p.ctx = audioContext(cfg.SampleRate)
	}
	log.Printf("Audio: enabled=%v volume=%.2f rate=%d", cfg.Enabled, p.volume, cfg.SampleRate)
	return p
}

func (p *Player) Play(cue Cue) {
	if p.muted || p.volume == 0 || cue < 0 || cue >= cueCount {
		return
	}
	if p.ctx == nil {
		p.ctx = audioContext(DefaultSampleRate)
	}

	p.prune()

	player := p.ctx.NewPlayerFromBytes(p.pcm[cue])
	player.SetVolume(p.volume)
	player.Play()
	p.active = append(p.active, player)
}

// prune releases players that finished so they can be collected.
func (p *Player) prune() {
	kept := p.active[:0]
	for _, player := range p.active {
		if player.IsPlaying() {
			kept = append(kept, player)
			continue
		}
		player.Close()
	}
	p.active = kept
}

func (p *Player) SetVolume(v float64) {
	p.volume = clampVolume(v)
}

func (p *Player) Volume() float64 {
	return p.volume
}

func (p *Player) SetMuted(muted bool) {
	p.muted = muted
}

func (p *Player) Muted() bool {
	return p.muted
}

func clampVolume(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

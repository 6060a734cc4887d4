package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	fadeMs      = 5
	renderChunk = 512
)

// Synthesize builds the streamer for cue at rate. Unknown cues yield nil.
func Synthesize(cue Cue, rate beep.SampleRate) beep.Streamer {
	if cue < 0 || cue >= cueCount {
		return nil
	}

	var parts []beep.Streamer
	for _, n := range melodies[cue] {
		if s := chord(n, rate); s != nil {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return beep.Seq(parts...)
}

func chord(n note, rate beep.SampleRate) beep.Streamer {
	length := rate.N(time.Duration(n.ms) * time.Millisecond)

	var voices []beep.Streamer
	for _, freq := range n.freqs {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			continue
		}
		voices = append(voices, beep.Take(length, tone))
	}
	if len(voices) == 0 {
		return nil
	}

	var mixed beep.Streamer = beep.Mix(voices...)
	if len(voices) > 1 {
		// Gain scales by 1+Gain; keep the chord within [-1, 1].
		mixed = &effects.Gain{Streamer: mixed, Gain: 1/float64(len(voices)) - 1}
	}
	return newFade(mixed, length, rate.N(fadeMs*time.Millisecond))
}

// fade applies a linear attack and release of edge samples to a streamer of
// known length, which removes clicks at note boundaries.
type fade struct {
	s      beep.Streamer
	length int
	edge   int
	pos    int
}

func newFade(s beep.Streamer, length, edge int) *fade {
	if edge*2 > length {
		edge = length / 2
	}
	return &fade{s: s, length: length, edge: edge}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		if f.edge > 0 {
			if f.pos < f.edge {
				g = float64(f.pos) / float64(f.edge)
			} else if rest := f.length - f.pos; rest < f.edge {
				g = float64(rest) / float64(f.edge)
			}
		}
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error {
	return f.s.Err()
}

// Render drains s into 16-bit little-endian interleaved stereo PCM.
func Render(s beep.Streamer) []byte {
	if s == nil {
		return nil
	}

	var out []byte
	buf := make([][2]float64, renderChunk)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][1])))
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	if math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(math.Round(v * math.MaxInt16))
}

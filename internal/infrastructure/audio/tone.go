package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// note is one tone of a cue
type note struct {
	freq     float64
	duration time.Duration
	wave     Wave
	sweep    float64 // Hz per second, may be negative
}

// tone renders a note with a linear decay so cues never click
type tone struct {
	note
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
	rng      *rand.Rand
}

func newTone(n note, rate beep.SampleRate) *tone {
	return &tone{
		note:  n,
		rate:  rate,
		total: rate.N(n.duration),
		rng:   rand.New(rand.NewSource(int64(n.freq))),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			val = 1.0
			if t.phase >= 0.5 {
				val = -1.0
			}
		case WaveNoise:
			val = t.rng.Float64()*2 - 1
		}

		env := 1 - float64(t.position)/float64(t.total)
		samples[i][0] = val * env
		samples[i][1] = val * env

		elapsed := float64(t.position) / float64(t.rate)
		freq := t.freq + t.sweep*elapsed
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume scales a streamer linearly; zero or less is silent
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

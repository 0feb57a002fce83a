package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// tone is a fixed-length oscillator with a linear attack and release.
type tone struct {
	freq    float64
	wave    Wave
	rate    beep.SampleRate
	total   int
	attack  int
	release int
	pos     int
	phase   float64
	amp     float64
}

// Tone returns a streamer playing freq for d at amplitude amp. The first and
// last 10% of the tone are faded to avoid clicks.
func Tone(freq float64, d time.Duration, wave Wave, amp float64, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	fade := total / 10
	return &tone{
		freq:    freq,
		wave:    wave,
		rate:    rate,
		total:   total,
		attack:  fade,
		release: fade,
		amp:     amp,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveTriangle:
			v = 4*math.Abs(t.phase-0.5) - 1
		}
		v *= t.amp * t.envelope()

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) envelope() float64 {
	switch {
	case t.attack > 0 && t.pos < t.attack:
		return float64(t.pos) / float64(t.attack)
	case t.release > 0 && t.pos >= t.total-t.release:
		return float64(t.total-t.pos) / float64(t.release)
	}
	return 1
}

func (t *tone) Err() error { return nil }

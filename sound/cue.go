package sound

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/phanxgames/cardtable"
)

// Cue is one of the short generated sounds.
type Cue int

const (
	CueDraw   Cue = iota // card drawn from the deck
	CueDrop              // held object released
	CueStack             // a bind formed, grew, or merged
	CueDetach            // a card left a bind
	CueDock              // a card entered the hand
	CueUndock            // a card left the hand
)

// cueFor maps a table event to its cue.
func cueFor(t cardtable.EventType) (Cue, bool) {
	switch t {
	case cardtable.EventCardDrawn:
		return CueDraw, true
	case cardtable.EventDropped:
		return CueDrop, true
	case cardtable.EventBindCreated, cardtable.EventBindJoined, cardtable.EventBindMerged:
		return CueStack, true
	case cardtable.EventCardDetached:
		return CueDetach, true
	case cardtable.EventCardDocked:
		return CueDock, true
	case cardtable.EventCardUndocked:
		return CueUndock, true
	}
	return 0, false
}

// NewCue builds a fresh streamer for c.
func NewCue(c Cue, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch c {
	case CueDraw:
		return beep.Seq(
			Tone(660, 35*ms, WaveTriangle, 0.25, rate),
			Tone(880, 45*ms, WaveTriangle, 0.25, rate),
		)
	case CueDrop:
		return Tone(330, 40*ms, WaveSine, 0.2, rate)
	case CueStack:
		return beep.Seq(
			Tone(220, 50*ms, WaveSquare, 0.12, rate),
			Tone(294, 70*ms, WaveSine, 0.25, rate),
		)
	case CueDetach:
		return beep.Seq(
			Tone(440, 40*ms, WaveTriangle, 0.2, rate),
			Tone(330, 40*ms, WaveTriangle, 0.2, rate),
		)
	case CueDock:
		return beep.Seq(
			Tone(523, 40*ms, WaveSine, 0.22, rate),
			Tone(659, 60*ms, WaveSine, 0.22, rate),
		)
	case CueUndock:
		return beep.Seq(
			Tone(659, 40*ms, WaveSine, 0.22, rate),
			Tone(523, 60*ms, WaveSine, 0.22, rate),
		)
	}
	return beep.Silence(0)
}

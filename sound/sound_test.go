package sound

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/phanxgames/cardtable"
)

// newOfflinePlayer returns a player whose mixer is streamed by the test
// instead of the speaker.
func newOfflinePlayer() *Player {
	return &Player{mixer: &beep.Mixer{}, lock: &sync.Mutex{}}
}

// drain streams s to the end and returns the sample count and peak.
func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := range n {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := Tone(440, 100*time.Millisecond, WaveSquare, 0.5, rate)
	total, peak := drain(s)
	if total != rate.N(100*time.Millisecond) {
		t.Errorf("samples = %d, want %d", total, rate.N(100*time.Millisecond))
	}
	if peak > 0.5+1e-9 || peak < 0.4 {
		t.Errorf("peak = %f, want close to 0.5", peak)
	}
	if s.Err() != nil {
		t.Errorf("Err = %v", s.Err())
	}
}

func TestToneFadesIn(t *testing.T) {
	s := Tone(440, 100*time.Millisecond, WaveSquare, 1, SampleRate)
	buf := make([][2]float64, 1)
	s.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 at the start of the attack", buf[0][0])
	}
}

func TestEveryCueIsShortAndAudible(t *testing.T) {
	for c := CueDraw; c <= CueUndock; c++ {
		total, peak := drain(NewCue(c, SampleRate))
		if total == 0 || total > SampleRate.N(250*time.Millisecond) {
			t.Errorf("cue %d: %d samples", c, total)
		}
		if peak == 0 {
			t.Errorf("cue %d is silent", c)
		}
	}
}

func TestCueForEvents(t *testing.T) {
	tests := []struct {
		ev   cardtable.EventType
		want Cue
		ok   bool
	}{
		{cardtable.EventCardDrawn, CueDraw, true},
		{cardtable.EventBindMerged, CueStack, true},
		{cardtable.EventCardDocked, CueDock, true},
		{cardtable.EventCameraReset, 0, false},
		{cardtable.EventDragStarted, 0, false},
	}
	for _, tt := range tests {
		got, ok := cueFor(tt.ev)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("cueFor(%v) = %d, %v; want %d, %v", tt.ev, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPlayerIgnoresEventsBeforeInit(t *testing.T) {
	p := NewPlayer()
	p.HandleEvent(cardtable.TableEvent{Type: cardtable.EventCardDrawn})
	if p.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers before Init", p.mixer.Len())
	}
	p.Close() // no-op without a speaker
}

func TestPlayerMixesCues(t *testing.T) {
	p := newOfflinePlayer()
	p.HandleEvent(cardtable.TableEvent{Type: cardtable.EventCardDrawn})
	p.HandleEvent(cardtable.TableEvent{Type: cardtable.EventCameraReset})
	p.HandleEvent(cardtable.TableEvent{Type: cardtable.EventBindCreated})
	if p.mixer.Len() != 2 {
		t.Fatalf("mixer has %d streamers, want 2", p.mixer.Len())
	}

	buf := make([][2]float64, SampleRate.N(time.Second))
	p.mixer.Stream(buf)
	var peak float64
	for _, s := range buf {
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 {
		t.Error("mixed output is silent")
	}
	if p.mixer.Len() != 0 {
		t.Errorf("drained cues still mixed: %d", p.mixer.Len())
	}
}

func TestPlayerMuted(t *testing.T) {
	p := newOfflinePlayer()
	p.SetMuted(true)
	p.Play(CueDock)

	buf := make([][2]float64, SampleRate.N(200*time.Millisecond))
	p.mixer.Stream(buf)
	for i, s := range buf {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, s)
		}
	}
}

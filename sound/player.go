// Package sound plays short generated cues for table events through beep.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/cardtable"
)

// SampleRate is the speaker sample rate.
const SampleRate = beep.SampleRate(44100)

// speakerLock guards the mixer while the speaker streams it.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Player is a cardtable.EventSink that mixes a cue for every event that has
// one. Until Init succeeds events are ignored.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	lock   sync.Locker
	volume float64
	muted  bool
}

// NewPlayer returns an uninitialized player at unit volume.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts streaming the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.lock != nil {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.lock = speakerLock{}
	return nil
}

// Close stops playback and closes the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.lock.(speakerLock); !ok {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.lock = nil
}

// SetVolume sets the volume in doublings: 0 is unchanged, -1 half, 1 double.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = v
	p.mu.Unlock()
}

// SetMuted silences every cue played afterwards.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Play mixes cue c.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	lock, vol, muted := p.lock, p.volume, p.muted
	p.mu.Unlock()

	if lock == nil {
		return
	}
	s := &effects.Volume{Streamer: NewCue(c, SampleRate), Base: 2, Volume: vol, Silent: muted}
	lock.Lock()
	p.mixer.Add(s)
	lock.Unlock()
}

// HandleEvent plays the cue for ev, if any.
func (p *Player) HandleEvent(ev cardtable.TableEvent) {
	if c, ok := cueFor(ev.Type); ok {
		p.Play(c)
	}
}

var _ cardtable.EventSink = (*Player)(nil)

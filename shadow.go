package cardtable

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// shadowSample is one fading copy of the held object's bounds.
type shadowSample struct {
	rect  Rect
	fade  *gween.Tween
	alpha float64
}

// ShadowTrail records the bounds of the held object as it moves and fades
// each sample out over the configured lifetime. Call Update(dt) each frame.
type ShadowTrail struct {
	cfg       ShadowConfig
	samples   []shadowSample
	capturing bool
	last      Vec2
	hasLast   bool
}

// NewShadowTrail creates an idle trail.
func NewShadowTrail(cfg ShadowConfig) *ShadowTrail {
	return &ShadowTrail{cfg: cfg}
}

// Start begins capturing samples for a new drag.
func (s *ShadowTrail) Start() {
	s.capturing = s.cfg.Enabled
	s.hasLast = false
}

// Stop ends capturing. Existing samples keep fading.
func (s *ShadowTrail) Stop() {
	s.capturing = false
}

// Capture records bounds if the object moved at least MinDistance since the
// last sample.
func (s *ShadowTrail) Capture(bounds Rect) {
	if !s.capturing {
		return
	}
	p := Vec2{bounds.X, bounds.Y}
	if s.hasLast {
		d := p.Sub(s.last)
		if d.LenSq() < s.cfg.MinDistance*s.cfg.MinDistance {
			return
		}
	}
	s.last = p
	s.hasLast = true
	s.samples = append(s.samples, shadowSample{
		rect:  bounds,
		fade:  gween.New(float32(s.cfg.Alpha), 0, s.cfg.Lifetime, ease.OutQuad),
		alpha: s.cfg.Alpha,
	})
}

// Update advances every fade by dt seconds and drops finished samples.
func (s *ShadowTrail) Update(dt float32) {
	kept := s.samples[:0]
	for _, smp := range s.samples {
		val, finished := smp.fade.Update(dt)
		if finished {
			continue
		}
		smp.alpha = float64(val)
		kept = append(kept, smp)
	}
	clear(s.samples[len(kept):])
	s.samples = kept
}

// Len returns the number of live samples.
func (s *ShadowTrail) Len() int { return len(s.samples) }

// Alphas returns the current opacity of each live sample, oldest first.
func (s *ShadowTrail) Alphas() []float64 {
	out := make([]float64, len(s.samples))
	for i, smp := range s.samples {
		out[i] = smp.alpha
	}
	return out
}

// draw renders the samples oldest first. It must run with the camera
// transform pushed.
func (s *ShadowTrail) draw(r Renderer) {
	for _, smp := range s.samples {
		r.FillRoundedRect(smp.rect, cornerRadius, shadowColor.WithAlpha(smp.alpha))
	}
}

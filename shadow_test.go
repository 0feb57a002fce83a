package cardtable

import "testing"

func testShadowConfig() ShadowConfig {
	return DefaultConfig().Shadow
}

func TestShadowTrailIgnoresCaptureWhenStopped(t *testing.T) {
	s := NewShadowTrail(testShadowConfig())
	s.Capture(Rect{Width: 10, Height: 10})
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0 before Start", s.Len())
	}
}

func TestShadowTrailMinDistance(t *testing.T) {
	s := NewShadowTrail(testShadowConfig())
	s.Start()
	s.Capture(Rect{X: 0, Y: 0, Width: 90, Height: 132})
	s.Capture(Rect{X: 3, Y: 4, Width: 90, Height: 132}) // 5 < 8
	s.Capture(Rect{X: 6, Y: 8, Width: 90, Height: 132}) // 10 from the first sample
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestShadowTrailFades(t *testing.T) {
	cfg := testShadowConfig()
	s := NewShadowTrail(cfg)
	s.Start()
	s.Capture(Rect{Width: 90, Height: 132})
	s.Stop()

	s.Update(cfg.Lifetime / 2)
	alphas := s.Alphas()
	if len(alphas) != 1 {
		t.Fatalf("Len = %d, want 1", len(alphas))
	}
	if alphas[0] <= 0 || alphas[0] >= cfg.Alpha {
		t.Errorf("alpha at half life = %f, want in (0, %f)", alphas[0], cfg.Alpha)
	}

	s.Update(cfg.Lifetime)
	if s.Len() != 0 {
		t.Errorf("Len = %d after lifetime, want 0", s.Len())
	}
}

func TestShadowTrailDisabled(t *testing.T) {
	cfg := testShadowConfig()
	cfg.Enabled = false
	s := NewShadowTrail(cfg)
	s.Start()
	s.Capture(Rect{Width: 1, Height: 1})
	if s.Len() != 0 {
		t.Error("disabled trail should not capture")
	}
}

func TestShadowTrailDraw(t *testing.T) {
	s := NewShadowTrail(testShadowConfig())
	s.Start()
	s.Capture(Rect{Width: 90, Height: 132})
	rr := &recordingRenderer{}
	s.draw(rr)
	if rr.count("fill") != 1 {
		t.Fatalf("fills = %d, want 1", rr.count("fill"))
	}
	if rr.calls[0].color.A != testShadowConfig().Alpha {
		t.Errorf("alpha = %f, want %f", rr.calls[0].color.A, testShadowConfig().Alpha)
	}
}

package cardtable

import "testing"

var testViewport = Rect{Width: 1280, Height: 720}

func TestLayoutHandEmpty(t *testing.T) {
	l := LayoutHand(0, testCardSize, DefaultConfig().Hand, testViewport, Vec2{})
	if len(l.Slots) != 0 || l.Hovered != -1 {
		t.Errorf("empty layout = %+v, want no slots and no hover", l)
	}
}

func TestLayoutHandSingleCardCentered(t *testing.T) {
	cfg := DefaultConfig().Hand
	l := LayoutHand(1, testCardSize, cfg, testViewport, Vec2{-1, -1})
	if l.BaseScale != cfg.DesiredScale {
		t.Errorf("BaseScale = %f, want %f", l.BaseScale, cfg.DesiredScale)
	}
	s := l.Slots[0]
	if !approxEqual(s.Rect.Center().X, 640, epsilon) {
		t.Errorf("center x = %f, want 640", s.Rect.Center().X)
	}
	if !approxEqual(s.Lift, cfg.ArcHeight, epsilon) {
		t.Errorf("Lift = %f, want full arc %f", s.Lift, cfg.ArcHeight)
	}
	wantY := 720 - cfg.BottomPadding - 132 - cfg.ArcHeight
	if !approxEqual(s.Rect.Y, wantY, epsilon) {
		t.Errorf("Rect.Y = %f, want %f", s.Rect.Y, wantY)
	}
}

func TestLayoutHandSpreadAndArc(t *testing.T) {
	cfg := DefaultConfig().Hand
	l := LayoutHand(5, testCardSize, cfg, testViewport, Vec2{-1, -1})

	margin := cfg.MarginRatio * 1280
	half := 90 * l.BaseScale / 2
	first, last := l.Slots[0].Rect.Center().X, l.Slots[4].Rect.Center().X
	if !approxEqual(first, margin+half, 1e-6) || !approxEqual(last, 1280-margin-half, 1e-6) {
		t.Errorf("spread = [%f, %f], want [%f, %f]", first, last, margin+half, 1280-margin-half)
	}
	if l.Slots[0].Lift != 0 || l.Slots[4].Lift != 0 {
		t.Errorf("edge lifts = %f/%f, want 0", l.Slots[0].Lift, l.Slots[4].Lift)
	}
	if !approxEqual(l.Slots[2].Lift, cfg.ArcHeight, epsilon) {
		t.Errorf("middle lift = %f, want %f", l.Slots[2].Lift, cfg.ArcHeight)
	}
	// n = -0.5 for the second card.
	if !approxEqual(l.Slots[1].Lift, cfg.ArcHeight*0.75, epsilon) {
		t.Errorf("second lift = %f, want %f", l.Slots[1].Lift, cfg.ArcHeight*0.75)
	}
}

func TestLayoutHandCapacityScaling(t *testing.T) {
	cfg := DefaultConfig().Hand
	usable := 1280 * (1 - 2*cfg.MarginRatio)
	n := 15 // 15*90 = 1350 > usable
	l := LayoutHand(n, testCardSize, cfg, testViewport, Vec2{-1, -1})

	want := usable / (float64(n) * 90)
	if !approxEqual(l.BaseScale, want, 1e-9) {
		t.Errorf("BaseScale = %f, want %f", l.BaseScale, want)
	}
	if l.BaseScale >= cfg.DesiredScale {
		t.Errorf("BaseScale = %f, want < %f", l.BaseScale, cfg.DesiredScale)
	}
}

func TestLayoutHandFullDeckFitsWidth(t *testing.T) {
	cfg := DefaultConfig().Hand
	usable := 1280 * (1 - 2*cfg.MarginRatio)
	for _, n := range []int{35, 54, 200} {
		l := LayoutHand(n, testCardSize, cfg, testViewport, Vec2{-1, -1})
		want := usable / (float64(n) * 90)
		if !approxEqual(l.BaseScale, want, 1e-9) {
			t.Errorf("n=%d: BaseScale = %f, want %f", n, l.BaseScale, want)
		}
		if l.BaseScale >= cfg.MinScale {
			t.Errorf("n=%d: BaseScale = %f, want below MinScale %f", n, l.BaseScale, cfg.MinScale)
		}
		first, last := l.Slots[0].Rect, l.Slots[n-1].Rect
		if first.X < cfg.MarginRatio*1280-epsilon || last.X+last.Width > 1280*(1-cfg.MarginRatio)+epsilon {
			t.Errorf("n=%d: hand spans [%f, %f], want inside the margins", n, first.X, last.X+last.Width)
		}
	}
}

func TestLayoutHandMinScaleRaisesDesired(t *testing.T) {
	cfg := DefaultConfig().Hand
	cfg.DesiredScale = 0.2
	l := LayoutHand(2, testCardSize, cfg, testViewport, Vec2{-1, -1})
	if l.BaseScale != cfg.MinScale {
		t.Errorf("BaseScale = %f, want MinScale %f", l.BaseScale, cfg.MinScale)
	}
}

func TestLayoutHandHover(t *testing.T) {
	cfg := DefaultConfig().Hand
	rest := LayoutHand(3, testCardSize, cfg, testViewport, Vec2{-1, -1})
	pointer := rest.Slots[1].Rect.Center()

	l := LayoutHand(3, testCardSize, cfg, testViewport, pointer)
	if l.Hovered != 1 {
		t.Fatalf("Hovered = %d, want 1", l.Hovered)
	}
	s := l.Slots[1]
	if !approxEqual(s.Scale, l.BaseScale*cfg.HoverScale, epsilon) {
		t.Errorf("hover scale = %f, want %f", s.Scale, l.BaseScale*cfg.HoverScale)
	}
	if !approxEqual(s.Lift, max(cfg.ArcHeight, cfg.HoverLift), epsilon) {
		t.Errorf("hover lift = %f, want %f", s.Lift, max(cfg.ArcHeight, cfg.HoverLift))
	}
	if l.Slots[0].Scale != l.BaseScale || l.Slots[2].Scale != l.BaseScale {
		t.Error("only the hovered card should grow")
	}
	if !approxEqual(s.Rect.Center().X, rest.Slots[1].Rect.Center().X, epsilon) {
		t.Error("hovered card should keep its center x")
	}
}

func TestLayoutHandHoverFirstInHandOrder(t *testing.T) {
	cfg := DefaultConfig().Hand
	// An overflowing hand packs neighbours edge to edge.
	rest := LayoutHand(40, testCardSize, cfg, testViewport, Vec2{-1, -1})
	a, b := rest.Slots[10].Rect, rest.Slots[11].Rect
	// A point on the shared edge.
	p := Vec2{b.X, b.Y + b.Height - 1}
	if !a.Contains(p.X, p.Y) {
		t.Skip("slots do not share an edge at this size")
	}
	l := LayoutHand(40, testCardSize, cfg, testViewport, p)
	if l.Hovered > 10 {
		t.Errorf("Hovered = %d, want the earlier card (<= 10)", l.Hovered)
	}
}

func TestLayoutHandDeterministic(t *testing.T) {
	cfg := DefaultConfig().Hand
	p := Vec2{600, 650}
	a := LayoutHand(7, testCardSize, cfg, testViewport, p)
	b := LayoutHand(7, testCardSize, cfg, testViewport, p)
	if a.Hovered != b.Hovered || a.BaseScale != b.BaseScale {
		t.Fatal("layouts differ")
	}
	for i := range a.Slots {
		if a.Slots[i] != b.Slots[i] {
			t.Errorf("slot %d differs: %+v vs %+v", i, a.Slots[i], b.Slots[i])
		}
	}
}

func TestLayoutHandViewportOffset(t *testing.T) {
	cfg := DefaultConfig().Hand
	vp := Rect{X: 100, Y: 50, Width: 1280, Height: 720}
	a := LayoutHand(1, testCardSize, cfg, testViewport, Vec2{-1, -1})
	b := LayoutHand(1, testCardSize, cfg, vp, Vec2{-1, -1})
	if !approxEqual(b.Slots[0].Rect.X-a.Slots[0].Rect.X, 100, epsilon) ||
		!approxEqual(b.Slots[0].Rect.Y-a.Slots[0].Rect.Y, 50, epsilon) {
		t.Errorf("offset viewport slot = %v, base %v", b.Slots[0].Rect, a.Slots[0].Rect)
	}
}

func TestHandZoneDockUndock(t *testing.T) {
	r := NewRegistry(testCardSize)
	a := r.NewCard("A", Vec2{})
	b := r.NewCard("B", Vec2{})
	var h HandZone
	h.dock(a)
	h.dock(b)
	h.dock(a)
	if h.Len() != 2 || h.IndexOf(b.ID()) != 1 {
		t.Errorf("hand = %v, want [a b]", h.Cards())
	}
	if !a.InHand() {
		t.Error("a should be in hand")
	}
	h.undock(a)
	if h.Len() != 1 || h.IndexOf(a.ID()) != -1 || a.InHand() {
		t.Errorf("after undock hand = %v", h.Cards())
	}
}

package cardtable

// HandSlot is the placement of one docked card in screen space.
type HandSlot struct {
	// Rect is the card's final screen rect, lift and hover scale included.
	Rect  Rect
	Scale float64
	// Lift is how far the card is raised above the resting baseline.
	Lift float64
}

// HandLayout is the result of one hand layout pass.
type HandLayout struct {
	BaseScale float64
	// Hovered is the index of the hovered slot, or -1.
	Hovered int
	Slots   []HandSlot
}

// LayoutHand places count cards of cardSize in a fan along the bottom of the
// viewport. The layout depends only on its arguments.
//
// Cards share a base scale of cfg.DesiredScale (raised to cfg.MinScale if
// lower) that shrinks further whenever the hand would overflow the usable
// width, so the fit scale always wins. Centers
// are spread evenly between the margins and each card is lifted on a
// parabola peaking at the middle of the hand. The first card whose
// base-scale rect contains pointer is hovered: it grows by cfg.HoverScale and
// is lifted at least cfg.HoverLift.
func LayoutHand(count int, cardSize Vec2, cfg HandConfig, viewport Rect, pointer Vec2) HandLayout {
	layout := HandLayout{Hovered: -1}
	if count <= 0 || cardSize.X <= 0 || cardSize.Y <= 0 {
		return layout
	}

	w, h := viewport.Width, viewport.Height
	margin := cfg.MarginRatio * w
	usable := w - 2*margin

	fit := usable / (cardSize.X * float64(count))
	base := min(max(cfg.DesiredScale, cfg.MinScale), fit)
	layout.BaseScale = base

	half := cardSize.X * base / 2
	left := viewport.X + margin + half
	right := viewport.X + w - margin - half
	bottom := viewport.Y + h - cfg.BottomPadding

	centers := make([]float64, count)
	arcs := make([]float64, count)
	for i := range count {
		if count == 1 {
			centers[i] = viewport.X + w/2
			arcs[i] = cfg.ArcHeight
			continue
		}
		t := float64(i) / float64(count-1)
		centers[i] = left + (right-left)*t
		n := 2*t - 1
		arcs[i] = cfg.ArcHeight * (1 - n*n)
	}

	slotRect := func(i int, scale, lift float64) Rect {
		sw, sh := cardSize.X*scale, cardSize.Y*scale
		return Rect{X: centers[i] - sw/2, Y: bottom - sh - lift, Width: sw, Height: sh}
	}

	for i := range count {
		if slotRect(i, base, arcs[i]).Contains(pointer.X, pointer.Y) {
			layout.Hovered = i
			break
		}
	}

	layout.Slots = make([]HandSlot, count)
	for i := range count {
		scale, lift := base, arcs[i]
		if i == layout.Hovered {
			scale = base * cfg.HoverScale
			lift = max(arcs[i], cfg.HoverLift)
		}
		layout.Slots[i] = HandSlot{Rect: slotRect(i, scale, lift), Scale: scale, Lift: lift}
	}
	return layout
}

// HandZone is the ordered list of docked cards, in drop order.
type HandZone struct {
	cards []ObjectID
}

// Cards returns a copy of the docked card IDs in hand order.
func (h *HandZone) Cards() []ObjectID {
	out := make([]ObjectID, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of docked cards.
func (h *HandZone) Len() int { return len(h.cards) }

// IndexOf returns the hand position of id, or -1.
func (h *HandZone) IndexOf(id ObjectID) int {
	for i, c := range h.cards {
		if c == id {
			return i
		}
	}
	return -1
}

// dock appends c to the end of the hand.
func (h *HandZone) dock(c *Card) {
	if h.IndexOf(c.id) < 0 {
		h.cards = append(h.cards, c.id)
	}
	c.inHand = true
}

// undock removes c from the hand order.
func (h *HandZone) undock(c *Card) {
	if i := h.IndexOf(c.id); i >= 0 {
		h.cards = append(h.cards[:i], h.cards[i+1:]...)
	}
	c.inHand = false
	c.handRect = Rect{}
}

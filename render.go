package cardtable

import (
	"strconv"
	"time"
)

// Renderer is the drawing surface a backend provides. Coordinates are in the
// space set up by the transform stack: Push composes a transform onto the
// current one and Pop restores the previous one. Text is positioned by the
// top-left corner of its bounding box.
type Renderer interface {
	Clear(c Color)
	FillRoundedRect(r Rect, radius float64, c Color)
	StrokeRoundedRect(r Rect, radius, width float64, c Color)
	Line(x0, y0, x1, y1, width float64, c Color)
	Text(f Font, s string, x, y float64, c Color)
	MeasureText(f Font, s string) (w, h float64)
	Push(t Transform)
	Pop()
}

// Placeholder card art, in unscaled card units.
const (
	cornerRadius   = 8
	outlineWidth   = 2
	cornerInset    = 7
	badgeSize      = 24
	badgeCorner    = 6
	deckCountInset = 10
)

var (
	cardFace    = Color{246.0 / 255, 246.0 / 255, 246.0 / 255, 1}
	cardOutline = Color{24.0 / 255, 24.0 / 255, 24.0 / 255, 1}
	deckFace    = Color{120.0 / 255, 0, 0, 1}
	deckInk     = Color{1, 1, 1, 1}
	badgeFace   = Color{240.0 / 255, 190.0 / 255, 40.0 / 255, 1}
	shadowColor = Color{0, 0, 0, 1}
)

// Draw renders one frame: background, grid while the pointer is dragging or
// panning, shadow trail, table objects back to front, bind badges, and
// finally the hand with the hovered card on top.
func (t *Table) Draw(r Renderer) {
	var t0 time.Time
	if t.debug {
		t0 = time.Now()
	}

	r.Clear(t.cfg.Background)
	r.Push(t.camera.ViewTransform())

	if t.state != DragIdle {
		t.drawGrid(r)
	}
	t.trail.draw(r)

	var binds []*Bind
	for _, o := range t.registry.Objects() {
		switch o := o.(type) {
		case *Card:
			if !o.inHand {
				drawCard(r, o)
			}
		case *Deck:
			drawDeck(r, o)
		case *Bind:
			binds = append(binds, o)
		}
	}
	for _, b := range binds {
		drawBindBadge(r, b)
	}

	hovered := t.Hovered()
	for _, id := range t.hand.cards {
		if c := t.registry.Card(id); c != nil && c != hovered {
			drawCard(r, c)
		}
	}
	if hovered != nil {
		drawCard(r, hovered)
	}

	r.Pop()

	if t.debug {
		t.log.Debug("draw", "elapsed", time.Since(t0), "objects", t.registry.Len())
	}
}

// drawCard draws a face-up card. Suited labels get the rank in the top-left
// corner and the suit glyph in the bottom-right, both in the suit color;
// anything else is drawn centered in neutral ink.
func drawCard(r Renderer, c *Card) {
	r.Push(Transform{X: c.pos.X, Y: c.pos.Y, Scale: c.scale})
	defer r.Pop()

	face := Rect{Width: c.size.X, Height: c.size.Y}
	r.FillRoundedRect(face, cornerRadius, cardFace)
	r.StrokeRoundedRect(face, cornerRadius, outlineWidth, cardOutline)

	rank, suit := splitLabel(c.Label)
	if suit == "" {
		w, h := r.MeasureText(FontLabel, rank)
		r.Text(FontLabel, rank, (face.Width-w)/2, (face.Height-h)/2, cardOutline)
		return
	}
	ink := SuitColor(suit)
	r.Text(FontRank, rank, cornerInset, cornerInset, ink)
	w, h := r.MeasureText(FontSuit, suit)
	r.Text(FontSuit, suit, face.Width-cornerInset-w, face.Height-cornerInset-h, ink)
}

// drawDeck draws the deck back with its remaining count.
func drawDeck(r Renderer, d *Deck) {
	r.Push(Transform{X: d.pos.X, Y: d.pos.Y, Scale: d.scale})
	defer r.Pop()

	face := Rect{Width: d.size.X, Height: d.size.Y}
	r.FillRoundedRect(face, cornerRadius, deckFace)
	r.StrokeRoundedRect(face, cornerRadius, outlineWidth, cardOutline)

	inner := Rect{X: deckCountInset, Y: deckCountInset, Width: face.Width - 2*deckCountInset, Height: face.Height - 2*deckCountInset}
	r.StrokeRoundedRect(inner, cornerRadius/2, 1, deckInk.WithAlpha(0.5))

	count := strconv.Itoa(d.Remaining())
	w, h := r.MeasureText(FontHUD, count)
	r.Text(FontHUD, count, (face.Width-w)/2, (face.Height-h)/2, deckInk)
}

// drawBindBadge draws the member count over the top-right corner of a stack.
func drawBindBadge(r Renderer, b *Bind) {
	r.Push(Transform{X: b.pos.X, Y: b.pos.Y, Scale: b.scale})
	defer r.Pop()

	badge := Rect{X: b.size.X - badgeSize/2, Y: -badgeSize / 2, Width: badgeSize, Height: badgeSize}
	r.FillRoundedRect(badge, badgeCorner, badgeFace)
	r.StrokeRoundedRect(badge, badgeCorner, 1, cardOutline)

	count := strconv.Itoa(b.Len())
	w, h := r.MeasureText(FontHUD, count)
	r.Text(FontHUD, count, badge.X+(badge.Width-w)/2, badge.Y+(badge.Height-h)/2, cardOutline)
}

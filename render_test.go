package cardtable

import (
	"strings"
	"testing"
)

// drawCall is one recorded Renderer call.
type drawCall struct {
	op    string
	rect  Rect
	text  string
	font  Font
	color Color
	x, y  float64
}

// recordingRenderer records draw intents and tracks transform depth.
type recordingRenderer struct {
	calls    []drawCall
	depth    int
	maxDepth int
}

func (r *recordingRenderer) Clear(c Color) {
	r.calls = append(r.calls, drawCall{op: "clear", color: c})
}

func (r *recordingRenderer) FillRoundedRect(rect Rect, radius float64, c Color) {
	r.calls = append(r.calls, drawCall{op: "fill", rect: rect, color: c})
}

func (r *recordingRenderer) StrokeRoundedRect(rect Rect, radius, width float64, c Color) {
	r.calls = append(r.calls, drawCall{op: "stroke", rect: rect, color: c})
}

func (r *recordingRenderer) Line(x0, y0, x1, y1, width float64, c Color) {
	r.calls = append(r.calls, drawCall{op: "line", x: x0, y: y0, color: c})
}

func (r *recordingRenderer) Text(f Font, s string, x, y float64, c Color) {
	r.calls = append(r.calls, drawCall{op: "text", text: s, font: f, x: x, y: y, color: c})
}

func (r *recordingRenderer) MeasureText(f Font, s string) (float64, float64) {
	return float64(len([]rune(s))) * 10, 16
}

func (r *recordingRenderer) Push(t Transform) {
	r.depth++
	r.maxDepth = max(r.maxDepth, r.depth)
	r.calls = append(r.calls, drawCall{op: "push", x: t.X, y: t.Y})
}

func (r *recordingRenderer) Pop() {
	r.depth--
	r.calls = append(r.calls, drawCall{op: "pop"})
}

func (r *recordingRenderer) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func (r *recordingRenderer) texts() []string {
	var out []string
	for _, c := range r.calls {
		if c.op == "text" {
			out = append(out, c.text)
		}
	}
	return out
}

func TestDrawFrameStructure(t *testing.T) {
	tb := newTestTable(t, []string{"A♣", "2♣"})
	rr := &recordingRenderer{}
	tb.Draw(rr)

	if rr.calls[0].op != "clear" || rr.calls[0].color != tb.Config().Background {
		t.Errorf("first call = %+v, want clear with background", rr.calls[0])
	}
	if rr.depth != 0 {
		t.Errorf("transform depth after Draw = %d, want 0", rr.depth)
	}
	if rr.count("line") != 0 {
		t.Error("grid should not draw while idle")
	}
	got := strings.Join(rr.texts(), " ")
	if got != "A ♠ 2" {
		t.Errorf("texts = %q, want starter rank, suit, and deck count", got)
	}
}

func TestDrawCardSuitColors(t *testing.T) {
	rr := &recordingRenderer{}
	drawCard(rr, &Card{body: body{scale: 1, size: testCardSize}, Label: "10♥"})

	var rank, suit drawCall
	for _, c := range rr.calls {
		if c.op == "text" && c.font == FontRank {
			rank = c
		}
		if c.op == "text" && c.font == FontSuit {
			suit = c
		}
	}
	red := SuitColor(SuitHearts)
	if rank.text != "10" || rank.color != red {
		t.Errorf("rank = %+v, want red 10", rank)
	}
	if suit.text != SuitHearts || suit.color != red {
		t.Errorf("suit = %+v, want red heart", suit)
	}
	if rank.x > 20 || rank.y > 20 {
		t.Errorf("rank at (%f,%f), want top-left", rank.x, rank.y)
	}
	if suit.x < 60 || suit.y < 100 {
		t.Errorf("suit at (%f,%f), want bottom-right", suit.x, suit.y)
	}
}

func TestDrawCardRankOnlyCentered(t *testing.T) {
	rr := &recordingRenderer{}
	drawCard(rr, &Card{body: body{scale: 1, size: testCardSize}, Label: "Joker"})
	for _, c := range rr.calls {
		if c.op != "text" {
			continue
		}
		if c.font != FontLabel || c.text != "Joker" {
			t.Errorf("text = %+v, want centered label", c)
		}
		if !approxEqual(c.x, (90-50)/2.0, epsilon) || !approxEqual(c.y, (132-16)/2.0, epsilon) {
			t.Errorf("label at (%f,%f), want centered", c.x, c.y)
		}
	}
}

func TestDrawGridWhileDragging(t *testing.T) {
	tb := newTestTable(t, nil)
	in := NewSyntheticInput()
	in.Press(100, 100)
	runFrames(tb, in, 0)

	rr := &recordingRenderer{}
	tb.Draw(rr)
	if rr.count("line") == 0 {
		t.Error("grid should draw while panning")
	}
}

func TestDrawBindBadgeAfterMembers(t *testing.T) {
	tb := newTestTable(t, nil)
	r := tb.Registry()
	a := r.NewCard("A", Vec2{192, 0})
	b := r.NewCard("B", Vec2{192, 0})
	r.CreateBind(a, b)

	rr := &recordingRenderer{}
	tb.Draw(rr)
	texts := rr.texts()
	if texts[len(texts)-1] != "2" {
		t.Errorf("last text = %q, want bind badge count", texts[len(texts)-1])
	}
}

func TestDrawHoveredHandCardLast(t *testing.T) {
	tb := newTestTable(t, []string{"3♦", "2♦"})
	in := NewSyntheticInput()
	dx, dy := screenOf(tb, tb.Deck(), 40, 60)
	for range 2 {
		in.Drag(dx, dy, 640, 700, 3)
	}
	runFrames(tb, in, 1)

	first := tb.Registry().Card(tb.Hand().Cards()[0])
	c := first.HandRect().Center()
	in.Hover(c.X, c.Y)
	runFrames(tb, in, 0)
	if tb.Hovered() != first {
		t.Fatalf("Hovered = %v, want first hand card", tb.Hovered())
	}

	rr := &recordingRenderer{}
	tb.Draw(rr)
	texts := rr.texts()
	if texts[len(texts)-1] != SuitDiamonds || texts[len(texts)-2] != "2" {
		t.Errorf("last texts = %v, want the hovered 2♦", texts[len(texts)-2:])
	}
}

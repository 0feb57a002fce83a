package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/cardtable"
)

// Default virtual pixel size of one terminal cell.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Renderer draws table frames onto a tcell.Screen.
type Renderer struct {
	screen       tcell.Screen
	cellW, cellH float64
	stack        []cardtable.Transform
	cur          cardtable.Transform
	bg           cardtable.Color
}

// NewRenderer returns a renderer for screen using cells of cellW x cellH
// virtual pixels.
func NewRenderer(screen tcell.Screen, cellW, cellH float64) *Renderer {
	return &Renderer{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
		cur:    cardtable.Transform{Scale: 1},
	}
}

// Viewport returns the table viewport covering the whole screen.
func (r *Renderer) Viewport() cardtable.Rect {
	w, h := r.screen.Size()
	return cardtable.Rect{Width: float64(w) * r.cellW, Height: float64(h) * r.cellH}
}

// Begin resets the transform stack for a new frame.
func (r *Renderer) Begin() {
	r.stack = r.stack[:0]
	r.cur = cardtable.Transform{Scale: 1}
}

func (r *Renderer) Clear(c cardtable.Color) {
	r.bg = c
	r.screen.Fill(' ', tcell.StyleDefault.Background(tcellColor(c)))
}

func (r *Renderer) Push(t cardtable.Transform) {
	r.stack = append(r.stack, r.cur)
	r.cur = r.cur.Then(t)
}

func (r *Renderer) Pop() {
	n := len(r.stack)
	if n == 0 {
		return
	}
	r.cur = r.stack[n-1]
	r.stack = r.stack[:n-1]
}

// cellRect maps rect through the current transform and returns the
// inclusive cell range it covers.
func (r *Renderer) cellRect(rect cardtable.Rect) (c0, r0, c1, r1 int) {
	x, y := r.cur.Apply(rect.X, rect.Y)
	w, h := rect.Width*r.cur.Scale, rect.Height*r.cur.Scale
	c0 = int(math.Floor(x / r.cellW))
	r0 = int(math.Floor(y / r.cellH))
	c1 = int(math.Ceil((x+w)/r.cellW)) - 1
	r1 = int(math.Ceil((y+h)/r.cellH)) - 1
	return c0, r0, max(c0, c1), max(r0, r1)
}

// FillRoundedRect paints the covered cells. Translucent fills are blended
// over the cell background.
func (r *Renderer) FillRoundedRect(rect cardtable.Rect, _ float64, c cardtable.Color) {
	c0, r0, c1, r1 := r.cellRect(rect)
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			bg := blend(r.backgroundAt(x, y), c)
			r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(tcellColor(bg)))
		}
	}
}

// StrokeRoundedRect draws a box outline along the covered cells.
func (r *Renderer) StrokeRoundedRect(rect cardtable.Rect, _, _ float64, c cardtable.Color) {
	c0, r0, c1, r1 := r.cellRect(rect)
	for x := c0; x <= c1; x++ {
		r.putRune(x, r0, '─', c)
		r.putRune(x, r1, '─', c)
	}
	for y := r0; y <= r1; y++ {
		r.putRune(c0, y, '│', c)
		r.putRune(c1, y, '│', c)
	}
	r.putRune(c0, r0, '╭', c)
	r.putRune(c1, r0, '╮', c)
	r.putRune(c0, r1, '╰', c)
	r.putRune(c1, r1, '╯', c)
}

// Line marks every cell the segment passes through.
func (r *Renderer) Line(x0, y0, x1, y1, _ float64, c cardtable.Color) {
	sx0, sy0 := r.cur.Apply(x0, y0)
	sx1, sy1 := r.cur.Apply(x1, y1)
	steps := int(math.Max(math.Abs(sx1-sx0)/r.cellW, math.Abs(sy1-sy0)/r.cellH)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Floor((sx0 + (sx1-sx0)*t) / r.cellW))
		y := int(math.Floor((sy0 + (sy1-sy0)*t) / r.cellH))
		r.putRune(x, y, '·', c)
	}
}

// Text writes s one rune per cell starting at the cell holding (x, y).
func (r *Renderer) Text(_ cardtable.Font, s string, x, y float64, c cardtable.Color) {
	sx, sy := r.cur.Apply(x, y)
	col := int(math.Floor(sx / r.cellW))
	row := int(math.Floor(sy / r.cellH))
	for _, ch := range s {
		r.putRune(col, row, ch, c)
		col++
	}
}

// MeasureText reports the size of s in the current unscaled units.
func (r *Renderer) MeasureText(_ cardtable.Font, s string) (w, h float64) {
	n := 0
	for range s {
		n++
	}
	scale := r.cur.Scale
	if scale == 0 {
		scale = 1
	}
	return float64(n) * r.cellW / scale, r.cellH / scale
}

// putRune draws ch in color c, keeping the cell background.
func (r *Renderer) putRune(x, y int, ch rune, c cardtable.Color) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h || c.A <= 0 {
		return
	}
	bg := r.backgroundAt(x, y)
	style := tcell.StyleDefault.Background(tcellColor(bg)).Foreground(tcellColor(blend(bg, c)))
	r.screen.SetContent(x, y, ch, nil, style)
}

// backgroundAt returns the background color of a cell, or the clear color.
func (r *Renderer) backgroundAt(x, y int) cardtable.Color {
	_, _, style, _ := r.screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	if bg == tcell.ColorDefault || !bg.Valid() {
		return r.bg
	}
	cr, cg, cb := bg.RGB()
	if cr < 0 {
		return r.bg
	}
	return cardtable.Color{R: float64(cr) / 255, G: float64(cg) / 255, B: float64(cb) / 255, A: 1}
}

// blend composites c over an opaque base.
func blend(base, c cardtable.Color) cardtable.Color {
	a := c.A
	if a >= 1 {
		return cardtable.Color{R: c.R, G: c.G, B: c.B, A: 1}
	}
	if a <= 0 {
		return base
	}
	return cardtable.Color{
		R: c.R*a + base.R*(1-a),
		G: c.G*a + base.G*(1-a),
		B: c.B*a + base.B*(1-a),
		A: 1,
	}
}

func tcellColor(c cardtable.Color) tcell.Color {
	to8 := func(v float64) int32 {
		return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return tcell.NewRGBColor(to8(c.R), to8(c.G), to8(c.B))
}

var _ cardtable.Renderer = (*Renderer)(nil)

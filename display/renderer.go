package display

import (
	"bytes"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/cardtable"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	b := whiteImage.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	for i := range pix {
		pix[i] = 0xff
	}
	whiteImage.WritePixels(pix)
}

// fontSizes are the text sizes, in unscaled card units, for each table font.
var fontSizes = [...]float64{
	cardtable.FontRank:  18,
	cardtable.FontSuit:  16,
	cardtable.FontLabel: 22,
	cardtable.FontHUD:   14,
}

// Renderer draws table frames onto an ebiten.Image. Shapes are built as
// vector paths in screen space after applying the current transform, so
// outlines and corners stay crisp at any zoom.
type Renderer struct {
	dst   *ebiten.Image
	stack []cardtable.Transform
	cur   cardtable.Transform
	faces [len(fontSizes)]*text.GoTextFace

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer loads the Go fonts and returns a renderer with an identity
// transform.
func NewRenderer() (*Renderer, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("display: load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("display: load bold font: %w", err)
	}
	r := &Renderer{cur: cardtable.Transform{Scale: 1}}
	for f, size := range fontSizes {
		src := regular
		if cardtable.Font(f) == cardtable.FontRank || cardtable.Font(f) == cardtable.FontLabel {
			src = bold
		}
		r.faces[f] = &text.GoTextFace{Source: src, Size: size}
	}
	return r, nil
}

// Begin targets dst for the next frame and resets the transform stack.
func (r *Renderer) Begin(dst *ebiten.Image) {
	r.dst = dst
	r.stack = r.stack[:0]
	r.cur = cardtable.Transform{Scale: 1}
}

func (r *Renderer) Clear(c cardtable.Color) {
	r.dst.Fill(toRGBA(c))
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

// screenRect maps rect through the current transform.
func (r *Renderer) screenRect(rect cardtable.Rect) (x, y, w, h float32) {
	sx, sy := r.cur.Apply(rect.X, rect.Y)
	s := r.cur.Scale
	return float32(sx), float32(sy), float32(rect.Width * s), float32(rect.Height * s)
}

func (r *Renderer) FillRoundedRect(rect cardtable.Rect, radius float64, c cardtable.Color) {
	x, y, w, h := r.screenRect(rect)
	p := roundedRectPath(x, y, w, h, float32(radius*r.cur.Scale))
	r.vertices, r.indices = p.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	r.drawVertices(c)
}

func (r *Renderer) StrokeRoundedRect(rect cardtable.Rect, radius, width float64, c cardtable.Color) {
	x, y, w, h := r.screenRect(rect)
	p := roundedRectPath(x, y, w, h, float32(radius*r.cur.Scale))
	op := &vector.StrokeOptions{Width: float32(width * r.cur.Scale), LineJoin: vector.LineJoinRound}
	r.vertices, r.indices = p.AppendVerticesAndIndicesForStroke(r.vertices[:0], r.indices[:0], op)
	r.drawVertices(c)
}

func (r *Renderer) Line(x0, y0, x1, y1, width float64, c cardtable.Color) {
	sx0, sy0 := r.cur.Apply(x0, y0)
	sx1, sy1 := r.cur.Apply(x1, y1)
	var p vector.Path
	p.MoveTo(float32(sx0), float32(sy0))
	p.LineTo(float32(sx1), float32(sy1))
	op := &vector.StrokeOptions{Width: float32(width * r.cur.Scale)}
	r.vertices, r.indices = p.AppendVerticesAndIndicesForStroke(r.vertices[:0], r.indices[:0], op)
	r.drawVertices(c)
}

func (r *Renderer) Text(f cardtable.Font, s string, x, y float64, c cardtable.Color) {
	face := r.face(f)
	sx, sy := r.cur.Apply(x, y)
	op := &text.DrawOptions{}
	op.GeoM.Scale(r.cur.Scale, r.cur.Scale)
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(toRGBA(c))
	text.Draw(r.dst, s, face, op)
}

// MeasureText reports the size of s in unscaled units.
func (r *Renderer) MeasureText(f cardtable.Font, s string) (w, h float64) {
	face := r.face(f)
	m := face.Metrics()
	return text.Measure(s, face, m.HAscent+m.HDescent+m.HLineGap)
}

func (r *Renderer) face(f cardtable.Font) *text.GoTextFace {
	if int(f) < len(r.faces) {
		return r.faces[f]
	}
	return r.faces[cardtable.FontHUD]
}

// drawVertices colors the pending triangles with c and draws them.
func (r *Renderer) drawVertices(c cardtable.Color) {
	if len(r.indices) == 0 {
		return
	}
	rgba := toRGBA(c)
	cr, cg, cb, ca := float32(rgba.R)/0xff, float32(rgba.G)/0xff, float32(rgba.B)/0xff, float32(rgba.A)/0xff
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = cr
		r.vertices[i].ColorG = cg
		r.vertices[i].ColorB = cb
		r.vertices[i].ColorA = ca
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	r.dst.DrawTriangles(r.vertices, r.indices, whiteSubImage, op)
}

// roundedRectPath builds a closed rounded rectangle. The radius is capped at
// half the shorter side.
func roundedRectPath(x, y, w, h, radius float32) *vector.Path {
	radius = min(radius, w/2, h/2)
	if radius < 0 {
		radius = 0
	}
	var p vector.Path
	p.MoveTo(x+radius, y)
	p.LineTo(x+w-radius, y)
	p.ArcTo(x+w, y, x+w, y+radius, radius)
	p.LineTo(x+w, y+h-radius)
	p.ArcTo(x+w, y+h, x+w-radius, y+h, radius)
	p.LineTo(x+radius, y+h)
	p.ArcTo(x, y+h, x, y+h-radius, radius)
	p.LineTo(x, y+radius)
	p.ArcTo(x, y, x+radius, y, radius)
	p.Close()
	return &p
}

var _ cardtable.Renderer = (*Renderer)(nil)

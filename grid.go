package cardtable

import "math"

// Snap rounds v to the nearest multiple of cell, halves rounding up.
// A non-positive cell leaves v unchanged.
func Snap(v, cell float64) float64 {
	if cell <= 0 {
		return v
	}
	return math.Floor(v/cell+0.5) * cell
}

// SnapPoint snaps both axes of p independently.
func SnapPoint(p Vec2, cell float64) Vec2 {
	return Vec2{Snap(p.X, cell), Snap(p.Y, cell)}
}

// GridSpan is the number of cells an object of the given size occupies on
// each axis, at least one.
func GridSpan(size Vec2, cell float64) (int, int) {
	span := func(v float64) int {
		if cell <= 0 || v <= cell {
			return 1
		}
		return int(math.Ceil(v / cell))
	}
	return span(size.X), span(size.Y)
}

// SnapBlock snaps an object whose top-left is pos. The object is centered in
// a block of whole cells; the block's top-left lands on the nearest cell
// multiple and the object keeps its margin inside it. A 90x132 card on 48px
// cells spans 2x3 cells and sits 3px and 6px in from the block corner.
func SnapBlock(pos, size Vec2, cell float64) Vec2 {
	if cell <= 0 {
		return pos
	}
	sx, sy := GridSpan(size, cell)
	margin := Vec2{
		max(0, (float64(sx)*cell-size.X)/2),
		max(0, (float64(sy)*cell-size.Y)/2),
	}
	return SnapPoint(pos.Sub(margin), cell).Add(margin)
}

// dashedLine splits the segment (x0, y0)-(x1, y1) into dashes of length dash
// separated by gap, calling emit for each dash. The last dash is clipped to
// the segment end.
func dashedLine(x0, y0, x1, y1, dash, gap float64, emit func(ax, ay, bx, by float64)) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || dash <= 0 {
		return
	}
	ux, uy := dx/length, dy/length
	for progress := 0.0; progress < length; progress += dash + gap {
		end := math.Min(progress+dash, length)
		emit(x0+ux*progress, y0+uy*progress, x0+ux*end, y0+uy*end)
	}
}

// gridLines calls line for every dashed grid line covering bounds, in world
// space. Vertical lines come first, left to right, then horizontal lines top
// to bottom.
func gridLines(bounds Rect, cell float64, line func(x0, y0, x1, y1 float64)) {
	if cell <= 0 {
		return
	}
	startX := math.Floor(bounds.X/cell) * cell
	endX := math.Ceil((bounds.X+bounds.Width)/cell) * cell
	startY := math.Floor(bounds.Y/cell) * cell
	endY := math.Ceil((bounds.Y+bounds.Height)/cell) * cell

	for x := startX; x <= endX; x += cell {
		line(x, startY, x, endY)
	}
	for y := startY; y <= endY; y += cell {
		line(startX, y, endX, y)
	}
}

// drawGrid renders the dashed grid over the visible world area. It must run
// with the camera transform pushed. Line width stays at least one screen
// pixel at any zoom.
func (t *Table) drawGrid(r Renderer) {
	g := t.cfg.Grid
	width := math.Max(g.LineWidth, 1/math.Max(t.camera.Zoom, 1e-6))
	gridLines(t.camera.VisibleBounds(), g.CellSize, func(x0, y0, x1, y1 float64) {
		dashedLine(x0, y0, x1, y1, g.DashLength, g.GapLength, func(ax, ay, bx, by float64) {
			r.Line(ax, ay, bx, by, width, g.Color)
		})
	})
}

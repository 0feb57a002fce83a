package cardtable

import "math"

// Camera controls the view onto the table: center, zoom, and viewport.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// MinZoom and MaxZoom bound Zoom for ZoomAt.
	MinZoom, MaxZoom float64
	// ZoomSensitivity converts one wheel step into a zoom delta.
	ZoomSensitivity float64

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool
}

// NewCamera creates a camera centered on the origin at zoom 1 with the
// bounds and sensitivity from cfg.
func NewCamera(viewport Rect, cfg CameraConfig) *Camera {
	return &Camera{
		Zoom:            1.0,
		Viewport:        viewport,
		MinZoom:         cfg.MinZoom,
		MaxZoom:         cfg.MaxZoom,
		ZoomSensitivity: cfg.ZoomSensitivity,
		dirty:           true,
	}
}

// SetViewport changes the screen rectangle the camera maps onto.
func (c *Camera) SetViewport(viewport Rect) {
	if c.Viewport != viewport {
		c.Viewport = viewport
		c.markDirty()
	}
}

// ZoomAt changes the zoom by delta wheel steps, clamped to [MinZoom, MaxZoom],
// keeping the world point under the screen point (sx, sy) fixed.
func (c *Camera) ZoomAt(delta, sx, sy float64) {
	if delta == 0 {
		return
	}
	next := clamp(c.Zoom+delta*c.ZoomSensitivity, c.MinZoom, c.MaxZoom)
	if next == c.Zoom {
		return
	}
	beforeX, beforeY := c.ScreenToWorld(sx, sy)
	c.Zoom = next
	c.markDirty()
	afterX, afterY := c.ScreenToWorld(sx, sy)
	c.X += beforeX - afterX
	c.Y += beforeY - afterY
	c.markDirty()
}

// Pan moves the camera center by a screen-space delta, converted to world
// units at the current zoom.
func (c *Camera) Pan(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	z := math.Max(c.Zoom, 1e-6)
	c.X += dx / z
	c.Y += dy / z
	c.markDirty()
}

// Reset centers the camera on the origin at zoom 1.
func (c *Camera) Reset() {
	c.X, c.Y = 0, 0
	c.Zoom = 1
	c.markDirty()
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	z := c.Zoom

	c.viewMatrix = [6]float64{z, 0, 0, z, cx - z*c.X, cy - z*c.Y}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// ViewTransform returns the world-to-screen mapping as a Transform suitable
// for Renderer.Push.
func (c *Camera) ViewTransform() Transform {
	m := c.computeViewMatrix()
	return Transform{X: m[4], Y: m[5], Scale: m[0]}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	sx, sy = transformPoint(c.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	wx, wy = transformPoint(c.invViewMatrix, sx, sy)
	return
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's visible
// area in world space.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	inv := c.invViewMatrix

	x0, y0 := transformPoint(inv, c.Viewport.X, c.Viewport.Y)
	x1, y1 := transformPoint(inv, c.Viewport.X+c.Viewport.Width, c.Viewport.Y+c.Viewport.Height)

	minX, maxX := math.Min(x0, x1), math.Max(x0, x1)
	minY, maxY := math.Min(y0, y1), math.Max(y0, y1)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// markDirty forces a recomputation of the view matrix on next use.
func (c *Camera) markDirty() {
	c.dirty = true
}

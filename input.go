package cardtable

// Input is the per-frame input state a backend hands to Table.Update.
// Pointer coordinates are in screen space.
type Input interface {
	PointerPosition() (x, y float64)
	PrimaryDown() bool
	PrimaryJustPressed() bool
	PrimaryJustReleased() bool
	// ModifiersDown reports whether any modifier in mods is held.
	ModifiersDown(mods KeyModifiers) bool
	// WheelDelta is the vertical wheel movement this frame, positive away
	// from the user.
	WheelDelta() float64
	KeyJustPressed(k Key) bool
}

// processInput maps one frame of input onto the drag controller and camera.
func (t *Table) processInput(in Input) {
	x, y := in.PointerPosition()
	t.pointer = Vec2{x, y}

	if in.KeyJustPressed(KeyEscape) {
		t.ResetCamera()
	}
	if d := in.WheelDelta(); d != 0 {
		t.camera.ZoomAt(d, x, y)
	}

	switch {
	case in.PrimaryJustPressed():
		t.press(t.pointer, in.ModifiersDown(t.cfg.Drag.DetachMod))
	case in.PrimaryJustReleased():
		t.release(t.pointer)
	default:
		t.follow(t.pointer)
	}
}

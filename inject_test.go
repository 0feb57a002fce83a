package cardtable

import "testing"

func TestInjectClick(t *testing.T) {
	in := NewSyntheticInput()
	in.Click(50, 60)
	if in.Pending() != 2 {
		t.Fatalf("expected 2 queued frames, got %d", in.Pending())
	}

	// Frame 1: press
	in.Advance()
	if !in.PrimaryJustPressed() || !in.PrimaryDown() {
		t.Error("press frame should report a fresh press")
	}
	if x, y := in.PointerPosition(); x != 50 || y != 60 {
		t.Errorf("pointer = (%f, %f), want (50, 60)", x, y)
	}

	// Frame 2: release
	in.Advance()
	if !in.PrimaryJustReleased() || in.PrimaryDown() {
		t.Error("release frame should report a fresh release")
	}
	if in.Pending() != 0 {
		t.Errorf("expected 0 remaining frames, got %d", in.Pending())
	}
}

func TestInjectDrag(t *testing.T) {
	in := NewSyntheticInput()
	// Drag from (10,10) to (200,200) over 5 frames:
	// frame 0: press at (10,10)
	// frame 1..3: moves at 1/4, 2/4, 3/4
	// frame 4: release at (200,200)
	in.Drag(10, 10, 200, 200, 5)
	if in.Pending() != 5 {
		t.Fatalf("expected 5 queued frames, got %d", in.Pending())
	}

	in.Advance()
	if !in.PrimaryJustPressed() {
		t.Error("first frame should press")
	}
	in.Advance()
	x, y := in.PointerPosition()
	if !approxEqual(x, 57.5, epsilon) || !approxEqual(y, 57.5, epsilon) {
		t.Errorf("first move = (%f, %f), want (57.5, 57.5)", x, y)
	}
	if !in.PrimaryDown() || in.PrimaryJustPressed() {
		t.Error("move frames should hold the button without a new press")
	}
	in.Advance()
	in.Advance()
	in.Advance()
	x, y = in.PointerPosition()
	if x != 200 || y != 200 || !in.PrimaryJustReleased() {
		t.Errorf("last frame = (%f, %f) released=%v, want release at (200, 200)", x, y, in.PrimaryJustReleased())
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	in := NewSyntheticInput()
	in.Drag(0, 0, 10, 10, 0)
	if in.Pending() != 2 {
		t.Errorf("expected press + release, got %d frames", in.Pending())
	}
}

func TestInjectEmptyQueueHoldsState(t *testing.T) {
	in := NewSyntheticInput()
	in.Press(30, 40)
	in.Advance()
	if in.Advance() {
		t.Error("Advance on empty queue should return false")
	}
	if !in.PrimaryDown() || in.PrimaryJustPressed() {
		t.Error("held button should stay down without a fresh press")
	}
	if x, y := in.PointerPosition(); x != 30 || y != 40 {
		t.Errorf("pointer = (%f, %f), want (30, 40)", x, y)
	}
}

func TestInjectModifiersWheelAndKeys(t *testing.T) {
	in := NewSyntheticInput()
	in.SetModifiers(ModShift)
	in.Hover(5, 5)
	in.SetModifiers(0)
	in.Wheel(5, 5, 2)
	in.Key(KeyEscape)

	in.Advance()
	if !in.ModifiersDown(ModShift | ModCtrl) {
		t.Error("shift should satisfy a shift|ctrl query")
	}
	if in.ModifiersDown(ModAlt) {
		t.Error("alt should not be held")
	}

	in.Advance()
	if in.WheelDelta() != 2 {
		t.Errorf("wheel = %f, want 2", in.WheelDelta())
	}
	if in.ModifiersDown(ModShift) {
		t.Error("modifiers should clear for frames queued after SetModifiers(0)")
	}

	in.Advance()
	if !in.KeyJustPressed(KeyEscape) || in.KeyJustPressed(KeyF12) {
		t.Error("only escape should be pressed on the key frame")
	}
	if in.WheelDelta() != 0 {
		t.Error("wheel should not repeat on the key frame")
	}
}

func TestInjectWait(t *testing.T) {
	in := NewSyntheticInput()
	in.Press(1, 2)
	in.Wait(3)
	if in.Pending() != 4 {
		t.Fatalf("expected 4 frames, got %d", in.Pending())
	}
	for range 4 {
		in.Advance()
	}
	if !in.PrimaryDown() {
		t.Error("wait frames should keep the button held")
	}
}

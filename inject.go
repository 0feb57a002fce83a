package cardtable

// syntheticFrame is one frame of scripted input. Screen coordinates are used,
// matching what a real pointer reports, and converted to world coordinates by
// the table camera like real input.
type syntheticFrame struct {
	x, y  float64
	down  bool
	wheel float64
	keys  []Key
	mods  KeyModifiers
}

// SyntheticInput is an Input fed from a queue of scripted frames. Each call to
// Advance consumes one frame; when the queue is empty the pointer stays where
// it was with the button state unchanged.
type SyntheticInput struct {
	queue    []syntheticFrame
	cur      syntheticFrame
	prevDown bool
	mods     KeyModifiers
}

// NewSyntheticInput returns an input with the pointer at the origin and no
// button held.
func NewSyntheticInput() *SyntheticInput {
	return &SyntheticInput{}
}

// SetModifiers sets the modifiers held during every frame queued afterwards.
func (s *SyntheticInput) SetModifiers(mods KeyModifiers) {
	s.mods = mods
}

func (s *SyntheticInput) push(f syntheticFrame) {
	f.mods = s.mods
	s.queue = append(s.queue, f)
}

// last returns the most recently queued frame, or the current one.
func (s *SyntheticInput) last() syntheticFrame {
	if n := len(s.queue); n > 0 {
		return s.queue[n-1]
	}
	return s.cur
}

// Press queues a primary-button press at the given screen coordinates.
func (s *SyntheticInput) Press(x, y float64) {
	s.push(syntheticFrame{x: x, y: y, down: true})
}

// Move queues a pointer move with the button held. Use it between Press and
// Release to simulate a drag.
func (s *SyntheticInput) Move(x, y float64) {
	s.push(syntheticFrame{x: x, y: y, down: true})
}

// Hover queues a pointer move with the button up.
func (s *SyntheticInput) Hover(x, y float64) {
	s.push(syntheticFrame{x: x, y: y})
}

// Release queues a primary-button release at the given screen coordinates.
func (s *SyntheticInput) Release(x, y float64) {
	s.push(syntheticFrame{x: x, y: y})
}

// Click queues a press followed by a release at the same point. Consumes two
// frames.
func (s *SyntheticInput) Click(x, y float64) {
	s.Press(x, y)
	s.Release(x, y)
}

// Drag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, and a release at (toX, toY). Minimum frames is 2.
func (s *SyntheticInput) Drag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.Press(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.Move(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.Release(toX, toY)
}

// Wheel queues one frame of wheel movement at the given screen point.
func (s *SyntheticInput) Wheel(x, y, delta float64) {
	l := s.last()
	s.push(syntheticFrame{x: x, y: y, down: l.down, wheel: delta})
}

// Key queues one frame in which k is just pressed.
func (s *SyntheticInput) Key(k Key) {
	l := s.last()
	s.push(syntheticFrame{x: l.x, y: l.y, down: l.down, keys: []Key{k}})
}

// Wait queues n frames that repeat the last pointer state.
func (s *SyntheticInput) Wait(n int) {
	for range n {
		l := s.last()
		s.push(syntheticFrame{x: l.x, y: l.y, down: l.down})
	}
}

// Pending returns the number of queued frames.
func (s *SyntheticInput) Pending() int { return len(s.queue) }

// Advance moves to the next queued frame. It returns false when the queue was
// empty, in which case the pointer holds its position and button state.
func (s *SyntheticInput) Advance() bool {
	s.prevDown = s.cur.down
	if len(s.queue) == 0 {
		s.cur = syntheticFrame{x: s.cur.x, y: s.cur.y, down: s.cur.down, mods: s.cur.mods}
		return false
	}
	s.cur = s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]
	return true
}

func (s *SyntheticInput) PointerPosition() (float64, float64) { return s.cur.x, s.cur.y }
func (s *SyntheticInput) PrimaryDown() bool { return s.cur.down }
func (s *SyntheticInput) PrimaryJustPressed() bool { return s.cur.down && !s.prevDown }
func (s *SyntheticInput) PrimaryJustReleased() bool { return !s.cur.down && s.prevDown }
func (s *SyntheticInput) WheelDelta() float64 { return s.cur.wheel }

func (s *SyntheticInput) ModifiersDown(mods KeyModifiers) bool {
	return s.cur.mods&mods != 0
}

func (s *SyntheticInput) KeyJustPressed(k Key) bool {
	for _, key := range s.cur.keys {
		if key == k {
			return true
		}
	}
	return false
}

var _ Input = (*SyntheticInput)(nil)

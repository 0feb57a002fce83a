package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/cardtable"
)

// Input turns tcell events into per-frame table input. Events are fed with
// Handle between frames and EndFrame clears the one-frame edges. A press and
// release that arrive within the same frame are reported on consecutive
// frames so the table sees both.
type Input struct {
	cellW, cellH float64

	x, y           float64
	down           bool
	pressed        bool
	released       bool
	releasePending bool
	wheel          float64
	mods           cardtable.KeyModifiers
	keys           []cardtable.Key
	quit           bool
}

// NewInput returns an input that reports pointer positions at the center of
// cells of cellW x cellH virtual pixels.
func NewInput(cellW, cellH float64) *Input {
	return &Input{cellW: cellW, cellH: cellH}
}

// Handle applies one tcell event.
func (in *Input) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		in.x = (float64(cx) + 0.5) * in.cellW
		in.y = (float64(cy) + 0.5) * in.cellH
		in.mods = modifiers(ev.Modifiers())

		btn := ev.Buttons()
		if btn&tcell.WheelUp != 0 {
			in.wheel++
		}
		if btn&tcell.WheelDown != 0 {
			in.wheel--
		}
		down := btn&tcell.Button1 != 0
		switch {
		case down && !in.down:
			in.pressed = true
		case !down && in.down:
			if in.pressed {
				in.releasePending = true
			} else {
				in.released = true
			}
		}
		in.down = down

	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape:
			in.keys = append(in.keys, cardtable.KeyEscape)
		case ev.Key() == tcell.KeyF12:
			in.keys = append(in.keys, cardtable.KeyF12)
		case ev.Key() == tcell.KeyCtrlC, ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			in.quit = true
		}
	}
}

// EndFrame clears the edges and wheel reported during the last frame.
func (in *Input) EndFrame() {
	in.pressed = false
	in.released = in.releasePending
	in.releasePending = false
	in.wheel = 0
	in.keys = in.keys[:0]
}

// Quit reports whether a quit key was pressed.
func (in *Input) Quit() bool { return in.quit }

func (in *Input) PointerPosition() (float64, float64) { return in.x, in.y }

// PrimaryDown stays true on the frame a deferred release is pending.
func (in *Input) PrimaryDown() bool { return in.down || in.releasePending }

func (in *Input) PrimaryJustPressed() bool { return in.pressed }
func (in *Input) PrimaryJustReleased() bool { return in.released }
func (in *Input) WheelDelta() float64 { return in.wheel }

func (in *Input) ModifiersDown(mods cardtable.KeyModifiers) bool {
	return in.mods&mods != 0
}

func (in *Input) KeyJustPressed(k cardtable.Key) bool {
	for _, key := range in.keys {
		if key == k {
			return true
		}
	}
	return false
}

func modifiers(m tcell.ModMask) cardtable.KeyModifiers {
	var mods cardtable.KeyModifiers
	if m&tcell.ModShift != 0 {
		mods |= cardtable.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= cardtable.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= cardtable.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= cardtable.ModMeta
	}
	return mods
}

var _ cardtable.Input = (*Input)(nil)

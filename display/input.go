package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/cardtable"
)

// keyMap maps table keys to Ebitengine keys.
var keyMap = map[cardtable.Key]ebiten.Key{
	cardtable.KeyEscape: ebiten.KeyEscape,
	cardtable.KeyF12:    ebiten.KeyF12,
}

// Input reads the mouse, wheel, and keyboard from Ebitengine. It must be
// queried from within Game.Update.
type Input struct{}

func (Input) PointerPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (Input) PrimaryDown() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (Input) PrimaryJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (Input) PrimaryJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (Input) ModifiersDown(mods cardtable.KeyModifiers) bool {
	return readModifiers()&mods != 0
}

func (Input) WheelDelta() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

func (Input) KeyJustPressed(k cardtable.Key) bool {
	ek, ok := keyMap[k]
	return ok && inpututil.IsKeyJustPressed(ek)
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() cardtable.KeyModifiers {
	var mods cardtable.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= cardtable.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= cardtable.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= cardtable.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= cardtable.ModMeta
	}
	return mods
}

var _ cardtable.Input = Input{}

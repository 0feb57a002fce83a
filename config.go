package cardtable

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid table config")

// CameraConfig bounds and tunes the camera.
type CameraConfig struct {
	MinZoom         float64
	MaxZoom         float64
	ZoomSensitivity float64 // zoom delta per wheel step
}

// HandConfig tunes the hand zone layout.
type HandConfig struct {
	MarginRatio     float64 // horizontal margin as a fraction of viewport width
	DesiredScale    float64 // card scale when there is room for every card
	MinScale        float64 // floor for DesiredScale; an overflowing hand still shrinks below it
	ArcHeight       float64 // lift of the center card above the edge cards, in pixels
	HoverScale      float64 // multiplier applied to the hovered card
	HoverLift       float64 // minimum lift of the hovered card, in pixels
	BottomPadding   float64 // gap between the card bottoms and the viewport edge
	ZoneHeightRatio float64 // bottom fraction of the viewport that accepts drops
}

// DragConfig tunes pointer dragging.
type DragConfig struct {
	DragScale float64      // scale bump while an object is held
	DetachMod KeyModifiers // any of these held on press detaches a bound card
	SpawnGap  float64      // gap between the deck and a freshly drawn card
}

// GridConfig describes the snap grid and its dashed rendering.
type GridConfig struct {
	CellSize   float64
	DashLength float64
	GapLength  float64
	LineWidth  float64
	Color      Color
}

// ShadowConfig tunes the motion trail drawn behind dragged objects.
type ShadowConfig struct {
	Enabled     bool
	Lifetime    float32 // seconds a sample stays visible
	MinDistance float64 // world distance between samples
	Alpha       float64 // starting opacity of a fresh sample
}

// Config holds every tunable of a Table. Start from DefaultConfig.
type Config struct {
	CardSize Vec2
	Camera   CameraConfig
	Hand     HandConfig
	Drag     DragConfig
	Grid     GridConfig
	Shadow   ShadowConfig

	// Background is the clear color of every frame.
	Background Color

	// Logger receives debug-level state transitions. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the stock table tuning.
func DefaultConfig() Config {
	return Config{
		CardSize: Vec2{90, 132},
		Camera: CameraConfig{
			MinZoom:         0.25,
			MaxZoom:         2.0,
			ZoomSensitivity: 0.1,
		},
		Hand: HandConfig{
			MarginRatio:     0.08,
			DesiredScale:    1.0,
			MinScale:        0.35,
			ArcHeight:       28,
			HoverScale:      1.3,
			HoverLift:       48,
			BottomPadding:   12,
			ZoneHeightRatio: 0.25,
		},
		Drag: DragConfig{
			DragScale: 1.15,
			DetachMod: ModShift | ModCtrl,
			SpawnGap:  24,
		},
		Grid: GridConfig{
			CellSize:   48,
			DashLength: 10,
			GapLength:  6,
			LineWidth:  1,
			Color:      Color{1, 1, 1, 150.0 / 255},
		},
		Shadow: ShadowConfig{
			Enabled:     true,
			Lifetime:    0.25,
			MinDistance: 8,
			Alpha:       0.6,
		},
		Background: Color{32.0 / 255, 48.0 / 255, 64.0 / 255, 1},
	}
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.CardSize.X <= 0 || c.CardSize.Y <= 0:
		return fmt.Errorf("%w: card size %vx%v", ErrInvalidConfig, c.CardSize.X, c.CardSize.Y)
	case c.Camera.MinZoom <= 0 || c.Camera.MaxZoom < c.Camera.MinZoom:
		return fmt.Errorf("%w: zoom bounds [%v, %v]", ErrInvalidConfig, c.Camera.MinZoom, c.Camera.MaxZoom)
	case c.Hand.MarginRatio < 0 || c.Hand.MarginRatio >= 0.5:
		return fmt.Errorf("%w: hand margin ratio %v", ErrInvalidConfig, c.Hand.MarginRatio)
	case c.Hand.ZoneHeightRatio <= 0 || c.Hand.ZoneHeightRatio >= 1:
		return fmt.Errorf("%w: hand zone height ratio %v", ErrInvalidConfig, c.Hand.ZoneHeightRatio)
	case c.Hand.DesiredScale <= 0 || c.Hand.MinScale <= 0:
		return fmt.Errorf("%w: hand scales %v/%v", ErrInvalidConfig, c.Hand.DesiredScale, c.Hand.MinScale)
	case c.Drag.DragScale <= 0:
		return fmt.Errorf("%w: drag scale %v", ErrInvalidConfig, c.Drag.DragScale)
	case c.Grid.CellSize <= 0:
		return fmt.Errorf("%w: grid cell size %v", ErrInvalidConfig, c.Grid.CellSize)
	}
	return nil
}

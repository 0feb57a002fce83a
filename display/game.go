package display

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/cardtable"
)

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	TPS        int // ticks per second; 0 keeps the Ebitengine default of 60
	Fullscreen bool
	ShowFPS    bool
	// ScreenshotDir receives PNGs requested with F12 or a test script.
	// Empty means "screenshots".
	ScreenshotDir string
	// Logger reports screenshot and shutdown messages. Nil means slog.Default().
	Logger *slog.Logger
}

// Game adapts a cardtable.Table to ebiten.Game.
type Game struct {
	table    *cardtable.Table
	renderer *Renderer
	input    Input
	fps      *fpsOverlay
	dir      string
	log      *slog.Logger
	w, h     int
}

// NewGame wraps table for the Ebitengine loop.
func NewGame(table *cardtable.Table, cfg RunConfig) (*Game, error) {
	r, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	g := &Game{
		table:    table,
		renderer: r,
		dir:      cfg.ScreenshotDir,
		log:      cfg.Logger,
	}
	if g.dir == "" {
		g.dir = "screenshots"
	}
	if g.log == nil {
		g.log = slog.Default()
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g, nil
}

// Update advances the table by one tick.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.table.Update(g.input, dt)
	if g.fps != nil {
		g.fps.update(dt)
	}
	return nil
}

// Draw renders the table, the FPS overlay, and any pending screenshots.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Begin(screen)
	g.table.Draw(g.renderer)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	flushScreenshots(screen, g.dir, g.table.TakeScreenshotRequests(), g.log)
}

// Layout keeps the table viewport in step with the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.table.SetViewport(cardtable.Rect{Width: float64(g.w), Height: float64(g.h)})
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and runs table until the window is closed.
func Run(table *cardtable.Table, cfg RunConfig) error {
	g, err := NewGame(table, cfg)
	if err != nil {
		return err
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("display: run: %w", err)
	}
	return nil
}

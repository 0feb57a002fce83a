package term

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/cardtable"
)

// RunConfig holds terminal settings for Run.
type RunConfig struct {
	// FrameInterval is the time between frames. Zero means 16ms (~60 FPS).
	FrameInterval time.Duration
	// CellWidth and CellHeight are the virtual pixel size of one cell. Zero
	// means the package defaults.
	CellWidth, CellHeight float64
	// ScreenshotDir receives plain-text screen dumps requested with F12 or a
	// test script. Empty means "screenshots".
	ScreenshotDir string
	// Logger reports screenshot errors. Nil means slog.Default().
	Logger *slog.Logger
}

func (c *RunConfig) defaults() {
	if c.FrameInterval <= 0 {
		c.FrameInterval = 16 * time.Millisecond
	}
	if c.CellWidth <= 0 {
		c.CellWidth = CellWidth
	}
	if c.CellHeight <= 0 {
		c.CellHeight = CellHeight
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Run opens the terminal and runs table until a quit key is pressed.
func Run(table *cardtable.Table, cfg RunConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	return RunScreen(screen, table, cfg)
}

// RunScreen runs table on an already created screen. The screen is
// initialized here and finalized on return.
func RunScreen(screen tcell.Screen, table *cardtable.Table, cfg RunConfig) error {
	cfg.defaults()
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	r := NewRenderer(screen, cfg.CellWidth, cfg.CellHeight)
	in := NewInput(cfg.CellWidth, cfg.CellHeight)
	table.SetViewport(r.Viewport())

	ticker := time.NewTicker(cfg.FrameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	dt := cfg.FrameInterval.Seconds()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				table.SetViewport(r.Viewport())
			}
			in.Handle(ev)
			if in.Quit() {
				return nil
			}

		case <-ticker.C:
			table.Update(in, dt)
			in.EndFrame()
			r.Begin()
			table.Draw(r)
			screen.Show()
			for _, label := range table.TakeScreenshotRequests() {
				path, err := dumpScreen(screen, cfg.ScreenshotDir, label)
				if err != nil {
					cfg.Logger.Error("screenshot", "err", err)
					continue
				}
				cfg.Logger.Info("screenshot saved", "path", path)
			}
		}
	}
}

// dumpScreen writes the screen runes to a timestamped text file.
func dumpScreen(screen tcell.Screen, dir, label string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", time.Now().Format("20060102_150405"), sanitizeLabel(label)))
	if err := os.WriteFile(path, []byte(screenText(screen)), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// screenText returns the screen runes, one line per row.
func screenText(screen tcell.Screen) string {
	w, h := screen.Size()
	var b strings.Builder
	for y := range h {
		for x := range w {
			ch, _, _, _ := screen.GetContent(x, y)
			if ch == 0 {
				ch = ' '
			}
			b.WriteRune(ch)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}

// pollEvents forwards screen events until the screen is finalized or done is
// closed, whichever comes first. events is closed on exit.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

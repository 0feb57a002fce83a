package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/cardtable"
	"github.com/phanxgames/cardtable/display"
	"github.com/phanxgames/cardtable/ecs"
	"github.com/phanxgames/cardtable/sound"
)

// options holds the flags shared by every front end.
type options struct {
	deck          string
	seed          uint64
	sound         bool
	debug         bool
	logLevel      string
	screenshotDir string
	script        string
	ecs           bool
}

// windowOptions holds the flags of the window front end.
type windowOptions struct {
	width, height int
	fps           int
	fullscreen    bool
	windowed      bool
	title         string
	showFPS       bool
}

func newRootCmd() *cobra.Command {
	var opts options
	var win windowOptions

	root := &cobra.Command{
		Use:   "cardtable",
		Short: "A virtual card table with a zoomable camera, stacking, and a hand",
		Long: `cardtable opens an infinite table with one starter card and a shuffled
deck. Click the deck to draw, drag cards to move them, drop a card on another
to stack them, and drop cards at the bottom of the screen to hold them in
your hand. Drag empty space to pan, use the wheel to zoom, and press Esc to
reset the camera.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if win.width <= 0 || win.height <= 0 {
				return fmt.Errorf("window size %dx%d must be positive", win.width, win.height)
			}
			viewport := cardtable.Rect{Width: float64(win.width), Height: float64(win.height)}
			table, log, cleanup, err := opts.setup(viewport)
			if err != nil {
				return err
			}
			defer cleanup()

			return display.Run(table, display.RunConfig{
				Title:         win.title,
				Width:         win.width,
				Height:        win.height,
				TPS:           win.fps,
				Fullscreen:    win.fullscreen && !win.windowed,
				ShowFPS:       win.showFPS,
				ScreenshotDir: opts.screenshotDir,
				Logger:        log,
			})
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.deck, "deck", cardtable.StandardDeckSpec, "deck composition, e.g. 'A..K of ♠♥, \"Joker\" * 2'")
	pf.Uint64Var(&opts.seed, "seed", 0, "shuffle seed (0 picks one from the clock)")
	pf.BoolVar(&opts.sound, "sound", false, "play audio cues")
	pf.BoolVar(&opts.debug, "debug", false, "log frame timings and check stacking invariants")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&opts.screenshotDir, "screenshot-dir", "screenshots", "directory for F12 screenshots")
	pf.StringVar(&opts.script, "script", "", "JSON test script to drive the table")
	pf.BoolVar(&opts.ecs, "ecs", false, "mirror the table into a donburi world and log its events")

	f := root.Flags()
	f.IntVar(&win.width, "width", 1280, "window width")
	f.IntVar(&win.height, "height", 720, "window height")
	f.IntVar(&win.fps, "fps", 60, "update rate in ticks per second")
	f.BoolVar(&win.fullscreen, "fullscreen", false, "start fullscreen")
	f.BoolVar(&win.windowed, "windowed", false, "start in a window (overrides --fullscreen)")
	f.StringVar(&win.title, "title", "Card Table", "window title")
	f.BoolVar(&win.showFPS, "show-fps", false, "show the FPS overlay")

	root.AddCommand(newTermCmd(&opts))
	return root
}

// setup builds the logger, deck, table, and optional sound from the shared
// flags. cleanup releases the audio device.
func (o *options) setup(viewport cardtable.Rect) (*cardtable.Table, *slog.Logger, func(), error) {
	log, err := newLogger(o.logLevel)
	if err != nil {
		return nil, nil, nil, err
	}
	deck, err := o.buildDeck()
	if err != nil {
		return nil, nil, nil, err
	}

	cfg := cardtable.DefaultConfig()
	cfg.Logger = log
	table, err := cardtable.NewTable(cfg, viewport, deck)
	if err != nil {
		return nil, nil, nil, err
	}
	table.SetDebugMode(o.debug)

	if o.script != "" {
		data, err := os.ReadFile(o.script)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("read script: %w", err)
		}
		runner, err := cardtable.LoadTestScript(data)
		if err != nil {
			return nil, nil, nil, err
		}
		table.SetTestRunner(runner)
	}

	var sinks cardtable.MultiSink
	if o.ecs {
		sinks = append(sinks, newECSBridge(table, log))
	}
	cleanup := func() {}
	if o.sound {
		player := sound.NewPlayer()
		if err := player.Init(); err != nil {
			// Audio is optional; keep playing silently.
			log.Warn("sound disabled", "err", err)
		} else {
			sinks = append(sinks, player)
			cleanup = player.Close
		}
	}
	if len(sinks) > 0 {
		table.SetEventSink(sinks)
	}
	return table, log, cleanup, nil
}

// newECSBridge mirrors table into a fresh donburi world and logs each event
// with the mirrored entity count.
func newECSBridge(table *cardtable.Table, log *slog.Logger) *ecs.Bridge {
	bridge := ecs.NewBridge(donburi.NewWorld(), table.Registry())
	bridge.Subscribe(func(ev cardtable.TableEvent) {
		log.Debug("ecs event", "type", ev.Type, "object", ev.Object, "entities", bridge.Mirror().Len())
	})
	return bridge
}

// buildDeck parses the deck spec and shuffles it.
func (o *options) buildDeck() ([]string, error) {
	labels, err := cardtable.ParseDeckSpec(o.deck)
	if err != nil {
		return nil, fmt.Errorf("--deck: %w", err)
	}
	seed := o.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	cardtable.Shuffle(labels, cardtable.NewRNG(seed))
	return labels, nil
}

// newLogger returns a text logger on stderr at the named level.
func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

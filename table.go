package cardtable

import (
	"fmt"
	"log/slog"
	"time"
)

// StarterCard is the label of the fixture card placed next to the deck.
const StarterCard = "A♠"

// fixtureGap is the horizontal gap between the starter card and the deck
// before both are snapped to the grid.
const fixtureGap = 24

// Table is the top-level object that owns the registry, camera, hand zone,
// and drag state. All mutation happens inside Update; Draw only reads.
type Table struct {
	cfg      Config
	log      *slog.Logger
	registry *Registry
	camera   *Camera
	hand     HandZone
	deck     ObjectID
	sink     EventSink
	trail    *ShadowTrail
	debug    bool

	// Drag/drop controller state.
	state   DragState
	dragged ObjectID
	offset  Vec2
	panLast Vec2

	pointer     Vec2
	hovered     int
	screenshots []string
	runner      *TestRunner
}

// NewTable builds a table for the given viewport with one starter card and a
// deck holding deck (last label on top). Both are snapped to the grid, the
// card on the left of the origin and the deck on the right.
func NewTable(cfg Config, viewport Rect, deck []string) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new table: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	t := &Table{
		cfg:      cfg,
		log:      logger,
		registry: NewRegistry(cfg.CardSize),
		camera:   NewCamera(viewport, cfg.Camera),
		trail:    NewShadowTrail(cfg.Shadow),
		hovered:  -1,
	}

	w, h := cfg.CardSize.X, cfg.CardSize.Y
	card := t.registry.NewCard(StarterCard, Vec2{-w - fixtureGap/2, -h / 2})
	d := t.registry.NewDeck(deck, Vec2{fixtureGap / 2, -h / 2})
	card.SetPosition(t.snap(card))
	d.SetPosition(t.snap(d))
	t.deck = d.ID()

	t.log.Debug("table created", "deck", len(deck), "viewport_w", viewport.Width, "viewport_h", viewport.Height)
	return t, nil
}

// Config returns the configuration the table was built with.
func (t *Table) Config() Config { return t.cfg }

// Registry returns the object registry.
func (t *Table) Registry() *Registry { return t.registry }

// Camera returns the table camera.
func (t *Table) Camera() *Camera { return t.camera }

// Hand returns the hand zone.
func (t *Table) Hand() *HandZone { return &t.hand }

// Deck returns the draw pile.
func (t *Table) Deck() *Deck { return t.registry.Deck(t.deck) }

// Trail returns the motion shadow trail of the held object.
func (t *Table) Trail() *ShadowTrail { return t.trail }

// State returns the drag controller state.
func (t *Table) State() DragState { return t.state }

// Dragged returns the held object, or nil.
func (t *Table) Dragged() Object {
	if t.state != DragDragging {
		return nil
	}
	o, _ := t.registry.Get(t.dragged)
	return o
}

// Hovered returns the hovered hand card from the last layout pass, or nil.
func (t *Table) Hovered() *Card {
	if t.hovered < 0 || t.hovered >= len(t.hand.cards) {
		return nil
	}
	return t.registry.Card(t.hand.cards[t.hovered])
}

// Pointer returns the last pointer position in screen space.
func (t *Table) Pointer() Vec2 { return t.pointer }

// SetViewport resizes the screen area the table renders into.
func (t *Table) SetViewport(viewport Rect) {
	t.camera.SetViewport(viewport)
}

// SetEventSink sets the receiver for table events. Nil disables events.
func (t *Table) SetEventSink(sink EventSink) {
	t.sink = sink
}

// EventSink returns the current event receiver, or nil.
func (t *Table) EventSink() EventSink { return t.sink }

// SetDebugMode enables per-frame timing logs and invariant checks.
func (t *Table) SetDebugMode(enabled bool) {
	t.debug = enabled
}

// SetTestRunner attaches a scripted runner. While attached, its input
// replaces the input passed to Update.
func (t *Table) SetTestRunner(runner *TestRunner) {
	t.runner = runner
}

// Screenshot queues a labeled screenshot request for the backend.
func (t *Table) Screenshot(label string) {
	t.screenshots = append(t.screenshots, label)
}

// TakeScreenshotRequests returns and clears the queued screenshot labels.
func (t *Table) TakeScreenshotRequests() []string {
	out := t.screenshots
	t.screenshots = nil
	return out
}

// ResetCamera centers the camera on the origin at zoom 1.
func (t *Table) ResetCamera() {
	t.camera.Reset()
	t.emit(TableEvent{Type: EventCameraReset})
	t.log.Debug("camera reset")
}

// Update advances the table by one frame: input, shadow fade-out, and hand
// layout. dt is the frame time in seconds.
func (t *Table) Update(in Input, dt float64) {
	var stats debugStats
	var t0 time.Time
	if t.debug {
		t0 = time.Now()
	}

	if t.runner != nil {
		t.runner.step(t)
		t.runner.input.Advance()
		in = t.runner.input
	}
	if in != nil {
		t.processInput(in)
		if in.KeyJustPressed(KeyF12) {
			t.Screenshot("f12")
		}
	}
	t.trail.Update(float32(dt))

	if t.debug {
		stats.inputTime = time.Since(t0)
		t0 = time.Now()
	}

	t.layoutHand()

	if t.debug {
		stats.layoutTime = time.Since(t0)
		stats.objects = t.registry.Len()
		stats.handCards = t.hand.Len()
		stats.shadows = t.trail.Len()
		t.debugLog(stats)
		t.debugCheckBinds()
	}
}

// layoutHand places every docked card for this frame. Slots are computed in
// screen space and stored as world positions so docked cards render under
// the camera like everything else.
func (t *Table) layoutHand() {
	layout := LayoutHand(t.hand.Len(), t.cfg.CardSize, t.cfg.Hand, t.camera.Viewport, t.pointer)
	t.hovered = layout.Hovered
	zoom := t.camera.Zoom
	for i, id := range t.hand.cards {
		c := t.registry.Card(id)
		if c == nil {
			continue
		}
		slot := layout.Slots[i]
		wx, wy := t.camera.ScreenToWorld(slot.Rect.X, slot.Rect.Y)
		c.pos = Vec2{wx, wy}
		c.scale = slot.Scale / zoom
		c.handRect = slot.Rect
	}
}

// handCardAt returns the docked card under the screen point, preferring the
// hovered card and then hand order.
func (t *Table) handCardAt(p Vec2) *Card {
	if c := t.Hovered(); c != nil && c.handRect.Contains(p.X, p.Y) {
		return c
	}
	for _, id := range t.hand.cards {
		if c := t.registry.Card(id); c != nil && c.handRect.Contains(p.X, p.Y) {
			return c
		}
	}
	return nil
}

func (t *Table) emit(ev TableEvent) {
	if t.sink != nil {
		t.sink.HandleEvent(ev)
	}
}

// snap returns the grid position for o at its current scale.
func (t *Table) snap(o Object) Vec2 {
	b := o.Bounds()
	return SnapBlock(Vec2{b.X, b.Y}, Vec2{b.Width, b.Height}, t.cfg.Grid.CellSize)
}

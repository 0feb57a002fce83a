package cardtable

// DragState is the pointer controller state. Exactly one is active.
type DragState uint8

const (
	DragIdle     DragState = iota // nothing held
	DragPanning                   // the pointer is dragging the camera
	DragDragging                  // an object follows the pointer
)

func (s DragState) String() string {
	switch s {
	case DragPanning:
		return "panning"
	case DragDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// DropZone is where a released object landed.
type DropZone uint8

const (
	DropGrid DropZone = iota
	DropHand
)

func (z DropZone) String() string {
	if z == DropHand {
		return "hand"
	}
	return "grid"
}

// ClassifyDrop maps a screen-space release Y to the hand zone (the bottom
// ratio fraction of the viewport) or the grid.
func ClassifyDrop(screenY float64, viewport Rect, ratio float64) DropZone {
	if screenY >= viewport.Y+viewport.Height*(1-ratio) {
		return DropHand
	}
	return DropGrid
}

// notDocked accepts every object except cards docked in the hand.
func notDocked(o Object) bool {
	c, ok := o.(*Card)
	return !ok || !c.inHand
}

// press handles a primary-button press at screen point p.
func (t *Table) press(p Vec2, mod bool) {
	if t.state != DragIdle {
		return
	}
	wx, wy := t.camera.ScreenToWorld(p.X, p.Y)
	world := Vec2{wx, wy}

	if c := t.handCardAt(p); c != nil {
		t.hand.undock(c)
		t.emit(TableEvent{Type: EventCardUndocked, Object: c.id, Label: c.Label, Position: c.pos})
		c.scale = t.cfg.Drag.DragScale
		t.offset = c.scaledSize().Scale(0.5)
		c.pos = world.Sub(t.offset)
		t.registry.BringToFront(c.id)
		t.beginDrag(c)
		return
	}

	switch o := t.registry.HitTestFunc(world, notDocked).(type) {
	case *Deck:
		switch {
		case mod:
			t.dragPlain(o, world)
		case o.Empty():
			t.log.Debug("deck empty", "id", o.id)
		default:
			t.drawCard(o)
		}
	case *Card:
		switch {
		case o.bind != 0 && mod:
			t.detach(o)
		case o.bind != 0:
			t.dragBind(t.registry.Bind(o.bind), world)
		default:
			t.dragPlain(o, world)
		}
	case *Bind:
		t.dragBind(o, world)
	case nil:
		t.state = DragPanning
		t.panLast = p
		t.log.Debug("pan start")
	}
}

// drawCard pops the top label of d and picks up a new card beside it.
func (t *Table) drawCard(d *Deck) {
	label, ok := d.Draw()
	if !ok {
		return
	}
	db := d.Bounds()
	c := t.registry.NewCard(label, Vec2{db.X + db.Width + t.cfg.Drag.SpawnGap, db.Y})
	c.scale = t.cfg.Drag.DragScale
	t.offset = c.scaledSize().Scale(0.5)
	t.registry.BringToFront(c.id)
	t.emit(TableEvent{Type: EventCardDrawn, Object: c.id, Label: label, Position: c.pos, Count: d.Remaining()})
	t.log.Debug("card drawn", "id", c.id, "label", label, "remaining", d.Remaining())
	t.beginDrag(c)
}

// dragPlain picks up a loose card or the deck, keeping the grab offset.
func (t *Table) dragPlain(o Object, world Vec2) {
	t.offset = world.Sub(o.Position())
	o.SetScale(o.Scale() * t.cfg.Drag.DragScale)
	t.registry.BringToFront(o.ID())
	t.beginDrag(o)
}

// dragBind picks up a whole bind at the drag scale.
func (t *Table) dragBind(b *Bind, world Vec2) {
	if b == nil {
		return
	}
	t.offset = world.Sub(b.pos)
	t.registry.ScaleBind(b, t.cfg.Drag.DragScale)
	t.registry.raiseBind(b)
	t.beginDrag(b)
}

func (t *Table) beginDrag(o Object) {
	t.state = DragDragging
	t.dragged = o.ID()
	t.trail.Start()
	t.emit(TableEvent{Type: EventDragStarted, Object: o.ID(), Label: labelOf(o), Position: o.Position()})
	t.log.Debug("drag start", "id", o.ID(), "kind", kindOf(o))
}

// follow runs the per-frame dragging or panning step for screen point p.
func (t *Table) follow(p Vec2) {
	switch t.state {
	case DragDragging:
		o, ok := t.registry.Get(t.dragged)
		if !ok {
			t.state = DragIdle
			t.dragged = 0
			return
		}
		wx, wy := t.camera.ScreenToWorld(p.X, p.Y)
		pos := Vec2{wx, wy}.Sub(t.offset)
		if b, ok := o.(*Bind); ok {
			t.registry.MoveBind(b, pos)
		} else {
			o.SetPosition(pos)
		}
		t.trail.Capture(o.Bounds())
	case DragPanning:
		d := t.panLast.Sub(p)
		t.camera.Pan(d.X, d.Y)
		t.panLast = p
	}
}

// release handles a primary-button release at screen point p.
func (t *Table) release(p Vec2) {
	switch t.state {
	case DragPanning:
		t.follow(p)
		t.state = DragIdle
		t.log.Debug("pan end")
		return
	case DragIdle:
		return
	}

	t.follow(p)
	o, ok := t.registry.Get(t.dragged)
	t.state = DragIdle
	t.dragged = 0
	t.trail.Stop()
	if !ok {
		return
	}

	zone := ClassifyDrop(p.Y, t.camera.Viewport, t.cfg.Hand.ZoneHeightRatio)
	dragScale := t.cfg.Drag.DragScale

	switch o := o.(type) {
	case *Card:
		if zone == DropHand {
			t.detach(o)
			t.hand.dock(o)
		}
		o.scale /= dragScale
		o.pos = t.snap(o)
		if zone == DropHand {
			t.emit(TableEvent{Type: EventCardDocked, Object: o.id, Label: o.Label, Position: o.pos, Count: t.hand.Len()})
			t.log.Debug("card docked", "id", o.id, "label", o.Label, "hand", t.hand.Len())
		} else {
			t.stacked(t.registry.AttemptStack(o), o)
		}
	case *Bind:
		t.registry.ScaleBind(o, 1)
		t.registry.MoveBind(o, t.snap(o))
		t.registry.reanchor(o)
		if zone == DropGrid {
			t.stacked(t.registry.StackBind(o), t.registry.Card(o.Leader()))
		}
	case *Deck:
		o.scale /= dragScale
		o.pos = t.snap(o)
	}
	t.emit(TableEvent{Type: EventDropped, Object: o.ID(), Label: labelOf(o), Position: o.Position()})
	t.log.Debug("drop", "id", o.ID(), "kind", kindOf(o), "zone", zone)
}

// detach pulls c out of its bind and reports what happened.
func (t *Table) detach(c *Card) {
	out := t.registry.Detach(c)
	if out.Bind == 0 {
		return
	}
	t.emit(TableEvent{Type: EventCardDetached, Object: c.id, Bind: out.Bind, Label: c.Label, Position: c.pos})
	t.log.Debug("card detached", "id", c.id, "label", c.Label, "bind", out.Bind)
	if out.Dissolved {
		t.emit(TableEvent{Type: EventBindDissolved, Object: out.Bind, Bind: out.Bind})
		t.log.Debug("bind dissolved", "bind", out.Bind)
	}
}

// stacked emits the events for a stacking attempt on behalf of the dropped
// card c.
func (t *Table) stacked(out StackOutcome, c *Card) {
	if out.Kind == StackNone || out.Bind == nil {
		return
	}
	ev := TableEvent{Bind: out.Bind.id, Position: out.Bind.pos, Count: out.Bind.Len()}
	if c != nil {
		ev.Object, ev.Label = c.id, c.Label
	}
	switch out.Kind {
	case StackCreated:
		ev.Type = EventBindCreated
	case StackJoined:
		ev.Type = EventBindJoined
	case StackMerged:
		ev.Type = EventBindMerged
	}
	t.emit(ev)
	t.log.Debug("stacked", "kind", out.Kind, "bind", out.Bind.id, "members", out.Bind.Len())
	if out.Dissolved != 0 {
		t.emit(TableEvent{Type: EventBindDissolved, Object: out.Dissolved, Bind: out.Dissolved})
	}
}

func labelOf(o Object) string {
	if c, ok := o.(*Card); ok {
		return c.Label
	}
	return ""
}

func kindOf(o Object) string {
	switch o.(type) {
	case *Card:
		return "card"
	case *Deck:
		return "deck"
	case *Bind:
		return "bind"
	default:
		return "unknown"
	}
}

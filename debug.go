package cardtable

import (
	"log/slog"
	"time"
)

// debugStats holds per-frame timings and counts.
// Only populated when Table.debug is true.
type debugStats struct {
	inputTime  time.Duration
	layoutTime time.Duration
	objects    int
	handCards  int
	shadows    int
}

// debugLog reports frame stats at debug level.
func (t *Table) debugLog(stats debugStats) {
	if !t.debug {
		return
	}
	t.log.Debug("frame",
		slog.Duration("input", stats.inputTime),
		slog.Duration("layout", stats.layoutTime),
		slog.Duration("total", stats.inputTime+stats.layoutTime),
		slog.Int("objects", stats.objects),
		slog.Int("hand", stats.handCards),
		slog.Int("shadows", stats.shadows),
		slog.String("state", t.state.String()),
	)
}

// debugCheckBinds warns about any bind that breaks the stacking invariants:
// fewer than two members, a member that does not point back at the bind, or a
// member off the anchor or scale.
func (t *Table) debugCheckBinds() {
	for _, b := range t.registry.Binds() {
		if b.Len() < 2 {
			t.log.Warn("bind below two members", "bind", b.id, "members", b.Len())
		}
		for _, id := range b.members {
			c := t.registry.Card(id)
			switch {
			case c == nil:
				t.log.Warn("bind member missing", "bind", b.id, "member", id)
			case c.bind != b.id:
				t.log.Warn("bind member back-reference mismatch", "bind", b.id, "member", id, "ref", c.bind)
			case c.pos != b.pos || c.scale != b.scale:
				t.log.Warn("bind member off anchor", "bind", b.id, "member", id)
			case c.inHand:
				t.log.Warn("bound card docked in hand", "bind", b.id, "member", id)
			}
		}
	}
}

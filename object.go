package cardtable

import "strings"

// ObjectID identifies an object within one Registry. Zero means "none".
type ObjectID uint32

// Object is a table object: a *Card, a *Deck, or a *Bind. The set is closed;
// callers dispatch with a type switch.
type Object interface {
	ID() ObjectID
	// Position is the world-space top-left corner.
	Position() Vec2
	SetPosition(p Vec2)
	Scale() float64
	SetScale(s float64)
	// Size is the unscaled width and height.
	Size() Vec2
	// Bounds is the world-space rect covering Size()*Scale() at Position().
	Bounds() Rect

	isObject()
}

// body holds the fields every object variant shares.
type body struct {
	id    ObjectID
	pos   Vec2
	scale float64
	size  Vec2
}

func (b *body) ID() ObjectID { return b.id }
func (b *body) Position() Vec2 { return b.pos }
func (b *body) SetPosition(p Vec2) { b.pos = p }
func (b *body) Scale() float64 { return b.scale }
func (b *body) SetScale(s float64) { b.scale = s }
func (b *body) Size() Vec2 { return b.size }
func (b *body) isObject() {}
func (b *body) scaledSize() Vec2 { return b.size.Scale(b.scale) }

func (b *body) Bounds() Rect {
	s := b.scaledSize()
	return Rect{X: b.pos.X, Y: b.pos.Y, Width: s.X, Height: s.Y}
}

// --- Card ---

// Suit glyphs recognized at the end of a card label.
const (
	SuitSpades   = "♠"
	SuitHearts   = "♥"
	SuitDiamonds = "♦"
	SuitClubs    = "♣"
)

var suits = [...]string{SuitSpades, SuitHearts, SuitDiamonds, SuitClubs}

// Card is a single playing card.
type Card struct {
	body

	Label string

	bind     ObjectID
	inHand   bool
	handRect Rect
}

// Rank returns the label without its trailing suit glyph. A label with no
// recognized suit is returned whole, and a bare suit glyph is its own rank.
func (c *Card) Rank() string {
	rank, _ := splitLabel(c.Label)
	return rank
}

// Suit returns the trailing suit glyph, or "" for rank-only labels.
func (c *Card) Suit() string {
	_, suit := splitLabel(c.Label)
	return suit
}

// BindID returns the bind this card belongs to, or 0.
func (c *Card) BindID() ObjectID { return c.bind }

// Bound reports whether the card is a member of a bind.
func (c *Card) Bound() bool { return c.bind != 0 }

// InHand reports whether the card is docked in the hand zone.
func (c *Card) InHand() bool { return c.inHand }

// HandRect is the screen rect computed by the last hand layout pass. It is
// only meaningful while InHand is true.
func (c *Card) HandRect() Rect { return c.handRect }

func splitLabel(label string) (rank, suit string) {
	for _, s := range suits {
		if strings.HasSuffix(label, s) {
			rank = strings.TrimSuffix(label, s)
			if rank == "" {
				rank = s
			}
			return rank, s
		}
	}
	return label, ""
}

// SuitColor returns the ink color for a suit glyph; red suits are red, the
// rest (including rank-only labels) are near-black.
func SuitColor(suit string) Color {
	switch suit {
	case SuitHearts, SuitDiamonds:
		return Color{200.0 / 255, 16.0 / 255, 46.0 / 255, 1}
	default:
		return Color{20.0 / 255, 20.0 / 255, 20.0 / 255, 1}
	}
}

// --- Deck ---

// Deck is a face-down draw pile. The last label is the top of the pile.
type Deck struct {
	body

	labels []string
}

// Remaining returns how many labels are left to draw.
func (d *Deck) Remaining() int { return len(d.labels) }

// Empty reports whether the deck has nothing left to draw.
func (d *Deck) Empty() bool { return len(d.labels) == 0 }

// Labels returns a copy of the remaining labels, bottom first.
func (d *Deck) Labels() []string {
	out := make([]string, len(d.labels))
	copy(out, d.labels)
	return out
}

// Top returns the label that the next Draw would return.
func (d *Deck) Top() (string, bool) {
	if len(d.labels) == 0 {
		return "", false
	}
	return d.labels[len(d.labels)-1], true
}

// Draw pops the top label. It returns false when the deck is empty.
func (d *Deck) Draw() (string, bool) {
	label, ok := d.Top()
	if !ok {
		return "", false
	}
	d.labels = d.labels[:len(d.labels)-1]
	return label, true
}

// --- Bind ---

// Bind is a stack of two or more cards that share one anchor and one scale.
// The first member is the leader; its position is the anchor.
type Bind struct {
	body

	members []ObjectID
}

// Members returns a copy of the member IDs, leader first.
func (b *Bind) Members() []ObjectID {
	out := make([]ObjectID, len(b.members))
	copy(out, b.members)
	return out
}

// Len returns the number of members.
func (b *Bind) Len() int { return len(b.members) }

// Leader returns the ID of the anchor-defining member, or 0 for an empty bind.
func (b *Bind) Leader() ObjectID {
	if len(b.members) == 0 {
		return 0
	}
	return b.members[0]
}

// Has reports whether id is a member.
func (b *Bind) Has(id ObjectID) bool {
	return b.indexOf(id) >= 0
}

func (b *Bind) indexOf(id ObjectID) int {
	for i, m := range b.members {
		if m == id {
			return i
		}
	}
	return -1
}

func (b *Bind) remove(id ObjectID) {
	if i := b.indexOf(id); i >= 0 {
		b.members = append(b.members[:i], b.members[i+1:]...)
	}
}

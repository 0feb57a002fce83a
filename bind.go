package cardtable

// StackKind classifies what AttemptStack did.
type StackKind uint8

const (
	StackNone    StackKind = iota // no overlap, or both cards already share a bind
	StackCreated                  // two loose cards formed a new bind
	StackJoined                   // a loose card joined an existing bind
	StackMerged                   // one bind was emptied into another
)

func (k StackKind) String() string {
	switch k {
	case StackCreated:
		return "created"
	case StackJoined:
		return "joined"
	case StackMerged:
		return "merged"
	default:
		return "none"
	}
}

// StackOutcome reports the result of a stacking attempt.
type StackOutcome struct {
	Kind StackKind
	// Bind is the surviving bind, nil for StackNone.
	Bind *Bind
	// Target is the card the dropped object landed on.
	Target *Card
	// Dissolved is the bind emptied by a StackMerged, 0 otherwise.
	Dissolved ObjectID
}

// DetachOutcome reports the result of Detach.
type DetachOutcome struct {
	// Bind is the bind the card left, 0 if it was not bound.
	Bind ObjectID
	// Dissolved is true when the bind fell below two members and was removed.
	Dissolved bool
	// Released is the last remaining member freed by a dissolve, if any.
	Released *Card
}

// CreateBind stacks two or more cards. The first card leads: every member
// moves to its position and takes the bind's scale of 1. The bind sits in the
// z-order directly behind its members, which come to the front in order.
// Fewer than two cards, or any card already bound, yields nil.
func (r *Registry) CreateBind(cards ...*Card) *Bind {
	if len(cards) < 2 {
		return nil
	}
	for _, c := range cards {
		if c == nil || c.bind != 0 {
			return nil
		}
	}
	b := r.newBind()
	for _, c := range cards {
		b.members = append(b.members, c.id)
		c.bind = b.id
	}
	r.reanchor(b)
	r.raiseBind(b)
	return b
}

// AttemptStack looks for the first other loose-on-table card overlapping c,
// scanning the z-order from the back, and merges the two according to their
// bind membership. Only the first overlapping card is considered.
func (r *Registry) AttemptStack(c *Card) StackOutcome {
	if c == nil || c.inHand {
		return StackOutcome{}
	}
	other := r.stackCandidate(c.Bounds(), func(o *Card) bool { return o.id != c.id })
	if other == nil {
		return StackOutcome{}
	}
	return r.stack(c, other)
}

// StackBind is the stacking step for a dropped bind. The first overlapping
// card outside the bind is stacked against the bind's leader with the roles
// reversed, so the dropped bind survives and absorbs the card or its bind.
func (r *Registry) StackBind(b *Bind) StackOutcome {
	if b == nil {
		return StackOutcome{}
	}
	leader := r.Card(b.Leader())
	if leader == nil {
		return StackOutcome{}
	}
	target := r.stackCandidate(b.Bounds(), func(o *Card) bool { return !b.Has(o.id) })
	if target == nil {
		return StackOutcome{}
	}
	return r.stack(target, leader)
}

func (r *Registry) stackCandidate(bounds Rect, accept func(*Card) bool) *Card {
	for _, id := range r.order {
		o, ok := r.objects[id].(*Card)
		if !ok || o.inHand || !accept(o) {
			continue
		}
		if o.Bounds().Intersects(bounds) {
			return o
		}
	}
	return nil
}

// stack applies the merge policy for card dropped onto other.
func (r *Registry) stack(card, other *Card) StackOutcome {
	out := StackOutcome{Target: other}
	switch {
	case card.bind == 0 && other.bind == 0:
		out.Kind = StackCreated
		out.Bind = r.CreateBind(other, card)
	case card.bind != 0 && other.bind == 0:
		out.Kind = StackJoined
		out.Bind = r.Bind(card.bind)
		r.join(out.Bind, other)
	case card.bind == 0 && other.bind != 0:
		out.Kind = StackJoined
		out.Bind = r.Bind(other.bind)
		r.join(out.Bind, card)
	case card.bind == other.bind:
		return StackOutcome{}
	default:
		src, dst := r.Bind(card.bind), r.Bind(other.bind)
		for _, id := range src.members {
			if m := r.Card(id); m != nil {
				m.bind = 0
				r.join(dst, m)
			}
		}
		src.members = nil
		r.Remove(src.id)
		out.Kind = StackMerged
		out.Bind = dst
		out.Dissolved = src.id
	}
	return out
}

func (r *Registry) join(b *Bind, c *Card) {
	b.members = append(b.members, c.id)
	c.bind = b.id
	r.reanchor(b)
	r.raiseBind(b)
}

// Detach removes c from its bind and resets its scale to 1. A bind left with
// one member releases it at scale 1 and is removed; an empty bind is removed.
func (r *Registry) Detach(c *Card) DetachOutcome {
	if c == nil || c.bind == 0 {
		return DetachOutcome{}
	}
	out := DetachOutcome{Bind: c.bind}
	b := r.Bind(c.bind)
	c.bind = 0
	c.scale = 1
	if b == nil {
		return out
	}
	b.remove(c.id)
	switch len(b.members) {
	case 0:
		r.Remove(b.id)
		out.Dissolved = true
	case 1:
		last := r.Card(b.members[0])
		if last != nil {
			last.bind = 0
			last.scale = 1
			out.Released = last
		}
		b.members = nil
		r.Remove(b.id)
		out.Dissolved = true
	default:
		r.reanchor(b)
	}
	return out
}

// reanchor moves the bind to its leader's position and pulls every member
// onto that anchor at the bind's scale.
func (r *Registry) reanchor(b *Bind) {
	leader := r.Card(b.Leader())
	if leader == nil {
		return
	}
	b.pos = leader.pos
	r.syncMembers(b)
}

// syncMembers copies the bind's position and scale onto every member.
func (r *Registry) syncMembers(b *Bind) {
	for _, id := range b.members {
		if m := r.Card(id); m != nil {
			m.pos = b.pos
			m.scale = b.scale
		}
	}
}

// MoveBind places the bind at p and moves every member with it.
func (r *Registry) MoveBind(b *Bind, p Vec2) {
	b.pos = p
	r.syncMembers(b)
}

// ScaleBind sets the shared scale of the bind and its members.
func (r *Registry) ScaleBind(b *Bind, s float64) {
	b.scale = s
	r.syncMembers(b)
}

// raiseBind brings the bind, then each member in bind order, to the front.
func (r *Registry) raiseBind(b *Bind) {
	r.BringToFront(b.id)
	for _, id := range b.members {
		r.BringToFront(id)
	}
}

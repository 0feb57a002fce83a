package cardtable

// Registry owns every object on the table and defines their z-order. The
// order slice runs back to front: the last entry draws on top and wins hit
// tests.
type Registry struct {
	order   []ObjectID
	objects map[ObjectID]Object
	nextID  ObjectID
	size    Vec2 // card and deck size at scale 1
}

// NewRegistry creates an empty registry whose cards, decks, and binds use
// cardSize as their unscaled size.
func NewRegistry(cardSize Vec2) *Registry {
	return &Registry{
		objects: make(map[ObjectID]Object),
		size:    cardSize,
	}
}

func (r *Registry) allocID() ObjectID {
	r.nextID++
	return r.nextID
}

// NewCard creates a card at pos with scale 1 and places it on top.
func (r *Registry) NewCard(label string, pos Vec2) *Card {
	c := &Card{body: body{id: r.allocID(), pos: pos, scale: 1, size: r.size}, Label: label}
	r.add(c)
	return c
}

// NewDeck creates a deck holding labels (last = top) at pos and places it on
// top.
func (r *Registry) NewDeck(labels []string, pos Vec2) *Deck {
	d := &Deck{body: body{id: r.allocID(), pos: pos, scale: 1, size: r.size}}
	d.labels = append(d.labels, labels...)
	r.add(d)
	return d
}

func (r *Registry) newBind() *Bind {
	b := &Bind{body: body{id: r.allocID(), scale: 1, size: r.size}}
	r.add(b)
	return b
}

func (r *Registry) add(o Object) {
	r.objects[o.ID()] = o
	r.order = append(r.order, o.ID())
}

// Remove deletes an object. Removing an unknown ID is a no-op.
func (r *Registry) Remove(id ObjectID) {
	if _, ok := r.objects[id]; !ok {
		return
	}
	delete(r.objects, id)
	r.unlink(id)
}

func (r *Registry) unlink(id ObjectID) bool {
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return true
		}
	}
	return false
}

// BringToFront moves id to the top of the z-order.
func (r *Registry) BringToFront(id ObjectID) {
	if r.unlink(id) {
		r.order = append(r.order, id)
	}
}

// Len returns the number of objects.
func (r *Registry) Len() int { return len(r.order) }

// Get returns the object with the given ID.
func (r *Registry) Get(id ObjectID) (Object, bool) {
	o, ok := r.objects[id]
	return o, ok
}

// Card returns the card with the given ID, or nil.
func (r *Registry) Card(id ObjectID) *Card {
	c, _ := r.objects[id].(*Card)
	return c
}

// Deck returns the deck with the given ID, or nil.
func (r *Registry) Deck(id ObjectID) *Deck {
	d, _ := r.objects[id].(*Deck)
	return d
}

// Bind returns the bind with the given ID, or nil.
func (r *Registry) Bind(id ObjectID) *Bind {
	b, _ := r.objects[id].(*Bind)
	return b
}

// Objects returns all objects in draw order, back to front.
func (r *Registry) Objects() []Object {
	out := make([]Object, len(r.order))
	for i, id := range r.order {
		out[i] = r.objects[id]
	}
	return out
}

// Binds returns every bind in draw order.
func (r *Registry) Binds() []*Bind {
	var out []*Bind
	for _, id := range r.order {
		if b, ok := r.objects[id].(*Bind); ok {
			out = append(out, b)
		}
	}
	return out
}

// IndexOf returns the z-order index of id, or -1.
func (r *Registry) IndexOf(id ObjectID) int {
	for i, oid := range r.order {
		if oid == id {
			return i
		}
	}
	return -1
}

// HitTest returns the frontmost object whose bounds contain the world point
// p, or nil.
func (r *Registry) HitTest(p Vec2) Object {
	return r.HitTestFunc(p, nil)
}

// HitTestFunc is HitTest restricted to objects for which accept returns true.
// A nil accept accepts everything.
func (r *Registry) HitTestFunc(p Vec2, accept func(Object) bool) Object {
	for i := len(r.order) - 1; i >= 0; i-- {
		o := r.objects[r.order[i]]
		if accept != nil && !accept(o) {
			continue
		}
		if o.Bounds().Contains(p.X, p.Y) {
			return o
		}
	}
	return nil
}

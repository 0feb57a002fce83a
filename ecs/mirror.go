package ecs

import (
	"github.com/phanxgames/cardtable"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Kind tells which table object an entity mirrors.
type Kind uint8

const (
	KindCard Kind = iota
	KindDeck
	KindBind
)

// ObjectData is the component mirrored from a table object.
type ObjectData struct {
	ID       cardtable.ObjectID
	Kind     Kind
	Label    string // card label; empty for decks and binds
	Position cardtable.Vec2
	Scale    float64
	Depth    int                // draw order, 0 is the back
	Bind     cardtable.ObjectID // owning bind for cards; 0 when loose
	InHand   bool
	Count    int // cards left in a deck or members in a bind
}

// Object is the component type holding ObjectData.
var Object = donburi.NewComponentType[ObjectData]()

var objectQuery = donburi.NewQuery(filter.Contains(Object))

// Mirror keeps one entity per table object in a Donburi world.
type Mirror struct {
	world    donburi.World
	entities map[cardtable.ObjectID]donburi.Entity
}

// NewMirror returns an empty mirror for world.
func NewMirror(world donburi.World) *Mirror {
	return &Mirror{world: world, entities: make(map[cardtable.ObjectID]donburi.Entity)}
}

// Sync creates, updates, and removes entities so the world matches reg.
func (m *Mirror) Sync(reg *cardtable.Registry) {
	seen := make(map[cardtable.ObjectID]bool, reg.Len())
	for depth, o := range reg.Objects() {
		id := o.ID()
		seen[id] = true
		e, ok := m.entities[id]
		if !ok || !m.world.Valid(e) {
			e = m.world.Create(Object)
			m.entities[id] = e
		}
		Object.SetValue(m.world.Entry(e), objectData(o, depth))
	}
	for id, e := range m.entities {
		if !seen[id] {
			if m.world.Valid(e) {
				m.world.Remove(e)
			}
			delete(m.entities, id)
		}
	}
}

// Entity returns the entity mirroring the object with the given id.
func (m *Mirror) Entity(id cardtable.ObjectID) (donburi.Entity, bool) {
	e, ok := m.entities[id]
	return e, ok
}

// Len returns the number of mirrored objects.
func (m *Mirror) Len() int {
	return objectQuery.Count(m.world)
}

// Each calls fn for every mirrored object.
func (m *Mirror) Each(fn func(*ObjectData)) {
	objectQuery.Each(m.world, func(entry *donburi.Entry) {
		fn(Object.Get(entry))
	})
}

func objectData(o cardtable.Object, depth int) ObjectData {
	d := ObjectData{
		ID:       o.ID(),
		Position: o.Position(),
		Scale:    o.Scale(),
		Depth:    depth,
	}
	switch v := o.(type) {
	case *cardtable.Card:
		d.Kind = KindCard
		d.Label = v.Label
		d.Bind = v.BindID()
		d.InHand = v.InHand()
	case *cardtable.Deck:
		d.Kind = KindDeck
		d.Count = v.Remaining()
	case *cardtable.Bind:
		d.Kind = KindBind
		d.Count = v.Len()
	}
	return d
}

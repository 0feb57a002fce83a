package ecs

import (
	"github.com/phanxgames/cardtable"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Bridge keeps a Donburi world in step with a table. Each table event is
// published to TableEventType, the mirror is resynced from the registry, and
// queued events are delivered to subscribers, which therefore see the world
// as it is after the change.
type Bridge struct {
	world  donburi.World
	mirror *Mirror
	reg    *cardtable.Registry
	sink   cardtable.EventSink
}

// NewBridge mirrors reg into world and returns a sink that keeps it current.
func NewBridge(world donburi.World, reg *cardtable.Registry) *Bridge {
	b := &Bridge{
		world:  world,
		mirror: NewMirror(world),
		reg:    reg,
		sink:   NewDonburiSink(world),
	}
	b.mirror.Sync(reg)
	return b
}

// Mirror returns the entity mirror maintained by the bridge.
func (b *Bridge) Mirror() *Mirror { return b.mirror }

// Subscribe registers fn for every table event delivered through the bridge.
func (b *Bridge) Subscribe(fn func(ev cardtable.TableEvent)) {
	TableEventType.Subscribe(b.world, func(_ donburi.World, ev cardtable.TableEvent) {
		fn(ev)
	})
}

func (b *Bridge) HandleEvent(ev cardtable.TableEvent) {
	b.sink.HandleEvent(ev)
	b.mirror.Sync(b.reg)
	events.ProcessAllEvents(b.world)
}

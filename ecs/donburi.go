package ecs

import (
	"github.com/phanxgames/cardtable"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TableEventType is the Donburi event type for table events.
var TableEventType = events.NewEventType[cardtable.TableEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Table events
// are published to TableEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) cardtable.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) HandleEvent(event cardtable.TableEvent) {
	TableEventType.Publish(s.world, event)
}

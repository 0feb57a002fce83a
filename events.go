package cardtable

// EventType identifies a table event.
type EventType uint8

const (
	EventCardDrawn     EventType = iota + 1 // a card was drawn from a deck
	EventDragStarted                        // an object was picked up
	EventDropped                            // the held object was released
	EventBindCreated                        // two loose cards formed a bind
	EventBindJoined                         // a loose card joined a bind
	EventBindMerged                         // one bind was emptied into another
	EventBindDissolved                      // a bind fell below two members
	EventCardDetached                       // a card was pulled out of a bind
	EventCardDocked                         // a card entered the hand
	EventCardUndocked                       // a card left the hand
	EventCameraReset                        // the camera returned to the origin
)

var eventNames = [...]string{
	EventCardDrawn:     "card_drawn",
	EventDragStarted:   "drag_started",
	EventDropped:       "dropped",
	EventBindCreated:   "bind_created",
	EventBindJoined:    "bind_joined",
	EventBindMerged:    "bind_merged",
	EventBindDissolved: "bind_dissolved",
	EventCardDetached:  "card_detached",
	EventCardDocked:    "card_docked",
	EventCardUndocked:  "card_undocked",
	EventCameraReset:   "camera_reset",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) && eventNames[t] != "" {
		return eventNames[t]
	}
	return "unknown"
}

// TableEvent describes something that happened on the table during Update.
type TableEvent struct {
	Type EventType
	// Object is the card, deck, or bind the event is about.
	Object ObjectID
	// Bind is the bind involved, when there is one.
	Bind ObjectID
	// Label is the card label for card events.
	Label string
	// Position is the object's world position after the event.
	Position Vec2
	// Count is the member count for bind events and the remaining count for
	// EventCardDrawn.
	Count int
}

// EventSink receives table events synchronously from Table.Update.
type EventSink interface {
	HandleEvent(ev TableEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(TableEvent)

// HandleEvent calls f(ev).
func (f EventSinkFunc) HandleEvent(ev TableEvent) { f(ev) }

// MultiSink fans an event out to several sinks in order.
type MultiSink []EventSink

// HandleEvent forwards ev to every non-nil sink.
func (m MultiSink) HandleEvent(ev TableEvent) {
	for _, s := range m {
		if s != nil {
			s.HandleEvent(ev)
		}
	}
}

// EventRecorder is an EventSink that keeps every event it receives.
type EventRecorder struct {
	Events []TableEvent
}

// HandleEvent appends ev.
func (r *EventRecorder) HandleEvent(ev TableEvent) {
	r.Events = append(r.Events, ev)
}

// Types returns the recorded event types in order.
func (r *EventRecorder) Types() []EventType {
	out := make([]EventType, len(r.Events))
	for i, ev := range r.Events {
		out[i] = ev.Type
	}
	return out
}

// Reset drops all recorded events.
func (r *EventRecorder) Reset() { r.Events = r.Events[:0] }

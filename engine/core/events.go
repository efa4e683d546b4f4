package core

// Event represents a user-triggered scene event
type Event struct {
	Type    EventType
	Frame   uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtCameraReset EventType = iota
	EvtWireframeToggled
	EvtProjectionToggled
	EvtCursorCaptureToggled
	EvtWrapModeChanged
	EvtConfigRejected
	EvtQuit
)

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Dispatch processes all queued events. Events emitted by handlers are
// delivered on the next Dispatch.
func (eb *EventBus) Dispatch() {
	pending := eb.queue
	eb.queue = nil
	for _, e := range pending {
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
}

// Pending returns the number of queued events.
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}

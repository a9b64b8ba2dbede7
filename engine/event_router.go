package engine

import (
	"github.com/lixenwraith/sinkhole/event"
	"github.com/lixenwraith/sinkhole/parameter"
)

// EventHandler processes specific event types
type EventHandler interface {
	// HandleEvent processes a single event, synchronously on the sim goroutine
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}

// HandlerFunc adapts a function into an EventHandler for the listed types
func HandlerFunc(fn func(ev event.GameEvent), types ...event.EventType) EventHandler {
	return handlerFunc{fn: fn, types: types}
}

type handlerFunc struct {
	fn    func(ev event.GameEvent)
	types []event.EventType
}

func (h handlerFunc) HandleEvent(ev event.GameEvent)  { h.fn(ev) }
func (h handlerFunc) EventTypes() []event.EventType { return h.types }

// EventRouter dispatches queued events to registered handlers
// Handlers run in registration order; all handlers for one event finish before the next event
// The router is a System: each tick it drains whatever the earlier systems emitted
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.Queue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *event.Queue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them
// Events emitted by handlers during dispatch are delivered on the next call
func (r *EventRouter) DispatchAll() int {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	return len(events)
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}

func (r *EventRouter) Update(float64) { r.DispatchAll() }
func (r *EventRouter) Priority() int  { return parameter.PriorityEvents }

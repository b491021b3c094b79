package events

// Handler reacts to the event types it declares
// Systems and front-end collaborators (status line, audio, counters) implement it
type Handler[T any] interface {
	HandleEvent(ctx T, event GameEvent)
	EventTypes() []EventType
}

// Router fans queued events out to handlers on the scheduler goroutine
// Handlers of one type run in registration order, so an action's resolver
// registered before its observers sees the world first
type Router[T any] struct {
	queue    *EventQueue
	handlers map[EventType][]Handler[T]
}

// NewRouter creates a router draining queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		queue:    queue,
		handlers: make(map[EventType][]Handler[T]),
	}
}

// Register subscribes handler to every type it declares
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll drains the queue: actions first, then outcomes
func (r *Router[T]) DispatchAll(ctx T) {
	r.DispatchWhere(ctx, nil)
}

// DispatchWhere drains outcomes and the actions accepted by keep
// Rejected actions stay queued for a later dispatch
func (r *Router[T]) DispatchWhere(ctx T, keep func(EventType) bool) {
	for _, ev := range r.queue.ConsumeWhere(keep) {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
}

// HasHandlers reports whether anything listens for t
func (r *Router[T]) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

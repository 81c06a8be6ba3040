package event

import "go.uber.org/zap"

// Handler is the callback signature for game-event handlers.
type Handler func(ev *Event)

// Registry maps event names to handlers. Events the game fires but nothing
// here consumes are logged at debug level and dropped; the feed is free to
// emit more than this process cares about.
type Registry struct {
	handlers map[string]Handler
	log      *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		log:      log,
	}
}

// Register binds a handler to an event name. Later registrations for the
// same name replace earlier ones.
func (r *Registry) Register(name string, fn Handler) {
	r.handlers[name] = fn
}

// Dispatch delivers one event to its handler. Must only be called from the
// game loop goroutine; handlers run serially.
func (r *Registry) Dispatch(ev *Event) {
	fn, ok := r.handlers[ev.Name]
	if !ok {
		r.log.Debug("unhandled game event", zap.String("event", ev.Name))
		return
	}
	fn(ev)
}

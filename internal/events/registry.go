package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownEvent is returned when dispatching an event nobody registered for.
var ErrUnknownEvent = errors.New("no handler registered for event")

// HandlerFunc processes one delivered event payload.
type HandlerFunc func(ctx context.Context, payload json.RawMessage) error

// Registry maps event names to background handlers. An external delivery
// service invokes them through the events HTTP endpoint. The registry may
// legitimately be empty; the endpoint stays up either way.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]HandlerFunc)}
}

// Register binds a handler to an event name. Registering the same name twice
// is a programming error.
func (r *Registry) Register(name string, fn HandlerFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("event %q already registered", name)
	}
	r.handlers[name] = fn
	return nil
}

// Names returns the registered event names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the handler registered for name.
func (r *Registry) Dispatch(ctx context.Context, name string, payload json.RawMessage) error {
	r.mu.RLock()
	fn, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEvent, name)
	}
	return fn(ctx, payload)
}

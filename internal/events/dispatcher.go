package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Dispatcher maps event names to an ordered list of handlers.
type Dispatcher struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[string][]registration
}

type registration struct {
	id      int
	handler Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]registration)}
}

// Register appends h to the handlers of eventName and returns a func that
// removes exactly this registration.
func (d *Dispatcher) Register(eventName string, h Handler) (unregister func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	id := d.nextID
	d.handlers[eventName] = append(d.handlers[eventName], registration{id: id, handler: h})

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()

		regs := d.handlers[eventName]
		for i, r := range regs {
			if r.id == id {
				d.handlers[eventName] = append(regs[:i:i], regs[i+1:]...)
				break
			}
		}
		if len(d.handlers[eventName]) == 0 {
			delete(d.handlers, eventName)
		}
	}
}

func (d *Dispatcher) UnregisterAll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = make(map[string][]registration)
}

// Handlers returns the handlers registered for eventName in registration order.
func (d *Dispatcher) Handlers(eventName string) []Handler {
	d.mu.RLock()
	defer d.mu.RUnlock()

	regs := d.handlers[eventName]
	out := make([]Handler, 0, len(regs))
	for _, r := range regs {
		out = append(out, r.handler)
	}
	return out
}

// Notify calls every handler registered for ev.Name() in order. A failing or
// panicking handler does not stop the rest; all failures are joined into the
// returned error.
func (d *Dispatcher) Notify(ctx context.Context, ev Event) error {
	var errs []error
	for i, h := range d.Handlers(ev.Name()) {
		if err := safeHandle(ctx, h, ev); err != nil {
			errs = append(errs, fmt.Errorf("handler %d for %s: %w", i, ev.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func safeHandle(ctx context.Context, h Handler, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return h.Handle(ctx, ev)
}

// Package dispatch routes decoded webhook events to registered handlers.
// It sits between the webhook entry point and application code so consumers
// can react per event kind instead of switching on every delivery themselves.
package dispatch

import (
	"sync"

	"github.com/AroraShreshth/wasender/pkg/events"
)

// Handler consumes one decoded event. Handlers run synchronously on the
// dispatching goroutine; slow work should be offloaded.
type Handler func(evt *events.Event)

// Dispatcher fans decoded events out to per-kind handlers, catch-all
// handlers and observer channels. The zero value is not usable; call New.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[events.EventType][]Handler
	catchAll []Handler

	obsMu     sync.RWMutex
	observers []chan *events.Event
}

func New() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[events.EventType][]Handler),
	}
}

// On registers a handler for one event kind. Multiple handlers per kind run
// in registration order.
func (d *Dispatcher) On(t events.EventType, h Handler) *Dispatcher {
	d.mu.Lock()
	d.handlers[t] = append(d.handlers[t], h)
	d.mu.Unlock()
	return d
}

// OnAny registers a handler invoked for every event, including kinds this
// library does not recognize.
func (d *Dispatcher) OnAny(h Handler) *Dispatcher {
	d.mu.Lock()
	d.catchAll = append(d.catchAll, h)
	d.mu.Unlock()
	return d
}

// Subscribe returns a channel receiving every dispatched event. Slow
// subscribers are skipped rather than blocking dispatch.
func (d *Dispatcher) Subscribe() chan *events.Event {
	ch := make(chan *events.Event, 50)
	d.obsMu.Lock()
	d.observers = append(d.observers, ch)
	d.obsMu.Unlock()
	return ch
}

// Unsubscribe removes and closes an observer channel.
func (d *Dispatcher) Unsubscribe(ch chan *events.Event) {
	d.obsMu.Lock()
	defer d.obsMu.Unlock()
	for i, obs := range d.observers {
		if obs == ch {
			d.observers = append(d.observers[:i], d.observers[i+1:]...)
			close(ch)
			return
		}
	}
}

// Dispatch runs the event through catch-all handlers, then kind handlers,
// then observer channels.
func (d *Dispatcher) Dispatch(evt *events.Event) {
	d.mu.RLock()
	catchAll := d.catchAll
	kindHandlers := d.handlers[evt.Type]
	d.mu.RUnlock()

	for _, h := range catchAll {
		h(evt)
	}
	for _, h := range kindHandlers {
		h(evt)
	}

	d.obsMu.RLock()
	defer d.obsMu.RUnlock()
	for _, obs := range d.observers {
		select {
		case obs <- evt:
		default:
			// skip slow observers
		}
	}
}

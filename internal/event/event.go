// internal/event/event.go
package event

import (
	"log"
	"sort"
)

// EventType names a kind of event.
type EventType string

// Event is a queued event with its payload.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener reacts to events it subscribed to.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// MaxDrainPasses bounds how many generations of events one Drain processes.
// Events still queued after the last pass stay for the next Drain.
const MaxDrainPasses = 8

type subscription struct {
	order    int
	listener Listener
}

// Dispatcher is a queue of events fanned out to ordered listeners.
// Handlers for one type run by ascending order number; equal numbers keep
// subscription order.
type Dispatcher struct {
	listeners map[EventType][]subscription
	queue     []Event
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe registers listener for eventType at the given order.
func (d *Dispatcher) Subscribe(eventType EventType, order int, listener Listener) {
	subs := append(d.listeners[eventType], subscription{order: order, listener: listener})
	sort.SliceStable(subs, func(i, j int) bool { return subs[i].order < subs[j].order })
	d.listeners[eventType] = subs
}

// SubscribeFunc is Subscribe for a plain function.
func (d *Dispatcher) SubscribeFunc(eventType EventType, order int, fn func(Event)) {
	d.Subscribe(eventType, order, ListenerFunc(fn))
}

// Unsubscribe removes every subscription of listener for eventType.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	subs := d.listeners[eventType]
	kept := subs[:0]
	for _, s := range subs {
		if s.listener != listener {
			kept = append(kept, s)
		}
	}
	d.listeners[eventType] = kept
}

// Push queues an event for the next Drain.
func (d *Dispatcher) Push(e Event) {
	d.queue = append(d.queue, e)
}

// Dispatch delivers an event immediately, bypassing the queue.
func (d *Dispatcher) Dispatch(e Event) {
	for _, s := range d.listeners[e.Type] {
		s.listener.OnEvent(e)
	}
}

// Pending reports how many events are queued.
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}

// Drain delivers queued events until the queue is empty. Events pushed by
// handlers are delivered in the following pass. Returns the number of events
// delivered.
func (d *Dispatcher) Drain() int {
	delivered := 0
	for pass := 0; pass < MaxDrainPasses && len(d.queue) > 0; pass++ {
		batch := d.queue
		d.queue = nil
		for _, e := range batch {
			d.Dispatch(e)
			delivered++
		}
	}
	if len(d.queue) > 0 {
		log.Printf("event queue still holds %d events after %d passes", len(d.queue), MaxDrainPasses)
	}
	return delivered
}

// Clear drops every queued event.
func (d *Dispatcher) Clear() {
	d.queue = nil
}

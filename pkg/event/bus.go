// Package event provides the topic-keyed publish/subscribe bus used to
// feed input and cross-component notifications into the widget tree
// between layout passes.
//
// Dispatch is synchronous and in subscription order. The bus is safe
// for concurrent publish and subscribe calls from multiple goroutines;
// handlers are always invoked outside the bus lock, so a handler may
// subscribe, unsubscribe, or publish without deadlocking.
package event

import "sync"

// Handler receives events published to a topic. data is nil for
// notification-only events.
type Handler func(topic string, data []byte)

// Bus is a topic-keyed publish/subscribe dispatcher.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string][]entry
}

type entry struct {
	id uint64
	fn Handler
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string][]entry)}
}

// Subscribe registers a handler for a topic and returns a Subscription
// used to cancel it. Handlers on the same topic run in subscription
// order.
func (b *Bus) Subscribe(topic string, fn Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.subs[topic] = append(b.subs[topic], entry{id: b.nextID, fn: fn})
	return Subscription{bus: b, topic: topic, id: b.nextID}
}

// Publish delivers data to every handler subscribed to topic,
// synchronously and in subscription order, and returns the number of
// handlers invoked. Publishing to a topic with no subscribers is not
// an error; nil data is permitted for notification-only events.
func (b *Bus) Publish(topic string, data []byte) int {
	b.mu.RLock()
	list := b.subs[topic]
	b.mu.RUnlock()

	// The slice snapshot is immutable: Subscribe appends and Cancel
	// rebuilds, so iterating outside the lock is safe.
	for _, e := range list {
		e.fn(topic, data)
	}
	return len(list)
}

// Subscription identifies one active Subscribe call.
type Subscription struct {
	bus   *Bus
	topic string
	id    uint64
}

// Cancel removes the subscription, preserving the order of the
// remaining handlers. It returns false if the subscription was already
// cancelled. A publish running concurrently may still deliver one last
// event to the handler.
func (s Subscription) Cancel() bool {
	if s.bus == nil {
		return false
	}
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	list := s.bus.subs[s.topic]
	for i, e := range list {
		if e.id != s.id {
			continue
		}
		// Copy so snapshots held by in-flight publishes stay intact.
		next := make([]entry, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(s.bus.subs, s.topic)
		} else {
			s.bus.subs[s.topic] = next
		}
		return true
	}
	return false
}

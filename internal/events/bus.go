package events

import (
	"log"
	"slices"
	"sort"
	"sync"

	apperr "github.com/KirkDiggler/oop-showcase/internal/errors"
)

// EventListener reacts to roster and fleet events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus delivers events to listeners in ascending priority order
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)

	// Stable so equal priorities keep subscription order
	sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})

	log.Printf("EventBus: Subscribed listener %s to event %s with priority %d",
		listener.ID(), eventType, listener.Priority())
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[eventType] = slices.Delete(listeners, i, i+1)

		log.Printf("EventBus: Unsubscribed listener %s from event %s", listenerID, eventType)
		return
	}
}

// SubscribeAll subscribes listener to every given event type
func (b *Bus) SubscribeAll(listener EventListener, eventTypes ...EventType) {
	for _, eventType := range eventTypes {
		b.Subscribe(eventType, listener)
	}
}

// Emit sends an event to all registered listeners. A nil Bus drops the event.
func (b *Bus) Emit(event Event) error {
	if b == nil {
		return nil
	}

	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	log.Printf("EventBus: Emitting event %s with %d listeners", event.GetType(), len(listeners))

	for _, listener := range listeners {
		if event.IsCancelled() {
			log.Printf("EventBus: Event %s cancelled, stopping propagation", event.GetType())
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			return apperr.Wrapf(err, "listener %s failed", listener.ID()).
				WithMeta("event_type", string(event.GetType()))
		}
	}

	return nil
}

// ListenerCount returns how many listeners are subscribed to eventType
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.listeners[eventType])
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
	log.Printf("EventBus: Cleared all listeners")
}

// util/event_bus.go

package util

import (
	"context"
	"sync"

	"go.uber.org/zap"

	logger "github.com/rohanverma/dashgate/logging"
)

// Event is a dashboard lifecycle notification delivered to subscribers.
type Event struct {
	Type    string
	Payload interface{}
}

// EventHandler consumes one event. A returned error is logged and does not
// affect other subscribers or the publisher.
type EventHandler func(context.Context, Event) error

// EventBus fans dashboard lifecycle events out to subscribers. Handlers run
// on their own goroutines so publishing never blocks a request; Drain waits
// for in-flight handlers at shutdown.
type EventBus struct {
	mu          sync.RWMutex
	subscribers map[string][]EventHandler
	inflight    sync.WaitGroup
}

// NewEventBus creates a new EventBus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]EventHandler),
	}
}

// Subscribe registers a handler for an event type and returns a function
// that removes the registration again.
func (eb *EventBus) Subscribe(eventType string, handler EventHandler) func() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscribers[eventType] = append(eb.subscribers[eventType], handler)
	index := len(eb.subscribers[eventType]) - 1

	return func() {
		eb.mu.Lock()
		defer eb.mu.Unlock()
		// Slots are nilled rather than removed so earlier unsubscribe
		// functions keep pointing at the right handler.
		eb.subscribers[eventType][index] = nil
	}
}

// Publish sends an event to all subscribers of its type.
func (eb *EventBus) Publish(ctx context.Context, eventType string, payload interface{}) {
	eb.mu.RLock()
	handlers := append([]EventHandler(nil), eb.subscribers[eventType]...)
	eb.mu.RUnlock()

	event := Event{
		Type:    eventType,
		Payload: payload,
	}

	for _, handler := range handlers {
		if handler == nil {
			continue
		}
		eb.inflight.Add(1)
		go func(h EventHandler) {
			defer eb.inflight.Done()
			if err := h(ctx, event); err != nil {
				logger.Error("Event handler failed",
					zap.String("eventType", eventType),
					zap.Error(err))
			}
		}(handler)
	}
}

// Drain blocks until every handler spawned so far has returned.
func (eb *EventBus) Drain() {
	eb.inflight.Wait()
}

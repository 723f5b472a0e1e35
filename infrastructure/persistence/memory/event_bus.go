package memory

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"accessengine-backend/application/ports"
	"accessengine-backend/domain/events"
)

// wildcardTopic subscribes a handler to every event type
const wildcardTopic = "*"

// EventBus dispatches domain events to in-process subscribers. Dispatch
// is synchronous and continues past handler failures, so one broken
// subscriber cannot starve the rest or fail the publishing command.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[string][]ports.EventHandler
	logger   *zap.Logger
}

// NewEventBus creates an event bus with no subscribers
func NewEventBus(logger *zap.Logger) *EventBus {
	return &EventBus{
		handlers: make(map[string][]ports.EventHandler),
		logger:   logger,
	}
}

// Publish sends a single event to all matching subscribers
func (b *EventBus) Publish(ctx context.Context, event events.DomainEvent) error {
	for _, handler := range b.subscribers(event.GetEventType()) {
		if !handler.CanHandle(event.GetEventType()) {
			continue
		}
		if err := handler.Handle(ctx, event); err != nil {
			b.logger.Warn("Event handler failed",
				zap.String("eventType", event.GetEventType()),
				zap.String("aggregateId", event.GetAggregateID()),
				zap.Error(err))
		}
	}
	return nil
}

// PublishBatch sends multiple events
func (b *EventBus) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	for _, event := range batch {
		if err := b.Publish(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// Subscribe registers a handler for an event type. The wildcard "*"
// subscribes to every type.
func (b *EventBus) Subscribe(eventType string, handler ports.EventHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	return nil
}

// Unsubscribe removes a handler
func (b *EventBus) Unsubscribe(eventType string, handler ports.EventHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	registered := b.handlers[eventType]
	for i, existing := range registered {
		if existing == handler {
			b.handlers[eventType] = append(registered[:i], registered[i+1:]...)
			return nil
		}
	}
	return nil
}

// subscribers snapshots the handler list so dispatch runs outside the
// lock and handlers can subscribe or unsubscribe while handling
func (b *EventBus) subscribers(eventType string) []ports.EventHandler {
	b.mu.RLock()
	defer b.mu.RUnlock()

	matched := make([]ports.EventHandler, 0, len(b.handlers[eventType])+len(b.handlers[wildcardTopic]))
	matched = append(matched, b.handlers[eventType]...)
	matched = append(matched, b.handlers[wildcardTopic]...)
	return matched
}

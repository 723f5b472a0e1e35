package memory

import (
	"context"
	"sync"

	"accessengine-backend/domain/events"
)

// EventStore keeps the domain event log in memory, append order
// preserved per aggregate
type EventStore struct {
	mu       sync.RWMutex
	byAggr   map[string][]events.DomainEvent
	appended []events.DomainEvent
}

// NewEventStore creates an empty event store
func NewEventStore() *EventStore {
	return &EventStore{
		byAggr:   make(map[string][]events.DomainEvent),
		appended: make([]events.DomainEvent, 0),
	}
}

// SaveEvents persists domain events
func (s *EventStore) SaveEvents(ctx context.Context, batch []events.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, event := range batch {
		s.byAggr[event.GetAggregateID()] = append(s.byAggr[event.GetAggregateID()], event)
		s.appended = append(s.appended, event)
	}
	return nil
}

// GetEvents retrieves events for an aggregate in append order
func (s *EventStore) GetEvents(ctx context.Context, aggregateID string) ([]events.DomainEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.byAggr[aggregateID]
	result := make([]events.DomainEvent, len(stored))
	copy(result, stored)
	return result, nil
}

// GetEventsByType retrieves the most recent events of a type, newest first
func (s *EventStore) GetEventsByType(ctx context.Context, eventType string, limit int) ([]events.DomainEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]events.DomainEvent, 0, limit)
	for i := len(s.appended) - 1; i >= 0; i-- {
		if s.appended[i].GetEventType() != eventType {
			continue
		}
		result = append(result, s.appended[i])
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

// DeleteEvents removes all events for an aggregate
func (s *EventStore) DeleteEvents(ctx context.Context, aggregateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byAggr, aggregateID)

	kept := s.appended[:0]
	for _, event := range s.appended {
		if event.GetAggregateID() != aggregateID {
			kept = append(kept, event)
		}
	}
	s.appended = kept
	return nil
}

package observability

import (
	"context"

	"accessengine-backend/domain/events"
)

// EventListener feeds rebuild and outreach metrics from domain events. It
// subscribes on the in-process event bus next to the real consumers, so the
// counters track what actually happened rather than what handlers attempted.
type EventListener struct {
	collector *Collector
}

// NewEventListener creates a listener bound to the given collector
func NewEventListener(collector *Collector) *EventListener {
	return &EventListener{collector: collector}
}

// CanHandle reports whether the listener observes the event type
func (l *EventListener) CanHandle(eventType string) bool {
	switch eventType {
	case events.EventTypeCircleRebuilt,
		events.EventTypeCircleRebuildFailed,
		events.EventTypeOutreachDrafted,
		events.EventTypeOutreachStatusChanged:
		return true
	}
	return false
}

// Handle updates the counters for one event. It never returns an error; a
// metrics gap must not fail event delivery.
func (l *EventListener) Handle(_ context.Context, event events.DomainEvent) error {
	switch e := event.(type) {
	case events.CircleRebuilt:
		l.collector.Rebuilds.WithLabelValues("success").Inc()
		l.collector.PrunedMembers.Add(float64(e.PrunedCount))
		l.collector.CircleSize.Observe(float64(e.NodeCount))
	case events.CircleRebuildFailed:
		l.collector.Rebuilds.WithLabelValues("failed").Inc()
	case events.OutreachDrafted:
		l.collector.OutreachDrafts.Inc()
		l.collector.OutreachDraftWords.Observe(float64(e.WordCount))
	case events.OutreachStatusChanged:
		l.collector.OutreachTransitions.WithLabelValues(e.NewStatus).Inc()
	}
	return nil
}

package websocket

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"accessengine-backend/application/ports"
	"accessengine-backend/domain/events"
)

// livePayload is the wire format pushed to dashboard clients
type livePayload struct {
	Type        string    `json:"type"`
	CelebrityID string    `json:"celebrity_id"`
	Version     int       `json:"version,omitempty"`
	NodeCount   int       `json:"node_count,omitempty"`
	AccessScore int       `json:"access_score,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// EventListener pushes rebuild and score updates to every dashboard
// connection watching the affected celebrity. Delivery is best effort;
// a client that misses a push refetches on its next poll.
type EventListener struct {
	notifier ports.LiveNotifier
	registry ports.ConnectionRegistry
	logger   *zap.Logger
}

// NewEventListener creates a listener broadcasting through the notifier
func NewEventListener(notifier ports.LiveNotifier, registry ports.ConnectionRegistry, logger *zap.Logger) *EventListener {
	return &EventListener{
		notifier: notifier,
		registry: registry,
		logger:   logger,
	}
}

// CanHandle reports which events produce dashboard pushes
func (l *EventListener) CanHandle(eventType string) bool {
	switch eventType {
	case events.EventTypeCircleRebuilt, events.EventTypeAccessScoreUpdated:
		return true
	}
	return false
}

// Handle fans the event out to the celebrity's topic. Errors are logged
// and swallowed so a push failure never fails the operation that raised
// the event.
func (l *EventListener) Handle(ctx context.Context, event events.DomainEvent) error {
	payload, topic := l.payloadFor(event)
	if topic == "" {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		l.logger.Error("Failed to encode live payload",
			zap.String("eventType", event.GetEventType()),
			zap.Error(err))
		return nil
	}

	connections, err := l.registry.ListByTopic(ctx, topic)
	if err != nil {
		l.logger.Warn("Failed to list connections for topic",
			zap.String("topic", topic),
			zap.Error(err))
		return nil
	}

	for _, conn := range connections {
		if err := l.notifier.Notify(ctx, conn.ConnectionID, data); err != nil {
			l.logger.Warn("Failed to push live update",
				zap.String("connectionId", conn.ConnectionID),
				zap.String("topic", topic),
				zap.Error(err))
		}
	}
	return nil
}

func (l *EventListener) payloadFor(event events.DomainEvent) (livePayload, string) {
	switch e := event.(type) {
	case events.CircleRebuilt:
		return livePayload{
			Type:        e.GetEventType(),
			CelebrityID: e.CelebrityID.String(),
			Version:     e.SnapshotVersion,
			NodeCount:   e.NodeCount,
			AccessScore: e.AccessScore,
			Timestamp:   e.GetTimestamp(),
		}, e.CelebrityID.String()
	case events.AccessScoreUpdated:
		return livePayload{
			Type:        e.GetEventType(),
			CelebrityID: e.CelebrityID.String(),
			AccessScore: e.NewScore,
			Timestamp:   e.GetTimestamp(),
		}, e.CelebrityID.String()
	}
	return livePayload{}, ""
}

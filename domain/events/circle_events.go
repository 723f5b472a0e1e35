package events

import (
	"time"

	"accessengine-backend/domain/core/valueobjects"
)

// Event types consumed by the rebuild worker and the dashboard notifier
const (
	EventTypePersonAdded         = "circle.person_added"
	EventTypeRebuildRequested    = "circle.rebuild_requested"
	EventTypeCircleRebuilt       = "circle.rebuilt"
	EventTypeCircleRebuildFailed = "circle.rebuild_failed"
	EventTypeAccessScoreUpdated  = "celebrity.access_score_updated"
)

// PersonAdded is raised when a person joins a celebrity's circle
type PersonAdded struct {
	BaseEvent
	NodeID      valueobjects.NodeID      `json:"node_id"`
	CelebrityID valueobjects.CelebrityID `json:"celebrity_id"`
	Name        string                   `json:"name"`
	Tag         string                   `json:"relationship_tag"`
}

// NewPersonAdded creates a PersonAdded event
func NewPersonAdded(nodeID valueobjects.NodeID, celebrityID valueobjects.CelebrityID, name, tag string, timestamp time.Time) PersonAdded {
	return PersonAdded{
		BaseEvent: BaseEvent{
			AggregateID: celebrityID.String(),
			EventType:   EventTypePersonAdded,
			Timestamp:   timestamp,
			Version:     1,
		},
		NodeID:      nodeID,
		CelebrityID: celebrityID,
		Name:        name,
		Tag:         tag,
	}
}

// RebuildRequested is raised when something asks for a snapshot rebuild.
// The rebuild worker consumes it asynchronously.
type RebuildRequested struct {
	BaseEvent
	CelebrityID valueobjects.CelebrityID `json:"celebrity_id"`
	Reason      string                   `json:"reason"`
}

// NewRebuildRequested creates a RebuildRequested event
func NewRebuildRequested(celebrityID valueobjects.CelebrityID, reason string, timestamp time.Time) RebuildRequested {
	return RebuildRequested{
		BaseEvent: BaseEvent{
			AggregateID: celebrityID.String(),
			EventType:   EventTypeRebuildRequested,
			Timestamp:   timestamp,
			Version:     1,
		},
		CelebrityID: celebrityID,
		Reason:      reason,
	}
}

// CircleRebuilt is raised after a snapshot rebuild swaps in successfully
type CircleRebuilt struct {
	BaseEvent
	CelebrityID     valueobjects.CelebrityID `json:"celebrity_id"`
	SnapshotVersion int                      `json:"snapshot_version"`
	NodeCount       int                      `json:"node_count"`
	EdgeCount       int                      `json:"edge_count"`
	PrunedCount     int                      `json:"pruned_count"`
	WarningCount    int                      `json:"warning_count"`
	AccessScore     int                      `json:"access_score"`
}

// NewCircleRebuilt creates a CircleRebuilt event
func NewCircleRebuilt(celebrityID valueobjects.CelebrityID, snapshotVersion, nodeCount, edgeCount, prunedCount, warningCount, accessScore int, timestamp time.Time) CircleRebuilt {
	return CircleRebuilt{
		BaseEvent: BaseEvent{
			AggregateID: celebrityID.String(),
			EventType:   EventTypeCircleRebuilt,
			Timestamp:   timestamp,
			Version:     1,
		},
		CelebrityID:     celebrityID,
		SnapshotVersion: snapshotVersion,
		NodeCount:       nodeCount,
		EdgeCount:       edgeCount,
		PrunedCount:     prunedCount,
		WarningCount:    warningCount,
		AccessScore:     accessScore,
	}
}

// CircleRebuildFailed is raised when a rebuild fails; the previous snapshot
// stays live.
type CircleRebuildFailed struct {
	BaseEvent
	CelebrityID valueobjects.CelebrityID `json:"celebrity_id"`
	Reason      string                   `json:"reason"`
}

// NewCircleRebuildFailed creates a CircleRebuildFailed event
func NewCircleRebuildFailed(celebrityID valueobjects.CelebrityID, reason string, timestamp time.Time) CircleRebuildFailed {
	return CircleRebuildFailed{
		BaseEvent: BaseEvent{
			AggregateID: celebrityID.String(),
			EventType:   EventTypeCircleRebuildFailed,
			Timestamp:   timestamp,
			Version:     1,
		},
		CelebrityID: celebrityID,
		Reason:      reason,
	}
}

// AccessScoreUpdated is raised when a celebrity's composite access score
// changes after a rebuild
type AccessScoreUpdated struct {
	BaseEvent
	CelebrityID valueobjects.CelebrityID `json:"celebrity_id"`
	OldScore    int                      `json:"old_score"`
	NewScore    int                      `json:"new_score"`
}

// NewAccessScoreUpdated creates an AccessScoreUpdated event
func NewAccessScoreUpdated(celebrityID valueobjects.CelebrityID, oldScore, newScore int, timestamp time.Time) AccessScoreUpdated {
	return AccessScoreUpdated{
		BaseEvent: BaseEvent{
			AggregateID: celebrityID.String(),
			EventType:   EventTypeAccessScoreUpdated,
			Timestamp:   timestamp,
			Version:     1,
		},
		CelebrityID: celebrityID,
		OldScore:    oldScore,
		NewScore:    newScore,
	}
}

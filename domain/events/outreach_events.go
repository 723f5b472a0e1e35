package events

import (
	"time"

	"accessengine-backend/domain/core/valueobjects"
)

const (
	EventTypeOutreachDrafted       = "outreach.drafted"
	EventTypeOutreachStatusChanged = "outreach.status_changed"
)

// OutreachDrafted is raised when a generated outreach message is stored
type OutreachDrafted struct {
	BaseEvent
	OutreachID  string                   `json:"outreach_id"`
	CelebrityID valueobjects.CelebrityID `json:"celebrity_id"`
	NodeID      valueobjects.NodeID      `json:"node_id"`
	Subject     string                   `json:"subject"`
	WordCount   int                      `json:"word_count"`
}

// NewOutreachDrafted creates an OutreachDrafted event
func NewOutreachDrafted(outreachID string, celebrityID valueobjects.CelebrityID, nodeID valueobjects.NodeID, subject string, wordCount int, timestamp time.Time) OutreachDrafted {
	return OutreachDrafted{
		BaseEvent: BaseEvent{
			AggregateID: outreachID,
			EventType:   EventTypeOutreachDrafted,
			Timestamp:   timestamp,
			Version:     1,
		},
		OutreachID:  outreachID,
		CelebrityID: celebrityID,
		NodeID:      nodeID,
		Subject:     subject,
		WordCount:   wordCount,
	}
}

// OutreachStatusChanged is raised when an outreach record moves through its
// lifecycle (draft, sent, replied)
type OutreachStatusChanged struct {
	BaseEvent
	OutreachID  string                   `json:"outreach_id"`
	CelebrityID valueobjects.CelebrityID `json:"celebrity_id"`
	OldStatus   string                   `json:"old_status"`
	NewStatus   string                   `json:"new_status"`
}

// NewOutreachStatusChanged creates an OutreachStatusChanged event
func NewOutreachStatusChanged(outreachID string, celebrityID valueobjects.CelebrityID, oldStatus, newStatus string, timestamp time.Time) OutreachStatusChanged {
	return OutreachStatusChanged{
		BaseEvent: BaseEvent{
			AggregateID: outreachID,
			EventType:   EventTypeOutreachStatusChanged,
			Timestamp:   timestamp,
			Version:     1,
		},
		OutreachID:  outreachID,
		CelebrityID: celebrityID,
		OldStatus:   oldStatus,
		NewStatus:   newStatus,
	}
}

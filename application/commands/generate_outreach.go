package commands

import (
	"errors"

	"accessengine-backend/application/ports"
)

// GenerateOutreachCommand drafts a personalized outreach message for one
// member of a celebrity's circle and persists it as a draft
type GenerateOutreachCommand struct {
	CelebrityID      string `json:"celebrity_id" validate:"required"`
	NodeID           string `json:"node_id" validate:"required"`
	SenderName       string `json:"sender_name" validate:"required"`
	SenderBackground string `json:"sender_background"`
	Ask              string `json:"user_ask"`
}

// Validate validates the GenerateOutreachCommand
func (c GenerateOutreachCommand) Validate() error {
	if c.CelebrityID == "" {
		return errors.New("celebrity ID is required")
	}
	if c.NodeID == "" {
		return errors.New("node ID is required")
	}
	if c.SenderName == "" {
		return errors.New("sender name is required")
	}
	return nil
}

// OutreachTarget identifies who the drafted message is addressed to
type OutreachTarget struct {
	Name        string `json:"person_name"`
	Role        string `json:"role,omitempty"`
	ContactInfo string `json:"contact_info,omitempty"`
}

// GenerateOutreachResult carries the persisted draft plus the leverage
// summary that shaped it
type GenerateOutreachResult struct {
	OutreachID   string                 `json:"outreach_id"`
	Message      string                 `json:"message"`
	SubjectLine  string                 `json:"subject_line"`
	PlatformNote string                 `json:"platform_note,omitempty"`
	ToneNote     string                 `json:"tone_note,omitempty"`
	WordCount    int                    `json:"word_count"`
	Hop          string                 `json:"hop"`
	Leverage     *ports.LeverageSummary `json:"leverage,omitempty"`
	Target       OutreachTarget         `json:"target"`
}

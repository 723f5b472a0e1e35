package commands

import "errors"

// ChannelInput is one contact channel on an incoming member record
type ChannelInput struct {
	Type   string `json:"type" validate:"required"`
	Handle string `json:"handle" validate:"required"`
	Public bool   `json:"public"`
}

// AddPersonCommand adds a person to a celebrity's circle. Warm scores and
// hop distances are derived by the next rebuild, never supplied by the
// caller.
type AddPersonCommand struct {
	CelebrityID          string         `json:"celebrity_id" validate:"required"`
	Name                 string         `json:"person_name" validate:"required,min=1,max=200"`
	Role                 string         `json:"role" validate:"required"`
	Rationale            string         `json:"why_warm"`
	Tag                  string         `json:"relationship_type" validate:"required"`
	Strength             int            `json:"strength" validate:"min=0,max=100"`
	MutualConnections    int            `json:"mutual_connections" validate:"min=0"`
	InteractionFrequency int            `json:"interaction_frequency" validate:"min=0"`
	DaysSinceActive      int            `json:"days_since_active" validate:"min=0"`
	Channels             []ChannelInput `json:"channels"`

	// ViaNodeID links the person to an existing member instead of the
	// celebrity root, for modeling second-hop contacts
	ViaNodeID string `json:"via_node_id,omitempty"`
}

// Validate validates the AddPersonCommand
func (c AddPersonCommand) Validate() error {
	if c.CelebrityID == "" {
		return errors.New("celebrity ID is required")
	}
	if c.Name == "" {
		return errors.New("person name is required")
	}
	if c.Tag == "" {
		return errors.New("relationship type is required")
	}
	if c.Strength < 0 || c.Strength > 100 {
		return errors.New("strength must be between 0 and 100")
	}
	for _, ch := range c.Channels {
		if ch.Type == "" || ch.Handle == "" {
			return errors.New("channels require both type and handle")
		}
	}
	return nil
}

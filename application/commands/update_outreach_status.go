package commands

import "errors"

// UpdateOutreachStatusCommand advances an outreach record along the
// draft, sent, replied lifecycle
type UpdateOutreachStatusCommand struct {
	OutreachID string `json:"outreach_id" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=draft sent replied"`
}

// Validate validates the UpdateOutreachStatusCommand
func (c UpdateOutreachStatusCommand) Validate() error {
	if c.OutreachID == "" {
		return errors.New("outreach ID is required")
	}
	if c.Status == "" {
		return errors.New("status is required")
	}
	return nil
}

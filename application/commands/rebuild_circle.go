package commands

import "errors"

// RebuildCircleCommand requests a fresh snapshot build for one celebrity.
// Reason is recorded on the version stamp and the rebuild events.
type RebuildCircleCommand struct {
	CelebrityID string `json:"celebrity_id" validate:"required"`
	Reason      string `json:"reason"`
}

// Validate validates the RebuildCircleCommand
func (c RebuildCircleCommand) Validate() error {
	if c.CelebrityID == "" {
		return errors.New("celebrity ID is required")
	}
	return nil
}

// RebuildAllCommand rebuilds every seeded circle, used by the scheduled
// worker and after bulk seeding
type RebuildAllCommand struct {
	Reason string `json:"reason"`
}

// Validate validates the RebuildAllCommand
func (c RebuildAllCommand) Validate() error {
	return nil
}

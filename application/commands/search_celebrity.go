package commands

import (
	"errors"

	"accessengine-backend/application/queries"
	"accessengine-backend/application/sagas"
)

// SearchCelebrityCommand runs the full lookup flow: resolve the query to
// a seeded celebrity, make sure their snapshot exists, rank paths, and
// assemble the AI intelligence package. Drafted chain messages are
// persisted, which is what makes this a command rather than a query.
type SearchCelebrityCommand struct {
	Query            string `json:"name" validate:"required"`
	SenderName       string `json:"sender_name"`
	SenderBackground string `json:"user_background"`
	Ask              string `json:"user_ask"`
}

// Validate validates the SearchCelebrityCommand
func (c SearchCelebrityCommand) Validate() error {
	if c.Query == "" {
		return errors.New("name is required")
	}
	return nil
}

// SearchReport is the full response for one celebrity search
type SearchReport struct {
	Celebrity    queries.CelebritySummary    `json:"celebrity"`
	Match        string                      `json:"match"`
	Graph        *queries.GetGraphDataResult `json:"graph"`
	BestPath     *queries.BestPathResult     `json:"best_path"`
	Intelligence *sagas.IntelligencePackage  `json:"intelligence"`
}

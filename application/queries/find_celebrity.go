package queries

import (
	"errors"
	"strings"
)

// FindCelebrityQuery represents a lookup of one seeded celebrity by name
type FindCelebrityQuery struct {
	Query string
}

// Validate validates the FindCelebrityQuery
func (q FindCelebrityQuery) Validate() error {
	if strings.TrimSpace(q.Query) == "" {
		return errors.New("query text is required")
	}
	return nil
}

// CelebritySummary is the roster view of one celebrity
type CelebritySummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Bio           string `json:"bio,omitempty"`
	AccessScore   int    `json:"access_score"`
	PrimaryHandle string `json:"primary_handle,omitempty"`
	KnownManager  string `json:"known_manager,omitempty"`
	NodeCount     int    `json:"node_count"`
}

// FindCelebrityResult represents the result of a celebrity lookup.
// Match reports how the query resolved: exact, substring, or fuzzy.
type FindCelebrityResult struct {
	Celebrity CelebritySummary `json:"celebrity"`
	Match     string           `json:"match"`
}

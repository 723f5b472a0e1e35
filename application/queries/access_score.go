package queries

import "errors"

// AccessScoreQuery fetches a celebrity's access score
type AccessScoreQuery struct {
	CelebrityID string
}

// Validate validates the AccessScoreQuery
func (q AccessScoreQuery) Validate() error {
	if q.CelebrityID == "" {
		return errors.New("celebrity ID is required")
	}
	return nil
}

// AccessScoreResult represents a celebrity's current access score with
// its reachability band
type AccessScoreResult struct {
	CelebrityID string `json:"celebrity_id"`
	AccessScore int    `json:"access_score"`
	Band        string `json:"band"`
}

package queries

import "errors"

// BestPathQuery ranks entry paths into a celebrity's circle. Industry and
// Connections describe the querent and only influence ranking, never the
// stored warm scores.
type BestPathQuery struct {
	CelebrityID string
	TopK        int
	Industry    string
	Connections []string
}

// Validate validates the BestPathQuery
func (q BestPathQuery) Validate() error {
	if q.CelebrityID == "" {
		return errors.New("celebrity ID is required")
	}
	if q.TopK < 0 {
		return errors.New("top_k cannot be negative")
	}
	return nil
}

// PathStep is one person along a recommended chain, entry point first
type PathStep struct {
	NodeID      string `json:"node_id"`
	Name        string `json:"person_name"`
	Role        string `json:"role,omitempty"`
	Tag         string `json:"relationship_type"`
	Hop         int    `json:"hop"`
	WarmScore   int    `json:"warm_score"`
	WhyWarm     string `json:"why_warm,omitempty"`
	ContactInfo string `json:"contact_info,omitempty"`
}

// RankedPath is one recommended approach chain. TotalHops counts the final
// hop to the celebrity, so a direct entry reports two.
type RankedPath struct {
	Steps     []PathStep `json:"path"`
	TotalHops int        `json:"total_hops"`
	PathScore int        `json:"path_score"`
	RankScore int        `json:"rank_score"`
	Direct    bool       `json:"direct"`
}

// BestPathResult represents the ranked path selection for a celebrity.
// Viable false means no contactable entry exists; that is a normal result,
// not an error.
type BestPathResult struct {
	CelebrityID string       `json:"celebrity_id"`
	Viable      bool         `json:"viable"`
	Fallback    bool         `json:"fallback"`
	Paths       []RankedPath `json:"paths"`
	EntryPoint  *PathStep    `json:"entry_point,omitempty"`
}

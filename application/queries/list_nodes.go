package queries

import "errors"

// ListNodesQuery lists every member of a celebrity's circle with warm scores
type ListNodesQuery struct {
	CelebrityID string
}

// Validate validates the ListNodesQuery
func (q ListNodesQuery) Validate() error {
	if q.CelebrityID == "" {
		return errors.New("celebrity ID is required")
	}
	return nil
}

// SignalBreakdown is one signal's share of a warm score
type SignalBreakdown struct {
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
}

// NodeView is one scored member of a circle
type NodeView struct {
	ID            string            `json:"id"`
	Name          string            `json:"person_name"`
	Role          string            `json:"role,omitempty"`
	Tag           string            `json:"relationship_type"`
	HopDistance   int               `json:"hop_distance"`
	WarmScore     int               `json:"warm_score"`
	Uncontactable bool              `json:"uncontactable"`
	WhyWarm       string            `json:"why_warm,omitempty"`
	ContactInfo   string            `json:"contact_info,omitempty"`
	Contributions []SignalBreakdown `json:"contributions,omitempty"`
}

// ListNodesResult represents a circle listing, warmest first
type ListNodesResult struct {
	CelebrityID string     `json:"celebrity_id"`
	Nodes       []NodeView `json:"nodes"`
	Count       int        `json:"count"`
}

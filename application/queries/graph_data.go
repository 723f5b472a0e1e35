package queries

import "errors"

// GetGraphDataQuery fetches the visualization payload for a circle
type GetGraphDataQuery struct {
	CelebrityID string
}

// Validate validates the GetGraphDataQuery
func (q GetGraphDataQuery) Validate() error {
	if q.CelebrityID == "" {
		return errors.New("celebrity ID is required")
	}
	return nil
}

// VisColor styles one rendered node
type VisColor struct {
	Background string `json:"background"`
	Border     string `json:"border"`
}

// VisFont styles one rendered label
type VisFont struct {
	Size int  `json:"size"`
	Bold bool `json:"bold"`
}

// VisNode is one node in the vis.js payload. The celebrity root uses the
// fixed id "celebrity" so the frontend can anchor the layout on it.
type VisNode struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Group       string   `json:"group"`
	Title       string   `json:"title,omitempty"`
	Size        int      `json:"size"`
	Color       VisColor `json:"color"`
	Font        *VisFont `json:"font,omitempty"`
	HopDistance int      `json:"hop_distance,omitempty"`
	WarmScore   int      `json:"warm_score,omitempty"`
	WhyWarm     string   `json:"why_warm,omitempty"`
	ContactInfo string   `json:"contact_info,omitempty"`
}

// VisEdge is one edge in the vis.js payload, drawn toward the root
type VisEdge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Label  string `json:"label"`
	Width  int    `json:"width"`
	Dashes bool   `json:"dashes"`
}

// GraphStats summarizes the snapshot behind the payload
type GraphStats struct {
	NodeCount   int `json:"node_count"`
	EdgeCount   int `json:"edge_count"`
	PrunedCount int `json:"pruned_count"`
	Version     int `json:"version"`
}

// GetGraphDataResult is the full dashboard payload: the rendered graph
// plus the warmest nodes for the side list
type GetGraphDataResult struct {
	CelebrityID string     `json:"celebrity_id"`
	Nodes       []VisNode  `json:"nodes"`
	Edges       []VisEdge  `json:"edges"`
	TopNodes    []NodeView `json:"top_nodes"`
	Stats       GraphStats `json:"stats"`
}

package queries

import "errors"

// ListOutreachQuery lists outreach history for a celebrity, newest first
type ListOutreachQuery struct {
	CelebrityID string
}

// Validate validates the ListOutreachQuery
func (q ListOutreachQuery) Validate() error {
	if q.CelebrityID == "" {
		return errors.New("celebrity ID is required")
	}
	return nil
}

// OutreachView is one outreach record with the recipient snapshot taken
// at draft time
type OutreachView struct {
	ID          string `json:"id"`
	CelebrityID string `json:"celebrity_id"`
	NodeID      string `json:"node_id"`
	Recipient   string `json:"person_name"`
	ContactInfo string `json:"contact_info,omitempty"`
	Subject     string `json:"subject_line"`
	Message     string `json:"message_text"`
	ValueProp   string `json:"value_proposition,omitempty"`
	Hop         string `json:"hop"`
	Status      string `json:"status"`
	WordCount   int    `json:"word_count"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ListOutreachResult represents the outreach history for one celebrity
type ListOutreachResult struct {
	CelebrityID string         `json:"celebrity_id"`
	Messages    []OutreachView `json:"messages"`
	Count       int            `json:"count"`
}

// OutreachStatsQuery requests the dashboard outreach rollup
type OutreachStatsQuery struct{}

// Validate validates the OutreachStatsQuery
func (q OutreachStatsQuery) Validate() error {
	return nil
}

// OutreachStatsResult represents outreach counts by status with the
// reply rate over sent messages
type OutreachStatsResult struct {
	Draft            int     `json:"draft"`
	Sent             int     `json:"sent"`
	Replied          int     `json:"replied"`
	Total            int     `json:"total"`
	ReplyRatePercent float64 `json:"reply_rate_percent"`
}

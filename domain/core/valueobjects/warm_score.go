package valueobjects

import "fmt"

// Signal names in the order contributions are reported
const (
	SignalProximity      = "proximity"
	SignalRelationship   = "relationship"
	SignalContactability = "contactability"
	SignalRecency        = "recency"
)

// SignalContribution records how one normalized signal contributed to a
// warm score.
type SignalContribution struct {
	Name     string  `json:"name"`
	Value    float64 `json:"value"`    // normalized signal in [0, 1]
	Weight   float64 `json:"weight"`   // configured weight
	Weighted float64 `json:"weighted"` // Value * Weight
}

// WarmScore is a value object holding a person's 0-100 reachability score
// together with the ordered signal contributions that produced it. Scores
// are derived values: never mutated, always recomputed from a snapshot.
type WarmScore struct {
	value         int
	contributions []SignalContribution
	uncontactable bool
}

// NewWarmScore creates a warm score, rejecting out-of-range values
func NewWarmScore(value int, contributions []SignalContribution) (WarmScore, error) {
	if value < 0 || value > 100 {
		return WarmScore{}, fmt.Errorf("warm score must be in [0, 100], got %d", value)
	}
	copied := make([]SignalContribution, len(contributions))
	copy(copied, contributions)
	return WarmScore{value: value, contributions: copied}, nil
}

// WithUncontactable returns a copy flagged as unreachable by any channel
func (s WarmScore) WithUncontactable() WarmScore {
	s.uncontactable = true
	return s
}

// Value returns the score in [0, 100]
func (s WarmScore) Value() int {
	return s.value
}

// Contributions returns the ordered signal contributions
func (s WarmScore) Contributions() []SignalContribution {
	copied := make([]SignalContribution, len(s.contributions))
	copy(copied, s.contributions)
	return copied
}

// Contribution returns the contribution of a named signal, if present
func (s WarmScore) Contribution(name string) (SignalContribution, bool) {
	for _, c := range s.contributions {
		if c.Name == name {
			return c, true
		}
	}
	return SignalContribution{}, false
}

// IsUncontactable reports whether the person has no contact channel at all
func (s WarmScore) IsUncontactable() bool {
	return s.uncontactable
}

// Normalized returns the score scaled to [0, 1], used when composing
// multi-hop path scores.
func (s WarmScore) Normalized() float64 {
	return float64(s.value) / 100.0
}

package valueobjects

import "time"

// RawSignals carries the unnormalized observations about a person that feed
// warmth scoring. Absent observations stay at their zero value and score as
// worst case; they never fail construction.
type RawSignals struct {
	relationshipStrength int // 0-100, how strong the tie to the celebrity is
	mutualConnections    int
	interactionFrequency int // public interactions observed per year
	lastActivity         time.Time
}

// NewRawSignals creates signals with out-of-range values clamped
func NewRawSignals(relationshipStrength, mutualConnections, interactionFrequency int, lastActivity time.Time) RawSignals {
	return RawSignals{
		relationshipStrength: clampInt(relationshipStrength, 0, 100),
		mutualConnections:    maxInt(mutualConnections, 0),
		interactionFrequency: maxInt(interactionFrequency, 0),
		lastActivity:         lastActivity,
	}
}

// RelationshipStrength returns the raw tie strength in [0, 100]
func (s RawSignals) RelationshipStrength() int {
	return s.relationshipStrength
}

// MutualConnections returns the observed shared-connection count
func (s RawSignals) MutualConnections() int {
	return s.mutualConnections
}

// InteractionFrequency returns observed public interactions per year
func (s RawSignals) InteractionFrequency() int {
	return s.interactionFrequency
}

// LastActivity returns the most recent public activity timestamp; the zero
// time means no activity was ever observed.
func (s RawSignals) LastActivity() time.Time {
	return s.lastActivity
}

// HasActivity reports whether any public activity was observed
func (s RawSignals) HasActivity() bool {
	return !s.lastActivity.IsZero()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package valueobjects

import (
	"strings"

	"accessengine-backend/pkg/errors"
)

// OutreachStatus tracks an outreach record through its lifecycle
type OutreachStatus string

const (
	OutreachDraft   OutreachStatus = "draft"
	OutreachSent    OutreachStatus = "sent"
	OutreachReplied OutreachStatus = "replied"
)

// AllOutreachStatuses lists the lifecycle states in order
func AllOutreachStatuses() []OutreachStatus {
	return []OutreachStatus{OutreachDraft, OutreachSent, OutreachReplied}
}

// ParseOutreachStatus parses and normalizes a status string
func ParseOutreachStatus(s string) (OutreachStatus, error) {
	status := OutreachStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", errors.ErrInvalidOutreachStatus.Clone().WithDetail("status", s)
	}
	return status, nil
}

// IsValid reports whether the status is a known lifecycle state
func (s OutreachStatus) IsValid() bool {
	switch s {
	case OutreachDraft, OutreachSent, OutreachReplied:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
// The lifecycle only moves forward: draft to sent, sent to replied.
func (s OutreachStatus) CanTransitionTo(next OutreachStatus) bool {
	switch s {
	case OutreachDraft:
		return next == OutreachSent
	case OutreachSent:
		return next == OutreachReplied
	}
	return false
}

// String returns the string representation
func (s OutreachStatus) String() string {
	return string(s)
}

// HopLabel names how many introductions an outreach path needs
type HopLabel string

const (
	HopFirst  HopLabel = "first"
	HopSecond HopLabel = "second"
	HopThird  HopLabel = "third"
)

// HopLabelForDistance maps a chain length to its label. Anything past
// three introductions is out of selection range and labeled third.
func HopLabelForDistance(hops int) HopLabel {
	switch {
	case hops <= 1:
		return HopFirst
	case hops == 2:
		return HopSecond
	default:
		return HopThird
	}
}

// String returns the string representation
func (l HopLabel) String() string {
	return string(l)
}

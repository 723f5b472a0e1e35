package entities

import (
	"strings"
	"time"

	"accessengine-backend/domain/config"
	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/domain/events"
	pkgerrors "accessengine-backend/pkg/errors"
)

// Outreach is the entity for one generated outreach draft. The recipient's
// name and channel are denormalized at draft time so the record stays
// readable even after the circle is rebuilt and the node disappears.
type Outreach struct {
	id            valueobjects.OutreachID
	celebrityID   valueobjects.CelebrityID
	nodeID        valueobjects.NodeID
	recipientName string
	channel       valueobjects.ContactChannel
	subject       string
	body          string
	valueProp     string
	hopLabel      valueobjects.HopLabel
	status        valueobjects.OutreachStatus
	createdAt     time.Time
	updatedAt     time.Time
	version       int

	events []events.DomainEvent
}

// NewOutreach creates a new outreach draft with full business rule validation
func NewOutreach(
	celebrityID valueobjects.CelebrityID,
	nodeID valueobjects.NodeID,
	recipientName string,
	channel valueobjects.ContactChannel,
	subject string,
	body string,
	valueProp string,
	hopLabel valueobjects.HopLabel,
) (*Outreach, error) {
	return NewOutreachWithConfig(celebrityID, nodeID, recipientName, channel, subject, body, valueProp, hopLabel, config.DefaultDomainConfig())
}

// NewOutreachWithConfig creates a new outreach draft with validation and configuration
func NewOutreachWithConfig(
	celebrityID valueobjects.CelebrityID,
	nodeID valueobjects.NodeID,
	recipientName string,
	channel valueobjects.ContactChannel,
	subject string,
	body string,
	valueProp string,
	hopLabel valueobjects.HopLabel,
	cfg *config.DomainConfig,
) (*Outreach, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	if celebrityID.IsZero() {
		return nil, pkgerrors.NewValidationError("celebrityID cannot be empty")
	}
	if nodeID.IsZero() {
		return nil, pkgerrors.NewValidationError("nodeID cannot be empty")
	}

	recipientName = strings.TrimSpace(recipientName)
	if recipientName == "" {
		return nil, pkgerrors.ErrPersonNameRequired
	}
	if channel.IsZero() {
		return nil, pkgerrors.ErrChannelHandleRequired
	}

	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, pkgerrors.NewValidationError("subject cannot be empty")
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, pkgerrors.NewValidationError("body cannot be empty")
	}

	now := time.Now()
	outreach := &Outreach{
		id:            valueobjects.NewOutreachID(),
		celebrityID:   celebrityID,
		nodeID:        nodeID,
		recipientName: recipientName,
		channel:       channel,
		subject:       subject,
		body:          body,
		valueProp:     strings.TrimSpace(valueProp),
		hopLabel:      hopLabel,
		status:        valueobjects.OutreachDraft,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		events:        []events.DomainEvent{},
	}

	outreach.addEvent(events.NewOutreachDrafted(
		outreach.id.String(),
		celebrityID,
		nodeID,
		subject,
		outreach.WordCount(),
		now,
	))

	return outreach, nil
}

// ReconstructOutreach reconstructs an outreach record from repository data
// with preserved identity, status, and timestamps
func ReconstructOutreach(
	id valueobjects.OutreachID,
	celebrityID valueobjects.CelebrityID,
	nodeID valueobjects.NodeID,
	recipientName string,
	channel valueobjects.ContactChannel,
	subject string,
	body string,
	valueProp string,
	hopLabel valueobjects.HopLabel,
	status valueobjects.OutreachStatus,
	createdAt, updatedAt time.Time,
) (*Outreach, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("outreach ID cannot be empty")
	}
	if celebrityID.IsZero() {
		return nil, pkgerrors.NewValidationError("celebrityID cannot be empty")
	}
	if !status.IsValid() {
		return nil, pkgerrors.ErrInvalidOutreachStatus.Clone().WithDetail("status", status.String())
	}

	return &Outreach{
		id:            id,
		celebrityID:   celebrityID,
		nodeID:        nodeID,
		recipientName: strings.TrimSpace(recipientName),
		channel:       channel,
		subject:       subject,
		body:          body,
		valueProp:     strings.TrimSpace(valueProp),
		hopLabel:      hopLabel,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       1,
		events:        []events.DomainEvent{},
	}, nil
}

// ID returns the outreach record's unique identifier
func (o *Outreach) ID() valueobjects.OutreachID {
	return o.id
}

// CelebrityID returns the circle this outreach belongs to
func (o *Outreach) CelebrityID() valueobjects.CelebrityID {
	return o.celebrityID
}

// NodeID returns the circle member the draft addresses
func (o *Outreach) NodeID() valueobjects.NodeID {
	return o.nodeID
}

// RecipientName returns the recipient's name as captured at draft time
func (o *Outreach) RecipientName() string {
	return o.recipientName
}

// Channel returns the contact channel captured at draft time
func (o *Outreach) Channel() valueobjects.ContactChannel {
	return o.channel
}

// Subject returns the draft's subject line
func (o *Outreach) Subject() string {
	return o.subject
}

// Body returns the draft's message body
func (o *Outreach) Body() string {
	return o.body
}

// ValueProp returns the leverage value proposition attached to the draft,
// empty when the draft was generated without a leverage pass
func (o *Outreach) ValueProp() string {
	return o.valueProp
}

// HopLabel returns how far from the celebrity the recipient sits
func (o *Outreach) HopLabel() valueobjects.HopLabel {
	return o.hopLabel
}

// Status returns the outreach lifecycle status
func (o *Outreach) Status() valueobjects.OutreachStatus {
	return o.status
}

// Version returns the record's version for optimistic locking
func (o *Outreach) Version() int {
	return o.version
}

// WordCount returns the number of words in the draft body
func (o *Outreach) WordCount() int {
	return len(strings.Fields(o.body))
}

// IsReplied reports whether the outreach reached the replied state
func (o *Outreach) IsReplied() bool {
	return o.status == valueobjects.OutreachReplied
}

// MarkSent transitions the draft to sent
func (o *Outreach) MarkSent() error {
	return o.transition(valueobjects.OutreachSent)
}

// MarkReplied transitions a sent outreach to replied
func (o *Outreach) MarkReplied() error {
	return o.transition(valueobjects.OutreachReplied)
}

// transition enforces the forward-only lifecycle and records the change
func (o *Outreach) transition(target valueobjects.OutreachStatus) error {
	if !o.status.CanTransitionTo(target) {
		return pkgerrors.ErrInvalidStatusTransition.Clone().
			WithDetail("from", o.status.String()).
			WithDetail("to", target.String())
	}

	old := o.status
	o.status = target
	o.updatedAt = time.Now()
	o.version++

	o.addEvent(events.NewOutreachStatusChanged(
		o.id.String(),
		o.celebrityID,
		old.String(),
		target.String(),
		o.updatedAt,
	))

	return nil
}

// CreatedAt returns when the draft was created
func (o *Outreach) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the record was last updated
func (o *Outreach) UpdatedAt() time.Time {
	return o.updatedAt
}

// GetUncommittedEvents returns all uncommitted domain events
func (o *Outreach) GetUncommittedEvents() []events.DomainEvent {
	return o.events
}

// MarkEventsAsCommitted clears the uncommitted events
func (o *Outreach) MarkEventsAsCommitted() {
	o.events = []events.DomainEvent{}
}

// addEvent adds a domain event to the uncommitted list
func (o *Outreach) addEvent(event events.DomainEvent) {
	o.events = append(o.events, event)
}

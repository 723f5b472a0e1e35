package entities

import (
	"fmt"
	"strings"
	"time"

	"accessengine-backend/domain/config"
	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/domain/events"
	pkgerrors "accessengine-backend/pkg/errors"
)

// Person is the entity for one member of a celebrity's circle.
// This is a rich domain model with encapsulated business logic.
type Person struct {
	// Private fields ensure encapsulation
	id          valueobjects.NodeID
	celebrityID valueobjects.CelebrityID
	name        string
	tag         valueobjects.RelationshipTag
	profile     valueobjects.PersonProfile
	channels    []valueobjects.ContactChannel
	signals     valueobjects.RawSignals
	createdAt   time.Time
	updatedAt   time.Time
	version     int

	// Domain events that occurred during this entity's lifetime
	events []events.DomainEvent
}

// NewPerson creates a new person with full business rule validation
func NewPerson(
	celebrityID valueobjects.CelebrityID,
	name string,
	tag valueobjects.RelationshipTag,
	profile valueobjects.PersonProfile,
	channels []valueobjects.ContactChannel,
	signals valueobjects.RawSignals,
) (*Person, error) {
	return NewPersonWithConfig(celebrityID, name, tag, profile, channels, signals, config.DefaultDomainConfig())
}

// NewPersonWithConfig creates a new person with validation and configuration
func NewPersonWithConfig(
	celebrityID valueobjects.CelebrityID,
	name string,
	tag valueobjects.RelationshipTag,
	profile valueobjects.PersonProfile,
	channels []valueobjects.ContactChannel,
	signals valueobjects.RawSignals,
	cfg *config.DomainConfig,
) (*Person, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	if celebrityID.IsZero() {
		return nil, pkgerrors.NewValidationError("celebrityID cannot be empty")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.ErrPersonNameRequired
	}
	if len(name) > cfg.MaxNameLength {
		return nil, fmt.Errorf("name exceeds maximum length of %d characters", cfg.MaxNameLength)
	}

	if !tag.IsValid() {
		return nil, pkgerrors.ErrUnknownRelationshipTag.Clone().WithDetail("tag", string(tag))
	}

	if len(channels) > cfg.MaxChannelsPerPerson {
		return nil, fmt.Errorf("maximum contact channels reached: %d", cfg.MaxChannelsPerPerson)
	}

	now := time.Now()
	person := &Person{
		id:          valueobjects.NewNodeID(),
		celebrityID: celebrityID,
		name:        name,
		tag:         tag,
		profile:     profile,
		channels:    dedupeChannels(channels),
		signals:     signals,
		createdAt:   now,
		updatedAt:   now,
		version:     1,
		events:      []events.DomainEvent{},
	}

	person.addEvent(events.NewPersonAdded(person.id, celebrityID, name, tag.String(), now))

	return person, nil
}

// ReconstructPerson reconstructs a person from repository data with
// preserved identity and timestamps
func ReconstructPerson(
	id valueobjects.NodeID,
	celebrityID valueobjects.CelebrityID,
	name string,
	tag valueobjects.RelationshipTag,
	profile valueobjects.PersonProfile,
	channels []valueobjects.ContactChannel,
	signals valueobjects.RawSignals,
	createdAt, updatedAt time.Time,
) (*Person, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("person ID cannot be empty")
	}
	if celebrityID.IsZero() {
		return nil, pkgerrors.NewValidationError("celebrityID cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.ErrPersonNameRequired
	}
	if !tag.IsValid() {
		return nil, pkgerrors.ErrUnknownRelationshipTag.Clone().WithDetail("tag", string(tag))
	}

	return &Person{
		id:          id,
		celebrityID: celebrityID,
		name:        name,
		tag:         tag,
		profile:     profile,
		channels:    dedupeChannels(channels),
		signals:     signals,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		version:     1,
		events:      []events.DomainEvent{},
	}, nil
}

// ID returns the person's unique identifier
func (p *Person) ID() valueobjects.NodeID {
	return p.id
}

// CelebrityID returns the circle this person belongs to
func (p *Person) CelebrityID() valueobjects.CelebrityID {
	return p.celebrityID
}

// Name returns the person's display name
func (p *Person) Name() string {
	return p.name
}

// Tag returns the relationship tag
func (p *Person) Tag() valueobjects.RelationshipTag {
	return p.tag
}

// Profile returns the person's descriptive profile
func (p *Person) Profile() valueobjects.PersonProfile {
	return p.profile
}

// Signals returns the raw scoring signals
func (p *Person) Signals() valueobjects.RawSignals {
	return p.signals
}

// Version returns the person's version for optimistic locking
func (p *Person) Version() int {
	return p.version
}

// Channels returns the ordered contact channels
func (p *Person) Channels() []valueobjects.ContactChannel {
	// Return a copy to maintain encapsulation
	channels := make([]valueobjects.ContactChannel, len(p.channels))
	copy(channels, p.channels)
	return channels
}

// IsContactable reports whether the person has at least one contact channel.
// People without channels stay in the graph and get scored, but never
// terminate a selected path.
func (p *Person) IsContactable() bool {
	return len(p.channels) > 0
}

// HasPublicChannel reports whether any channel is publicly visible
func (p *Person) HasPublicChannel() bool {
	for _, c := range p.channels {
		if c.IsPublic() {
			return true
		}
	}
	return false
}

// PreferredChannel returns the first contact channel, which is the
// preferred one by submission order
func (p *Person) PreferredChannel() (valueobjects.ContactChannel, bool) {
	if len(p.channels) == 0 {
		return valueobjects.ContactChannel{}, false
	}
	return p.channels[0], true
}

// AddChannel appends a contact channel, ignoring exact duplicates
func (p *Person) AddChannel(channel valueobjects.ContactChannel) error {
	return p.AddChannelWithConfig(channel, config.DefaultDomainConfig())
}

// AddChannelWithConfig appends a contact channel with configuration
func (p *Person) AddChannelWithConfig(channel valueobjects.ContactChannel, cfg *config.DomainConfig) error {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	if channel.IsZero() {
		return pkgerrors.ErrChannelHandleRequired
	}

	for _, existing := range p.channels {
		if existing.Equals(channel) {
			return nil // Channel already present
		}
	}

	if len(p.channels) >= cfg.MaxChannelsPerPerson {
		return fmt.Errorf("maximum contact channels reached: %d", cfg.MaxChannelsPerPerson)
	}

	p.channels = append(p.channels, channel)
	p.updatedAt = time.Now()

	return nil
}

// UpdateSignals replaces the raw scoring signals
func (p *Person) UpdateSignals(signals valueobjects.RawSignals) {
	p.signals = signals
	p.updatedAt = time.Now()
	p.version++
}

// Keywords extracts significant words from the person's descriptive text,
// used to match querent context against circle members
func (p *Person) Keywords() []string {
	return extractKeywords(p.name + " " + p.profile.Role() + " " + p.profile.Rationale() + " " + p.tag.String())
}

// CreatedAt returns when the person was created
func (p *Person) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the person was last updated
func (p *Person) UpdatedAt() time.Time {
	return p.updatedAt
}

// GetUncommittedEvents returns all uncommitted domain events
func (p *Person) GetUncommittedEvents() []events.DomainEvent {
	return p.events
}

// MarkEventsAsCommitted clears the uncommitted events
func (p *Person) MarkEventsAsCommitted() {
	p.events = []events.DomainEvent{}
}

// addEvent adds a domain event to the uncommitted list
func (p *Person) addEvent(event events.DomainEvent) {
	p.events = append(p.events, event)
}

// dedupeChannels drops exact duplicates while preserving submission order
func dedupeChannels(channels []valueobjects.ContactChannel) []valueobjects.ContactChannel {
	result := make([]valueobjects.ContactChannel, 0, len(channels))
	for _, c := range channels {
		duplicate := false
		for _, kept := range result {
			if kept.Equals(c) {
				duplicate = true
				break
			}
		}
		if !duplicate && !c.IsZero() {
			result = append(result, c)
		}
	}
	return result
}

// extractKeywords extracts significant words from text for context matching
func extractKeywords(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	keywords := []string{}

	stopWords := map[string]bool{
		"the": true, "a": true, "an": true, "and": true, "or": true,
		"but": true, "in": true, "on": true, "at": true, "to": true,
		"for": true, "of": true, "with": true, "is": true, "are": true,
		"was": true, "were": true, "be": true, "been": true, "being": true,
		"have": true, "has": true, "had": true, "do": true, "does": true,
		"did": true, "will": true, "would": true, "could": true, "should": true,
	}

	seen := make(map[string]bool)
	for _, word := range words {
		// Clean punctuation
		word = strings.Trim(word, ".,!?;:\"'()[]{}")

		// Skip short words, stop words, and duplicates
		if len(word) > 3 && !stopWords[word] && !seen[word] {
			keywords = append(keywords, word)
			seen[word] = true
		}
	}

	return keywords
}

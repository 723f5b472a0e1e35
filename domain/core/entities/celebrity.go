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

// Celebrity is the entity for a seeded public figure. It owns the identity
// of its circle members; the circle's structure lives in the CircleGraph
// aggregate built from raw records.
type Celebrity struct {
	id            valueobjects.CelebrityID
	name          string
	category      valueobjects.Category
	bio           string
	primaryHandle string
	knownManager  string
	nodeIDs       []valueobjects.NodeID
	accessScore   int
	createdAt     time.Time
	updatedAt     time.Time
	version       int

	events []events.DomainEvent
}

// NewCelebrity creates a new celebrity with validation
func NewCelebrity(name string, category valueobjects.Category, bio, primaryHandle, knownManager string) (*Celebrity, error) {
	return NewCelebrityWithConfig(name, category, bio, primaryHandle, knownManager, config.DefaultDomainConfig())
}

// NewCelebrityWithConfig creates a new celebrity with validation and configuration
func NewCelebrityWithConfig(name string, category valueobjects.Category, bio, primaryHandle, knownManager string, cfg *config.DomainConfig) (*Celebrity, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.ErrCelebrityNameRequired
	}
	if len(name) > cfg.MaxNameLength {
		return nil, fmt.Errorf("name exceeds maximum length of %d characters", cfg.MaxNameLength)
	}

	if !category.IsValid() {
		return nil, pkgerrors.ErrUnknownCategory.Clone().WithDetail("category", string(category))
	}

	now := time.Now()
	return &Celebrity{
		id:            valueobjects.NewCelebrityID(),
		name:          name,
		category:      category,
		bio:           strings.TrimSpace(bio),
		primaryHandle: strings.TrimSpace(primaryHandle),
		knownManager:  strings.TrimSpace(knownManager),
		nodeIDs:       []valueobjects.NodeID{},
		accessScore:   cfg.AccessDefault,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		events:        []events.DomainEvent{},
	}, nil
}

// ReconstructCelebrity reconstructs a celebrity from repository data
func ReconstructCelebrity(
	id valueobjects.CelebrityID,
	name string,
	category valueobjects.Category,
	bio, primaryHandle, knownManager string,
	nodeIDs []valueobjects.NodeID,
	accessScore int,
	createdAt, updatedAt time.Time,
) (*Celebrity, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("celebrity ID cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.ErrCelebrityNameRequired
	}
	if !category.IsValid() {
		return nil, pkgerrors.ErrUnknownCategory.Clone().WithDetail("category", string(category))
	}
	if accessScore < 0 || accessScore > 100 {
		return nil, pkgerrors.NewValidationError("access score must be in [0, 100]")
	}

	ids := make([]valueobjects.NodeID, len(nodeIDs))
	copy(ids, nodeIDs)

	return &Celebrity{
		id:            id,
		name:          name,
		category:      category,
		bio:           bio,
		primaryHandle: primaryHandle,
		knownManager:  knownManager,
		nodeIDs:       ids,
		accessScore:   accessScore,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       1,
		events:        []events.DomainEvent{},
	}, nil
}

// ID returns the celebrity's unique identifier
func (c *Celebrity) ID() valueobjects.CelebrityID {
	return c.id
}

// Name returns the celebrity's display name
func (c *Celebrity) Name() string {
	return c.name
}

// Category returns the celebrity's category
func (c *Celebrity) Category() valueobjects.Category {
	return c.category
}

// Bio returns the celebrity's short biography
func (c *Celebrity) Bio() string {
	return c.bio
}

// PrimaryHandle returns the celebrity's main public handle, if known
func (c *Celebrity) PrimaryHandle() string {
	return c.primaryHandle
}

// KnownManager returns the name of the celebrity's manager, if known
func (c *Celebrity) KnownManager() string {
	return c.knownManager
}

// AccessScore returns the composite reachability score
func (c *Celebrity) AccessScore() int {
	return c.accessScore
}

// NodeIDs returns the ids of circle members
func (c *Celebrity) NodeIDs() []valueobjects.NodeID {
	ids := make([]valueobjects.NodeID, len(c.nodeIDs))
	copy(ids, c.nodeIDs)
	return ids
}

// NodeCount returns the number of circle members
func (c *Celebrity) NodeCount() int {
	return len(c.nodeIDs)
}

// AttachNode records a circle member, ignoring duplicates
func (c *Celebrity) AttachNode(nodeID valueobjects.NodeID) {
	for _, existing := range c.nodeIDs {
		if existing.Equals(nodeID) {
			return
		}
	}
	c.nodeIDs = append(c.nodeIDs, nodeID)
	c.updatedAt = time.Now()
}

// DetachNode removes a circle member
func (c *Celebrity) DetachNode(nodeID valueobjects.NodeID) error {
	kept := make([]valueobjects.NodeID, 0, len(c.nodeIDs))
	found := false
	for _, existing := range c.nodeIDs {
		if existing.Equals(nodeID) {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return pkgerrors.ErrPersonNotFound.Clone().WithDetail("node_id", nodeID.String())
	}
	c.nodeIDs = kept
	c.updatedAt = time.Now()
	return nil
}

// SetAccessScore updates the composite access score after a rebuild
func (c *Celebrity) SetAccessScore(score int) error {
	if score < 0 || score > 100 {
		return pkgerrors.NewValidationError("access score must be in [0, 100]")
	}
	if score == c.accessScore {
		return nil
	}

	old := c.accessScore
	c.accessScore = score
	c.updatedAt = time.Now()
	c.version++

	c.addEvent(events.NewAccessScoreUpdated(c.id, old, score, c.updatedAt))

	return nil
}

// MatchesQuery reports whether the celebrity name contains the query,
// case-insensitively. Fuzzy matching happens one level up in the facade.
func (c *Celebrity) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	return strings.Contains(strings.ToLower(c.name), q)
}

// CreatedAt returns when the celebrity was created
func (c *Celebrity) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns when the celebrity was last updated
func (c *Celebrity) UpdatedAt() time.Time {
	return c.updatedAt
}

// GetUncommittedEvents returns all uncommitted domain events
func (c *Celebrity) GetUncommittedEvents() []events.DomainEvent {
	return c.events
}

// MarkEventsAsCommitted clears the uncommitted events
func (c *Celebrity) MarkEventsAsCommitted() {
	c.events = []events.DomainEvent{}
}

// addEvent adds a domain event to the uncommitted list
func (c *Celebrity) addEvent(event events.DomainEvent) {
	c.events = append(c.events, event)
}

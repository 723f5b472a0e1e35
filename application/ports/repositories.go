package ports

import (
	"context"
	"time"

	"accessengine-backend/domain/config"
	"accessengine-backend/domain/core/aggregates"
	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/domain/events"
	"accessengine-backend/domain/versioning"
)

// CelebrityRepository defines the interface for celebrity persistence
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type CelebrityRepository interface {
	// Save persists a celebrity (create or update)
	Save(ctx context.Context, celebrity *entities.Celebrity) error

	// GetByID retrieves a celebrity by its ID
	GetByID(ctx context.Context, id valueobjects.CelebrityID) (*entities.Celebrity, error)

	// GetAll retrieves the full roster
	GetAll(ctx context.Context) ([]*entities.Celebrity, error)

	// Search finds celebrities matching the given criteria
	Search(ctx context.Context, criteria CelebritySearchCriteria) ([]*entities.Celebrity, error)

	// Delete removes a celebrity
	Delete(ctx context.Context, id valueobjects.CelebrityID) error

	// BulkSave saves multiple celebrities in one batch, used by seeding
	BulkSave(ctx context.Context, celebrities []*entities.Celebrity) error
}

// PersonRepository defines the interface for circle member persistence
type PersonRepository interface {
	// Save persists a person (create or update)
	Save(ctx context.Context, person *entities.Person) error

	// GetByID retrieves one member of a celebrity's circle
	GetByID(ctx context.Context, celebrityID valueobjects.CelebrityID, id valueobjects.NodeID) (*entities.Person, error)

	// GetByCelebrityID retrieves every member of a celebrity's circle
	GetByCelebrityID(ctx context.Context, celebrityID valueobjects.CelebrityID) ([]*entities.Person, error)

	// Delete removes a member from a celebrity's circle
	Delete(ctx context.Context, celebrityID valueobjects.CelebrityID, id valueobjects.NodeID) error

	// BulkSave saves multiple people in one batch, used by seeding
	BulkSave(ctx context.Context, people []*entities.Person) error
}

// EdgeRecordRepository defines the interface for raw edge persistence.
// Edges are stored as submitted records; the aggregate resolves, merges,
// and prunes them at rebuild time.
type EdgeRecordRepository interface {
	// SaveBatch replaces or appends edge records for a celebrity
	SaveBatch(ctx context.Context, celebrityID valueobjects.CelebrityID, edges []aggregates.RawEdge) error

	// GetByCelebrityID retrieves all edge records for a celebrity
	GetByCelebrityID(ctx context.Context, celebrityID valueobjects.CelebrityID) ([]aggregates.RawEdge, error)

	// DeleteByCelebrityID removes all edge records for a celebrity
	DeleteByCelebrityID(ctx context.Context, celebrityID valueobjects.CelebrityID) error
}

// Snapshot bundles everything one rebuild derives for a celebrity: the
// immutable graph, the per-node warm scores, and the version stamp.
type Snapshot struct {
	Graph   *aggregates.CircleGraph
	Scores  map[valueobjects.NodeID]valueobjects.WarmScore
	Version *versioning.SnapshotVersion
}

// SnapshotRepository is the live snapshot registry that serves all reads.
// Implementations must swap atomically so queries never observe a
// half-built circle.
type SnapshotRepository interface {
	// Get retrieves the current snapshot for a celebrity
	Get(ctx context.Context, celebrityID valueobjects.CelebrityID) (*Snapshot, bool)

	// Swap replaces the current snapshot in one atomic step
	Swap(ctx context.Context, snapshot *Snapshot) error

	// Delete removes the snapshot for a celebrity
	Delete(ctx context.Context, celebrityID valueobjects.CelebrityID) error

	// CelebrityIDs lists all celebrities with a live snapshot
	CelebrityIDs(ctx context.Context) ([]valueobjects.CelebrityID, error)
}

// SnapshotVersionRepository keeps the rebuild version history
type SnapshotVersionRepository interface {
	// SaveVersion appends a version stamp to the history
	SaveVersion(ctx context.Context, version *versioning.SnapshotVersion) error

	// GetLatest retrieves the most recent version stamp for a celebrity,
	// nil without error when no history exists
	GetLatest(ctx context.Context, celebrityID valueobjects.CelebrityID) (*versioning.SnapshotVersion, error)

	// GetHistory retrieves version stamps newest first, up to limit
	GetHistory(ctx context.Context, celebrityID valueobjects.CelebrityID, limit int) ([]*versioning.SnapshotVersion, error)

	// Prune drops history beyond the retention policy, returning the count removed
	Prune(ctx context.Context, celebrityID valueobjects.CelebrityID, policy versioning.RetentionPolicy) (int, error)
}

// OutreachRepository defines the interface for outreach draft persistence
type OutreachRepository interface {
	// Save persists an outreach record (create or update)
	Save(ctx context.Context, outreach *entities.Outreach) error

	// GetByID retrieves an outreach record by its ID
	GetByID(ctx context.Context, id valueobjects.OutreachID) (*entities.Outreach, error)

	// GetByCelebrityID retrieves all outreach records for a celebrity, newest first
	GetByCelebrityID(ctx context.Context, celebrityID valueobjects.CelebrityID) ([]*entities.Outreach, error)

	// GetAll retrieves every outreach record, used by the stats rollup
	GetAll(ctx context.Context) ([]*entities.Outreach, error)

	// Delete removes an outreach record, used by saga compensation
	Delete(ctx context.Context, id valueobjects.OutreachID) error
}

// EventStore defines the interface for event persistence
type EventStore interface {
	// SaveEvents persists domain events
	SaveEvents(ctx context.Context, events []events.DomainEvent) error

	// GetEvents retrieves events for an aggregate
	GetEvents(ctx context.Context, aggregateID string) ([]events.DomainEvent, error)

	// GetEventsByType retrieves events of a specific type
	GetEventsByType(ctx context.Context, eventType string, limit int) ([]events.DomainEvent, error)

	// DeleteEvents removes all events for an aggregate
	DeleteEvents(ctx context.Context, aggregateID string) error
}

// CelebritySearchCriteria defines roster search parameters
type CelebritySearchCriteria struct {
	Query     string
	Category  string
	Limit     int
	Offset    int
	OrderBy   string
	OrderDesc bool
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// Publish sends a single event
	Publish(ctx context.Context, event events.DomainEvent) error

	// PublishBatch sends multiple events
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}

// EventBus defines the interface for publishing domain events
type EventBus interface {
	EventPublisher

	// Subscribe registers a handler for an event type
	Subscribe(eventType string, handler EventHandler) error

	// Unsubscribe removes a handler
	Unsubscribe(eventType string, handler EventHandler) error
}

// EventHandler defines the interface for handling domain events
type EventHandler interface {
	// Handle processes an event
	Handle(ctx context.Context, event events.DomainEvent) error

	// CanHandle checks if this handler can process the event
	CanHandle(eventType string) bool
}

// Cache defines the interface for caching
type Cache interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) (interface{}, bool)

	// Set stores a value in cache with TTL in seconds
	Set(ctx context.Context, key string, value interface{}, ttl int) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// Clear removes all values from cache
	Clear(ctx context.Context) error
}

// WeightsProvider supplies the scoring weight profile currently in effect.
// Implementations may hot-reload the profile from a watched file.
type WeightsProvider interface {
	// Current returns the active weight profile
	Current() config.ScoringWeights
}

// RebuildLock serializes snapshot rebuilds for one celebrity across
// processes. Implementations fail fast with ErrRebuildInFlight when
// another owner holds the lock.
type RebuildLock interface {
	// Acquire takes the rebuild lock for a celebrity
	Acquire(ctx context.Context, celebrityID valueobjects.CelebrityID, ttl time.Duration) (LockLease, error)
}

// LockLease is a held rebuild lock
type LockLease interface {
	// Release frees the lock
	Release(ctx context.Context) error

	// Extend pushes the expiry out for long rebuilds
	Extend(ctx context.Context, additional time.Duration) error
}

// Connection represents one registered dashboard WebSocket connection
type Connection struct {
	ConnectionID string    `json:"connection_id"`
	Topic        string    `json:"topic"`
	ConnectedAt  time.Time `json:"connected_at"`
}

// ConnectionRegistry stores live dashboard WebSocket connections
type ConnectionRegistry interface {
	// Register stores a new connection
	Register(ctx context.Context, conn Connection) error

	// Deregister removes a connection
	Deregister(ctx context.Context, connectionID string) error

	// ListByTopic retrieves all connections subscribed to a topic
	ListByTopic(ctx context.Context, topic string) ([]Connection, error)
}

// LiveNotifier pushes event payloads to registered dashboard connections
type LiveNotifier interface {
	// Notify sends a payload to one connection
	Notify(ctx context.Context, connectionID string, payload []byte) error
}

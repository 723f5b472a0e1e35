package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	pkgerrors "accessengine-backend/pkg/errors"
)

// PersonRepository implements ports.PersonRepository on the nodes table
type PersonRepository struct {
	client *supa.Client
	logger *zap.Logger
}

// NewPersonRepository creates a Supabase-backed person repository
func NewPersonRepository(client *supa.Client, logger *zap.Logger) *PersonRepository {
	return &PersonRepository{
		client: client,
		logger: logger,
	}
}

// personRow is one nodes table row. Contact channels live in a jsonb
// column rather than their own table; a member carries at most a
// handful and they are never queried on their own.
type personRow struct {
	ID                   string       `json:"id"`
	CelebrityID          string       `json:"celebrity_id"`
	PersonName           string       `json:"person_name"`
	RelationshipType     string       `json:"relationship_type"`
	Role                 string       `json:"role"`
	WhyWarm              string       `json:"why_warm"`
	Channels             []channelRow `json:"channels"`
	RelationshipStrength int          `json:"relationship_strength"`
	MutualConnections    int          `json:"mutual_connections"`
	InteractionFrequency int          `json:"interaction_frequency"`
	LastActivity         *time.Time   `json:"last_activity"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

// channelRow is the stored form of one contact channel
type channelRow struct {
	Type   string `json:"type"`
	Handle string `json:"handle"`
	Public bool   `json:"public"`
}

// Save persists a person (create or update)
func (r *PersonRepository) Save(ctx context.Context, person *entities.Person) error {
	_, _, err := r.client.From(tableNodes).
		Insert(personToRow(person), true, "id", "minimal", "").
		Execute()
	if err != nil {
		r.logger.Error("Failed to save person",
			zap.String("nodeId", person.ID().String()),
			zap.Error(err))
		return fmt.Errorf("failed to save person: %w", err)
	}
	return nil
}

// GetByID retrieves one member of a celebrity's circle
func (r *PersonRepository) GetByID(ctx context.Context, celebrityID valueobjects.CelebrityID, id valueobjects.NodeID) (*entities.Person, error) {
	data, _, err := r.client.From(tableNodes).
		Select("*", "", false).
		Eq("celebrity_id", celebrityID.String()).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	var rows []personRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode person: %w", err)
	}
	if len(rows) == 0 {
		return nil, pkgerrors.ErrPersonNotFound.Clone().WithDetail("node_id", id.String())
	}
	return rowToPerson(rows[0])
}

// GetByCelebrityID retrieves every member of a celebrity's circle,
// ordered by node ID so rebuild input is deterministic
func (r *PersonRepository) GetByCelebrityID(ctx context.Context, celebrityID valueobjects.CelebrityID) ([]*entities.Person, error) {
	data, _, err := r.client.From(tableNodes).
		Select("*", "", false).
		Eq("celebrity_id", celebrityID.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to query circle members: %w", err)
	}

	var rows []personRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode circle members: %w", err)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	people := make([]*entities.Person, 0, len(rows))
	for _, row := range rows {
		person, err := rowToPerson(row)
		if err != nil {
			r.logger.Warn("Skipping unreconstructable member",
				zap.String("nodeId", row.ID),
				zap.Error(err))
			continue
		}
		people = append(people, person)
	}
	return people, nil
}

// Delete removes a member from a celebrity's circle
func (r *PersonRepository) Delete(ctx context.Context, celebrityID valueobjects.CelebrityID, id valueobjects.NodeID) error {
	data, _, err := r.client.From(tableNodes).
		Delete("representation", "").
		Eq("celebrity_id", celebrityID.String()).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	var removed []personRow
	if err := json.Unmarshal(data, &removed); err != nil {
		return fmt.Errorf("failed to decode delete result: %w", err)
	}
	if len(removed) == 0 {
		return pkgerrors.ErrPersonNotFound.Clone().WithDetail("node_id", id.String())
	}
	return nil
}

// BulkSave saves multiple people in one batch, used by seeding
func (r *PersonRepository) BulkSave(ctx context.Context, people []*entities.Person) error {
	if len(people) == 0 {
		return nil
	}

	rows := make([]personRow, 0, len(people))
	for _, person := range people {
		rows = append(rows, personToRow(person))
	}
	_, _, err := r.client.From(tableNodes).
		Insert(rows, true, "id", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to bulk save people: %w", err)
	}
	return nil
}

func personToRow(person *entities.Person) personRow {
	channels := make([]channelRow, 0, len(person.Channels()))
	for _, channel := range person.Channels() {
		channels = append(channels, channelRow{
			Type:   string(channel.Type()),
			Handle: channel.Handle(),
			Public: channel.IsPublic(),
		})
	}

	signals := person.Signals()
	var lastActivity *time.Time
	if signals.HasActivity() {
		activity := signals.LastActivity()
		lastActivity = &activity
	}

	return personRow{
		ID:                   person.ID().String(),
		CelebrityID:          person.CelebrityID().String(),
		PersonName:           person.Name(),
		RelationshipType:     person.Tag().String(),
		Role:                 person.Profile().Role(),
		WhyWarm:              person.Profile().Rationale(),
		Channels:             channels,
		RelationshipStrength: signals.RelationshipStrength(),
		MutualConnections:    signals.MutualConnections(),
		InteractionFrequency: signals.InteractionFrequency(),
		LastActivity:         lastActivity,
		CreatedAt:            person.CreatedAt(),
		UpdatedAt:            person.UpdatedAt(),
	}
}

func rowToPerson(row personRow) (*entities.Person, error) {
	nodeID, err := valueobjects.NewNodeIDFromString(row.ID)
	if err != nil {
		return nil, fmt.Errorf("stored member has invalid node ID: %w", err)
	}
	celebrityID, err := valueobjects.NewCelebrityIDFromString(row.CelebrityID)
	if err != nil {
		return nil, fmt.Errorf("stored member has invalid celebrity ID: %w", err)
	}
	tag, err := valueobjects.ParseRelationshipTag(row.RelationshipType)
	if err != nil {
		return nil, fmt.Errorf("stored member has invalid tag: %w", err)
	}
	profile, err := valueobjects.NewPersonProfile(row.Role, row.WhyWarm)
	if err != nil {
		return nil, fmt.Errorf("stored member has invalid profile: %w", err)
	}

	channels := make([]valueobjects.ContactChannel, 0, len(row.Channels))
	for _, stored := range row.Channels {
		channel, err := valueobjects.NewContactChannel(
			valueobjects.ParseChannelType(stored.Type),
			stored.Handle,
			stored.Public,
		)
		if err != nil {
			return nil, fmt.Errorf("stored member has invalid channel: %w", err)
		}
		channels = append(channels, channel)
	}

	lastActivity := time.Time{}
	if row.LastActivity != nil {
		lastActivity = *row.LastActivity
	}
	signals := valueobjects.NewRawSignals(
		row.RelationshipStrength,
		row.MutualConnections,
		row.InteractionFrequency,
		lastActivity,
	)

	return entities.ReconstructPerson(
		nodeID,
		celebrityID,
		row.PersonName,
		tag,
		profile,
		channels,
		signals,
		row.CreatedAt,
		row.UpdatedAt,
	)
}

package handlers

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"accessengine-backend/application/commands"
	"accessengine-backend/application/ports"
	"accessengine-backend/application/services"
	"accessengine-backend/domain/config"
	"accessengine-backend/domain/core/aggregates"
	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/validators"
	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/domain/events"
	pkgerrors "accessengine-backend/pkg/errors"
)

// AddPersonResult reports the stored member and the derived placement the
// follow-up rebuild produced for them
type AddPersonResult struct {
	NodeID      string `json:"node_id"`
	CelebrityID string `json:"celebrity_id"`
	Name        string `json:"person_name"`
	Tag         string `json:"relationship_type"`
	WarmScore   int    `json:"warm_score"`
	HopDistance int    `json:"hop_distance"`
	Rebuilt     bool   `json:"rebuilt"`
}

// AddPersonHandler adds a member to a celebrity's circle and rebuilds the
// snapshot so derived scores stay current
type AddPersonHandler struct {
	celebrityRepo   ports.CelebrityRepository
	personRepo      ports.PersonRepository
	edgeRepo        ports.EdgeRecordRepository
	snapshots       *services.SnapshotService
	publisher       ports.EventPublisher
	recordValidator *validators.RecordValidator
	edgeValidator   *validators.EdgeValidator
	cfg             *config.DomainConfig
	logger          *zap.Logger
}

// NewAddPersonHandler creates a new add person handler
func NewAddPersonHandler(
	celebrityRepo ports.CelebrityRepository,
	personRepo ports.PersonRepository,
	edgeRepo ports.EdgeRecordRepository,
	snapshots *services.SnapshotService,
	publisher ports.EventPublisher,
	cfg *config.DomainConfig,
	logger *zap.Logger,
) *AddPersonHandler {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &AddPersonHandler{
		celebrityRepo:   celebrityRepo,
		personRepo:      personRepo,
		edgeRepo:        edgeRepo,
		snapshots:       snapshots,
		publisher:       publisher,
		recordValidator: validators.NewRecordValidatorWithConfig(cfg),
		edgeValidator:   validators.NewEdgeValidator(),
		cfg:             cfg,
		logger:          logger,
	}
}

// Handle executes the add person command
func (h *AddPersonHandler) Handle(ctx context.Context, cmd commands.AddPersonCommand) (*AddPersonResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command: %w", err)
	}

	celebrityID, err := valueobjects.NewCelebrityIDFromString(cmd.CelebrityID)
	if err != nil {
		return nil, fmt.Errorf("invalid celebrity ID: %w", err)
	}
	celebrity, err := h.celebrityRepo.GetByID(ctx, celebrityID)
	if err != nil {
		return nil, err
	}

	if err := h.recordValidator.ValidateMemberRecord(cmd.Name, cmd.Tag, cmd.Role, cmd.Rationale, len(cmd.Channels)); err != nil {
		return nil, err
	}
	if err := h.edgeValidator.ValidateStrength(cmd.Strength); err != nil {
		return nil, err
	}

	person, err := h.buildPerson(celebrityID, cmd)
	if err != nil {
		return nil, err
	}

	anchorKey, err := h.resolveAnchor(ctx, celebrityID, cmd.ViaNodeID)
	if err != nil {
		return nil, err
	}

	if err := h.personRepo.Save(ctx, person); err != nil {
		return nil, err
	}
	if err := h.edgeRepo.SaveBatch(ctx, celebrityID, []aggregates.RawEdge{{
		SourceKey: anchorKey,
		TargetKey: person.ID().String(),
		Strength:  cmd.Strength,
	}}); err != nil {
		return nil, err
	}

	celebrity.AttachNode(person.ID())
	if err := h.celebrityRepo.Save(ctx, celebrity); err != nil {
		return nil, err
	}

	event := events.NewPersonAdded(person.ID(), celebrityID, person.Name(), person.Tag().String(), time.Now())
	if err := h.publisher.Publish(ctx, event); err != nil {
		h.logger.Warn("Failed to publish person added event",
			zap.String("nodeID", person.ID().String()),
			zap.Error(err),
		)
	}

	result := &AddPersonResult{
		NodeID:      person.ID().String(),
		CelebrityID: cmd.CelebrityID,
		Name:        person.Name(),
		Tag:         person.Tag().String(),
	}

	// The member is stored either way; a failed rebuild just leaves the
	// derived fields for the next one
	if _, err := h.snapshots.Rebuild(ctx, celebrityID, services.TriggerMemberAdded); err != nil {
		h.logger.Warn("Rebuild after member add failed",
			zap.String("celebrityID", cmd.CelebrityID),
			zap.Error(err),
		)
		return result, nil
	}
	result.Rebuilt = true

	if snapshot, ok := h.snapshots.Snapshot(ctx, celebrityID); ok {
		if score, scored := snapshot.Scores[person.ID()]; scored {
			result.WarmScore = score.Value()
		}
		if hops, known := snapshot.Graph.HopDistance(person.ID()); known {
			result.HopDistance = hops
		}
	}

	h.logger.Info("Person added to circle",
		zap.String("celebrityID", cmd.CelebrityID),
		zap.String("nodeID", result.NodeID),
		zap.String("name", result.Name),
		zap.String("tag", result.Tag),
		zap.Bool("rebuilt", result.Rebuilt),
	)

	return result, nil
}

func (h *AddPersonHandler) buildPerson(celebrityID valueobjects.CelebrityID, cmd commands.AddPersonCommand) (*entities.Person, error) {
	tag, err := valueobjects.ParseRelationshipTag(cmd.Tag)
	if err != nil {
		return nil, err
	}

	profile, err := valueobjects.NewPersonProfileWithConfig(cmd.Role, cmd.Rationale, h.cfg)
	if err != nil {
		return nil, err
	}

	channels := make([]valueobjects.ContactChannel, 0, len(cmd.Channels))
	for _, raw := range cmd.Channels {
		if err := h.recordValidator.ValidateHandle(raw.Handle); err != nil {
			return nil, err
		}
		channel, err := valueobjects.NewContactChannel(valueobjects.ParseChannelType(raw.Type), raw.Handle, raw.Public)
		if err != nil {
			return nil, err
		}
		channels = append(channels, channel)
	}

	lastActivity := time.Now().AddDate(0, 0, -cmd.DaysSinceActive)
	signals := valueobjects.NewRawSignals(cmd.Strength, cmd.MutualConnections, cmd.InteractionFrequency, lastActivity)

	return entities.NewPersonWithConfig(celebrityID, cmd.Name, tag, profile, channels, signals, h.cfg)
}

// resolveAnchor returns the edge endpoint the new member hangs off: the
// celebrity root by default, or an existing member for multi-hop records
func (h *AddPersonHandler) resolveAnchor(ctx context.Context, celebrityID valueobjects.CelebrityID, viaNodeID string) (string, error) {
	if viaNodeID == "" {
		return celebrityID.String(), nil
	}

	anchorID, err := valueobjects.NewNodeIDFromString(viaNodeID)
	if err != nil {
		return "", fmt.Errorf("invalid via node ID: %w", err)
	}
	if _, err := h.personRepo.GetByID(ctx, celebrityID, anchorID); err != nil {
		return "", pkgerrors.ErrPersonNotFound.Clone().WithDetail("via_node_id", viaNodeID)
	}
	return anchorID.String(), nil
}

package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"accessengine-backend/application/commands"
	"accessengine-backend/application/ports"
	"accessengine-backend/application/services"
	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	pkgerrors "accessengine-backend/pkg/errors"
	"accessengine-backend/pkg/extensions"
)

// defaultAsk fills in when the sender does not say what they want
const defaultAsk = "a quick 15-minute intro call"

// GenerateOutreachHandler drafts a personalized message for one circle
// member and stores it as a draft outreach record
type GenerateOutreachHandler struct {
	celebrityRepo ports.CelebrityRepository
	outreachRepo  ports.OutreachRepository
	snapshots     *services.SnapshotService
	generator     ports.MessageGenerator
	publisher     ports.EventPublisher
	hooks         *extensions.HookManager
	logger        *zap.Logger
}

// NewGenerateOutreachHandler creates a new generate outreach handler
func NewGenerateOutreachHandler(
	celebrityRepo ports.CelebrityRepository,
	outreachRepo ports.OutreachRepository,
	snapshots *services.SnapshotService,
	generator ports.MessageGenerator,
	publisher ports.EventPublisher,
	hooks *extensions.HookManager,
	logger *zap.Logger,
) *GenerateOutreachHandler {
	if hooks == nil {
		hooks = extensions.NewHookManager()
	}
	return &GenerateOutreachHandler{
		celebrityRepo: celebrityRepo,
		outreachRepo:  outreachRepo,
		snapshots:     snapshots,
		generator:     generator,
		publisher:     publisher,
		hooks:         hooks,
		logger:        logger,
	}
}

// Handle executes the generate outreach command
func (h *GenerateOutreachHandler) Handle(ctx context.Context, cmd commands.GenerateOutreachCommand) (*commands.GenerateOutreachResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command: %w", err)
	}

	celebrityID, err := valueobjects.NewCelebrityIDFromString(cmd.CelebrityID)
	if err != nil {
		return nil, fmt.Errorf("invalid celebrity ID: %w", err)
	}
	nodeID, err := valueobjects.NewNodeIDFromString(cmd.NodeID)
	if err != nil {
		return nil, fmt.Errorf("invalid node ID: %w", err)
	}

	celebrity, err := h.celebrityRepo.GetByID(ctx, celebrityID)
	if err != nil {
		return nil, err
	}
	snapshot, err := h.snapshots.EnsureSnapshot(ctx, celebrityID)
	if err != nil {
		return nil, err
	}

	person, found := snapshot.Graph.Person(nodeID)
	if !found {
		return nil, pkgerrors.ErrPersonNotFound.Clone().WithDetail("node_id", cmd.NodeID)
	}
	channel, ok := person.PreferredChannel()
	if !ok {
		return nil, pkgerrors.ErrChannelHandleRequired.Clone().
			WithDetail("node_id", cmd.NodeID).
			WithDetail("reason", "person has no contact channel")
	}

	hops, _ := snapshot.Graph.HopDistance(nodeID)
	hopLabel := valueobjects.HopLabelForDistance(hops)

	ask := cmd.Ask
	if ask == "" {
		ask = defaultAsk
	}

	leverage, err := h.generator.GenerateLeverage(ctx, ports.LeverageRequest{
		CelebrityName: celebrity.Name(),
		CelebrityBio:  celebrity.Bio(),
		Background:    cmd.SenderBackground,
		Ask:           ask,
	})
	if err != nil {
		return nil, err
	}

	draft, err := h.generator.DraftOutreachMessage(ctx, ports.MessageRequest{
		SenderName:       cmd.SenderName,
		SenderBackground: cmd.SenderBackground,
		TargetName:       person.Name(),
		TargetRole:       person.Profile().Role(),
		Relationship:     person.Tag().String(),
		CelebrityName:    celebrity.Name(),
		ValueProp:        leverage.ValueProp,
		ForwardReason:    person.Profile().Rationale(),
		Hop:              hopLabel,
	})
	if err != nil {
		return nil, err
	}

	outreach, err := entities.NewOutreach(
		celebrityID,
		nodeID,
		person.Name(),
		channel,
		draft.SubjectLine,
		draft.Message,
		leverage.ValueProp,
		hopLabel,
	)
	if err != nil {
		return nil, err
	}

	if err := h.outreachRepo.Save(ctx, outreach); err != nil {
		return nil, err
	}

	if err := h.publisher.PublishBatch(ctx, outreach.GetUncommittedEvents()); err != nil {
		h.logger.Warn("Failed to publish outreach events",
			zap.String("outreachID", outreach.ID().String()),
			zap.Error(err),
		)
	}
	outreach.MarkEventsAsCommitted()

	h.hooks.ExecuteAsync(ctx, extensions.HookAfterDraft, &extensions.HookData{
		CelebrityID: cmd.CelebrityID,
		Operation:   "generate_outreach",
		Metadata: map[string]interface{}{
			"outreach_id": outreach.ID().String(),
			"node_id":     cmd.NodeID,
			"hop":         hopLabel.String(),
		},
	})

	h.logger.Info("Outreach drafted",
		zap.String("outreachID", outreach.ID().String()),
		zap.String("celebrityID", cmd.CelebrityID),
		zap.String("nodeID", cmd.NodeID),
		zap.String("hop", hopLabel.String()),
		zap.Int("wordCount", outreach.WordCount()),
	)

	return &commands.GenerateOutreachResult{
		OutreachID:   outreach.ID().String(),
		Message:      draft.Message,
		SubjectLine:  draft.SubjectLine,
		PlatformNote: draft.PlatformNote,
		ToneNote:     draft.ToneNote,
		WordCount:    outreach.WordCount(),
		Hop:          hopLabel.String(),
		Leverage:     leverage,
		Target: commands.OutreachTarget{
			Name:        person.Name(),
			Role:        person.Profile().Role(),
			ContactInfo: channel.Display(),
		},
	}, nil
}

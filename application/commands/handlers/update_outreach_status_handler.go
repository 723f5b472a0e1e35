package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"accessengine-backend/application/commands"
	"accessengine-backend/application/ports"
	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	pkgerrors "accessengine-backend/pkg/errors"
	"accessengine-backend/pkg/extensions"
)

// UpdateOutreachStatusHandler advances outreach records through their
// lifecycle
type UpdateOutreachStatusHandler struct {
	outreachRepo ports.OutreachRepository
	publisher    ports.EventPublisher
	hooks        *extensions.HookManager
	logger       *zap.Logger
}

// NewUpdateOutreachStatusHandler creates a new status update handler
func NewUpdateOutreachStatusHandler(
	outreachRepo ports.OutreachRepository,
	publisher ports.EventPublisher,
	hooks *extensions.HookManager,
	logger *zap.Logger,
) *UpdateOutreachStatusHandler {
	if hooks == nil {
		hooks = extensions.NewHookManager()
	}
	return &UpdateOutreachStatusHandler{
		outreachRepo: outreachRepo,
		publisher:    publisher,
		hooks:        hooks,
		logger:       logger,
	}
}

// Handle executes the update outreach status command
func (h *UpdateOutreachStatusHandler) Handle(ctx context.Context, cmd commands.UpdateOutreachStatusCommand) (*entities.Outreach, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command: %w", err)
	}

	target, err := valueobjects.ParseOutreachStatus(cmd.Status)
	if err != nil {
		return nil, err
	}

	outreachID, err := valueobjects.NewOutreachIDFromString(cmd.OutreachID)
	if err != nil {
		return nil, fmt.Errorf("invalid outreach ID: %w", err)
	}

	outreach, err := h.outreachRepo.GetByID(ctx, outreachID)
	if err != nil {
		return nil, err
	}

	previous := outreach.Status()

	switch target {
	case valueobjects.OutreachSent:
		err = outreach.MarkSent()
	case valueobjects.OutreachReplied:
		err = outreach.MarkReplied()
	default:
		err = pkgerrors.ErrInvalidStatusTransition.Clone().
			WithDetail("from", previous.String()).
			WithDetail("to", target.String())
	}
	if err != nil {
		return nil, err
	}

	if err := h.outreachRepo.Save(ctx, outreach); err != nil {
		return nil, err
	}

	if err := h.publisher.PublishBatch(ctx, outreach.GetUncommittedEvents()); err != nil {
		h.logger.Warn("Failed to publish status change events",
			zap.String("outreachID", cmd.OutreachID),
			zap.Error(err),
		)
	}
	outreach.MarkEventsAsCommitted()

	h.hooks.ExecuteAsync(ctx, extensions.HookAfterStatusChange, &extensions.HookData{
		CelebrityID: outreach.CelebrityID().String(),
		Operation:   "update_outreach_status",
		Metadata: map[string]interface{}{
			"outreach_id": cmd.OutreachID,
			"from":        previous.String(),
			"to":          target.String(),
		},
	})

	h.logger.Info("Outreach status updated",
		zap.String("outreachID", cmd.OutreachID),
		zap.String("from", previous.String()),
		zap.String("to", target.String()),
	)

	return outreach, nil
}

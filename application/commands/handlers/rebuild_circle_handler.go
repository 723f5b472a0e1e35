package handlers

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"accessengine-backend/application/commands"
	"accessengine-backend/application/ports"
	"accessengine-backend/application/services"
	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/domain/events"
)

// RebuildCircleHandler handles manual snapshot rebuild commands
type RebuildCircleHandler struct {
	snapshots *services.SnapshotService
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewRebuildCircleHandler creates a new rebuild handler
func NewRebuildCircleHandler(
	snapshots *services.SnapshotService,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *RebuildCircleHandler {
	return &RebuildCircleHandler{
		snapshots: snapshots,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the rebuild circle command
func (h *RebuildCircleHandler) Handle(ctx context.Context, cmd commands.RebuildCircleCommand) (*services.RebuildResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command: %w", err)
	}

	celebrityID, err := valueobjects.NewCelebrityIDFromString(cmd.CelebrityID)
	if err != nil {
		return nil, fmt.Errorf("invalid celebrity ID: %w", err)
	}

	reason := cmd.Reason
	if reason == "" {
		reason = services.TriggerManual
	}

	if err := h.publisher.Publish(ctx, events.NewRebuildRequested(celebrityID, reason, time.Now())); err != nil {
		h.logger.Warn("Failed to publish rebuild request",
			zap.String("celebrityID", cmd.CelebrityID),
			zap.Error(err),
		)
	}

	return h.snapshots.Rebuild(ctx, celebrityID, reason)
}

// RebuildAllHandler rebuilds every seeded circle
type RebuildAllHandler struct {
	snapshots *services.SnapshotService
	logger    *zap.Logger
}

// NewRebuildAllHandler creates a new rebuild-all handler
func NewRebuildAllHandler(snapshots *services.SnapshotService, logger *zap.Logger) *RebuildAllHandler {
	return &RebuildAllHandler{snapshots: snapshots, logger: logger}
}

// Handle executes the rebuild all command
func (h *RebuildAllHandler) Handle(ctx context.Context, cmd commands.RebuildAllCommand) ([]*services.RebuildResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command: %w", err)
	}

	trigger := services.TriggerScheduled
	if cmd.Reason != "" {
		trigger = cmd.Reason
	}

	return h.snapshots.RebuildAll(ctx, trigger)
}

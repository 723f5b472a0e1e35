package handlers

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"accessengine-backend/application/ports"
	"accessengine-backend/application/queries"
	"accessengine-backend/domain/core/valueobjects"
	pkgerrors "accessengine-backend/pkg/errors"
)

// ListNodesHandler serves a celebrity's scored circle from the live snapshot
type ListNodesHandler struct {
	snapshots ports.SnapshotRepository
	logger    *zap.Logger
}

// NewListNodesHandler creates a new circle listing handler
func NewListNodesHandler(snapshots ports.SnapshotRepository, logger *zap.Logger) *ListNodesHandler {
	return &ListNodesHandler{
		snapshots: snapshots,
		logger:    logger,
	}
}

// Handle executes the circle listing, warmest member first
func (h *ListNodesHandler) Handle(ctx context.Context, query queries.ListNodesQuery) (*queries.ListNodesResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	celebrityID, err := valueobjects.NewCelebrityIDFromString(query.CelebrityID)
	if err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}

	snapshot, ok := h.snapshots.Get(ctx, celebrityID)
	if !ok {
		return nil, pkgerrors.ErrSnapshotMissing.Clone().WithDetail("celebrity_id", query.CelebrityID)
	}

	people := snapshot.Graph.People()
	views := make([]queries.NodeView, 0, len(people))
	for _, person := range people {
		views = append(views, buildNodeView(snapshot, person))
	}

	// People() is ID-sorted, so the stable sort keeps ties deterministic
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].WarmScore > views[j].WarmScore
	})

	h.logger.Debug("Circle listed",
		zap.String("celebrityID", query.CelebrityID),
		zap.Int("nodeCount", len(views)),
	)

	return &queries.ListNodesResult{
		CelebrityID: query.CelebrityID,
		Nodes:       views,
		Count:       len(views),
	}, nil
}

package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"accessengine-backend/application/ports"
	"accessengine-backend/application/queries"
	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/domain/services"
	pkgerrors "accessengine-backend/pkg/errors"
)

// BestPathHandler ranks approach paths from the live snapshot
type BestPathHandler struct {
	snapshots ports.SnapshotRepository
	selector  *services.PathSelector
	logger    *zap.Logger
}

// NewBestPathHandler creates a new best path handler
func NewBestPathHandler(snapshots ports.SnapshotRepository, selector *services.PathSelector, logger *zap.Logger) *BestPathHandler {
	return &BestPathHandler{
		snapshots: snapshots,
		selector:  selector,
		logger:    logger,
	}
}

// Handle executes the path selection
func (h *BestPathHandler) Handle(ctx context.Context, query queries.BestPathQuery) (*queries.BestPathResult, error) {
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

	var querent *services.Querent
	if query.Industry != "" || len(query.Connections) > 0 {
		querent = &services.Querent{
			Industry:    query.Industry,
			Connections: query.Connections,
		}
	}

	selection := h.selector.SelectPaths(snapshot.Graph, snapshot.Scores, querent, query.TopK)

	result := &queries.BestPathResult{
		CelebrityID: query.CelebrityID,
		Viable:      selection.Viable,
		Fallback:    selection.Fallback,
		Paths:       make([]queries.RankedPath, 0, len(selection.Candidates)),
	}

	for _, candidate := range selection.Candidates {
		path := queries.RankedPath{
			Steps:     make([]queries.PathStep, 0, len(candidate.Chain)),
			TotalHops: candidate.Hops() + 1,
			PathScore: candidate.Score,
			RankScore: candidate.RankScore,
			Direct:    candidate.Direct,
		}
		for _, person := range candidate.Chain {
			path.Steps = append(path.Steps, buildPathStep(snapshot, person))
		}
		result.Paths = append(result.Paths, path)
	}

	if result.Viable && len(result.Paths) > 0 && len(result.Paths[0].Steps) > 0 {
		entry := result.Paths[0].Steps[0]
		result.EntryPoint = &entry
	}

	h.logger.Debug("Paths ranked",
		zap.String("celebrityID", query.CelebrityID),
		zap.Bool("viable", selection.Viable),
		zap.Bool("fallback", selection.Fallback),
		zap.Int("candidates", len(selection.Candidates)),
	)

	return result, nil
}

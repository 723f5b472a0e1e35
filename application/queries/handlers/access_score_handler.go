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

// AccessScoreHandler serves the stored access score for a celebrity.
// The score itself is maintained by the rebuild pipeline.
type AccessScoreHandler struct {
	celebrityRepo ports.CelebrityRepository
	logger        *zap.Logger
}

// NewAccessScoreHandler creates a new access score handler
func NewAccessScoreHandler(celebrityRepo ports.CelebrityRepository, logger *zap.Logger) *AccessScoreHandler {
	return &AccessScoreHandler{
		celebrityRepo: celebrityRepo,
		logger:        logger,
	}
}

// Handle executes the access score query
func (h *AccessScoreHandler) Handle(ctx context.Context, query queries.AccessScoreQuery) (*queries.AccessScoreResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	celebrityID, err := valueobjects.NewCelebrityIDFromString(query.CelebrityID)
	if err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}

	celebrity, err := h.celebrityRepo.GetByID(ctx, celebrityID)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Access score served",
		zap.String("celebrityID", query.CelebrityID),
		zap.Int("accessScore", celebrity.AccessScore()),
	)

	return &queries.AccessScoreResult{
		CelebrityID: query.CelebrityID,
		AccessScore: celebrity.AccessScore(),
		Band:        services.AccessBand(celebrity.AccessScore()),
	}, nil
}

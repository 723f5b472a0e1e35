package handlers

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"accessengine-backend/application/ports"
	"accessengine-backend/application/queries"
	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	pkgerrors "accessengine-backend/pkg/errors"
)

// OutreachHistoryHandler serves the outreach records for one celebrity
type OutreachHistoryHandler struct {
	outreachRepo ports.OutreachRepository
	logger       *zap.Logger
}

// NewOutreachHistoryHandler creates a new outreach history handler
func NewOutreachHistoryHandler(outreachRepo ports.OutreachRepository, logger *zap.Logger) *OutreachHistoryHandler {
	return &OutreachHistoryHandler{
		outreachRepo: outreachRepo,
		logger:       logger,
	}
}

// Handle executes the outreach history query, newest first
func (h *OutreachHistoryHandler) Handle(ctx context.Context, query queries.ListOutreachQuery) (*queries.ListOutreachResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	celebrityID, err := valueobjects.NewCelebrityIDFromString(query.CelebrityID)
	if err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}

	records, err := h.outreachRepo.GetByCelebrityID(ctx, celebrityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load outreach history: %w", err)
	}

	result := &queries.ListOutreachResult{
		CelebrityID: query.CelebrityID,
		Messages:    make([]queries.OutreachView, 0, len(records)),
		Count:       len(records),
	}
	for _, record := range records {
		result.Messages = append(result.Messages, outreachView(record))
	}

	h.logger.Debug("Outreach history served",
		zap.String("celebrityID", query.CelebrityID),
		zap.Int("count", len(records)),
	)

	return result, nil
}

// outreachView projects one outreach record into the API shape
func outreachView(o *entities.Outreach) queries.OutreachView {
	return queries.OutreachView{
		ID:          o.ID().String(),
		CelebrityID: o.CelebrityID().String(),
		NodeID:      o.NodeID().String(),
		Recipient:   o.RecipientName(),
		ContactInfo: o.Channel().Display(),
		Subject:     o.Subject(),
		Message:     o.Body(),
		ValueProp:   o.ValueProp(),
		Hop:         o.HopLabel().String(),
		Status:      o.Status().String(),
		WordCount:   o.WordCount(),
		CreatedAt:   o.CreatedAt().Format(time.RFC3339),
		UpdatedAt:   o.UpdatedAt().Format(time.RFC3339),
	}
}

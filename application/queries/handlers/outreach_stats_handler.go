package handlers

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"accessengine-backend/application/ports"
	"accessengine-backend/application/queries"
	"accessengine-backend/domain/core/valueobjects"
)

// OutreachStatsHandler rolls up outreach counts for the dashboard
type OutreachStatsHandler struct {
	outreachRepo ports.OutreachRepository
	logger       *zap.Logger
}

// NewOutreachStatsHandler creates a new outreach stats handler
func NewOutreachStatsHandler(outreachRepo ports.OutreachRepository, logger *zap.Logger) *OutreachStatsHandler {
	return &OutreachStatsHandler{
		outreachRepo: outreachRepo,
		logger:       logger,
	}
}

// Handle executes the stats rollup. Reply rate is the replied share of
// sent messages, one decimal, zero when nothing has been sent.
func (h *OutreachStatsHandler) Handle(ctx context.Context, query queries.OutreachStatsQuery) (*queries.OutreachStatsResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	records, err := h.outreachRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load outreach records: %w", err)
	}

	result := &queries.OutreachStatsResult{Total: len(records)}
	for _, record := range records {
		switch record.Status() {
		case valueobjects.OutreachDraft:
			result.Draft++
		case valueobjects.OutreachSent:
			result.Sent++
		case valueobjects.OutreachReplied:
			result.Replied++
		}
	}

	// Replied messages were sent first, so they count toward the sent base
	sentBase := result.Sent + result.Replied
	if sentBase > 0 {
		rate := float64(result.Replied) / float64(sentBase) * 100
		result.ReplyRatePercent = math.Round(rate*10) / 10
	}

	h.logger.Debug("Outreach stats served",
		zap.Int("total", result.Total),
		zap.Float64("replyRate", result.ReplyRatePercent),
	)

	return result, nil
}

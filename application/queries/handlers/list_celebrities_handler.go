package handlers

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"accessengine-backend/application/ports"
	"accessengine-backend/application/queries"
	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/pkg/common"
	pkgerrors "accessengine-backend/pkg/errors"
)

// ListCelebritiesHandler serves the paginated roster, most reachable first
type ListCelebritiesHandler struct {
	celebrityRepo ports.CelebrityRepository
	logger        *zap.Logger
}

// NewListCelebritiesHandler creates a new roster listing handler
func NewListCelebritiesHandler(celebrityRepo ports.CelebrityRepository, logger *zap.Logger) *ListCelebritiesHandler {
	return &ListCelebritiesHandler{
		celebrityRepo: celebrityRepo,
		logger:        logger,
	}
}

// Handle executes the roster listing
func (h *ListCelebritiesHandler) Handle(ctx context.Context, query queries.ListCelebritiesQuery) (*queries.ListCelebritiesResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	var category valueobjects.Category
	if query.Category != "" {
		parsed, err := valueobjects.ParseCategory(query.Category)
		if err != nil {
			return nil, pkgerrors.ErrUnknownCategory.Clone().WithDetail("category", query.Category)
		}
		category = parsed
	}

	roster, err := h.celebrityRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	filtered := roster
	if query.Category != "" {
		filtered = make([]*entities.Celebrity, 0, len(roster))
		for _, c := range roster {
			if c.Category() == category {
				filtered = append(filtered, c)
			}
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].AccessScore() != filtered[j].AccessScore() {
			return filtered[i].AccessScore() > filtered[j].AccessScore()
		}
		return strings.ToLower(filtered[i].Name()) < strings.ToLower(filtered[j].Name())
	})

	params := common.DefaultPaginationParams()
	if query.Page > 0 {
		params.Page = query.Page
	}
	if query.PageSize > 0 {
		params.PageSize = query.PageSize
	}

	start, end := params.SliceBounds(len(filtered))
	page := filtered[start:end]

	result := &queries.ListCelebritiesResult{
		Celebrities: make([]queries.CelebritySummary, 0, len(page)),
		Count:       len(page),
		Pagination:  common.BuildPaginationMeta(params.Page, params.PageSize, len(filtered)),
	}
	for _, c := range page {
		result.Celebrities = append(result.Celebrities, celebritySummary(c))
	}

	h.logger.Debug("Roster listed",
		zap.String("category", query.Category),
		zap.Int("total", len(filtered)),
		zap.Int("returned", len(page)),
	)

	return result, nil
}

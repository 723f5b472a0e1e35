package handlers

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.uber.org/zap"

	"accessengine-backend/application/ports"
	"accessengine-backend/application/queries"
	"accessengine-backend/domain/core/entities"
	pkgerrors "accessengine-backend/pkg/errors"
)

// FindCelebrityHandler resolves free-text lookups against the seeded roster.
// Resolution order: exact name, substring, then fuzzy match.
type FindCelebrityHandler struct {
	celebrityRepo ports.CelebrityRepository
	logger        *zap.Logger
}

// NewFindCelebrityHandler creates a new find celebrity handler
func NewFindCelebrityHandler(celebrityRepo ports.CelebrityRepository, logger *zap.Logger) *FindCelebrityHandler {
	return &FindCelebrityHandler{
		celebrityRepo: celebrityRepo,
		logger:        logger,
	}
}

// Handle executes the celebrity lookup
func (h *FindCelebrityHandler) Handle(ctx context.Context, query queries.FindCelebrityQuery) (*queries.FindCelebrityResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	roster, err := h.celebrityRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	needle := strings.TrimSpace(query.Query)

	if match := exactMatch(roster, needle); match != nil {
		return lookupResult(match, "exact"), nil
	}
	if match := substringMatch(roster, needle); match != nil {
		return lookupResult(match, "substring"), nil
	}
	if match := fuzzyMatch(roster, needle); match != nil {
		h.logger.Debug("Celebrity lookup resolved fuzzily",
			zap.String("query", needle),
			zap.String("matched", match.Name()),
		)
		return lookupResult(match, "fuzzy"), nil
	}

	h.logger.Info("Celebrity lookup missed", zap.String("query", needle))
	return nil, pkgerrors.ErrCelebrityNotFound.Clone().WithDetail("query", needle)
}

func lookupResult(c *entities.Celebrity, match string) *queries.FindCelebrityResult {
	return &queries.FindCelebrityResult{
		Celebrity: celebritySummary(c),
		Match:     match,
	}
}

func exactMatch(roster []*entities.Celebrity, needle string) *entities.Celebrity {
	for _, c := range roster {
		if strings.EqualFold(c.Name(), needle) {
			return c
		}
	}
	return nil
}

// substringMatch prefers the most reachable of several matches, then name
// order, so repeated lookups stay stable.
func substringMatch(roster []*entities.Celebrity, needle string) *entities.Celebrity {
	var matches []*entities.Celebrity
	for _, c := range roster {
		if c.MatchesQuery(needle) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].AccessScore() != matches[j].AccessScore() {
			return matches[i].AccessScore() > matches[j].AccessScore()
		}
		return matches[i].Name() < matches[j].Name()
	})
	return matches[0]
}

func fuzzyMatch(roster []*entities.Celebrity, needle string) *entities.Celebrity {
	names := make([]string, len(roster))
	for i, c := range roster {
		names[i] = c.Name()
	}

	ranks := fuzzy.RankFindNormalizedFold(needle, names)
	if len(ranks) == 0 {
		return nil
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].Target < ranks[j].Target
	})
	return roster[ranks[0].OriginalIndex]
}

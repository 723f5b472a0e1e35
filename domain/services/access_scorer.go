package services

import (
	"math"

	"accessengine-backend/domain/config"
	"accessengine-backend/domain/core/aggregates"
	"accessengine-backend/domain/core/valueobjects"
)

// AccessScorer condenses a whole circle into one reachability number.
// It rewards warm relationships, direct connections, and variety in how
// those connections relate to the celebrity.
type AccessScorer struct {
	cfg *config.DomainConfig
}

// NewAccessScorer creates an access scorer with default configuration
func NewAccessScorer() *AccessScorer {
	return NewAccessScorerWithConfig(config.DefaultDomainConfig())
}

// NewAccessScorerWithConfig creates an access scorer with the given configuration
func NewAccessScorerWithConfig(cfg *config.DomainConfig) *AccessScorer {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &AccessScorer{cfg: cfg}
}

// ComputeAccessScore derives the celebrity's access score from a built
// graph and its warm scores. An empty circle gets the neutral default.
func (s *AccessScorer) ComputeAccessScore(
	graph *aggregates.CircleGraph,
	scores map[valueobjects.NodeID]valueobjects.WarmScore,
) int {
	people := graph.People()
	if len(people) == 0 {
		return s.cfg.AccessDefault
	}

	warmTotal := 0
	tags := make(map[valueobjects.RelationshipTag]bool)
	for _, person := range people {
		warmTotal += scores[person.ID()].Value()
		tags[person.Tag()] = true
	}
	averageWarm := float64(warmTotal) / float64(len(people))

	directBonus := len(graph.DirectConnections()) * s.cfg.AccessDirectPerNode
	if directBonus > s.cfg.AccessDirectCap {
		directBonus = s.cfg.AccessDirectCap
	}

	varietyBonus := len(tags) * s.cfg.AccessVarietyPerTag

	score := int(math.Round(averageWarm*s.cfg.AccessWarmWeight)) + directBonus + varietyBonus

	if score < s.cfg.AccessFloor {
		score = s.cfg.AccessFloor
	}
	if score > s.cfg.AccessCeiling {
		score = s.cfg.AccessCeiling
	}
	return score
}

// Access bands bucket a score for strategy guidance: guarded celebrities
// need warm paths, open ones have multiple strong entry points.
const (
	BandGuarded  = "guarded"
	BandModerate = "moderate"
	BandOpen     = "open"
)

// AccessBand buckets an access score
func AccessBand(score int) string {
	switch {
	case score < 60:
		return BandGuarded
	case score < 80:
		return BandModerate
	default:
		return BandOpen
	}
}

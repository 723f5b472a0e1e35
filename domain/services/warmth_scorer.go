package services

import (
	"math"

	"accessengine-backend/domain/config"
	"accessengine-backend/domain/core/aggregates"
	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/pkg/utils"
)

// WarmthScorer computes warm scores for circle members. Scoring is a pure
// function of the built graph and the member's own record: the same
// snapshot always produces the same scores.
type WarmthScorer struct {
	cfg *config.DomainConfig
}

// NewWarmthScorer creates a scorer with default configuration
func NewWarmthScorer() *WarmthScorer {
	return NewWarmthScorerWithConfig(config.DefaultDomainConfig())
}

// NewWarmthScorerWithConfig creates a scorer with the given configuration
func NewWarmthScorerWithConfig(cfg *config.DomainConfig) *WarmthScorer {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &WarmthScorer{cfg: cfg}
}

// Score computes the warm score for one member. A signal that cannot be
// computed contributes zero rather than failing the whole score.
func (s *WarmthScorer) Score(graph *aggregates.CircleGraph, person *entities.Person) valueobjects.WarmScore {
	weights := s.cfg.Weights

	proximity := s.proximitySignal(graph, person)
	relationship := s.relationshipSignal(graph, person)
	contactability := s.contactabilitySignal(person)
	recency := s.recencySignal(graph, person)

	contributions := []valueobjects.SignalContribution{
		{Name: valueobjects.SignalProximity, Value: proximity, Weight: weights.Proximity, Weighted: proximity * weights.Proximity},
		{Name: valueobjects.SignalRelationship, Value: relationship, Weight: weights.Relationship, Weighted: relationship * weights.Relationship},
		{Name: valueobjects.SignalContactability, Value: contactability, Weight: weights.Contactability, Weighted: contactability * weights.Contactability},
		{Name: valueobjects.SignalRecency, Value: recency, Weight: weights.Recency, Weighted: recency * weights.Recency},
	}

	total := 0.0
	for _, c := range contributions {
		total += c.Weighted
	}

	value := int(math.Round(total * 100))
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}

	score, err := valueobjects.NewWarmScore(value, contributions)
	if err != nil {
		// value is clamped above, so construction cannot fail
		score = valueobjects.WarmScore{}
	}

	if !person.IsContactable() {
		score = score.WithUncontactable()
	}

	return score
}

// ScoreAll computes warm scores for every member of the graph
func (s *WarmthScorer) ScoreAll(graph *aggregates.CircleGraph) map[valueobjects.NodeID]valueobjects.WarmScore {
	scores := make(map[valueobjects.NodeID]valueobjects.WarmScore, graph.NodeCount())
	for _, person := range graph.People() {
		scores[person.ID()] = s.Score(graph, person)
	}
	return scores
}

// proximitySignal decays by hop distance: direct connections score 1.0,
// each additional hop multiplies by the decay factor, floored so distant
// members never vanish entirely.
func (s *WarmthScorer) proximitySignal(graph *aggregates.CircleGraph, person *entities.Person) float64 {
	hops, ok := graph.HopDistance(person.ID())
	if !ok || hops < 1 {
		return 0
	}

	value := math.Pow(s.cfg.HopDecay, float64(hops-1))
	if value < s.cfg.ProximityFloor {
		value = s.cfg.ProximityFloor
	}
	return value
}

// relationshipSignal combines the tag weight with the normalized strength
// of the member's strongest edge toward the celebrity.
func (s *WarmthScorer) relationshipSignal(graph *aggregates.CircleGraph, person *entities.Person) float64 {
	strength, ok := strengthTowardRoot(graph, person.ID())
	if !ok {
		return 0
	}
	return person.Tag().Weight() * float64(strength) / 100.0
}

func (s *WarmthScorer) contactabilitySignal(person *entities.Person) float64 {
	if !person.IsContactable() {
		return 0
	}
	if person.HasPublicChannel() {
		return 1.0
	}
	return s.cfg.PrivateChannelScale
}

// recencySignal decays linearly over the configured window. Activity is
// measured against the snapshot's build instant, not the wall clock, so
// reads from the same snapshot always agree.
func (s *WarmthScorer) recencySignal(graph *aggregates.CircleGraph, person *entities.Person) float64 {
	lastActivity := person.Signals().LastActivity()
	if lastActivity.IsZero() {
		return 0
	}

	days := utils.DaysBetween(lastActivity, graph.BuiltAt())
	window := float64(s.cfg.RecencyWindowDays)
	if days >= window {
		return 0
	}
	return 1.0 - days/window
}

// strengthTowardRoot finds the strongest edge connecting the member to any
// neighbor one hop closer to the celebrity. The shortest path the build
// froze runs through one of those neighbors.
func strengthTowardRoot(graph *aggregates.CircleGraph, id valueobjects.NodeID) (int, bool) {
	hops, ok := graph.HopDistance(id)
	if !ok || hops < 1 {
		return 0, false
	}

	best := -1
	for _, neighbor := range graph.Neighbors(id) {
		neighborHops, ok := graph.HopDistance(neighbor.ID)
		if !ok || neighborHops != hops-1 {
			continue
		}
		if neighbor.Strength > best {
			best = neighbor.Strength
		}
	}

	if best < 0 {
		return 0, false
	}
	return best, true
}

package services

import (
	"math"
	"sort"
	"strings"

	"accessengine-backend/domain/config"
	"accessengine-backend/domain/core/aggregates"
	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
)

// Querent describes who is asking for a path. Claimed industry and
// connections only influence ranking order, never the stored scores.
type Querent struct {
	Industry    string
	Connections []string
}

// PathCandidate is one ranked way to approach the celebrity. The chain
// runs from the person the querent contacts first toward the member who
// knows the celebrity directly.
type PathCandidate struct {
	Chain     []*entities.Person
	Score     int
	RankScore int
	Direct    bool
}

// Entry returns the person the querent would contact first
func (c PathCandidate) Entry() *entities.Person {
	return c.Chain[0]
}

// Hops returns the number of introductions the chain needs
func (c PathCandidate) Hops() int {
	return len(c.Chain)
}

// PathSelection is the outcome of a selection run. An empty circle or a
// circle with nobody contactable yields Viable false, not an error.
type PathSelection struct {
	CelebrityID valueobjects.CelebrityID
	Viable      bool
	Fallback    bool
	Threshold   int
	Candidates  []PathCandidate
}

// PathSelector ranks contactable approaches to a celebrity over a built
// circle graph.
type PathSelector struct {
	cfg *config.DomainConfig
}

// NewPathSelector creates a selector with default configuration
func NewPathSelector() *PathSelector {
	return NewPathSelectorWithConfig(config.DefaultDomainConfig())
}

// NewPathSelectorWithConfig creates a selector with the given configuration
func NewPathSelectorWithConfig(cfg *config.DomainConfig) *PathSelector {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &PathSelector{cfg: cfg}
}

// SelectPaths ranks approaches to the celebrity. Direct connections are
// preferred; when none exists or the best one falls short of the
// configured threshold, multi-hop chains through intermediaries join the
// ranking. Only the entry of a chain must be contactable, since everyone
// past the entry is reached by introduction.
func (s *PathSelector) SelectPaths(
	graph *aggregates.CircleGraph,
	scores map[valueobjects.NodeID]valueobjects.WarmScore,
	querent *Querent,
	topK int,
) PathSelection {
	if topK <= 0 {
		topK = s.cfg.DefaultTopK
	}
	if topK > s.cfg.MaxTopK {
		topK = s.cfg.MaxTopK
	}

	candidates := s.directCandidates(graph, scores)

	fallback := false
	if s.cfg.EnableFallbackPaths && s.needsFallback(candidates) {
		chains := s.fallbackCandidates(graph, scores)
		if len(chains) > 0 {
			fallback = true
			candidates = append(candidates, chains...)
		}
	}

	for i := range candidates {
		candidates[i].RankScore = s.rankScore(candidates[i], querent)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].RankScore != candidates[j].RankScore {
			return candidates[i].RankScore > candidates[j].RankScore
		}
		iStrength, _ := strengthTowardRoot(graph, candidates[i].Entry().ID())
		jStrength, _ := strengthTowardRoot(graph, candidates[j].Entry().ID())
		if iStrength != jStrength {
			return iStrength > jStrength
		}
		return candidates[i].Entry().ID().String() < candidates[j].Entry().ID().String()
	})

	if len(candidates) > topK {
		candidates = candidates[:topK]
	}

	return PathSelection{
		CelebrityID: graph.CelebrityID(),
		Viable:      len(candidates) > 0,
		Fallback:    fallback,
		Threshold:   s.cfg.FallbackScoreThreshold,
		Candidates:  candidates,
	}
}

// directCandidates collects contactable members one hop from the celebrity
func (s *PathSelector) directCandidates(
	graph *aggregates.CircleGraph,
	scores map[valueobjects.NodeID]valueobjects.WarmScore,
) []PathCandidate {
	candidates := []PathCandidate{}
	for _, person := range graph.DirectConnections() {
		if !person.IsContactable() {
			continue
		}
		chain := []*entities.Person{person}
		candidates = append(candidates, PathCandidate{
			Chain:  chain,
			Score:  compositeScore(chain, scores),
			Direct: true,
		})
	}
	return candidates
}

func (s *PathSelector) needsFallback(direct []PathCandidate) bool {
	if len(direct) == 0 {
		return true
	}
	best := 0
	for _, candidate := range direct {
		if candidate.Score > best {
			best = candidate.Score
		}
	}
	return best < s.cfg.FallbackScoreThreshold
}

// fallbackCandidates builds one chain per contactable member beyond the
// first hop, up to the configured hop cap. Each chain walks toward the
// root through the warmest neighbor one hop closer.
func (s *PathSelector) fallbackCandidates(
	graph *aggregates.CircleGraph,
	scores map[valueobjects.NodeID]valueobjects.WarmScore,
) []PathCandidate {
	candidates := []PathCandidate{}
	for _, person := range graph.People() {
		hops, ok := graph.HopDistance(person.ID())
		if !ok || hops < 2 || hops > s.cfg.MaxPathHops {
			continue
		}
		if !person.IsContactable() {
			continue
		}

		chain := s.chainTowardRoot(graph, scores, person, hops)
		if chain == nil {
			continue
		}

		candidates = append(candidates, PathCandidate{
			Chain:  chain,
			Score:  compositeScore(chain, scores),
			Direct: false,
		})
	}
	return candidates
}

func (s *PathSelector) chainTowardRoot(
	graph *aggregates.CircleGraph,
	scores map[valueobjects.NodeID]valueobjects.WarmScore,
	entry *entities.Person,
	entryHops int,
) []*entities.Person {
	chain := []*entities.Person{entry}
	currentID := entry.ID()

	for currentHops := entryHops; currentHops > 1; currentHops-- {
		next := s.bestStepTowardRoot(graph, scores, currentID, currentHops)
		if next == nil {
			return nil
		}
		chain = append(chain, next)
		currentID = next.ID()
	}

	return chain
}

// bestStepTowardRoot picks the neighbor one hop closer with the highest
// warm score, breaking ties by edge strength. Neighbors arrive in node-ID
// order, so remaining ties keep the lowest ID.
func (s *PathSelector) bestStepTowardRoot(
	graph *aggregates.CircleGraph,
	scores map[valueobjects.NodeID]valueobjects.WarmScore,
	fromID valueobjects.NodeID,
	fromHops int,
) *entities.Person {
	var best *entities.Person
	bestScore := -1
	bestStrength := -1

	for _, neighbor := range graph.Neighbors(fromID) {
		neighborHops, ok := graph.HopDistance(neighbor.ID)
		if !ok || neighborHops != fromHops-1 {
			continue
		}
		person, ok := graph.Person(neighbor.ID)
		if !ok {
			continue
		}

		score := scores[neighbor.ID].Value()
		if score > bestScore || (score == bestScore && neighbor.Strength > bestStrength) {
			best = person
			bestScore = score
			bestStrength = neighbor.Strength
		}
	}

	return best
}

// rankScore applies querent boosts on top of the chain score. Boosts
// shift ordering only; the underlying warm scores stay untouched.
func (s *PathSelector) rankScore(candidate PathCandidate, querent *Querent) int {
	score := candidate.Score
	if querent == nil || !s.cfg.EnableQuerentBoost {
		return score
	}

	entry := candidate.Entry()

	if industry := strings.ToLower(strings.TrimSpace(querent.Industry)); industry != "" {
		keywords := make(map[string]bool, 8)
		for _, keyword := range entry.Keywords() {
			keywords[keyword] = true
		}
		for _, token := range strings.Fields(industry) {
			if keywords[token] {
				score += s.cfg.IndustryBoost
				break
			}
		}
	}

	for _, connection := range querent.Connections {
		if strings.EqualFold(strings.TrimSpace(connection), entry.Name()) {
			score += s.cfg.ConnectionBoost
			break
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}

// compositeScore multiplies the normalized scores along a chain. A single
// direct hop reduces to the member's own warm score.
func compositeScore(chain []*entities.Person, scores map[valueobjects.NodeID]valueobjects.WarmScore) int {
	composite := 1.0
	for _, member := range chain {
		composite *= scores[member.ID()].Normalized()
	}
	return int(math.Round(composite * 100))
}

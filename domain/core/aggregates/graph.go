package aggregates

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"accessengine-backend/domain/config"
	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	pkgerrors "accessengine-backend/pkg/errors"
)

// WarningCode classifies a record dropped or altered during a build
type WarningCode string

const (
	WarnDuplicateMember WarningCode = "duplicate_member_dropped"
	WarnForeignMember   WarningCode = "foreign_member_dropped"
	WarnUnknownEndpoint WarningCode = "unknown_endpoint_dropped"
	WarnSelfLoop        WarningCode = "self_loop_dropped"
	WarnDuplicateEdge   WarningCode = "duplicate_edge_merged"
	WarnStrengthClamped WarningCode = "strength_clamped"
	WarnUnreachable     WarningCode = "unreachable_member_pruned"
)

// BuildWarning reports a raw record the build could not take as-is.
// Warnings never abort a build; callers surface them to operators.
type BuildWarning struct {
	Code    WarningCode `json:"code"`
	Subject string      `json:"subject"`
	Message string      `json:"message"`
}

// RawMember pairs a submission-scoped key with the person it identifies.
// Edge records reference members by these keys.
type RawMember struct {
	Key    string
	Person *entities.Person
}

// RawEdge is an unresolved relationship record between two member keys.
// Either key may be the celebrity key, which resolves to the graph root.
type RawEdge struct {
	SourceKey string
	TargetKey string
	Strength  int
}

// BuildInput carries everything a circle build needs
type BuildInput struct {
	CelebrityID  valueobjects.CelebrityID
	CelebrityKey string
	Members      []RawMember
	Edges        []RawEdge
}

// Edge is a resolved, undirected connection between two graph vertices.
// The ID is the canonical endpoint pair, so identical input rebuilds
// produce identical graphs.
type Edge struct {
	ID        string
	SourceID  valueobjects.NodeID
	TargetID  valueobjects.NodeID
	Strength  int
	CreatedAt time.Time
}

// Touches reports whether the edge has the given vertex as an endpoint
func (e *Edge) Touches(id valueobjects.NodeID) bool {
	return e.SourceID.Equals(id) || e.TargetID.Equals(id)
}

// Other returns the opposite endpoint of the given vertex
func (e *Edge) Other(id valueobjects.NodeID) valueobjects.NodeID {
	if e.SourceID.Equals(id) {
		return e.TargetID
	}
	return e.SourceID
}

// Neighbor is an adjacent vertex together with the connecting edge strength
type Neighbor struct {
	ID       valueobjects.NodeID
	Strength int
}

// CircleGraph is the aggregate root for one celebrity's social circle.
// It is immutable once built: hop distances are computed during the build
// and frozen, so every read sees one consistent structure.
type CircleGraph struct {
	celebrityID valueobjects.CelebrityID
	rootID      valueobjects.NodeID
	people      map[valueobjects.NodeID]*entities.Person
	edges       map[string]*Edge
	hops        map[valueobjects.NodeID]int
	builtAt     time.Time
	prunedCount int
	warnings    []BuildWarning
}

// RootNodeID derives the graph root vertex for a celebrity. The root is
// the celebrity themself; it never appears in the member set.
func RootNodeID(celebrityID valueobjects.CelebrityID) valueobjects.NodeID {
	return valueobjects.NewSeededNodeID("root:" + celebrityID.String())
}

// BuildCircleGraph builds a circle graph with default configuration
func BuildCircleGraph(input BuildInput) (*CircleGraph, error) {
	return BuildCircleGraphWithConfig(input, config.DefaultDomainConfig())
}

// BuildCircleGraphWithConfig resolves raw records into an immutable graph.
// Unresolvable or malformed records are dropped with a warning rather than
// failing the build; only structural impossibilities return an error.
func BuildCircleGraphWithConfig(input BuildInput, cfg *config.DomainConfig) (*CircleGraph, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	if input.CelebrityID.IsZero() {
		return nil, pkgerrors.NewValidationError("celebrity ID cannot be empty")
	}
	celebrityKey := strings.TrimSpace(input.CelebrityKey)
	if celebrityKey == "" {
		return nil, pkgerrors.NewValidationError("celebrity key cannot be empty")
	}
	if len(input.Members) > cfg.MaxNodesPerCircle {
		return nil, pkgerrors.NewDomainError(
			pkgerrors.DomainBusinessRuleError,
			"CIRCLE_NODE_LIMIT_EXCEEDED",
			"Maximum number of circle members exceeded",
		).WithDetail("current", len(input.Members)).WithDetail("limit", cfg.MaxNodesPerCircle)
	}
	if len(input.Edges) > cfg.MaxEdgesPerCircle {
		return nil, pkgerrors.NewDomainError(
			pkgerrors.DomainBusinessRuleError,
			"CIRCLE_EDGE_LIMIT_EXCEEDED",
			"Maximum number of circle edges exceeded",
		).WithDetail("current", len(input.Edges)).WithDetail("limit", cfg.MaxEdgesPerCircle)
	}

	rootID := RootNodeID(input.CelebrityID)
	warnings := []BuildWarning{}

	// Index members by key. The first record wins on collisions.
	byKey := make(map[string]valueobjects.NodeID, len(input.Members))
	people := make(map[valueobjects.NodeID]*entities.Person, len(input.Members))
	for _, member := range input.Members {
		key := strings.TrimSpace(member.Key)
		if key == "" || member.Person == nil {
			return nil, pkgerrors.NewValidationError("member records require a key and a person")
		}
		if key == celebrityKey {
			warnings = append(warnings, BuildWarning{
				Code:    WarnDuplicateMember,
				Subject: key,
				Message: "member key collides with the celebrity key",
			})
			continue
		}
		if _, exists := byKey[key]; exists {
			warnings = append(warnings, BuildWarning{
				Code:    WarnDuplicateMember,
				Subject: key,
				Message: "duplicate member key",
			})
			continue
		}
		if !member.Person.CelebrityID().Equals(input.CelebrityID) {
			warnings = append(warnings, BuildWarning{
				Code:    WarnForeignMember,
				Subject: key,
				Message: "member belongs to a different celebrity",
			})
			continue
		}
		if _, exists := people[member.Person.ID()]; exists {
			warnings = append(warnings, BuildWarning{
				Code:    WarnDuplicateMember,
				Subject: key,
				Message: "duplicate person ID",
			})
			continue
		}
		byKey[key] = member.Person.ID()
		people[member.Person.ID()] = member.Person
	}

	resolve := func(key string) (valueobjects.NodeID, bool) {
		if key == celebrityKey {
			return rootID, true
		}
		id, ok := byKey[key]
		return id, ok
	}

	now := time.Now()
	edges := make(map[string]*Edge)
	for _, raw := range input.Edges {
		sourceKey := strings.TrimSpace(raw.SourceKey)
		targetKey := strings.TrimSpace(raw.TargetKey)
		subject := sourceKey + "->" + targetKey

		sourceID, sourceOK := resolve(sourceKey)
		targetID, targetOK := resolve(targetKey)
		if !sourceOK || !targetOK {
			warnings = append(warnings, BuildWarning{
				Code:    WarnUnknownEndpoint,
				Subject: subject,
				Message: "edge references an unknown member key",
			})
			continue
		}

		if sourceID.Equals(targetID) {
			warnings = append(warnings, BuildWarning{
				Code:    WarnSelfLoop,
				Subject: subject,
				Message: "edge connects a member to itself",
			})
			continue
		}

		strength := raw.Strength
		if strength < 0 || strength > 100 {
			warnings = append(warnings, BuildWarning{
				Code:    WarnStrengthClamped,
				Subject: subject,
				Message: fmt.Sprintf("strength %d clamped to [0, 100]", strength),
			})
			if strength < 0 {
				strength = 0
			} else {
				strength = 100
			}
		}

		key := edgeKey(sourceID, targetID)
		if existing, exists := edges[key]; exists {
			warnings = append(warnings, BuildWarning{
				Code:    WarnDuplicateEdge,
				Subject: subject,
				Message: "duplicate edge merged, keeping the stronger record",
			})
			if strength > existing.Strength {
				existing.Strength = strength
			}
			continue
		}

		edges[key] = &Edge{
			ID:        key,
			SourceID:  sourceID,
			TargetID:  targetID,
			Strength:  strength,
			CreatedAt: now,
		}
	}

	hops := computeHops(rootID, edges)

	// Members the root cannot reach contribute nothing to any path, so
	// they are pruned rather than carried with undefined distances.
	prunedCount := 0
	prunedKeys := make([]string, 0, len(byKey))
	for key := range byKey {
		prunedKeys = append(prunedKeys, key)
	}
	sort.Strings(prunedKeys)
	for _, key := range prunedKeys {
		id := byKey[key]
		if _, reachable := hops[id]; reachable {
			continue
		}
		warnings = append(warnings, BuildWarning{
			Code:    WarnUnreachable,
			Subject: key,
			Message: "member is unreachable from the celebrity",
		})
		delete(people, id)
		prunedCount++
	}
	for key, edge := range edges {
		_, sourceReachable := hops[edge.SourceID]
		_, targetReachable := hops[edge.TargetID]
		if !sourceReachable || !targetReachable {
			delete(edges, key)
		}
	}

	return &CircleGraph{
		celebrityID: input.CelebrityID,
		rootID:      rootID,
		people:      people,
		edges:       edges,
		hops:        hops,
		builtAt:     now,
		prunedCount: prunedCount,
		warnings:    warnings,
	}, nil
}

// ReconstructCircleGraph rehydrates a persisted graph. Stored graphs were
// already pruned at build time, so any inconsistency is data corruption.
func ReconstructCircleGraph(
	celebrityID valueobjects.CelebrityID,
	members []*entities.Person,
	edges []*Edge,
	builtAt time.Time,
) (*CircleGraph, error) {
	if celebrityID.IsZero() {
		return nil, pkgerrors.NewValidationError("celebrity ID cannot be empty")
	}

	rootID := RootNodeID(celebrityID)

	people := make(map[valueobjects.NodeID]*entities.Person, len(members))
	for _, person := range members {
		if person == nil {
			return nil, pkgerrors.NewValidationError("member cannot be nil")
		}
		people[person.ID()] = person
	}

	edgeMap := make(map[string]*Edge, len(edges))
	for _, edge := range edges {
		if edge == nil {
			return nil, pkgerrors.NewValidationError("edge cannot be nil")
		}
		for _, endpoint := range []valueobjects.NodeID{edge.SourceID, edge.TargetID} {
			if endpoint.Equals(rootID) {
				continue
			}
			if _, ok := people[endpoint]; !ok {
				return nil, pkgerrors.NewDomainError(
					pkgerrors.DomainDataIntegrityError,
					"SNAPSHOT_EDGE_ORPHANED",
					"Stored edge references an unknown member",
				).WithDetail("edge_id", edge.ID)
			}
		}
		key := edgeKey(edge.SourceID, edge.TargetID)
		stored := *edge
		stored.ID = key
		edgeMap[key] = &stored
	}

	hops := computeHops(rootID, edgeMap)
	for id := range people {
		if _, reachable := hops[id]; !reachable {
			return nil, pkgerrors.NewDomainError(
				pkgerrors.DomainDataIntegrityError,
				"SNAPSHOT_MEMBER_UNREACHABLE",
				"Stored member is unreachable from the celebrity",
			).WithDetail("node_id", id.String())
		}
	}

	return &CircleGraph{
		celebrityID: celebrityID,
		rootID:      rootID,
		people:      people,
		edges:       edgeMap,
		hops:        hops,
		builtAt:     builtAt,
		prunedCount: 0,
		warnings:    []BuildWarning{},
	}, nil
}

// CelebrityID returns the celebrity this circle belongs to
func (g *CircleGraph) CelebrityID() valueobjects.CelebrityID {
	return g.celebrityID
}

// RootID returns the vertex standing in for the celebrity
func (g *CircleGraph) RootID() valueobjects.NodeID {
	return g.rootID
}

// BuiltAt returns when this graph was built. Recency is always measured
// against this instant, never against the wall clock at read time.
func (g *CircleGraph) BuiltAt() time.Time {
	return g.builtAt
}

// NodeCount returns the number of members after pruning
func (g *CircleGraph) NodeCount() int {
	return len(g.people)
}

// EdgeCount returns the number of resolved edges
func (g *CircleGraph) EdgeCount() int {
	return len(g.edges)
}

// PrunedCount returns how many members the build discarded as unreachable
func (g *CircleGraph) PrunedCount() int {
	return g.prunedCount
}

// Warnings returns the build warnings
func (g *CircleGraph) Warnings() []BuildWarning {
	warnings := make([]BuildWarning, len(g.warnings))
	copy(warnings, g.warnings)
	return warnings
}

// People returns all members ordered by node ID
func (g *CircleGraph) People() []*entities.Person {
	people := make([]*entities.Person, 0, len(g.people))
	for _, person := range g.people {
		people = append(people, person)
	}
	sort.Slice(people, func(i, j int) bool {
		return people[i].ID().String() < people[j].ID().String()
	})
	return people
}

// Person retrieves a member by ID
func (g *CircleGraph) Person(id valueobjects.NodeID) (*entities.Person, bool) {
	person, ok := g.people[id]
	return person, ok
}

// Edges returns all edges ordered by canonical key
func (g *CircleGraph) Edges() []*Edge {
	edges := make([]*Edge, 0, len(g.edges))
	for _, edge := range g.edges {
		edges = append(edges, edge)
	}
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].ID < edges[j].ID
	})
	return edges
}

// EdgeBetween retrieves the edge connecting two vertices, in either order
func (g *CircleGraph) EdgeBetween(a, b valueobjects.NodeID) (*Edge, bool) {
	edge, ok := g.edges[edgeKey(a, b)]
	return edge, ok
}

// HopDistance returns the frozen BFS distance from the root. The root
// itself is at distance zero.
func (g *CircleGraph) HopDistance(id valueobjects.NodeID) (int, bool) {
	hops, ok := g.hops[id]
	return hops, ok
}

// Neighbors returns the vertices adjacent to the given one, ordered by
// node ID, each with the connecting edge strength
func (g *CircleGraph) Neighbors(id valueobjects.NodeID) []Neighbor {
	neighbors := []Neighbor{}
	for _, edge := range g.edges {
		if !edge.Touches(id) {
			continue
		}
		neighbors = append(neighbors, Neighbor{
			ID:       edge.Other(id),
			Strength: edge.Strength,
		})
	}
	sort.Slice(neighbors, func(i, j int) bool {
		return neighbors[i].ID.String() < neighbors[j].ID.String()
	})
	return neighbors
}

// StepTowardRoot returns the strongest neighbor one hop closer to the
// root, used to draw a member's primary edge. Neighbors arrive in node-ID
// order, so ties keep the lowest ID.
func (g *CircleGraph) StepTowardRoot(id valueobjects.NodeID) (valueobjects.NodeID, bool) {
	hops, ok := g.hops[id]
	if !ok || hops == 0 {
		return valueobjects.NodeID{}, false
	}

	best := valueobjects.NodeID{}
	bestStrength := -1
	for _, neighbor := range g.Neighbors(id) {
		neighborHops, reachable := g.hops[neighbor.ID]
		if !reachable || neighborHops != hops-1 {
			continue
		}
		if neighbor.Strength > bestStrength {
			best = neighbor.ID
			bestStrength = neighbor.Strength
		}
	}
	if bestStrength < 0 {
		return valueobjects.NodeID{}, false
	}
	return best, true
}

// DirectConnections returns the members one hop from the celebrity,
// ordered by node ID
func (g *CircleGraph) DirectConnections() []*entities.Person {
	direct := []*entities.Person{}
	for id, person := range g.people {
		if g.hops[id] == 1 {
			direct = append(direct, person)
		}
	}
	sort.Slice(direct, func(i, j int) bool {
		return direct[i].ID().String() < direct[j].ID().String()
	})
	return direct
}

// Validate ensures graph invariants hold
func (g *CircleGraph) Validate() error {
	for _, edge := range g.edges {
		for _, endpoint := range []valueobjects.NodeID{edge.SourceID, edge.TargetID} {
			if endpoint.Equals(g.rootID) {
				continue
			}
			if _, ok := g.people[endpoint]; !ok {
				return pkgerrors.NewDomainError(
					pkgerrors.DomainDataIntegrityError,
					"EDGE_ORPHANED",
					"Edge references a missing member",
				).WithDetail("edge_id", edge.ID)
			}
		}
	}

	for id := range g.people {
		if _, ok := g.hops[id]; !ok {
			return pkgerrors.NewDomainError(
				pkgerrors.DomainDataIntegrityError,
				"HOP_DISTANCE_MISSING",
				"Member has no frozen hop distance",
			).WithDetail("node_id", id.String())
		}
	}

	if root, ok := g.hops[g.rootID]; !ok || root != 0 {
		return pkgerrors.NewDomainError(
			pkgerrors.DomainDataIntegrityError,
			"ROOT_DISTANCE_INVALID",
			"Root must be at hop distance zero",
		)
	}

	return nil
}

// Private helper methods

func edgeKey(a, b valueobjects.NodeID) string {
	first, second := a.String(), b.String()
	if second < first {
		first, second = second, first
	}
	return first + "|" + second
}

// computeHops runs a breadth-first search from the root over the
// undirected edge set. Adjacency lists are walked in node-ID order so
// traversal is deterministic.
func computeHops(rootID valueobjects.NodeID, edges map[string]*Edge) map[valueobjects.NodeID]int {
	adjacency := make(map[valueobjects.NodeID][]valueobjects.NodeID)
	for _, edge := range edges {
		adjacency[edge.SourceID] = append(adjacency[edge.SourceID], edge.TargetID)
		adjacency[edge.TargetID] = append(adjacency[edge.TargetID], edge.SourceID)
	}
	for id := range adjacency {
		neighbors := adjacency[id]
		sort.Slice(neighbors, func(i, j int) bool {
			return neighbors[i].String() < neighbors[j].String()
		})
	}

	hops := map[valueobjects.NodeID]int{rootID: 0}
	queue := []valueobjects.NodeID{rootID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range adjacency[current] {
			if _, seen := hops[next]; seen {
				continue
			}
			hops[next] = hops[current] + 1
			queue = append(queue, next)
		}
	}

	return hops
}

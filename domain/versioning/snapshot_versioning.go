package versioning

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"accessengine-backend/domain/core/aggregates"
)

// SnapshotVersion describes one published circle snapshot. The checksum
// fingerprints the graph structure, so two rebuilds of identical input
// produce identical checksums even though their build instants differ.
type SnapshotVersion struct {
	CelebrityID string    `json:"celebrity_id"`
	Version     int       `json:"version"`
	Checksum    string    `json:"checksum"`
	NodeCount   int       `json:"node_count"`
	EdgeCount   int       `json:"edge_count"`
	PrunedCount int       `json:"pruned_count"`
	AccessScore int       `json:"access_score"`
	BuiltAt     time.Time `json:"built_at"`
	Trigger     string    `json:"trigger"`
}

// VersioningService stamps rebuilt snapshots and compares versions
type VersioningService struct{}

// NewVersioningService creates a new versioning service
func NewVersioningService() *VersioningService {
	return &VersioningService{}
}

// StampSnapshot creates the version record for a freshly built graph.
// The previous version may be nil for a first build.
func (s *VersioningService) StampSnapshot(
	graph *aggregates.CircleGraph,
	previous *SnapshotVersion,
	accessScore int,
	trigger string,
) (*SnapshotVersion, error) {
	if graph == nil {
		return nil, fmt.Errorf("graph cannot be nil")
	}

	checksum, err := s.calculateChecksum(graph)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate checksum: %w", err)
	}

	version := 1
	if previous != nil {
		version = previous.Version + 1
	}

	return &SnapshotVersion{
		CelebrityID: graph.CelebrityID().String(),
		Version:     version,
		Checksum:    checksum,
		NodeCount:   graph.NodeCount(),
		EdgeCount:   graph.EdgeCount(),
		PrunedCount: graph.PrunedCount(),
		AccessScore: accessScore,
		BuiltAt:     graph.BuiltAt(),
		Trigger:     trigger,
	}, nil
}

// Unchanged reports whether two versions fingerprint the same structure
func (s *VersioningService) Unchanged(a, b *SnapshotVersion) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Checksum == b.Checksum
}

// CompareVersions summarizes what changed between two snapshot versions.
// Snapshots are rebuilt wholesale, so the diff reports net movement, not
// per-record changes.
func (s *VersioningService) CompareVersions(from, to *SnapshotVersion) (*VersionDiff, error) {
	if from == nil || to == nil {
		return nil, fmt.Errorf("versions cannot be nil")
	}
	if from.CelebrityID != to.CelebrityID {
		return nil, fmt.Errorf("versions belong to different celebrities")
	}

	diff := &VersionDiff{
		FromVersion: from.Version,
		ToVersion:   to.Version,
		Structural:  from.Checksum != to.Checksum,
		ScoreDelta:  to.AccessScore - from.AccessScore,
		TimeDiff:    to.BuiltAt.Sub(from.BuiltAt),
	}

	if net := to.NodeCount - from.NodeCount; net >= 0 {
		diff.NodesDiff.Added = net
	} else {
		diff.NodesDiff.Removed = -net
	}
	if net := to.EdgeCount - from.EdgeCount; net >= 0 {
		diff.EdgesDiff.Added = net
	} else {
		diff.EdgesDiff.Removed = -net
	}

	return diff, nil
}

// calculateChecksum fingerprints the graph structure. Members and edges
// are walked in their sorted accessor order so the representation is
// deterministic; the build instant is deliberately left out.
func (s *VersioningService) calculateChecksum(graph *aggregates.CircleGraph) (string, error) {
	type memberRepr struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Tag         string `json:"tag"`
		Hops        int    `json:"hops"`
		Contactable bool   `json:"contactable"`
	}
	type edgeRepr struct {
		ID       string `json:"id"`
		Strength int    `json:"strength"`
	}

	people := graph.People()
	members := make([]memberRepr, 0, len(people))
	for _, person := range people {
		hops, _ := graph.HopDistance(person.ID())
		members = append(members, memberRepr{
			ID:          person.ID().String(),
			Name:        person.Name(),
			Tag:         string(person.Tag()),
			Hops:        hops,
			Contactable: person.IsContactable(),
		})
	}

	graphEdges := graph.Edges()
	edges := make([]edgeRepr, 0, len(graphEdges))
	for _, edge := range graphEdges {
		edges = append(edges, edgeRepr{ID: edge.ID, Strength: edge.Strength})
	}

	data := struct {
		CelebrityID string       `json:"celebrity_id"`
		Members     []memberRepr `json:"members"`
		Edges       []edgeRepr   `json:"edges"`
	}{
		CelebrityID: graph.CelebrityID().String(),
		Members:     members,
		Edges:       edges,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(jsonData)
	return hex.EncodeToString(hash[:]), nil
}

// VersionDiff represents the difference between two snapshot versions
type VersionDiff struct {
	FromVersion int           `json:"from_version"`
	ToVersion   int           `json:"to_version"`
	Structural  bool          `json:"structural"`
	ScoreDelta  int           `json:"score_delta"`
	NodesDiff   CountDiff     `json:"nodes_diff"`
	EdgesDiff   CountDiff     `json:"edges_diff"`
	TimeDiff    time.Duration `json:"time_diff"`
}

// CountDiff represents net movement in a count
type CountDiff struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
}

// RetentionPolicy bounds how much snapshot history is kept and when a
// standing snapshot is considered stale
type RetentionPolicy struct {
	MaxVersions     int           `json:"max_versions"`
	RetentionPeriod time.Duration `json:"retention_period"`
	RebuildAfter    time.Duration `json:"rebuild_after"`
}

// DefaultRetentionPolicy returns the default retention policy
func DefaultRetentionPolicy() RetentionPolicy {
	return RetentionPolicy{
		MaxVersions:     10,
		RetentionPeriod: 30 * 24 * time.Hour,
		RebuildAfter:    24 * time.Hour,
	}
}

// ShouldRebuild reports whether a standing snapshot is stale enough to
// rebuild on a schedule. Explicit rebuild requests bypass this check.
func (p *RetentionPolicy) ShouldRebuild(last *SnapshotVersion, now time.Time) bool {
	if last == nil {
		return true
	}
	return now.Sub(last.BuiltAt) >= p.RebuildAfter
}

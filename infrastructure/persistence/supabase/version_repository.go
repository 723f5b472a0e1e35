package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/domain/versioning"
)

// SnapshotVersionRepository implements ports.SnapshotVersionRepository
// on the snapshot_versions table
type SnapshotVersionRepository struct {
	client *supa.Client
	logger *zap.Logger
}

// NewSnapshotVersionRepository creates a Supabase-backed version history repository
func NewSnapshotVersionRepository(client *supa.Client, logger *zap.Logger) *SnapshotVersionRepository {
	return &SnapshotVersionRepository{
		client: client,
		logger: logger,
	}
}

// versionRow is one snapshot_versions table row. The trigger column is
// named build_trigger because trigger is reserved in Postgres.
type versionRow struct {
	CelebrityID  string    `json:"celebrity_id"`
	Version      int       `json:"version"`
	Checksum     string    `json:"checksum"`
	NodeCount    int       `json:"node_count"`
	EdgeCount    int       `json:"edge_count"`
	PrunedCount  int       `json:"pruned_count"`
	AccessScore  int       `json:"access_score"`
	BuiltAt      time.Time `json:"built_at"`
	BuildTrigger string    `json:"build_trigger"`
}

// SaveVersion appends a version stamp to the history
func (r *SnapshotVersionRepository) SaveVersion(ctx context.Context, version *versioning.SnapshotVersion) error {
	row := versionRow{
		CelebrityID:  version.CelebrityID,
		Version:      version.Version,
		Checksum:     version.Checksum,
		NodeCount:    version.NodeCount,
		EdgeCount:    version.EdgeCount,
		PrunedCount:  version.PrunedCount,
		AccessScore:  version.AccessScore,
		BuiltAt:      version.BuiltAt,
		BuildTrigger: version.Trigger,
	}
	_, _, err := r.client.From(tableSnapshotVersions).
		Insert(row, true, "celebrity_id,version", "minimal", "").
		Execute()
	if err != nil {
		r.logger.Error("Failed to save snapshot version",
			zap.String("celebrityId", version.CelebrityID),
			zap.Int("version", version.Version),
			zap.Error(err))
		return fmt.Errorf("failed to save snapshot version: %w", err)
	}
	return nil
}

// GetLatest retrieves the most recent version stamp for a celebrity,
// nil without error when no history exists
func (r *SnapshotVersionRepository) GetLatest(ctx context.Context, celebrityID valueobjects.CelebrityID) (*versioning.SnapshotVersion, error) {
	history, err := r.GetHistory(ctx, celebrityID, 1)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, nil
	}
	return history[0], nil
}

// GetHistory retrieves version stamps newest first, up to limit
func (r *SnapshotVersionRepository) GetHistory(ctx context.Context, celebrityID valueobjects.CelebrityID, limit int) ([]*versioning.SnapshotVersion, error) {
	data, _, err := r.client.From(tableSnapshotVersions).
		Select("*", "", false).
		Eq("celebrity_id", celebrityID.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to query version history: %w", err)
	}

	var rows []versionRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode version history: %w", err)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Version > rows[j].Version })

	history := make([]*versioning.SnapshotVersion, 0, len(rows))
	for _, row := range rows {
		if limit > 0 && len(history) >= limit {
			break
		}
		history = append(history, rowToVersion(row))
	}
	return history, nil
}

// Prune drops history beyond the retention policy, returning the count
// removed. The newest stamp survives regardless of age.
func (r *SnapshotVersionRepository) Prune(ctx context.Context, celebrityID valueobjects.CelebrityID, policy versioning.RetentionPolicy) (int, error) {
	history, err := r.GetHistory(ctx, celebrityID, 0)
	if err != nil {
		return 0, err
	}
	if len(history) <= 1 {
		return 0, nil
	}

	cutoff := time.Now().Add(-policy.RetentionPeriod)
	removed := 0
	for i, version := range history {
		if i == 0 {
			continue
		}
		withinCount := policy.MaxVersions <= 0 || i < policy.MaxVersions
		withinAge := policy.RetentionPeriod <= 0 || version.BuiltAt.After(cutoff)
		if withinCount && withinAge {
			continue
		}

		_, _, err := r.client.From(tableSnapshotVersions).
			Delete("minimal", "").
			Eq("celebrity_id", celebrityID.String()).
			Eq("version", strconv.Itoa(version.Version)).
			Execute()
		if err != nil {
			return removed, fmt.Errorf("failed to prune version %d: %w", version.Version, err)
		}
		removed++
	}
	return removed, nil
}

func rowToVersion(row versionRow) *versioning.SnapshotVersion {
	return &versioning.SnapshotVersion{
		CelebrityID: row.CelebrityID,
		Version:     row.Version,
		Checksum:    row.Checksum,
		NodeCount:   row.NodeCount,
		EdgeCount:   row.EdgeCount,
		PrunedCount: row.PrunedCount,
		AccessScore: row.AccessScore,
		BuiltAt:     row.BuiltAt,
		Trigger:     row.BuildTrigger,
	}
}

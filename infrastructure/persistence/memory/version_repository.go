package memory

import (
	"context"
	"sync"
	"time"

	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/domain/versioning"
)

// SnapshotVersionRepository keeps rebuild history in memory, oldest first
// per celebrity. The latest stamp is always retained through pruning so
// change detection on the next rebuild has something to compare against.
type SnapshotVersionRepository struct {
	mu       sync.RWMutex
	versions map[string][]*versioning.SnapshotVersion
}

// NewSnapshotVersionRepository creates an empty version history store
func NewSnapshotVersionRepository() *SnapshotVersionRepository {
	return &SnapshotVersionRepository{
		versions: make(map[string][]*versioning.SnapshotVersion),
	}
}

// SaveVersion appends a version stamp to the history
func (r *SnapshotVersionRepository) SaveVersion(ctx context.Context, version *versioning.SnapshotVersion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.versions[version.CelebrityID] = append(r.versions[version.CelebrityID], version)
	return nil
}

// GetLatest retrieves the most recent version stamp, nil without error
// when the celebrity has no history yet
func (r *SnapshotVersionRepository) GetLatest(ctx context.Context, celebrityID valueobjects.CelebrityID) (*versioning.SnapshotVersion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.versions[celebrityID.String()]
	if len(history) == 0 {
		return nil, nil
	}
	return history[len(history)-1], nil
}

// GetHistory retrieves version stamps newest first, up to limit
func (r *SnapshotVersionRepository) GetHistory(ctx context.Context, celebrityID valueobjects.CelebrityID, limit int) ([]*versioning.SnapshotVersion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.versions[celebrityID.String()]
	if limit <= 0 || limit > len(history) {
		limit = len(history)
	}

	result := make([]*versioning.SnapshotVersion, 0, limit)
	for i := len(history) - 1; i >= len(history)-limit; i-- {
		result = append(result, history[i])
	}
	return result, nil
}

// Prune drops history beyond the retention policy, returning the count
// removed. The newest stamp survives regardless of age.
func (r *SnapshotVersionRepository) Prune(ctx context.Context, celebrityID valueobjects.CelebrityID, policy versioning.RetentionPolicy) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := celebrityID.String()
	history := r.versions[key]
	if len(history) <= 1 {
		return 0, nil
	}

	cutoff := time.Now().Add(-policy.RetentionPeriod)
	kept := make([]*versioning.SnapshotVersion, 0, len(history))
	for i, version := range history {
		latest := i == len(history)-1
		withinCount := policy.MaxVersions <= 0 || len(history)-i <= policy.MaxVersions
		withinAge := policy.RetentionPeriod <= 0 || version.BuiltAt.After(cutoff)
		if latest || (withinCount && withinAge) {
			kept = append(kept, version)
		}
	}

	removed := len(history) - len(kept)
	if removed > 0 {
		r.versions[key] = kept
	}
	return removed, nil
}

package memory

import (
	"context"
	"sync"

	"accessengine-backend/application/ports"
	"accessengine-backend/domain/core/valueobjects"
)

// SnapshotRepository is the live snapshot registry. Readers get whatever
// snapshot is current when they ask; Swap replaces the map entry in one
// step under the write lock, so a reader never sees a partially built
// circle.
type SnapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[string]*ports.Snapshot
}

// NewSnapshotRepository creates an empty snapshot registry
func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{
		snapshots: make(map[string]*ports.Snapshot),
	}
}

// Get retrieves the current snapshot for a celebrity
func (r *SnapshotRepository) Get(ctx context.Context, celebrityID valueobjects.CelebrityID) (*ports.Snapshot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, exists := r.snapshots[celebrityID.String()]
	return snapshot, exists
}

// Swap replaces the current snapshot in one atomic step
func (r *SnapshotRepository) Swap(ctx context.Context, snapshot *ports.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[snapshot.Graph.CelebrityID().String()] = snapshot
	return nil
}

// Delete removes the snapshot for a celebrity
func (r *SnapshotRepository) Delete(ctx context.Context, celebrityID valueobjects.CelebrityID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.snapshots, celebrityID.String())
	return nil
}

// CelebrityIDs lists all celebrities with a live snapshot
func (r *SnapshotRepository) CelebrityIDs(ctx context.Context) ([]valueobjects.CelebrityID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]valueobjects.CelebrityID, 0, len(r.snapshots))
	for _, snapshot := range r.snapshots {
		ids = append(ids, snapshot.Graph.CelebrityID())
	}
	return ids, nil
}

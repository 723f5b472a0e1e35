package memory

import (
	"context"
	"sync"

	"accessengine-backend/domain/core/aggregates"
	"accessengine-backend/domain/core/valueobjects"
)

// EdgeRecordRepository stores raw edge records in memory, partitioned by
// celebrity. Records are kept as submitted; merging and validation happen
// during the rebuild.
type EdgeRecordRepository struct {
	mu    sync.RWMutex
	edges map[string][]aggregates.RawEdge
}

// NewEdgeRecordRepository creates an empty in-memory edge repository
func NewEdgeRecordRepository() *EdgeRecordRepository {
	return &EdgeRecordRepository{
		edges: make(map[string][]aggregates.RawEdge),
	}
}

// SaveBatch appends edge records for a celebrity
func (r *EdgeRecordRepository) SaveBatch(ctx context.Context, celebrityID valueobjects.CelebrityID, edges []aggregates.RawEdge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := celebrityID.String()
	r.edges[key] = append(r.edges[key], edges...)
	return nil
}

// GetByCelebrityID retrieves all edge records for a celebrity
func (r *EdgeRecordRepository) GetByCelebrityID(ctx context.Context, celebrityID valueobjects.CelebrityID) ([]aggregates.RawEdge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.edges[celebrityID.String()]
	edges := make([]aggregates.RawEdge, len(stored))
	copy(edges, stored)
	return edges, nil
}

// DeleteByCelebrityID removes all edge records for a celebrity
func (r *EdgeRecordRepository) DeleteByCelebrityID(ctx context.Context, celebrityID valueobjects.CelebrityID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.edges, celebrityID.String())
	return nil
}

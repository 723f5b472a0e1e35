package memory

import (
	"context"
	"sort"
	"sync"

	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	pkgerrors "accessengine-backend/pkg/errors"
)

// OutreachRepository stores outreach drafts in memory
type OutreachRepository struct {
	mu      sync.RWMutex
	records map[string]*entities.Outreach
}

// NewOutreachRepository creates an empty outreach store
func NewOutreachRepository() *OutreachRepository {
	return &OutreachRepository{
		records: make(map[string]*entities.Outreach),
	}
}

// Save persists an outreach record (create or update)
func (r *OutreachRepository) Save(ctx context.Context, outreach *entities.Outreach) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[outreach.ID().String()] = outreach
	return nil
}

// GetByID retrieves an outreach record by its ID
func (r *OutreachRepository) GetByID(ctx context.Context, id valueobjects.OutreachID) (*entities.Outreach, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	outreach, exists := r.records[id.String()]
	if !exists {
		return nil, pkgerrors.ErrOutreachNotFound.Clone().WithDetail("outreach_id", id.String())
	}
	return outreach, nil
}

// GetByCelebrityID retrieves all outreach records for a celebrity, newest first
func (r *OutreachRepository) GetByCelebrityID(ctx context.Context, celebrityID valueobjects.CelebrityID) ([]*entities.Outreach, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Outreach, 0)
	for _, outreach := range r.records {
		if outreach.CelebrityID().Equals(celebrityID) {
			result = append(result, outreach)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

// GetAll retrieves every outreach record, used by the stats rollup
func (r *OutreachRepository) GetAll(ctx context.Context) ([]*entities.Outreach, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Outreach, 0, len(r.records))
	for _, outreach := range r.records {
		result = append(result, outreach)
	}
	sortNewestFirst(result)
	return result, nil
}

// Delete removes an outreach record, used by saga compensation
func (r *OutreachRepository) Delete(ctx context.Context, id valueobjects.OutreachID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id.String()]; !exists {
		return pkgerrors.ErrOutreachNotFound.Clone().WithDetail("outreach_id", id.String())
	}
	delete(r.records, id.String())
	return nil
}

// sortNewestFirst orders drafts by creation time descending, breaking
// ties on ID so listings are stable across calls
func sortNewestFirst(records []*entities.Outreach) {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt().Equal(records[j].CreatedAt()) {
			return records[i].CreatedAt().After(records[j].CreatedAt())
		}
		return records[i].ID().String() < records[j].ID().String()
	})
}

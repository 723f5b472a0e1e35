// Package memory provides the in-process persistence adapters. They are
// the default driver for local development and the integration suite,
// and they back the Lambda handlers' warm caches.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"accessengine-backend/application/ports"
	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	pkgerrors "accessengine-backend/pkg/errors"
)

// CelebrityRepository stores celebrities in memory
type CelebrityRepository struct {
	mu          sync.RWMutex
	celebrities map[string]*entities.Celebrity
}

// NewCelebrityRepository creates an empty in-memory celebrity repository
func NewCelebrityRepository() *CelebrityRepository {
	return &CelebrityRepository{
		celebrities: make(map[string]*entities.Celebrity),
	}
}

// Save persists a celebrity
func (r *CelebrityRepository) Save(ctx context.Context, celebrity *entities.Celebrity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.celebrities[celebrity.ID().String()] = celebrity
	return nil
}

// GetByID retrieves a celebrity by its ID
func (r *CelebrityRepository) GetByID(ctx context.Context, id valueobjects.CelebrityID) (*entities.Celebrity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	celebrity, exists := r.celebrities[id.String()]
	if !exists {
		return nil, pkgerrors.ErrCelebrityNotFound.Clone().WithDetail("celebrity_id", id.String())
	}
	return celebrity, nil
}

// GetAll retrieves the full roster sorted by name
func (r *CelebrityRepository) GetAll(ctx context.Context) ([]*entities.Celebrity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roster := make([]*entities.Celebrity, 0, len(r.celebrities))
	for _, celebrity := range r.celebrities {
		roster = append(roster, celebrity)
	}
	sort.Slice(roster, func(i, j int) bool {
		return strings.ToLower(roster[i].Name()) < strings.ToLower(roster[j].Name())
	})
	return roster, nil
}

// Search finds celebrities matching the given criteria
func (r *CelebrityRepository) Search(ctx context.Context, criteria ports.CelebritySearchCriteria) ([]*entities.Celebrity, error) {
	roster, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entities.Celebrity, 0, len(roster))
	for _, celebrity := range roster {
		if criteria.Query != "" && !celebrity.MatchesQuery(criteria.Query) {
			continue
		}
		if criteria.Category != "" && celebrity.Category().String() != criteria.Category {
			continue
		}
		matched = append(matched, celebrity)
	}

	sortRoster(matched, criteria.OrderBy, criteria.OrderDesc)

	if criteria.Offset > 0 {
		if criteria.Offset >= len(matched) {
			return []*entities.Celebrity{}, nil
		}
		matched = matched[criteria.Offset:]
	}
	if criteria.Limit > 0 && criteria.Limit < len(matched) {
		matched = matched[:criteria.Limit]
	}

	return matched, nil
}

// Delete removes a celebrity
func (r *CelebrityRepository) Delete(ctx context.Context, id valueobjects.CelebrityID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.celebrities[id.String()]; !exists {
		return pkgerrors.ErrCelebrityNotFound.Clone().WithDetail("celebrity_id", id.String())
	}
	delete(r.celebrities, id.String())
	return nil
}

// BulkSave saves multiple celebrities in one batch
func (r *CelebrityRepository) BulkSave(ctx context.Context, celebrities []*entities.Celebrity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, celebrity := range celebrities {
		r.celebrities[celebrity.ID().String()] = celebrity
	}
	return nil
}

func sortRoster(roster []*entities.Celebrity, orderBy string, desc bool) {
	less := func(i, j int) bool {
		return strings.ToLower(roster[i].Name()) < strings.ToLower(roster[j].Name())
	}
	if orderBy == "access_score" {
		less = func(i, j int) bool {
			if roster[i].AccessScore() != roster[j].AccessScore() {
				return roster[i].AccessScore() < roster[j].AccessScore()
			}
			return strings.ToLower(roster[i].Name()) < strings.ToLower(roster[j].Name())
		}
	}
	if desc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(roster, less)
}

package memory

import (
	"context"
	"sort"
	"sync"

	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	pkgerrors "accessengine-backend/pkg/errors"
)

// PersonRepository stores circle members in memory, partitioned by
// celebrity
type PersonRepository struct {
	mu      sync.RWMutex
	circles map[string]map[string]*entities.Person
}

// NewPersonRepository creates an empty in-memory person repository
func NewPersonRepository() *PersonRepository {
	return &PersonRepository{
		circles: make(map[string]map[string]*entities.Person),
	}
}

// Save persists a person
func (r *PersonRepository) Save(ctx context.Context, person *entities.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store(person)
	return nil
}

// GetByID retrieves one member of a celebrity's circle
func (r *PersonRepository) GetByID(ctx context.Context, celebrityID valueobjects.CelebrityID, id valueobjects.NodeID) (*entities.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	circle, exists := r.circles[celebrityID.String()]
	if !exists {
		return nil, pkgerrors.ErrPersonNotFound.Clone().WithDetail("node_id", id.String())
	}
	person, exists := circle[id.String()]
	if !exists {
		return nil, pkgerrors.ErrPersonNotFound.Clone().WithDetail("node_id", id.String())
	}
	return person, nil
}

// GetByCelebrityID retrieves every member of a celebrity's circle,
// sorted by node ID for deterministic rebuild input
func (r *PersonRepository) GetByCelebrityID(ctx context.Context, celebrityID valueobjects.CelebrityID) ([]*entities.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	circle := r.circles[celebrityID.String()]
	people := make([]*entities.Person, 0, len(circle))
	for _, person := range circle {
		people = append(people, person)
	}
	sort.Slice(people, func(i, j int) bool {
		return people[i].ID().String() < people[j].ID().String()
	})
	return people, nil
}

// Delete removes a member from a celebrity's circle
func (r *PersonRepository) Delete(ctx context.Context, celebrityID valueobjects.CelebrityID, id valueobjects.NodeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	circle, exists := r.circles[celebrityID.String()]
	if !exists {
		return pkgerrors.ErrPersonNotFound.Clone().WithDetail("node_id", id.String())
	}
	if _, exists := circle[id.String()]; !exists {
		return pkgerrors.ErrPersonNotFound.Clone().WithDetail("node_id", id.String())
	}
	delete(circle, id.String())
	return nil
}

// BulkSave saves multiple people in one batch
func (r *PersonRepository) BulkSave(ctx context.Context, people []*entities.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, person := range people {
		r.store(person)
	}
	return nil
}

func (r *PersonRepository) store(person *entities.Person) {
	key := person.CelebrityID().String()
	circle, exists := r.circles[key]
	if !exists {
		circle = make(map[string]*entities.Person)
		r.circles[key] = circle
	}
	circle[person.ID().String()] = person
}

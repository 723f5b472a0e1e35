package handlers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"accessengine-backend/application/services"
	"accessengine-backend/domain/core/aggregates"
	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/domain/events"
	"accessengine-backend/infrastructure/persistence/memory"
	"accessengine-backend/pkg/extensions"
)

type eventRecorder struct {
	mu       sync.Mutex
	recorded []events.DomainEvent
}

func (r *eventRecorder) Handle(_ context.Context, event events.DomainEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recorded = append(r.recorded, event)
	return nil
}

func (r *eventRecorder) CanHandle(string) bool { return true }

func (r *eventRecorder) byType(eventType string) []events.DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []events.DomainEvent
	for _, e := range r.recorded {
		if e.GetEventType() == eventType {
			matched = append(matched, e)
		}
	}
	return matched
}

// handlerFixture wires the command handlers against memory persistence and
// a real snapshot service, the same shape the DI container produces
type handlerFixture struct {
	celebrities  *memory.CelebrityRepository
	people       *memory.PersonRepository
	edges        *memory.EdgeRecordRepository
	outreach     *memory.OutreachRepository
	snapshotRepo *memory.SnapshotRepository
	versions     *memory.SnapshotVersionRepository
	snapshots    *services.SnapshotService
	bus          *memory.EventBus
	recorder     *eventRecorder
	hooks        *extensions.HookManager
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	f := &handlerFixture{
		celebrities:  memory.NewCelebrityRepository(),
		people:       memory.NewPersonRepository(),
		edges:        memory.NewEdgeRecordRepository(),
		outreach:     memory.NewOutreachRepository(),
		snapshotRepo: memory.NewSnapshotRepository(),
		versions:     memory.NewSnapshotVersionRepository(),
		recorder:     &eventRecorder{},
		hooks:        extensions.NewHookManager(),
	}

	f.bus = memory.NewEventBus(zap.NewNop())
	for _, eventType := range []string{
		events.EventTypePersonAdded,
		events.EventTypeRebuildRequested,
		events.EventTypeCircleRebuilt,
		events.EventTypeOutreachDrafted,
		events.EventTypeOutreachStatusChanged,
	} {
		require.NoError(t, f.bus.Subscribe(eventType, f.recorder))
	}

	f.snapshots = services.NewSnapshotService(
		f.celebrities, f.people, f.edges,
		f.snapshotRepo, f.versions,
		f.bus, nil, memory.NewRebuildLock(zap.NewNop()),
		f.hooks, nil, zap.NewNop(),
	)
	return f
}

func (f *handlerFixture) seedCelebrity(t *testing.T, name string) *entities.Celebrity {
	t.Helper()

	celebrity, err := entities.NewCelebrity(name, valueobjects.CategoryMusic,
		"Stadium tours on three continents", "@"+name, "Tree Paine")
	require.NoError(t, err)
	require.NoError(t, f.celebrities.Save(context.Background(), celebrity))
	return celebrity
}

func (f *handlerFixture) seedMember(t *testing.T, celebrityID valueobjects.CelebrityID, name, tag string, strength int) *entities.Person {
	t.Helper()
	ctx := context.Background()

	profile, err := valueobjects.NewPersonProfile("Role of "+name, "Long-running working relationship")
	require.NoError(t, err)
	parsedTag, err := valueobjects.ParseRelationshipTag(tag)
	require.NoError(t, err)
	channel, err := valueobjects.NewContactChannel(valueobjects.ChannelEmail, name+"@example.com", true)
	require.NoError(t, err)

	person, err := entities.NewPerson(celebrityID, name, parsedTag, profile,
		[]valueobjects.ContactChannel{channel},
		valueobjects.NewRawSignals(strength, 12, 30, time.Now().AddDate(0, 0, -5)))
	require.NoError(t, err)
	require.NoError(t, f.people.Save(ctx, person))

	require.NoError(t, f.edges.SaveBatch(ctx, celebrityID, []aggregates.RawEdge{{
		SourceKey: celebrityID.String(),
		TargetKey: person.ID().String(),
		Strength:  strength,
	}}))
	return person
}

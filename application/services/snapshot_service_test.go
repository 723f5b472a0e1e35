package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"accessengine-backend/application/ports"
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

type snapshotFixture struct {
	service     *SnapshotService
	celebrities *memory.CelebrityRepository
	people      *memory.PersonRepository
	edges       *memory.EdgeRecordRepository
	snapshots   *memory.SnapshotRepository
	versions    *memory.SnapshotVersionRepository
	recorder    *eventRecorder
	hooks       *extensions.HookManager
}

func newSnapshotFixture(t *testing.T) *snapshotFixture {
	t.Helper()

	f := &snapshotFixture{
		celebrities: memory.NewCelebrityRepository(),
		people:      memory.NewPersonRepository(),
		edges:       memory.NewEdgeRecordRepository(),
		snapshots:   memory.NewSnapshotRepository(),
		versions:    memory.NewSnapshotVersionRepository(),
		recorder:    &eventRecorder{},
		hooks:       extensions.NewHookManager(),
	}

	bus := memory.NewEventBus(zap.NewNop())
	require.NoError(t, bus.Subscribe(events.EventTypeCircleRebuilt, f.recorder))
	require.NoError(t, bus.Subscribe(events.EventTypeCircleRebuildFailed, f.recorder))

	f.service = NewSnapshotService(
		f.celebrities, f.people, f.edges,
		f.snapshots, f.versions,
		bus, nil, memory.NewRebuildLock(zap.NewNop()),
		f.hooks, nil, zap.NewNop(),
	)
	return f
}

func (f *snapshotFixture) seedCircle(t *testing.T) valueobjects.CelebrityID {
	t.Helper()
	ctx := context.Background()

	celebrity, err := entities.NewCelebrity("MrBeast", valueobjects.CategoryTech,
		"Largest creator on the platform", "@MrBeast", "Reed Duchscher")
	require.NoError(t, err)
	require.NoError(t, f.celebrities.Save(ctx, celebrity))

	id := celebrity.ID()
	f.seedMember(t, id, "manager", "Reed Duchscher", "manager", 95)
	f.seedMember(t, id, "editor", "Tyler Conklin", "collaborator", 70)

	return id
}

func (f *snapshotFixture) seedMember(t *testing.T, celebrityID valueobjects.CelebrityID, key, name, tag string, strength int) {
	t.Helper()
	ctx := context.Background()

	profile, err := valueobjects.NewPersonProfile("Role of "+name, "Works with the celebrity weekly")
	require.NoError(t, err)
	parsedTag, err := valueobjects.ParseRelationshipTag(tag)
	require.NoError(t, err)
	channel, err := valueobjects.NewContactChannel(valueobjects.ChannelEmail, key+"@example.com", true)
	require.NoError(t, err)

	person, err := entities.NewPerson(celebrityID, name, parsedTag, profile,
		[]valueobjects.ContactChannel{channel},
		valueobjects.NewRawSignals(strength, 10, 24, time.Now().AddDate(0, 0, -7)))
	require.NoError(t, err)
	require.NoError(t, f.people.Save(ctx, person))

	require.NoError(t, f.edges.SaveBatch(ctx, celebrityID, []aggregates.RawEdge{
		{SourceKey: celebrityID.String(), TargetKey: person.ID().String(), Strength: strength},
	}))
}

func TestSnapshotServiceRebuild(t *testing.T) {
	ctx := context.Background()
	f := newSnapshotFixture(t)
	celebrityID := f.seedCircle(t)

	result, err := f.service.Rebuild(ctx, celebrityID, TriggerManual)
	require.NoError(t, err)

	assert.Equal(t, celebrityID.String(), result.CelebrityID)
	assert.Equal(t, 1, result.Version)
	assert.Equal(t, 2, result.NodeCount)
	assert.Equal(t, 2, result.EdgeCount)
	assert.Zero(t, result.PrunedCount)
	assert.NotEmpty(t, result.Checksum)
	assert.False(t, result.Unchanged)
	assert.GreaterOrEqual(t, result.AccessScore, 10)
	assert.LessOrEqual(t, result.AccessScore, 99)

	t.Run("swaps the snapshot live", func(t *testing.T) {
		snapshot, ok := f.service.Snapshot(ctx, celebrityID)
		require.True(t, ok)
		assert.Equal(t, 2, snapshot.Graph.NodeCount())
		assert.Len(t, snapshot.Scores, 2)
		assert.Equal(t, 1, snapshot.Version.Version)
	})

	t.Run("persists the version stamp", func(t *testing.T) {
		latest, err := f.versions.GetLatest(ctx, celebrityID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, result.Checksum, latest.Checksum)
		assert.Equal(t, TriggerManual, latest.Trigger)
	})

	t.Run("persists the access score on the roster", func(t *testing.T) {
		celebrity, err := f.celebrities.GetByID(ctx, celebrityID)
		require.NoError(t, err)
		assert.Equal(t, result.AccessScore, celebrity.AccessScore())
	})

	t.Run("publishes the rebuilt event", func(t *testing.T) {
		rebuilt := f.recorder.byType(events.EventTypeCircleRebuilt)
		require.Len(t, rebuilt, 1)
		event, ok := rebuilt[0].(events.CircleRebuilt)
		require.True(t, ok)
		assert.Equal(t, 1, event.SnapshotVersion)
		assert.Equal(t, result.AccessScore, event.AccessScore)
	})

	t.Run("identical records rebuild as unchanged", func(t *testing.T) {
		second, err := f.service.Rebuild(ctx, celebrityID, TriggerScheduled)
		require.NoError(t, err)
		assert.Equal(t, 2, second.Version)
		assert.True(t, second.Unchanged)
		assert.Equal(t, result.Checksum, second.Checksum)
	})

	t.Run("a new member changes the checksum", func(t *testing.T) {
		f.seedMember(t, celebrityID, "publicist", "Dana Marshall", "publicist", 60)

		third, err := f.service.Rebuild(ctx, celebrityID, TriggerMemberAdded)
		require.NoError(t, err)
		assert.Equal(t, 3, third.Version)
		assert.False(t, third.Unchanged)
		assert.Equal(t, 3, third.NodeCount)
		assert.NotEqual(t, result.Checksum, third.Checksum)
	})
}

func TestSnapshotServiceRebuildUnknownCelebrity(t *testing.T) {
	ctx := context.Background()
	f := newSnapshotFixture(t)

	missing := valueobjects.NewCelebrityID()
	_, err := f.service.Rebuild(ctx, missing, TriggerManual)
	require.Error(t, err)

	_, ok := f.service.Snapshot(ctx, missing)
	assert.False(t, ok, "a failed rebuild must not install a snapshot")

	failed := f.recorder.byType(events.EventTypeCircleRebuildFailed)
	require.Len(t, failed, 1)
}

func TestSnapshotServiceBeforeRebuildVeto(t *testing.T) {
	ctx := context.Background()
	f := newSnapshotFixture(t)
	celebrityID := f.seedCircle(t)

	f.hooks.Register(extensions.HookBeforeRebuild, func(context.Context, interface{}) error {
		return errors.New("maintenance window")
	})

	_, err := f.service.Rebuild(ctx, celebrityID, TriggerManual)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maintenance window")

	_, ok := f.service.Snapshot(ctx, celebrityID)
	assert.False(t, ok)
}

func TestEnsureSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newSnapshotFixture(t)
	celebrityID := f.seedCircle(t)

	snapshot, err := f.service.EnsureSnapshot(ctx, celebrityID)
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Version.Version)

	again, err := f.service.EnsureSnapshot(ctx, celebrityID)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Version.Version, "a live snapshot is served without rebuilding")
}

type failingPersonRepo struct {
	ports.PersonRepository
	failFor string
}

func (f *failingPersonRepo) GetByCelebrityID(ctx context.Context, id valueobjects.CelebrityID) ([]*entities.Person, error) {
	if id.String() == f.failFor {
		return nil, errors.New("records unavailable")
	}
	return f.PersonRepository.GetByCelebrityID(ctx, id)
}

func TestRebuildAllContinuesPastFailures(t *testing.T) {
	ctx := context.Background()
	f := newSnapshotFixture(t)

	healthyID := f.seedCircle(t)

	broken, err := entities.NewCelebrity("Taylor Swift", valueobjects.CategoryMusic,
		"Most awarded artist of her generation", "@taylorswift13", "")
	require.NoError(t, err)
	require.NoError(t, f.celebrities.Save(ctx, broken))

	service := NewSnapshotService(
		f.celebrities,
		&failingPersonRepo{PersonRepository: f.people, failFor: broken.ID().String()},
		f.edges, f.snapshots, f.versions,
		memory.NewEventBus(zap.NewNop()), nil, nil, nil, nil, zap.NewNop(),
	)

	results, err := service.RebuildAll(ctx, TriggerScheduled)
	require.NoError(t, err)
	require.Len(t, results, 1, "the healthy circle still rebuilds")
	assert.Equal(t, healthyID.String(), results[0].CelebrityID)

	_, ok := f.snapshots.Get(ctx, broken.ID())
	assert.False(t, ok)
}

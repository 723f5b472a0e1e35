package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appservices "accessengine-backend/application/services"
	"accessengine-backend/domain/core/aggregates"
	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/infrastructure/persistence/memory"
)

// queryFixture backs the read-side handlers with memory persistence and a
// real snapshot pipeline, so view payloads come from genuinely scored graphs
type queryFixture struct {
	celebrities  *memory.CelebrityRepository
	people       *memory.PersonRepository
	edges        *memory.EdgeRecordRepository
	outreach     *memory.OutreachRepository
	snapshotRepo *memory.SnapshotRepository
	snapshots    *appservices.SnapshotService
}

func newQueryFixture(t *testing.T) *queryFixture {
	t.Helper()

	f := &queryFixture{
		celebrities:  memory.NewCelebrityRepository(),
		people:       memory.NewPersonRepository(),
		edges:        memory.NewEdgeRecordRepository(),
		outreach:     memory.NewOutreachRepository(),
		snapshotRepo: memory.NewSnapshotRepository(),
	}
	f.snapshots = appservices.NewSnapshotService(
		f.celebrities, f.people, f.edges,
		f.snapshotRepo, memory.NewSnapshotVersionRepository(),
		memory.NewEventBus(zap.NewNop()), nil, nil,
		nil, nil, zap.NewNop(),
	)
	return f
}

func (f *queryFixture) seedCelebrity(t *testing.T, name string, category valueobjects.Category) *entities.Celebrity {
	t.Helper()

	celebrity, err := entities.NewCelebrity(name, category,
		"Public figure with a tight inner circle", "@"+name, "")
	require.NoError(t, err)
	require.NoError(t, f.celebrities.Save(context.Background(), celebrity))
	return celebrity
}

type memberSpec struct {
	name     string
	tag      string
	strength int
	// via anchors the member to another member instead of the root
	via *entities.Person
	// noChannel seeds the member without any contact channel
	noChannel bool
}

func (f *queryFixture) seedMember(t *testing.T, celebrityID valueobjects.CelebrityID, spec memberSpec) *entities.Person {
	t.Helper()
	ctx := context.Background()

	profile, err := valueobjects.NewPersonProfile("Role of "+spec.name, "Worked together for years")
	require.NoError(t, err)
	tag, err := valueobjects.ParseRelationshipTag(spec.tag)
	require.NoError(t, err)

	var channels []valueobjects.ContactChannel
	if !spec.noChannel {
		channel, err := valueobjects.NewContactChannel(valueobjects.ChannelEmail, spec.name+"@example.com", true)
		require.NoError(t, err)
		channels = append(channels, channel)
	}

	person, err := entities.NewPerson(celebrityID, spec.name, tag, profile, channels,
		valueobjects.NewRawSignals(spec.strength, 10, 25, time.Now().AddDate(0, 0, -6)))
	require.NoError(t, err)
	require.NoError(t, f.people.Save(ctx, person))

	source := celebrityID.String()
	if spec.via != nil {
		source = spec.via.ID().String()
	}
	require.NoError(t, f.edges.SaveBatch(ctx, celebrityID, []aggregates.RawEdge{{
		SourceKey: source,
		TargetKey: person.ID().String(),
		Strength:  spec.strength,
	}}))
	return person
}

func (f *queryFixture) rebuild(t *testing.T, celebrityID valueobjects.CelebrityID) {
	t.Helper()
	_, err := f.snapshots.Rebuild(context.Background(), celebrityID, appservices.TriggerManual)
	require.NoError(t, err)
}

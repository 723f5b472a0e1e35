package sagas

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"accessengine-backend/application/ports"
	"accessengine-backend/application/queries"
	"accessengine-backend/domain/core/aggregates"
	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/domain/events"
	"accessengine-backend/infrastructure/persistence/memory"
	pkgerrors "accessengine-backend/pkg/errors"
)

// stubGenerator answers with canned briefs and records the message
// requests it saw. Any configured error is returned instead.
type stubGenerator struct {
	mu          sync.Mutex
	drafted     []ports.MessageRequest
	leverageErr error
	messageErr  error
	strategyErr error
}

func (g *stubGenerator) GenerateLeverage(_ context.Context, _ ports.LeverageRequest) (*ports.LeverageSummary, error) {
	if g.leverageErr != nil {
		return nil, g.leverageErr
	}
	return &ports.LeverageSummary{
		ValueProp:     "A documentary partnership with distribution attached",
		EgoHook:       "Their longest-tenured collaborators keep coming back",
		CuriosityHook: "The one tour story nobody has filmed",
		SubjectLine:   "A film about the inner circle",
	}, nil
}

func (g *stubGenerator) DraftOutreachMessage(_ context.Context, req ports.MessageRequest) (*ports.DraftMessage, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.messageErr != nil {
		return nil, g.messageErr
	}
	g.drafted = append(g.drafted, req)
	return &ports.DraftMessage{
		Message:     "Hi " + req.TargetName + ", quick note about " + req.CelebrityName + ".",
		SubjectLine: "Quick note for " + req.TargetName,
		WordCount:   9,
		Hop:         req.Hop,
		TargetName:  req.TargetName,
	}, nil
}

func (g *stubGenerator) GenerateStrategy(_ context.Context, _ ports.StrategyRequest) (string, error) {
	if g.strategyErr != nil {
		return "", g.strategyErr
	}
	return "Open through the publicist and let the label follow.", nil
}

func (g *stubGenerator) requests() []ports.MessageRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]ports.MessageRequest, len(g.drafted))
	copy(out, g.drafted)
	return out
}

type eventLog struct {
	mu       sync.Mutex
	recorded []events.DomainEvent
}

func (l *eventLog) Handle(_ context.Context, event events.DomainEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.recorded = append(l.recorded, event)
	return nil
}

func (l *eventLog) CanHandle(string) bool { return true }

func (l *eventLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.recorded)
}

// packageFixture holds one celebrity, their built snapshot, and the
// chain the saga should draft along
type packageFixture struct {
	celebrity *entities.Celebrity
	members   []*entities.Person
	snapshot  *ports.Snapshot
	paths     *queries.BestPathResult
	outreach  *memory.OutreachRepository
	bus       *memory.EventBus
	drafts    *eventLog
}

func newMember(t *testing.T, celebrityID valueobjects.CelebrityID, name, tag string, contactable bool) *entities.Person {
	t.Helper()

	profile, err := valueobjects.NewPersonProfile("Role of "+name, "Worked together for a decade")
	require.NoError(t, err)
	parsedTag, err := valueobjects.ParseRelationshipTag(tag)
	require.NoError(t, err)

	var channels []valueobjects.ContactChannel
	if contactable {
		channel, err := valueobjects.NewContactChannel(valueobjects.ChannelEmail, name+"@example.com", true)
		require.NoError(t, err)
		channels = append(channels, channel)
	}

	person, err := entities.NewPerson(celebrityID, name, parsedTag, profile, channels,
		valueobjects.NewRawSignals(80, 15, 20, time.Now().AddDate(0, 0, -3)))
	require.NoError(t, err)
	return person
}

// newPackageFixture models a three-member chain: every member anchors to
// the root and the declared chain walks them in order.
func newPackageFixture(t *testing.T, contactable ...bool) *packageFixture {
	t.Helper()

	celebrity, err := entities.NewCelebrity("Taylor Swift", valueobjects.CategoryMusic,
		"Stadium tours on three continents", "@taylorswift13", "")
	require.NoError(t, err)
	require.NoError(t, celebrity.SetAccessScore(72))
	celebrity.MarkEventsAsCommitted()

	names := []string{"Tree Paine", "Jack Antonoff", "Aaron Dessner"}
	tags := []string{"publicist", "collaborator", "collaborator"}

	f := &packageFixture{
		celebrity: celebrity,
		outreach:  memory.NewOutreachRepository(),
		drafts:    &eventLog{},
	}
	f.bus = memory.NewEventBus(zap.NewNop())
	require.NoError(t, f.bus.Subscribe(events.EventTypeOutreachDrafted, f.drafts))

	raw := make([]aggregates.RawMember, 0, len(contactable))
	edges := make([]aggregates.RawEdge, 0, len(contactable))
	steps := make([]queries.PathStep, 0, len(contactable))
	for i, withChannel := range contactable {
		member := newMember(t, celebrity.ID(), names[i], tags[i], withChannel)
		f.members = append(f.members, member)
		raw = append(raw, aggregates.RawMember{Key: member.ID().String(), Person: member})
		edges = append(edges, aggregates.RawEdge{
			SourceKey: celebrity.ID().String(),
			TargetKey: member.ID().String(),
			Strength:  80,
		})
		steps = append(steps, queries.PathStep{
			NodeID:    member.ID().String(),
			Name:      member.Name(),
			Role:      member.Profile().Role(),
			Tag:       member.Tag().String(),
			Hop:       i + 1,
			WarmScore: 80,
			WhyWarm:   "Worked together for a decade",
		})
	}

	graph, err := aggregates.BuildCircleGraph(aggregates.BuildInput{
		CelebrityID:  celebrity.ID(),
		CelebrityKey: celebrity.ID().String(),
		Members:      raw,
		Edges:        edges,
	})
	require.NoError(t, err)

	f.snapshot = &ports.Snapshot{Graph: graph}
	f.paths = &queries.BestPathResult{
		CelebrityID: celebrity.ID().String(),
		Viable:      len(steps) > 0,
		Paths:       []queries.RankedPath{{Steps: steps, TotalHops: len(steps) + 1}},
	}
	if len(steps) > 0 {
		f.paths.EntryPoint = &steps[0]
	}
	return f
}

func (f *packageFixture) saga(generator ports.MessageGenerator) *IntelligenceSaga {
	return NewIntelligenceSaga(generator, f.outreach, f.bus, zap.NewNop())
}

func TestIntelligenceSagaAssemble(t *testing.T) {
	ctx := context.Background()
	request := IntelligenceRequest{
		SenderName:       "Dana Whitfield",
		SenderBackground: "Documentary producer with two festival premieres",
		Ask:              "a short documentary interview",
	}

	t.Run("assembles the full package along the best chain", func(t *testing.T) {
		f := newPackageFixture(t, true, true, true)
		generator := &stubGenerator{}

		pkg, err := f.saga(generator).Assemble(ctx, f.celebrity, f.snapshot, f.paths, request)
		require.NoError(t, err)

		require.NotNil(t, pkg.Leverage)
		assert.Equal(t, "A documentary partnership with distribution attached", pkg.Leverage.ValueProp)
		assert.Equal(t, "Open through the publicist and let the label follow.", pkg.Strategy)

		// Three chain positions, but only the first two get messages.
		require.Len(t, pkg.OutreachMessages, 2)
		require.Len(t, pkg.OutreachIDs, 2)

		requests := generator.requests()
		require.Len(t, requests, 2)
		assert.Equal(t, "Tree Paine", requests[0].TargetName)
		assert.Equal(t, "publicist", requests[0].Relationship)
		assert.Equal(t, pkg.Leverage.ValueProp, requests[0].ValueProp)
		assert.Equal(t, valueobjects.HopFirst, requests[0].Hop)
		assert.Equal(t, valueobjects.HopSecond, requests[1].Hop)

		stored, err := f.outreach.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 2)
		for _, draft := range stored {
			assert.Equal(t, "draft", draft.Status().String())
			assert.Equal(t, pkg.Leverage.ValueProp, draft.ValueProp())
		}

		assert.Equal(t, 2, f.drafts.count())
	})

	t.Run("members without a channel are briefed but not stored", func(t *testing.T) {
		f := newPackageFixture(t, true, false)
		generator := &stubGenerator{}

		pkg, err := f.saga(generator).Assemble(ctx, f.celebrity, f.snapshot, f.paths, request)
		require.NoError(t, err)

		assert.Len(t, pkg.OutreachMessages, 2)
		require.Len(t, pkg.OutreachIDs, 1)

		stored, err := f.outreach.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "Tree Paine", stored[0].RecipientName())
	})

	t.Run("a failed strategy rolls back stored drafts", func(t *testing.T) {
		f := newPackageFixture(t, true, true)
		generator := &stubGenerator{strategyErr: pkgerrors.ErrGenerationUnavailable}

		_, err := f.saga(generator).Assemble(ctx, f.celebrity, f.snapshot, f.paths, request)
		require.Error(t, err)
		assert.ErrorIs(t, err, pkgerrors.ErrGenerationUnavailable)

		stored, err := f.outreach.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, stored)
		assert.Zero(t, f.drafts.count())
	})

	t.Run("a failed leverage stops before anything is written", func(t *testing.T) {
		f := newPackageFixture(t, true, true)
		generator := &stubGenerator{leverageErr: pkgerrors.ErrGenerationUnavailable}

		_, err := f.saga(generator).Assemble(ctx, f.celebrity, f.snapshot, f.paths, request)
		require.Error(t, err)
		assert.ErrorIs(t, err, pkgerrors.ErrGenerationUnavailable)

		assert.Empty(t, generator.requests())
		stored, err := f.outreach.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("an unviable path still briefs leverage and strategy", func(t *testing.T) {
		f := newPackageFixture(t)
		generator := &stubGenerator{}

		pkg, err := f.saga(generator).Assemble(ctx, f.celebrity, f.snapshot, f.paths, request)
		require.NoError(t, err)

		assert.NotNil(t, pkg.Leverage)
		assert.NotEmpty(t, pkg.Strategy)
		assert.Empty(t, pkg.OutreachMessages)
		assert.Empty(t, pkg.OutreachIDs)
		assert.Empty(t, generator.requests())
	})
}

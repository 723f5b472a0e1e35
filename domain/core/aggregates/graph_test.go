package aggregates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
)

func buildMember(t *testing.T, celebrityID valueobjects.CelebrityID, key, name, tag string) RawMember {
	t.Helper()

	profile, err := valueobjects.NewPersonProfile("Role for "+name, "")
	require.NoError(t, err)
	parsedTag, err := valueobjects.ParseRelationshipTag(tag)
	require.NoError(t, err)

	channel, err := valueobjects.NewContactChannel(valueobjects.ChannelEmail, key+"@example.com", false)
	require.NoError(t, err)

	person, err := entities.NewPerson(celebrityID, name, parsedTag, profile,
		[]valueobjects.ContactChannel{channel},
		valueobjects.NewRawSignals(50, 1, 1, time.Time{}))
	require.NoError(t, err)

	return RawMember{Key: key, Person: person}
}

func warningCodes(warnings []BuildWarning) []WarningCode {
	codes := make([]WarningCode, 0, len(warnings))
	for _, w := range warnings {
		codes = append(codes, w.Code)
	}
	return codes
}

func TestBuildCircleGraph(t *testing.T) {
	celebrityID := valueobjects.NewCelebrityID()

	t.Run("builds clean input without warnings", func(t *testing.T) {
		reed := buildMember(t, celebrityID, "reed", "Reed Duchscher", "manager")
		tyler := buildMember(t, celebrityID, "tyler", "Tyler Conklin", "collaborator")

		graph, err := BuildCircleGraph(BuildInput{
			CelebrityID:  celebrityID,
			CelebrityKey: "mrbeast",
			Members:      []RawMember{reed, tyler},
			Edges: []RawEdge{
				{SourceKey: "mrbeast", TargetKey: "reed", Strength: 95},
				{SourceKey: "reed", TargetKey: "tyler", Strength: 60},
			},
		})

		require.NoError(t, err)
		assert.Empty(t, graph.Warnings())
		assert.Equal(t, 2, graph.NodeCount())
		assert.Equal(t, 2, graph.EdgeCount())
		assert.Zero(t, graph.PrunedCount())
		assert.NoError(t, graph.Validate())

		rootHops, ok := graph.HopDistance(graph.RootID())
		require.True(t, ok)
		assert.Equal(t, 0, rootHops)

		reedHops, ok := graph.HopDistance(reed.Person.ID())
		require.True(t, ok)
		assert.Equal(t, 1, reedHops)

		tylerHops, ok := graph.HopDistance(tyler.Person.ID())
		require.True(t, ok)
		assert.Equal(t, 2, tylerHops)

		assert.False(t, graph.BuiltAt().IsZero())
	})

	t.Run("drops edge with unknown endpoint and warns", func(t *testing.T) {
		reed := buildMember(t, celebrityID, "reed", "Reed Duchscher", "manager")

		graph, err := BuildCircleGraph(BuildInput{
			CelebrityID:  celebrityID,
			CelebrityKey: "mrbeast",
			Members:      []RawMember{reed},
			Edges: []RawEdge{
				{SourceKey: "mrbeast", TargetKey: "reed", Strength: 95},
				{SourceKey: "mrbeast", TargetKey: "ghost", Strength: 80},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, graph.EdgeCount())
		assert.Contains(t, warningCodes(graph.Warnings()), WarnUnknownEndpoint)
	})

	t.Run("drops self loop and warns", func(t *testing.T) {
		reed := buildMember(t, celebrityID, "reed", "Reed Duchscher", "manager")

		graph, err := BuildCircleGraph(BuildInput{
			CelebrityID:  celebrityID,
			CelebrityKey: "mrbeast",
			Members:      []RawMember{reed},
			Edges: []RawEdge{
				{SourceKey: "mrbeast", TargetKey: "reed", Strength: 95},
				{SourceKey: "reed", TargetKey: "reed", Strength: 50},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, graph.EdgeCount())
		assert.Contains(t, warningCodes(graph.Warnings()), WarnSelfLoop)
	})

	t.Run("merges duplicate edges keeping the stronger record", func(t *testing.T) {
		reed := buildMember(t, celebrityID, "reed", "Reed Duchscher", "manager")

		graph, err := BuildCircleGraph(BuildInput{
			CelebrityID:  celebrityID,
			CelebrityKey: "mrbeast",
			Members:      []RawMember{reed},
			Edges: []RawEdge{
				{SourceKey: "mrbeast", TargetKey: "reed", Strength: 60},
				{SourceKey: "reed", TargetKey: "mrbeast", Strength: 95},
				{SourceKey: "mrbeast", TargetKey: "reed", Strength: 40},
			},
		})

		require.NoError(t, err)
		require.Equal(t, 1, graph.EdgeCount())

		edge, ok := graph.EdgeBetween(graph.RootID(), reed.Person.ID())
		require.True(t, ok)
		assert.Equal(t, 95, edge.Strength)

		codes := warningCodes(graph.Warnings())
		assert.Equal(t, []WarningCode{WarnDuplicateEdge, WarnDuplicateEdge}, codes)
	})

	t.Run("prunes members unreachable from the root", func(t *testing.T) {
		reed := buildMember(t, celebrityID, "reed", "Reed Duchscher", "manager")
		island := buildMember(t, celebrityID, "island", "Isolated Friend", "friend")
		islandPal := buildMember(t, celebrityID, "pal", "Island Pal", "friend")

		graph, err := BuildCircleGraph(BuildInput{
			CelebrityID:  celebrityID,
			CelebrityKey: "mrbeast",
			Members:      []RawMember{reed, island, islandPal},
			Edges: []RawEdge{
				{SourceKey: "mrbeast", TargetKey: "reed", Strength: 95},
				{SourceKey: "island", TargetKey: "pal", Strength: 70},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, graph.NodeCount())
		assert.Equal(t, 1, graph.EdgeCount())
		assert.Equal(t, 2, graph.PrunedCount())

		_, islandKept := graph.Person(island.Person.ID())
		assert.False(t, islandKept)

		codes := warningCodes(graph.Warnings())
		assert.Equal(t, []WarningCode{WarnUnreachable, WarnUnreachable}, codes)
		assert.NoError(t, graph.Validate())
	})

	t.Run("clamps out of range strength with a warning", func(t *testing.T) {
		reed := buildMember(t, celebrityID, "reed", "Reed Duchscher", "manager")

		graph, err := BuildCircleGraph(BuildInput{
			CelebrityID:  celebrityID,
			CelebrityKey: "mrbeast",
			Members:      []RawMember{reed},
			Edges: []RawEdge{
				{SourceKey: "mrbeast", TargetKey: "reed", Strength: 140},
			},
		})

		require.NoError(t, err)
		edge, ok := graph.EdgeBetween(graph.RootID(), reed.Person.ID())
		require.True(t, ok)
		assert.Equal(t, 100, edge.Strength)
		assert.Contains(t, warningCodes(graph.Warnings()), WarnStrengthClamped)
	})

	t.Run("drops duplicate member keys keeping the first", func(t *testing.T) {
		reed := buildMember(t, celebrityID, "reed", "Reed Duchscher", "manager")
		impostor := buildMember(t, celebrityID, "reed", "Impostor", "other")

		graph, err := BuildCircleGraph(BuildInput{
			CelebrityID:  celebrityID,
			CelebrityKey: "mrbeast",
			Members:      []RawMember{reed, impostor},
			Edges: []RawEdge{
				{SourceKey: "mrbeast", TargetKey: "reed", Strength: 95},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, graph.NodeCount())

		kept, ok := graph.Person(reed.Person.ID())
		require.True(t, ok)
		assert.Equal(t, "Reed Duchscher", kept.Name())
		assert.Contains(t, warningCodes(graph.Warnings()), WarnDuplicateMember)
	})

	t.Run("drops members of a different celebrity", func(t *testing.T) {
		reed := buildMember(t, celebrityID, "reed", "Reed Duchscher", "manager")
		foreign := buildMember(t, valueobjects.NewCelebrityID(), "stray", "Stray Member", "friend")

		graph, err := BuildCircleGraph(BuildInput{
			CelebrityID:  celebrityID,
			CelebrityKey: "mrbeast",
			Members:      []RawMember{reed, foreign},
			Edges: []RawEdge{
				{SourceKey: "mrbeast", TargetKey: "reed", Strength: 95},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, graph.NodeCount())
		assert.Contains(t, warningCodes(graph.Warnings()), WarnForeignMember)
	})

	t.Run("rejects empty celebrity key", func(t *testing.T) {
		_, err := BuildCircleGraph(BuildInput{
			CelebrityID:  celebrityID,
			CelebrityKey: "  ",
		})
		assert.Error(t, err)
	})

	t.Run("rejects zero celebrity id", func(t *testing.T) {
		_, err := BuildCircleGraph(BuildInput{
			CelebrityID:  valueobjects.CelebrityID{},
			CelebrityKey: "mrbeast",
		})
		assert.Error(t, err)
	})
}

func TestBuildCircleGraph_Deterministic(t *testing.T) {
	celebrityID := valueobjects.NewSeededCelebrityID("mrbeast")

	input := func() BuildInput {
		reed := buildMember(t, celebrityID, "reed", "Reed Duchscher", "manager")
		tyler := buildMember(t, celebrityID, "tyler", "Tyler Conklin", "collaborator")
		marcus := buildMember(t, celebrityID, "marcus", "Marcus Agent", "agent")
		return BuildInput{
			CelebrityID:  celebrityID,
			CelebrityKey: "mrbeast",
			Members:      []RawMember{reed, tyler, marcus},
			Edges: []RawEdge{
				{SourceKey: "mrbeast", TargetKey: "reed", Strength: 95},
				{SourceKey: "mrbeast", TargetKey: "marcus", Strength: 85},
				{SourceKey: "reed", TargetKey: "tyler", Strength: 60},
				{SourceKey: "marcus", TargetKey: "tyler", Strength: 40},
			},
		}
	}

	first, err := BuildCircleGraph(input())
	require.NoError(t, err)
	second, err := BuildCircleGraph(input())
	require.NoError(t, err)

	firstEdges := first.Edges()
	secondEdges := second.Edges()
	require.Len(t, secondEdges, len(firstEdges))
	for i := range firstEdges {
		assert.Equal(t, firstEdges[i].ID, secondEdges[i].ID)
		assert.Equal(t, firstEdges[i].Strength, secondEdges[i].Strength)
	}

	for _, person := range first.People() {
		firstHops, ok := first.HopDistance(person.ID())
		require.True(t, ok)
		secondHops, ok := second.HopDistance(person.ID())
		require.True(t, ok)
		assert.Equal(t, firstHops, secondHops)
	}
}

func TestCircleGraph_Neighbors(t *testing.T) {
	celebrityID := valueobjects.NewCelebrityID()
	reed := buildMember(t, celebrityID, "reed", "Reed Duchscher", "manager")
	tyler := buildMember(t, celebrityID, "tyler", "Tyler Conklin", "collaborator")

	graph, err := BuildCircleGraph(BuildInput{
		CelebrityID:  celebrityID,
		CelebrityKey: "mrbeast",
		Members:      []RawMember{reed, tyler},
		Edges: []RawEdge{
			{SourceKey: "mrbeast", TargetKey: "reed", Strength: 95},
			{SourceKey: "mrbeast", TargetKey: "tyler", Strength: 55},
			{SourceKey: "reed", TargetKey: "tyler", Strength: 60},
		},
	})
	require.NoError(t, err)

	rootNeighbors := graph.Neighbors(graph.RootID())
	require.Len(t, rootNeighbors, 2)
	assert.True(t, rootNeighbors[0].ID.String() < rootNeighbors[1].ID.String())

	reedNeighbors := graph.Neighbors(reed.Person.ID())
	require.Len(t, reedNeighbors, 2)

	direct := graph.DirectConnections()
	assert.Len(t, direct, 2)
}

func TestReconstructCircleGraph(t *testing.T) {
	celebrityID := valueobjects.NewSeededCelebrityID("mrbeast")
	reed := buildMember(t, celebrityID, "reed", "Reed Duchscher", "manager")
	tyler := buildMember(t, celebrityID, "tyler", "Tyler Conklin", "collaborator")

	built, err := BuildCircleGraph(BuildInput{
		CelebrityID:  celebrityID,
		CelebrityKey: "mrbeast",
		Members:      []RawMember{reed, tyler},
		Edges: []RawEdge{
			{SourceKey: "mrbeast", TargetKey: "reed", Strength: 95},
			{SourceKey: "reed", TargetKey: "tyler", Strength: 60},
		},
	})
	require.NoError(t, err)

	t.Run("round trips structure and build time", func(t *testing.T) {
		restored, err := ReconstructCircleGraph(celebrityID, built.People(), built.Edges(), built.BuiltAt())
		require.NoError(t, err)

		assert.Equal(t, built.BuiltAt(), restored.BuiltAt())
		assert.Equal(t, built.NodeCount(), restored.NodeCount())
		assert.Equal(t, built.EdgeCount(), restored.EdgeCount())

		for _, person := range built.People() {
			builtHops, ok := built.HopDistance(person.ID())
			require.True(t, ok)
			restoredHops, ok := restored.HopDistance(person.ID())
			require.True(t, ok)
			assert.Equal(t, builtHops, restoredHops)
		}
		assert.NoError(t, restored.Validate())
	})

	t.Run("rejects orphaned stored edge", func(t *testing.T) {
		orphan := &Edge{
			ID:       "orphan",
			SourceID: RootNodeID(celebrityID),
			TargetID: valueobjects.NewNodeID(),
			Strength: 50,
		}

		_, err := ReconstructCircleGraph(celebrityID, built.People(), append(built.Edges(), orphan), built.BuiltAt())
		assert.Error(t, err)
	})

	t.Run("rejects unreachable stored member", func(t *testing.T) {
		stranded := buildMember(t, celebrityID, "stranded", "Stranded Member", "friend")

		_, err := ReconstructCircleGraph(celebrityID, append(built.People(), stranded.Person), built.Edges(), built.BuiltAt())
		assert.Error(t, err)
	})
}

package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"accessengine-backend/application/commands"
	"accessengine-backend/domain/core/aggregates"
	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/domain/events"
	pkgerrors "accessengine-backend/pkg/errors"
)

func newAddPersonHandler(f *handlerFixture) *AddPersonHandler {
	return NewAddPersonHandler(
		f.celebrities, f.people, f.edges,
		f.snapshots, f.bus, nil, zap.NewNop(),
	)
}

func addCommand(celebrityID string) commands.AddPersonCommand {
	return commands.AddPersonCommand{
		CelebrityID:          celebrityID,
		Name:                 "Jack Antonoff",
		Role:                 "Producer",
		Rationale:            "Produced the last four records",
		Tag:                  "collaborator",
		Strength:             80,
		MutualConnections:    14,
		InteractionFrequency: 40,
		DaysSinceActive:      3,
		Channels: []commands.ChannelInput{
			{Type: "email", Handle: "jack@example.com", Public: true},
		},
	}
}

func TestAddPersonHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("anchors a new member to the celebrity root", func(t *testing.T) {
		f := newHandlerFixture(t)
		celebrity := f.seedCelebrity(t, "Taylor Swift")
		handler := newAddPersonHandler(f)

		result, err := handler.Handle(ctx, addCommand(celebrity.ID().String()))
		require.NoError(t, err)

		assert.NotEmpty(t, result.NodeID)
		assert.Equal(t, "Jack Antonoff", result.Name)
		assert.Equal(t, "collaborator", result.Tag)
		assert.True(t, result.Rebuilt)
		assert.Equal(t, 1, result.HopDistance)
		assert.Greater(t, result.WarmScore, 0)

		members, err := f.people.GetByCelebrityID(ctx, celebrity.ID())
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, result.NodeID, members[0].ID().String())

		edge := findEdgeTo(t, f, celebrity.ID(), result.NodeID)
		assert.Equal(t, celebrity.ID().String(), edge.SourceKey)
		assert.Equal(t, 80, edge.Strength)

		stored, err := f.celebrities.GetByID(ctx, celebrity.ID())
		require.NoError(t, err)
		assert.Equal(t, 1, stored.NodeCount())
	})

	t.Run("anchors a second-hop member through an existing one", func(t *testing.T) {
		f := newHandlerFixture(t)
		celebrity := f.seedCelebrity(t, "Taylor Swift")
		manager := f.seedMember(t, celebrity.ID(), "Tree Paine", "publicist", 90)
		handler := newAddPersonHandler(f)

		cmd := addCommand(celebrity.ID().String())
		cmd.Name = "Assistant Publicist"
		cmd.Tag = "colleague"
		cmd.Strength = 60
		cmd.ViaNodeID = manager.ID().String()

		result, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, 2, result.HopDistance)

		edge := findEdgeTo(t, f, celebrity.ID(), result.NodeID)
		assert.Equal(t, manager.ID().String(), edge.SourceKey)
	})

	t.Run("publishes a person added event", func(t *testing.T) {
		f := newHandlerFixture(t)
		celebrity := f.seedCelebrity(t, "Taylor Swift")
		handler := newAddPersonHandler(f)

		_, err := handler.Handle(ctx, addCommand(celebrity.ID().String()))
		require.NoError(t, err)

		published := f.recorder.byType(events.EventTypePersonAdded)
		require.Len(t, published, 1)
		added, ok := published[0].(events.PersonAdded)
		require.True(t, ok)
		assert.Equal(t, "Jack Antonoff", added.Name)
		assert.Equal(t, celebrity.ID(), added.CelebrityID)
	})

	t.Run("rejects an unknown celebrity", func(t *testing.T) {
		f := newHandlerFixture(t)
		handler := newAddPersonHandler(f)

		_, err := handler.Handle(ctx, addCommand(valueobjects.NewCelebrityID().String()))
		require.Error(t, err)
		assert.ErrorIs(t, err, pkgerrors.ErrCelebrityNotFound)
	})

	t.Run("rejects an unknown via node", func(t *testing.T) {
		f := newHandlerFixture(t)
		celebrity := f.seedCelebrity(t, "Taylor Swift")
		handler := newAddPersonHandler(f)

		cmd := addCommand(celebrity.ID().String())
		cmd.ViaNodeID = valueobjects.NewNodeID().String()

		_, err := handler.Handle(ctx, cmd)
		require.Error(t, err)
		assert.ErrorIs(t, err, pkgerrors.ErrPersonNotFound)

		members, listErr := f.people.GetByCelebrityID(ctx, celebrity.ID())
		require.NoError(t, listErr)
		assert.Empty(t, members, "a rejected member must not be persisted")
	})

	t.Run("rejects an unrecognized relationship tag", func(t *testing.T) {
		f := newHandlerFixture(t)
		celebrity := f.seedCelebrity(t, "Taylor Swift")
		handler := newAddPersonHandler(f)

		cmd := addCommand(celebrity.ID().String())
		cmd.Tag = "nemesis"

		_, err := handler.Handle(ctx, cmd)
		require.Error(t, err)
	})

	t.Run("rejects a command with no name", func(t *testing.T) {
		f := newHandlerFixture(t)
		celebrity := f.seedCelebrity(t, "Taylor Swift")
		handler := newAddPersonHandler(f)

		cmd := addCommand(celebrity.ID().String())
		cmd.Name = ""

		_, err := handler.Handle(ctx, cmd)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid command")
	})
}

func findEdgeTo(t *testing.T, f *handlerFixture, celebrityID valueobjects.CelebrityID, nodeID string) aggregates.RawEdge {
	t.Helper()

	edges, err := f.edges.GetByCelebrityID(context.Background(), celebrityID)
	require.NoError(t, err)
	for _, edge := range edges {
		if edge.TargetKey == nodeID {
			return edge
		}
	}
	t.Fatalf("no edge targeting %s", nodeID)
	return aggregates.RawEdge{}
}

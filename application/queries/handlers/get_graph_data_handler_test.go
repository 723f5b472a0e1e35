package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"accessengine-backend/application/queries"
	"accessengine-backend/domain/core/valueobjects"
	pkgerrors "accessengine-backend/pkg/errors"
)

func TestGetGraphDataHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("renders the circle around a fixed root", func(t *testing.T) {
		f := newQueryFixture(t)
		celebrity := f.seedCelebrity(t, "Zendaya", valueobjects.CategoryFilm)
		direct := f.seedMember(t, celebrity.ID(), memberSpec{name: "Law Roach", tag: "collaborator", strength: 85})
		second := f.seedMember(t, celebrity.ID(), memberSpec{name: "Studio Assistant", tag: "colleague", strength: 60, via: direct})
		f.rebuild(t, celebrity.ID())
		handler := NewGetGraphDataHandler(f.celebrities, f.snapshotRepo, zap.NewNop())

		result, err := handler.Handle(ctx, queries.GetGraphDataQuery{CelebrityID: celebrity.ID().String()})
		require.NoError(t, err)

		require.Len(t, result.Nodes, 3)
		root := result.Nodes[0]
		assert.Equal(t, "celebrity", root.ID)
		assert.Equal(t, "Zendaya", root.Label)
		require.NotNil(t, root.Font)
		assert.True(t, root.Font.Bold)

		assert.Equal(t, 2, result.Stats.NodeCount)
		assert.Equal(t, 2, result.Stats.EdgeCount)
		assert.Equal(t, 1, result.Stats.Version)

		edgesByFrom := make(map[string]queries.VisEdge, len(result.Edges))
		for _, edge := range result.Edges {
			edgesByFrom[edge.From] = edge
		}

		directEdge, ok := edgesByFrom[direct.ID().String()]
		require.True(t, ok)
		assert.Equal(t, "celebrity", directEdge.To)
		assert.False(t, directEdge.Dashes)

		chainEdge, ok := edgesByFrom[second.ID().String()]
		require.True(t, ok)
		assert.Equal(t, direct.ID().String(), chainEdge.To)
		assert.True(t, chainEdge.Dashes)
	})

	t.Run("sizes nodes by warmth", func(t *testing.T) {
		f := newQueryFixture(t)
		celebrity := f.seedCelebrity(t, "Zendaya", valueobjects.CategoryFilm)
		f.seedMember(t, celebrity.ID(), memberSpec{name: "Law Roach", tag: "manager", strength: 95})
		f.rebuild(t, celebrity.ID())
		handler := NewGetGraphDataHandler(f.celebrities, f.snapshotRepo, zap.NewNop())

		result, err := handler.Handle(ctx, queries.GetGraphDataQuery{CelebrityID: celebrity.ID().String()})
		require.NoError(t, err)

		require.Len(t, result.Nodes, 2)
		member := result.Nodes[1]
		assert.Greater(t, member.WarmScore, 0)
		assert.Equal(t, 20+member.WarmScore/10, member.Size)
		assert.Equal(t, 1, member.HopDistance)

		require.Len(t, result.TopNodes, 1)
		assert.Equal(t, "Law Roach", result.TopNodes[0].Name)
	})

	t.Run("requires a built snapshot", func(t *testing.T) {
		f := newQueryFixture(t)
		celebrity := f.seedCelebrity(t, "Zendaya", valueobjects.CategoryFilm)
		handler := NewGetGraphDataHandler(f.celebrities, f.snapshotRepo, zap.NewNop())

		_, err := handler.Handle(ctx, queries.GetGraphDataQuery{CelebrityID: celebrity.ID().String()})
		require.Error(t, err)
		assert.ErrorIs(t, err, pkgerrors.ErrSnapshotMissing)
	})

	t.Run("rejects an unknown celebrity", func(t *testing.T) {
		f := newQueryFixture(t)
		handler := NewGetGraphDataHandler(f.celebrities, f.snapshotRepo, zap.NewNop())

		_, err := handler.Handle(ctx, queries.GetGraphDataQuery{CelebrityID: valueobjects.NewCelebrityID().String()})
		require.Error(t, err)
		assert.ErrorIs(t, err, pkgerrors.ErrCelebrityNotFound)
	})
}

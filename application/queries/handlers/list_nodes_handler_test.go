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

func TestListNodesHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("lists the circle warmest first", func(t *testing.T) {
		f := newQueryFixture(t)
		celebrity := f.seedCelebrity(t, "Rihanna", valueobjects.CategoryMusic)
		f.seedMember(t, celebrity.ID(), memberSpec{name: "Jay Brown", tag: "manager", strength: 95})
		f.seedMember(t, celebrity.ID(), memberSpec{name: "Casual Contact", tag: "acquaintance", strength: 30})
		f.rebuild(t, celebrity.ID())
		handler := NewListNodesHandler(f.snapshotRepo, zap.NewNop())

		result, err := handler.Handle(ctx, queries.ListNodesQuery{CelebrityID: celebrity.ID().String()})
		require.NoError(t, err)

		assert.Equal(t, 2, result.Count)
		require.Len(t, result.Nodes, 2)
		assert.Equal(t, "Jay Brown", result.Nodes[0].Name)
		assert.Equal(t, "Casual Contact", result.Nodes[1].Name)
		assert.Greater(t, result.Nodes[0].WarmScore, result.Nodes[1].WarmScore)
		assert.Equal(t, "manager", result.Nodes[0].Tag)
		assert.Equal(t, 1, result.Nodes[0].HopDistance)
		assert.NotEmpty(t, result.Nodes[0].ContactInfo)
	})

	t.Run("marks members with no channel as uncontactable", func(t *testing.T) {
		f := newQueryFixture(t)
		celebrity := f.seedCelebrity(t, "Rihanna", valueobjects.CategoryMusic)
		f.seedMember(t, celebrity.ID(), memberSpec{name: "Private Friend", tag: "close_friend", strength: 85, noChannel: true})
		f.rebuild(t, celebrity.ID())
		handler := NewListNodesHandler(f.snapshotRepo, zap.NewNop())

		result, err := handler.Handle(ctx, queries.ListNodesQuery{CelebrityID: celebrity.ID().String()})
		require.NoError(t, err)

		require.Len(t, result.Nodes, 1)
		assert.True(t, result.Nodes[0].Uncontactable)
		assert.Empty(t, result.Nodes[0].ContactInfo)
	})

	t.Run("requires a built snapshot", func(t *testing.T) {
		f := newQueryFixture(t)
		handler := NewListNodesHandler(f.snapshotRepo, zap.NewNop())

		_, err := handler.Handle(ctx, queries.ListNodesQuery{CelebrityID: valueobjects.NewCelebrityID().String()})
		require.Error(t, err)
		assert.ErrorIs(t, err, pkgerrors.ErrSnapshotMissing)
	})

	t.Run("rejects a malformed ID", func(t *testing.T) {
		f := newQueryFixture(t)
		handler := NewListNodesHandler(f.snapshotRepo, zap.NewNop())

		_, err := handler.Handle(ctx, queries.ListNodesQuery{CelebrityID: "not-a-uuid"})
		require.Error(t, err)
	})
}

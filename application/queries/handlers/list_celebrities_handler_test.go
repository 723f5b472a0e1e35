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

func TestListCelebritiesHandler(t *testing.T) {
	ctx := context.Background()

	f := newQueryFixture(t)
	reachable := f.seedCelebrity(t, "MrBeast", valueobjects.CategoryTech)
	f.seedMember(t, reachable.ID(), memberSpec{name: "Reed Duchscher", tag: "manager", strength: 95})
	f.seedMember(t, reachable.ID(), memberSpec{name: "Tyler Conklin", tag: "collaborator", strength: 75})
	f.rebuild(t, reachable.ID())

	f.seedCelebrity(t, "Adele", valueobjects.CategoryMusic)
	f.seedCelebrity(t, "Beyonce", valueobjects.CategoryMusic)
	handler := NewListCelebritiesHandler(f.celebrities, zap.NewNop())

	t.Run("lists the most reachable first", func(t *testing.T) {
		result, err := handler.Handle(ctx, queries.ListCelebritiesQuery{})
		require.NoError(t, err)

		require.Len(t, result.Celebrities, 3)
		assert.Equal(t, "MrBeast", result.Celebrities[0].Name)
		assert.Greater(t, result.Celebrities[0].AccessScore, 0)
		// Unscored celebrities tie at zero and fall back to name order
		assert.Equal(t, "Adele", result.Celebrities[1].Name)
		assert.Equal(t, "Beyonce", result.Celebrities[2].Name)
	})

	t.Run("filters by category", func(t *testing.T) {
		result, err := handler.Handle(ctx, queries.ListCelebritiesQuery{Category: "music"})
		require.NoError(t, err)

		require.Len(t, result.Celebrities, 2)
		for _, c := range result.Celebrities {
			assert.Equal(t, "music", c.Category)
		}
	})

	t.Run("pages through the roster", func(t *testing.T) {
		result, err := handler.Handle(ctx, queries.ListCelebritiesQuery{Page: 2, PageSize: 2})
		require.NoError(t, err)

		assert.Len(t, result.Celebrities, 1)
		assert.Equal(t, 1, result.Count)
		require.NotNil(t, result.Pagination)
		assert.Equal(t, 3, result.Pagination.Total)
		assert.Equal(t, 2, result.Pagination.TotalPages)
		assert.False(t, result.Pagination.HasNext)
		assert.True(t, result.Pagination.HasPrev)
	})

	t.Run("serves an empty page past the end", func(t *testing.T) {
		result, err := handler.Handle(ctx, queries.ListCelebritiesQuery{Page: 9, PageSize: 2})
		require.NoError(t, err)
		assert.Empty(t, result.Celebrities)
		assert.Equal(t, 0, result.Count)
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		_, err := handler.Handle(ctx, queries.ListCelebritiesQuery{Category: "royalty"})
		require.Error(t, err)
		assert.ErrorIs(t, err, pkgerrors.ErrUnknownCategory)
	})
}

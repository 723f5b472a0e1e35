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

func TestFindCelebrityHandler(t *testing.T) {
	ctx := context.Background()

	f := newQueryFixture(t)
	swift := f.seedCelebrity(t, "Taylor Swift", valueobjects.CategoryMusic)
	f.seedCelebrity(t, "Taylor Fritz", valueobjects.CategorySports)
	f.seedCelebrity(t, "LeBron James", valueobjects.CategorySports)
	handler := NewFindCelebrityHandler(f.celebrities, zap.NewNop())

	t.Run("matches an exact name regardless of case", func(t *testing.T) {
		result, err := handler.Handle(ctx, queries.FindCelebrityQuery{Query: "taylor swift"})
		require.NoError(t, err)
		assert.Equal(t, "exact", result.Match)
		assert.Equal(t, swift.ID().String(), result.Celebrity.ID)
	})

	t.Run("falls back to substring matching", func(t *testing.T) {
		result, err := handler.Handle(ctx, queries.FindCelebrityQuery{Query: "lebron"})
		require.NoError(t, err)
		assert.Equal(t, "substring", result.Match)
		assert.Equal(t, "LeBron James", result.Celebrity.Name)
	})

	t.Run("breaks substring ties by reachability then name", func(t *testing.T) {
		// Both Taylors match; equal access scores leave name order to decide
		result, err := handler.Handle(ctx, queries.FindCelebrityQuery{Query: "taylor"})
		require.NoError(t, err)
		assert.Equal(t, "substring", result.Match)
		assert.Equal(t, "Taylor Fritz", result.Celebrity.Name)
	})

	t.Run("recovers a misspelled name fuzzily", func(t *testing.T) {
		result, err := handler.Handle(ctx, queries.FindCelebrityQuery{Query: "lebrn james"})
		require.NoError(t, err)
		assert.Equal(t, "fuzzy", result.Match)
		assert.Equal(t, "LeBron James", result.Celebrity.Name)
	})

	t.Run("misses with a typed not-found error", func(t *testing.T) {
		_, err := handler.Handle(ctx, queries.FindCelebrityQuery{Query: "Zendaya"})
		require.Error(t, err)
		assert.ErrorIs(t, err, pkgerrors.ErrCelebrityNotFound)
	})

	t.Run("rejects a blank query", func(t *testing.T) {
		_, err := handler.Handle(ctx, queries.FindCelebrityQuery{Query: "   "})
		require.Error(t, err)
	})
}

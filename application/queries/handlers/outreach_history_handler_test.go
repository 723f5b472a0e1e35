package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"accessengine-backend/application/queries"
	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
)

func (f *queryFixture) seedOutreach(t *testing.T, celebrityID valueobjects.CelebrityID, recipient string, status valueobjects.OutreachStatus) *entities.Outreach {
	t.Helper()

	channel, err := valueobjects.NewContactChannel(valueobjects.ChannelEmail, recipient+"@example.com", true)
	require.NoError(t, err)
	outreach, err := entities.NewOutreach(
		celebrityID, valueobjects.NewNodeID(), recipient, channel,
		"A partnership worth ten minutes",
		"Hi "+recipient+", quick note about a potential collaboration.",
		"Proven reach with the right audience",
		valueobjects.HopFirst,
	)
	require.NoError(t, err)

	if status != valueobjects.OutreachDraft {
		require.NoError(t, outreach.MarkSent())
	}
	if status == valueobjects.OutreachReplied {
		require.NoError(t, outreach.MarkReplied())
	}
	outreach.MarkEventsAsCommitted()
	require.NoError(t, f.outreach.Save(context.Background(), outreach))
	return outreach
}

func TestOutreachHistoryHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("serves one celebrity's records", func(t *testing.T) {
		f := newQueryFixture(t)
		celebrity := f.seedCelebrity(t, "Adele", valueobjects.CategoryMusic)
		other := f.seedCelebrity(t, "Beyonce", valueobjects.CategoryMusic)
		f.seedOutreach(t, celebrity.ID(), "Jonathan Dickins", valueobjects.OutreachSent)
		f.seedOutreach(t, celebrity.ID(), "Studio Engineer", valueobjects.OutreachDraft)
		f.seedOutreach(t, other.ID(), "Someone Else", valueobjects.OutreachDraft)
		handler := NewOutreachHistoryHandler(f.outreach, zap.NewNop())

		result, err := handler.Handle(ctx, queries.ListOutreachQuery{CelebrityID: celebrity.ID().String()})
		require.NoError(t, err)

		assert.Equal(t, 2, result.Count)
		require.Len(t, result.Messages, 2)
		for _, view := range result.Messages {
			assert.Equal(t, celebrity.ID().String(), view.CelebrityID)
			assert.NotEmpty(t, view.Message)
			assert.NotEmpty(t, view.CreatedAt)
			assert.Equal(t, "first", view.Hop)
		}
	})

	t.Run("carries the lifecycle status through", func(t *testing.T) {
		f := newQueryFixture(t)
		celebrity := f.seedCelebrity(t, "Adele", valueobjects.CategoryMusic)
		f.seedOutreach(t, celebrity.ID(), "Jonathan Dickins", valueobjects.OutreachReplied)
		handler := NewOutreachHistoryHandler(f.outreach, zap.NewNop())

		result, err := handler.Handle(ctx, queries.ListOutreachQuery{CelebrityID: celebrity.ID().String()})
		require.NoError(t, err)

		require.Len(t, result.Messages, 1)
		assert.Equal(t, "replied", result.Messages[0].Status)
	})

	t.Run("serves an empty history without error", func(t *testing.T) {
		f := newQueryFixture(t)
		celebrity := f.seedCelebrity(t, "Adele", valueobjects.CategoryMusic)
		handler := NewOutreachHistoryHandler(f.outreach, zap.NewNop())

		result, err := handler.Handle(ctx, queries.ListOutreachQuery{CelebrityID: celebrity.ID().String()})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Count)
		assert.Empty(t, result.Messages)
	})

	t.Run("rejects a blank celebrity ID", func(t *testing.T) {
		f := newQueryFixture(t)
		handler := NewOutreachHistoryHandler(f.outreach, zap.NewNop())

		_, err := handler.Handle(ctx, queries.ListOutreachQuery{})
		require.Error(t, err)
	})
}

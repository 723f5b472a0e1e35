package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"accessengine-backend/application/commands"
	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/domain/events"
)

func TestRebuildCircleHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("rebuilds under the requested reason", func(t *testing.T) {
		f := newHandlerFixture(t)
		celebrity := f.seedCelebrity(t, "Rihanna")
		f.seedMember(t, celebrity.ID(), "Jay Brown", "manager", 92)
		handler := NewRebuildCircleHandler(f.snapshots, f.bus, zap.NewNop())

		result, err := handler.Handle(ctx, commands.RebuildCircleCommand{
			CelebrityID: celebrity.ID().String(),
			Reason:      "first_access",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Version)
		assert.Equal(t, 1, result.NodeCount)

		latest, err := f.versions.GetLatest(ctx, celebrity.ID())
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, "first_access", latest.Trigger)
	})

	t.Run("defaults a blank reason to manual", func(t *testing.T) {
		f := newHandlerFixture(t)
		celebrity := f.seedCelebrity(t, "Rihanna")
		f.seedMember(t, celebrity.ID(), "Jay Brown", "manager", 92)
		handler := NewRebuildCircleHandler(f.snapshots, f.bus, zap.NewNop())

		_, err := handler.Handle(ctx, commands.RebuildCircleCommand{
			CelebrityID: celebrity.ID().String(),
		})
		require.NoError(t, err)

		latest, err := f.versions.GetLatest(ctx, celebrity.ID())
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, "manual", latest.Trigger)
	})

	t.Run("announces the rebuild before running it", func(t *testing.T) {
		f := newHandlerFixture(t)
		celebrity := f.seedCelebrity(t, "Rihanna")
		f.seedMember(t, celebrity.ID(), "Jay Brown", "manager", 92)
		handler := NewRebuildCircleHandler(f.snapshots, f.bus, zap.NewNop())

		_, err := handler.Handle(ctx, commands.RebuildCircleCommand{
			CelebrityID: celebrity.ID().String(),
			Reason:      "first_access",
		})
		require.NoError(t, err)

		requested := f.recorder.byType(events.EventTypeRebuildRequested)
		require.Len(t, requested, 1)
		event, ok := requested[0].(events.RebuildRequested)
		require.True(t, ok)
		assert.Equal(t, "first_access", event.Reason)
		assert.Len(t, f.recorder.byType(events.EventTypeCircleRebuilt), 1)
	})

	t.Run("rejects a malformed celebrity ID", func(t *testing.T) {
		f := newHandlerFixture(t)
		handler := NewRebuildCircleHandler(f.snapshots, f.bus, zap.NewNop())

		_, err := handler.Handle(ctx, commands.RebuildCircleCommand{CelebrityID: "not-a-uuid"})
		require.Error(t, err)
	})
}

func TestRebuildAllHandler(t *testing.T) {
	ctx := context.Background()

	f := newHandlerFixture(t)
	first := f.seedCelebrity(t, "Rihanna")
	f.seedMember(t, first.ID(), "Jay Brown", "manager", 92)
	second := f.seedCelebrity(t, "LeBron James")
	f.seedMember(t, second.ID(), "Maverick Carter", "business_partner", 88)

	handler := NewRebuildAllHandler(f.snapshots, zap.NewNop())

	results, err := handler.Handle(ctx, commands.RebuildAllCommand{Reason: "seed"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, id := range []valueobjects.CelebrityID{first.ID(), second.ID()} {
		latest, err := f.versions.GetLatest(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, "seed", latest.Trigger)
	}
}

package entities

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accessengine-backend/domain/config"
	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/domain/events"
	pkgerrors "accessengine-backend/pkg/errors"
)

func testProfile(t *testing.T) valueobjects.PersonProfile {
	t.Helper()
	profile, err := valueobjects.NewPersonProfile("Talent Manager", "Handles all bookings and partnerships")
	require.NoError(t, err)
	return profile
}

func testChannel(t *testing.T, channelType valueobjects.ChannelType, handle string, public bool) valueobjects.ContactChannel {
	t.Helper()
	channel, err := valueobjects.NewContactChannel(channelType, handle, public)
	require.NoError(t, err)
	return channel
}

func TestNewPerson(t *testing.T) {
	celebrityID := valueobjects.NewCelebrityID()
	profile := testProfile(t)
	signals := valueobjects.NewRawSignals(80, 12, 5, time.Now().AddDate(0, -1, 0))

	t.Run("creates person with valid input", func(t *testing.T) {
		channel := testChannel(t, valueobjects.ChannelEmail, "reed@example.com", false)

		person, err := NewPerson(celebrityID, "Reed Duchscher", valueobjects.TagManager, profile, []valueobjects.ContactChannel{channel}, signals)

		require.NoError(t, err)
		assert.Equal(t, "Reed Duchscher", person.Name())
		assert.Equal(t, valueobjects.TagManager, person.Tag())
		assert.Equal(t, celebrityID, person.CelebrityID())
		assert.False(t, person.ID().IsZero())
		assert.True(t, person.IsContactable())
	})

	t.Run("emits person added event", func(t *testing.T) {
		person, err := NewPerson(celebrityID, "Reed Duchscher", valueobjects.TagManager, profile, nil, signals)
		require.NoError(t, err)

		uncommitted := person.GetUncommittedEvents()
		require.Len(t, uncommitted, 1)
		assert.Equal(t, events.EventTypePersonAdded, uncommitted[0].GetEventType())
		assert.Equal(t, celebrityID.String(), uncommitted[0].GetAggregateID())

		person.MarkEventsAsCommitted()
		assert.Empty(t, person.GetUncommittedEvents())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewPerson(celebrityID, "   ", valueobjects.TagFriend, profile, nil, signals)
		assert.ErrorIs(t, err, pkgerrors.ErrPersonNameRequired)
	})

	t.Run("rejects zero celebrity id", func(t *testing.T) {
		_, err := NewPerson(valueobjects.CelebrityID{}, "Reed Duchscher", valueobjects.TagManager, profile, nil, signals)
		assert.Error(t, err)
	})

	t.Run("rejects unknown relationship tag", func(t *testing.T) {
		_, err := NewPerson(celebrityID, "Reed Duchscher", valueobjects.RelationshipTag("nemesis"), profile, nil, signals)
		assert.ErrorIs(t, err, pkgerrors.ErrUnknownRelationshipTag)
	})

	t.Run("rejects name over configured limit", func(t *testing.T) {
		cfg := config.DefaultDomainConfig()
		longName := strings.Repeat("a", cfg.MaxNameLength+1)

		_, err := NewPersonWithConfig(celebrityID, longName, valueobjects.TagFriend, profile, nil, signals, cfg)
		assert.Error(t, err)
	})

	t.Run("rejects too many channels", func(t *testing.T) {
		cfg := config.DefaultDomainConfig()
		channels := make([]valueobjects.ContactChannel, 0, cfg.MaxChannelsPerPerson+1)
		for i := 0; i <= cfg.MaxChannelsPerPerson; i++ {
			channels = append(channels, testChannel(t, valueobjects.ChannelOther, strings.Repeat("h", i+1), true))
		}

		_, err := NewPersonWithConfig(celebrityID, "Reed Duchscher", valueobjects.TagManager, profile, channels, signals, cfg)
		assert.Error(t, err)
	})
}

func TestPerson_Contactability(t *testing.T) {
	celebrityID := valueobjects.NewCelebrityID()
	profile := testProfile(t)
	signals := valueobjects.NewRawSignals(50, 0, 0, time.Time{})

	t.Run("no channels means not contactable", func(t *testing.T) {
		person, err := NewPerson(celebrityID, "Quiet Friend", valueobjects.TagFriend, profile, nil, signals)
		require.NoError(t, err)

		assert.False(t, person.IsContactable())
		assert.False(t, person.HasPublicChannel())
		_, ok := person.PreferredChannel()
		assert.False(t, ok)
	})

	t.Run("private channel is contactable but not public", func(t *testing.T) {
		private := testChannel(t, valueobjects.ChannelEmail, "private@example.com", false)
		person, err := NewPerson(celebrityID, "Private Agent", valueobjects.TagAgent, profile, []valueobjects.ContactChannel{private}, signals)
		require.NoError(t, err)

		assert.True(t, person.IsContactable())
		assert.False(t, person.HasPublicChannel())
	})

	t.Run("preferred channel keeps insertion order", func(t *testing.T) {
		email := testChannel(t, valueobjects.ChannelEmail, "first@example.com", false)
		twitter := testChannel(t, valueobjects.ChannelTwitter, "second", true)
		person, err := NewPerson(celebrityID, "Busy Publicist", valueobjects.TagPublicist, profile, []valueobjects.ContactChannel{email, twitter}, signals)
		require.NoError(t, err)

		preferred, ok := person.PreferredChannel()
		require.True(t, ok)
		assert.Equal(t, valueobjects.ChannelEmail, preferred.Type())
		assert.True(t, person.HasPublicChannel())
	})
}

func TestPerson_AddChannel(t *testing.T) {
	celebrityID := valueobjects.NewCelebrityID()
	profile := testProfile(t)
	signals := valueobjects.NewRawSignals(50, 0, 0, time.Time{})

	person, err := NewPerson(celebrityID, "Reed Duchscher", valueobjects.TagManager, profile, nil, signals)
	require.NoError(t, err)

	email := testChannel(t, valueobjects.ChannelEmail, "reed@example.com", false)
	require.NoError(t, person.AddChannel(email))
	assert.Len(t, person.Channels(), 1)

	// Same type and handle is a no-op, not an error.
	require.NoError(t, person.AddChannel(email))
	assert.Len(t, person.Channels(), 1)

	twitter := testChannel(t, valueobjects.ChannelTwitter, "reedtalent", true)
	require.NoError(t, person.AddChannel(twitter))
	assert.Len(t, person.Channels(), 2)
}

func TestPerson_UpdateSignals(t *testing.T) {
	celebrityID := valueobjects.NewCelebrityID()
	profile := testProfile(t)

	person, err := NewPerson(celebrityID, "Reed Duchscher", valueobjects.TagManager, profile, nil,
		valueobjects.NewRawSignals(40, 2, 1, time.Time{}))
	require.NoError(t, err)

	updated := valueobjects.NewRawSignals(90, 20, 8, time.Now())
	person.UpdateSignals(updated)

	assert.Equal(t, 90, person.Signals().RelationshipStrength())
	assert.True(t, person.Signals().HasActivity())
}

func TestPerson_Keywords(t *testing.T) {
	celebrityID := valueobjects.NewCelebrityID()
	profile, err := valueobjects.NewPersonProfile("Gaming Producer", "Produces gaming content and brand partnerships")
	require.NoError(t, err)

	person, err := NewPerson(celebrityID, "Tyler Conklin", valueobjects.TagCollaborator, profile, nil,
		valueobjects.NewRawSignals(60, 5, 3, time.Time{}))
	require.NoError(t, err)

	keywords := person.Keywords()
	assert.Contains(t, keywords, "gaming")
	assert.Contains(t, keywords, "producer")
	assert.NotContains(t, keywords, "and")
}

func TestNewCelebrity(t *testing.T) {
	t.Run("creates celebrity with defaults", func(t *testing.T) {
		celebrity, err := NewCelebrity("MrBeast", valueobjects.CategoryTech, "Largest YouTube creator", "@MrBeast", "Reed Duchscher")

		require.NoError(t, err)
		assert.Equal(t, "MrBeast", celebrity.Name())
		assert.Equal(t, valueobjects.CategoryTech, celebrity.Category())
		assert.Equal(t, config.DefaultDomainConfig().AccessDefault, celebrity.AccessScore())
		assert.Zero(t, celebrity.NodeCount())
		assert.False(t, celebrity.ID().IsZero())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCelebrity("  ", valueobjects.CategoryMusic, "", "", "")
		assert.ErrorIs(t, err, pkgerrors.ErrCelebrityNameRequired)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := NewCelebrity("MrBeast", valueobjects.Category("astrology"), "", "", "")
		assert.ErrorIs(t, err, pkgerrors.ErrUnknownCategory)
	})
}

func TestCelebrity_NodeAttachment(t *testing.T) {
	celebrity, err := NewCelebrity("MrBeast", valueobjects.CategoryTech, "", "", "")
	require.NoError(t, err)

	first := valueobjects.NewNodeID()
	second := valueobjects.NewNodeID()

	celebrity.AttachNode(first)
	celebrity.AttachNode(second)
	celebrity.AttachNode(first) // duplicate

	assert.Equal(t, 2, celebrity.NodeCount())

	require.NoError(t, celebrity.DetachNode(first))
	assert.Equal(t, 1, celebrity.NodeCount())

	err = celebrity.DetachNode(first)
	assert.ErrorIs(t, err, pkgerrors.ErrPersonNotFound)
}

func TestCelebrity_SetAccessScore(t *testing.T) {
	celebrity, err := NewCelebrity("MrBeast", valueobjects.CategoryTech, "", "", "")
	require.NoError(t, err)
	celebrity.MarkEventsAsCommitted()

	t.Run("updates score and emits event", func(t *testing.T) {
		require.NoError(t, celebrity.SetAccessScore(72))

		assert.Equal(t, 72, celebrity.AccessScore())
		uncommitted := celebrity.GetUncommittedEvents()
		require.Len(t, uncommitted, 1)
		assert.Equal(t, events.EventTypeAccessScoreUpdated, uncommitted[0].GetEventType())
	})

	t.Run("same score is a no-op", func(t *testing.T) {
		celebrity.MarkEventsAsCommitted()

		require.NoError(t, celebrity.SetAccessScore(72))
		assert.Empty(t, celebrity.GetUncommittedEvents())
	})

	t.Run("rejects out of range score", func(t *testing.T) {
		assert.Error(t, celebrity.SetAccessScore(101))
		assert.Error(t, celebrity.SetAccessScore(-1))
	})
}

func TestCelebrity_MatchesQuery(t *testing.T) {
	celebrity, err := NewCelebrity("Taylor Swift", valueobjects.CategoryMusic, "", "", "")
	require.NoError(t, err)

	assert.True(t, celebrity.MatchesQuery("taylor"))
	assert.True(t, celebrity.MatchesQuery("SWIFT"))
	assert.True(t, celebrity.MatchesQuery("  lor sw  "))
	assert.False(t, celebrity.MatchesQuery("beast"))
	assert.False(t, celebrity.MatchesQuery(""))
}

func TestReconstructCelebrity(t *testing.T) {
	id := valueobjects.NewSeededCelebrityID("mrbeast")
	nodes := []valueobjects.NodeID{valueobjects.NewSeededNodeID("mrbeast:reed")}
	createdAt := time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)

	celebrity, err := ReconstructCelebrity(id, "MrBeast", valueobjects.CategoryTech, "bio", "@MrBeast", "Reed Duchscher", nodes, 64, createdAt, createdAt)

	require.NoError(t, err)
	assert.Equal(t, id, celebrity.ID())
	assert.Equal(t, 64, celebrity.AccessScore())
	assert.Equal(t, 1, celebrity.NodeCount())
	assert.Empty(t, celebrity.GetUncommittedEvents())
	assert.Equal(t, createdAt, celebrity.CreatedAt())

	t.Run("rejects zero id", func(t *testing.T) {
		_, err := ReconstructCelebrity(valueobjects.CelebrityID{}, "MrBeast", valueobjects.CategoryTech, "", "", "", nil, 30, createdAt, createdAt)
		assert.Error(t, err)
	})

	t.Run("rejects out of range access score", func(t *testing.T) {
		_, err := ReconstructCelebrity(id, "MrBeast", valueobjects.CategoryTech, "", "", "", nil, 120, createdAt, createdAt)
		assert.Error(t, err)
	})
}

func draftOutreach(t *testing.T) *Outreach {
	t.Helper()
	channel := testChannel(t, valueobjects.ChannelEmail, "reed@nightmedia.co", false)

	outreach, err := NewOutreach(
		valueobjects.NewCelebrityID(),
		valueobjects.NewNodeID(),
		"Reed Duchscher",
		channel,
		"Partnership inquiry for your roster",
		"Hi Reed, I run a creator tooling studio and would love fifteen minutes to walk through a partnership idea.",
		"Creator tooling studio with a track record across gaming channels",
		valueobjects.HopFirst,
	)
	require.NoError(t, err)
	return outreach
}

func TestNewOutreach(t *testing.T) {
	t.Run("creates draft with valid input", func(t *testing.T) {
		outreach := draftOutreach(t)

		assert.False(t, outreach.ID().IsZero())
		assert.Equal(t, valueobjects.OutreachDraft, outreach.Status())
		assert.Equal(t, "Reed Duchscher", outreach.RecipientName())
		assert.Equal(t, valueobjects.HopFirst, outreach.HopLabel())
		assert.Equal(t, 19, outreach.WordCount())
	})

	t.Run("emits outreach drafted event", func(t *testing.T) {
		outreach := draftOutreach(t)

		uncommitted := outreach.GetUncommittedEvents()
		require.Len(t, uncommitted, 1)
		assert.Equal(t, events.EventTypeOutreachDrafted, uncommitted[0].GetEventType())
		assert.Equal(t, outreach.ID().String(), uncommitted[0].GetAggregateID())
	})

	t.Run("rejects empty recipient name", func(t *testing.T) {
		channel := testChannel(t, valueobjects.ChannelEmail, "reed@nightmedia.co", false)
		_, err := NewOutreach(valueobjects.NewCelebrityID(), valueobjects.NewNodeID(), "  ", channel, "subject", "body", "", valueobjects.HopFirst)
		assert.ErrorIs(t, err, pkgerrors.ErrPersonNameRequired)
	})

	t.Run("rejects missing channel", func(t *testing.T) {
		_, err := NewOutreach(valueobjects.NewCelebrityID(), valueobjects.NewNodeID(), "Reed Duchscher", valueobjects.ContactChannel{}, "subject", "body", "", valueobjects.HopFirst)
		assert.ErrorIs(t, err, pkgerrors.ErrChannelHandleRequired)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		channel := testChannel(t, valueobjects.ChannelEmail, "reed@nightmedia.co", false)
		_, err := NewOutreach(valueobjects.NewCelebrityID(), valueobjects.NewNodeID(), "Reed Duchscher", channel, "subject", "   ", "", valueobjects.HopFirst)
		assert.Error(t, err)
	})
}

func TestOutreach_Lifecycle(t *testing.T) {
	t.Run("walks draft to sent to replied", func(t *testing.T) {
		outreach := draftOutreach(t)
		outreach.MarkEventsAsCommitted()

		require.NoError(t, outreach.MarkSent())
		assert.Equal(t, valueobjects.OutreachSent, outreach.Status())

		require.NoError(t, outreach.MarkReplied())
		assert.Equal(t, valueobjects.OutreachReplied, outreach.Status())
		assert.True(t, outreach.IsReplied())
		assert.Equal(t, 3, outreach.Version())

		uncommitted := outreach.GetUncommittedEvents()
		require.Len(t, uncommitted, 2)
		assert.Equal(t, events.EventTypeOutreachStatusChanged, uncommitted[0].GetEventType())
	})

	t.Run("rejects skipping sent", func(t *testing.T) {
		outreach := draftOutreach(t)

		err := outreach.MarkReplied()
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidStatusTransition)
		assert.Equal(t, valueobjects.OutreachDraft, outreach.Status())
	})

	t.Run("rejects moving backwards", func(t *testing.T) {
		outreach := draftOutreach(t)
		require.NoError(t, outreach.MarkSent())

		err := outreach.MarkSent()
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidStatusTransition)
	})
}

func TestReconstructOutreach(t *testing.T) {
	channel := testChannel(t, valueobjects.ChannelEmail, "reed@nightmedia.co", false)
	createdAt := time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)

	outreach, err := ReconstructOutreach(
		valueobjects.NewOutreachID(),
		valueobjects.NewCelebrityID(),
		valueobjects.NewNodeID(),
		"Reed Duchscher",
		channel,
		"Partnership inquiry",
		"Short body",
		"Creator tooling studio",
		valueobjects.HopFirst,
		valueobjects.OutreachSent,
		createdAt,
		createdAt,
	)

	require.NoError(t, err)
	assert.Equal(t, valueobjects.OutreachSent, outreach.Status())
	assert.Equal(t, "Creator tooling studio", outreach.ValueProp())
	assert.Empty(t, outreach.GetUncommittedEvents())

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := ReconstructOutreach(
			valueobjects.NewOutreachID(),
			valueobjects.NewCelebrityID(),
			valueobjects.NewNodeID(),
			"Reed Duchscher",
			channel,
			"Partnership inquiry",
			"Short body",
			"",
			valueobjects.HopFirst,
			valueobjects.OutreachStatus("archived"),
			createdAt,
			createdAt,
		)
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidOutreachStatus)
	})
}

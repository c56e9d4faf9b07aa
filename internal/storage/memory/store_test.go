package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mood-village/server/internal/domain/checkins"
	"github.com/mood-village/server/internal/domain/events"
	"github.com/mood-village/server/internal/domain/lanterns"
	"github.com/mood-village/server/internal/domain/profiles"
	"github.com/stretchr/testify/require"
)

func eventRecord(id string, startsAt time.Time) events.Record {
	return events.Record{
		ID:        id,
		Title:     "event " + id,
		StartsAt:  startsAt,
		Location:  "somewhere",
		Category:  "General",
		CreatedBy: "host",
	}
}

func TestEventsSortedByStartTime(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.Events().CreateEvent(ctx, eventRecord("b", now.Add(2*time.Hour))))
	require.NoError(t, store.Events().CreateEvent(ctx, eventRecord("a", now.Add(time.Hour))))
	require.NoError(t, store.Events().CreateEvent(ctx, eventRecord("c", now.Add(2*time.Hour))))

	records, err := store.Events().ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "a", records[0].ID)
	// Equal start times fall back to ID order, so listing is deterministic.
	require.Equal(t, "b", records[1].ID)
	require.Equal(t, "c", records[2].ID)
}

func TestDeleteEventCascadesVotes(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Events().CreateEvent(ctx, eventRecord("a", time.Now().UTC())))
	require.NoError(t, store.Events().UpsertRSVP(ctx, events.RSVP{EventID: "a", UserID: "alice", Status: events.StatusYes}))

	require.NoError(t, store.Events().DeleteEvent(ctx, "a"))

	rsvps, err := store.Events().ListRSVPs(ctx, []string{"a"})
	require.NoError(t, err)
	require.Empty(t, rsvps)

	require.ErrorIs(t, store.Events().DeleteEvent(ctx, "a"), events.ErrNotFound)
}

func TestUpsertRSVPRequiresEvent(t *testing.T) {
	store := NewStore()

	err := store.Events().UpsertRSVP(context.Background(), events.RSVP{EventID: "missing", UserID: "alice", Status: events.StatusYes})
	require.ErrorIs(t, err, events.ErrNotFound)
}

func TestUpsertRSVPOverwrites(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Events().CreateEvent(ctx, eventRecord("a", time.Now().UTC())))
	require.NoError(t, store.Events().UpsertRSVP(ctx, events.RSVP{EventID: "a", UserID: "alice", Status: events.StatusYes}))
	require.NoError(t, store.Events().UpsertRSVP(ctx, events.RSVP{EventID: "a", UserID: "alice", Status: events.StatusNo}))

	rsvps, err := store.Events().ListRSVPs(ctx, []string{"a"})
	require.NoError(t, err)
	require.Len(t, rsvps, 1)
	require.Equal(t, events.StatusNo, rsvps[0].Status)
}

func TestLanternsNewestFirst(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.Lanterns().CreateLantern(ctx, lanterns.Lantern{ID: "old", MoodID: "cozy", Text: "old", CreatedAt: now.Add(-time.Hour)}))
	require.NoError(t, store.Lanterns().CreateLantern(ctx, lanterns.Lantern{ID: "new", MoodID: "cozy", Text: "new", CreatedAt: now}))

	items, err := store.Lanterns().ListLanterns(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "new", items[0].ID)
	require.Equal(t, "old", items[1].ID)
}

func TestRepliesRequireLantern(t *testing.T) {
	store := NewStore()

	err := store.Lanterns().CreateReply(context.Background(), lanterns.Reply{ID: "r", LanternID: "missing", Text: "hi"})
	require.ErrorIs(t, err, lanterns.ErrNotFound)
}

func TestRepliesOldestFirst(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.Lanterns().CreateLantern(ctx, lanterns.Lantern{ID: "l", MoodID: "cozy", Text: "hello", CreatedAt: now}))
	require.NoError(t, store.Lanterns().CreateReply(ctx, lanterns.Reply{ID: "r2", LanternID: "l", Text: "later", CreatedAt: now.Add(time.Minute)}))
	require.NoError(t, store.Lanterns().CreateReply(ctx, lanterns.Reply{ID: "r1", LanternID: "l", Text: "sooner", CreatedAt: now}))

	replies, err := store.Lanterns().ListReplies(ctx, []string{"l"})
	require.NoError(t, err)
	require.Len(t, replies, 2)
	require.Equal(t, "r1", replies[0].ID)
	require.Equal(t, "r2", replies[1].ID)
}

func TestCheckinsNewestFirstPerUser(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.Checkins().CreateCheckin(ctx, checkins.Checkin{ID: "1", UserID: "alice", Mood: 3, Energy: checkins.EnergyLow, CreatedAt: now.Add(-time.Hour)}))
	require.NoError(t, store.Checkins().CreateCheckin(ctx, checkins.Checkin{ID: "2", UserID: "alice", Mood: 4, Energy: checkins.EnergyHigh, CreatedAt: now}))
	require.NoError(t, store.Checkins().CreateCheckin(ctx, checkins.Checkin{ID: "3", UserID: "bob", Mood: 2, Energy: checkins.EnergyLow, CreatedAt: now}))

	items, err := store.Checkins().ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "2", items[0].ID)
	require.Equal(t, "1", items[1].ID)
}

func TestProfileRoundTrip(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Profiles().GetProfile(ctx, "alice")
	require.ErrorIs(t, err, profiles.ErrNotFound)

	require.NoError(t, store.Profiles().UpsertProfile(ctx, profiles.Profile{UserID: "alice", Name: "Alice"}))

	profile, err := store.Profiles().GetProfile(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "Alice", profile.Name)
}

func TestSeedLoadsFixtures(t *testing.T) {
	store := NewStore()
	store.Seed()
	ctx := context.Background()

	records, err := store.Events().ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	items, err := store.Lanterns().ListLanterns(ctx)
	require.NoError(t, err)
	require.Len(t, items, 5)

	replies, err := store.Lanterns().ListReplies(ctx, []string{items[len(items)-1].ID})
	require.NoError(t, err)
	require.NotEmpty(t, replies)
}

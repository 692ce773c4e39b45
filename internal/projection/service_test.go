package projection

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	v1 "github.com/bigsister-lab/bigsister/internal/api/v1"
	"github.com/bigsister-lab/bigsister/internal/core/storage"
	"github.com/bigsister-lab/bigsister/internal/core/storage/badgerstore"
	"github.com/bigsister-lab/bigsister/internal/directory"
	platformmocks "github.com/bigsister-lab/bigsister/internal/mocks/platform"
	storagemocks "github.com/bigsister-lab/bigsister/internal/mocks/storage"
	"github.com/bigsister-lab/bigsister/internal/platform"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	botID       = int64(99)
	moderatorID = int64(50)
	deniedID    = int64(12)
)

var fixtureNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// fixture is a query service over an in-memory badger store and a static
// directory of users 1..12, one bot and one moderator.
type fixture struct {
	t      *testing.T
	svc    *Service
	store  *badgerstore.Store
	nextID int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := badgerstore.Open("", time.Second, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	users := []directory.User{
		{ID: botID, Name: "robot", Bot: true, Roles: []string{"@everyone", "Bots"}},
		{ID: moderatorID, Name: "mod", Moderator: true, Roles: []string{"@everyone", "Moderator"}},
	}
	for id := int64(1); id <= 12; id++ {
		roles := []string{"@everyone", "Member"}
		if id%2 == 0 {
			roles = append(roles, "Artist")
		}
		users = append(users, directory.User{ID: id, Name: fmt.Sprintf("user%d", id), Roles: roles})
	}
	channels := []platform.Channel{
		{ID: 10, Name: "general", CategoryID: 100, Category: "Community"},
		{ID: 11, Name: "memes", CategoryID: 100, Category: "Community"},
		{ID: deniedID, Name: "staff", CategoryID: 200, Category: "Staff Only"},
		{ID: 13, Name: "offtopic", CategoryID: 300, Category: "community extras"},
	}
	dir, err := directory.New(users, channels)
	require.NoError(t, err)

	svc := NewService(store, platform.Collaborators{Identity: dir, Channels: dir}, []int64{deniedID})
	svc.nowFn = func() time.Time { return fixtureNow }

	return &fixture{t: t, svc: svc, store: store, nextID: 1000}
}

func (f *fixture) post(author, channel int64, content string, ago time.Duration) *v1.MessageEvent {
	f.t.Helper()
	f.nextID++
	ev := &v1.MessageEvent{
		ID:        f.nextID,
		Author:    author,
		ChannelID: channel,
		GuildID:   1,
		Content:   content,
		CreatedAt: fixtureNow.Add(-ago),
	}
	require.NoError(f.t, f.store.AppendMessage(context.Background(), ev))
	return ev
}

func (f *fixture) postN(n int, author, channel int64, ago time.Duration) {
	f.t.Helper()
	for i := 0; i < n; i++ {
		f.post(author, channel, "hi", ago+time.Duration(i)*time.Second)
	}
}

func (f *fixture) modlog(author, subject int64, ago time.Duration) {
	f.t.Helper()
	f.nextID++
	ev := &v1.ModlogEvent{
		ID:        f.nextID,
		Author:    author,
		ChannelID: 10,
		GuildID:   1,
		CreatedAt: fixtureNow.Add(-ago),
		Subject:   subject,
		Type:      v1.ModlogWarn,
	}
	_, err := f.store.AppendModlog(context.Background(), ev, time.Time{})
	require.NoError(f.t, err)
}

const day = 24 * time.Hour

func TestService_ChannelActivity_WindowContainment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.post(1, 10, "a", time.Hour)
	f.post(2, 10, "b", 3*day)
	f.post(2, 10, "c", 20*day)
	f.post(3, 10, "d", 60*day)
	f.post(4, 11, "other channel", time.Hour)

	tests := []struct {
		window   string
		total    int64
		distinct int64
	}{
		{window: "day", total: 1, distinct: 1},
		{window: "week", total: 2, distinct: 2},
		{window: "month", total: 3, distinct: 2},
		{window: "all", total: 4, distinct: 3},
	}

	all, err := f.svc.ChannelActivity(ctx, 10, "all")
	require.NoError(t, err)

	for _, tc := range tests {
		t.Run(tc.window, func(t *testing.T) {
			got, err := f.svc.ChannelActivity(ctx, 10, tc.window)
			require.NoError(t, err)
			require.Equal(t, v1.Activity{Total: tc.total, DistinctAuthors: tc.distinct}, got)
			require.GreaterOrEqual(t, all.Total, got.Total)
			require.GreaterOrEqual(t, all.DistinctAuthors, got.DistinctAuthors)
		})
	}

	server, err := f.svc.ServerActivity(ctx, "day")
	require.NoError(t, err)
	require.Equal(t, v1.Activity{Total: 2, DistinctAuthors: 2}, server)
}

func TestService_InvalidWindowNeverTouchesStore(t *testing.T) {
	store := storagemocks.NewEventStore(t)
	identity := platformmocks.NewIdentity(t)
	channels := platformmocks.NewChannelDirectory(t)
	svc := NewService(store, platform.Collaborators{Identity: identity, Channels: channels}, nil)
	ctx := context.Background()

	calls := map[string]func(string) error{
		"server": func(w string) error { _, err := svc.ServerActivity(ctx, w); return err },
		"channel": func(w string) error {
			_, err := svc.ChannelActivity(ctx, 10, w)
			return err
		},
		"channel set": func(w string) error {
			_, err := svc.ChannelSetActivity(ctx, ByCategory(1), w)
			return err
		},
		"history": func(w string) error {
			_, err := svc.ChannelHistory(ctx, 10, w, 0)
			return err
		},
		"leaderboard": func(w string) error {
			_, err := svc.Leaderboard(ctx, w, 10)
			return err
		},
		"modlogs": func(w string) error {
			_, err := svc.ModlogCount(ctx, 1, w)
			return err
		},
		"scoreboard": func(w string) error {
			_, err := svc.ModScoreboard(ctx, w)
			return err
		},
		"roles": func(w string) error {
			_, err := svc.ChannelRolePresence(ctx, 10, w)
			return err
		},
	}

	for name, call := range calls {
		for _, w := range []string{"", "Week", "year", "7d"} {
			t.Run(name+"/"+w, func(t *testing.T) {
				err := call(w)
				require.ErrorIs(t, err, ErrInvalidWindow)
				require.ErrorIs(t, err, ErrInvalidQuery)
			})
		}
	}
}

func TestService_DailyCounts_TrailingMonthUniqueDates(t *testing.T) {
	f := newFixture(t)

	f.post(1, 10, "a", time.Hour)
	f.post(2, 10, "b", 2*time.Hour)
	f.post(1, 10, "c", 3*day)
	f.post(1, 10, "d", 27*day)
	f.post(1, 10, "too old", 29*day)
	f.post(1, 11, "other channel", time.Hour)

	days, err := f.svc.DailyCounts(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, []v1.DayCount{
		{Date: "2026-02-02", Count: 1},
		{Date: "2026-02-26", Count: 1},
		{Date: "2026-03-01", Count: 2},
	}, days)

	since := fixtureNow.Add(-28 * day).Truncate(day)
	seen := make(map[string]bool)
	for _, d := range days {
		require.False(t, seen[d.Date], "duplicate date %s", d.Date)
		seen[d.Date] = true

		at, err := time.Parse("2006-01-02", d.Date)
		require.NoError(t, err)
		require.False(t, at.Before(since), "date %s outside trailing month", d.Date)
	}
}

func TestValidatePhrase(t *testing.T) {
	tests := []struct {
		phrase string
		ok     bool
	}{
		{phrase: "pog", ok: true},
		{phrase: "ünïcode", ok: true},
		{phrase: "two words"},
		{phrase: "tab\there"},
		{phrase: "@everyone"},
		{phrase: "snake_case"},
		{phrase: "100%"},
		{phrase: "glob*"},
		{phrase: ""},
	}
	for _, tc := range tests {
		t.Run(tc.phrase, func(t *testing.T) {
			err := ValidatePhrase(tc.phrase)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrMalformedQuery)
		})
	}
}

func TestService_PhraseCount(t *testing.T) {
	f := newFixture(t)

	f.postN(3, 1, 10, time.Hour)
	for i := 0; i < 3; i++ {
		f.post(1, 10, "so pog today", time.Duration(i)*time.Minute)
	}
	f.post(2, 11, "pogchamp", time.Hour)
	f.post(3, 10, "Pog", time.Hour)
	for i := 0; i < 5; i++ {
		f.post(botID, 10, "pog pog", time.Duration(i)*time.Minute)
		f.post(2, deniedID, "pog in private", time.Duration(i)*time.Minute)
	}

	got, err := f.svc.PhraseCount(context.Background(), "pog")
	require.NoError(t, err)
	require.Equal(t, []v1.RankedAuthor{
		{Rank: 1, Author: 1, Count: 3},
		{Rank: 2, Author: 2, Count: 1},
	}, got)

	_, err = f.svc.PhraseCount(context.Background(), "pog champ")
	require.ErrorIs(t, err, ErrMalformedQuery)
}

func TestService_PhraseCount_TopTenNonBots(t *testing.T) {
	f := newFixture(t)
	for author := int64(1); author <= 12; author++ {
		for i := int64(0); i < author; i++ {
			f.post(author, 10, "gg", time.Duration(i)*time.Minute)
		}
	}
	for i := 0; i < 20; i++ {
		f.post(botID, 10, "gg", time.Minute)
	}

	got, err := f.svc.PhraseCount(context.Background(), "gg")
	require.NoError(t, err)
	require.Len(t, got, PhraseTop)
	require.Equal(t, v1.RankedAuthor{Rank: 1, Author: 12, Count: 12}, got[0])
	require.Equal(t, v1.RankedAuthor{Rank: 10, Author: 3, Count: 3}, got[9])
}

func TestService_Leaderboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for author := int64(1); author <= 12; author++ {
		f.postN(int(author), author, 10, time.Hour)
	}
	f.postN(30, botID, 10, time.Hour)
	f.postN(40, 77, 10, time.Hour) // not in the directory
	f.postN(5, 1, 10, 60*day)

	got, err := f.svc.Leaderboard(ctx, "all", 10)
	require.NoError(t, err)
	require.Len(t, got, 10)
	require.Equal(t, v1.RankedAuthor{Rank: 1, Author: 12, Count: 12}, got[0])
	// Authors 1 and 6 tie at 6 and keep the store's ascending-author order.
	require.Equal(t, v1.RankedAuthor{Rank: 7, Author: 1, Count: 6}, got[6])
	require.Equal(t, v1.RankedAuthor{Rank: 8, Author: 6, Count: 6}, got[7])
	for i, entry := range got {
		require.Equal(t, i+1, entry.Rank)
		require.NotEqual(t, botID, entry.Author)
		require.NotEqual(t, int64(77), entry.Author)
		if i > 0 {
			require.LessOrEqual(t, entry.Count, got[i-1].Count)
		}
	}

	week, err := f.svc.Leaderboard(ctx, "week", 3)
	require.NoError(t, err)
	require.Equal(t, []v1.RankedAuthor{
		{Rank: 1, Author: 12, Count: 12},
		{Rank: 2, Author: 11, Count: 11},
		{Rank: 3, Author: 10, Count: 10},
	}, week)

	for _, n := range []int{0, -1, MaxLeaderboardSize + 1} {
		_, err := f.svc.Leaderboard(ctx, "all", n)
		require.ErrorIs(t, err, ErrMalformedQuery, "n=%d", n)
	}
}

func TestService_ModlogQueries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.modlog(moderatorID, 3, time.Hour)
	f.modlog(moderatorID, 3, 2*day)
	f.modlog(moderatorID, 4, 40*day)
	f.modlog(77, 3, time.Hour) // unknown moderator
	f.modlog(1, 5, time.Hour)

	count, err := f.svc.ModlogCount(ctx, 3, "week")
	require.NoError(t, err)
	require.Equal(t, int64(3), count)

	count, err = f.svc.ModlogCount(ctx, 3, "day")
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	board, err := f.svc.ModScoreboard(ctx, "all")
	require.NoError(t, err)
	require.Equal(t, []v1.RankedAuthor{
		{Rank: 1, Author: moderatorID, Count: 3},
		{Rank: 2, Author: 1, Count: 1},
	}, board)

	board, err = f.svc.ModScoreboard(ctx, "day")
	require.NoError(t, err)
	require.Equal(t, []v1.RankedAuthor{
		{Rank: 1, Author: 1, Count: 1},
		{Rank: 2, Author: moderatorID, Count: 1},
	}, board)
}

func TestService_PostCount(t *testing.T) {
	f := newFixture(t)
	f.postN(4, 2, 10, time.Hour)
	f.postN(2, 2, 11, 400*day)
	f.postN(1, 3, 10, time.Hour)

	count, err := f.svc.PostCount(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, int64(6), count)
}

// weekAgo places an event inside cohort week i (0 = most recent).
func weekAgo(i int) time.Duration {
	return time.Duration(i)*7*day + time.Hour
}

func TestService_ConsistencyCohort_SteadyOutranksBursty(t *testing.T) {
	f := newFixture(t)
	const bursty, steady, light, lighter = int64(1), int64(2), int64(3), int64(4)

	// Busy weeks: 10+6+1+3 over 4 authors, mean 5.
	// Quiet weeks: 6+4 over 2 authors, mean 5.
	for _, w := range []int{0, 2} {
		f.postN(10, bursty, 10, weekAgo(w))
		f.postN(6, steady, 10, weekAgo(w))
		f.postN(1, light, 10, weekAgo(w))
		f.postN(3, lighter, 10, weekAgo(w))
	}
	for _, w := range []int{1, 3} {
		f.postN(6, steady, 10, weekAgo(w))
		f.postN(4, light, 10, weekAgo(w))
	}
	f.postN(50, bursty, 11, weekAgo(0))

	got, err := f.svc.ConsistencyCohort(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, int64(10), got.ChannelID)
	require.Equal(t, []v1.CohortStanding{
		{Rank: 1, Author: steady, QualifyingWeeks: 4, AvgCount: 6, WeekCounts: []int64{6, 6, 6, 6}},
		{Rank: 2, Author: bursty, QualifyingWeeks: 2, AvgCount: 10, WeekCounts: []int64{10, 10}},
	}, got.Standings)

	require.Len(t, got.Weeks, 4)
	for i, w := range got.Weeks {
		require.Equal(t, int64(5), w.FloorMean, "week %d", i)
		require.False(t, w.Skipped)
		require.Equal(t, fixtureNow.Add(-time.Duration(i+1)*7*day), w.Since)
	}
	require.Equal(t, int64(20), got.Weeks[0].Total)
	require.Equal(t, int64(2), got.Weeks[1].DistinctAuthors)
}

func TestService_ConsistencyCohort_EmptyWeeksAreSkipped(t *testing.T) {
	f := newFixture(t)
	f.postN(3, 1, 10, weekAgo(1))
	f.postN(1, 2, 10, weekAgo(1))

	got, err := f.svc.ConsistencyCohort(context.Background(), 10)
	require.NoError(t, err)
	require.True(t, got.Weeks[0].Skipped)
	require.False(t, got.Weeks[1].Skipped)
	require.True(t, got.Weeks[2].Skipped)
	require.True(t, got.Weeks[3].Skipped)
	require.Equal(t, []v1.CohortStanding{
		{Rank: 1, Author: 1, QualifyingWeeks: 1, AvgCount: 3, WeekCounts: []int64{3}},
	}, got.Standings)
}

func TestService_ChannelSetActivity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.postN(1, 1, 10, time.Hour)
	f.postN(3, 2, 11, time.Hour)
	f.postN(1, 3, 13, time.Hour)
	f.postN(7, 4, deniedID, time.Hour)

	t.Run("category busiest first", func(t *testing.T) {
		got, err := f.svc.ChannelSetActivity(ctx, ByCategory(100), "day")
		require.NoError(t, err)
		require.Equal(t, []v1.ChannelActivity{
			{ChannelID: 11, ChannelName: "memes", Activity: v1.Activity{Total: 3, DistinctAuthors: 1}},
			{ChannelID: 10, ChannelName: "general", Activity: v1.Activity{Total: 1, DistinctAuthors: 1}},
		}, got)
	})

	t.Run("name part folds case and ties break by name", func(t *testing.T) {
		got, err := f.svc.ChannelSetActivity(ctx, ByNamePart("COMMUNITY"), "all")
		require.NoError(t, err)
		require.Len(t, got, 3)
		require.Equal(t, "memes", got[0].ChannelName)
		require.Equal(t, "general", got[1].ChannelName)
		require.Equal(t, "offtopic", got[2].ChannelName)
	})

	t.Run("explicit drops unknown ids", func(t *testing.T) {
		got, err := f.svc.ChannelSetActivity(ctx, Explicit(deniedID, 4242), "all")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, int64(7), got[0].Total)
	})

	t.Run("empty selection", func(t *testing.T) {
		_, err := f.svc.ChannelSetActivity(ctx, ByCategory(999), "all")
		require.ErrorIs(t, err, ErrEmptySelection)
		require.ErrorIs(t, err, ErrInvalidQuery)
	})

	t.Run("malformed selector", func(t *testing.T) {
		_, err := f.svc.ChannelSetActivity(ctx, ChannelSelector{Kind: "regex"}, "all")
		require.ErrorIs(t, err, ErrMalformedQuery)
	})
}

func TestService_ChannelHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	third := f.post(1, 10, "third", time.Minute)
	first := f.post(2, 10, "first", time.Hour)
	second := f.post(3, 10, "second", 30*time.Minute)
	f.post(4, 11, "elsewhere", time.Minute)

	got, err := f.svc.ChannelHistory(ctx, 10, "day", 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, first.ID, got[0].ID)
	require.Equal(t, second.ID, got[1].ID)
	require.Equal(t, third.ID, got[2].ID)

	got, err = f.svc.ChannelHistory(ctx, 10, "all", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	_, err = f.svc.ChannelHistory(ctx, 10, "all", MaxHistoryLimit+1)
	require.ErrorIs(t, err, ErrMalformedQuery)
}

func TestService_RolePresence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.svc.RolePresence(ctx, []int64{1, 2, 4, 4, botID, 77})
	require.NoError(t, err)
	require.Equal(t, []v1.RoleCount{
		{Role: "Member", Count: 3},
		{Role: "Artist", Count: 2},
		{Role: "Bots", Count: 1},
	}, got)

	_, err = f.svc.RolePresence(ctx, nil)
	require.ErrorIs(t, err, ErrMalformedQuery)

	f.postN(2, 1, 10, time.Hour)
	f.postN(1, moderatorID, 10, time.Hour)
	f.postN(1, 2, 10, 10*day)

	got, err = f.svc.ChannelRolePresence(ctx, 10, "week")
	require.NoError(t, err)
	require.Equal(t, []v1.RoleCount{
		{Role: "Member", Count: 1},
		{Role: "Moderator", Count: 1},
	}, got)
}

func TestService_DuplicateAppendLeavesResultsUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ev := f.post(1, 10, "once", time.Hour)
	f.post(2, 10, "other", time.Hour)

	before, err := f.svc.ServerActivity(ctx, "all")
	require.NoError(t, err)
	board, err := f.svc.Leaderboard(ctx, "all", 10)
	require.NoError(t, err)

	require.ErrorIs(t, f.store.AppendMessage(ctx, ev), storage.ErrDuplicate)

	after, err := f.svc.ServerActivity(ctx, "all")
	require.NoError(t, err)
	require.Equal(t, before, after)
	boardAfter, err := f.svc.Leaderboard(ctx, "all", 10)
	require.NoError(t, err)
	require.Equal(t, board, boardAfter)
}

func TestService_StoreErrorsPropagate(t *testing.T) {
	store := storagemocks.NewEventStore(t)
	identity := platformmocks.NewIdentity(t)
	channels := platformmocks.NewChannelDirectory(t)
	svc := NewService(store, platform.Collaborators{Identity: identity, Channels: channels}, nil)
	ctx := context.Background()

	store.EXPECT().CountMessages(mock.Anything, mock.Anything).Return(v1.Activity{}, storage.ErrTimeout).Once()
	_, err := svc.ServerActivity(ctx, "all")
	require.ErrorIs(t, err, storage.ErrTimeout)

	store.EXPECT().MessageAuthorCounts(mock.Anything, mock.Anything).
		Return([]v1.AuthorCount{{Author: 1, Count: 2}}, nil).Once()
	identity.EXPECT().IsBot(mock.Anything, int64(1)).Return(false, fmt.Errorf("gateway down")).Once()
	_, err = svc.Leaderboard(ctx, "all", 10)
	require.ErrorContains(t, err, "gateway down")

	channels.EXPECT().Channels(mock.Anything).Return(nil, fmt.Errorf("directory offline")).Once()
	_, err = svc.ChannelSetActivity(ctx, ByCategory(1), "all")
	require.ErrorContains(t, err, "directory offline")
}

func TestService_PhraseCount_PushesDeniedChannels(t *testing.T) {
	store := storagemocks.NewEventStore(t)
	identity := platformmocks.NewIdentity(t)
	channels := platformmocks.NewChannelDirectory(t)
	svc := NewService(store, platform.Collaborators{Identity: identity, Channels: channels}, []int64{7, 8})

	store.EXPECT().MessageAuthorCounts(mock.Anything, storage.Filter{
		ContentContains:   "hello",
		ExcludeChannelIDs: []int64{7, 8},
	}).Return(nil, nil).Once()

	got, err := svc.PhraseCount(context.Background(), "hello")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestNewService_PanicsOnMissingCollaborators(t *testing.T) {
	store := storagemocks.NewEventStore(t)
	identity := platformmocks.NewIdentity(t)
	channels := platformmocks.NewChannelDirectory(t)

	require.Panics(t, func() {
		NewService(nil, platform.Collaborators{Identity: identity, Channels: channels}, nil)
	})
	require.Panics(t, func() { NewService(store, platform.Collaborators{Channels: channels}, nil) })
	require.Panics(t, func() { NewService(store, platform.Collaborators{Identity: identity}, nil) })
}

package badgerstore

import (
	"context"
	"log/slog"
	"slices"
	"testing"
	"time"

	v1 "github.com/bigsister-lab/bigsister/internal/api/v1"
	"github.com/bigsister-lab/bigsister/internal/core/storage"
	"github.com/bigsister-lab/bigsister/internal/core/window"
	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var base = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, time.Second, slog.Default())
}

func msg(id, author, channel int64, at time.Time, content string) *v1.MessageEvent {
	return &v1.MessageEvent{
		ID:          id,
		Author:      author,
		ChannelID:   channel,
		ChannelName: "general",
		GuildID:     1,
		Content:     content,
		CreatedAt:   at,
	}
}

func modlog(id, author, subject int64, at time.Time, kind v1.ModlogType) *v1.ModlogEvent {
	return &v1.ModlogEvent{
		ID:          id,
		Author:      author,
		ChannelID:   3,
		ChannelName: "mod-log",
		GuildID:     1,
		Content:     "!" + string(kind),
		CreatedAt:   at,
		Subject:     subject,
		Type:        kind,
	}
}

func TestStore_AppendAndGetMessage(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	ctx := context.Background()

	event := msg(10, 42, 7, base, "hello gophers")
	req.NoError(store.AppendMessage(ctx, event))

	got, err := store.GetMessage(ctx, 10)
	req.NoError(err)
	req.Equal(event, got)

	req.ErrorIs(store.AppendMessage(ctx, msg(10, 99, 8, base, "other")), storage.ErrDuplicate)

	// The first write wins.
	got, err = store.GetMessage(ctx, 10)
	req.NoError(err)
	req.Equal(int64(42), got.Author)

	_, err = store.GetMessage(ctx, 11)
	req.ErrorIs(err, storage.ErrNotFound)
}

func TestStore_AppendModlog_ReturnsWindowedSubjectCount(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	ctx := context.Background()
	since := base.AddDate(0, -6, 0)

	// Outside the lookback, never counted.
	count, err := store.AppendModlog(ctx, modlog(1, 5, 42, since.Add(-time.Hour), v1.ModlogWarn), since)
	req.NoError(err)
	req.Equal(int64(0), count)

	for i := int64(0); i < 3; i++ {
		count, err = store.AppendModlog(ctx, modlog(10+i, 5, 42, base.Add(time.Duration(i)*time.Minute), v1.ModlogMute), since)
		req.NoError(err)
		req.Equal(i+1, count)
	}

	// Another subject is counted independently.
	count, err = store.AppendModlog(ctx, modlog(20, 5, 43, base, v1.ModlogWarn), since)
	req.NoError(err)
	req.Equal(int64(1), count)

	_, err = store.AppendModlog(ctx, modlog(10, 5, 42, base, v1.ModlogWarn), since)
	req.ErrorIs(err, storage.ErrDuplicate)

	got, err := store.GetModlog(ctx, 11)
	req.NoError(err)
	req.Equal(v1.ModlogMute, got.Type)
	req.Equal(int64(42), got.Subject)
}

func TestStore_AppendModlog_ConcurrentCountsAreDistinct(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	since := base.AddDate(0, -6, 0)

	const n = 10
	counts := make([]int64, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			c, err := store.AppendModlog(ctx, modlog(int64(100+i), 5, 42, base, v1.ModlogWarn), since)
			counts[i] = c
			return err
		})
	}
	require.NoError(t, g.Wait())

	slices.Sort(counts)
	require.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, counts)
}

func TestStore_ScanAndAggregate(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	ctx := context.Background()

	day2 := base.Add(24 * time.Hour)
	events := []*v1.MessageEvent{
		msg(5, 1, 7, day2, "gopher news"),
		msg(3, 2, 7, base, "hello"),
		msg(4, 1, 7, base, "GOPHER"),
		msg(1, 1, 8, base.Add(time.Hour), "gopher in the secret channel"),
		msg(2, 3, 7, day2.Add(time.Hour), "gopher gopher"),
	}
	for _, e := range events {
		req.NoError(store.AppendMessage(ctx, e))
	}

	scanned, err := store.ScanMessages(ctx, storage.Filter{ChannelIDs: []int64{7}})
	req.NoError(err)
	ids := make([]int64, 0, len(scanned))
	for _, e := range scanned {
		ids = append(ids, e.ID)
	}
	req.Equal([]int64{3, 4, 5, 2}, ids)

	limited, err := store.ScanMessages(ctx, storage.Filter{Limit: 2})
	req.NoError(err)
	req.Len(limited, 2)

	activity, err := store.CountMessages(ctx, storage.Filter{ChannelIDs: []int64{7}})
	req.NoError(err)
	req.Equal(v1.Activity{Total: 4, DistinctAuthors: 3}, activity)

	windowed, err := store.CountMessages(ctx, storage.Filter{Range: window.Range{Since: day2}})
	req.NoError(err)
	req.Equal(int64(2), windowed.Total)

	phrase, err := store.MessageAuthorCounts(ctx, storage.Filter{
		ContentContains:   "gopher",
		ExcludeChannelIDs: []int64{8},
	})
	req.NoError(err)
	req.Equal([]v1.AuthorCount{{Author: 1, Count: 1}, {Author: 3, Count: 1}}, phrase)

	all, err := store.MessageAuthorCounts(ctx, storage.Filter{})
	req.NoError(err)
	req.Equal([]v1.AuthorCount{{Author: 1, Count: 3}, {Author: 2, Count: 1}, {Author: 3, Count: 1}}, all)

	days, err := store.DailyMessageCounts(ctx, storage.Filter{ChannelIDs: []int64{7}})
	req.NoError(err)
	req.Equal([]v1.DayCount{{Date: "2026-10-01", Count: 2}, {Date: "2026-10-02", Count: 2}}, days)

	authors, err := store.DistinctMessageAuthors(ctx, storage.Filter{ChannelIDs: []int64{7}})
	req.NoError(err)
	req.Equal([]int64{1, 2, 3}, authors)

	empty, err := store.MessageAuthorCounts(ctx, storage.Filter{ChannelIDs: []int64{999}})
	req.NoError(err)
	req.NotNil(empty)
	req.Empty(empty)
}

func TestStore_ModlogQueriesIgnoreSubjectIndex(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	ctx := context.Background()
	since := base.AddDate(0, -6, 0)

	for i, mod := range []int64{5, 5, 6} {
		_, err := store.AppendModlog(ctx, modlog(int64(i+1), mod, 42, base.Add(time.Duration(i)*time.Minute), v1.ModlogWarn), since)
		req.NoError(err)
	}

	count, err := store.CountModlogs(ctx, storage.Filter{Subject: 42})
	req.NoError(err)
	req.Equal(int64(3), count)

	mods, err := store.ModlogAuthorCounts(ctx, storage.Filter{})
	req.NoError(err)
	req.Equal([]v1.AuthorCount{{Author: 5, Count: 2}, {Author: 6, Count: 1}}, mods)

	scanned, err := store.ScanModlogs(ctx, storage.Filter{Author: 6})
	req.NoError(err)
	req.Len(scanned, 1)
	req.Equal(int64(3), scanned[0].ID)
}

func TestStore_CanceledContext(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.AppendMessage(ctx, msg(1, 1, 1, base, "x"))
	require.ErrorIs(t, err, context.Canceled)

	_, err = store.ScanMessages(ctx, storage.Filter{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestStore_OpenInMemory(t *testing.T) {
	store, err := Open("", time.Second, nil)
	require.NoError(t, err)
	require.NoError(t, store.AppendMessage(context.Background(), msg(1, 1, 1, base, "x")))
	require.NoError(t, store.Close())
}

func TestStore_PingAfterClose(t *testing.T) {
	store, err := Open("", time.Second, nil)
	require.NoError(t, err)
	require.NoError(t, store.Ping(context.Background()))
	require.NoError(t, store.Close())
	require.ErrorIs(t, store.Ping(context.Background()), storage.ErrUnavailable)
}

func TestStore_AggregatesFoldOverMatches(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 60; i++ {
		at := base.Add(time.Duration(i%3) * 24 * time.Hour)
		req.NoError(store.AppendMessage(ctx, msg(i, 1+i%4, 7, at, "x")))
	}
	filter := storage.Filter{Range: window.Range{Since: base, Until: base.Add(48 * time.Hour)}}

	activity, err := store.CountMessages(ctx, filter)
	req.NoError(err)
	req.Equal(v1.Activity{Total: 40, DistinctAuthors: 4}, activity)

	days, err := store.DailyMessageCounts(ctx, filter)
	req.NoError(err)
	req.Equal([]v1.DayCount{{Date: "2026-10-01", Count: 20}, {Date: "2026-10-02", Count: 20}}, days)

	authors, err := store.DistinctMessageAuthors(ctx, filter)
	req.NoError(err)
	req.Equal([]int64{1, 2, 3, 4}, authors)

	rows, err := store.MessageAuthorCounts(ctx, filter)
	req.NoError(err)
	req.Len(rows, 4)
	req.Equal(int64(40), rows[0].Count+rows[1].Count+rows[2].Count+rows[3].Count)
}

func TestStore_EachStopsWhenCanceledMidway(t *testing.T) {
	store := newTestStore(t)
	for i := int64(1); i <= 10; i++ {
		require.NoError(t, store.AppendMessage(context.Background(), msg(i, i, 7, base, "x")))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	visited := 0
	err := store.eachMessage(ctx, "count messages", storage.Filter{}, func(*v1.MessageEvent) {
		visited++
		if visited == 3 {
			cancel()
		}
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 3, visited)
}

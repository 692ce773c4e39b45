package badgerstore

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	v1 "github.com/bigsister-lab/bigsister/internal/api/v1"
	"github.com/bigsister-lab/bigsister/internal/core/storage"
	"github.com/bigsister-lab/bigsister/internal/core/window"
	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

const defaultOpTimeout = 10 * time.Second

// Store implements storage.EventStore on an embedded BadgerDB.
// Appends are serialized by writeMu so the count returned by AppendModlog
// reflects every modlog committed before it.
type Store struct {
	db        *badger.DB
	log       *slog.Logger
	opTimeout time.Duration
	writeMu   sync.Mutex
}

// Open opens (or creates) a store at path. An empty path opens an in-memory
// store that is lost on Close.
func Open(path string, opTimeout time.Duration, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	opts := badger.DefaultOptions(path).WithLogger(slogLogger{log: log})
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %q: %w", path, err)
	}

	log.Info("[Badger] Store opened", "path", path, "in_memory", path == "")
	return New(db, opTimeout, log), nil
}

// New wraps an already open database.
func New(db *badger.DB, opTimeout time.Duration, log *slog.Logger) *Store {
	if opTimeout <= 0 {
		opTimeout = defaultOpTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{db: db, log: log, opTimeout: opTimeout}
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opTimeout)
}

// AppendMessage persists one message.
func (s *Store) AppendMessage(ctx context.Context, event *v1.MessageEvent) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode message %d: %w", event.ID, err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return storage.Classify(ctx, "append message", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		key := messageKey(event.ID)
		if exists, err := keyExists(txn, key); err != nil || exists {
			if exists {
				return storage.ErrDuplicate
			}
			return err
		}
		return txn.Set(key, value)
	})
	if err != nil {
		return storage.Classify(ctx, "append message", err)
	}

	s.log.Debug("[Badger] Appended message",
		"event_id", event.ID,
		"channel_id", event.ChannelID,
		"author", event.Author)
	return nil
}

// AppendModlog persists one modlog and returns the subject's modlog count
// since countSince, including this one.
func (s *Store) AppendModlog(ctx context.Context, event *v1.ModlogEvent, countSince time.Time) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	value, err := json.Marshal(event)
	if err != nil {
		return 0, fmt.Errorf("failed to encode modlog %d: %w", event.ID, err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, storage.Classify(ctx, "append modlog", err)
	}

	var count int64
	err = s.db.Update(func(txn *badger.Txn) error {
		key := modlogKey(event.ID)
		if exists, err := keyExists(txn, key); err != nil || exists {
			if exists {
				return storage.ErrDuplicate
			}
			return err
		}
		if err := txn.Set(key, value); err != nil {
			return err
		}
		if err := txn.Set(subjectIndexKey(event.Subject, event.CreatedAt, event.ID), nil); err != nil {
			return err
		}

		// Read-write iterators include the pending index entry above.
		count = countSubject(txn, event.Subject, countSince)
		return nil
	})
	if err != nil {
		return 0, storage.Classify(ctx, "append modlog", err)
	}

	s.log.Debug("[Badger] Appended modlog",
		"event_id", event.ID,
		"subject", event.Subject,
		"type", event.Type,
		"subject_count", count)
	return count, nil
}

func countSubject(txn *badger.Txn, subject int64, since time.Time) int64 {
	prefix := subjectPrefix(subject)
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	var n int64
	for it.Seek(subjectSeekKey(subject, since)); it.ValidForPrefix(prefix); it.Next() {
		n++
	}
	return n
}

func keyExists(txn *badger.Txn, key []byte) (bool, error) {
	_, err := txn.Get(key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}

// GetMessage fetches one message by id.
func (s *Store) GetMessage(ctx context.Context, id int64) (*v1.MessageEvent, error) {
	var evt v1.MessageEvent
	if err := s.get(ctx, "get message", messageKey(id), &evt); err != nil {
		return nil, err
	}
	return &evt, nil
}

// GetModlog fetches one modlog by id.
func (s *Store) GetModlog(ctx context.Context, id int64) (*v1.ModlogEvent, error) {
	var evt v1.ModlogEvent
	if err := s.get(ctx, "get modlog", modlogKey(id), &evt); err != nil {
		return nil, err
	}
	return &evt, nil
}

func (s *Store) get(ctx context.Context, op string, key []byte, dst any) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return storage.Classify(ctx, op, err)
	}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dst)
		})
	})
	return storage.Classify(ctx, op, err)
}

// each decodes every value under prefix and hands the ones accepted by keep
// to fn. Nothing is retained between items, so aggregates fold in constant
// memory per group. The context is checked between items.
func each[T any](ctx context.Context, s *Store, op string, prefix string, keep func(*T) bool, fn func(*T)) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return storage.Classify(ctx, op, err)
	}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.ValidForPrefix(opts.Prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var evt T
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &evt)
			}); err != nil {
				return fmt.Errorf("failed to decode %s: %w", it.Item().Key(), err)
			}
			if keep(&evt) {
				fn(&evt)
			}
		}
		return nil
	})
	return storage.Classify(ctx, op, err)
}

// scan collects the matching events. Only row-returning reads use it.
func scan[T any](ctx context.Context, s *Store, op string, prefix string, keep func(*T) bool) ([]*T, error) {
	out := make([]*T, 0)
	if err := each(ctx, s, op, prefix, keep, func(evt *T) { out = append(out, evt) }); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) eachMessage(ctx context.Context, op string, filter storage.Filter, fn func(*v1.MessageEvent)) error {
	return each(ctx, s, op, prefixMessage, filter.MatchMessage, fn)
}

func (s *Store) eachModlog(ctx context.Context, op string, filter storage.Filter, fn func(*v1.ModlogEvent)) error {
	return each(ctx, s, op, prefixModlog, filter.MatchModlog, fn)
}

// ScanMessages returns matching messages ordered by created_at, id.
func (s *Store) ScanMessages(ctx context.Context, filter storage.Filter) ([]*v1.MessageEvent, error) {
	events, err := scan(ctx, s, "scan messages", prefixMessage, filter.MatchMessage)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(events, func(a, b *v1.MessageEvent) int {
		return cmpEvent(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	})
	return limit(events, filter.Limit), nil
}

// ScanModlogs returns matching modlogs ordered by created_at, id.
func (s *Store) ScanModlogs(ctx context.Context, filter storage.Filter) ([]*v1.ModlogEvent, error) {
	events, err := scan(ctx, s, "scan modlogs", prefixModlog, filter.MatchModlog)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(events, func(a, b *v1.ModlogEvent) int {
		return cmpEvent(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	})
	return limit(events, filter.Limit), nil
}

// CountMessages returns the total and distinct-author counts of matching messages.
func (s *Store) CountMessages(ctx context.Context, filter storage.Filter) (v1.Activity, error) {
	var total int64
	authors := make(map[int64]struct{})
	err := s.eachMessage(ctx, "count messages", filter, func(e *v1.MessageEvent) {
		total++
		authors[e.Author] = struct{}{}
	})
	if err != nil {
		return v1.Activity{}, err
	}
	return v1.Activity{Total: total, DistinctAuthors: int64(len(authors))}, nil
}

// CountModlogs returns the number of matching modlogs.
func (s *Store) CountModlogs(ctx context.Context, filter storage.Filter) (int64, error) {
	var total int64
	if err := s.eachModlog(ctx, "count modlogs", filter, func(*v1.ModlogEvent) { total++ }); err != nil {
		return 0, err
	}
	return total, nil
}

// MessageAuthorCounts groups matching messages by author.
func (s *Store) MessageAuthorCounts(ctx context.Context, filter storage.Filter) ([]v1.AuthorCount, error) {
	counts := make(map[int64]int)
	if err := s.eachMessage(ctx, "group messages by author", filter, func(e *v1.MessageEvent) { counts[e.Author]++ }); err != nil {
		return nil, err
	}
	return authorCounts(counts), nil
}

// ModlogAuthorCounts groups matching modlogs by moderator.
func (s *Store) ModlogAuthorCounts(ctx context.Context, filter storage.Filter) ([]v1.AuthorCount, error) {
	counts := make(map[int64]int)
	if err := s.eachModlog(ctx, "group modlogs by author", filter, func(e *v1.ModlogEvent) { counts[e.Author]++ }); err != nil {
		return nil, err
	}
	return authorCounts(counts), nil
}

// DailyMessageCounts groups matching messages by UTC day, oldest first.
func (s *Store) DailyMessageCounts(ctx context.Context, filter storage.Filter) ([]v1.DayCount, error) {
	byDay := make(map[string]int)
	err := s.eachMessage(ctx, "group messages by day", filter, func(e *v1.MessageEvent) {
		byDay[window.DayKey(e.CreatedAt)]++
	})
	if err != nil {
		return nil, err
	}
	days := lo.MapToSlice(byDay, func(day string, n int) v1.DayCount {
		return v1.DayCount{Date: day, Count: int64(n)}
	})
	slices.SortFunc(days, func(a, b v1.DayCount) int { return cmp.Compare(a.Date, b.Date) })
	return days, nil
}

// DistinctMessageAuthors lists every author with a matching message, ascending.
func (s *Store) DistinctMessageAuthors(ctx context.Context, filter storage.Filter) ([]int64, error) {
	seen := make(map[int64]struct{})
	if err := s.eachMessage(ctx, "list message authors", filter, func(e *v1.MessageEvent) { seen[e.Author] = struct{}{} }); err != nil {
		return nil, err
	}
	authors := lo.Keys(seen)
	slices.Sort(authors)
	return authors, nil
}

// Ping reports whether the store is still open.
func (s *Store) Ping(_ context.Context) error {
	if s.db.IsClosed() {
		return fmt.Errorf("badger: %w", storage.ErrUnavailable)
	}
	return nil
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close badger: %w", err)
	}
	s.log.Info("[Badger] Store closed")
	return nil
}

func authorCounts(counts map[int64]int) []v1.AuthorCount {
	rows := lo.MapToSlice(counts, func(author int64, n int) v1.AuthorCount {
		return v1.AuthorCount{Author: author, Count: int64(n)}
	})
	slices.SortFunc(rows, func(a, b v1.AuthorCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Author, b.Author)
	})
	return rows
}

func cmpEvent(aAt time.Time, aID int64, bAt time.Time, bID int64) int {
	if c := aAt.Compare(bAt); c != 0 {
		return c
	}
	return cmp.Compare(aID, bID)
}

func limit[T any](events []T, n int) []T {
	if n > 0 && len(events) > n {
		return events[:n]
	}
	return events
}

var _ storage.EventStore = (*Store)(nil)

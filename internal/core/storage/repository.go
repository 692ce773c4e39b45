package storage

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	v1 "github.com/bigsister-lab/bigsister/internal/api/v1"
	"github.com/bigsister-lab/bigsister/internal/core/window"
)

var (
	// ErrDuplicate is returned when an event with the same id already exists in its relation.
	ErrDuplicate = errors.New("event already exists")

	// ErrNotFound is returned by point lookups for an unknown id.
	ErrNotFound = errors.New("event not found")

	// ErrTimeout is returned when a store operation exceeds its deadline.
	ErrTimeout = errors.New("store operation timed out")

	// ErrUnavailable is returned when the underlying persistence failed.
	ErrUnavailable = errors.New("store unavailable")
)

// EventStore is the append-only persistence contract for messages and modlogs.
//
// Appends are serialized by the store and visible to every read that starts
// after they return. Events are never updated or deleted.
type EventStore interface {
	// AppendMessage persists one message. Returns ErrDuplicate if the id exists.
	AppendMessage(ctx context.Context, event *v1.MessageEvent) error

	// AppendModlog persists one modlog and returns how many modlogs the event's
	// subject has with created_at >= countSince, including the new one.
	// The count is taken atomically with the insert: no concurrent append for
	// the same subject can interleave between the two.
	// Returns ErrDuplicate (and no count) if the id exists.
	AppendModlog(ctx context.Context, event *v1.ModlogEvent, countSince time.Time) (int64, error)

	// GetMessage and GetModlog are point lookups by id. Return ErrNotFound.
	GetMessage(ctx context.Context, id int64) (*v1.MessageEvent, error)
	GetModlog(ctx context.Context, id int64) (*v1.ModlogEvent, error)

	// ScanMessages and ScanModlogs return matching events ordered by
	// created_at ASC, id ASC.
	ScanMessages(ctx context.Context, filter Filter) ([]*v1.MessageEvent, error)
	ScanModlogs(ctx context.Context, filter Filter) ([]*v1.ModlogEvent, error)

	// CountMessages returns (total, distinct authors) without materializing rows.
	CountMessages(ctx context.Context, filter Filter) (v1.Activity, error)
	CountModlogs(ctx context.Context, filter Filter) (int64, error)

	// MessageAuthorCounts and ModlogAuthorCounts group matching events by author,
	// ordered by count DESC, author ASC.
	MessageAuthorCounts(ctx context.Context, filter Filter) ([]v1.AuthorCount, error)
	ModlogAuthorCounts(ctx context.Context, filter Filter) ([]v1.AuthorCount, error)

	// DailyMessageCounts groups matching messages by UTC calendar day, ascending.
	// Days without messages are absent.
	DailyMessageCounts(ctx context.Context, filter Filter) ([]v1.DayCount, error)

	// DistinctMessageAuthors returns the ids of every author with a matching message, ascending.
	DistinctMessageAuthors(ctx context.Context, filter Filter) ([]int64, error)
}

// Filter narrows a scan or aggregate. Zero-valued fields do not filter.
type Filter struct {
	ChannelIDs        []int64
	ExcludeChannelIDs []int64
	Author            int64
	Subject           int64         // modlogs only
	Type              v1.ModlogType // modlogs only
	Range             window.Range
	ContentContains   string // case-sensitive substring, no wildcard semantics
	Limit             int    // scans only
}

// MatchMessage reports whether the message satisfies every set field of f.
// Backends that cannot push predicates down evaluate them with this.
func (f Filter) MatchMessage(e *v1.MessageEvent) bool {
	return f.matchCommon(e.ChannelID, e.Author, e.CreatedAt, e.Content)
}

// MatchModlog reports whether the modlog satisfies every set field of f.
func (f Filter) MatchModlog(e *v1.ModlogEvent) bool {
	if f.Subject != 0 && e.Subject != f.Subject {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	return f.matchCommon(e.ChannelID, e.Author, e.CreatedAt, e.Content)
}

func (f Filter) matchCommon(channelID, author int64, createdAt time.Time, content string) bool {
	if len(f.ChannelIDs) > 0 && !slices.Contains(f.ChannelIDs, channelID) {
		return false
	}
	if slices.Contains(f.ExcludeChannelIDs, channelID) {
		return false
	}
	if f.Author != 0 && author != f.Author {
		return false
	}
	if !f.Range.Contains(createdAt) {
		return false
	}
	if f.ContentContains != "" && !strings.Contains(content, f.ContentContains) {
		return false
	}
	return true
}

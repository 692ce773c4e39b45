package projection

import (
	"errors"
	"fmt"

	v1 "github.com/bigsister-lab/bigsister/internal/api/v1"
)

var (
	// ErrInvalidQuery marks request validation errors that should return HTTP 400.
	// Every validation error wraps it, and none of them touches the store.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidWindow is returned for a window token outside day|week|month|all.
	ErrInvalidWindow = fmt.Errorf("%w: invalid window descriptor", ErrInvalidQuery)

	// ErrMalformedQuery is returned for arguments failing a guard, such as a
	// phrase with whitespace, a mention marker or a wildcard.
	ErrMalformedQuery = fmt.Errorf("%w: malformed query", ErrInvalidQuery)

	// ErrEmptySelection is returned when a channel selector matches nothing.
	ErrEmptySelection = fmt.Errorf("%w: selection matched no channels", ErrInvalidQuery)
)

func malformedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrMalformedQuery}, args...)...)
}

const (
	// PhraseTop is the number of ranks a phrase search returns.
	PhraseTop = 10

	DefaultLeaderboardSize = 10
	MaxLeaderboardSize     = 100

	DefaultHistoryLimit = 1000
	MaxHistoryLimit     = 10000
)

// ActivityResponse wraps an activity pair with its request context.
type ActivityResponse struct {
	Window    string `json:"window"`
	ChannelID int64  `json:"channel_id,string,omitempty"`
	v1.Activity
}

// ChannelSetRequest is the body of POST /v1/activity/channels.
type ChannelSetRequest struct {
	Window   string          `json:"window"`
	Selector ChannelSelector `json:"selector"`
}

// ChannelSetResponse lists per-channel activity, busiest first.
type ChannelSetResponse struct {
	Window   string               `json:"window"`
	Channels []v1.ChannelActivity `json:"channels"`
}

// RankingResponse is a leaderboard-shaped response.
type RankingResponse struct {
	Window  string            `json:"window,omitempty"`
	Phrase  string            `json:"phrase,omitempty"`
	Entries []v1.RankedAuthor `json:"entries"`
}

// CountResponse is a single-scalar response.
type CountResponse struct {
	Window string `json:"window,omitempty"`
	UserID int64  `json:"user_id,string"`
	Count  int64  `json:"count"`
}

// DailyResponse is the per-day series of a channel.
type DailyResponse struct {
	ChannelID int64         `json:"channel_id,string"`
	Days      []v1.DayCount `json:"days"`
}

// HistoryResponse is an ordered channel export.
type HistoryResponse struct {
	ChannelID int64              `json:"channel_id,string"`
	Window    string             `json:"window"`
	Messages  []*v1.MessageEvent `json:"messages"`
}

// RolesRequest is the body of POST /v1/roles.
type RolesRequest struct {
	Authors v1.IDs `json:"authors"`
}

// RolesResponse lists role occurrences, most common first.
type RolesResponse struct {
	ChannelID int64          `json:"channel_id,string,omitempty"`
	Window    string         `json:"window,omitempty"`
	Roles     []v1.RoleCount `json:"roles"`
}

package v1

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Snowflake ids exceed the 53-bit integer range of most JSON consumers,
// so every id on the wire is encoded as a string (`json:",string"`).

// ModlogType is the closed set of moderation actions recorded in the modlog.
type ModlogType string

const (
	ModlogWarn ModlogType = "warn"
	ModlogMute ModlogType = "mute"
)

// Valid reports whether t is a known modlog type.
func (t ModlogType) Valid() bool {
	return t == ModlogWarn || t == ModlogMute
}

// MessageEvent is one chat message as seen by the platform gateway.
// Immutable once stored.
type MessageEvent struct {
	// ID is the platform-assigned snowflake. It is unique, and increases with
	// wall-clock order, so it doubles as the tie-break when CreatedAt coincides.
	ID int64 `json:"id,string" validate:"gt=0"`

	// Author is the opaque numeric user id of the poster.
	Author int64 `json:"author,string" validate:"gt=0"`

	ChannelID   int64  `json:"channel_id,string" validate:"gt=0"`
	ChannelName string `json:"channel_name"`
	GuildID     int64  `json:"guild_id,string" validate:"gt=0"`

	// Content is the message text with mentions and markup stripped.
	Content string `json:"content"`

	CreatedAt time.Time `json:"created_at" validate:"required"`
}

// ModlogEvent is one moderation action (warn or mute) taken by a moderator
// against a subject user. It shares the id space of MessageEvent.
type ModlogEvent struct {
	ID int64 `json:"id,string" validate:"gt=0"`

	// Author is the moderator who issued the action.
	Author int64 `json:"author,string" validate:"gt=0"`

	ChannelID   int64     `json:"channel_id,string" validate:"gt=0"`
	ChannelName string    `json:"channel_name"`
	GuildID     int64     `json:"guild_id,string" validate:"gt=0"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at" validate:"required"`

	// Subject is the sanctioned user.
	Subject int64      `json:"subject,string" validate:"gt=0"`
	Type    ModlogType `json:"type" validate:"oneof=warn mute"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate ensures the message carries every system attribute.
func (e *MessageEvent) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("invalid message event: %w", err)
	}
	return nil
}

// Validate ensures the modlog carries every system attribute and a known type.
func (e *ModlogEvent) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("invalid modlog event: %w", err)
	}
	return nil
}

// AuthorCount is one row of an author-grouped aggregate.
type AuthorCount struct {
	Author int64 `json:"author,string"`
	Count  int64 `json:"count"`
}

// DayCount is the number of messages posted on one UTC calendar day.
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

// Activity is the (total, distinct authors) pair every activity query returns.
type Activity struct {
	Total           int64 `json:"total"`
	DistinctAuthors int64 `json:"distinct_authors"`
}

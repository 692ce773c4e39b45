package v1

import (
	"time"

	"github.com/shopspring/decimal"
)

// RankedAuthor is one leaderboard row. Rank starts at 1.
type RankedAuthor struct {
	Rank   int   `json:"rank"`
	Author int64 `json:"author,string"`
	Count  int64 `json:"count"`
}

// ChannelActivity is the activity of one channel in a channel-set query.
type ChannelActivity struct {
	ChannelID   int64  `json:"channel_id,string"`
	ChannelName string `json:"channel_name"`
	Activity
}

// WeekSummary describes one weekly sub-window of a consistency cohort.
type WeekSummary struct {
	Since           time.Time `json:"since"`
	Until           time.Time `json:"until"`
	Total           int64     `json:"total"`
	DistinctAuthors int64     `json:"distinct_authors"`

	// FloorMean is the qualification threshold: total / distinct, floored.
	FloorMean int64 `json:"floor_mean"`

	// ExactMean is reported for display only; it never decides membership.
	ExactMean decimal.Decimal `json:"exact_mean"`

	// Members are the authors strictly above FloorMean, count descending.
	Members []AuthorCount `json:"members"`

	// Skipped is set when the week had no authors and contributed nothing.
	Skipped bool `json:"skipped,omitempty"`
}

// CohortStanding is one row of the consistency leaderboard.
type CohortStanding struct {
	Rank            int   `json:"rank"`
	Author          int64 `json:"author,string"`
	QualifyingWeeks int   `json:"qualifying_weeks"`
	AvgCount        int64 `json:"avg_count"`

	// WeekCounts holds the qualifying counts, most recent week first.
	WeekCounts []int64 `json:"week_counts"`
}

// Consistency is the full cohort result for one channel.
type Consistency struct {
	ChannelID int64            `json:"channel_id,string"`
	Standings []CohortStanding `json:"standings"`
	Weeks     []WeekSummary    `json:"weeks"`
}

// RoleCount is the number of authors holding a role.
type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

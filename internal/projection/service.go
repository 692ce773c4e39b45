package projection

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode"

	v1 "github.com/bigsister-lab/bigsister/internal/api/v1"
	"github.com/bigsister-lab/bigsister/internal/core/cohort"
	"github.com/bigsister-lab/bigsister/internal/core/ranking"
	"github.com/bigsister-lab/bigsister/internal/core/roles"
	"github.com/bigsister-lab/bigsister/internal/core/storage"
	"github.com/bigsister-lab/bigsister/internal/core/window"
	"github.com/bigsister-lab/bigsister/internal/metrics"
	"github.com/bigsister-lab/bigsister/internal/platform"
	"golang.org/x/sync/errgroup"
)

// channelFanout bounds concurrent store reads of one channel-set query.
const channelFanout = 8

// Service implements the query layer. It holds no state besides its
// collaborators; every read goes to the store, so concurrent queries see
// whatever the store has committed.
type Service struct {
	store          storage.EventStore
	identity       platform.Identity
	channels       platform.ChannelDirectory
	deniedChannels []int64
	nowFn          func() time.Time
}

// NewService creates a query service. deniedChannels are excluded from
// phrase search.
func NewService(store storage.EventStore, collab platform.Collaborators, deniedChannels []int64) *Service {
	if store == nil {
		panic("projection: store must not be nil")
	}
	if collab.Identity == nil {
		panic("projection: identity must not be nil")
	}
	if collab.Channels == nil {
		panic("projection: channel directory must not be nil")
	}
	return &Service{
		store:          store,
		identity:       collab.Identity,
		channels:       collab.Channels,
		deniedChannels: slices.Clone(deniedChannels),
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// resolveWindow parses a descriptor and anchors it at the service clock.
func (s *Service) resolveWindow(desc string) (window.Range, error) {
	d, err := window.Parse(desc)
	if err != nil {
		return window.Range{}, fmt.Errorf("%w: %w", ErrInvalidWindow, err)
	}
	return d.Resolve(s.nowFn()), nil
}

// ServerActivity counts messages and distinct authors across the guild.
func (s *Service) ServerActivity(ctx context.Context, desc string) (v1.Activity, error) {
	defer metrics.ObserveQuery("server_activity", time.Now())

	r, err := s.resolveWindow(desc)
	if err != nil {
		return v1.Activity{}, err
	}
	return s.store.CountMessages(ctx, storage.Filter{Range: r})
}

// ChannelActivity counts messages and distinct authors in one channel.
func (s *Service) ChannelActivity(ctx context.Context, channelID int64, desc string) (v1.Activity, error) {
	defer metrics.ObserveQuery("channel_activity", time.Now())

	r, err := s.resolveWindow(desc)
	if err != nil {
		return v1.Activity{}, err
	}
	return s.store.CountMessages(ctx, storage.Filter{ChannelIDs: []int64{channelID}, Range: r})
}

// ChannelSetActivity resolves sel through the channel directory and returns
// the activity of every selected channel, busiest first and then by name.
func (s *Service) ChannelSetActivity(ctx context.Context, sel ChannelSelector, desc string) ([]v1.ChannelActivity, error) {
	defer metrics.ObserveQuery("channel_set_activity", time.Now())

	r, err := s.resolveWindow(desc)
	if err != nil {
		return nil, err
	}
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	all, err := s.channels.Channels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	selected := sel.Resolve(all)
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySelection, sel)
	}

	out := make([]v1.ChannelActivity, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(channelFanout)
	for i, ch := range selected {
		g.Go(func() error {
			activity, err := s.store.CountMessages(gctx, storage.Filter{ChannelIDs: []int64{ch.ID}, Range: r})
			if err != nil {
				return err
			}
			out[i] = v1.ChannelActivity{ChannelID: ch.ID, ChannelName: ch.Name, Activity: activity}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(out, func(a, b v1.ChannelActivity) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.ChannelName, b.ChannelName)
	})
	return out, nil
}

// DailyCounts buckets a channel's messages of the trailing month by UTC day.
// Days without messages are absent.
func (s *Service) DailyCounts(ctx context.Context, channelID int64) ([]v1.DayCount, error) {
	defer metrics.ObserveQuery("daily_counts", time.Now())

	r := window.Month.Resolve(s.nowFn())
	return s.store.DailyMessageCounts(ctx, storage.Filter{ChannelIDs: []int64{channelID}, Range: r})
}

// ChannelHistory returns a channel's messages in (created_at, id) order.
// limit defaults to DefaultHistoryLimit and may not exceed MaxHistoryLimit.
func (s *Service) ChannelHistory(ctx context.Context, channelID int64, desc string, limit int) ([]*v1.MessageEvent, error) {
	defer metrics.ObserveQuery("channel_history", time.Now())

	r, err := s.resolveWindow(desc)
	if err != nil {
		return nil, err
	}
	switch {
	case limit == 0:
		limit = DefaultHistoryLimit
	case limit < 0 || limit > MaxHistoryLimit:
		return nil, malformedf("limit must be between 1 and %d", MaxHistoryLimit)
	}
	return s.store.ScanMessages(ctx, storage.Filter{ChannelIDs: []int64{channelID}, Range: r, Limit: limit})
}

// ValidatePhrase accepts single tokens only: no whitespace, no mention
// marker, no SQL or glob wildcards.
func ValidatePhrase(phrase string) error {
	if phrase == "" {
		return malformedf("phrase is empty")
	}
	if strings.IndexFunc(phrase, unicode.IsSpace) >= 0 {
		return malformedf("phrase %q must be a single word", phrase)
	}
	if strings.ContainsAny(phrase, "@%_*?") {
		return malformedf("phrase %q contains a mention or wildcard character", phrase)
	}
	return nil
}

// PhraseCount ranks the authors who used phrase most, case-sensitively,
// outside the denied channels. Bots are skipped; at most PhraseTop ranks.
func (s *Service) PhraseCount(ctx context.Context, phrase string) ([]v1.RankedAuthor, error) {
	defer metrics.ObserveQuery("phrase_count", time.Now())

	if err := ValidatePhrase(phrase); err != nil {
		return nil, err
	}
	rows, err := s.store.MessageAuthorCounts(ctx, storage.Filter{
		ContentContains:   phrase,
		ExcludeChannelIDs: s.deniedChannels,
	})
	if err != nil {
		return nil, err
	}
	return ranking.TopN(ctx, rows, PhraseTop, ranking.ExcludeBots(s.identity))
}

// PostCount is the all-time number of messages by author.
func (s *Service) PostCount(ctx context.Context, author int64) (int64, error) {
	defer metrics.ObserveQuery("post_count", time.Now())

	activity, err := s.store.CountMessages(ctx, storage.Filter{Author: author})
	if err != nil {
		return 0, err
	}
	return activity.Total, nil
}

// Leaderboard ranks the n most active non-bot authors of the window.
func (s *Service) Leaderboard(ctx context.Context, desc string, n int) ([]v1.RankedAuthor, error) {
	defer metrics.ObserveQuery("leaderboard", time.Now())

	r, err := s.resolveWindow(desc)
	if err != nil {
		return nil, err
	}
	if n < 1 || n > MaxLeaderboardSize {
		return nil, malformedf("n must be between 1 and %d", MaxLeaderboardSize)
	}
	rows, err := s.store.MessageAuthorCounts(ctx, storage.Filter{Range: r})
	if err != nil {
		return nil, err
	}
	return ranking.TopN(ctx, rows, n, ranking.ExcludeBots(s.identity))
}

// ModlogCount is the number of modlogs against subject in the window.
func (s *Service) ModlogCount(ctx context.Context, subject int64, desc string) (int64, error) {
	defer metrics.ObserveQuery("modlog_count", time.Now())

	r, err := s.resolveWindow(desc)
	if err != nil {
		return 0, err
	}
	return s.store.CountModlogs(ctx, storage.Filter{Subject: subject, Range: r})
}

// ModScoreboard ranks every moderator by modlogs issued in the window.
func (s *Service) ModScoreboard(ctx context.Context, desc string) ([]v1.RankedAuthor, error) {
	defer metrics.ObserveQuery("mod_scoreboard", time.Now())

	r, err := s.resolveWindow(desc)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.ModlogAuthorCounts(ctx, storage.Filter{Range: r})
	if err != nil {
		return nil, err
	}
	return ranking.TopN(ctx, rows, 0, ranking.KnownUsers(s.identity))
}

// ConsistencyCohort ranks a channel's authors by how many of the last four
// weeks they posted above that week's mean. The weeks are read concurrently.
func (s *Service) ConsistencyCohort(ctx context.Context, channelID int64) (v1.Consistency, error) {
	defer metrics.ObserveQuery("consistency_cohort", time.Now())

	weeks := window.Weeks(s.nowFn())
	summaries := make([]v1.WeekSummary, len(weeks))

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range weeks {
		g.Go(func() error {
			rows, err := s.store.MessageAuthorCounts(gctx, storage.Filter{ChannelIDs: []int64{channelID}, Range: r})
			if err != nil {
				return err
			}
			summaries[i] = cohort.Summarize(cohort.Week{Range: r, Rows: rows})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return v1.Consistency{}, err
	}

	for _, w := range summaries {
		if w.Skipped {
			slog.Debug("[Query] Cohort week had no authors", "channel_id", channelID, "since", w.Since)
		}
	}

	return v1.Consistency{
		ChannelID: channelID,
		Standings: cohort.Rank(summaries),
		Weeks:     summaries,
	}, nil
}

// RolePresence counts the roles held across authors.
func (s *Service) RolePresence(ctx context.Context, authors []int64) ([]v1.RoleCount, error) {
	defer metrics.ObserveQuery("role_presence", time.Now())

	if len(authors) == 0 {
		return nil, malformedf("authors must not be empty")
	}
	return roles.Count(ctx, authors, s.identity)
}

// ChannelRolePresence counts the roles of everyone who posted in a channel
// during the window.
func (s *Service) ChannelRolePresence(ctx context.Context, channelID int64, desc string) ([]v1.RoleCount, error) {
	defer metrics.ObserveQuery("channel_role_presence", time.Now())

	r, err := s.resolveWindow(desc)
	if err != nil {
		return nil, err
	}
	authors, err := s.store.DistinctMessageAuthors(ctx, storage.Filter{ChannelIDs: []int64{channelID}, Range: r})
	if err != nil {
		return nil, err
	}
	return roles.Count(ctx, authors, s.identity)
}

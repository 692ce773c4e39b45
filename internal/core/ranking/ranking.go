// Package ranking turns author aggregates into ranked leaderboards.
package ranking

import (
	"context"
	"errors"
	"fmt"
	"slices"

	v1 "github.com/bigsister-lab/bigsister/internal/api/v1"
	"github.com/bigsister-lab/bigsister/internal/platform"
)

// BotChecker is the identity capability ranking depends on.
type BotChecker interface {
	IsBot(ctx context.Context, user int64) (bool, error)
}

// Keep decides whether an author may appear on a leaderboard.
type Keep func(ctx context.Context, author int64) (bool, error)

// ExcludeBots drops bot accounts and users the identity does not know.
func ExcludeBots(identity BotChecker) Keep {
	return func(ctx context.Context, author int64) (bool, error) {
		bot, err := identity.IsBot(ctx, author)
		if errors.Is(err, platform.ErrUnknownUser) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return !bot, nil
	}
}

// KnownUsers drops only users the identity does not know.
func KnownUsers(identity BotChecker) Keep {
	return func(ctx context.Context, author int64) (bool, error) {
		_, err := identity.IsBot(ctx, author)
		if errors.Is(err, platform.ErrUnknownUser) {
			return false, nil
		}
		return err == nil, err
	}
}

// TopN ranks rows by count descending. Equal counts keep their input order.
// keep is applied before truncation, so n bounds the filtered output; a nil
// keep admits everyone and n <= 0 means no bound. Ranks are 1-based and
// consecutive.
func TopN(ctx context.Context, rows []v1.AuthorCount, n int, keep Keep) ([]v1.RankedAuthor, error) {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b v1.AuthorCount) int {
		switch {
		case a.Count > b.Count:
			return -1
		case a.Count < b.Count:
			return 1
		default:
			return 0
		}
	})

	out := make([]v1.RankedAuthor, 0, min(len(sorted), max(n, 0)))
	for _, row := range sorted {
		if n > 0 && len(out) == n {
			break
		}
		if keep != nil {
			ok, err := keep(ctx, row.Author)
			if err != nil {
				return nil, fmt.Errorf("resolve author %d: %w", row.Author, err)
			}
			if !ok {
				continue
			}
		}
		out = append(out, v1.RankedAuthor{Rank: len(out) + 1, Author: row.Author, Count: row.Count})
	}
	return out, nil
}

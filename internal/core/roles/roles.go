// Package roles counts role memberships across a set of authors.
package roles

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	v1 "github.com/bigsister-lab/bigsister/internal/api/v1"
	"github.com/bigsister-lab/bigsister/internal/platform"
	"github.com/samber/lo"
)

// Resolver supplies role membership.
type Resolver interface {
	RolesOf(ctx context.Context, user int64) ([]string, error)
}

// Count returns how many distinct authors hold each role, most common first
// and then by role name. The default everyone role is never counted, and
// authors the resolver does not know are skipped.
func Count(ctx context.Context, authors []int64, resolver Resolver) ([]v1.RoleCount, error) {
	counts := make(map[string]int64)
	for _, author := range lo.Uniq(authors) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		held, err := resolver.RolesOf(ctx, author)
		if errors.Is(err, platform.ErrUnknownUser) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("resolve roles of %d: %w", author, err)
		}
		for _, role := range lo.Uniq(held) {
			if role == platform.EveryoneRole {
				continue
			}
			counts[role]++
		}
	}

	out := lo.MapToSlice(counts, func(role string, n int64) v1.RoleCount {
		return v1.RoleCount{Role: role, Count: n}
	})
	slices.SortFunc(out, func(a, b v1.RoleCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Role, b.Role)
	})
	return out, nil
}

// Package cohort computes the weekly above-mean consistency leaderboard.
//
// A trailing month is cut into window.CohortWeeks non-overlapping weeks. In
// each week the authors whose message count is strictly above the floored
// mean (total / distinct authors) form that week's cohort. Authors are then
// ranked by how many weekly cohorts they joined, and by the floored average
// of their qualifying counts.
package cohort

import (
	"cmp"
	"slices"

	v1 "github.com/bigsister-lab/bigsister/internal/api/v1"
	"github.com/bigsister-lab/bigsister/internal/core/window"
	"github.com/shopspring/decimal"
)

// Week is the per-author message count of one sub-window.
type Week struct {
	Range window.Range
	Rows  []v1.AuthorCount
}

// Summarize computes a week's totals, mean and cohort. Total and distinct
// authors derive from Rows so the mean and the members come from the same
// snapshot. A week without authors is marked Skipped and has no members.
func Summarize(w Week) v1.WeekSummary {
	summary := v1.WeekSummary{
		Since:     w.Range.Since,
		Until:     w.Range.Until,
		ExactMean: decimal.Zero,
		Members:   []v1.AuthorCount{},
	}

	var total int64
	for _, row := range w.Rows {
		total += row.Count
	}
	distinct := int64(len(w.Rows))
	summary.Total = total
	summary.DistinctAuthors = distinct

	if distinct == 0 {
		summary.Skipped = true
		return summary
	}

	summary.FloorMean = total / distinct
	summary.ExactMean = decimal.NewFromInt(total).DivRound(decimal.NewFromInt(distinct), 2)

	for _, row := range w.Rows {
		if row.Count > summary.FloorMean {
			summary.Members = append(summary.Members, row)
		}
	}
	slices.SortStableFunc(summary.Members, func(a, b v1.AuthorCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Author, b.Author)
	})
	return summary
}

// Rank merges weekly cohorts into standings. weeks are expected most recent
// first, and WeekCounts keeps that order. Ties on (weeks, average) fall back
// to ascending author id.
func Rank(weeks []v1.WeekSummary) []v1.CohortStanding {
	byAuthor := make(map[int64]*v1.CohortStanding)
	order := make([]int64, 0)

	for _, week := range weeks {
		for _, m := range week.Members {
			s, ok := byAuthor[m.Author]
			if !ok {
				s = &v1.CohortStanding{Author: m.Author}
				byAuthor[m.Author] = s
				order = append(order, m.Author)
			}
			s.QualifyingWeeks++
			s.WeekCounts = append(s.WeekCounts, m.Count)
		}
	}

	standings := make([]v1.CohortStanding, 0, len(order))
	for _, author := range order {
		s := byAuthor[author]
		var sum int64
		for _, c := range s.WeekCounts {
			sum += c
		}
		s.AvgCount = sum / int64(s.QualifyingWeeks)
		standings = append(standings, *s)
	}

	slices.SortFunc(standings, func(a, b v1.CohortStanding) int {
		if c := cmp.Compare(b.QualifyingWeeks, a.QualifyingWeeks); c != 0 {
			return c
		}
		if c := cmp.Compare(b.AvgCount, a.AvgCount); c != 0 {
			return c
		}
		return cmp.Compare(a.Author, b.Author)
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

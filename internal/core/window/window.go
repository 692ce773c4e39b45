package window

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Descriptor is a trailing time-window token accepted by every activity query.
type Descriptor string

const (
	Day   Descriptor = "day"
	Week  Descriptor = "week"
	Month Descriptor = "month"
	All   Descriptor = "all"
)

const (
	day = 24 * time.Hour

	// WeekSpan is the width of one consistency-cohort sub-window.
	WeekSpan = 7 * day

	// CohortWeeks is the number of sub-windows a trailing month is split into.
	CohortWeeks = 4

	// DayKeyLayout is the calendar-day bucket format used by daily counts.
	DayKeyLayout = "2006-01-02"
)

// ErrInvalidDescriptor is returned for any token outside the fixed catalog.
var ErrInvalidDescriptor = errors.New("invalid window descriptor")

// catalog maps each bounded descriptor to its trailing span.
// A month is a fixed 28 days so that it splits into exactly four weeks.
var catalog = map[Descriptor]time.Duration{
	Day:   day,
	Week:  WeekSpan,
	Month: CohortWeeks * WeekSpan,
}

// Parse validates a raw descriptor token. Matching is exact: "Week" is rejected.
func Parse(s string) (Descriptor, error) {
	d := Descriptor(s)
	if d == All {
		return d, nil
	}
	if _, ok := catalog[d]; ok {
		return d, nil
	}
	return "", fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidDescriptor, s, catalogList())
}

// Span returns the trailing duration of d; zero for All.
func (d Descriptor) Span() time.Duration {
	return catalog[d]
}

// Resolve turns the descriptor into a concrete range relative to now.
// Bounded descriptors produce [now-span, +inf); All produces an unbounded range.
func (d Descriptor) Resolve(now time.Time) Range {
	span, ok := catalog[d]
	if !ok {
		return Range{}
	}
	return Range{Since: now.Add(-span)}
}

// Range is a half-open time interval [Since, Until). A zero bound is unbounded.
type Range struct {
	Since time.Time
	Until time.Time
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	if !r.Since.IsZero() && t.Before(r.Since) {
		return false
	}
	if !r.Until.IsZero() && !t.Before(r.Until) {
		return false
	}
	return true
}

// Unbounded reports whether neither side of the range is set.
func (r Range) Unbounded() bool {
	return r.Since.IsZero() && r.Until.IsZero()
}

func (r Range) String() string {
	format := func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.UTC().Format(time.RFC3339)
	}
	return "[" + format(r.Since) + ", " + format(r.Until) + ")"
}

// Weeks partitions the trailing CohortWeeks*WeekSpan window ending at now into
// contiguous, non-overlapping weekly ranges, most recent first:
// [-7d,0), [-14d,-7d), [-21d,-14d), [-28d,-21d).
func Weeks(now time.Time) []Range {
	weeks := make([]Range, CohortWeeks)
	for i := range weeks {
		weeks[i] = Range{
			Since: now.Add(-time.Duration(i+1) * WeekSpan),
			Until: now.Add(-time.Duration(i) * WeekSpan),
		}
	}
	return weeks
}

// MonthsBack returns the start of a trailing lookback of the given number of
// calendar months.
func MonthsBack(now time.Time, months int) time.Time {
	return now.AddDate(0, -months, 0)
}

// DayKey truncates a timestamp to its UTC calendar day.
// Example: DayKey(2026-02-11T23:59:59-02:00) → "2026-02-12"
func DayKey(t time.Time) string {
	return t.UTC().Format(DayKeyLayout)
}

func catalogList() string {
	return strings.Join([]string{string(Day), string(Week), string(Month), string(All)}, ", ")
}

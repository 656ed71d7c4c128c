// Package engine derives budget status, spending trends, forecasts,
// and insights from expense records. Every function is a pure
// computation over the snapshot it is given: the engine holds no
// state, performs no I/O, and never logs. Divisions with a zero
// denominator resolve to 0 rather than failing.
package engine

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"spent/internal/model"
)

// Granularity selects the calendar bucket size for period aggregation.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ErrInvalidGranularity reports an unrecognized granularity value.
// It indicates a caller bug, not user error.
var ErrInvalidGranularity = errors.New("granularity must be day, week, or month")

// ParseGranularity converts a user-facing string into a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return Granularity(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGranularity, s)
	}
}

// ByCategory groups records by exact category string and reduces each
// group to a total, a count, and its share of the overall total.
// Categories absent from the record set are omitted. The result is
// sorted by total descending, ties broken by category name.
func ByCategory(records []model.Expense) []model.CategoryAggregate {
	catMap := make(map[string]*model.CategoryAggregate)
	var grandTotal float64

	for _, r := range records {
		ca, ok := catMap[r.Category]
		if !ok {
			ca = &model.CategoryAggregate{Category: r.Category}
			catMap[r.Category] = ca
		}
		ca.Total += r.Amount
		ca.Count++
		grandTotal += r.Amount
	}

	cats := make([]model.CategoryAggregate, 0, len(catMap))
	for _, ca := range catMap {
		if grandTotal > 0 {
			ca.Share = ca.Total / grandTotal
		}
		cats = append(cats, *ca)
	}

	sort.Slice(cats, func(i, j int) bool {
		if cats[i].Total != cats[j].Total {
			return cats[i].Total > cats[j].Total
		}
		return cats[i].Category < cats[j].Category
	})

	return cats
}

// ByPeriod groups records into calendar buckets of the given
// granularity and reduces each bucket to a total and a count. Buckets
// are keyed by period start and returned ascending. Empty buckets are
// not synthesized; consumers that need a dense series must recognize
// gaps themselves.
func ByPeriod(records []model.Expense, g Granularity) ([]model.PeriodAggregate, error) {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidGranularity, string(g))
	}

	bucketMap := make(map[string]*model.PeriodAggregate)

	for _, r := range records {
		start := periodStart(r.Date, g)
		label := periodLabel(start, g)
		pa, ok := bucketMap[label]
		if !ok {
			pa = &model.PeriodAggregate{Start: start, Label: label}
			bucketMap[label] = pa
		}
		pa.Total += r.Amount
		pa.Count++
	}

	periods := make([]model.PeriodAggregate, 0, len(bucketMap))
	for _, pa := range bucketMap {
		periods = append(periods, *pa)
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Start.Before(periods[j].Start)
	})

	return periods, nil
}

// periodStart returns the first day of the bucket containing t.
// Weeks start on Monday (ISO 8601).
func periodStart(t time.Time, g Granularity) time.Time {
	y, m, d := t.Date()
	switch g {
	case GranularityMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	case GranularityWeek:
		day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
		offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
		return day.AddDate(0, 0, -offset)
	default: // GranularityDay
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	}
}

func periodLabel(start time.Time, g Granularity) string {
	if g == GranularityMonth {
		return start.Format("2006-01")
	}
	return start.Format("2006-01-02")
}

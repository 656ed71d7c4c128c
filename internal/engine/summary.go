package engine

import (
	"time"

	"spent/internal/model"
)

// topCategoryLimit caps how many categories a summary reports.
const topCategoryLimit = 5

// Summarize reduces a window of records to the headline figures shown
// on the overview screens. start and end bound the window; a zero
// start means "all time", in which case the window is measured from
// the earliest record. Both averages are guarded against empty input.
func Summarize(records []model.Expense, start, end time.Time) model.Summary {
	s := model.Summary{Start: start, End: end, TransactionCount: len(records)}

	earliest := time.Time{}
	for _, r := range records {
		s.TotalSpent += r.Amount
		if earliest.IsZero() || r.Date.Before(earliest) {
			earliest = r.Date
		}
	}

	if len(records) > 0 {
		s.AvgPerTransaction = s.TotalSpent / float64(len(records))
	}

	windowStart := start
	if windowStart.IsZero() {
		windowStart = earliest
	}
	if !windowStart.IsZero() && !end.IsZero() {
		days := int(end.Sub(windowStart).Hours()/24) + 1
		if days > 0 {
			s.AvgPerDay = s.TotalSpent / float64(days)
		}
	}

	cats := ByCategory(records)
	if len(cats) > topCategoryLimit {
		cats = cats[:topCategoryLimit]
	}
	s.TopCategories = cats

	return s
}

// ComparePeriods reports how spending moved between two record
// windows, first to second. A zero first-period total yields a 0
// change percentage rather than failing.
func ComparePeriods(first, second []model.Expense) model.PeriodComparison {
	pc := model.PeriodComparison{
		First:  periodTotals(first),
		Second: periodTotals(second),
	}

	pc.ChangeAmount = pc.Second.Total - pc.First.Total
	if pc.First.Total > 0 {
		pc.ChangePercent = pc.ChangeAmount / pc.First.Total * 100
	}

	switch {
	case pc.ChangeAmount > 0:
		pc.Direction = model.ChangeIncreased
	case pc.ChangeAmount < 0:
		pc.Direction = model.ChangeDecreased
	default:
		pc.Direction = model.ChangeUnchanged
	}

	return pc
}

func periodTotals(records []model.Expense) model.PeriodTotals {
	pt := model.PeriodTotals{Count: len(records)}
	for _, r := range records {
		pt.Total += r.Amount
	}
	return pt
}

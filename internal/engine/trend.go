package engine

import (
	"sort"

	"spent/internal/model"
)

// DefaultTrendTolerance is the stability band for trend
// classification: the latest month must deviate from the baseline
// average by more than this fraction to count as a movement.
const DefaultTrendTolerance = 0.10

// AnalyzeTrend classifies the month-over-month spending trajectory.
// It expects monthly buckets from ByPeriod; callers must pass only
// completed months plus the latest month as the comparison point.
// Fewer than 2 populated months yields TrendInsufficientData with
// whatever data was available; that is a valid terminal value, not an
// error.
//
// With enough history, the latest month's total is compared against
// the mean of all prior months: more than tolerance above is
// INCREASING, more than tolerance below is DECREASING, otherwise
// STABLE. A tolerance of 0 or less falls back to
// DefaultTrendTolerance.
func AnalyzeTrend(monthly []model.PeriodAggregate, tolerance float64) model.TrendResult {
	if tolerance <= 0 {
		tolerance = DefaultTrendTolerance
	}

	months := make([]model.PeriodAggregate, len(monthly))
	copy(months, monthly)
	sort.Slice(months, func(i, j int) bool {
		return months[i].Start.Before(months[j].Start)
	})

	if len(months) < 2 {
		return model.TrendResult{
			Trend:       model.TrendInsufficientData,
			MonthlyData: months,
		}
	}

	var sum float64
	for _, m := range months {
		sum += m.Total
	}
	average := sum / float64(len(months))

	latest := months[len(months)-1].Total
	baseline := (sum - latest) / float64(len(months)-1)

	trend := model.TrendStable
	switch {
	case latest > baseline*(1+tolerance):
		trend = model.TrendIncreasing
	case latest < baseline*(1-tolerance):
		trend = model.TrendDecreasing
	}

	return model.TrendResult{
		Trend:          trend,
		MonthlyData:    months,
		AverageMonthly: average,
	}
}

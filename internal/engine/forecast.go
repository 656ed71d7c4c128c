package engine

import (
	"time"

	"spent/internal/model"
)

// Predict projects the full-month total from the month's spending so
// far using a linear day-rate model: daily average = total so far /
// days elapsed, projected total = daily average times days in month.
// Day-of-month is 1-indexed, so the daily-average denominator cannot
// be zero under a valid date; the division is still guarded.
func Predict(currentMonthTotal float64, now time.Time, lastMonthTotal float64) model.Prediction {
	daysElapsed := now.Day()
	daysInMonth := daysIn(now.Year(), now.Month())

	var dailyAvg float64
	if daysElapsed > 0 {
		dailyAvg = currentMonthTotal / float64(daysElapsed)
	}

	return model.Prediction{
		ProjectedMonthlyTotal: dailyAvg * float64(daysInMonth),
		LastMonthTotal:        lastMonthTotal,
		DaysElapsed:           daysElapsed,
		DaysInMonth:           daysInMonth,
		DailyAverage:          dailyAvg,
	}
}

// daysIn returns the number of days in the given month, leap years
// included. Day 0 of the next month normalizes to this month's last day.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

package model

import "time"

// CategoryAggregate is the reduced summary for one category within a
// requested window. Share is the category's fraction of the window's
// total spending, in [0,1]; it is 0 for every category when the
// window total is 0.
type CategoryAggregate struct {
	Category string
	Total    float64
	Count    int
	Share    float64
}

// PeriodAggregate is the reduced summary for one calendar bucket
// (day, week, or month). Start is the bucket's first day.
type PeriodAggregate struct {
	Start time.Time
	Label string
	Total float64
	Count int
}

// BudgetState classifies budget consumption for one category.
type BudgetState string

const (
	BudgetOK       BudgetState = "OK"
	BudgetWarning  BudgetState = "WARNING"
	BudgetExceeded BudgetState = "EXCEEDED"
)

// BudgetStatus joins one category's current-month spending against
// its configured limit. PercentUsed is on the 0-100 scale and is
// unbounded above; Remaining may be negative.
type BudgetStatus struct {
	Category    string
	Limit       float64
	Spent       float64
	Remaining   float64
	PercentUsed float64
	State       BudgetState
}

// Trend classifies the month-over-month spending trajectory.
// TrendInsufficientData is a valid terminal value, not an error.
type Trend string

const (
	TrendIncreasing       Trend = "INCREASING"
	TrendDecreasing       Trend = "DECREASING"
	TrendStable           Trend = "STABLE"
	TrendInsufficientData Trend = "INSUFFICIENT_DATA"
)

// TrendResult holds the trend classification along with the monthly
// series it was derived from.
type TrendResult struct {
	Trend          Trend
	MonthlyData    []PeriodAggregate
	AverageMonthly float64
}

// Prediction is a linear day-rate projection of the current month's
// total spending.
type Prediction struct {
	ProjectedMonthlyTotal float64
	LastMonthTotal        float64
	DaysElapsed           int
	DaysInMonth           int
	DailyAverage          float64
}

// Severity ranks an insight for presentation.
type Severity string

const (
	SeverityWarning Severity = "WARNING"
	SeverityInfo    Severity = "INFO"
	SeveritySuccess Severity = "SUCCESS"
)

// InsightRule identifies which heuristic produced an insight.
type InsightRule string

const (
	RuleDominantCategory InsightRule = "dominant_category"
	RuleTrend            InsightRule = "trend"
	RuleMoreHistory      InsightRule = "more_history"
	RuleProjection       InsightRule = "projection"
	RuleBudgetExceeded   InsightRule = "budget_exceeded"
	RuleBudgetWarning    InsightRule = "budget_warning"
	RuleWeekendSpending  InsightRule = "weekend_spending"
	RuleFrequency        InsightRule = "frequency"
	RuleOnTrack          InsightRule = "on_track"
)

// Insight is a tagged observation derived from the aggregates. The
// payload fields are structured so text rendering can live at the
// presentation boundary; which fields are set depends on the rule.
type Insight struct {
	Rule     InsightRule
	Severity Severity
	Category string  // dominant-category and budget rules
	Percent  float64 // share or usage percentage for the rule
	Amount   float64 // primary monetary or rate figure
	Compare  float64 // comparison figure (limit, last month's total)
	Trend    Trend   // set for RuleTrend
}

// Summary holds the spending overview for one window.
type Summary struct {
	Start             time.Time
	End               time.Time
	TotalSpent        float64
	TransactionCount  int
	AvgPerTransaction float64
	AvgPerDay         float64
	TopCategories     []CategoryAggregate
}

// ChangeDirection classifies the movement between two periods.
type ChangeDirection string

const (
	ChangeIncreased ChangeDirection = "INCREASED"
	ChangeDecreased ChangeDirection = "DECREASED"
	ChangeUnchanged ChangeDirection = "UNCHANGED"
)

// PeriodTotals is one side of a period comparison.
type PeriodTotals struct {
	Total float64
	Count int
}

// PeriodComparison holds the spending delta between two periods.
type PeriodComparison struct {
	First         PeriodTotals
	Second        PeriodTotals
	ChangeAmount  float64
	ChangePercent float64
	Direction     ChangeDirection
}

package engine

import (
	"time"

	"spent/internal/model"
)

// Thresholds are the tunable trigger points for insight rules.
// Zero-valued fields fall back to the defaults.
type Thresholds struct {
	// DominantShare is the fraction of total spending above which the
	// top category is called out.
	DominantShare float64
	// WeekendShare is the fraction of spending on Saturday/Sunday
	// above which weekend spending is called out.
	WeekendShare float64
	// TransactionsPerDay is the average daily transaction count above
	// which spending frequency is called out.
	TransactionsPerDay float64
	// ProjectionMargin is the ratio of projected to last-month
	// spending above which the projection warning fires.
	ProjectionMargin float64
}

// DefaultThresholds returns the standard insight trigger points.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DominantShare:      0.40,
		WeekendShare:       0.40,
		TransactionsPerDay: 5,
		ProjectionMargin:   1.10,
	}
}

func (t Thresholds) normalized() Thresholds {
	def := DefaultThresholds()
	if t.DominantShare <= 0 {
		t.DominantShare = def.DominantShare
	}
	if t.WeekendShare <= 0 {
		t.WeekendShare = def.WeekendShare
	}
	if t.TransactionsPerDay <= 0 {
		t.TransactionsPerDay = def.TransactionsPerDay
	}
	if t.ProjectionMargin <= 0 {
		t.ProjectionMargin = def.ProjectionMargin
	}
	return t
}

// Synthesize runs the heuristic rule set over the derived signals and
// returns tagged insights ordered WARNING first, then INFO, then
// SUCCESS, preserving rule order within each tier. Every rule is
// evaluated independently; a rule with no data to act on is skipped,
// never an error. Text rendering belongs to the presentation layer.
//
// cats and records should cover the current month; trend and pred
// come from AnalyzeTrend and Predict over the same store snapshot.
func Synthesize(
	cats []model.CategoryAggregate,
	statuses []model.BudgetStatus,
	trend model.TrendResult,
	pred model.Prediction,
	records []model.Expense,
	th Thresholds,
) []model.Insight {
	th = th.normalized()

	var warnings, infos, successes []model.Insight
	add := func(in model.Insight) {
		switch in.Severity {
		case model.SeverityWarning:
			warnings = append(warnings, in)
		case model.SeveritySuccess:
			successes = append(successes, in)
		default:
			infos = append(infos, in)
		}
	}

	// Rule 1: dominant category share.
	if len(cats) > 0 && cats[0].Share > th.DominantShare {
		add(model.Insight{
			Rule:     model.RuleDominantCategory,
			Severity: model.SeverityInfo,
			Category: cats[0].Category,
			Percent:  cats[0].Share,
			Amount:   cats[0].Total,
		})
	}

	// Rule 2: trend direction, or guidance when history is too thin.
	switch trend.Trend {
	case model.TrendIncreasing, model.TrendDecreasing:
		add(model.Insight{
			Rule:     model.RuleTrend,
			Severity: model.SeverityInfo,
			Trend:    trend.Trend,
			Amount:   trend.AverageMonthly,
		})
	case model.TrendInsufficientData:
		add(model.Insight{
			Rule:     model.RuleMoreHistory,
			Severity: model.SeverityInfo,
		})
	}

	// Rule 3: projection vs last month. Needs a last-month figure to
	// compare against.
	if pred.LastMonthTotal > 0 &&
		pred.ProjectedMonthlyTotal > pred.LastMonthTotal*th.ProjectionMargin {
		add(model.Insight{
			Rule:     model.RuleProjection,
			Severity: model.SeverityWarning,
			Amount:   pred.ProjectedMonthlyTotal,
			Compare:  pred.LastMonthTotal,
		})
	}

	// Rule 4: per-category budget states.
	budgetTrouble := false
	for _, bs := range statuses {
		switch bs.State {
		case model.BudgetExceeded:
			budgetTrouble = true
			add(model.Insight{
				Rule:     model.RuleBudgetExceeded,
				Severity: model.SeverityWarning,
				Category: bs.Category,
				Percent:  bs.PercentUsed,
				Amount:   bs.Spent,
				Compare:  bs.Limit,
			})
		case model.BudgetWarning:
			budgetTrouble = true
			add(model.Insight{
				Rule:     model.RuleBudgetWarning,
				Severity: model.SeverityInfo,
				Category: bs.Category,
				Percent:  bs.PercentUsed,
				Amount:   bs.Spent,
				Compare:  bs.Limit,
			})
		}
	}

	// Rule 5: weekend spending share.
	var weekendTotal, total float64
	for _, r := range records {
		total += r.Amount
		if wd := r.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekendTotal += r.Amount
		}
	}
	if total > 0 {
		if share := weekendTotal / total; share > th.WeekendShare {
			add(model.Insight{
				Rule:     model.RuleWeekendSpending,
				Severity: model.SeverityInfo,
				Percent:  share,
				Amount:   weekendTotal,
			})
		}
	}

	// Rule 6: transaction frequency over days that saw spending.
	if len(records) > 0 {
		activeDays := make(map[string]struct{})
		for _, r := range records {
			activeDays[r.Date.Format("2006-01-02")] = struct{}{}
		}
		if len(activeDays) > 0 {
			perDay := float64(len(records)) / float64(len(activeDays))
			if perDay > th.TransactionsPerDay {
				add(model.Insight{
					Rule:     model.RuleFrequency,
					Severity: model.SeverityInfo,
					Amount:   perDay,
				})
			}
		}
	}

	// Rule 7: on-track affirmation when nothing fired a warning and
	// spending sits inside the combined limits.
	if len(statuses) > 0 && len(warnings) == 0 && !budgetTrouble {
		var limits float64
		for _, bs := range statuses {
			limits += bs.Limit
		}
		if total < limits {
			add(model.Insight{
				Rule:     model.RuleOnTrack,
				Severity: model.SeveritySuccess,
				Amount:   total,
				Compare:  limits,
			})
		}
	}

	out := make([]model.Insight, 0, len(warnings)+len(infos)+len(successes))
	out = append(out, warnings...)
	out = append(out, infos...)
	out = append(out, successes...)
	return out
}

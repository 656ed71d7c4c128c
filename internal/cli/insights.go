package cli

import (
	"fmt"

	"spent/internal/model"
)

// InsightText renders a tagged insight into user-facing prose. The
// engine keeps insights structured; all wording lives here.
func InsightText(in model.Insight, symbol string) string {
	switch in.Rule {
	case model.RuleDominantCategory:
		return fmt.Sprintf("%s accounts for %s of your spending this month. Consider whether that matches your priorities.",
			in.Category, FormatShare(in.Percent))

	case model.RuleTrend:
		if in.Trend == model.TrendIncreasing {
			return fmt.Sprintf("Your spending has been increasing recently. Average monthly spending: %s.",
				FormatMoney(in.Amount, symbol))
		}
		return fmt.Sprintf("Your spending has been decreasing. Average monthly spending: %s. Keep it up!",
			FormatMoney(in.Amount, symbol))

	case model.RuleMoreHistory:
		return "Not enough history for trend analysis yet. Keep logging expenses for at least two months to unlock it."

	case model.RuleProjection:
		return fmt.Sprintf("At the current rate you're projected to spend %s this month, up from %s last month.",
			FormatMoney(in.Amount, symbol), FormatMoney(in.Compare, symbol))

	case model.RuleBudgetExceeded:
		return fmt.Sprintf("%s budget exceeded: %s of %s (%s).",
			in.Category, FormatMoney(in.Amount, symbol), FormatMoney(in.Compare, symbol), FormatPercent(in.Percent))

	case model.RuleBudgetWarning:
		return fmt.Sprintf("%s is at %s of its budget (%s of %s).",
			in.Category, FormatPercent(in.Percent), FormatMoney(in.Amount, symbol), FormatMoney(in.Compare, symbol))

	case model.RuleWeekendSpending:
		return fmt.Sprintf("%s of your spending happens on weekends. That might be worth keeping an eye on.",
			FormatShare(in.Percent))

	case model.RuleFrequency:
		return fmt.Sprintf("You're averaging %.1f transactions per day. Consider consolidating purchases.",
			in.Amount)

	case model.RuleOnTrack:
		return fmt.Sprintf("You're on track: %s spent against %s in combined budgets.",
			FormatMoney(in.Amount, symbol), FormatMoney(in.Compare, symbol))

	default:
		return string(in.Rule)
	}
}

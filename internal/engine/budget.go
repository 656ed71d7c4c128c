package engine

import (
	"sort"

	"spent/internal/model"
)

// Budget classification thresholds on the 0-100 percent-used scale,
// inclusive lower bounds.
const (
	budgetWarningPct  = 75
	budgetExceededPct = 90
)

// EvaluateBudgets joins current-month category aggregates against the
// configured limits. Every budget entry produces a status, including
// categories with no spending this month (OK at 0%). Spending in
// categories with no budget is not reported here; it is visible only
// through the aggregator. Results are ordered by percent used
// descending, ties broken by category name.
//
// Non-positive limits are a store-enforced precondition and must not
// reach this function.
func EvaluateBudgets(currentMonth []model.CategoryAggregate, budgets map[string]float64) []model.BudgetStatus {
	spentBy := make(map[string]float64, len(currentMonth))
	for _, ca := range currentMonth {
		spentBy[ca.Category] = ca.Total
	}

	statuses := make([]model.BudgetStatus, 0, len(budgets))
	for category, limit := range budgets {
		spent := spentBy[category]
		var pct float64
		if limit > 0 {
			pct = spent / limit * 100
		}
		statuses = append(statuses, model.BudgetStatus{
			Category:    category,
			Limit:       limit,
			Spent:       spent,
			Remaining:   limit - spent,
			PercentUsed: pct,
			State:       classifyBudget(pct),
		})
	}

	sort.Slice(statuses, func(i, j int) bool {
		if statuses[i].PercentUsed != statuses[j].PercentUsed {
			return statuses[i].PercentUsed > statuses[j].PercentUsed
		}
		return statuses[i].Category < statuses[j].Category
	})

	return statuses
}

func classifyBudget(pct float64) model.BudgetState {
	switch {
	case pct >= budgetExceededPct:
		return model.BudgetExceeded
	case pct >= budgetWarningPct:
		return model.BudgetWarning
	default:
		return model.BudgetOK
	}
}

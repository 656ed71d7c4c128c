package cmd

import (
	"fmt"
	"time"

	"spent/internal/cli"
	"spent/internal/engine"
	"spent/internal/model"
	"spent/internal/store"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Heuristic observations about your spending",
	RunE:  runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

// analyticsSnapshot is everything the insight rules consume, fetched
// in one pass so all signals describe the same store state.
type analyticsSnapshot struct {
	monthRecords []model.Expense
	allRecords   []model.Expense
	budgets      map[string]float64
	lastMonth    float64
}

func fetchSnapshot(s *store.Store, now time.Time) (analyticsSnapshot, error) {
	first, last := monthRange(now)
	prevFirst, prevLast := lastMonthRange(now)

	var snap analyticsSnapshot
	var g errgroup.Group

	g.Go(func() error {
		var err error
		snap.monthRecords, err = s.Expenses(model.Filter{Start: first, End: last})
		return err
	})
	g.Go(func() error {
		var err error
		snap.allRecords, err = s.Expenses(model.Filter{})
		return err
	})
	g.Go(func() error {
		var err error
		snap.budgets, err = s.Budgets()
		return err
	})
	g.Go(func() error {
		var err error
		snap.lastMonth, err = s.TotalSpent(model.Filter{Start: prevFirst, End: prevLast})
		return err
	})

	if err := g.Wait(); err != nil {
		return analyticsSnapshot{}, err
	}
	return snap, nil
}

// deriveInsights runs the full engine pipeline over a snapshot.
func deriveInsights(snap analyticsSnapshot, now time.Time) ([]model.Insight, error) {
	cats := engine.ByCategory(snap.monthRecords)
	statuses := engine.EvaluateBudgets(cats, snap.budgets)

	buckets, err := engine.ByPeriod(snap.allRecords, engine.GranularityMonth)
	if err != nil {
		return nil, err
	}
	currentStart, _ := monthRange(now)
	completed := buckets[:0:0]
	for _, b := range buckets {
		if b.Start.Year() == currentStart.Year() && b.Start.Month() == currentStart.Month() {
			continue
		}
		completed = append(completed, b)
	}
	trend := engine.AnalyzeTrend(completed, trendTolerance())

	var monthTotal float64
	for _, ca := range cats {
		monthTotal += ca.Total
	}
	pred := engine.Predict(monthTotal, now, snap.lastMonth)

	return engine.Synthesize(cats, statuses, trend, pred, snap.monthRecords, thresholds()), nil
}

func runInsights(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	now := time.Now()
	snap, err := fetchSnapshot(s, now)
	if err != nil {
		return err
	}

	insights, err := deriveInsights(snap, now)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING INSIGHTS"))
	fmt.Println()

	if len(insights) == 0 {
		fmt.Println("  Nothing noteworthy. Keep tracking your expenses.")
		return nil
	}

	for _, in := range insights {
		fmt.Printf("  %s %s\n", cli.SeverityLabel(in.Severity), cli.InsightText(in, currency()))
	}
	return nil
}

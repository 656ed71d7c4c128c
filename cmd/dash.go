package cmd

import (
	"time"

	"spent/internal/engine"
	"spent/internal/tui"

	"github.com/spf13/cobra"
)

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Interactive dashboard",
	RunE:  runDash,
}

func init() {
	rootCmd.AddCommand(dashCmd)
}

func runDash(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	loader := func() (tui.Data, error) {
		now := time.Now()
		snap, err := fetchSnapshot(s, now)
		if err != nil {
			return tui.Data{}, err
		}

		insights, err := deriveInsights(snap, now)
		if err != nil {
			return tui.Data{}, err
		}

		first, _ := monthRange(now)
		cats := engine.ByCategory(snap.monthRecords)
		statuses := engine.EvaluateBudgets(cats, snap.budgets)

		buckets, err := engine.ByPeriod(snap.allRecords, engine.GranularityMonth)
		if err != nil {
			return tui.Data{}, err
		}
		completed := buckets[:0:0]
		for _, b := range buckets {
			if b.Start.Year() == first.Year() && b.Start.Month() == first.Month() {
				continue
			}
			completed = append(completed, b)
		}

		var monthTotal float64
		for _, ca := range cats {
			monthTotal += ca.Total
		}

		return tui.Data{
			Month:      now.Format("January 2006"),
			Currency:   currency(),
			Summary:    engine.Summarize(snap.monthRecords, first, now),
			Statuses:   statuses,
			Trend:      engine.AnalyzeTrend(completed, trendTolerance()),
			Prediction: engine.Predict(monthTotal, now, snap.lastMonth),
			Insights:   insights,
		}, nil
	}

	return tui.Run(loader)
}

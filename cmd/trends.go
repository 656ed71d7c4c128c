package cmd

import (
	"fmt"
	"time"

	"spent/internal/cli"
	"spent/internal/engine"
	"spent/internal/model"
	"spent/internal/store"

	"github.com/spf13/cobra"
)

var flagTrendsMonths int

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Month-over-month spending trend",
	RunE:  runTrends,
}

func init() {
	trendsCmd.Flags().IntVarP(&flagTrendsMonths, "months", "n", 6, "How many recent months to analyze")
	rootCmd.AddCommand(trendsCmd)
}

// monthlyHistory buckets all records by month, drops the current
// partial month so it never pollutes the baseline, and keeps the most
// recent `months` buckets.
func monthlyHistory(s *store.Store, months int, now time.Time) ([]model.PeriodAggregate, error) {
	expenses, err := s.Expenses(model.Filter{})
	if err != nil {
		return nil, err
	}

	buckets, err := engine.ByPeriod(expenses, engine.GranularityMonth)
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

	if months > 0 && len(completed) > months {
		completed = completed[len(completed)-months:]
	}
	return completed, nil
}

func runTrends(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	months, err := monthlyHistory(s, flagTrendsMonths, time.Now())
	if err != nil {
		return err
	}

	result := engine.AnalyzeTrend(months, trendTolerance())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SPENDING TREND  Last %d months", flagTrendsMonths)))
	fmt.Println()

	if result.Trend == model.TrendInsufficientData {
		fmt.Println("  Not enough history for a trend yet.")
		fmt.Println(" ", cli.Muted("At least two completed months of expenses are needed."))
		return nil
	}

	rows := make([][]string, 0, len(result.MonthlyData))
	for _, m := range result.MonthlyData {
		rows = append(rows, []string{
			m.Label,
			cli.FormatMoney(m.Total, currency()),
			cli.FormatNumber(int64(m.Count)),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Average", cli.FormatMoney(result.AverageMonthly, currency()), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Total", "Count"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  Trend: %s\n", string(result.Trend))
	return nil
}

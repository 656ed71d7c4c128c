package cmd

import (
	"fmt"
	"time"

	"spent/internal/cli"
	"spent/internal/engine"
	"spent/internal/model"

	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project this month's total spending",
	RunE:  runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	now := time.Now()
	first, last := monthRange(now)
	soFar, err := s.TotalSpent(model.Filter{Start: first, End: last})
	if err != nil {
		return err
	}

	prevFirst, prevLast := lastMonthRange(now)
	lastMonth, err := s.TotalSpent(model.Filter{Start: prevFirst, End: prevLast})
	if err != nil {
		return err
	}

	pred := engine.Predict(soFar, now, lastMonth)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FORECAST  %s", now.Format("January 2006"))))
	fmt.Println()

	rows := [][]string{
		{"Spent So Far", cli.FormatMoney(soFar, currency())},
		{"Days Elapsed", fmt.Sprintf("%d of %d", pred.DaysElapsed, pred.DaysInMonth)},
		{"Daily Average", cli.FormatMoney(pred.DailyAverage, currency())},
		{"---"},
		{"Projected Total", cli.FormatMoney(pred.ProjectedMonthlyTotal, currency())},
	}
	if pred.LastMonthTotal > 0 {
		rows = append(rows, []string{"Last Month", cli.FormatMoney(pred.LastMonthTotal, currency())})
		rows = append(rows, []string{"Difference", cli.FormatDelta(pred.ProjectedMonthlyTotal, pred.LastMonthTotal, currency())})
	}

	fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))
	return nil
}

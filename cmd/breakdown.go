package cmd

import (
	"fmt"
	"time"

	"spent/internal/cli"
	"spent/internal/engine"
	"spent/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagBreakdownFrom        string
	flagBreakdownTo          string
	flagBreakdownGranularity string
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Spending grouped by category or calendar bucket",
	Long:  "Break spending down by category, or by day/week/month buckets with --by.",
	RunE:  runBreakdown,
}

func init() {
	breakdownCmd.Flags().StringVar(&flagBreakdownFrom, "from", "", "Start date (defaults to first of this month)")
	breakdownCmd.Flags().StringVar(&flagBreakdownTo, "to", "", "End date (defaults to today)")
	breakdownCmd.Flags().StringVar(&flagBreakdownGranularity, "by", "", "Bucket by day, week, or month instead of category")
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(_ *cobra.Command, _ []string) error {
	now := time.Now()
	first, _ := monthRange(now)
	start, end := first, now

	var err error
	if flagBreakdownFrom != "" {
		if start, err = cli.ParseDate(flagBreakdownFrom); err != nil {
			return err
		}
	}
	if flagBreakdownTo != "" {
		if end, err = cli.ParseDate(flagBreakdownTo); err != nil {
			return err
		}
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	expenses, err := s.Expenses(model.Filter{Start: start, End: end})
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		renderEmpty()
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BREAKDOWN  %s to %s",
		start.Format(cli.DateLayout), end.Format(cli.DateLayout))))
	fmt.Println()

	if flagBreakdownGranularity != "" {
		g, err := engine.ParseGranularity(flagBreakdownGranularity)
		if err != nil {
			return err
		}
		periods, err := engine.ByPeriod(expenses, g)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(periods))
		for _, p := range periods {
			rows = append(rows, []string{
				p.Label,
				cli.FormatMoney(p.Total, currency()),
				cli.FormatNumber(int64(p.Count)),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Period", "Total", "Count"},
			Rows:    rows,
		}))
		return nil
	}

	cats := engine.ByCategory(expenses)
	rows := make([][]string, 0, len(cats))
	for _, ca := range cats {
		avg := ca.Total / float64(ca.Count)
		rows = append(rows, []string{
			ca.Category,
			cli.FormatMoney(ca.Total, currency()),
			cli.FormatNumber(int64(ca.Count)),
			cli.FormatMoney(avg, currency()),
			cli.FormatShare(ca.Share),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Total", "Count", "Avg", "Share"},
		Rows:    rows,
	}))
	return nil
}

package cmd

import (
	"fmt"
	"strings"
	"time"

	"spent/internal/cli"
	"spent/internal/engine"
	"spent/internal/model"

	"github.com/spf13/cobra"
)

var flagSummaryPeriod string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending summary for a period",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVarP(&flagSummaryPeriod, "period", "p", "", "Period: week, month, year, or all (defaults to config)")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	period := flagSummaryPeriod
	if period == "" {
		period = cfg.General.DefaultPeriod
	}

	start, end, label, err := periodRange(period, time.Now())
	if err != nil {
		return err
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

	sum := engine.Summarize(expenses, start, end)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SPENDING SUMMARY  %s", strings.ToUpper(label))))
	fmt.Println()

	rows := [][]string{
		{"Total Spent", cli.FormatMoney(sum.TotalSpent, currency())},
		{"Transactions", cli.FormatNumber(int64(sum.TransactionCount))},
		{"Avg / Transaction", cli.FormatMoney(sum.AvgPerTransaction, currency())},
		{"Avg / Day", cli.FormatMoney(sum.AvgPerDay, currency())},
	}
	fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))

	if len(sum.TopCategories) > 0 {
		fmt.Println()
		catRows := make([][]string, 0, len(sum.TopCategories))
		for _, ca := range sum.TopCategories {
			catRows = append(catRows, []string{
				ca.Category,
				cli.FormatMoney(ca.Total, currency()),
				cli.FormatNumber(int64(ca.Count)),
				cli.FormatShare(ca.Share),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Top Categories",
			Headers: []string{"Category", "Total", "Count", "Share"},
			Rows:    catRows,
		}))
	}

	return nil
}

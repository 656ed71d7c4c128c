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
	flagCompareFrom1 string
	flagCompareTo1   string
	flagCompareFrom2 string
	flagCompareTo2   string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare spending between two periods",
	Long:  "Compare spending between two date ranges. Without flags, compares last month against this month.",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&flagCompareFrom1, "from1", "", "First period start")
	compareCmd.Flags().StringVar(&flagCompareTo1, "to1", "", "First period end")
	compareCmd.Flags().StringVar(&flagCompareFrom2, "from2", "", "Second period start")
	compareCmd.Flags().StringVar(&flagCompareTo2, "to2", "", "Second period end")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	now := time.Now()
	start1, end1 := lastMonthRange(now)
	start2, end2 := monthRange(now)

	var err error
	if flagCompareFrom1 != "" {
		if start1, err = cli.ParseDate(flagCompareFrom1); err != nil {
			return err
		}
	}
	if flagCompareTo1 != "" {
		if end1, err = cli.ParseDate(flagCompareTo1); err != nil {
			return err
		}
	}
	if flagCompareFrom2 != "" {
		if start2, err = cli.ParseDate(flagCompareFrom2); err != nil {
			return err
		}
	}
	if flagCompareTo2 != "" {
		if end2, err = cli.ParseDate(flagCompareTo2); err != nil {
			return err
		}
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	first, err := s.Expenses(model.Filter{Start: start1, End: end1})
	if err != nil {
		return err
	}
	second, err := s.Expenses(model.Filter{Start: start2, End: end2})
	if err != nil {
		return err
	}

	pc := engine.ComparePeriods(first, second)

	fmt.Println()
	fmt.Println(cli.RenderTitle("PERIOD COMPARISON"))
	fmt.Println()

	rows := [][]string{
		{
			fmt.Sprintf("%s to %s", start1.Format(cli.DateLayout), end1.Format(cli.DateLayout)),
			cli.FormatMoney(pc.First.Total, currency()),
			cli.FormatNumber(int64(pc.First.Count)),
		},
		{
			fmt.Sprintf("%s to %s", start2.Format(cli.DateLayout), end2.Format(cli.DateLayout)),
			cli.FormatMoney(pc.Second.Total, currency()),
			cli.FormatNumber(int64(pc.Second.Count)),
		},
		{"---"},
		{
			"Change",
			cli.FormatDelta(pc.Second.Total, pc.First.Total, currency()),
			fmt.Sprintf("%+.1f%%", pc.ChangePercent),
		},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Period", "Total", "Count"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  Spending %s\n", string(pc.Direction))
	return nil
}

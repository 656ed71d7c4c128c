package cmd

import (
	"fmt"

	"spent/internal/cli"
	"spent/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagListCategory string
	flagListFrom     string
	flagListTo       string
	flagListLimit    int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded expenses",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&flagListCategory, "category", "c", "", "Filter to one category")
	listCmd.Flags().StringVar(&flagListFrom, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	listCmd.Flags().StringVar(&flagListTo, "to", "", "End date (YYYY-MM-DD, inclusive)")
	listCmd.Flags().IntVarP(&flagListLimit, "limit", "n", 0, "Cap the number of results")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	f := model.Filter{Category: flagListCategory, Limit: flagListLimit}

	var err error
	if flagListFrom != "" {
		if f.Start, err = cli.ParseDate(flagListFrom); err != nil {
			return err
		}
	}
	if flagListTo != "" {
		if f.End, err = cli.ParseDate(flagListTo); err != nil {
			return err
		}
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	expenses, err := s.Expenses(f)
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		renderEmpty()
		return nil
	}

	renderExpenseTable(expenses)
	return nil
}

func renderExpenseTable(expenses []model.Expense) {
	rows := make([][]string, 0, len(expenses))
	var total float64
	for _, e := range expenses {
		total += e.Amount
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.ID),
			e.Date.Format(cli.DateLayout),
			e.Category,
			cli.FormatMoney(e.Amount, currency()),
			e.PaymentMethod,
			e.Description,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "Total", cli.FormatMoney(total, currency()), "", ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Date", "Category", "Amount", "Method", "Description"},
		Rows:    rows,
	}))
}

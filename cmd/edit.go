package cmd

import (
	"fmt"
	"strconv"

	"spent/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagEditAmount   string
	flagEditCategory string
	flagEditDesc     string
	flagEditDate     string
	flagEditMethod   string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a recorded expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&flagEditAmount, "amount", "a", "", "New amount")
	editCmd.Flags().StringVarP(&flagEditCategory, "category", "c", "", "New category")
	editCmd.Flags().StringVarP(&flagEditDesc, "description", "m", "", "New description")
	editCmd.Flags().StringVar(&flagEditDate, "date", "", "New date (YYYY-MM-DD)")
	editCmd.Flags().StringVar(&flagEditMethod, "method", "", "New payment method")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	e, err := s.Expense(id)
	if err != nil {
		return err
	}

	if flagEditAmount != "" {
		if e.Amount, err = cli.ParseAmount(flagEditAmount); err != nil {
			return err
		}
	}
	if flagEditCategory != "" {
		e.Category = flagEditCategory
	}
	if cmd.Flags().Changed("description") {
		e.Description = flagEditDesc
	}
	if flagEditDate != "" {
		if e.Date, err = cli.ParseDate(flagEditDate); err != nil {
			return err
		}
	}
	if flagEditMethod != "" {
		e.PaymentMethod = flagEditMethod
	}

	if err := s.UpdateExpense(e); err != nil {
		return err
	}

	fmt.Printf("Updated expense #%d: %s on %s (%s)\n",
		e.ID, cli.FormatMoney(e.Amount, currency()), e.Category, e.Date.Format(cli.DateLayout))
	return nil
}

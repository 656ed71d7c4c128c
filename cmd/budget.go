package cmd

import (
	"fmt"
	"time"

	"spent/internal/cli"
	"spent/internal/engine"
	"spent/internal/model"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage and review monthly budgets",
	RunE:  runBudgetStatus,
}

var budgetSetCmd = &cobra.Command{
	Use:   "set <category> <monthly-limit>",
	Short: "Set or replace a category's monthly limit",
	Args:  cobra.ExactArgs(2),
	RunE:  runBudgetSet,
}

var budgetStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Current-month consumption against each budget",
	RunE:  runBudgetStatus,
}

func init() {
	budgetCmd.AddCommand(budgetSetCmd)
	budgetCmd.AddCommand(budgetStatusCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetSet(_ *cobra.Command, args []string) error {
	category := args[0]
	limit, err := cli.ParseAmount(args[1])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.SetBudget(category, limit); err != nil {
		return err
	}

	fmt.Printf("Budget set: %s at %s/month\n", category, cli.FormatMoney(limit, currency()))
	return nil
}

func runBudgetStatus(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	budgets, err := s.Budgets()
	if err != nil {
		return err
	}
	if len(budgets) == 0 {
		fmt.Println()
		fmt.Println("  No budgets configured.")
		fmt.Println("  Set one with:", cli.Muted("spent budget set Groceries 300"))
		return nil
	}

	now := time.Now()
	first, last := monthRange(now)
	expenses, err := s.Expenses(model.Filter{Start: first, End: last})
	if err != nil {
		return err
	}

	statuses := engine.EvaluateBudgets(engine.ByCategory(expenses), budgets)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGETS  %s", now.Format("January 2006"))))
	fmt.Println()

	for _, bs := range statuses {
		fmt.Printf("  %-20s %s\n", bs.Category, cli.ProgressBar(bs.PercentUsed, 30))
		fmt.Printf("  %-20s %s of %s, %s remaining  %s\n\n",
			"",
			cli.FormatMoney(bs.Spent, currency()),
			cli.FormatMoney(bs.Limit, currency()),
			cli.FormatMoney(bs.Remaining, currency()),
			cli.StateLabel(bs.State),
		)
	}
	return nil
}

package cmd

import (
	"fmt"
	"time"

	"spent/internal/cli"
	"spent/internal/engine"
	"spent/internal/model"
	"spent/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagAddAmount   string
	flagAddCategory string
	flagAddDesc     string
	flagAddDate     string
	flagAddMethod   string
)

var paymentMethods = []string{"Cash", "Credit Card", "Debit Card", "Bank Transfer", "Mobile Payment"}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense",
	Long:  "Record an expense. With no flags, an interactive form collects the details.",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddAmount, "amount", "a", "", "Amount spent, e.g. 12.50")
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Expense category")
	addCmd.Flags().StringVarP(&flagAddDesc, "description", "m", "", "Optional description")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Date (YYYY-MM-DD, defaults to today)")
	addCmd.Flags().StringVar(&flagAddMethod, "method", "Cash", "Payment method")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if flagAddAmount == "" {
		if err := addForm(s); err != nil {
			return err
		}
	}

	amount, err := cli.ParseAmount(flagAddAmount)
	if err != nil {
		return err
	}

	date := time.Now()
	if flagAddDate != "" {
		date, err = cli.ParseDate(flagAddDate)
		if err != nil {
			return err
		}
	}

	id, err := s.AddExpense(model.Expense{
		Date:          date,
		Category:      flagAddCategory,
		Amount:        amount,
		Description:   flagAddDesc,
		PaymentMethod: flagAddMethod,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Recorded expense #%d: %s on %s (%s)\n",
		id, cli.FormatMoney(amount, currency()), flagAddCategory, date.Format(cli.DateLayout))

	warnBudget(s, flagAddCategory, date)
	return nil
}

// addForm fills the add flags interactively.
func addForm(s *store.Store) error {
	cats, err := s.Categories()
	if err != nil {
		return err
	}
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}

	if flagAddDate == "" {
		flagAddDate = time.Now().Format(cli.DateLayout)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("12.50").
				Value(&flagAddAmount).
				Validate(func(s string) error {
					_, err := cli.ParseAmount(s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(huh.NewOptions(names...)...).
				Value(&flagAddCategory),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(&flagAddDesc),
			huh.NewSelect[string]().
				Title("Payment method").
				Options(huh.NewOptions(paymentMethods...)...).
				Value(&flagAddMethod),
			huh.NewInput().
				Title("Date").
				Value(&flagAddDate).
				Validate(func(s string) error {
					_, err := cli.ParseDate(s)
					return err
				}),
		),
	)
	return form.Run()
}

// warnBudget prints a heads-up when the new expense pushes its
// category into the warning or exceeded band.
func warnBudget(s *store.Store, category string, date time.Time) {
	budgets, err := s.Budgets()
	if err != nil {
		return
	}
	limit, ok := budgets[category]
	if !ok {
		return
	}

	first, last := monthRange(date)
	spent, err := s.TotalSpent(model.Filter{Category: category, Start: first, End: last})
	if err != nil {
		return
	}

	statuses := engine.EvaluateBudgets(
		[]model.CategoryAggregate{{Category: category, Total: spent}},
		map[string]float64{category: limit},
	)
	if len(statuses) == 0 || statuses[0].State == model.BudgetOK {
		return
	}

	bs := statuses[0]
	fmt.Printf("%s %s of the %s budget used (%s of %s)\n",
		cli.StateLabel(bs.State),
		cli.FormatPercent(bs.PercentUsed),
		category,
		cli.FormatMoney(bs.Spent, currency()),
		cli.FormatMoney(bs.Limit, currency()),
	)
}

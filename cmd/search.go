package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search expenses by description or category",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	keyword := strings.Join(args, " ")
	expenses, err := s.SearchExpenses(keyword)
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		fmt.Printf("\n  No expenses matching %q.\n", keyword)
		return nil
	}

	renderExpenseTable(expenses)
	return nil
}

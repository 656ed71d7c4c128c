package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagCategoryIcon string

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the managed categories",
	RunE:  runCategories,
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesAdd,
}

func init() {
	categoriesAddCmd.Flags().StringVar(&flagCategoryIcon, "icon", "", "Icon shown next to the category")
	categoriesCmd.AddCommand(categoriesAddCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	cats, err := s.Categories()
	if err != nil {
		return err
	}

	fmt.Println()
	for _, c := range cats {
		fmt.Printf("  %s  %s\n", c.Icon, c.Name)
	}
	return nil
}

func runCategoriesAdd(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.AddCategory(args[0], flagCategoryIcon); err != nil {
		return err
	}
	fmt.Printf("Added category %q\n", args[0])
	return nil
}

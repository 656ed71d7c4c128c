package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"spent/internal/cli"
	"spent/internal/model"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import expenses from CSV",
	Long: `Import expenses from a CSV file with the columns
date,category,amount,description,payment_method (header optional,
extra leading id column tolerated so exports round-trip).`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	imported := 0
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		e, err := parseImportRow(record)
		if err != nil {
			if line == 1 {
				// Header row.
				continue
			}
			return fmt.Errorf("line %d: %w", line, err)
		}

		if _, err := s.AddExpense(e); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		imported++
	}

	fmt.Printf("Imported %d expenses from %s\n", imported, args[0])
	return nil
}

func parseImportRow(record []string) (model.Expense, error) {
	// Tolerate a leading id column from spent's own export.
	if len(record) == 6 {
		record = record[1:]
	}
	if len(record) < 3 {
		return model.Expense{}, fmt.Errorf("want at least date,category,amount, got %d columns", len(record))
	}

	date, err := cli.ParseDate(record[0])
	if err != nil {
		return model.Expense{}, err
	}
	amount, err := cli.ParseAmount(record[2])
	if err != nil {
		return model.Expense{}, err
	}

	e := model.Expense{Date: date, Category: record[1], Amount: amount}
	if len(record) > 3 {
		e.Description = record[3]
	}
	if len(record) > 4 {
		e.PaymentMethod = record[4]
	}
	return e, nil
}

package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"spent/internal/cli"
	"spent/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagExportOut  string
	flagExportFrom string
	flagExportTo   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export expenses as CSV",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (defaults to stdout)")
	exportCmd.Flags().StringVar(&flagExportFrom, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	exportCmd.Flags().StringVar(&flagExportTo, "to", "", "End date (YYYY-MM-DD, inclusive)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	f := model.Filter{}
	var err error
	if flagExportFrom != "" {
		if f.Start, err = cli.ParseDate(flagExportFrom); err != nil {
			return err
		}
	}
	if flagExportTo != "" {
		if f.End, err = cli.ParseDate(flagExportTo); err != nil {
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

	out := os.Stdout
	if flagExportOut != "" {
		out, err = os.Create(flagExportOut)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = out.Close() }()
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"id", "date", "category", "amount", "description", "payment_method"}); err != nil {
		return err
	}
	for _, e := range expenses {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Date.Format(cli.DateLayout),
			e.Category,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			e.Description,
			e.PaymentMethod,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if flagExportOut != "" {
		fmt.Fprintf(os.Stderr, "Exported %d expenses to %s\n", len(expenses), flagExportOut)
	}
	return nil
}

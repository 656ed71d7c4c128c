// Package cmd wires the spent CLI: every command fetches a snapshot
// from the store, hands it to the analytics engine, and renders the
// result. The engine itself never touches the store.
package cmd

import (
	"fmt"
	"os"
	"time"

	"spent/internal/cli"
	"spent/internal/config"
	"spent/internal/engine"
	"spent/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDB string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "spent",
	Short: "Track expenses and budgets from the terminal",
	Long:  "spent records expenses, tracks budgets, and derives trends, forecasts, and insights from your spending.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if flagDB != "" {
			c.General.DatabasePath = flagDB
		}
		cfg = c
		return nil
	},
	RunE: runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "Path to the expense database (defaults to config)")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

// openStore opens the configured database.
func openStore() (*store.Store, error) {
	return store.Open(cfg.General.DatabasePath)
}

// thresholds maps config overrides onto the engine defaults.
func thresholds() engine.Thresholds {
	return engine.Thresholds{
		DominantShare:      cfg.Analytics.DominantShare,
		WeekendShare:       cfg.Analytics.WeekendShare,
		TransactionsPerDay: cfg.Analytics.TransactionsPerDay,
		ProjectionMargin:   cfg.Analytics.ProjectionMargin,
	}
}

func trendTolerance() float64 {
	if cfg.Analytics.TrendTolerance > 0 {
		return cfg.Analytics.TrendTolerance
	}
	return engine.DefaultTrendTolerance
}

func currency() string {
	return cfg.General.Currency
}

// monthRange returns the first and last day of t's calendar month.
func monthRange(t time.Time) (time.Time, time.Time) {
	y, m, _ := t.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}

// lastMonthRange returns the first and last day of the month before t.
func lastMonthRange(t time.Time) (time.Time, time.Time) {
	first, _ := monthRange(t)
	return monthRange(first.AddDate(0, 0, -1))
}

// periodRange resolves a named period to a date window ending today.
// "all" returns a zero start, meaning unbounded.
func periodRange(period string, now time.Time) (time.Time, time.Time, string, error) {
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch period {
	case "week":
		return end.AddDate(0, 0, -6), end, "This Week", nil
	case "month":
		first, _ := monthRange(now)
		return first, end, "This Month", nil
	case "year":
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), end, "This Year", nil
	case "all":
		return time.Time{}, end, "All Time", nil
	default:
		return time.Time{}, time.Time{}, "", fmt.Errorf("unknown period %q (want week, month, year, or all)", period)
	}
}

// renderEmpty prints the standard no-data notice.
func renderEmpty() {
	fmt.Println()
	fmt.Println("  No expenses recorded yet.")
	fmt.Println("  Add one with:", cli.Muted("spent add --amount 12.50 --category Groceries"))
}

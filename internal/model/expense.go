// Package model defines the domain types shared by the store, the
// analytics engine, and the presentation layer.
package model

import "time"

// Expense is a single spending record. Records are immutable facts:
// the store creates them, the engine only reads them.
type Expense struct {
	ID            int64
	Date          time.Time
	Category      string
	Amount        float64
	Description   string
	PaymentMethod string
}

// Filter narrows an expense fetch. Zero-valued fields are ignored.
type Filter struct {
	Category string    // exact category match when non-empty
	Start    time.Time // inclusive lower date bound when non-zero
	End      time.Time // inclusive upper date bound when non-zero
	Limit    int       // caps result count when positive
}

// Budget is a monthly spending limit for one category. At most one
// limit exists per category; setting a new value replaces the old.
type Budget struct {
	Category     string
	MonthlyLimit float64
}

// Category is a managed expense category.
type Category struct {
	Name string
	Icon string
}

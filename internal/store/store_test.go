package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"spent/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "spent.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func addExpense(t *testing.T, s *Store, date, category string, amount float64, desc string) int64 {
	t.Helper()
	id, err := s.AddExpense(model.Expense{
		Date:        day(t, date),
		Category:    category,
		Amount:      amount,
		Description: desc,
	})
	if err != nil {
		t.Fatalf("add expense: %v", err)
	}
	return id
}

func TestAddAndFetchExpense(t *testing.T) {
	s := openTestStore(t)
	id := addExpense(t, s, "2025-06-10", "Groceries", 42.50, "weekly shop")

	e, err := s.Expense(id)
	if err != nil {
		t.Fatalf("fetch expense: %v", err)
	}
	if e.Category != "Groceries" || e.Amount != 42.50 || e.Description != "weekly shop" {
		t.Errorf("fetched expense = %+v", e)
	}
	if e.PaymentMethod != "Cash" {
		t.Errorf("payment method = %q, want default Cash", e.PaymentMethod)
	}
	if !e.Date.Equal(day(t, "2025-06-10")) {
		t.Errorf("date = %v, want 2025-06-10", e.Date)
	}
}

func TestAddExpense_Validation(t *testing.T) {
	s := openTestStore(t)

	_, err := s.AddExpense(model.Expense{Date: day(t, "2025-06-10"), Category: "Groceries", Amount: 0})
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero amount err = %v, want ErrInvalidAmount", err)
	}

	_, err = s.AddExpense(model.Expense{Date: day(t, "2025-06-10"), Category: "Spaceships", Amount: 10})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("unknown category err = %v, want ErrUnknownCategory", err)
	}
}

func TestExpenses_FilterAndOrder(t *testing.T) {
	s := openTestStore(t)
	addExpense(t, s, "2025-06-01", "Groceries", 10, "")
	addExpense(t, s, "2025-06-15", "Rent", 800, "")
	addExpense(t, s, "2025-06-15", "Groceries", 20, "")
	addExpense(t, s, "2025-07-02", "Groceries", 30, "")

	t.Run("date range", func(t *testing.T) {
		got, err := s.Expenses(model.Filter{Start: day(t, "2025-06-01"), End: day(t, "2025-06-30")})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		// Date descending, id descending on the 06-15 tie.
		if !got[0].Date.Equal(day(t, "2025-06-15")) || got[0].Category != "Groceries" {
			t.Errorf("first = %+v, want the later-inserted 06-15 record", got[0])
		}
		if got[2].Category != "Groceries" || got[2].Amount != 10 {
			t.Errorf("last = %+v, want the 06-01 record", got[2])
		}
	})

	t.Run("category", func(t *testing.T) {
		got, err := s.Expenses(model.Filter{Category: "Groceries"})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 3 {
			t.Errorf("len = %d, want 3", len(got))
		}
	})

	t.Run("limit", func(t *testing.T) {
		got, err := s.Expenses(model.Filter{Limit: 2})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 {
			t.Errorf("len = %d, want 2", len(got))
		}
	})
}

func TestTotalSpent(t *testing.T) {
	s := openTestStore(t)
	addExpense(t, s, "2025-06-01", "Groceries", 10, "")
	addExpense(t, s, "2025-06-15", "Rent", 800, "")

	total, err := s.TotalSpent(model.Filter{Start: day(t, "2025-06-01"), End: day(t, "2025-06-30")})
	if err != nil {
		t.Fatal(err)
	}
	if total != 810 {
		t.Errorf("total = %.2f, want 810", total)
	}

	empty, err := s.TotalSpent(model.Filter{Category: "Travel"})
	if err != nil {
		t.Fatal(err)
	}
	if empty != 0 {
		t.Errorf("empty total = %.2f, want 0", empty)
	}
}

func TestUpdateAndDeleteExpense(t *testing.T) {
	s := openTestStore(t)
	id := addExpense(t, s, "2025-06-10", "Groceries", 42.50, "")

	err := s.UpdateExpense(model.Expense{
		ID: id, Date: day(t, "2025-06-11"), Category: "Rent", Amount: 900, PaymentMethod: "Card",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	e, err := s.Expense(id)
	if err != nil {
		t.Fatal(err)
	}
	if e.Category != "Rent" || e.Amount != 900 {
		t.Errorf("after update = %+v", e)
	}

	if err := s.DeleteExpense(id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Expense(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("fetch after delete err = %v, want ErrNotFound", err)
	}
	if err := s.DeleteExpense(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete err = %v, want ErrNotFound", err)
	}
}

func TestSearchExpenses(t *testing.T) {
	s := openTestStore(t)
	addExpense(t, s, "2025-06-10", "Groceries", 12, "Cheese and bread")
	addExpense(t, s, "2025-06-11", "Entertainment", 30, "cinema tickets")
	addExpense(t, s, "2025-06-12", "Rent", 800, "")

	got, err := s.SearchExpenses("CHEESE")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Description != "Cheese and bread" {
		t.Errorf("search result = %+v, want the cheese record", got)
	}

	got, err = s.SearchExpenses("enter")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Category != "Entertainment" {
		t.Errorf("category search = %+v, want the Entertainment record", got)
	}
}

func TestBudgets(t *testing.T) {
	s := openTestStore(t)

	if err := s.SetBudget("Groceries", 300); err != nil {
		t.Fatalf("set budget: %v", err)
	}
	// A second set replaces, never duplicates.
	if err := s.SetBudget("Groceries", 350); err != nil {
		t.Fatalf("replace budget: %v", err)
	}
	if err := s.SetBudget("Rent", 900); err != nil {
		t.Fatalf("set budget: %v", err)
	}

	budgets, err := s.Budgets()
	if err != nil {
		t.Fatal(err)
	}
	if len(budgets) != 2 || budgets["Groceries"] != 350 || budgets["Rent"] != 900 {
		t.Errorf("budgets = %v", budgets)
	}

	list, err := s.BudgetList()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Category != "Groceries" {
		t.Errorf("budget list = %+v, want ordered by category", list)
	}
}

func TestSetBudget_Validation(t *testing.T) {
	s := openTestStore(t)

	if err := s.SetBudget("Groceries", 0); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("zero limit err = %v, want ErrInvalidLimit", err)
	}
	if err := s.SetBudget("Groceries", -5); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("negative limit err = %v, want ErrInvalidLimit", err)
	}
	if err := s.SetBudget("Spaceships", 100); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("unknown category err = %v, want ErrUnknownCategory", err)
	}
}

func TestCategories(t *testing.T) {
	s := openTestStore(t)

	cats, err := s.Categories()
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != len(defaultCategories) {
		t.Fatalf("len(cats) = %d, want %d seeded", len(cats), len(defaultCategories))
	}

	if err := s.AddCategory("Pets", "🐕"); err != nil {
		t.Fatalf("add category: %v", err)
	}
	if err := s.AddCategory("Pets", "🐕"); !errors.Is(err, ErrDuplicateCategory) {
		t.Errorf("duplicate err = %v, want ErrDuplicateCategory", err)
	}

	cats, err = s.Categories()
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != len(defaultCategories)+1 {
		t.Errorf("len(cats) = %d after add", len(cats))
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spent.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	addExpense(t, s, "2025-06-10", "Groceries", 10, "")
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = s2.Close() }()

	got, err := s2.Expenses(model.Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("records after reopen = %d, want 1", len(got))
	}

	// Seeding on reopen must not duplicate categories.
	cats, err := s2.Categories()
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != len(defaultCategories) {
		t.Errorf("categories after reopen = %d, want %d", len(cats), len(defaultCategories))
	}
}

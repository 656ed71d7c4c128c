package engine

import (
	"math"
	"testing"
	"time"

	"spent/internal/model"
)

func TestSummarize_Window(t *testing.T) {
	records := []model.Expense{
		expense(t, "2025-06-02", "Food & Dining", 40),
		expense(t, "2025-06-05", "Food & Dining", 60),
		expense(t, "2025-06-08", "Transportation", 20),
	}
	start := mustDate(t, "2025-06-01")
	end := mustDate(t, "2025-06-10")

	s := Summarize(records, start, end)

	if s.TotalSpent != 120 || s.TransactionCount != 3 {
		t.Errorf("total/count = %.2f/%d, want 120/3", s.TotalSpent, s.TransactionCount)
	}
	if s.AvgPerTransaction != 40 {
		t.Errorf("avg per transaction = %.2f, want 40", s.AvgPerTransaction)
	}
	if s.AvgPerDay != 12 { // 120 over a 10-day window
		t.Errorf("avg per day = %.2f, want 12", s.AvgPerDay)
	}
	if len(s.TopCategories) != 2 || s.TopCategories[0].Category != "Food & Dining" {
		t.Errorf("top categories = %+v, want Food & Dining first", s.TopCategories)
	}
}

func TestSummarize_AllTimeUsesEarliestRecord(t *testing.T) {
	records := []model.Expense{
		expense(t, "2025-06-01", "Rent", 100),
		expense(t, "2025-06-05", "Rent", 100),
	}
	end := mustDate(t, "2025-06-05")

	s := Summarize(records, time.Time{}, end)
	if s.AvgPerDay != 40 { // 200 over 5 days from the earliest record
		t.Errorf("avg per day = %.2f, want 40", s.AvgPerDay)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, time.Time{}, mustDate(t, "2025-06-05"))
	if s.TotalSpent != 0 || s.AvgPerTransaction != 0 || s.AvgPerDay != 0 {
		t.Errorf("empty summary = %+v, want all zeros", s)
	}
}

func TestSummarize_CapsTopCategories(t *testing.T) {
	records := []model.Expense{
		expense(t, "2025-06-01", "Rent", 700),
		expense(t, "2025-06-01", "Groceries", 90),
		expense(t, "2025-06-01", "Food & Dining", 80),
		expense(t, "2025-06-01", "Transportation", 50),
		expense(t, "2025-06-01", "Entertainment", 40),
		expense(t, "2025-06-01", "Healthcare", 30),
		expense(t, "2025-06-01", "Travel", 20),
	}
	s := Summarize(records, mustDate(t, "2025-06-01"), mustDate(t, "2025-06-30"))
	if len(s.TopCategories) != topCategoryLimit {
		t.Errorf("top categories = %d, want %d", len(s.TopCategories), topCategoryLimit)
	}
	if s.TopCategories[0].Category != "Rent" {
		t.Errorf("top category = %s, want Rent", s.TopCategories[0].Category)
	}
}

func TestComparePeriods(t *testing.T) {
	first := []model.Expense{
		expense(t, "2025-05-02", "Rent", 800),
		expense(t, "2025-05-10", "Groceries", 200),
	}
	second := []model.Expense{
		expense(t, "2025-06-02", "Rent", 800),
		expense(t, "2025-06-10", "Groceries", 300),
		expense(t, "2025-06-12", "Travel", 150),
	}

	pc := ComparePeriods(first, second)

	if pc.First.Total != 1000 || pc.First.Count != 2 {
		t.Errorf("first = %+v, want total 1000 count 2", pc.First)
	}
	if pc.Second.Total != 1250 || pc.Second.Count != 3 {
		t.Errorf("second = %+v, want total 1250 count 3", pc.Second)
	}
	if pc.ChangeAmount != 250 {
		t.Errorf("change = %.2f, want 250", pc.ChangeAmount)
	}
	if math.Abs(pc.ChangePercent-25) > 1e-9 {
		t.Errorf("change percent = %.2f, want 25", pc.ChangePercent)
	}
	if pc.Direction != model.ChangeIncreased {
		t.Errorf("direction = %s, want INCREASED", pc.Direction)
	}
}

func TestComparePeriods_EmptyFirstPeriod(t *testing.T) {
	second := []model.Expense{expense(t, "2025-06-02", "Rent", 100)}

	pc := ComparePeriods(nil, second)
	if pc.ChangePercent != 0 {
		t.Errorf("change percent = %.2f, want 0 with empty baseline", pc.ChangePercent)
	}
	if pc.Direction != model.ChangeIncreased {
		t.Errorf("direction = %s, want INCREASED", pc.Direction)
	}
}

func TestComparePeriods_Unchanged(t *testing.T) {
	records := []model.Expense{expense(t, "2025-06-02", "Rent", 100)}
	pc := ComparePeriods(records, records)
	if pc.Direction != model.ChangeUnchanged || pc.ChangeAmount != 0 {
		t.Errorf("comparison = %+v, want UNCHANGED with 0 delta", pc)
	}
}

// Package store persists expenses, budgets, and categories in SQLite.
// It owns all validation of raw input; the analytics engine assumes
// records it receives were validated here.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"spent/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const dateLayout = "2006-01-02"

var (
	// ErrNotFound reports a lookup or delete that matched no row.
	ErrNotFound = errors.New("not found")
	// ErrInvalidAmount reports a non-positive expense amount.
	ErrInvalidAmount = errors.New("amount must be greater than 0")
	// ErrInvalidLimit reports a non-positive budget limit.
	ErrInvalidLimit = errors.New("budget limit must be greater than 0")
	// ErrUnknownCategory reports a category outside the managed set.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrDuplicateCategory reports an attempt to re-add a category.
	ErrDuplicateCategory = errors.New("category already exists")
)

// Store is the SQLite-backed record store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path, applies the
// schema, and seeds the default category set.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	for _, c := range defaultCategories {
		if _, err := db.Exec(
			"INSERT OR IGNORE INTO categories (name, icon) VALUES (?, ?)", c.Name, c.Icon,
		); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("seeding categories: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// AddExpense validates and inserts a record, returning its id.
func (s *Store) AddExpense(e model.Expense) (int64, error) {
	if e.Amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if e.Date.IsZero() {
		return 0, errors.New("date is required")
	}
	if err := s.requireCategory(e.Category); err != nil {
		return 0, err
	}
	if e.PaymentMethod == "" {
		e.PaymentMethod = "Cash"
	}

	res, err := s.db.Exec(`INSERT INTO expenses
		(date, category, amount, description, payment_method)
		VALUES (?, ?, ?, ?, ?)`,
		e.Date.Format(dateLayout), e.Category, e.Amount, e.Description, e.PaymentMethod,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting expense: %w", err)
	}
	return res.LastInsertId()
}

// Expenses returns records matching the filter, ordered by date
// descending with id descending as the tie-break.
func (s *Store) Expenses(f model.Filter) ([]model.Expense, error) {
	query := `SELECT id, date, category, amount, description, payment_method
		FROM expenses WHERE 1=1`
	var args []any

	if f.Category != "" {
		query += " AND category = ?"
		args = append(args, f.Category)
	}
	if !f.Start.IsZero() {
		query += " AND date >= ?"
		args = append(args, f.Start.Format(dateLayout))
	}
	if !f.End.IsZero() {
		query += " AND date <= ?"
		args = append(args, f.End.Format(dateLayout))
	}

	query += " ORDER BY date DESC, id DESC"

	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// Expense returns a single record by id.
func (s *Store) Expense(id int64) (model.Expense, error) {
	row := s.db.QueryRow(`SELECT id, date, category, amount, description, payment_method
		FROM expenses WHERE id = ?`, id)

	e, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Expense{}, ErrNotFound
	}
	return e, err
}

// UpdateExpense overwrites the stored record with the same id.
func (s *Store) UpdateExpense(e model.Expense) error {
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	if err := s.requireCategory(e.Category); err != nil {
		return err
	}

	res, err := s.db.Exec(`UPDATE expenses
		SET date = ?, category = ?, amount = ?, description = ?, payment_method = ?
		WHERE id = ?`,
		e.Date.Format(dateLayout), e.Category, e.Amount, e.Description, e.PaymentMethod, e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}
	return requireAffected(res)
}

// DeleteExpense removes a record by id.
func (s *Store) DeleteExpense(id int64) error {
	res, err := s.db.Exec("DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}
	return requireAffected(res)
}

// TotalSpent sums amounts matching the filter. An empty match is 0,
// not an error.
func (s *Store) TotalSpent(f model.Filter) (float64, error) {
	query := "SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE 1=1"
	var args []any

	if f.Category != "" {
		query += " AND category = ?"
		args = append(args, f.Category)
	}
	if !f.Start.IsZero() {
		query += " AND date >= ?"
		args = append(args, f.Start.Format(dateLayout))
	}
	if !f.End.IsZero() {
		query += " AND date <= ?"
		args = append(args, f.End.Format(dateLayout))
	}

	var total float64
	if err := s.db.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing expenses: %w", err)
	}
	return total, nil
}

// SearchExpenses matches the keyword case-insensitively against
// description and category.
func (s *Store) SearchExpenses(keyword string) ([]model.Expense, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"
	rows, err := s.db.Query(`SELECT id, date, category, amount, description, payment_method
		FROM expenses
		WHERE lower(description) LIKE ? OR lower(category) LIKE ?
		ORDER BY date DESC, id DESC`, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("searching expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// SetBudget creates or replaces the monthly limit for a category.
// Non-positive limits and unknown categories are rejected here so the
// engine never sees them.
func (s *Store) SetBudget(category string, monthlyLimit float64) error {
	if monthlyLimit <= 0 {
		return ErrInvalidLimit
	}
	if err := s.requireCategory(category); err != nil {
		return err
	}

	_, err := s.db.Exec(`INSERT INTO budgets (category, monthly_limit)
		VALUES (?, ?)
		ON CONFLICT(category) DO UPDATE SET monthly_limit = excluded.monthly_limit`,
		category, monthlyLimit,
	)
	if err != nil {
		return fmt.Errorf("setting budget: %w", err)
	}
	return nil
}

// Budgets returns the configured limits keyed by category.
func (s *Store) Budgets() (map[string]float64, error) {
	rows, err := s.db.Query("SELECT category, monthly_limit FROM budgets")
	if err != nil {
		return nil, fmt.Errorf("querying budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	budgets := make(map[string]float64)
	for rows.Next() {
		var category string
		var limit float64
		if err := rows.Scan(&category, &limit); err != nil {
			return nil, err
		}
		budgets[category] = limit
	}
	return budgets, rows.Err()
}

// BudgetList returns the configured budgets ordered by category.
func (s *Store) BudgetList() ([]model.Budget, error) {
	rows, err := s.db.Query("SELECT category, monthly_limit FROM budgets ORDER BY category")
	if err != nil {
		return nil, fmt.Errorf("querying budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(&b.Category, &b.MonthlyLimit); err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// Categories returns the managed category set ordered by name.
func (s *Store) Categories() ([]model.Category, error) {
	rows, err := s.db.Query("SELECT name, icon FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cats []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.Name, &c.Icon); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// AddCategory extends the managed category set.
func (s *Store) AddCategory(name, icon string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("category name is required")
	}
	if icon == "" {
		icon = "📌"
	}

	res, err := s.db.Exec("INSERT OR IGNORE INTO categories (name, icon) VALUES (?, ?)", name, icon)
	if err != nil {
		return fmt.Errorf("adding category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDuplicateCategory
	}
	return nil
}

func (s *Store) requireCategory(name string) error {
	if name == "" {
		return ErrUnknownCategory
	}
	var exists int
	err := s.db.QueryRow("SELECT COUNT(*) FROM categories WHERE name = ?", name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking category: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner) (model.Expense, error) {
	var e model.Expense
	var date string
	if err := row.Scan(&e.ID, &date, &e.Category, &e.Amount, &e.Description, &e.PaymentMethod); err != nil {
		return model.Expense{}, err
	}

	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing stored date %q: %w", date, err)
	}
	e.Date = parsed
	return e, nil
}

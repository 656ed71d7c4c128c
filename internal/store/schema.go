package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS expenses (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    date            TEXT NOT NULL,
    category        TEXT NOT NULL,
    amount          REAL NOT NULL,
    description     TEXT NOT NULL DEFAULT '',
    payment_method  TEXT NOT NULL DEFAULT 'Cash',
    created_at      TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS budgets (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    category        TEXT NOT NULL UNIQUE,
    monthly_limit   REAL NOT NULL,
    created_at      TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS categories (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    name            TEXT NOT NULL UNIQUE,
    icon            TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);
CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category);
`

// defaultCategories are seeded on first open so budgets and expenses
// have a managed category set from the start.
var defaultCategories = []struct {
	Name string
	Icon string
}{
	{"Food & Dining", "🍔"},
	{"Transportation", "🚗"},
	{"Shopping", "🛍️"},
	{"Entertainment", "🎬"},
	{"Healthcare", "🏥"},
	{"Bills & Utilities", "💡"},
	{"Education", "📚"},
	{"Travel", "✈️"},
	{"Groceries", "🛒"},
	{"Personal Care", "💅"},
	{"Rent", "🏠"},
	{"Investments", "📈"},
	{"Others", "📌"},
}

package store

// Amounts are stored as decimal text so sums stay exact.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS expenses (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    amount    TEXT,
    category  TEXT,
    date      TEXT
);

CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);
CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category);
`

const selectColumns = `SELECT id, amount, category, date FROM expenses`

// queryFilteredSQL applies every predicate unconditionally. An empty
// parameter disables its predicate.
const queryFilteredSQL = selectColumns + `
WHERE (@category = '' OR category = @category)
  AND (@start = '' OR date >= @start)
  AND (@end = '' OR date <= @end)
ORDER BY id ASC`

// Package store provides the SQLite-backed expense table.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/exptrack/internal/logging"
	"github.com/theirongolddev/exptrack/internal/model"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrStorage marks failures of the underlying database file.
var ErrStorage = errors.New("storage error")

// ErrNotFound is returned by Get when no record has the requested id.
var ErrNotFound = errors.New("expense not found")

// Store is an append-only table of expense records.
type Store struct {
	db     *sql.DB
	now    func() time.Time
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to timestamp new records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for store events.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Open opens or creates the expense database at the given path and makes
// sure the schema exists. It is safe to call against a populated store.
func Open(dbPath string, opts ...Option) (*Store, error) {
	s := &Store{
		now:    time.Now,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, storageErr("creating db dir", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_pragma=synchronous(full)")
	if err != nil {
		return nil, storageErr("opening db", err)
	}
	// One connection for the life of the process; the table has a single writer.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, storageErr("connecting to db", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, storageErr("creating schema", err)
	}

	s.db = db
	s.logger.Debug("store opened", "path", dbPath)
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add records a new expense timestamped with the current time. The insert is
// committed before Add returns.
func (s *Store) Add(ctx context.Context, amount decimal.Decimal, category string) (model.Expense, error) {
	e := model.Expense{
		Amount:   amount,
		Category: category,
		Date:     s.now().Format(model.DateLayout),
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (amount, category, date) VALUES (?, ?, ?)`,
		amount.String(), category, e.Date,
	)
	if err != nil {
		return model.Expense{}, storageErr("inserting expense", err)
	}
	e.ID, err = res.LastInsertId()
	if err != nil {
		return model.Expense{}, storageErr("reading expense id", err)
	}

	s.logger.Debug("expense added", "id", e.ID, "amount", e.Amount.String(), "category", e.Category)
	return e, nil
}

// Total returns the sum of all recorded amounts, zero when the table is empty.
// The sum is taken in decimal arithmetic, not by SQL.
func (s *Store) Total(ctx context.Context) (decimal.Decimal, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT amount FROM expenses`)
	if err != nil {
		return decimal.Zero, storageErr("summing expenses", err)
	}
	defer func() { _ = rows.Close() }()

	total := decimal.Zero
	for rows.Next() {
		var raw sql.NullString
		if err := rows.Scan(&raw); err != nil {
			return decimal.Zero, storageErr("reading amount", err)
		}
		amount, err := parseStoredAmount(raw)
		if err != nil {
			return decimal.Zero, storageErr("summing expenses", err)
		}
		total = total.Add(amount)
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, storageErr("summing expenses", err)
	}
	return total, nil
}

// Query returns the records matching every non-empty field of f, in insertion
// order. Date bounds are inclusive; date-only bounds cover the whole day.
func (s *Store) Query(ctx context.Context, f model.Filter) ([]model.Expense, error) {
	nf, err := f.Normalize()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, queryFilteredSQL,
		sql.Named("category", nf.Category),
		sql.Named("start", nf.Start),
		sql.Named("end", nf.End),
	)
	if err != nil {
		return nil, storageErr("querying expenses", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, storageErr("reading expense row", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("reading expense rows", err)
	}
	if !nf.IsZero() {
		s.logger.Debug("filtered query", "category", nf.Category, "start", nf.Start, "end", nf.End, "matched", len(out))
	}
	return out, nil
}

// Get returns a single record by id.
func (s *Store) Get(ctx context.Context, id int64) (model.Expense, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	e, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Expense{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return model.Expense{}, storageErr("reading expense", err)
	}
	return e, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses`).Scan(&count); err != nil {
		return 0, storageErr("counting expenses", err)
	}
	return count, nil
}

// Categories returns the distinct categories in use, sorted.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT category FROM expenses WHERE category IS NOT NULL ORDER BY category`)
	if err != nil {
		return nil, storageErr("listing categories", err)
	}
	defer func() { _ = rows.Close() }()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, storageErr("reading category", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("reading categories", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(sc scanner) (model.Expense, error) {
	var e model.Expense
	var amount, category, date sql.NullString
	if err := sc.Scan(&e.ID, &amount, &category, &date); err != nil {
		return model.Expense{}, err
	}
	d, err := parseStoredAmount(amount)
	if err != nil {
		return model.Expense{}, fmt.Errorf("expense %d: %w", e.ID, err)
	}
	e.Amount = d
	e.Category = category.String
	e.Date = date.String
	return e, nil
}

// parseStoredAmount converts a persisted amount. NULL reads as zero. Values
// that are not finite decimals (such as a REAL "Inf") are rejected.
func parseStoredAmount(raw sql.NullString) (decimal.Decimal, error) {
	if !raw.Valid {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw.String)
	if err != nil {
		return decimal.Zero, fmt.Errorf("stored amount %q is not a decimal: %w", raw.String, err)
	}
	return d, nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/exptrack/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock hands out the queued timestamps in order, one per insert.
type fakeClock struct {
	times []time.Time
}

func (c *fakeClock) now() time.Time {
	t := c.times[0]
	if len(c.times) > 1 {
		c.times = c.times[1:]
	}
	return t
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation(model.DateLayout, s, time.Local)
	require.NoError(t, err)
	return ts
}

func openTemp(t *testing.T, opts ...Option) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "expenses.db")
	s, err := Open(path, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func add(t *testing.T, s *Store, amount, category string) model.Expense {
	t.Helper()
	e, err := s.Add(context.Background(), decimal.RequireFromString(amount), category)
	require.NoError(t, err)
	return e
}

func TestTotal_EmptyIsZero(t *testing.T) {
	s, _ := openTemp(t)
	total, err := s.Total(context.Background())
	require.NoError(t, err)
	assert.True(t, total.IsZero(), "total = %s, want 0", total)
}

func TestTotal_SumsAllAmounts(t *testing.T) {
	s, _ := openTemp(t)
	for _, a := range []string{"12.50", "3.25", "100", "0.10"} {
		add(t, s, a, "Misc")
	}

	total, err := s.Total(context.Background())
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("115.85")), "total = %s", total)
}

func TestTotal_IsExactDecimal(t *testing.T) {
	s, _ := openTemp(t)
	add(t, s, "0.1", "Misc")
	add(t, s, "0.2", "Misc")
	add(t, s, "1000000000000", "Misc")
	add(t, s, "1000000000000", "Misc")

	total, err := s.Total(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2000000000000.3", total.String())
}

func TestUnreadableAmountIsStorageError(t *testing.T) {
	s, _ := openTemp(t)
	add(t, s, "5", "Food")
	_, err := s.db.Exec(`INSERT INTO expenses (amount, category, date) VALUES (1e999, 'Food', '2024-01-01 00:00:00')`)
	require.NoError(t, err)

	_, err = s.Total(context.Background())
	require.ErrorIs(t, err, ErrStorage)

	_, err = s.Query(context.Background(), model.Filter{})
	require.ErrorIs(t, err, ErrStorage)

	_, err = s.Get(context.Background(), 2)
	require.ErrorIs(t, err, ErrStorage)

	first, err := s.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, first.Amount.Equal(decimal.NewFromInt(5)))
}

func TestQuery_NoFilterReturnsInsertionOrder(t *testing.T) {
	s, _ := openTemp(t)
	want := []string{"Food", "Rent", "Transport"}
	for _, c := range want {
		add(t, s, "1", c)
	}

	got, err := s.Query(context.Background(), model.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 3)

	seen := make(map[int64]bool)
	for i, e := range got {
		assert.Equal(t, want[i], e.Category)
		assert.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true
		if i > 0 {
			assert.Greater(t, e.ID, got[i-1].ID)
		}
	}
}

func TestQuery_CategoryIsCaseSensitive(t *testing.T) {
	s, _ := openTemp(t)
	add(t, s, "10", "Food")
	add(t, s, "20", "food")
	add(t, s, "30", "Food")

	got, err := s.Query(context.Background(), model.Filter{Category: "Food"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, "Food", e.Category)
	}
}

func TestQuery_RoundTrip(t *testing.T) {
	s, _ := openTemp(t)
	add(t, s, "4", "Food")
	add(t, s, "12.50", "Transport")

	got, err := s.Query(context.Background(), model.Filter{Category: "Transport"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("12.50")), "amount = %s", got[0].Amount)
	assert.Equal(t, "Transport", got[0].Category)
}

func TestQuery_DateRangeInclusive(t *testing.T) {
	clock := &fakeClock{times: []time.Time{
		mustTime(t, "2023-12-31 23:59:59"),
		mustTime(t, "2024-01-01 00:00:00"),
		mustTime(t, "2024-01-31 18:45:00"),
		mustTime(t, "2024-02-01 00:00:00"),
	}}
	s, _ := openTemp(t, WithClock(clock.now))
	for i := 0; i < 4; i++ {
		add(t, s, "1", "Misc")
	}

	got, err := s.Query(context.Background(), model.Filter{Start: "2024-01-01", End: "2024-01-31"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-01 00:00:00", got[0].Date)
	assert.Equal(t, "2024-01-31 18:45:00", got[1].Date)
}

func TestQuery_CombinedFilters(t *testing.T) {
	clock := &fakeClock{times: []time.Time{
		mustTime(t, "2024-01-10 09:00:00"),
		mustTime(t, "2024-02-10 09:00:00"),
		mustTime(t, "2024-01-15 09:00:00"),
	}}
	s, _ := openTemp(t, WithClock(clock.now))
	first := add(t, s, "5", "A")
	second := add(t, s, "7", "A")
	add(t, s, "9", "B")

	ctx := context.Background()
	tests := []struct {
		name   string
		filter model.Filter
		want   []int64
	}{
		{"category+both", model.Filter{Category: "A", Start: "2024-01-01", End: "2024-01-31"}, []int64{first.ID}},
		{"category+start", model.Filter{Category: "A", Start: "2024-02-01"}, []int64{second.ID}},
		{"category+end", model.Filter{Category: "A", End: "2024-01-31"}, []int64{first.ID}},
		{"category only", model.Filter{Category: "A"}, []int64{first.ID, second.ID}},
		{"no match", model.Filter{Category: "B", Start: "2024-02-01"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Query(ctx, tt.filter)
			require.NoError(t, err)
			var ids []int64
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestQuery_MalformedDateIsInputError(t *testing.T) {
	s, _ := openTemp(t)
	_, err := s.Query(context.Background(), model.Filter{Start: "01/02/2024"})
	require.ErrorIs(t, err, model.ErrInput)
}

func TestAdd_TimestampFormat(t *testing.T) {
	clock := &fakeClock{times: []time.Time{mustTime(t, "2024-03-05 07:08:09")}}
	s, _ := openTemp(t, WithClock(clock.now))

	e := add(t, s, "1", "Misc")
	assert.Equal(t, "2024-03-05 07:08:09", e.Date)

	stored, err := s.Get(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.Date, stored.Date)
}

func TestOpen_IdempotentAndPersistent(t *testing.T) {
	s, path := openTemp(t)
	add(t, s, "2.5", "Food")
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	count, err := reopened.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	next := add(t, reopened, "1", "Food")
	assert.Equal(t, int64(2), next.ID)
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.db")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("not a database ", 100)), 0o600))

	_, err := Open(path)
	require.ErrorIs(t, err, ErrStorage)
}

func TestOpen_UnwritableLocation(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := Open(filepath.Join(blocker, "sub", "expenses.db"))
	require.ErrorIs(t, err, ErrStorage)
}

func TestGet_NotFound(t *testing.T) {
	s, _ := openTemp(t)
	_, err := s.Get(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCategories(t *testing.T) {
	s, _ := openTemp(t)
	add(t, s, "1", "Rent")
	add(t, s, "1", "Food")
	add(t, s, "1", "Rent")

	got, err := s.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Food", "Rent"}, got)
}

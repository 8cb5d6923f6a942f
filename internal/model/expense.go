// Package model defines domain types for exptrack records and aggregates.
package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DateLayout is the persisted timestamp format. It sorts lexicographically in
// chronological order, which the store relies on for range filters.
const DateLayout = "2006-01-02 15:04:05"

// DayLayout is the date-only form accepted for filter bounds.
const DayLayout = "2006-01-02"

// ErrInput marks user-supplied text that could not be interpreted.
var ErrInput = errors.New("invalid input")

// MaxAmount is the largest amount a single expense may carry.
var MaxAmount = decimal.New(1, 12)

// Expense is one persisted expense entry. Records are append-only: the ID and
// Date are assigned by the store at insert time and never change.
type Expense struct {
	ID       int64
	Amount   decimal.Decimal
	Category string
	Date     string
}

// Day returns the YYYY-MM-DD prefix of the record timestamp.
func (e Expense) Day() string {
	if len(e.Date) < len(DayLayout) {
		return e.Date
	}
	return e.Date[:len(DayLayout)]
}

// ParseAmount parses a user-entered amount. Both "12.50" and "12,50" are
// accepted. Negative amounts and amounts above MaxAmount are rejected; zero
// is allowed.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is empty", ErrInput)
	}
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a number", ErrInput, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount %s is negative", ErrInput, d.String())
	}
	if d.GreaterThan(MaxAmount) {
		return decimal.Zero, fmt.Errorf("%w: amount %q exceeds %s", ErrInput, s, MaxAmount.String())
	}
	return d, nil
}

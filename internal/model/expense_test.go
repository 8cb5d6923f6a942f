package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"12.50", "12.5", true},
		{"12,50", "12.5", true},
		{" 3 ", "3", true},
		{"0", "0", true},
		{"0.001", "0.001", true},
		{"-1", "", false},
		{"abc", "", false},
		{"1.2.3", "", false},
		{"", "", false},
		{"1e12", "1000000000000", true},
		{"1000000000000.01", "", false},
		{"1e400", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if !tc.ok {
			if !errors.Is(err, ErrInput) {
				t.Fatalf("ParseAmount(%q) err = %v, want ErrInput", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.in, err)
		}
		if !got.Equal(decimal.RequireFromString(tc.out)) {
			t.Fatalf("ParseAmount(%q) = %s, want %s", tc.in, got, tc.out)
		}
	}
}

func TestExpenseDay(t *testing.T) {
	e := Expense{Date: "2024-01-10 08:30:00"}
	if e.Day() != "2024-01-10" {
		t.Fatalf("Day() = %q, want 2024-01-10", e.Day())
	}
	if short := (Expense{Date: "2024"}).Day(); short != "2024" {
		t.Fatalf("Day() on short date = %q, want 2024", short)
	}
}

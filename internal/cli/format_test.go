package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"12.5", "$12.50"},
		{"1234.567", "$1,234.57"},
		{"1000000", "$1,000,000.00"},
		{"-3", "-$3.00"},
	}
	for _, tc := range cases {
		if got := FormatAmount(decimal.RequireFromString(tc.in), "$"); got != tc.want {
			t.Fatalf("FormatAmount(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := FormatAmount(decimal.RequireFromString("5"), "€"); got != "€5.00" {
		t.Fatalf("custom symbol = %q, want €5.00", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDayOfWeek(t *testing.T) {
	if FormatDayOfWeek(0) != "Sun" || FormatDayOfWeek(6) != "Sat" || FormatDayOfWeek(9) != "???" {
		t.Fatal("unexpected weekday abbreviations")
	}
}

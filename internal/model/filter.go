package model

import (
	"fmt"
	"strings"
	"time"
)

// Filter narrows a query. An empty field means no predicate for it; all
// non-empty fields are combined with AND.
type Filter struct {
	Category string
	Start    string
	End      string
}

// IsZero reports whether the filter selects every record.
func (f Filter) IsZero() bool {
	return f.Category == "" && f.Start == "" && f.End == ""
}

// Normalize validates the date bounds and expands date-only bounds to full
// timestamps: a start day begins at 00:00:00 and an end day runs through
// 23:59:59, so both bounds are inclusive of the whole day.
func (f Filter) Normalize() (Filter, error) {
	out := Filter{Category: f.Category}

	start, err := normalizeBound(f.Start, "00:00:00")
	if err != nil {
		return Filter{}, fmt.Errorf("start date: %w", err)
	}
	end, err := normalizeBound(f.End, "23:59:59")
	if err != nil {
		return Filter{}, fmt.Errorf("end date: %w", err)
	}
	if start != "" && end != "" && start > end {
		return Filter{}, fmt.Errorf("%w: start date %s is after end date %s", ErrInput, f.Start, f.End)
	}

	out.Start = start
	out.End = end
	return out, nil
}

func normalizeBound(s, clock string) (string, error) {
	s = strings.TrimSpace(s)
	switch len(s) {
	case 0:
		return "", nil
	case len(DayLayout):
		if _, err := time.Parse(DayLayout, s); err != nil {
			return "", fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInput, s)
		}
		return s + " " + clock, nil
	case len(DateLayout):
		if _, err := time.Parse(DateLayout, s); err != nil {
			return "", fmt.Errorf("%w: %q is not a YYYY-MM-DD HH:MM:SS timestamp", ErrInput, s)
		}
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInput, s)
	}
}

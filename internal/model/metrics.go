package model

import "github.com/shopspring/decimal"

// CategoryTotal holds the aggregate spend for a single category.
type CategoryTotal struct {
	Category     string
	Count        int
	Total        decimal.Decimal
	SharePercent float64
}

// DailyTotal holds the aggregate spend for a single calendar day.
type DailyTotal struct {
	Day   string // YYYY-MM-DD
	Count int
	Total decimal.Decimal
}

// SummaryStats holds the top-level aggregate across a set of records.
type SummaryStats struct {
	Count      int
	Total      decimal.Decimal
	Average    decimal.Decimal
	Largest    decimal.Decimal
	Categories int
	ActiveDays int
	FirstDate  string
	LastDate   string
}

// Package pipeline computes in-memory aggregates over expense records.
package pipeline

import (
	"sort"
	"time"

	"github.com/theirongolddev/exptrack/internal/model"

	"github.com/shopspring/decimal"
)

// Sum returns the total amount of the given records.
func Sum(records []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range records {
		total = total.Add(e.Amount)
	}
	return total
}

// Aggregate computes summary statistics for a set of records.
func Aggregate(records []model.Expense) model.SummaryStats {
	stats := model.SummaryStats{
		Total:   decimal.Zero,
		Average: decimal.Zero,
		Largest: decimal.Zero,
	}
	categories := make(map[string]struct{})
	activeDays := make(map[string]struct{})

	for _, e := range records {
		stats.Count++
		stats.Total = stats.Total.Add(e.Amount)
		if e.Amount.GreaterThan(stats.Largest) {
			stats.Largest = e.Amount
		}
		categories[e.Category] = struct{}{}

		day := e.Day()
		activeDays[day] = struct{}{}
		if stats.FirstDate == "" || e.Date < stats.FirstDate {
			stats.FirstDate = e.Date
		}
		if e.Date > stats.LastDate {
			stats.LastDate = e.Date
		}
	}

	stats.Categories = len(categories)
	stats.ActiveDays = len(activeDays)
	if stats.Count > 0 {
		stats.Average = stats.Total.Div(decimal.NewFromInt(int64(stats.Count)))
	}
	return stats
}

// AggregateCategories computes per-category totals, sorted by total
// descending and then by name.
func AggregateCategories(records []model.Expense) []model.CategoryTotal {
	catMap := make(map[string]*model.CategoryTotal)
	grand := decimal.Zero

	for _, e := range records {
		ct, ok := catMap[e.Category]
		if !ok {
			ct = &model.CategoryTotal{Category: e.Category, Total: decimal.Zero}
			catMap[e.Category] = ct
		}
		ct.Count++
		ct.Total = ct.Total.Add(e.Amount)
		grand = grand.Add(e.Amount)
	}

	cats := make([]model.CategoryTotal, 0, len(catMap))
	for _, ct := range catMap {
		if grand.IsPositive() {
			ct.SharePercent = ct.Total.Div(grand).InexactFloat64() * 100
		}
		cats = append(cats, *ct)
	}
	sort.Slice(cats, func(i, j int) bool {
		if c := cats[i].Total.Cmp(cats[j].Total); c != 0 {
			return c > 0
		}
		return cats[i].Category < cats[j].Category
	})
	return cats
}

// AggregateDays computes per-day totals in ascending day order. Days between
// the first and last active day with no records are included as zeros so a
// chart shows the gaps.
func AggregateDays(records []model.Expense) []model.DailyTotal {
	dayMap := make(map[string]*model.DailyTotal)
	for _, e := range records {
		key := e.Day()
		dt, ok := dayMap[key]
		if !ok {
			dt = &model.DailyTotal{Day: key, Total: decimal.Zero}
			dayMap[key] = dt
		}
		dt.Count++
		dt.Total = dt.Total.Add(e.Amount)
	}
	if len(dayMap) == 0 {
		return nil
	}

	keys := make([]string, 0, len(dayMap))
	for k := range dayMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	first, errFirst := time.Parse(model.DayLayout, keys[0])
	last, errLast := time.Parse(model.DayLayout, keys[len(keys)-1])
	if errFirst == nil && errLast == nil {
		for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
			key := day.Format(model.DayLayout)
			if _, ok := dayMap[key]; !ok {
				dayMap[key] = &model.DailyTotal{Day: key, Total: decimal.Zero}
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
	}

	days := make([]model.DailyTotal, 0, len(keys))
	for _, k := range keys {
		days = append(days, *dayMap[k])
	}
	return days
}

// FilterByCategory returns records whose category equals category exactly.
// An empty category returns the input unchanged.
func FilterByCategory(records []model.Expense, category string) []model.Expense {
	if category == "" {
		return records
	}
	var result []model.Expense
	for _, e := range records {
		if e.Category == category {
			result = append(result, e)
		}
	}
	return result
}

package store

import "github.com/tallyhq/tally/internal/model"

// Derived views over the store's collections. These are recomputed on
// demand from the current state and never persisted.

// OtherLabel is the fallback bucket for expenses whose categoryId is
// unassigned or no longer resolves to a category.
const OtherLabel = "Other"

// otherColor is the fallback swatch for the Other bucket.
const otherColor = "#ddd"

// CategoryTotal is one row of a monthly per-category breakdown.
type CategoryTotal struct {
	CategoryID string
	Name       string
	Color      string
	Amount     int64
}

// MonthlyTotal sums the amounts of all expenses falling in the given
// month (0-11) and year.
func (s *Store) MonthlyTotal(month, year int) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, e := range s.state.Expenses {
		if e.InMonth(month, year) {
			total += e.Amount
		}
	}
	return total
}

// CategoryBreakdown groups the month's expenses by category, in
// first-seen expense order. Expenses whose categoryId does not resolve
// are reported under the Other bucket rather than omitted.
func (s *Store) CategoryBreakdown(month, year int) []CategoryTotal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]int64)
	var order []string
	for _, e := range s.state.Expenses {
		if !e.InMonth(month, year) {
			continue
		}
		if _, seen := totals[e.CategoryID]; !seen {
			order = append(order, e.CategoryID)
		}
		totals[e.CategoryID] += e.Amount
	}

	rows := make([]CategoryTotal, 0, len(order))
	for _, id := range order {
		row := CategoryTotal{
			CategoryID: id,
			Name:       OtherLabel,
			Color:      otherColor,
			Amount:     totals[id],
		}
		for _, c := range s.state.Categories {
			if c.ID == id {
				row.Name = c.Name
				row.Color = c.Color
				break
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// TargetFor returns the configured target amount for (month, year), or
// 0 when none is set. A stored zero-amount target is indistinguishable
// from an absent one, matching how consumers treat target <= 0 as "no
// target configured".
func (s *Store) TargetFor(month, year int) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.state.Targets {
		if t.Month == month && t.Year == year {
			return t.Amount
		}
	}
	return 0
}

// TargetDelta returns MonthlyTotal minus the month's target. Positive
// means over target. Callers suppress the display when TargetFor
// reports no target, but the computation itself is always defined.
func (s *Store) TargetDelta(month, year int) int64 {
	return s.MonthlyTotal(month, year) - s.TargetFor(month, year)
}

// ExpensesForMonth returns copies of the month's expenses in insertion
// order.
func (s *Store) ExpensesForMonth(month, year int) []model.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Expense
	for _, e := range s.state.Expenses {
		if e.InMonth(month, year) {
			out = append(out, e)
		}
	}
	return out
}

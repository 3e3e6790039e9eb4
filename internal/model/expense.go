package model

import "time"

// DateLayout is the on-disk format for expense dates (no time component).
const DateLayout = "2006-01-02"

// Expense represents a single recorded expense.
type Expense struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // ISO yyyy-mm-dd
	Description string `json:"description"`
	Amount      int64  `json:"amount"` // minor currency units (cents)
	// CategoryID is either a Category.ID or "" for unassigned.
	CategoryID string `json:"categoryId"`
}

// ExpenseDraft holds the caller-supplied fields of a new expense; the
// store generates the id.
type ExpenseDraft struct {
	Date        string
	Description string
	Amount      int64
	CategoryID  string
}

// ExpensePatch describes a partial update to an expense. Nil fields
// preserve the existing value; present fields overwrite it.
type ExpensePatch struct {
	Date        *string
	Description *string
	Amount      *int64
	CategoryID  *string
}

// Apply merges the patch into the expense, patch fields winning.
func (p ExpensePatch) Apply(e Expense) Expense {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.CategoryID != nil {
		e.CategoryID = *p.CategoryID
	}
	return e
}

// InMonth reports whether the expense falls in the given month (0-11)
// and year. Expenses with unparseable dates never match.
func (e Expense) InMonth(month, year int) bool {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return false
	}
	return int(t.Month())-1 == month && t.Year() == year
}

package model

// MonthlyTarget is a spending limit for a single calendar month.
// Month is zero-based (0=January..11=December) to match the persisted
// format; Year is the four-digit year. At most one target exists per
// (Month, Year) pair.
type MonthlyTarget struct {
	Month  int   `json:"month"`
	Year   int   `json:"year"`
	Amount int64 `json:"amount"` // minor currency units
}

// NextMonth returns the month following (month, year), wrapping December
// into January of the next year.
func NextMonth(month, year int) (int, int) {
	if month == 11 {
		return 0, year + 1
	}
	return month + 1, year
}

// PrevMonth returns the month preceding (month, year), wrapping January
// into December of the previous year.
func PrevMonth(month, year int) (int, int) {
	if month == 0 {
		return 11, year - 1
	}
	return month - 1, year
}

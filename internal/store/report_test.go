package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/model"
)

func TestMonthlyTotal(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	for _, d := range []model.ExpenseDraft{
		{Date: "2024-03-01", Description: "a", Amount: 500},
		{Date: "2024-03-15", Description: "b", Amount: 300},
		{Date: "2024-04-01", Description: "c", Amount: 1000},
	} {
		_, err := s.AddExpense(ctx, d)
		require.NoError(t, err)
	}

	// March is month index 2
	assert.Equal(t, int64(800), s.MonthlyTotal(2, 2024))
	assert.Equal(t, int64(1000), s.MonthlyTotal(3, 2024))
	assert.Equal(t, int64(0), s.MonthlyTotal(2, 2023))
}

func TestMonthlyTotalSkipsUnparseableDates(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.AddExpense(ctx, model.ExpenseDraft{Date: "2024-03-01", Description: "ok", Amount: 500})
	require.NoError(t, err)
	_, err = s.AddExpense(ctx, model.ExpenseDraft{Date: "not-a-date", Description: "junk", Amount: 9999})
	require.NoError(t, err)

	assert.Equal(t, int64(500), s.MonthlyTotal(2, 2024))
}

func TestCategoryBreakdown(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.AddCategory(ctx, model.Category{ID: "cat-food", Name: "Food", Color: "#f00"}))
	require.NoError(t, s.AddCategory(ctx, model.Category{ID: "cat-travel", Name: "Travel", Color: "#00f"}))

	for _, d := range []model.ExpenseDraft{
		{Date: "2024-03-01", Description: "Lunch", Amount: 1200, CategoryID: "cat-food"},
		{Date: "2024-03-02", Description: "Train", Amount: 900, CategoryID: "cat-travel"},
		{Date: "2024-03-03", Description: "Dinner", Amount: 3000, CategoryID: "cat-food"},
		{Date: "2024-03-04", Description: "Mystery", Amount: 100, CategoryID: ""},
		{Date: "2024-03-05", Description: "Stale ref", Amount: 50, CategoryID: "cat-gone"},
		{Date: "2024-04-01", Description: "Next month", Amount: 7777, CategoryID: "cat-food"},
	} {
		_, err := s.AddExpense(ctx, d)
		require.NoError(t, err)
	}

	rows := s.CategoryBreakdown(2, 2024)
	require.Len(t, rows, 4)

	// Grouped in first-seen expense order
	assert.Equal(t, "Food", rows[0].Name)
	assert.Equal(t, int64(4200), rows[0].Amount)
	assert.Equal(t, "#f00", rows[0].Color)

	assert.Equal(t, "Travel", rows[1].Name)
	assert.Equal(t, int64(900), rows[1].Amount)

	// Unassigned and dangling ids both fall back to Other
	assert.Equal(t, OtherLabel, rows[2].Name)
	assert.Equal(t, int64(100), rows[2].Amount)
	assert.Equal(t, OtherLabel, rows[3].Name)
	assert.Equal(t, int64(50), rows[3].Amount)
	assert.Equal(t, "#ddd", rows[3].Color)
}

func TestTargetDelta(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.AddExpense(ctx, model.ExpenseDraft{Date: "2024-03-01", Description: "a", Amount: 55000})
	require.NoError(t, err)

	t.Run("no target configured", func(t *testing.T) {
		assert.Equal(t, int64(0), s.TargetFor(2, 2024))
		// The delta is still well-defined as total minus zero
		assert.Equal(t, int64(55000), s.TargetDelta(2, 2024))
	})

	t.Run("over target", func(t *testing.T) {
		require.NoError(t, s.SetTarget(ctx, 2, 2024, 50000))
		assert.Equal(t, int64(5000), s.TargetDelta(2, 2024))
	})

	t.Run("under target", func(t *testing.T) {
		require.NoError(t, s.SetTarget(ctx, 2, 2024, 60000))
		assert.Equal(t, int64(-5000), s.TargetDelta(2, 2024))
	})

	t.Run("zero target reads as unset", func(t *testing.T) {
		require.NoError(t, s.SetTarget(ctx, 2, 2024, 0))
		assert.Equal(t, int64(0), s.TargetFor(2, 2024))
	})
}

func TestExpensesForMonth(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.AddExpense(ctx, model.ExpenseDraft{Date: "2024-03-01", Description: "a", Amount: 100})
	require.NoError(t, err)
	_, err = s.AddExpense(ctx, model.ExpenseDraft{Date: "2024-04-01", Description: "b", Amount: 200})
	require.NoError(t, err)

	got := s.ExpensesForMonth(2, 2024)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Description)

	assert.Empty(t, s.ExpensesForMonth(5, 2024))
}

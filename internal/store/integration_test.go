package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/storage"
	"github.com/tallyhq/tally/internal/store"
	"github.com/tallyhq/tally/internal/testutil"
)

// Drives a whole tracking session the way the CLI does: categories
// first, then expenses guessed into them, then the month's report,
// then a category deletion and a reload from the same slot.
func TestTrackingSession(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()

	s := testutil.SetupTestStoreWithKV(t, kv,
		model.Category{ID: "cat-food", Name: "Food", Color: "#f00", LinkedDescriptions: []string{"grocery", "restaurant"}},
		model.Category{ID: "cat-transport", Name: "Transport", Color: "#00f", LinkedDescriptions: []string{"train", "bus"}},
	)

	// Guessing picks the right categories for these descriptions
	catID, ok := s.GuessCategory("Grocery Market on Main")
	require.True(t, ok)
	require.Equal(t, "cat-food", catID)

	_, err := s.AddExpense(ctx, model.ExpenseDraft{Date: "2024-03-02", Description: "Grocery Market on Main", Amount: 4200, CategoryID: catID})
	require.NoError(t, err)

	catID, ok = s.GuessCategory("Train to Hamburg")
	require.True(t, ok)
	require.Equal(t, "cat-transport", catID)

	_, err = s.AddExpense(ctx, model.ExpenseDraft{Date: "2024-03-10", Description: "Train to Hamburg", Amount: 5900, CategoryID: catID})
	require.NoError(t, err)

	// An unmatched description stays unassigned
	_, ok = s.GuessCategory("Pharmacy")
	require.False(t, ok)
	_, err = s.AddExpense(ctx, model.ExpenseDraft{Date: "2024-03-11", Description: "Pharmacy", Amount: 1500, CategoryID: ""})
	require.NoError(t, err)

	// The month's report
	require.NoError(t, s.SetTarget(ctx, 2, 2024, 10000))
	assert.Equal(t, int64(11600), s.MonthlyTotal(2, 2024))
	assert.Equal(t, int64(1600), s.TargetDelta(2, 2024))

	rows := s.CategoryBreakdown(2, 2024)
	require.Len(t, rows, 3)
	assert.Equal(t, "Food", rows[0].Name)
	assert.Equal(t, "Transport", rows[1].Name)
	assert.Equal(t, store.OtherLabel, rows[2].Name)

	// Deleting a category unassigns its expenses but keeps the money
	// in the monthly total
	require.NoError(t, s.DeleteCategory(ctx, "cat-transport"))
	assert.Equal(t, int64(11600), s.MonthlyTotal(2, 2024))

	rows = s.CategoryBreakdown(2, 2024)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(7400), rows[1].Amount, "train and pharmacy both land in Other")

	// A fresh store over the same slot sees the same state
	reloaded := testutil.SetupTestStoreWithKV(t, kv)
	assert.Equal(t, s.Snapshot(), reloaded.Snapshot())
}

func TestSetupTestStoreSeedsCategories(t *testing.T) {
	s := testutil.SetupTestStore(t,
		model.Category{ID: "cat-1", Name: "Food"},
	)

	cat, ok := s.CategoryByID("cat-1")
	require.True(t, ok)
	assert.Equal(t, "Food", cat.Name)
}

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/model"
)

func TestStateRoundTrip(t *testing.T) {
	original := state{
		Categories: []model.Category{
			{ID: "cat-1", Name: "Food", Color: "#f00", LinkedDescriptions: []string{"lunch", "dinner"}},
			{ID: "cat-2", Name: "Travel", Color: "#00f", LinkedDescriptions: []string{}},
		},
		Expenses: []model.Expense{
			{ID: "e-1", Date: "2024-03-01", Description: "Lunch", Amount: 1200, CategoryID: "cat-1"},
			{ID: "e-2", Date: "2024-03-02", Description: "Train", Amount: 900, CategoryID: ""},
		},
		Targets: []model.MonthlyTarget{
			{Month: 2, Year: 2024, Amount: 50000},
			{Month: 0, Year: 2025, Amount: 0},
		},
	}

	encoded, err := original.encode()
	require.NoError(t, err)

	decoded, err := decodeState(encoded)
	require.NoError(t, err)

	assert.Equal(t, original, decoded, "collections are element-wise equal with order preserved")
}

func TestDecodeState(t *testing.T) {
	t.Run("persisted field names match the on-disk contract", func(t *testing.T) {
		raw := `{
			"categories": [{"id":"c1","name":"Food","color":"#f00","linkedDescriptions":["lunch"]}],
			"expenses": [{"id":"e1","date":"2024-03-01","description":"Lunch","amount":1200,"categoryId":"c1"}],
			"targets": [{"month":2,"year":2024,"amount":50000}]
		}`

		s, err := decodeState(raw)
		require.NoError(t, err)
		require.Len(t, s.Categories, 1)
		assert.Equal(t, "c1", s.Categories[0].ID)
		assert.Equal(t, []string{"lunch"}, s.Categories[0].LinkedDescriptions)
		require.Len(t, s.Expenses, 1)
		assert.Equal(t, "c1", s.Expenses[0].CategoryID)
		assert.Equal(t, int64(1200), s.Expenses[0].Amount)
		require.Len(t, s.Targets, 1)
		assert.Equal(t, 2, s.Targets[0].Month)
	})

	t.Run("missing fields are tolerated", func(t *testing.T) {
		s, err := decodeState(`{"expenses":[]}`)
		require.NoError(t, err)
		assert.Nil(t, s.Categories)
		assert.Nil(t, s.Targets)
	})

	t.Run("malformed payload is an error", func(t *testing.T) {
		_, err := decodeState("{oops")
		assert.Error(t, err)
	})
}

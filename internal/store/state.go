package store

import (
	"encoding/json"
	"fmt"

	"github.com/tallyhq/tally/internal/model"
)

// DefaultKey is the storage slot the store persists its state under.
const DefaultKey = "expense-tracker"

// state is the full persisted record: the three collections, in
// insertion order. Missing fields decode to nil slices so older
// payloads remain loadable.
type state struct {
	Categories []model.Category      `json:"categories"`
	Expenses   []model.Expense       `json:"expenses"`
	Targets    []model.MonthlyTarget `json:"targets"`
}

func (s state) encode() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode state: %w", err)
	}
	return string(data), nil
}

func decodeState(raw string) (state, error) {
	var s state
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return state{}, fmt.Errorf("failed to decode state: %w", err)
	}
	return s, nil
}

// Snapshot is a deep copy of the store's collections, safe for
// consumers to hold across later mutations.
type Snapshot struct {
	Categories []model.Category
	Expenses   []model.Expense
	Targets    []model.MonthlyTarget
}

func (s state) snapshot() Snapshot {
	snap := Snapshot{
		Categories: make([]model.Category, len(s.Categories)),
		Expenses:   make([]model.Expense, len(s.Expenses)),
		Targets:    make([]model.MonthlyTarget, len(s.Targets)),
	}
	for i, c := range s.Categories {
		snap.Categories[i] = c.Clone()
	}
	copy(snap.Expenses, s.Expenses)
	copy(snap.Targets, s.Targets)
	return snap
}

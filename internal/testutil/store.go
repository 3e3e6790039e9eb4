// Package testutil provides test utilities for the tally project.
package testutil

import (
	"context"
	"testing"

	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/storage"
	"github.com/tallyhq/tally/internal/store"
)

// SetupTestStore creates a store backed by an in-memory key-value slot,
// seeded with the given categories.
//
// Example:
//
//	s := testutil.SetupTestStore(t,
//		model.Category{ID: "cat-food", Name: "Food", Color: "#f00"},
//	)
func SetupTestStore(t *testing.T, cats ...model.Category) *store.Store {
	t.Helper()

	kv := storage.NewMemoryKV()
	return setupStore(t, kv, cats)
}

// SetupTestStoreWithKV creates a store over the caller's KV so tests
// can inspect or pre-seed the persisted slot.
func SetupTestStoreWithKV(t *testing.T, kv storage.KV, cats ...model.Category) *store.Store {
	t.Helper()
	return setupStore(t, kv, cats)
}

func setupStore(t *testing.T, kv storage.KV, cats []model.Category) *store.Store {
	t.Helper()

	ctx := context.Background()
	s, err := store.New(ctx, kv, store.DefaultKey)
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}

	for _, cat := range cats {
		if err := s.AddCategory(ctx, cat); err != nil {
			t.Fatalf("failed to seed category %q: %v", cat.Name, err)
		}
	}

	t.Cleanup(func() {
		_ = kv.Close()
	})

	return s
}

// Package store implements the expense tracker's single source of
// truth: the categories, expenses, and monthly targets collections,
// the mutations that keep them consistent, and the category guesser.
// Every mutation serializes the full state and writes it through an
// injected key-value strategy before notifying subscribers.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/storage"
)

// Store owns the three collections and persists them after every
// mutation. All methods are safe for concurrent use, though the
// application drives the store from a single goroutine.
type Store struct {
	mu          sync.RWMutex
	kv          storage.KV
	key         string
	state       state
	subscribers []func(Snapshot)
}

// New creates a store bound to the given key-value slot and rehydrates
// any previously persisted state. A missing slot or an undecodable
// payload yields empty collections rather than an error.
func New(ctx context.Context, kv storage.KV, key string) (*Store, error) {
	if key == "" {
		key = DefaultKey
	}

	s := &Store{kv: kv, key: key}

	raw, ok, err := kv.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load persisted state: %w", err)
	}
	if ok {
		loaded, err := decodeState(raw)
		if err != nil {
			common.LogWarn("persisted state unreadable, starting empty", common.Fields{
				"key":   key,
				"error": err.Error(),
			})
		} else {
			s.state = loaded
		}
	}

	return s, nil
}

// Subscribe registers fn to be called with a fresh snapshot after every
// committed mutation. Subscribers cannot be removed; the set is fixed
// for the lifetime of the session.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Snapshot returns a deep copy of the current collections.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.snapshot()
}

// commit persists the current state and notifies subscribers. Callers
// must hold the write lock; the mutation is already applied.
func (s *Store) commit(ctx context.Context) error {
	encoded, err := s.state.encode()
	if err != nil {
		return err
	}
	if err := s.kv.Save(ctx, s.key, encoded); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}

	snap := s.state.snapshot()
	for _, fn := range s.subscribers {
		fn(snap)
	}
	return nil
}

// AddExpense appends a new expense built from the draft under a freshly
// generated id.
func (s *Store) AddExpense(ctx context.Context, draft model.ExpenseDraft) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.state.Expenses = append(s.state.Expenses, model.Expense{
		ID:          id,
		Date:        draft.Date,
		Description: draft.Description,
		Amount:      draft.Amount,
		CategoryID:  draft.CategoryID,
	})

	common.LogDebug("added expense", common.Fields{"id": id, "amount": draft.Amount})
	return id, s.commit(ctx)
}

// UpdateExpense merges the patch into the expense with the given id.
// Unknown ids are a silent no-op and do not rewrite storage.
func (s *Store) UpdateExpense(ctx context.Context, id string, patch model.ExpensePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.state.Expenses {
		if e.ID == id {
			s.state.Expenses[i] = patch.Apply(e)
			return s.commit(ctx)
		}
	}
	return nil
}

// DeleteExpense removes the expense with the given id. Unknown ids are
// a silent no-op.
func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.state.Expenses {
		if e.ID == id {
			s.state.Expenses = append(s.state.Expenses[:i], s.state.Expenses[i+1:]...)
			return s.commit(ctx)
		}
	}
	return nil
}

// AddCategory appends the category as given. The caller supplies the id
// and is responsible for its uniqueness; no duplicate check is made.
func (s *Store) AddCategory(ctx context.Context, cat model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Categories = append(s.state.Categories, cat.Clone())
	common.LogDebug("added category", common.Fields{"id": cat.ID, "name": cat.Name})
	return s.commit(ctx)
}

// UpdateCategory merges the patch into the category with the given id.
// Unknown ids are a silent no-op.
func (s *Store) UpdateCategory(ctx context.Context, id string, patch model.CategoryPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.state.Categories {
		if c.ID == id {
			s.state.Categories[i] = patch.Apply(c)
			return s.commit(ctx)
		}
	}
	return nil
}

// DeleteCategory removes the category and, in the same commit, resets
// the categoryId of every expense that referenced it to unassigned. A
// reader never observes the category gone with the references intact.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i, c := range s.state.Categories {
		if c.ID == id {
			s.state.Categories = append(s.state.Categories[:i], s.state.Categories[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	for i, e := range s.state.Expenses {
		if e.CategoryID == id {
			s.state.Expenses[i].CategoryID = ""
		}
	}

	common.LogDebug("deleted category", common.Fields{"id": id})
	return s.commit(ctx)
}

// SetTarget sets the spending target for (month, year), overwriting an
// existing entry in place so at most one target exists per month.
func (s *Store) SetTarget(ctx context.Context, month, year int, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.state.Targets {
		if t.Month == month && t.Year == year {
			s.state.Targets[i].Amount = amount
			return s.commit(ctx)
		}
	}

	s.state.Targets = append(s.state.Targets, model.MonthlyTarget{
		Month:  month,
		Year:   year,
		Amount: amount,
	})
	return s.commit(ctx)
}

// GuessCategory returns the id of the first category, in insertion
// order, with a linked description that is a case-insensitive substring
// of the given text. The second return is false when nothing matches or
// the text is blank.
func (s *Store) GuessCategory(description string) (string, bool) {
	d := strings.ToLower(strings.TrimSpace(description))
	if d == "" {
		return "", false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.state.Categories {
		for _, ld := range c.LinkedDescriptions {
			if strings.Contains(d, strings.ToLower(ld)) {
				return c.ID, true
			}
		}
	}
	return "", false
}

// CategoryByID returns the category with the given id from the current
// state, if present.
func (s *Store) CategoryByID(id string) (model.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.state.Categories {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return model.Category{}, false
}

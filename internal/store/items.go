package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ami-friedman/budget-compass/internal/api"
	"github.com/ami-friedman/budget-compass/internal/models"
)

const (
	msgLoadItems  = "Failed to load budget items"
	msgCreateItem = "Failed to create budget item"
	msgUpdateItem = "Failed to update budget item"
	msgDeleteItem = "Failed to delete budget item"
)

// BudgetItemStore mirrors the allocations of the selected budget.
//
// Create carries the one piece of client-side upsert logic in the system:
// the backend's create endpoint upserts on the natural key (budget_id,
// category_id, category_type), so re-submitting an allocation for a category
// that already has one must replace the in-memory row rather than duplicate
// it. The upsert key is part of this store's contract, not an implementation
// detail reached into from outside.
type BudgetItemStore struct {
	notifier

	client *api.Client

	mu      sync.Mutex
	items   []models.BudgetItem
	loading bool
	errMsg  string
}

// NewBudgetItemStore creates a store backed by the given client.
func NewBudgetItemStore(client *api.Client) *BudgetItemStore {
	return &BudgetItemStore{client: client}
}

// Items returns a snapshot of the loaded allocations.
func (s *BudgetItemStore) Items() []models.BudgetItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.BudgetItem, len(s.items))
	copy(out, s.items)
	return out
}

// Loading reports whether a call is outstanding.
func (s *BudgetItemStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the current error message, or "" when clear.
func (s *BudgetItemStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Load replaces the collection with the given budget's allocations.
func (s *BudgetItemStore) Load(ctx context.Context, budgetID int64) error {
	s.begin()

	items, err := s.client.BudgetItems(ctx, budgetID)
	if err != nil {
		slog.Error("Loading budget items failed", "budget_id", budgetID, "error", err)
		s.fail(msgLoadItems)
		return errors.New(msgLoadItems)
	}

	s.mu.Lock()
	s.items = items
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return nil
}

// Create allocates an amount to a category. On success the collection is
// reconciled by natural key: an existing row for the same (budget, category,
// type) is replaced in place, otherwise the new row is appended.
func (s *BudgetItemStore) Create(ctx context.Context, in models.BudgetItemCreate) (*models.BudgetItem, error) {
	s.begin()

	item, err := s.client.CreateBudgetItem(ctx, in)
	if err != nil {
		slog.Error("Creating budget item failed",
			"budget_id", in.BudgetID,
			"category_id", in.CategoryID,
			"error", err,
		)
		s.fail(msgCreateItem)
		return nil, errors.New(msgCreateItem)
	}

	s.mu.Lock()
	replaced := false
	key := item.Key()
	for i := range s.items {
		if s.items[i].Key() == key {
			s.items[i] = *item
			replaced = true
			break
		}
	}
	if !replaced {
		s.items = append(s.items, *item)
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return item, nil
}

// Update changes an allocation's amount and replaces the matching row by ID.
func (s *BudgetItemStore) Update(ctx context.Context, id int64, in models.BudgetItemUpdate) (*models.BudgetItem, error) {
	s.begin()

	item, err := s.client.UpdateBudgetItem(ctx, id, in)
	if err != nil {
		slog.Error("Updating budget item failed", "item_id", id, "error", err)
		s.fail(msgUpdateItem)
		return nil, errors.New(msgUpdateItem)
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = *item
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return item, nil
}

// Remove deletes an allocation and filters it out of the collection.
// Removing an ID that is not present leaves the collection unchanged.
func (s *BudgetItemStore) Remove(ctx context.Context, id int64) error {
	s.begin()

	if err := s.client.DeleteBudgetItem(ctx, id); err != nil {
		slog.Error("Deleting budget item failed", "item_id", id, "error", err)
		s.fail(msgDeleteItem)
		return errors.New(msgDeleteItem)
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *BudgetItemStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
	s.notify()
}

func (s *BudgetItemStore) fail(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

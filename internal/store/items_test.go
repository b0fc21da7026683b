package store

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ami-friedman/budget-compass/internal/models"
)

// itemServer fakes the budget-items endpoints with the backend's upsert
// semantics: POSTing an existing (budget, category, type) key returns the
// existing row with the new amount.
func itemServer(t *testing.T, seed []models.BudgetItem) *http.ServeMux {
	t.Helper()
	items := append([]models.BudgetItem(nil), seed...)
	nextID := int64(100)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/budget-items", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, items)
		case http.MethodPost:
			var in models.BudgetItemCreate
			json.NewDecoder(r.Body).Decode(&in)
			for i := range items {
				if items[i].BudgetID == in.BudgetID &&
					items[i].CategoryID == in.CategoryID &&
					items[i].CategoryType == in.CategoryType {
					items[i].Amount = in.Amount
					writeJSON(t, w, items[i])
					return
				}
			}
			item := models.BudgetItem{
				ID:           nextID,
				BudgetID:     in.BudgetID,
				CategoryID:   in.CategoryID,
				CategoryType: in.CategoryType,
				Amount:       in.Amount,
				Active:       true,
			}
			nextID++
			items = append(items, item)
			writeJSON(t, w, item)
		}
	})
	mux.HandleFunc("/api/budget-items/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func TestBudgetItemStoreUpsert(t *testing.T) {
	seed := []models.BudgetItem{
		{ID: 1, BudgetID: 5, CategoryID: 2, CategoryType: models.CategoryMonthly, Amount: 1200, Active: true},
	}
	store := NewBudgetItemStore(newTestClient(t, itemServer(t, seed)))

	if err := store.Load(context.Background(), 5); err != nil {
		t.Fatalf("load: %v", err)
	}

	// Re-allocating the same category replaces the row in place.
	if _, err := store.Create(context.Background(), models.BudgetItemCreate{
		BudgetID:     5,
		CategoryID:   2,
		CategoryType: models.CategoryMonthly,
		Amount:       1300,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	got := store.Items()
	if len(got) != 1 {
		t.Fatalf("expected re-allocation to replace, got %d items", len(got))
	}
	if got[0].Amount != 1300 {
		t.Errorf("expected amount 1300, got %.2f", got[0].Amount)
	}
	if got[0].ID != 1 {
		t.Errorf("expected existing row ID 1 kept, got %d", got[0].ID)
	}

	// A different category appends.
	if _, err := store.Create(context.Background(), models.BudgetItemCreate{
		BudgetID:     5,
		CategoryID:   3,
		CategoryType: models.CategoryCash,
		Amount:       400,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := store.Items(); len(got) != 2 {
		t.Errorf("expected new allocation appended, got %d items", len(got))
	}
}

func TestBudgetItemStoreUpdate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/budget-items", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.BudgetItem{
			{ID: 1, BudgetID: 5, CategoryID: 2, CategoryType: models.CategoryMonthly, Amount: 1200, Active: true},
		})
	})
	mux.HandleFunc("/api/budget-items/1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var in models.BudgetItemUpdate
		json.NewDecoder(r.Body).Decode(&in)
		writeJSON(t, w, models.BudgetItem{
			ID: 1, BudgetID: 5, CategoryID: 2, CategoryType: models.CategoryMonthly,
			Amount: in.Amount, Active: true,
		})
	})

	store := NewBudgetItemStore(newTestClient(t, mux))
	if err := store.Load(context.Background(), 5); err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, err := store.Update(context.Background(), 1, models.BudgetItemUpdate{Amount: 999}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := store.Items(); got[0].Amount != 999 {
		t.Errorf("expected updated amount 999, got %.2f", got[0].Amount)
	}
}

func TestBudgetItemStoreRemove(t *testing.T) {
	seed := []models.BudgetItem{
		{ID: 1, BudgetID: 5, CategoryID: 2, CategoryType: models.CategoryMonthly, Amount: 1200, Active: true},
	}
	store := NewBudgetItemStore(newTestClient(t, itemServer(t, seed)))
	if err := store.Load(context.Background(), 5); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := store.Remove(context.Background(), 1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := store.Items(); len(got) != 0 {
		t.Errorf("expected empty collection, got %v", got)
	}

	// Removing an absent ID leaves the collection unchanged.
	if err := store.Remove(context.Background(), 42); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if got := store.Items(); len(got) != 0 {
		t.Errorf("expected collection unchanged, got %v", got)
	}
}

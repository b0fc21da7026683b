package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/ami-friedman/budget-compass/internal/api"
	"github.com/ami-friedman/budget-compass/internal/models"
)

func TestTransactionStoreSavingsGuard(t *testing.T) {
	var creates atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, []models.Transaction{
				{ID: 1, AccountType: models.AccountSavings, CategoryID: 7, Amount: 80, Active: true},
			})
		case http.MethodPost:
			creates.Add(1)
			var in models.TransactionCreate
			json.NewDecoder(r.Body).Decode(&in)
			writeJSON(t, w, models.Transaction{
				ID: 2, AccountType: in.AccountType, CategoryID: in.CategoryID,
				Amount: in.Amount, Active: true,
			})
		}
	})

	funded := func(categoryID int64) float64 {
		if categoryID == 7 {
			return 300
		}
		return 0
	}
	store := NewTransactionStore(newTestClient(t, mux), funded)
	if err := store.Load(context.Background(), api.TransactionFilter{}); err != nil {
		t.Fatalf("load: %v", err)
	}

	// 300 funded - 80 spent = 220 available.
	if got := store.Available(7); got != 220 {
		t.Fatalf("expected 220 available, got %.2f", got)
	}

	// Over-spend is rejected before any backend call; the collection and
	// the error flag are untouched.
	_, err := store.Create(context.Background(), models.TransactionCreate{
		Amount:      250,
		AccountType: models.AccountSavings,
		CategoryID:  7,
	})
	if !errors.Is(err, ErrInsufficientSavings) {
		t.Fatalf("expected ErrInsufficientSavings, got %v", err)
	}
	if creates.Load() != 0 {
		t.Errorf("expected no backend call, got %d", creates.Load())
	}
	if store.Err() != "" {
		t.Errorf("expected clear error flag, got %q", store.Err())
	}
	if got := store.Transactions(); len(got) != 1 {
		t.Errorf("expected collection unchanged, got %d transactions", len(got))
	}

	// Spending within the balance goes through.
	if _, err := store.Create(context.Background(), models.TransactionCreate{
		Amount:      220,
		AccountType: models.AccountSavings,
		CategoryID:  7,
	}); err != nil {
		t.Fatalf("create within balance: %v", err)
	}
	if creates.Load() != 1 {
		t.Errorf("expected 1 backend call, got %d", creates.Load())
	}
	if got := store.Transactions(); len(got) != 2 {
		t.Errorf("expected transaction appended, got %d", len(got))
	}
	if got := store.Available(7); got != 0 {
		t.Errorf("expected balance drawn to 0, got %.2f", got)
	}
}

func TestTransactionStoreCheckingUnguarded(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
		var in models.TransactionCreate
		json.NewDecoder(r.Body).Decode(&in)
		writeJSON(t, w, models.Transaction{
			ID: 1, AccountType: in.AccountType, BudgetItemID: in.BudgetItemID,
			Amount: in.Amount, Active: true,
		})
	})

	// Checking transactions may exceed the allocation; the budget view
	// shows the overrun instead of blocking the entry.
	store := NewTransactionStore(newTestClient(t, mux), func(int64) float64 { return 0 })
	if _, err := store.Create(context.Background(), models.TransactionCreate{
		Amount:       10000,
		AccountType:  models.AccountChecking,
		BudgetItemID: 3,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := store.Transactions(); len(got) != 1 {
		t.Errorf("expected transaction appended, got %d", len(got))
	}
}

func TestTransactionStoreUpdateKeepsDate(t *testing.T) {
	var body map[string]json.RawMessage
	mux := http.NewServeMux()
	mux.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Transaction{
			{ID: 1, AccountType: models.AccountChecking, BudgetItemID: 3, Amount: 25, Active: true},
		})
	})
	mux.HandleFunc("/api/transactions/1", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		writeJSON(t, w, models.Transaction{
			ID: 1, AccountType: models.AccountChecking, BudgetItemID: 3, Amount: 55, Active: true,
		})
	})

	store := NewTransactionStore(newTestClient(t, mux), nil)
	if err := store.Load(context.Background(), api.TransactionFilter{}); err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, err := store.Update(context.Background(), 1, models.TransactionUpdate{
		Amount:      55,
		Description: "coffee",
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	// An edit that doesn't touch the date must not send one; a zero
	// timestamp in the payload would reset the stored transaction date.
	if _, ok := body["transaction_date"]; ok {
		t.Errorf("expected transaction_date omitted, got %s", body["transaction_date"])
	}
	if _, ok := body["amount"]; !ok {
		t.Error("expected amount present in update payload")
	}
	if got := store.Transactions(); got[0].Amount != 55 {
		t.Errorf("expected updated amount 55, got %.2f", got[0].Amount)
	}
}

func TestTransactionStoreRemove(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Transaction{
			{ID: 1, AccountType: models.AccountChecking, BudgetItemID: 3, Amount: 25, Active: true},
			{ID: 2, AccountType: models.AccountChecking, BudgetItemID: 3, Amount: 40, Active: true},
		})
	})
	mux.HandleFunc("/api/transactions/1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	store := NewTransactionStore(newTestClient(t, mux), nil)
	if err := store.Load(context.Background(), api.TransactionFilter{}); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := store.Remove(context.Background(), 1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	got := store.Transactions()
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("expected only transaction 2 left, got %v", got)
	}
}

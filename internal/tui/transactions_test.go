package tui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ami-friedman/budget-compass/internal/api"
	"github.com/ami-friedman/budget-compass/internal/models"
	"github.com/ami-friedman/budget-compass/internal/store"
)

func newTargetModel(t *testing.T, categories []models.Category, items []models.BudgetItem) Model {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(categories)
	})
	mux.HandleFunc("/api/budget-items", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(items)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := api.New(server.URL)
	categoryStore := store.NewCategoryStore(client)
	itemStore := store.NewBudgetItemStore(client)
	if err := categoryStore.Load(context.Background()); err != nil {
		t.Fatalf("load categories: %v", err)
	}
	if err := itemStore.Load(context.Background(), 1); err != nil {
		t.Fatalf("load items: %v", err)
	}

	return Model{
		stores: Stores{
			Categories: categoryStore,
			Items:      itemStore,
			Views:      &store.Views{Categories: categoryStore, Items: itemStore},
		},
		keys:         DefaultKeyMap,
		transactions: newTransactionsState(),
	}
}

func TestTransactionTargetsExcludeIncome(t *testing.T) {
	categories := []models.Category{
		{ID: 1, Name: "Salary", Type: models.CategoryIncome, Active: true},
		{ID: 2, Name: "Rent", Type: models.CategoryMonthly, Active: true},
		{ID: 3, Name: "Vacation", Type: models.CategorySavings, Active: true},
	}
	// None of the items carry the denormalized type: classification must
	// go through the category join, like the budget rollup.
	items := []models.BudgetItem{
		{ID: 10, BudgetID: 1, CategoryID: 1, Amount: 5000, Active: true},
		{ID: 11, BudgetID: 1, CategoryID: 2, Amount: 1200, Active: true},
		{ID: 12, BudgetID: 1, CategoryID: 3, Amount: 300, Active: true},
	}

	m := newTargetModel(t, categories, items)

	targets := m.transactionTargets()
	if len(targets) != 2 {
		t.Fatalf("expected 2 spend targets, got %d: %v", len(targets), targets)
	}
	for _, target := range targets {
		if target.budgetItemID == 10 {
			t.Error("income allocation offered as a spend target")
		}
		if target.label == "Salary" {
			t.Errorf("unexpected target label %q", target.label)
		}
	}
}

func TestTransactionTargetsSavingsTab(t *testing.T) {
	categories := []models.Category{
		{ID: 1, Name: "Salary", Type: models.CategoryIncome, Active: true},
		{ID: 3, Name: "Vacation", Type: models.CategorySavings, Active: true},
		{ID: 4, Name: "Old fund", Type: models.CategorySavings, Active: false},
	}

	m := newTargetModel(t, categories, nil)
	m.transactions.tab = 1 // savings

	targets := m.transactionTargets()
	if len(targets) != 1 {
		t.Fatalf("expected 1 savings target, got %d: %v", len(targets), targets)
	}
	if targets[0].categoryID != 3 || targets[0].label != "Vacation" {
		t.Errorf("expected the active savings category, got %+v", targets[0])
	}
}

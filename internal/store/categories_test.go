package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ami-friedman/budget-compass/internal/api"
	"github.com/ami-friedman/budget-compass/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return api.New(server.URL)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encoding response: %v", err)
	}
}

func TestCategoryStoreLoad(t *testing.T) {
	fail := false
	mux := http.NewServeMux()
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(t, w, []models.Category{
			{ID: 1, Name: "Salary", Type: models.CategoryIncome, Active: true},
			{ID: 2, Name: "Rent", Type: models.CategoryMonthly, Active: true},
		})
	})

	store := NewCategoryStore(newTestClient(t, mux))

	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := store.Categories(); len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}
	if store.Err() != "" {
		t.Errorf("expected clear error flag, got %q", store.Err())
	}

	// A failed reload keeps the previous collection and raises the flag.
	fail = true
	if err := store.Load(context.Background()); err == nil {
		t.Fatal("expected error from failed load")
	}
	if got := store.Categories(); len(got) != 2 {
		t.Errorf("expected stale collection to survive, got %d categories", len(got))
	}
	if store.Err() != "Failed to load categories" {
		t.Errorf("unexpected error message %q", store.Err())
	}

	// The next success clears the flag.
	fail = false
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if store.Err() != "" {
		t.Errorf("expected error flag cleared after success, got %q", store.Err())
	}
}

func TestCategoryStoreCreate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var in models.CategoryCreate
		json.NewDecoder(r.Body).Decode(&in)
		writeJSON(t, w, models.Category{ID: 10, Name: in.Name, Type: in.Type, Active: true})
	})

	store := NewCategoryStore(newTestClient(t, mux))

	created, err := store.Create(context.Background(), models.CategoryCreate{
		Name: "Groceries",
		Type: models.CategoryCash,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 10 {
		t.Errorf("expected server-assigned ID 10, got %d", created.ID)
	}
	if got := store.Categories(); len(got) != 1 || got[0].Name != "Groceries" {
		t.Errorf("expected created category in collection, got %v", got)
	}
}

func TestCategoryStoreArchive(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Category{
			{ID: 1, Name: "Salary", Type: models.CategoryIncome, Active: true},
			{ID: 2, Name: "Rent", Type: models.CategoryMonthly, Active: true},
		})
	})
	mux.HandleFunc("/api/categories/2", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	store := NewCategoryStore(newTestClient(t, mux))
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := store.Archive(context.Background(), 2); err != nil {
		t.Fatalf("archive: %v", err)
	}
	got := store.Categories()
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("expected only category 1 left, got %v", got)
	}
}

func TestCategoryStoreNotifies(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Category{})
	})

	store := NewCategoryStore(newTestClient(t, mux))
	calls := 0
	store.Subscribe(func() { calls++ })

	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	// Once for begin (loading flips on), once for the commit.
	if calls < 2 {
		t.Errorf("expected at least 2 notifications, got %d", calls)
	}
}

package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ami-friedman/budget-compass/internal/api"
	"github.com/ami-friedman/budget-compass/internal/models"
)

// Fixed user-facing messages, one per operation.
const (
	msgLoadCategories  = "Failed to load categories"
	msgCreateCategory  = "Failed to create category"
	msgUpdateCategory  = "Failed to update category"
	msgArchiveCategory = "Failed to archive category"
)

// CategoryStore mirrors the category collection.
//
// Categories are never hard-deleted: Archive flips is_active server-side and
// the store drops the entry from the visible collection. Historical items
// and transactions referencing an archived category render through the
// derive package's "Unknown Category" fallback.
type CategoryStore struct {
	notifier

	client *api.Client

	mu         sync.Mutex
	categories []models.Category
	loading    bool
	errMsg     string
}

// NewCategoryStore creates a store backed by the given client.
func NewCategoryStore(client *api.Client) *CategoryStore {
	return &CategoryStore{client: client}
}

// Categories returns a snapshot of the current collection.
func (s *CategoryStore) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Loading reports whether a call is outstanding.
func (s *CategoryStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the current error message, or "" when the last call
// succeeded.
func (s *CategoryStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Load replaces the collection with the server's. On failure the previous
// collection is kept and the error flag set; the next successful Load
// clears it.
func (s *CategoryStore) Load(ctx context.Context) error {
	s.begin()

	categories, err := s.client.Categories(ctx)
	if err != nil {
		slog.Error("Loading categories failed", "error", err)
		s.fail(msgLoadCategories)
		return errors.New(msgLoadCategories)
	}

	s.mu.Lock()
	s.categories = categories
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return nil
}

// Create posts a new category and appends it on success. Categories have no
// client-side upsert: names may repeat across types and the backend assigns
// a fresh ID every time.
func (s *CategoryStore) Create(ctx context.Context, in models.CategoryCreate) (*models.Category, error) {
	s.begin()

	category, err := s.client.CreateCategory(ctx, in)
	if err != nil {
		slog.Error("Creating category failed", "name", in.Name, "error", err)
		s.fail(msgCreateCategory)
		return nil, errors.New(msgCreateCategory)
	}

	s.mu.Lock()
	s.categories = append(s.categories, *category)
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return category, nil
}

// Update renames a category and replaces the matching entry by ID.
func (s *CategoryStore) Update(ctx context.Context, id int64, in models.CategoryUpdate) (*models.Category, error) {
	s.begin()

	category, err := s.client.UpdateCategory(ctx, id, in)
	if err != nil {
		slog.Error("Updating category failed", "category_id", id, "error", err)
		s.fail(msgUpdateCategory)
		return nil, errors.New(msgUpdateCategory)
	}

	s.mu.Lock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i] = *category
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return category, nil
}

// Archive soft-deletes a category and filters it out of the collection.
// Archiving an ID that is not present is a no-op on the collection.
func (s *CategoryStore) Archive(ctx context.Context, id int64) error {
	s.begin()

	if err := s.client.ArchiveCategory(ctx, id); err != nil {
		slog.Error("Archiving category failed", "category_id", id, "error", err)
		s.fail(msgArchiveCategory)
		return errors.New(msgArchiveCategory)
	}

	s.mu.Lock()
	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *CategoryStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
	s.notify()
}

func (s *CategoryStore) fail(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

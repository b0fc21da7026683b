package api

import (
	"context"
	"fmt"

	"github.com/ami-friedman/budget-compass/internal/models"
)

// Categories lists all categories, archived ones included.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "/api/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, in models.CategoryCreate) (*models.Category, error) {
	var category models.Category
	if err := c.post(ctx, "/api/categories", in, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a category. The category type cannot change.
func (c *Client) UpdateCategory(ctx context.Context, id int64, in models.CategoryUpdate) (*models.Category, error) {
	var category models.Category
	if err := c.patch(ctx, fmt.Sprintf("/api/categories/%d", id), in, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// ArchiveCategory soft-deletes a category. Historical budget items and
// transactions keep referencing it; the backend only flips is_active.
func (c *Client) ArchiveCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/categories/%d", id))
}

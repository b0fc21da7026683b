package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ami-friedman/budget-compass/internal/models"
)

// BudgetItems lists the allocations for one budget.
func (c *Client) BudgetItems(ctx context.Context, budgetID int64) ([]models.BudgetItem, error) {
	query := url.Values{"budget_id": {strconv.FormatInt(budgetID, 10)}}
	var items []models.BudgetItem
	if err := c.get(ctx, "/api/budget-items", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateBudgetItem allocates an amount to a category for a budget. The
// backend upserts on (budget_id, category_id, category_type): re-submitting
// an allocation for a category that already has one returns the existing row
// with the new amount, not a duplicate.
func (c *Client) CreateBudgetItem(ctx context.Context, in models.BudgetItemCreate) (*models.BudgetItem, error) {
	var item models.BudgetItem
	if err := c.post(ctx, "/api/budget-items", in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateBudgetItem changes an existing allocation's amount.
func (c *Client) UpdateBudgetItem(ctx context.Context, id int64, in models.BudgetItemUpdate) (*models.BudgetItem, error) {
	var item models.BudgetItem
	if err := c.put(ctx, fmt.Sprintf("/api/budget-items/%d", id), in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteBudgetItem removes an allocation.
func (c *Client) DeleteBudgetItem(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/budget-items/%d", id))
}

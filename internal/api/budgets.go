package api

import (
	"context"
	"fmt"

	"github.com/ami-friedman/budget-compass/internal/models"
)

// Budgets lists all budgets.
func (c *Client) Budgets(ctx context.Context) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := c.get(ctx, "/api/budgets", nil, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

// CurrentBudget fetches the budget for the current month, if one exists.
// Backends report "no current budget" as 404.
func (c *Client) CurrentBudget(ctx context.Context) (*models.Budget, error) {
	var budget models.Budget
	if err := c.get(ctx, "/api/budgets/current", nil, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

// CreateBudget creates a budget for a month/year.
func (c *Client) CreateBudget(ctx context.Context, in models.BudgetCreate) (*models.Budget, error) {
	var budget models.Budget
	if err := c.post(ctx, "/api/budgets", in, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

// MonthsEndSummary fetches the server-computed budgeted-vs-actual variance
// report for a budget. The client never derives this itself.
func (c *Client) MonthsEndSummary(ctx context.Context, budgetID int64) (*models.MonthsEndSummary, error) {
	var summary models.MonthsEndSummary
	path := fmt.Sprintf("/api/budgets/%d/months-end-summary", budgetID)
	if err := c.get(ctx, path, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

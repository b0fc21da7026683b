package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ami-friedman/budget-compass/internal/models"
)

// TransactionFilter narrows a transaction listing. Zero values are omitted
// from the query; an empty filter lists everything.
type TransactionFilter struct {
	BudgetID    int64
	AccountType models.AccountType
}

func (f TransactionFilter) query() url.Values {
	q := url.Values{}
	if f.BudgetID != 0 {
		q.Set("budget_id", strconv.FormatInt(f.BudgetID, 10))
	}
	if f.AccountType != "" {
		q.Set("account_type", string(f.AccountType))
	}
	return q
}

// Transactions lists transactions matching the filter.
func (c *Client) Transactions(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := c.get(ctx, "/api/transactions", filter.query(), &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// CreateTransaction records a transaction.
func (c *Client) CreateTransaction(ctx context.Context, in models.TransactionCreate) (*models.Transaction, error) {
	var txn models.Transaction
	if err := c.post(ctx, "/api/transactions", in, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// UpdateTransaction edits a transaction.
func (c *Client) UpdateTransaction(ctx context.Context, id int64, in models.TransactionUpdate) (*models.Transaction, error) {
	var txn models.Transaction
	if err := c.put(ctx, fmt.Sprintf("/api/transactions/%d", id), in, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// DeleteTransaction removes a transaction.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/transactions/%d", id))
}

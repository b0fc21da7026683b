package store

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ami-friedman/budget-compass/internal/api"
)

// Bootstrap performs the initial data load after authentication: categories
// and budgets in parallel, then — once the current budget is known — that
// budget's items and transactions in parallel.
//
// Individual failures are already converted into the stores' error flags;
// Bootstrap returns the first of them so the caller can log it, but the UI
// keeps whatever did load (stale-but-available applies from the very first
// fetch, where "stale" is just empty).
func Bootstrap(ctx context.Context, budgets *BudgetStore, categories *CategoryStore, items *BudgetItemStore, txns *TransactionStore) error {
	// Plain Group rather than WithContext: one resource failing to load
	// must not cancel the sibling fetches.
	var g errgroup.Group
	g.Go(func() error { return categories.Load(ctx) })
	g.Go(func() error { return budgets.Load(ctx) })
	g.Go(func() error { return budgets.LoadCurrent(ctx) })
	firstErr := g.Wait()

	current := budgets.Current()
	if current == nil {
		return firstErr
	}

	g = errgroup.Group{}
	g.Go(func() error { return items.Load(ctx, current.ID) })
	g.Go(func() error {
		return txns.Load(ctx, api.TransactionFilter{BudgetID: current.ID})
	})
	if err := g.Wait(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

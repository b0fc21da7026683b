package store

import (
	"github.com/ami-friedman/budget-compass/internal/derive"
	"github.com/ami-friedman/budget-compass/internal/models"
)

// Views binds the derive package's pure functions to live stores so view
// components never aggregate raw collections themselves. Every method
// recomputes from the stores' current snapshots; there is no caching, so a
// read after a committed mutation always reflects it.
type Views struct {
	Budgets      *BudgetStore
	Categories   *CategoryStore
	Items        *BudgetItemStore
	Transactions *TransactionStore
}

// BudgetSummary rolls the loaded budget items up by category type.
func (v *Views) BudgetSummary() models.BudgetSummary {
	return derive.Summary(v.Items.Items(), v.Categories.Categories())
}

// ItemsByType partitions the loaded items by category type.
func (v *Views) ItemsByType(t models.CategoryType) []models.BudgetItem {
	return derive.ItemsByType(v.Items.Items(), v.Categories.Categories(), t)
}

// CategoriesByType lists the active categories of one type.
func (v *Views) CategoriesByType(t models.CategoryType) []models.Category {
	return derive.CategoriesByType(v.Categories.Categories(), t)
}

// TransactionsByAccount partitions the loaded transactions.
func (v *Views) TransactionsByAccount(a models.AccountType) []models.Transaction {
	return derive.ByAccount(v.Transactions.Transactions(), a)
}

// AccountTotal sums one account's transactions.
func (v *Views) AccountTotal(a models.AccountType) float64 {
	return derive.AccountTotal(v.Transactions.Transactions(), a)
}

// SavingsBalance computes one savings category's funded/spent/available.
func (v *Views) SavingsBalance(categoryID int64) models.SavingsBalance {
	return derive.SavingsBalance(categoryID, v.Items.Items(), v.Transactions.Transactions())
}

// SavingsBalances computes balances for every active savings category.
func (v *Views) SavingsBalances() []models.SavingsBalance {
	return derive.SavingsBalances(v.Categories.Categories(), v.Items.Items(), v.Transactions.Transactions())
}

// CategoryLabel resolves a category ID for display, with the
// "Unknown Category" fallback for archived or dangling references.
func (v *Views) CategoryLabel(id int64) string {
	return derive.CategoryLabel(v.Categories.Categories(), id)
}

// Funded reports the cumulative savings allocation for a category, reading
// the item store only. This is the FundedFunc the transaction store's
// savings guard is wired with in cmd.
func Funded(items *BudgetItemStore) FundedFunc {
	return func(categoryID int64) float64 {
		return derive.SavingsBalance(categoryID, items.Items(), nil).Funded
	}
}

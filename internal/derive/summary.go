// Package derive computes the read-only views the UI renders: budget
// rollups, account partitions, and savings balances.
//
// Every function is pure and synchronous over the collections passed in.
// Nothing here caches: the stores hold the state, the view layer calls back
// in whenever a store notifies, and a fresh result is computed from current
// contents. Missing data (empty collections, unmatched foreign keys) always
// degrades to zero values or placeholder labels, never to an error.
package derive

import (
	"github.com/ami-friedman/budget-compass/internal/models"
)

// UnknownCategory is the display fallback for items and transactions whose
// category has been archived or is otherwise absent from the loaded list.
const UnknownCategory = "Unknown Category"

// Summary rolls budget items up by category type.
//
// Each item's own denormalized CategoryType wins; items from older endpoints
// that omit it are resolved by joining through categories. Items whose type
// cannot be resolved either way are skipped rather than miscounted.
func Summary(items []models.BudgetItem, categories []models.Category) models.BudgetSummary {
	typeByID := make(map[int64]models.CategoryType, len(categories))
	for _, c := range categories {
		typeByID[c.ID] = c.Type
	}

	var s models.BudgetSummary
	for _, item := range items {
		ctype := item.CategoryType
		if ctype == "" {
			ctype = typeByID[item.CategoryID]
		}
		switch ctype {
		case models.CategoryIncome:
			s.TotalIncome += item.Amount
		case models.CategorySavings:
			s.SavingsAmount += item.Amount
		case models.CategoryCash:
			s.CashAmount += item.Amount
		case models.CategoryMonthly:
			s.MonthlyAmount += item.Amount
		}
	}

	s.TotalExpenses = s.SavingsAmount + s.CashAmount + s.MonthlyAmount
	s.Balance = s.TotalIncome - s.TotalExpenses
	return s
}

// CategoryLabel resolves a category ID to its display name, falling back to
// UnknownCategory for archived-and-unloaded or dangling references.
func CategoryLabel(categories []models.Category, id int64) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return UnknownCategory
}

package derive

import "github.com/ami-friedman/budget-compass/internal/models"

// ItemsByType returns the budget items whose resolved category type matches
// t. Items without a denormalized type are resolved through categories.
func ItemsByType(items []models.BudgetItem, categories []models.Category, t models.CategoryType) []models.BudgetItem {
	typeByID := make(map[int64]models.CategoryType, len(categories))
	for _, c := range categories {
		typeByID[c.ID] = c.Type
	}

	var out []models.BudgetItem
	for _, item := range items {
		ctype := item.CategoryType
		if ctype == "" {
			ctype = typeByID[item.CategoryID]
		}
		if ctype == t {
			out = append(out, item)
		}
	}
	return out
}

// CategoriesByType returns the active categories of the given type.
func CategoriesByType(categories []models.Category, t models.CategoryType) []models.Category {
	var out []models.Category
	for _, c := range categories {
		if c.Active && c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// ActiveCategories filters out archived categories.
func ActiveCategories(categories []models.Category) []models.Category {
	var out []models.Category
	for _, c := range categories {
		if c.Active {
			out = append(out, c)
		}
	}
	return out
}

// ByAccount partitions transactions by account type.
func ByAccount(txns []models.Transaction, account models.AccountType) []models.Transaction {
	var out []models.Transaction
	for _, t := range txns {
		if t.AccountType == account {
			out = append(out, t)
		}
	}
	return out
}

// AccountTotal sums the amounts of one account's transactions.
func AccountTotal(txns []models.Transaction, account models.AccountType) float64 {
	var total float64
	for _, t := range txns {
		if t.AccountType == account {
			total += t.Amount
		}
	}
	return total
}

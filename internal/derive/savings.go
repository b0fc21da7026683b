package derive

import "github.com/ami-friedman/budget-compass/internal/models"

// SavingsBalance computes the running balance of one savings category:
// funded (all savings budget items referencing it, across every loaded
// budget) minus spent (all savings transactions referencing it).
//
// A category with no items and no transactions yields a zero balance, not
// an error — a freshly created savings category simply has nothing funded
// yet.
func SavingsBalance(categoryID int64, items []models.BudgetItem, txns []models.Transaction) models.SavingsBalance {
	b := models.SavingsBalance{CategoryID: categoryID}

	for _, item := range items {
		// An empty CategoryType means the item came from an endpoint
		// that omits the denormalized field; the category reference
		// itself is already savings-typed, so count it.
		if item.CategoryID == categoryID &&
			(item.CategoryType == models.CategorySavings || item.CategoryType == "") {
			b.Funded += item.Amount
		}
	}
	for _, t := range txns {
		if t.AccountType == models.AccountSavings && t.CategoryID == categoryID {
			b.Spent += t.Amount
		}
	}

	b.Available = b.Funded - b.Spent
	return b
}

// SavingsBalances computes balances for every active savings category.
func SavingsBalances(categories []models.Category, items []models.BudgetItem, txns []models.Transaction) []models.SavingsBalance {
	var out []models.SavingsBalance
	for _, c := range CategoriesByType(categories, models.CategorySavings) {
		out = append(out, SavingsBalance(c.ID, items, txns))
	}
	return out
}

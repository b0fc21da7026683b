package models

// CategoryType classifies how a category behaves in budgeting and
// aggregation.
type CategoryType string

const (
	// CategoryIncome marks money coming in (salary, refunds).
	CategoryIncome CategoryType = "income"

	// CategoryCash marks discretionary cash spending.
	CategoryCash CategoryType = "cash"

	// CategoryMonthly marks recurring monthly expenses (rent, utilities).
	CategoryMonthly CategoryType = "monthly"

	// CategorySavings marks allocations into savings categories. Savings
	// categories accumulate a balance across budgets: funded by budget
	// items, drawn down by savings transactions.
	CategorySavings CategoryType = "savings"
)

// CategoryTypes lists all valid category types in display order.
var CategoryTypes = []CategoryType{
	CategoryIncome,
	CategoryCash,
	CategoryMonthly,
	CategorySavings,
}

// Valid reports whether t is one of the known category types.
func (t CategoryType) Valid() bool {
	switch t {
	case CategoryIncome, CategoryCash, CategoryMonthly, CategorySavings:
		return true
	}
	return false
}

// Expense reports whether allocations of this type count against income in
// the budget balance. Everything except income is an expense.
func (t CategoryType) Expense() bool {
	return t.Valid() && t != CategoryIncome
}

// Category represents a spending category.
//
// The type is immutable once created: archiving (Active=false) is the only
// way to retire a category, so historical budget items and transactions keep
// a valid reference. The backend never hard-deletes categories.
type Category struct {
	// ID is the backend's surrogate identifier.
	ID int64 `json:"id"`

	// Name is the display name (e.g. "Groceries", "Salary").
	Name string `json:"name"`

	// Type classifies the category; see CategoryType.
	Type CategoryType `json:"type"`

	// Description is an optional free-form note.
	Description string `json:"description,omitempty"`

	// Active is false once the category has been archived.
	Active bool `json:"is_active"`
}

// CategoryCreate is the payload for creating a category.
type CategoryCreate struct {
	Name        string       `json:"name"`
	Type        CategoryType `json:"type"`
	Description string       `json:"description,omitempty"`
}

// CategoryUpdate is the PATCH payload for renaming a category. The type is
// deliberately absent: it cannot change after creation.
type CategoryUpdate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

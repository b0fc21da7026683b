package models

// BudgetSummary is the client-derived rollup of a budget's items by
// category type. It is never stored or fetched; the derive package
// recomputes it from the loaded budget items on every read.
type BudgetSummary struct {
	TotalIncome   float64
	TotalExpenses float64 // savings + cash + monthly
	Balance       float64 // income - expenses
	SavingsAmount float64
	CashAmount    float64
	MonthlyAmount float64
}

// SavingsBalance is the client-derived running balance of one savings
// category.
type SavingsBalance struct {
	CategoryID int64

	// Funded is the cumulative amount allocated to the category via
	// budget items.
	Funded float64

	// Spent is the cumulative amount of savings transactions against the
	// category.
	Spent float64

	// Available is Funded - Spent. Savings transactions exceeding this
	// are rejected client-side before any backend call.
	Available float64
}

// MonthsEndLine is one category's budgeted-vs-actual row in the months-end
// summary.
type MonthsEndLine struct {
	Budgeted  float64 `json:"budgeted"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
}

// MonthsEndAccount groups months-end lines for one account type.
type MonthsEndAccount struct {
	TotalSpent float64                  `json:"total_spent"`
	Categories map[string]MonthsEndLine `json:"categories"`
}

// MonthsEndSummary is the server-computed variance report for a budget.
// Unlike BudgetSummary it is fetched, not derived: the server owns the
// budgeted-vs-actual reconciliation.
type MonthsEndSummary struct {
	Checking MonthsEndAccount `json:"checking"`
	Savings  MonthsEndAccount `json:"savings"`
}

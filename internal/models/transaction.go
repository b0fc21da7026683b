package models

import "time"

// AccountType identifies which account a transaction moved money through.
type AccountType string

const (
	// AccountChecking transactions spend against a budget item's planned
	// allocation for the current budget.
	AccountChecking AccountType = "checking"

	// AccountSavings transactions draw down a savings category's
	// accumulated balance, decoupled from any single month's budget item.
	AccountSavings AccountType = "savings"
)

// AccountTypes lists the valid account types in display order.
var AccountTypes = []AccountType{AccountChecking, AccountSavings}

// Valid reports whether a is a known account type.
func (a AccountType) Valid() bool {
	return a == AccountChecking || a == AccountSavings
}

// Transaction represents actual spend or movement of money.
//
// The category linkage discriminates on AccountType: checking transactions
// carry BudgetItemID (tying the spend to a planned allocation), savings
// transactions carry CategoryID (tying the spend directly to the savings
// category). Exactly one of the two is set.
type Transaction struct {
	// ID is the backend's surrogate identifier.
	ID int64 `json:"id"`

	// Amount is the positive transaction amount.
	Amount float64 `json:"amount"`

	// Description is an optional note.
	Description string `json:"description,omitempty"`

	// TransactionDate is the date the money moved.
	TransactionDate time.Time `json:"transaction_date"`

	// AccountType is checking or savings.
	AccountType AccountType `json:"account_type"`

	// BudgetItemID links a checking transaction to its planned
	// allocation. Zero for savings transactions.
	BudgetItemID int64 `json:"budget_item_id,omitempty"`

	// CategoryID links a savings transaction to its category. Zero for
	// checking transactions.
	CategoryID int64 `json:"category_id,omitempty"`

	// Active is false once the transaction has been removed server-side.
	Active bool `json:"is_active"`

	// CreatedAt is when the transaction was recorded.
	CreatedAt time.Time `json:"created_at"`
}

// TransactionCreate is the payload for recording a transaction. BudgetItemID
// or CategoryID must be set according to AccountType.
type TransactionCreate struct {
	Amount          float64     `json:"amount"`
	Description     string      `json:"description,omitempty"`
	TransactionDate time.Time   `json:"transaction_date,omitempty"`
	AccountType     AccountType `json:"account_type"`
	BudgetItemID    int64       `json:"budget_item_id,omitempty"`
	CategoryID      int64       `json:"category_id,omitempty"`
}

// TransactionUpdate is the PUT payload for editing a transaction. Zero-value
// fields are omitted so the backend patches only what changed. The date is a
// pointer because omitempty never drops a zero time.Time; nil means "keep the
// stored date".
type TransactionUpdate struct {
	Amount          float64     `json:"amount,omitempty"`
	Description     string      `json:"description,omitempty"`
	TransactionDate *time.Time  `json:"transaction_date,omitempty"`
	AccountType     AccountType `json:"account_type,omitempty"`
	BudgetItemID    int64       `json:"budget_item_id,omitempty"`
	CategoryID      int64       `json:"category_id,omitempty"`
}

package models

import "time"

// Budget represents one month's budget.
//
// By convention there is at most one budget per (month, year); the backend
// enforces this, the client only relies on it for lookups.
type Budget struct {
	// ID is the backend's surrogate identifier.
	ID int64 `json:"id"`

	// Month is 1-12.
	Month int `json:"month"`

	// Year is the four-digit year.
	Year int `json:"year"`

	// Name is the display name (e.g. "March 2026").
	Name string `json:"name"`

	// Description is an optional free-form note.
	Description string `json:"description,omitempty"`

	// Active is false once the budget has been closed out.
	Active bool `json:"is_active"`

	// CreatedAt is when the budget was created, as reported by the server.
	CreatedAt time.Time `json:"created_at"`
}

// MonthName returns the English month name for display, or "" when Month is
// out of range.
func (b Budget) MonthName() string {
	if b.Month < 1 || b.Month > 12 {
		return ""
	}
	return time.Month(b.Month).String()
}

// BudgetCreate is the payload for creating a budget.
type BudgetCreate struct {
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// BudgetItem represents a planned allocation of Amount to a category for a
// specific budget.
//
// CategoryType is a denormalized copy of the referenced category's type at
// allocation time; it must match the category and lets aggregation avoid a
// join for items fetched from endpoints that include it. At most one active
// item exists per (BudgetID, CategoryID, CategoryType) — the backend's
// create endpoint upserts on that key, and the client mirrors the same
// reconciliation (see the store package).
type BudgetItem struct {
	// ID is the backend's surrogate identifier.
	ID int64 `json:"id"`

	// BudgetID is the owning budget.
	BudgetID int64 `json:"budget_id"`

	// CategoryID is the referenced category.
	CategoryID int64 `json:"category_id"`

	// CategoryType mirrors the category's type. May be empty on responses
	// from older endpoints; aggregation falls back to joining via the
	// category list.
	CategoryType CategoryType `json:"category_type,omitempty"`

	// Amount is the planned allocation, non-negative.
	Amount float64 `json:"amount"`

	// Active is false once the item has been removed server-side.
	Active bool `json:"is_active"`
}

// NaturalKey identifies "the same logical allocation" for upsert purposes.
type NaturalKey struct {
	BudgetID     int64
	CategoryID   int64
	CategoryType CategoryType
}

// Key returns the item's natural key.
func (i BudgetItem) Key() NaturalKey {
	return NaturalKey{BudgetID: i.BudgetID, CategoryID: i.CategoryID, CategoryType: i.CategoryType}
}

// BudgetItemCreate is the payload for allocating (or re-allocating) an
// amount to a category. The backend treats this as an upsert on the natural
// key.
type BudgetItemCreate struct {
	BudgetID     int64        `json:"budget_id"`
	CategoryID   int64        `json:"category_id"`
	CategoryType CategoryType `json:"category_type,omitempty"`
	Amount       float64      `json:"amount"`
}

// BudgetItemUpdate is the PUT payload for changing an allocation's amount.
type BudgetItemUpdate struct {
	Amount float64 `json:"amount"`
}

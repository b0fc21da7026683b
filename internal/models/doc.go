// Package models defines the client-side mirrors of the Budget Compass
// backend resources.
//
// # Resources
//
//   - Category: a named spending bucket with a CategoryType
//   - Budget: one month's budget (unique per month/year by convention)
//   - BudgetItem: a planned allocation of money to a category for a budget
//   - Transaction: actual spend/movement against checking or savings
//   - User: the authenticated account (id + email)
//
// # Derived aggregates
//
// BudgetSummary and SavingsBalance are never stored or fetched; they are
// recomputed from the raw collections by the derive package. MonthsEndSummary
// is the exception: the server computes budgeted-vs-actual variance and the
// client only fetches and renders it.
//
// # Design notes
//
// Models carry the backend's surrogate integer IDs and use ID references
// rather than pointers for relationships, so there are no circular
// structures to reconcile after a refetch. JSON tags follow the backend's
// snake_case wire format exactly.
package models

package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ami-friedman/budget-compass/internal/api"
	"github.com/ami-friedman/budget-compass/internal/models"
)

const (
	msgLoadBudgets   = "Failed to load budgets"
	msgLoadCurrent   = "Failed to load current budget"
	msgCreateBudget  = "Failed to create budget"
	msgLoadMonthsEnd = "Failed to load months-end summary"
)

// BudgetStore mirrors the budget collection plus the "current budget"
// selection the rest of the UI hangs off.
type BudgetStore struct {
	notifier

	client *api.Client

	mu      sync.Mutex
	budgets []models.Budget
	current *models.Budget
	loading bool
	errMsg  string
}

// NewBudgetStore creates a store backed by the given client.
func NewBudgetStore(client *api.Client) *BudgetStore {
	return &BudgetStore{client: client}
}

// Budgets returns a snapshot of the loaded budgets.
func (s *BudgetStore) Budgets() []models.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// Current returns the current budget, or nil when none exists (e.g. the
// month's budget has not been created yet).
func (s *BudgetStore) Current() *models.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	b := *s.current
	return &b
}

// Loading reports whether a call is outstanding.
func (s *BudgetStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the current error message, or "" when clear.
func (s *BudgetStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Load replaces the budget collection with the server's.
func (s *BudgetStore) Load(ctx context.Context) error {
	s.begin()

	budgets, err := s.client.Budgets(ctx)
	if err != nil {
		slog.Error("Loading budgets failed", "error", err)
		s.fail(msgLoadBudgets)
		return errors.New(msgLoadBudgets)
	}

	s.mu.Lock()
	s.budgets = budgets
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return nil
}

// LoadCurrent fetches the current month's budget. "No current budget" is a
// legitimate state (the backend 404s before the month's budget is created),
// so it clears the selection without raising the error flag.
func (s *BudgetStore) LoadCurrent(ctx context.Context) error {
	s.begin()

	budget, err := s.client.CurrentBudget(ctx)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			s.mu.Lock()
			s.current = nil
			s.loading = false
			s.mu.Unlock()
			s.notify()
			return nil
		}
		slog.Error("Loading current budget failed", "error", err)
		s.fail(msgLoadCurrent)
		return errors.New(msgLoadCurrent)
	}

	s.mu.Lock()
	s.current = budget
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return nil
}

// Create posts a new budget, appends it, and selects it as current.
func (s *BudgetStore) Create(ctx context.Context, in models.BudgetCreate) (*models.Budget, error) {
	s.begin()

	budget, err := s.client.CreateBudget(ctx, in)
	if err != nil {
		slog.Error("Creating budget failed", "month", in.Month, "year", in.Year, "error", err)
		s.fail(msgCreateBudget)
		return nil, errors.New(msgCreateBudget)
	}

	s.mu.Lock()
	s.budgets = append(s.budgets, *budget)
	s.current = budget
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return budget, nil
}

// Select makes the given budget current without touching the backend.
func (s *BudgetStore) Select(budget models.Budget) {
	s.mu.Lock()
	b := budget
	s.current = &b
	s.mu.Unlock()
	s.notify()
}

// MonthsEnd fetches the server-computed variance report for a budget. The
// result is returned, not cached: the report is a point-in-time view the
// server owns.
func (s *BudgetStore) MonthsEnd(ctx context.Context, budgetID int64) (*models.MonthsEndSummary, error) {
	s.begin()

	summary, err := s.client.MonthsEndSummary(ctx, budgetID)
	if err != nil {
		slog.Error("Loading months-end summary failed", "budget_id", budgetID, "error", err)
		s.fail(msgLoadMonthsEnd)
		return nil, errors.New(msgLoadMonthsEnd)
	}

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return summary, nil
}

func (s *BudgetStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
	s.notify()
}

func (s *BudgetStore) fail(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

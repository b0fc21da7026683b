package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ami-friedman/budget-compass/internal/api"
	"github.com/ami-friedman/budget-compass/internal/models"
)

// dashboardState holds the months-end report, which is fetched on demand
// rather than derived: the server owns the budgeted-vs-actual reconciliation.
type dashboardState struct {
	monthsEnd *models.MonthsEndSummary
	fetching  bool
}

func (m Model) monthsEndCmd(budgetID int64) tea.Cmd {
	budgets := m.stores.Budgets
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		summary, err := budgets.MonthsEnd(ctx, budgetID)
		return monthsEndMsg{summary: summary, err: err}
	}
}

func (m Model) updateMonthsEnd(msg monthsEndMsg) (tea.Model, tea.Cmd) {
	m.dashboard.fetching = false
	if msg.err != nil {
		// The store already raised its error flag; nothing else to show.
		return m, nil
	}
	m.dashboard.monthsEnd = msg.summary
	return m, nil
}

func (m Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case keyMatches(msg, keys.Confirm):
		current := m.stores.Budgets.Current()
		if current == nil || m.dashboard.fetching {
			return m, nil
		}
		m.dashboard.fetching = true
		return m, m.monthsEndCmd(current.ID)

	case keyMatches(msg, keys.Cancel):
		m.dashboard.monthsEnd = nil
		return m, nil

	// Up/Down step through past budgets; the selection drives which
	// budget's items and transactions every screen shows.
	case keyMatches(msg, keys.Up):
		return m.selectAdjacentBudget(-1)

	case keyMatches(msg, keys.Down):
		return m.selectAdjacentBudget(1)
	}
	return m, nil
}

func (m Model) selectAdjacentBudget(step int) (tea.Model, tea.Cmd) {
	budgets := m.stores.Budgets.Budgets()
	current := m.stores.Budgets.Current()
	if len(budgets) == 0 || current == nil {
		return m, nil
	}

	idx := -1
	for i, b := range budgets {
		if b.ID == current.ID {
			idx = i
			break
		}
	}
	next := idx + step
	if idx < 0 || next < 0 || next >= len(budgets) {
		return m, nil
	}

	selected := budgets[next]
	m.stores.Budgets.Select(selected)
	m.dashboard.monthsEnd = nil

	items := m.stores.Items
	txns := m.stores.Transactions
	return m, opCmd(func(ctx context.Context) error {
		if err := items.Load(ctx, selected.ID); err != nil {
			return err
		}
		return txns.Load(ctx, api.TransactionFilter{BudgetID: selected.ID})
	})
}

func (m Model) viewDashboard() string {
	var b strings.Builder

	current := m.stores.Budgets.Current()
	if current == nil {
		b.WriteString(mutedStyle.Render("No budget for this month yet. Press 2 to create one."))
		return boxStyle.Render(b.String())
	}

	b.WriteString(headerStyle.Render(current.Name))
	b.WriteString("\n\n")

	summary := m.stores.Views.BudgetSummary()
	b.WriteString(fmt.Sprintf("%-18s %10s\n", "Income", money(summary.TotalIncome)))
	b.WriteString(fmt.Sprintf("%-18s %10s\n", "Savings", money(summary.SavingsAmount)))
	b.WriteString(fmt.Sprintf("%-18s %10s\n", "Cash", money(summary.CashAmount)))
	b.WriteString(fmt.Sprintf("%-18s %10s\n", "Monthly", money(summary.MonthlyAmount)))
	b.WriteString(fmt.Sprintf("%-18s %10s\n", "Total expenses", money(summary.TotalExpenses)))
	b.WriteString(fmt.Sprintf("%-18s %10s\n", "Balance", signedMoney(summary.Balance)))

	if balances := m.stores.Views.SavingsBalances(); len(balances) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Savings"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-18s %10s %10s %10s\n", "", "Funded", "Spent", "Available"))
		for _, bal := range balances {
			label := m.stores.Views.CategoryLabel(bal.CategoryID)
			b.WriteString(fmt.Sprintf("%-18s %10s %10s %10s\n",
				label, money(bal.Funded), money(bal.Spent), signedMoney(bal.Available)))
		}
	}

	if m.dashboard.monthsEnd != nil {
		b.WriteString("\n")
		b.WriteString(viewMonthsEnd(m.dashboard.monthsEnd))
	} else if m.dashboard.fetching {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Fetching months-end summary…"))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("enter: months-end summary · ↑/↓: switch budget"))
		b.WriteString("\n")
	}

	return boxStyle.Render(b.String())
}

func viewMonthsEnd(s *models.MonthsEndSummary) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Month's end"))
	b.WriteString("\n")
	b.WriteString(viewMonthsEndAccount("Checking", s.Checking))
	b.WriteString(viewMonthsEndAccount("Savings", s.Savings))
	b.WriteString(mutedStyle.Render("esc: hide"))
	b.WriteString("\n")
	return b.String()
}

func viewMonthsEndAccount(title string, account models.MonthsEndAccount) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (spent %s)\n", title, money(account.TotalSpent)))

	names := make([]string, 0, len(account.Categories))
	for name := range account.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString(fmt.Sprintf("  %-16s %10s %10s %10s\n", "", "Budgeted", "Spent", "Remaining"))
	for _, name := range names {
		line := account.Categories[name]
		b.WriteString(fmt.Sprintf("  %-16s %10s %10s %10s\n",
			name, money(line.Budgeted), money(line.Spent), signedMoney(line.Remaining)))
	}
	return b.String()
}

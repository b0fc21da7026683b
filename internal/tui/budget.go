package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ami-friedman/budget-compass/internal/models"
)

type budgetMode int

const (
	budgetBrowsing budgetMode = iota
	// budgetPickingCategory selects the category for a new allocation.
	budgetPickingCategory
	// budgetEnteringAmount edits the amount for a new or existing allocation.
	budgetEnteringAmount
	// budgetConfirmingDelete asks before removing the selected allocation.
	budgetConfirmingDelete
	// budgetConfirmingCreate asks before creating this month's budget.
	budgetConfirmingCreate
)

type budgetState struct {
	mode budgetMode

	// tab indexes models.CategoryTypes.
	tab    int
	cursor int

	// Form state. editID is zero for a new allocation; pickCursor and
	// pickCategory drive category selection.
	amount       field
	editID       int64
	pickCursor   int
	pickCategory *models.Category
}

func newBudgetState() budgetState {
	return budgetState{amount: newField("Amount")}
}

func (s budgetState) typ() models.CategoryType {
	return models.CategoryTypes[s.tab]
}

func (m Model) handleBudgetKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	current := m.stores.Budgets.Current()

	switch {
	case keyMatches(msg, keys.NextTab):
		m.budget.tab = (m.budget.tab + 1) % len(models.CategoryTypes)
		m.budget.cursor = 0
		return m, nil

	case keyMatches(msg, keys.PrevTab):
		m.budget.tab = (m.budget.tab + len(models.CategoryTypes) - 1) % len(models.CategoryTypes)
		m.budget.cursor = 0
		return m, nil

	case keyMatches(msg, keys.Up):
		if m.budget.cursor > 0 {
			m.budget.cursor--
		}
		return m, nil

	case keyMatches(msg, keys.Down):
		if m.budget.cursor < len(m.budgetRows())-1 {
			m.budget.cursor++
		}
		return m, nil

	case keyMatches(msg, keys.New):
		if current == nil {
			m.budget.mode = budgetConfirmingCreate
			return m, nil
		}
		if len(m.stores.Views.CategoriesByType(m.budget.typ())) == 0 {
			m.status = "No active categories of this type"
			return m, nil
		}
		m.budget.mode = budgetPickingCategory
		m.budget.pickCursor = 0
		return m, nil

	case keyMatches(msg, keys.Edit):
		rows := m.budgetRows()
		if current == nil || len(rows) == 0 || m.budget.cursor >= len(rows) {
			return m, nil
		}
		item := rows[m.budget.cursor]
		m.budget.mode = budgetEnteringAmount
		m.budget.editID = item.ID
		m.budget.pickCategory = nil
		m.budget.amount.SetValue(strconv.FormatFloat(item.Amount, 'f', -1, 64))
		return m, nil

	case keyMatches(msg, keys.Delete):
		if current == nil || len(m.budgetRows()) == 0 {
			return m, nil
		}
		m.budget.mode = budgetConfirmingDelete
		return m, nil
	}
	return m, nil
}

func (m Model) handleBudgetFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.budget.mode {
	case budgetPickingCategory:
		return m.handleBudgetPickKeys(msg)
	case budgetEnteringAmount:
		return m.handleBudgetAmountKeys(msg)
	case budgetConfirmingDelete:
		return m.handleBudgetDeleteKeys(msg)
	case budgetConfirmingCreate:
		return m.handleBudgetCreateKeys(msg)
	}
	return m, nil
}

func (m Model) handleBudgetPickKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	options := m.stores.Views.CategoriesByType(m.budget.typ())

	switch {
	case keyMatches(msg, keys.Cancel):
		m.budget.mode = budgetBrowsing
		return m, nil

	case keyMatches(msg, keys.Up):
		if m.budget.pickCursor > 0 {
			m.budget.pickCursor--
		}
		return m, nil

	case keyMatches(msg, keys.Down):
		if m.budget.pickCursor < len(options)-1 {
			m.budget.pickCursor++
		}
		return m, nil

	case keyMatches(msg, keys.Confirm):
		if len(options) == 0 || m.budget.pickCursor >= len(options) {
			m.budget.mode = budgetBrowsing
			return m, nil
		}
		picked := options[m.budget.pickCursor]
		m.budget.pickCategory = &picked
		m.budget.editID = 0
		m.budget.amount.Reset()
		m.budget.mode = budgetEnteringAmount
		return m, nil
	}
	return m, nil
}

func (m Model) handleBudgetAmountKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.budget.mode = budgetBrowsing
		return m, nil

	case tea.KeyEnter:
		amount, err := strconv.ParseFloat(strings.TrimSpace(m.budget.amount.Value()), 64)
		if err != nil || amount < 0 {
			m.status = "Amount must be a non-negative number"
			return m, nil
		}

		items := m.stores.Items
		if m.budget.editID != 0 {
			id := m.budget.editID
			m.budget.mode = budgetBrowsing
			return m, opCmd(func(ctx context.Context) error {
				_, err := items.Update(ctx, id, models.BudgetItemUpdate{Amount: amount})
				return err
			})
		}

		current := m.stores.Budgets.Current()
		if current == nil || m.budget.pickCategory == nil {
			m.budget.mode = budgetBrowsing
			return m, nil
		}
		in := models.BudgetItemCreate{
			BudgetID:     current.ID,
			CategoryID:   m.budget.pickCategory.ID,
			CategoryType: m.budget.pickCategory.Type,
			Amount:       amount,
		}
		m.budget.mode = budgetBrowsing
		return m, opCmd(func(ctx context.Context) error {
			_, err := items.Create(ctx, in)
			return err
		})
	}

	m.budget.amount.handleKey(msg)
	return m, nil
}

func (m Model) handleBudgetDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case keyMatches(msg, keys.Cancel):
		m.budget.mode = budgetBrowsing
		return m, nil

	case keyMatches(msg, keys.Confirm):
		rows := m.budgetRows()
		m.budget.mode = budgetBrowsing
		if len(rows) == 0 || m.budget.cursor >= len(rows) {
			return m, nil
		}
		id := rows[m.budget.cursor].ID
		if m.budget.cursor > 0 {
			m.budget.cursor--
		}
		items := m.stores.Items
		return m, opCmd(func(ctx context.Context) error {
			return items.Remove(ctx, id)
		})
	}
	return m, nil
}

func (m Model) handleBudgetCreateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case keyMatches(msg, keys.Cancel):
		m.budget.mode = budgetBrowsing
		return m, nil

	case keyMatches(msg, keys.Confirm):
		m.budget.mode = budgetBrowsing
		now := time.Now()
		in := models.BudgetCreate{
			Month: int(now.Month()),
			Year:  now.Year(),
			Name:  fmt.Sprintf("%s %d", now.Month(), now.Year()),
		}
		budgets := m.stores.Budgets
		return m, opCmd(func(ctx context.Context) error {
			_, err := budgets.Create(ctx, in)
			return err
		})
	}
	return m, nil
}

// budgetRows is the item list for the active type tab, the thing the cursor
// moves over.
func (m Model) budgetRows() []models.BudgetItem {
	return m.stores.Views.ItemsByType(m.budget.typ())
}

func (m Model) viewBudget() string {
	var b strings.Builder

	current := m.stores.Budgets.Current()
	if current == nil {
		b.WriteString(mutedStyle.Render("No budget for this month yet."))
		b.WriteString("\n\n")
		if m.budget.mode == budgetConfirmingCreate {
			now := time.Now()
			b.WriteString(fmt.Sprintf("Create budget for %s %d? (enter/esc)\n", now.Month(), now.Year()))
		} else {
			b.WriteString(mutedStyle.Render("n: create this month's budget"))
			b.WriteString("\n")
		}
		return boxStyle.Render(b.String())
	}

	b.WriteString(headerStyle.Render(current.Name))
	b.WriteString("  ")
	b.WriteString(viewTypeTabs(m.budget.tab))
	b.WriteString("\n\n")

	rows := m.budgetRows()
	if len(rows) == 0 {
		b.WriteString(mutedStyle.Render("No allocations yet. Press n to add one."))
		b.WriteString("\n")
	}
	for i, item := range rows {
		line := fmt.Sprintf("%-24s %10s", m.stores.Views.CategoryLabel(item.CategoryID), money(item.Amount))
		if i == m.budget.cursor && m.budget.mode == budgetBrowsing {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	total := 0.0
	for _, item := range rows {
		total += item.Amount
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%-24s %10s", "Total", money(total))))
	b.WriteString("\n")

	switch m.budget.mode {
	case budgetPickingCategory:
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Category"))
		b.WriteString("\n")
		for i, c := range m.stores.Views.CategoriesByType(m.budget.typ()) {
			line := c.Name
			if i == m.budget.pickCursor {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString(mutedStyle.Render("enter: select · esc: cancel"))
		b.WriteString("\n")

	case budgetEnteringAmount:
		b.WriteString("\n")
		if m.budget.pickCategory != nil {
			b.WriteString(mutedStyle.Render("Allocating to " + m.budget.pickCategory.Name))
			b.WriteString("\n")
		}
		b.WriteString(m.budget.amount.view(true))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("enter: save · esc: cancel"))
		b.WriteString("\n")

	case budgetConfirmingDelete:
		if m.budget.cursor < len(rows) {
			item := rows[m.budget.cursor]
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf(
				"Delete allocation for %s? (enter/esc)", m.stores.Views.CategoryLabel(item.CategoryID))))
			b.WriteString("\n")
		}
	}

	return boxStyle.Render(b.String())
}

func viewTypeTabs(active int) string {
	tabs := make([]string, len(models.CategoryTypes))
	for i, t := range models.CategoryTypes {
		name := string(t)
		if i == active {
			tabs[i] = tabActiveStyle.Render(name)
		} else {
			tabs[i] = tabInactiveStyle.Render(name)
		}
	}
	return strings.Join(tabs, " ")
}

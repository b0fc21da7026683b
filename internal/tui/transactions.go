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

type transactionsMode int

const (
	transactionsBrowsing transactionsMode = iota
	// transactionsPickingTarget selects what a new transaction spends
	// against: a budget item on the checking tab, a savings category on
	// the savings tab.
	transactionsPickingTarget
	// transactionsEnteringDetails edits amount and description.
	transactionsEnteringDetails
	transactionsConfirmingDelete
)

type transactionsState struct {
	mode transactionsMode

	// tab indexes models.AccountTypes.
	tab    int
	cursor int

	amount     field
	desc       field
	focus      int // 0 = amount, 1 = description
	formErr    string
	editID     int64
	pickCursor int

	// Target of a new transaction, discriminated by the active tab.
	budgetItemID int64
	categoryID   int64
}

func newTransactionsState() transactionsState {
	return transactionsState{
		amount: newField("Amount"),
		desc:   newField("Description"),
	}
}

func (s transactionsState) account() models.AccountType {
	return models.AccountTypes[s.tab]
}

func (m Model) handleTransactionsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	switch {
	case keyMatches(msg, keys.NextTab), keyMatches(msg, keys.PrevTab):
		m.transactions.tab = (m.transactions.tab + 1) % len(models.AccountTypes)
		m.transactions.cursor = 0
		return m, nil

	case keyMatches(msg, keys.Up):
		if m.transactions.cursor > 0 {
			m.transactions.cursor--
		}
		return m, nil

	case keyMatches(msg, keys.Down):
		if m.transactions.cursor < len(m.transactionRows())-1 {
			m.transactions.cursor++
		}
		return m, nil

	case keyMatches(msg, keys.New):
		if len(m.transactionTargets()) == 0 {
			if m.transactions.account() == models.AccountChecking {
				m.status = "No budget allocations to spend against"
			} else {
				m.status = "No savings categories"
			}
			return m, nil
		}
		m.transactions.mode = transactionsPickingTarget
		m.transactions.pickCursor = 0
		m.transactions.formErr = ""
		return m, nil

	case keyMatches(msg, keys.Edit):
		rows := m.transactionRows()
		if len(rows) == 0 || m.transactions.cursor >= len(rows) {
			return m, nil
		}
		txn := rows[m.transactions.cursor]
		m.transactions.mode = transactionsEnteringDetails
		m.transactions.editID = txn.ID
		m.transactions.focus = 0
		m.transactions.formErr = ""
		m.transactions.amount.SetValue(strconv.FormatFloat(txn.Amount, 'f', -1, 64))
		m.transactions.desc.SetValue(txn.Description)
		return m, nil

	case keyMatches(msg, keys.Delete):
		if len(m.transactionRows()) == 0 {
			return m, nil
		}
		m.transactions.mode = transactionsConfirmingDelete
		return m, nil
	}
	return m, nil
}

func (m Model) handleTransactionsFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.transactions.mode {
	case transactionsPickingTarget:
		return m.handleTransactionsPickKeys(msg)
	case transactionsEnteringDetails:
		return m.handleTransactionsDetailKeys(msg)
	case transactionsConfirmingDelete:
		return m.handleTransactionsDeleteKeys(msg)
	}
	return m, nil
}

// transactionTarget is one option in the target picker.
type transactionTarget struct {
	label        string
	budgetItemID int64
	categoryID   int64
}

func (m Model) transactionTargets() []transactionTarget {
	if m.transactions.account() == models.AccountChecking {
		// Spend targets are the expense allocations. Resolving per type
		// joins through the category list, so income items missing the
		// denormalized type are classified the same way the rollup
		// classifies them.
		var targets []transactionTarget
		for _, ctype := range models.CategoryTypes {
			if !ctype.Expense() {
				continue
			}
			for _, item := range m.stores.Views.ItemsByType(ctype) {
				targets = append(targets, transactionTarget{
					label:        m.stores.Views.CategoryLabel(item.CategoryID),
					budgetItemID: item.ID,
				})
			}
		}
		return targets
	}

	categories := m.stores.Views.CategoriesByType(models.CategorySavings)
	targets := make([]transactionTarget, 0, len(categories))
	for _, c := range categories {
		targets = append(targets, transactionTarget{label: c.Name, categoryID: c.ID})
	}
	return targets
}

func (m Model) handleTransactionsPickKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	targets := m.transactionTargets()

	switch {
	case keyMatches(msg, keys.Cancel):
		m.transactions.mode = transactionsBrowsing
		return m, nil

	case keyMatches(msg, keys.Up):
		if m.transactions.pickCursor > 0 {
			m.transactions.pickCursor--
		}
		return m, nil

	case keyMatches(msg, keys.Down):
		if m.transactions.pickCursor < len(targets)-1 {
			m.transactions.pickCursor++
		}
		return m, nil

	case keyMatches(msg, keys.Confirm):
		if len(targets) == 0 || m.transactions.pickCursor >= len(targets) {
			m.transactions.mode = transactionsBrowsing
			return m, nil
		}
		picked := targets[m.transactions.pickCursor]
		m.transactions.budgetItemID = picked.budgetItemID
		m.transactions.categoryID = picked.categoryID
		m.transactions.editID = 0
		m.transactions.focus = 0
		m.transactions.amount.Reset()
		m.transactions.desc.Reset()
		m.transactions.mode = transactionsEnteringDetails
		return m, nil
	}
	return m, nil
}

func (m Model) handleTransactionsDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.transactions.mode = transactionsBrowsing
		m.transactions.formErr = ""
		return m, nil

	case tea.KeyTab, tea.KeyDown, tea.KeyUp:
		m.transactions.focus = 1 - m.transactions.focus
		return m, nil

	case tea.KeyEnter:
		return m.submitTransaction()
	}

	if m.transactions.focus == 0 {
		m.transactions.amount.handleKey(msg)
	} else {
		m.transactions.desc.handleKey(msg)
	}
	return m, nil
}

func (m Model) submitTransaction() (tea.Model, tea.Cmd) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(m.transactions.amount.Value()), 64)
	if err != nil || amount <= 0 {
		m.transactions.formErr = "Amount must be a positive number"
		return m, nil
	}
	desc := strings.TrimSpace(m.transactions.desc.Value())
	txns := m.stores.Transactions

	if m.transactions.editID != 0 {
		id := m.transactions.editID
		in := models.TransactionUpdate{Amount: amount, Description: desc}
		m.transactions.mode = transactionsBrowsing
		m.transactions.formErr = ""
		return m, opCmd(func(ctx context.Context) error {
			_, err := txns.Update(ctx, id, in)
			return err
		})
	}

	account := m.transactions.account()
	if account == models.AccountSavings {
		// Same check the store enforces, surfaced inline so the form
		// stays open with the draft intact.
		if available := txns.Available(m.transactions.categoryID); amount > available {
			m.transactions.formErr = fmt.Sprintf("Only %s available in this savings category", money(available))
			return m, nil
		}
	}

	in := models.TransactionCreate{
		Amount:          amount,
		Description:     desc,
		TransactionDate: time.Now(),
		AccountType:     account,
		BudgetItemID:    m.transactions.budgetItemID,
		CategoryID:      m.transactions.categoryID,
	}
	m.transactions.mode = transactionsBrowsing
	m.transactions.formErr = ""
	return m, opCmd(func(ctx context.Context) error {
		_, err := txns.Create(ctx, in)
		return err
	})
}

func (m Model) handleTransactionsDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case keyMatches(msg, keys.Cancel):
		m.transactions.mode = transactionsBrowsing
		return m, nil

	case keyMatches(msg, keys.Confirm):
		rows := m.transactionRows()
		m.transactions.mode = transactionsBrowsing
		if len(rows) == 0 || m.transactions.cursor >= len(rows) {
			return m, nil
		}
		id := rows[m.transactions.cursor].ID
		if m.transactions.cursor > 0 {
			m.transactions.cursor--
		}
		txns := m.stores.Transactions
		return m, opCmd(func(ctx context.Context) error {
			return txns.Remove(ctx, id)
		})
	}
	return m, nil
}

func (m Model) transactionRows() []models.Transaction {
	return m.stores.Views.TransactionsByAccount(m.transactions.account())
}

// transactionLabel resolves the category a transaction spent against,
// following the checking transaction's budget item link.
func (m Model) transactionLabel(txn models.Transaction) string {
	if txn.AccountType == models.AccountSavings {
		return m.stores.Views.CategoryLabel(txn.CategoryID)
	}
	for _, item := range m.stores.Items.Items() {
		if item.ID == txn.BudgetItemID {
			return m.stores.Views.CategoryLabel(item.CategoryID)
		}
	}
	return "Unknown Category"
}

func (m Model) viewTransactions() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Transactions"))
	b.WriteString("  ")
	b.WriteString(viewAccountTabs(m.transactions.tab))
	b.WriteString("\n\n")

	rows := m.transactionRows()
	if len(rows) == 0 {
		b.WriteString(mutedStyle.Render("No transactions. Press n to record one."))
		b.WriteString("\n")
	}
	for i, txn := range rows {
		line := fmt.Sprintf("%s  %-20s %10s  %s",
			txn.TransactionDate.Format("2006-01-02"),
			m.transactionLabel(txn),
			money(txn.Amount),
			txn.Description,
		)
		if i == m.transactions.cursor && m.transactions.mode == transactionsBrowsing {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	total := m.stores.Views.AccountTotal(m.transactions.account())
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%-32s %10s", "Total", money(total))))
	b.WriteString("\n")

	switch m.transactions.mode {
	case transactionsPickingTarget:
		b.WriteString("\n")
		if m.transactions.account() == models.AccountChecking {
			b.WriteString(headerStyle.Render("Spend against"))
		} else {
			b.WriteString(headerStyle.Render("Savings category"))
		}
		b.WriteString("\n")
		for i, target := range m.transactionTargets() {
			line := target.label
			if m.transactions.account() == models.AccountSavings {
				line += "  " + mutedStyle.Render(money(m.stores.Transactions.Available(target.categoryID))+" available")
			}
			if i == m.transactions.pickCursor {
				line = selectedStyle.Render(target.label)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString(mutedStyle.Render("enter: select · esc: cancel"))
		b.WriteString("\n")

	case transactionsEnteringDetails:
		b.WriteString("\n")
		b.WriteString(m.transactions.amount.view(m.transactions.focus == 0))
		b.WriteString("\n")
		b.WriteString(m.transactions.desc.view(m.transactions.focus == 1))
		b.WriteString("\n")
		if m.transactions.formErr != "" {
			b.WriteString(errorStyle.Render(m.transactions.formErr))
			b.WriteString("\n")
		}
		b.WriteString(mutedStyle.Render("tab: next field · enter: save · esc: cancel"))
		b.WriteString("\n")

	case transactionsConfirmingDelete:
		if m.transactions.cursor < len(rows) {
			txn := rows[m.transactions.cursor]
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf(
				"Delete %s transaction of %s? (enter/esc)", m.transactionLabel(txn), money(txn.Amount))))
			b.WriteString("\n")
		}
	}

	return boxStyle.Render(b.String())
}

func viewAccountTabs(active int) string {
	tabs := make([]string, len(models.AccountTypes))
	for i, a := range models.AccountTypes {
		name := string(a)
		if i == active {
			tabs[i] = tabActiveStyle.Render(name)
		} else {
			tabs[i] = tabInactiveStyle.Render(name)
		}
	}
	return strings.Join(tabs, " ")
}

// Package tui is the terminal view layer.
//
// One bubbletea Model owns every screen; per-screen state and rendering
// live in their own files (login.go, dashboard.go, budget.go,
// categories.go, transactions.go). The stores are injected — the view layer
// holds only UI-local state (active screen, tab, cursor, form drafts) and
// renders values it reads from the store views, never aggregates it
// computes itself.
//
// Store mutations run as tea.Cmds; each completion message triggers a
// repaint. Stores additionally notify a change channel so collections
// updated mid-command (bootstrap's parallel loads) repaint as they land.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ami-friedman/budget-compass/internal/auth"
	"github.com/ami-friedman/budget-compass/internal/models"
	"github.com/ami-friedman/budget-compass/internal/store"
)

// Screen identifies which view is active.
type Screen int

const (
	// ScreenLogin shows the email form (and the link-sent notice).
	ScreenLogin Screen = iota
	// ScreenVerify shows the one-time token form.
	ScreenVerify
	// ScreenDashboard shows the budget summary and savings balances.
	ScreenDashboard
	// ScreenBudget shows the current budget's allocations by type.
	ScreenBudget
	// ScreenCategories manages categories.
	ScreenCategories
	// ScreenTransactions shows and records transactions.
	ScreenTransactions
)

// opTimeout bounds every store call issued from the UI.
const opTimeout = 30 * time.Second

// Stores bundles the injected dependencies. No globals: cmd assembles this
// once and hands it to New.
type Stores struct {
	Budgets      *store.BudgetStore
	Categories   *store.CategoryStore
	Items        *store.BudgetItemStore
	Transactions *store.TransactionStore
	Views        *store.Views
	Session      *auth.Session
}

type storeChangedMsg struct{}

// opDoneMsg reports a completed store call. The store already converted the
// failure into its error flag; err here only drives the status line.
type opDoneMsg struct{ err error }

type bootstrapDoneMsg struct{ err error }

type verifyDoneMsg struct{ err error }

type loginDoneMsg struct{ err error }

type monthsEndMsg struct {
	summary *models.MonthsEndSummary
	err     error
}

// Model is the root bubbletea model.
type Model struct {
	stores Stores
	keys   KeyMap

	screen   Screen
	width    int
	height   int
	showHelp bool
	status   string

	// Pending one-time token from the --token flag (the terminal
	// equivalent of opening /verify?token=...).
	pendingToken string

	login        loginState
	dashboard    dashboardState
	budget       budgetState
	categories   categoriesState
	transactions transactionsState

	changes chan struct{}
}

// New builds the root model. If verifyToken is non-empty the app starts on
// the verify screen and exchanges it immediately.
func New(stores Stores, verifyToken string) Model {
	m := Model{
		stores:       stores,
		keys:         DefaultKeyMap,
		pendingToken: verifyToken,
		login:        newLoginState(),
		budget:       newBudgetState(),
		categories:   newCategoriesState(),
		transactions: newTransactionsState(),
		changes:      make(chan struct{}, 64),
	}

	notify := func() {
		select {
		case m.changes <- struct{}{}:
		default: // a repaint is already queued
		}
	}
	stores.Budgets.Subscribe(notify)
	stores.Categories.Subscribe(notify)
	stores.Items.Subscribe(notify)
	stores.Transactions.Subscribe(notify)

	switch {
	case verifyToken != "":
		m.screen = ScreenVerify
	case stores.Session.State() == auth.Authenticated:
		m.screen = ScreenDashboard
	default:
		m.screen = ScreenLogin
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{listenChanges(m.changes)}
	if m.pendingToken != "" {
		cmds = append(cmds, m.verifyCmd(m.pendingToken))
	} else if m.stores.Session.State() == auth.Authenticated {
		cmds = append(cmds, m.bootstrapCmd())
	}
	return tea.Batch(cmds...)
}

func listenChanges(changes chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-changes
		return storeChangedMsg{}
	}
}

func (m Model) bootstrapCmd() tea.Cmd {
	stores := m.stores
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		err := store.Bootstrap(ctx, stores.Budgets, stores.Categories, stores.Items, stores.Transactions)
		return bootstrapDoneMsg{err: err}
	}
}

// opCmd runs a store mutation off the UI goroutine.
func opCmd(fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		return opDoneMsg{err: fn(ctx)}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case storeChangedMsg:
		// Data moved under us; repaint and keep listening.
		return m, listenChanges(m.changes)

	case bootstrapDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		return m, nil

	case loginDoneMsg:
		return m.updateLogin(msg)

	case verifyDoneMsg:
		return m.updateVerify(msg)

	case opDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = ""
		}
		return m, nil

	case monthsEndMsg:
		return m.updateMonthsEnd(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Screens with a focused text input get the keystroke first; only
	// Esc and Enter route around the input.
	switch m.screen {
	case ScreenLogin:
		return m.handleLoginKeys(msg)
	case ScreenVerify:
		return m.handleVerifyKeys(msg)
	}

	// A form or confirm prompt captures input on the data screens.
	if m.formActive() {
		return m.handleFormKeys(msg)
	}

	return m.handleGlobalKeys(msg)
}

func (m Model) formActive() bool {
	switch m.screen {
	case ScreenBudget:
		return m.budget.mode != budgetBrowsing
	case ScreenCategories:
		return m.categories.mode != categoriesBrowsing
	case ScreenTransactions:
		return m.transactions.mode != transactionsBrowsing
	}
	return false
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case ScreenBudget:
		return m.handleBudgetFormKeys(msg)
	case ScreenCategories:
		return m.handleCategoriesFormKeys(msg)
	case ScreenTransactions:
		return m.handleTransactionsFormKeys(msg)
	}
	return m, nil
}

func (m Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case keyMatches(msg, keys.Quit):
		return m, tea.Quit

	case keyMatches(msg, keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case keyMatches(msg, keys.Logout):
		m.stores.Session.Logout()
		m.screen = ScreenLogin
		m.login = newLoginState()
		return m, nil

	case keyMatches(msg, keys.Refresh):
		return m, m.bootstrapCmd()

	case keyMatches(msg, keys.Dashboard):
		m.screen = ScreenDashboard
		return m, nil

	case keyMatches(msg, keys.Budget):
		m.screen = ScreenBudget
		return m, nil

	case keyMatches(msg, keys.Categories):
		m.screen = ScreenCategories
		return m, nil

	case keyMatches(msg, keys.Transactions):
		m.screen = ScreenTransactions
		return m, nil
	}

	switch m.screen {
	case ScreenDashboard:
		return m.handleDashboardKeys(msg)
	case ScreenBudget:
		return m.handleBudgetKeys(msg)
	case ScreenCategories:
		return m.handleCategoriesKeys(msg)
	case ScreenTransactions:
		return m.handleTransactionsKeys(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var body string
	switch m.screen {
	case ScreenLogin:
		body = m.viewLogin()
	case ScreenVerify:
		body = m.viewVerify()
	case ScreenDashboard:
		body = m.viewDashboard()
	case ScreenBudget:
		body = m.viewBudget()
	case ScreenCategories:
		body = m.viewCategories()
	case ScreenTransactions:
		body = m.viewTransactions()
	}

	sections := []string{m.viewHeader(), body}
	if status := m.viewStatus(); status != "" {
		sections = append(sections, status)
	}
	if m.showHelp {
		sections = append(sections, helpStyle.Render(m.helpText()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHeader() string {
	title := titleStyle.Render("Budget Compass")
	if m.screen == ScreenLogin || m.screen == ScreenVerify {
		return title
	}

	names := []string{"1:Dashboard", "2:Budget", "3:Categories", "4:Transactions"}
	screens := []Screen{ScreenDashboard, ScreenBudget, ScreenCategories, ScreenTransactions}
	tabs := make([]string, len(names))
	for i, name := range names {
		if screens[i] == m.screen {
			tabs[i] = tabActiveStyle.Render(name)
		} else {
			tabs[i] = tabInactiveStyle.Render(name)
		}
	}

	user := ""
	if u := m.stores.Session.User(); u != nil {
		user = mutedStyle.Render(u.Email)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		title, "  ", lipgloss.JoinHorizontal(lipgloss.Center, joinWith(tabs, "  ")...), "  ", user)
}

// viewStatus renders the transient status line: store errors first (they
// persist until the next successful call), then the last operation status.
func (m Model) viewStatus() string {
	for _, errMsg := range []string{
		m.stores.Budgets.Err(),
		m.stores.Categories.Err(),
		m.stores.Items.Err(),
		m.stores.Transactions.Err(),
	} {
		if errMsg != "" {
			return errorStyle.Render(errMsg)
		}
	}
	if m.status != "" {
		return errorStyle.Render(m.status)
	}
	if m.anyLoading() {
		return mutedStyle.Render("loading…")
	}
	return ""
}

func (m Model) anyLoading() bool {
	return m.stores.Budgets.Loading() ||
		m.stores.Categories.Loading() ||
		m.stores.Items.Loading() ||
		m.stores.Transactions.Loading()
}

func (m Model) helpText() string {
	return "1-4 switch screens · tab cycle tabs · n new · e edit · d delete · r refresh · ctrl+l logout · q quit"
}

func joinWith(parts []string, sep string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}

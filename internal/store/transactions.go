package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ami-friedman/budget-compass/internal/api"
	"github.com/ami-friedman/budget-compass/internal/derive"
	"github.com/ami-friedman/budget-compass/internal/models"
)

const (
	msgLoadTransactions  = "Failed to load transactions"
	msgCreateTransaction = "Failed to create transaction"
	msgUpdateTransaction = "Failed to update transaction"
	msgDeleteTransaction = "Failed to delete transaction"
)

// ErrInsufficientSavings rejects a savings transaction whose amount exceeds
// the category's available balance. This is a validation failure, caught
// before any backend call: the collection is untouched and the store's
// error flag stays clear (the form renders it inline).
var ErrInsufficientSavings = errors.New("amount exceeds the savings category's available balance")

// FundedFunc reports the cumulative amount allocated to a savings category
// via budget items. Injected from the budget item store so this store can
// compute available balances without reaching into another store's state.
type FundedFunc func(categoryID int64) float64

// TransactionStore mirrors the loaded transactions.
type TransactionStore struct {
	notifier

	client *api.Client
	funded FundedFunc

	mu      sync.Mutex
	txns    []models.Transaction
	loading bool
	errMsg  string
}

// NewTransactionStore creates a store backed by the given client. funded
// supplies the savings guard's funded amounts; pass nil to disable the
// guard (tests exercising the backend path directly).
func NewTransactionStore(client *api.Client, funded FundedFunc) *TransactionStore {
	return &TransactionStore{client: client, funded: funded}
}

// Transactions returns a snapshot of the loaded transactions.
func (s *TransactionStore) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.txns))
	copy(out, s.txns)
	return out
}

// Loading reports whether a call is outstanding.
func (s *TransactionStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the current error message, or "" when clear.
func (s *TransactionStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Load replaces the collection with the transactions matching the filter.
func (s *TransactionStore) Load(ctx context.Context, filter api.TransactionFilter) error {
	s.begin()

	txns, err := s.client.Transactions(ctx, filter)
	if err != nil {
		slog.Error("Loading transactions failed", "error", err)
		s.fail(msgLoadTransactions)
		return errors.New(msgLoadTransactions)
	}

	s.mu.Lock()
	s.txns = txns
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return nil
}

// Available computes a savings category's available balance from the
// injected funded amount and this store's own savings transactions.
func (s *TransactionStore) Available(categoryID int64) float64 {
	if s.funded == nil {
		return 0
	}
	spent := derive.SavingsBalance(categoryID, nil, s.Transactions()).Spent
	return s.funded(categoryID) - spent
}

// Create records a transaction and appends it on success.
//
// Savings transactions are guarded client-side: spending more than the
// category's available balance is rejected with ErrInsufficientSavings
// before any backend call is issued.
func (s *TransactionStore) Create(ctx context.Context, in models.TransactionCreate) (*models.Transaction, error) {
	if in.AccountType == models.AccountSavings && s.funded != nil {
		if in.Amount > s.Available(in.CategoryID) {
			return nil, ErrInsufficientSavings
		}
	}

	s.begin()

	txn, err := s.client.CreateTransaction(ctx, in)
	if err != nil {
		slog.Error("Creating transaction failed", "account_type", in.AccountType, "error", err)
		s.fail(msgCreateTransaction)
		return nil, errors.New(msgCreateTransaction)
	}

	s.mu.Lock()
	s.txns = append(s.txns, *txn)
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return txn, nil
}

// Update edits a transaction and replaces the matching row by ID.
func (s *TransactionStore) Update(ctx context.Context, id int64, in models.TransactionUpdate) (*models.Transaction, error) {
	s.begin()

	txn, err := s.client.UpdateTransaction(ctx, id, in)
	if err != nil {
		slog.Error("Updating transaction failed", "transaction_id", id, "error", err)
		s.fail(msgUpdateTransaction)
		return nil, errors.New(msgUpdateTransaction)
	}

	s.mu.Lock()
	for i := range s.txns {
		if s.txns[i].ID == id {
			s.txns[i] = *txn
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return txn, nil
}

// Remove deletes a transaction and filters it out of the collection.
// Removing an ID that is not present leaves the collection unchanged.
func (s *TransactionStore) Remove(ctx context.Context, id int64) error {
	s.begin()

	if err := s.client.DeleteTransaction(ctx, id); err != nil {
		slog.Error("Deleting transaction failed", "transaction_id", id, "error", err)
		s.fail(msgDeleteTransaction)
		return errors.New(msgDeleteTransaction)
	}

	s.mu.Lock()
	kept := s.txns[:0]
	for _, t := range s.txns {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.txns = kept
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *TransactionStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
	s.notify()
}

func (s *TransactionStore) fail(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

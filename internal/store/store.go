// Package store holds the client-side resource stores.
//
// Each store mirrors one backend collection (budgets, categories, budget
// items, transactions) in memory, together with a loading flag and an error
// message. Mutation methods call the backend through the api client and
// reconcile the collection only on success: replace-if-match-else-append on
// create (upsert by natural key where the backend upserts), replace-by-ID on
// update, filter-out on remove, wholesale replacement on load. A failed call
// never partially mutates the collection — the previous contents stay
// available ("stale but available") and the error message is set to a fixed,
// operation-specific string.
//
// Stores never let an error escape unconverted: every public method catches
// backend failures, logs the cause, sets the error flag, and returns a
// plain error value the view layer may ignore in favor of rendering Err().
//
// Observers subscribe with Subscribe; every committed mutation notifies them
// synchronously before the mutating method returns, so a reader driven by
// the notification never observes a stale derived value.
package store

import "sync"

// notifier implements the synchronous observer list shared by all stores.
type notifier struct {
	mu   sync.Mutex
	subs []func()
}

// Subscribe registers fn to run after every committed mutation. There is no
// unsubscribe: subscribers live as long as the store (one TUI session).
func (n *notifier) Subscribe(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, fn)
}

// notify runs the subscribers in registration order. Called by stores after
// releasing their state lock, so subscribers can read snapshots freely.
func (n *notifier) notify() {
	n.mu.Lock()
	subs := make([]func(), len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

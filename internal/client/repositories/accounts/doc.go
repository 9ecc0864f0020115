// Package accounts provides the account store: a registry of user accounts
// keyed by user id.
//
// # Overview
//
// The package defines a Repository interface used by the hashing flow (the
// writer) and by account queries (the readers). InMemoryRepository keeps the
// accounts for the lifetime of the process; nothing is persisted.
//
// # Concurrency
//
// Implementations are safe for concurrent use and own their locking. Put
// replaces an entry as a whole, so readers observe either the previous
// account or the new one, never a mix of fields. Values are copied on the
// way in and out, so later mutation by a caller cannot leak into the store.
//
// Typical Usage
//
//	repo := accounts.NewInMemoryRepository(accounts.DemoAccounts()...)
//	repo.Put(acc.UserID, acc)
//	if acc, ok := repo.Get(7); ok { ... }
package accounts

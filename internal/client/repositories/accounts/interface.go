package accounts

import "github.com/dmitrijs2005/useraccount/internal/client/models"

// Repository is a keyed registry of accounts.
type Repository interface {
	// List returns a snapshot of all accounts ordered by user id.
	List() []models.Account

	// Get returns the account stored under userID; ok is false if there is none.
	Get(userID int32) (acc models.Account, ok bool)

	// Put inserts or overwrites the account stored under userID.
	Put(userID int32, acc models.Account)

	// Remove deletes the account stored under userID, if any.
	Remove(userID int32)
}

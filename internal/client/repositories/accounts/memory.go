package accounts

import (
	"cmp"
	"slices"
	"sync"

	"github.com/dmitrijs2005/useraccount/internal/client/models"
)

// DemoAccounts returns the two pending accounts a fresh service starts with.
func DemoAccounts() []models.Account {
	return []models.Account{
		{UserID: 100, UserName: "Butblob", Email: "cb@outook.com"},
		{UserID: 200, UserName: "Morganic", Email: "mr@outook.com"},
	}
}

type InMemoryRepository struct {
	mu       sync.RWMutex
	accounts map[int32]models.Account
}

// NewInMemoryRepository returns a repository holding seed.
func NewInMemoryRepository(seed ...models.Account) *InMemoryRepository {
	r := &InMemoryRepository{accounts: make(map[int32]models.Account, len(seed))}
	for _, acc := range seed {
		r.accounts[acc.UserID] = acc.Clone()
	}
	return r
}

func (r *InMemoryRepository) List() []models.Account {
	r.mu.RLock()
	res := make([]models.Account, 0, len(r.accounts))
	for _, acc := range r.accounts {
		res = append(res, acc.Clone())
	}
	r.mu.RUnlock()

	slices.SortFunc(res, func(a, b models.Account) int {
		return cmp.Compare(a.UserID, b.UserID)
	})
	return res
}

func (r *InMemoryRepository) Get(userID int32) (models.Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[userID]
	if !ok {
		return models.Account{}, false
	}
	return acc.Clone(), true
}

func (r *InMemoryRepository) Put(userID int32, acc models.Account) {
	acc = acc.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[userID] = acc
}

func (r *InMemoryRepository) Remove(userID int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.accounts, userID)
}

// Len returns the number of stored accounts.
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}

package memory

import (
	"context"
	"sync"

	"github.com/sheikh-saqib/marketplace-ledger-system/internal/models"
	"github.com/sheikh-saqib/marketplace-ledger-system/internal/storage"
)

// Store is an in-memory implementation of storage.Store. It backs
// tests and dev runs where durability does not matter.
type Store struct {
	mu       sync.Mutex
	accounts []models.Account
}

func NewStore() *Store {
	return &Store{accounts: []models.Account{}}
}

// Load returns a deep copy of the stored collection so callers cannot
// reach the internal slices.
func (m *Store) Load(ctx context.Context) ([]models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneAccounts(m.accounts), nil
}

// Save replaces the stored collection with a deep copy of accounts.
func (m *Store) Save(ctx context.Context, accounts []models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = cloneAccounts(accounts)
	return nil
}

func cloneAccounts(in []models.Account) []models.Account {
	out := make([]models.Account, len(in))
	copy(out, in)
	for i := range out {
		items := make([]models.Item, len(in[i].Items))
		copy(items, in[i].Items)
		out[i].Items = items
	}
	return out
}

var _ storage.Store = (*Store)(nil)
